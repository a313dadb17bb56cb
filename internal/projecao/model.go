// internal/projecao/model.go
package projecao

import "errors"

// VolumesPadrao são os patamares de vendas diárias usados nas projeções.
var VolumesPadrao = []int{5, 10, 20, 30, 50, 100}

// ProjecaoVolume é o lucro mensal projetado para um patamar de vendas diárias.
type ProjecaoVolume struct {
	VendasPorDia int     `json:"vendasPorDia"`
	LucroMensal  float64 `json:"lucroMensal"`
}

// ErrMargemContribuicao indica que o ponto de equilíbrio não é calculável:
// com margem de contribuição zero ou negativa nenhuma quantidade de vendas
// cobre os custos fixos.
var ErrMargemContribuicao = errors.New("margem de contribuição deve ser positiva")

// DespesasFixas reúne os gastos fixos mensais do vendedor e os percentuais
// operacionais que incidem sobre cada venda.
type DespesasFixas struct {
	MEI                float64 `json:"mei"`
	Plataforma         float64 `json:"plataforma"`
	Fornecedor         float64 `json:"fornecedor"`
	OutrosCustos       float64 `json:"outrosCustos"`
	VendasEstimadasMes int     `json:"vendasEstimadasMes"`

	MarketingPct      float64 `json:"marketingPct"`
	AntecipacaoPct    float64 `json:"antecipacaoPct"`
	PerdasPct         float64 `json:"perdasPct"`
	OutrosImpostosPct float64 `json:"outrosImpostosPct"`
}

// TotalMensal soma os gastos fixos do mês.
func (d DespesasFixas) TotalMensal() float64 {
	return d.MEI + d.Plataforma + d.Fornecedor + d.OutrosCustos
}

// CustoPorUnidade rateia os gastos fixos pelas vendas estimadas no mês.
func (d DespesasFixas) CustoPorUnidade() float64 {
	if d.VendasEstimadasMes <= 0 {
		return 0
	}
	return d.TotalMensal() / float64(d.VendasEstimadasMes)
}

// OutrosPct soma os percentuais operacionais (marketing, antecipação,
// perdas e outros impostos) que entram na equação de preço como "outros".
func (d DespesasFixas) OutrosPct() float64 {
	return d.MarketingPct + d.AntecipacaoPct + d.PerdasPct + d.OutrosImpostosPct
}

// TemDespesas informa se há algo a ratear ou descontar.
func (d DespesasFixas) TemDespesas() bool {
	return d.TotalMensal() > 0 || d.OutrosPct() > 0
}
