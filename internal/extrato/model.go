// internal/extrato/model.go
package extrato

// TipoTransacao classifica o fluxo de uma linha do extrato.
type TipoTransacao string

const (
	Receita      TipoTransacao = "receita"
	Despesa      TipoTransacao = "despesa"
	Investimento TipoTransacao = "investimento"
)

// Transacao é uma linha do extrato bancário já interpretada.
type Transacao struct {
	Data      string        `json:"data"`
	Descricao string        `json:"descricao"`
	Valor     float64       `json:"valor"`
	Tipo      TipoTransacao `json:"tipo"`
	Categoria string        `json:"categoria"`
}

// Analise consolida os indicadores de um extrato classificado.
type Analise struct {
	Transacoes         []Transacao        `json:"transacoes"`
	TotalReceitas      float64            `json:"totalReceitas"`
	TotalDespesas      float64            `json:"totalDespesas"`
	TotalInvestido     float64            `json:"totalInvestido"`
	Saldo              float64            `json:"saldo"`
	MaiorDespesa       *Transacao         `json:"maiorDespesa,omitempty"`
	GastosPorCategoria map[string]float64 `json:"gastosPorCategoria"`
}
