// internal/precificacao/dto.go
package precificacao

import (
	"github.com/lucrocerto/api-precificacao/internal/projecao"
	"github.com/lucrocerto/api-precificacao/internal/tarifas"
)

// SimularVendaDTO é o corpo do POST /precificacao/{marketplace}.
type SimularVendaDTO struct {
	Custo      float64 `json:"custo"`
	CustoExtra float64 `json:"custoExtra"`
	Frete      float64 `json:"frete"`
	PesoGramas float64 `json:"pesoGramas"`

	ImpostoPct        float64 `json:"impostoPct"`
	MargemDesejadaPct float64 `json:"margemDesejadaPct"`

	Categoria        string `json:"categoria"`
	TipoAnuncio      string `json:"tipoAnuncio"`
	Logistica        string `json:"logistica"`
	FreteGratis      bool   `json:"freteGratis"`
	CobrarTarifaFixa *bool  `json:"cobrarTarifaFixa"` // omitido = true

	// Opcional: despesas fixas mensais para a segunda simulação, com rateio.
	DespesasFixas *projecao.DespesasFixas `json:"despesasFixas"`
}

// paraParametros monta os parâmetros da simulação sem despesas fixas.
func (d SimularVendaDTO) paraParametros() ParametrosVenda {
	cobrarTarifa := true
	if d.CobrarTarifaFixa != nil {
		cobrarTarifa = *d.CobrarTarifaFixa
	}
	return ParametrosVenda{
		Custo:             d.Custo,
		CustoExtra:        d.CustoExtra,
		Frete:             d.Frete,
		PesoGramas:        d.PesoGramas,
		ImpostoPct:        d.ImpostoPct,
		MargemDesejadaPct: d.MargemDesejadaPct,
		Categoria:         d.Categoria,
		TipoAnuncio:       tarifas.TipoAnuncio(d.TipoAnuncio),
		Logistica:         Logistica(d.Logistica),
		FreteGratis:       d.FreteGratis,
		CobrarTarifaFixa:  cobrarTarifa,
	}
}

// SimulacaoVendaResposta devolve o resultado sem e com despesas fixas, as
// projeções mensais e o ponto de equilíbrio quando calculável.
type SimulacaoVendaResposta struct {
	Marketplace          string                    `json:"marketplace"`
	Resultado            ResultadoVenda            `json:"resultado"`
	ResultadoComDespesas *ResultadoVenda           `json:"resultadoComDespesas,omitempty"`
	Projecao             []projecao.ProjecaoVolume `json:"projecaoMensal"`
	ProjecaoComDespesas  []projecao.ProjecaoVolume `json:"projecaoComDespesas,omitempty"`
	PontoEquilibrio      *float64                  `json:"pontoEquilibrioUnidades,omitempty"`
}
