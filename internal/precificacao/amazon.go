// internal/precificacao/amazon.go
package precificacao

import (
	"math"

	"github.com/lucrocerto/api-precificacao/internal/tarifas"
)

// CalcularAmazon resolve o preço de venda na Amazon.
//
// Na logística DBA a tarifa segue faixas de preço abaixo de R$79 e passa a
// ser dimensionada pelo peso embalado a partir daí. No FBM não há tarifa de
// logística: o frete do vendedor entra como custo linear e a equação é
// resolvida em um passo.
func CalcularAmazon(p ParametrosVenda) (ResultadoVenda, error) {
	comissaoPct, err := tarifas.ComissaoAmazon(p.Categoria)
	if err != nil {
		return ResultadoVenda{}, err
	}

	d := divisor(comissaoPct, p)
	base := p.Custo + p.CustoExtra + p.DespesaFixaUnitaria

	var preco float64
	if d > divisorMinimo {
		if p.Logistica == LogisticaDBA {
			var ok bool
			preco, ok = precoPorFaixas(base, tarifas.FaixasFixasAmazon(), true, d)
			if !ok {
				tarifaPeso := tarifas.TarifaPorPesoAmazon(p.PesoGramas)
				preco = math.Max(tarifas.LimiteIsencaoTarifaFixa, (base+tarifaPeso)/d)
			}
		} else {
			preco = (base + p.Frete) / d
		}
	}
	preco = arredonda(preco)

	// Recalcula tudo sobre o preço final arredondado.
	tarifaLogistica := 0.0
	if p.Logistica == LogisticaDBA {
		tarifaLogistica = tarifas.TarifaLogisticaAmazon(preco, p.PesoGramas)
	}
	freteFBM := 0.0
	if p.Logistica == LogisticaFBM {
		freteFBM = p.Frete
	}

	comissao := preco * comissaoPct / 100
	imposto := preco * p.ImpostoPct / 100
	outros := preco * p.OutrosPct / 100
	tarifasSemImposto := comissao + tarifaLogistica + outros

	lucro := preco - (base + freteFBM + tarifasSemImposto + imposto)
	// Convenção da Amazon: a base do ROI não inclui a despesa fixa rateada.
	baseRoi := p.Custo + p.CustoExtra + freteFBM

	return ResultadoVenda{
		PrecoSugerido: preco,
		ComissaoPct:   comissaoPct,
		Comissao:      comissao,
		TarifaFixa:    tarifaLogistica,
		Frete:         freteFBM,
		Imposto:       imposto,
		Outros:        outros,
		TarifasTotais: tarifasSemImposto + imposto,
		CustoTotal:    baseRoi + tarifasSemImposto + imposto + p.DespesaFixaUnitaria,
		Lucro:         lucro,
		MargemPct:     razaoPct(lucro, preco),
		RoiPct:        razaoPct(lucro, baseRoi),
		ValorRecebido: preco - tarifasSemImposto - imposto,
	}, nil
}
