// internal/precificacao/mercadolivre.go
package precificacao

import (
	"math"

	"github.com/lucrocerto/api-precificacao/internal/tarifas"
)

// CalcularMercadoLivre resolve o preço de venda no Mercado Livre.
//
// Abaixo de R$79 a tarifa fixa depende da faixa em que o próprio preço cai;
// a partir de R$79 não há tarifa fixa, mas o vendedor paga parte do frete.
// O preço é buscado faixa a faixa e, esgotadas as faixas, cai no regime sem
// tarifa fixa com piso em R$79.
func CalcularMercadoLivre(p ParametrosVenda) (ResultadoVenda, error) {
	comissaoPct, err := tarifas.ComissaoMercadoLivre(p.TipoAnuncio, p.Categoria)
	if err != nil {
		return ResultadoVenda{}, err
	}

	d := divisor(comissaoPct, p)
	base := p.Custo + p.CustoExtra + p.DespesaFixaUnitaria

	var preco float64
	if d > divisorMinimo {
		var ok bool
		preco, ok = precoPorFaixas(base, tarifas.FaixasFixasMercadoLivre(), p.CobrarTarifaFixa, d)
		if !ok {
			// regime >= 79: sem tarifa fixa, frete do vendedor entra como custo
			preco = math.Max(tarifas.LimiteIsencaoTarifaFixa, (base+p.Frete)/d)
		}
	}
	preco = arredonda(preco)

	// Recalcula tudo sobre o preço final arredondado.
	tarifaFixa := 0.0
	if p.CobrarTarifaFixa {
		tarifaFixa = tarifas.TarifaFixaMercadoLivre(preco)
	}
	frete := 0.0
	if preco >= tarifas.LimiteIsencaoTarifaFixa {
		frete = p.Frete
	}

	comissao := preco * comissaoPct / 100
	imposto := preco * p.ImpostoPct / 100
	outros := preco * p.OutrosPct / 100
	tarifasSemImposto := comissao + tarifaFixa + outros

	custoTotal := p.Custo + p.CustoExtra + p.DespesaFixaUnitaria + frete + tarifasSemImposto + imposto
	lucro := preco - custoTotal
	baseRoi := p.Custo + p.CustoExtra + frete + p.DespesaFixaUnitaria

	return ResultadoVenda{
		PrecoSugerido: preco,
		ComissaoPct:   comissaoPct,
		Comissao:      comissao,
		TarifaFixa:    tarifaFixa,
		Frete:         frete,
		Imposto:       imposto,
		Outros:        outros,
		TarifasTotais: tarifasSemImposto + imposto,
		CustoTotal:    custoTotal,
		Lucro:         lucro,
		MargemPct:     razaoPct(lucro, preco),
		RoiPct:        razaoPct(lucro, baseRoi),
		ValorRecebido: preco - tarifasSemImposto - imposto - frete,
	}, nil
}
