// internal/precificacao/shopee.go
package precificacao

import (
	"github.com/lucrocerto/api-precificacao/internal/tarifas"
)

// CalcularShopee resolve o preço de venda na Shopee.
//
// A tarifa por item é fixa (R$4,00) quando o preço fica no piso de R$8 ou
// acima. Abaixo do piso a tarifa é 50% do próprio preço e vira um segundo
// termo linear: a equação é resolvida de novo com o divisor reduzido em 0.5,
// e essa solução alternativa só vale quando a solução padrão falha o piso.
func CalcularShopee(p ParametrosVenda) (ResultadoVenda, error) {
	comissaoPct, err := tarifas.ComissaoShopee(p.Categoria, p.FreteGratis)
	if err != nil {
		return ResultadoVenda{}, err
	}

	d := divisor(comissaoPct, p)
	base := p.Custo + p.CustoExtra + p.Frete + p.DespesaFixaUnitaria

	var preco float64
	if d > divisorMinimo {
		candidato := (base + tarifas.TarifaFixaShopee) / d
		if candidato >= tarifas.PisoItemBaratoShopee {
			preco = candidato
		} else {
			dItemBarato := d - 0.5
			if dItemBarato > divisorMinimo {
				preco = base / dItemBarato
			}
		}
	}
	preco = arredonda(preco)

	// Recalcula tudo sobre o preço final arredondado.
	tarifaFixa := tarifas.TarifaFixaShopeePorPreco(preco)
	comissao := preco * comissaoPct / 100
	imposto := preco * p.ImpostoPct / 100
	outros := preco * p.OutrosPct / 100
	tarifasSemImposto := comissao + tarifaFixa + outros

	custoTotal := base + tarifasSemImposto + imposto
	lucro := preco - custoTotal

	return ResultadoVenda{
		PrecoSugerido: preco,
		ComissaoPct:   comissaoPct,
		Comissao:      comissao,
		TarifaFixa:    tarifaFixa,
		Frete:         p.Frete,
		Imposto:       imposto,
		Outros:        outros,
		TarifasTotais: tarifasSemImposto + imposto,
		CustoTotal:    custoTotal,
		Lucro:         lucro,
		MargemPct:     razaoPct(lucro, preco),
		RoiPct:        razaoPct(lucro, base),
		ValorRecebido: preco - tarifasSemImposto - imposto,
	}, nil
}
