// internal/precificacao/calculo.go
package precificacao

import (
	"math"

	"github.com/lucrocerto/api-precificacao/internal/tarifas"
)

// divisorMinimo: divisor abaixo disso significa que comissão, imposto, margem
// e outros consomem praticamente 100% do preço — não existe preço que atinja
// a margem. O cálculo devolve preço zero como sentinela.
const divisorMinimo = 0.01

// divisor da equação de preço: a parcela do preço que sobra para cobrir os
// custos em reais depois de descontar tudo que é percentual.
func divisor(comissaoPct float64, p ParametrosVenda) float64 {
	return 1 - (comissaoPct+p.ImpostoPct+p.MargemDesejadaPct+p.OutrosPct)/100
}

// arredonda para 2 casas. O valor arredondado é o preço oficial: toda tarifa
// é recomputada sobre ele, nunca sobre o candidato cheio, porque o
// arredondamento pode mudar a faixa de tarifa aplicável.
func arredonda(v float64) float64 {
	return math.Round(v*100) / 100
}

// razaoPct devolve num/den em percentual, com guarda contra denominador não
// positivo (resolve para 0, nunca para NaN).
func razaoPct(num, den float64) float64 {
	if den > 0 {
		return num / den * 100
	}
	return 0
}

// precoPorFaixas resolve a equação linear de preço para cada faixa de tarifa
// fixa, em ordem crescente, e aceita a primeira raiz consistente com a
// própria faixa — a interpretação econômica é "a faixa mais barata em que o
// preço cai naturalmente". Na última faixa a comparação é estrita contra o
// limite de isenção: em R$79 já vale o regime sem tarifa fixa.
func precoPorFaixas(base float64, faixas []tarifas.Faixa, cobrarTarifa bool, d float64) (preco float64, ok bool) {
	for i, f := range faixas {
		tarifa := 0.0
		if cobrarTarifa {
			tarifa = f.Valor
		}
		candidato := (base + tarifa) / d
		if i < len(faixas)-1 {
			if candidato <= f.Limite {
				return candidato, true
			}
		} else if candidato < tarifas.LimiteIsencaoTarifaFixa {
			return candidato, true
		}
	}
	return 0, false
}

// Calcular resolve o preço sugerido e o detalhamento da venda no marketplace
// informado. Erros vêm apenas de categoria/tipo de anúncio/marketplace
// desconhecidos; precificação inviável devolve o resultado sentinela de
// preço zero, não erro.
func Calcular(m Marketplace, p ParametrosVenda) (ResultadoVenda, error) {
	switch m {
	case MercadoLivre:
		return CalcularMercadoLivre(p)
	case Amazon:
		return CalcularAmazon(p)
	case Shopee:
		return CalcularShopee(p)
	default:
		return ResultadoVenda{}, ErrMarketplaceDesconhecido
	}
}
