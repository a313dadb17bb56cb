// internal/tarifas/shopee.go
package tarifas

import "fmt"

const (
	// AdicionalFreteGratisShopee é somado à comissão de quem participa do
	// programa Frete Grátis, em pontos percentuais.
	AdicionalFreteGratisShopee = 6.0

	// TarifaFixaShopee é a tarifa por item vendido a partir do piso de preço.
	TarifaFixaShopee = 4.00

	// PisoItemBaratoShopee: abaixo deste preço a tarifa fixa é substituída
	// por 50% do preço de venda.
	PisoItemBaratoShopee = 8.00
)

var comissoesShopee = map[string]float64{
	"Acessórios de Moda":      14.0,
	"Beleza e Saúde":          14.0,
	"Brinquedos":              14.0,
	"Casa e Decoração":        14.0,
	"Celulares e Acessórios":  14.0,
	"Eletrônicos":             14.0,
	"Esportes e Lazer":        14.0,
	"Ferramentas":             14.0,
	"Informática":             14.0,
	"Livros":                  14.0,
	"Moda Feminina":           14.0,
	"Moda Masculina":          14.0,
	"Pet Shop":                14.0,
	"Bebês e Crianças":        14.0,
	"Outros":                  14.0,
}

// ComissaoShopee devolve o percentual de comissão da categoria, já com o
// adicional do programa Frete Grátis quando o vendedor participa.
func ComissaoShopee(categoria string, freteGratis bool) (float64, error) {
	pct, ok := comissoesShopee[categoria]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrCategoriaDesconhecida, categoria)
	}
	if freteGratis {
		pct += AdicionalFreteGratisShopee
	}
	return pct, nil
}

// TarifaFixaShopeePorPreco devolve a tarifa por item para um preço final.
// Abaixo do piso de item barato a tarifa é metade do preço.
func TarifaFixaShopeePorPreco(preco float64) float64 {
	if preco > 0 && preco < PisoItemBaratoShopee {
		return preco * 0.5
	}
	return TarifaFixaShopee
}

// CategoriasShopee lista as categorias disponíveis, em ordem alfabética.
func CategoriasShopee() []string {
	return categoriasOrdenadas(comissoesShopee)
}
