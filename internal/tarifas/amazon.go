// internal/tarifas/amazon.go
package tarifas

import "fmt"

var comissoesAmazon = map[string]float64{
	"Automotivo":               12.0,
	"Bebês":                    12.0,
	"Beleza":                   12.0,
	"Brinquedos e Jogos":       13.0,
	"Casa":                     12.0,
	"Computadores":             12.0,
	"Cozinha":                  12.0,
	"Eletrônicos":              12.0,
	"Esportes e Aventura":      12.0,
	"Ferramentas e Construção": 12.0,
	"Games e Consoles":         12.0,
	"Instrumentos Musicais":    12.0,
	"Livros":                   15.0,
	"Moda":                     13.0,
	"Pet Shop":                 12.0,
	"Papelaria e Escritório":   12.0,
	"Saúde":                    10.0,
	"Outros":                   12.0,
}

// Tarifa DBA para preços abaixo do limite de isenção.
var faixasFixasAmazon = []Faixa{
	{Limite: 30.00, Valor: 4.50},
	{Limite: 49.99, Valor: 6.50},
	{Limite: 78.99, Valor: 6.75},
}

// Tarifa DBA por peso (gramas), para preços a partir do limite de isenção.
// Tabela padrão tamanho standard, base SP capital.
var faixasPesoAmazon = []Faixa{
	{Limite: 250, Valor: 19.95},
	{Limite: 500, Valor: 20.45},
	{Limite: 1000, Valor: 21.45},
	{Limite: 2000, Valor: 22.45},
	{Limite: 5000, Valor: 23.45},
	{Limite: 9000, Valor: 25.45},
	{Limite: 13000, Valor: 28.45},
	{Limite: 17000, Valor: 31.45},
	{Limite: 23000, Valor: 35.45},
	{Limite: 30000, Valor: 39.45},
}

// ComissaoAmazon devolve o percentual de comissão da categoria.
func ComissaoAmazon(categoria string) (float64, error) {
	pct, ok := comissoesAmazon[categoria]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrCategoriaDesconhecida, categoria)
	}
	return pct, nil
}

// TarifaPorPesoAmazon devolve a tarifa de logística DBA pelo peso embalado.
// Acima do limite máximo da tabela vale a última faixa (teto, não é erro).
func TarifaPorPesoAmazon(pesoGramas float64) float64 {
	if valor, ok := valorNaFaixa(faixasPesoAmazon, pesoGramas); ok {
		return valor
	}
	return faixasPesoAmazon[len(faixasPesoAmazon)-1].Valor
}

// TarifaLogisticaAmazon devolve a tarifa DBA vigente para o par preço/peso:
// abaixo do limite de isenção a tarifa é por faixa de preço, a partir dele é
// por peso.
func TarifaLogisticaAmazon(preco, pesoGramas float64) float64 {
	if preco < LimiteIsencaoTarifaFixa {
		if valor, ok := valorNaFaixa(faixasFixasAmazon, preco); ok {
			return valor
		}
		// faixa de preço entre 78.99 e 79.00: vale a última tarifa fixa
		return faixasFixasAmazon[len(faixasFixasAmazon)-1].Valor
	}
	return TarifaPorPesoAmazon(pesoGramas)
}

// FaixasFixasAmazon devolve uma cópia da tabela de tarifa fixa DBA.
func FaixasFixasAmazon() []Faixa {
	return copiaFaixas(faixasFixasAmazon)
}

// CategoriasAmazon lista as categorias disponíveis, em ordem alfabética.
func CategoriasAmazon() []string {
	return categoriasOrdenadas(comissoesAmazon)
}
