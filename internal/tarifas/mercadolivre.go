// internal/tarifas/mercadolivre.go
package tarifas

import "fmt"

// TipoAnuncio distingue as tabelas de comissão do Mercado Livre.
type TipoAnuncio string

const (
	AnuncioClassico TipoAnuncio = "Clássico"
	AnuncioPremium  TipoAnuncio = "Premium"
)

// Comissões por tipo de anúncio e categoria, em percentual sobre o preço.
var comissoesMercadoLivre = map[TipoAnuncio]map[string]float64{
	AnuncioClassico: {
		"Acessórios para Veículos":   13.0,
		"Alimentos e Bebidas":        12.0,
		"Bebês":                      14.0,
		"Beleza e Cuidado Pessoal":   14.0,
		"Brinquedos e Hobbies":       14.0,
		"Calçados, Roupas e Bolsas":  14.0,
		"Casa, Móveis e Decoração":   13.0,
		"Celulares e Telefones":      12.0,
		"Eletrodomésticos":           11.0,
		"Eletrônicos, Áudio e Vídeo": 12.0,
		"Esportes e Fitness":         14.0,
		"Ferramentas":                12.0,
		"Games":                      12.0,
		"Informática":                12.0,
		"Instrumentos Musicais":      12.0,
		"Livros, Revistas e Comics":  16.0,
		"Saúde":                      14.0,
		"Outros":                     13.0,
	},
	AnuncioPremium: {
		"Acessórios para Veículos":   18.0,
		"Alimentos e Bebidas":        17.0,
		"Bebês":                      18.0,
		"Beleza e Cuidado Pessoal":   18.0,
		"Brinquedos e Hobbies":       18.0,
		"Calçados, Roupas e Bolsas":  18.0,
		"Casa, Móveis e Decoração":   18.0,
		"Celulares e Telefones":      16.0,
		"Eletrodomésticos":           16.0,
		"Eletrônicos, Áudio e Vídeo": 16.0,
		"Esportes e Fitness":         18.0,
		"Ferramentas":                17.0,
		"Games":                      17.0,
		"Informática":                16.0,
		"Instrumentos Musicais":      17.0,
		"Livros, Revistas e Comics":  19.0,
		"Saúde":                      18.0,
		"Outros":                     17.0,
	},
}

// Tarifa fixa por faixa de preço, cobrada apenas abaixo do limite de isenção.
var faixasFixasMercadoLivre = []Faixa{
	{Limite: 29.00, Valor: 6.25},
	{Limite: 50.00, Valor: 6.50},
	{Limite: 79.00, Valor: 6.75},
}

// ComissaoMercadoLivre devolve o percentual de comissão para a categoria no
// tipo de anúncio informado.
func ComissaoMercadoLivre(anuncio TipoAnuncio, categoria string) (float64, error) {
	tabela, ok := comissoesMercadoLivre[anuncio]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrTipoAnuncioDesconhecido, anuncio)
	}
	pct, ok := tabela[categoria]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrCategoriaDesconhecida, categoria)
	}
	return pct, nil
}

// TarifaFixaMercadoLivre devolve a tarifa fixa para um preço de venda.
// A partir de R$79 não há tarifa fixa. Abaixo disso vale a primeira faixa
// que comporta o preço; como a última faixa termina exatamente no limite de
// isenção, a consulta nunca passa da tabela com a guarda de R$79 aplicada.
func TarifaFixaMercadoLivre(preco float64) float64 {
	if preco >= LimiteIsencaoTarifaFixa {
		return 0
	}
	valor, _ := valorNaFaixa(faixasFixasMercadoLivre, preco)
	return valor
}

// FaixasFixasMercadoLivre devolve uma cópia da tabela de tarifa fixa.
func FaixasFixasMercadoLivre() []Faixa {
	return copiaFaixas(faixasFixasMercadoLivre)
}

// CategoriasMercadoLivre lista as categorias disponíveis, em ordem alfabética.
func CategoriasMercadoLivre() []string {
	return categoriasOrdenadas(comissoesMercadoLivre[AnuncioClassico])
}
