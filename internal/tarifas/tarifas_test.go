package tarifas

import (
	"errors"
	"testing"
)

func TestTarifaFixaMercadoLivre(t *testing.T) {
	tests := []struct {
		name  string
		preco float64
		want  float64
	}{
		{"primeira faixa", 10.00, 6.25},
		{"limite da primeira faixa fica na faixa de baixo", 29.00, 6.25},
		{"logo acima do limite muda de faixa", 29.01, 6.50},
		{"limite da segunda faixa", 50.00, 6.50},
		{"terceira faixa", 78.99, 6.75},
		{"limite de isenção zera a tarifa", 79.00, 0},
		{"bem acima do limite", 250.00, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := TarifaFixaMercadoLivre(tc.preco); got != tc.want {
				t.Fatalf("TarifaFixaMercadoLivre(%.2f) = %.2f, esperado %.2f", tc.preco, got, tc.want)
			}
		})
	}
}

func TestComissaoMercadoLivre(t *testing.T) {
	pct, err := ComissaoMercadoLivre(AnuncioClassico, "Eletrodomésticos")
	if err != nil {
		t.Fatal(err)
	}
	if pct != 11.0 {
		t.Fatalf("comissão Clássico/Eletrodomésticos = %.1f, esperado 11.0", pct)
	}

	pct, err = ComissaoMercadoLivre(AnuncioPremium, "Livros, Revistas e Comics")
	if err != nil {
		t.Fatal(err)
	}
	if pct != 19.0 {
		t.Fatalf("comissão Premium/Livros = %.1f, esperado 19.0", pct)
	}

	if _, err := ComissaoMercadoLivre(AnuncioClassico, "Categoria Inexistente"); !errors.Is(err, ErrCategoriaDesconhecida) {
		t.Fatalf("esperado ErrCategoriaDesconhecida, veio %v", err)
	}
	if _, err := ComissaoMercadoLivre("Turbo", "Games"); !errors.Is(err, ErrTipoAnuncioDesconhecido) {
		t.Fatalf("esperado ErrTipoAnuncioDesconhecido, veio %v", err)
	}
}

func TestTarifaPorPesoAmazon(t *testing.T) {
	tests := []struct {
		name string
		peso float64
		want float64
	}{
		{"abaixo da primeira faixa", 100, 19.95},
		{"limite exato fica na própria faixa", 250, 19.95},
		{"faixa de 2kg", 2000, 22.45},
		{"logo acima de 2kg muda de faixa", 2001, 23.45},
		{"acima do teto vale a última faixa", 45000, 39.45},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := TarifaPorPesoAmazon(tc.peso); got != tc.want {
				t.Fatalf("TarifaPorPesoAmazon(%.0f) = %.2f, esperado %.2f", tc.peso, got, tc.want)
			}
		})
	}
}

func TestTarifaLogisticaAmazon(t *testing.T) {
	tests := []struct {
		name  string
		preco float64
		peso  float64
		want  float64
	}{
		{"preço baixo, primeira faixa", 20.00, 5000, 4.50},
		{"segunda faixa de preço", 49.99, 5000, 6.50},
		{"entre 78.99 e 79 vale a última tarifa fixa", 78.995, 5000, 6.75},
		{"a partir de 79 a tarifa é por peso", 79.00, 500, 20.45},
		{"preço alto com peso alto", 150.00, 12000, 28.45},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := TarifaLogisticaAmazon(tc.preco, tc.peso); got != tc.want {
				t.Fatalf("TarifaLogisticaAmazon(%.3f, %.0f) = %.2f, esperado %.2f", tc.preco, tc.peso, got, tc.want)
			}
		})
	}
}

func TestComissaoShopee(t *testing.T) {
	pct, err := ComissaoShopee("Brinquedos", false)
	if err != nil {
		t.Fatal(err)
	}
	if pct != 14.0 {
		t.Fatalf("comissão base = %.1f, esperado 14.0", pct)
	}

	pct, err = ComissaoShopee("Brinquedos", true)
	if err != nil {
		t.Fatal(err)
	}
	if pct != 20.0 {
		t.Fatalf("comissão com Frete Grátis = %.1f, esperado 20.0", pct)
	}

	if _, err := ComissaoShopee("Náutica", false); !errors.Is(err, ErrCategoriaDesconhecida) {
		t.Fatalf("esperado ErrCategoriaDesconhecida, veio %v", err)
	}
}

func TestTarifaFixaShopeePorPreco(t *testing.T) {
	if got := TarifaFixaShopeePorPreco(7.00); got != 3.50 {
		t.Fatalf("abaixo do piso a tarifa deve ser metade do preço: %.2f", got)
	}
	if got := TarifaFixaShopeePorPreco(8.00); got != 4.00 {
		t.Fatalf("no piso vale a tarifa cheia: %.2f", got)
	}
	if got := TarifaFixaShopeePorPreco(0); got != 4.00 {
		t.Fatalf("preço zero usa a tarifa cheia: %.2f", got)
	}
}

func TestFaixasDevolvemCopia(t *testing.T) {
	faixas := FaixasFixasMercadoLivre()
	faixas[0].Valor = 99
	if TarifaFixaMercadoLivre(10.00) != 6.25 {
		t.Fatal("alterar a cópia não pode afetar a tabela original")
	}
}

func TestCategoriasOrdenadas(t *testing.T) {
	categorias := CategoriasAmazon()
	if len(categorias) != 18 {
		t.Fatalf("esperadas 18 categorias, vieram %d", len(categorias))
	}
	for i := 1; i < len(categorias); i++ {
		if categorias[i-1] >= categorias[i] {
			t.Fatalf("categorias fora de ordem: %q >= %q", categorias[i-1], categorias[i])
		}
	}
}
