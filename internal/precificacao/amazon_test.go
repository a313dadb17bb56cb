package precificacao

import (
	"math"
	"testing"

	"github.com/lucrocerto/api-precificacao/internal/tarifas"
)

func TestCalcularAmazonFBM(t *testing.T) {
	r, err := CalcularAmazon(ParametrosVenda{
		Custo:             40.00,
		Frete:             15.00,
		MargemDesejadaPct: 10.0,
		Categoria:         "Livros",
		Logistica:         LogisticaFBM,
	})
	if err != nil {
		t.Fatal(err)
	}

	// (40 + 15) / 0.75 = 73.3333, resolvido em um passo
	if r.PrecoSugerido != 73.33 {
		t.Fatalf("preço sugerido = %.2f, esperado 73.33", r.PrecoSugerido)
	}
	if r.TarifaFixa != 0 {
		t.Fatalf("FBM não tem tarifa de logística, veio %.2f", r.TarifaFixa)
	}
	if r.Frete != 15.00 {
		t.Fatalf("frete FBM = %.2f, esperado 15.00", r.Frete)
	}
	if r.ComissaoPct != 15.0 {
		t.Fatalf("comissão Livros = %.1f%%, esperado 15.0%%", r.ComissaoPct)
	}
}

func TestCalcularAmazonDBAFaixaDePreco(t *testing.T) {
	r, err := CalcularAmazon(ParametrosVenda{
		Custo:      10.00,
		PesoGramas: 800,
		Categoria:  "Outros",
		Logistica:  LogisticaDBA,
	})
	if err != nil {
		t.Fatal(err)
	}

	// (10 + 4.50) / 0.88 = 16.4773 cai na primeira faixa de preço
	if r.PrecoSugerido != 16.48 {
		t.Fatalf("preço sugerido = %.2f, esperado 16.48", r.PrecoSugerido)
	}
	if r.TarifaFixa != 4.50 {
		t.Fatalf("tarifa DBA = %.2f, esperado 4.50", r.TarifaFixa)
	}
}

func TestCalcularAmazonDBAPorPeso(t *testing.T) {
	r, err := CalcularAmazon(ParametrosVenda{
		Custo:      100.00,
		PesoGramas: 2000,
		Categoria:  "Saúde",
		Logistica:  LogisticaDBA,
	})
	if err != nil {
		t.Fatal(err)
	}

	// nenhuma faixa de preço comporta o custo: regime por peso,
	// (100 + 22.45) / 0.90 = 136.0556
	if r.PrecoSugerido != 136.06 {
		t.Fatalf("preço sugerido = %.2f, esperado 136.06", r.PrecoSugerido)
	}
	if r.TarifaFixa != 22.45 {
		t.Fatalf("tarifa por peso (2kg) = %.2f, esperado 22.45", r.TarifaFixa)
	}
	if r.Frete != 0 {
		t.Fatalf("DBA não tem frete do vendedor, veio %.2f", r.Frete)
	}
}

func TestCalcularAmazonRoiSemDespesaFixa(t *testing.T) {
	r, err := CalcularAmazon(ParametrosVenda{
		Custo:               40.00,
		Frete:               10.00,
		DespesaFixaUnitaria: 5.00,
		MargemDesejadaPct:   10.0,
		Categoria:           "Outros",
		Logistica:           LogisticaFBM,
	})
	if err != nil {
		t.Fatal(err)
	}

	// o ROI usa só custo + extra + frete; a despesa fixa rateada fica fora
	// da base, ainda que entre no custo total
	baseRoi := 40.00 + 10.00
	if !quaseIgual(r.RoiPct, r.Lucro/baseRoi*100) {
		t.Fatalf("ROI = %.4f%%, esperado %.4f%% sobre base %.2f",
			r.RoiPct, r.Lucro/baseRoi*100, baseRoi)
	}
	if !quaseIgual(r.PrecoSugerido, r.CustoTotal+r.Lucro) {
		t.Fatalf("preço %.4f != custo total %.4f + lucro %.4f",
			r.PrecoSugerido, r.CustoTotal, r.Lucro)
	}
}

func TestCalcularAmazonInviavel(t *testing.T) {
	r, err := CalcularAmazon(ParametrosVenda{
		Custo:             30.00,
		ImpostoPct:        20.0,
		MargemDesejadaPct: 70.0,
		Categoria:         "Outros",
		Logistica:         LogisticaFBM,
	})
	if err != nil {
		t.Fatal(err)
	}
	if r.PrecoSugerido != 0 {
		t.Fatalf("precificação inviável deveria devolver preço zero, veio %.2f", r.PrecoSugerido)
	}
	if r.MargemPct != 0 {
		t.Fatalf("margem com preço zero deveria ser 0, veio %.2f", r.MargemPct)
	}
}

func TestCalcularAmazonCategoriaDesconhecida(t *testing.T) {
	_, err := CalcularAmazon(ParametrosVenda{Custo: 10, Categoria: "Jardinagem Espacial"})
	if err == nil {
		t.Fatal("esperado erro de categoria desconhecida")
	}
}

func TestCalcularAmazonTarifaConsistenteComPreco(t *testing.T) {
	for _, custo := range []float64{8, 22, 41, 58, 70, 120} {
		r, err := CalcularAmazon(ParametrosVenda{
			Custo:             custo,
			PesoGramas:        1500,
			MargemDesejadaPct: 10.0,
			Categoria:         "Casa",
			Logistica:         LogisticaDBA,
		})
		if err != nil {
			t.Fatal(err)
		}
		if esperada := tarifas.TarifaLogisticaAmazon(r.PrecoSugerido, 1500); r.TarifaFixa != esperada {
			t.Fatalf("custo %.2f: tarifa %.2f difere da vigente no preço %.2f (%.2f)",
				custo, r.TarifaFixa, r.PrecoSugerido, esperada)
		}
		if math.IsNaN(r.MargemPct) || math.IsNaN(r.RoiPct) {
			t.Fatalf("custo %.2f: percentuais NaN", custo)
		}
	}
}
