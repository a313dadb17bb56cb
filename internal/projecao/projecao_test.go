package projecao

import (
	"errors"
	"testing"
)

func TestProjecaoMensalVolumesPadrao(t *testing.T) {
	out := ProjecaoMensal(2.50, nil)

	if len(out) != len(VolumesPadrao) {
		t.Fatalf("projeção com %d patamares, esperados %d", len(out), len(VolumesPadrao))
	}
	// 5 vendas/dia * 30 dias * R$2,50
	if out[0].VendasPorDia != 5 || out[0].LucroMensal != 375.00 {
		t.Fatalf("primeiro patamar = %+v, esperado {5 375}", out[0])
	}
	if out[len(out)-1].VendasPorDia != 100 || out[len(out)-1].LucroMensal != 7500.00 {
		t.Fatalf("último patamar = %+v, esperado {100 7500}", out[len(out)-1])
	}
}

func TestProjecaoMensalVolumesInformados(t *testing.T) {
	out := ProjecaoMensal(1.00, []int{3, 7})

	if len(out) != 2 {
		t.Fatalf("projeção com %d patamares, esperados 2", len(out))
	}
	if out[1].LucroMensal != 210.00 {
		t.Fatalf("7 vendas/dia = %.2f, esperado 210.00", out[1].LucroMensal)
	}
}

func TestProjecaoMensalLucroNegativo(t *testing.T) {
	out := ProjecaoMensal(-1.50, []int{10})
	if out[0].LucroMensal != -450.00 {
		t.Fatalf("prejuízo projetado = %.2f, esperado -450.00", out[0].LucroMensal)
	}
}

func TestPontoEquilibrio(t *testing.T) {
	unidades, err := PontoEquilibrio(900.00, 30.00)
	if err != nil {
		t.Fatal(err)
	}
	if unidades != 30.00 {
		t.Fatalf("ponto de equilíbrio = %.2f, esperado 30.00", unidades)
	}

	for _, margem := range []float64{0, -5} {
		if _, err := PontoEquilibrio(900.00, margem); !errors.Is(err, ErrMargemContribuicao) {
			t.Fatalf("margem %.0f: esperado ErrMargemContribuicao, veio %v", margem, err)
		}
	}
}

func TestDespesasFixas(t *testing.T) {
	d := DespesasFixas{
		MEI:                300,
		Plataforma:         100,
		OutrosCustos:       200,
		VendasEstimadasMes: 30,
		MarketingPct:       1.0,
		AntecipacaoPct:     0.5,
		PerdasPct:          0.5,
		OutrosImpostosPct:  1.0,
	}

	if got := d.TotalMensal(); got != 600 {
		t.Fatalf("total mensal = %.2f, esperado 600", got)
	}
	if got := d.CustoPorUnidade(); got != 20 {
		t.Fatalf("custo por unidade = %.2f, esperado 20", got)
	}
	if got := d.OutrosPct(); got != 3.0 {
		t.Fatalf("outros percentuais = %.2f, esperado 3.0", got)
	}
	if !d.TemDespesas() {
		t.Fatal("TemDespesas deveria ser verdadeiro")
	}
}

func TestDespesasFixasVazias(t *testing.T) {
	var d DespesasFixas
	if d.TemDespesas() {
		t.Fatal("zero despesas não deveria acusar TemDespesas")
	}

	d.MEI = 70
	if got := d.CustoPorUnidade(); got != 0 {
		t.Fatalf("sem vendas estimadas o rateio deve ser 0, veio %.2f", got)
	}
	if !d.TemDespesas() {
		t.Fatal("MEI preenchido deveria acusar TemDespesas")
	}
}
