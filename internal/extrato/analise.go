// internal/extrato/analise.go
package extrato

import "math"

// Analisar classifica cada transação e consolida os indicadores do extrato.
// Os totais usam valor absoluto; o sinal já foi consumido na classificação.
func Analisar(transacoes []Transacao) Analise {
	analise := Analise{
		GastosPorCategoria: make(map[string]float64),
	}

	for i := range transacoes {
		t := &transacoes[i]
		t.Tipo, t.Categoria = Classificar(t.Descricao, t.Valor)

		valor := math.Abs(t.Valor)
		switch t.Tipo {
		case Receita:
			analise.TotalReceitas += valor
		case Investimento:
			analise.TotalInvestido += valor
		case Despesa:
			analise.TotalDespesas += valor
			analise.GastosPorCategoria[t.Categoria] += valor
			if analise.MaiorDespesa == nil || valor > math.Abs(analise.MaiorDespesa.Valor) {
				maior := *t
				analise.MaiorDespesa = &maior
			}
		}
	}

	analise.Saldo = analise.TotalReceitas - analise.TotalDespesas - analise.TotalInvestido
	analise.Transacoes = transacoes
	return analise
}
