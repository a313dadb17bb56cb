// internal/tarifas/model.go
package tarifas

import (
	"errors"
	"sort"
)

// Faixa é um degrau de uma tabela escalonada: o valor vale para qualquer
// entrada menor ou igual ao limite. As tabelas são mantidas em ordem
// crescente de limite e a consulta devolve a primeira faixa que comporta
// a entrada.
type Faixa struct {
	Limite float64 `json:"limite"`
	Valor  float64 `json:"valor"`
}

// LimiteIsencaoTarifaFixa é o preço a partir do qual Mercado Livre e Amazon
// deixam de cobrar tarifa fixa (e passam a cobrar frete ou tarifa por peso).
const LimiteIsencaoTarifaFixa = 79.00

var (
	ErrCategoriaDesconhecida   = errors.New("categoria desconhecida")
	ErrTipoAnuncioDesconhecido = errors.New("tipo de anúncio desconhecido")
)

// valorNaFaixa percorre as faixas em ordem crescente e devolve o valor da
// primeira cujo limite comporta a entrada. ok=false quando a entrada passa
// do limite máximo da tabela; cada chamador decide o que fazer nesse caso.
func valorNaFaixa(faixas []Faixa, entrada float64) (valor float64, ok bool) {
	for _, f := range faixas {
		if entrada <= f.Limite {
			return f.Valor, true
		}
	}
	return 0, false
}

// copiaFaixas devolve uma cópia para os chamadores não alterarem as tabelas.
func copiaFaixas(faixas []Faixa) []Faixa {
	out := make([]Faixa, len(faixas))
	copy(out, faixas)
	return out
}

func categoriasOrdenadas(tabela map[string]float64) []string {
	nomes := make([]string, 0, len(tabela))
	for nome := range tabela {
		nomes = append(nomes, nome)
	}
	sort.Strings(nomes)
	return nomes
}
