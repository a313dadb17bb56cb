// internal/extrato/categorizador.go
package extrato

import "strings"

// Classificação determinística por palavra-chave: mesma entrada, mesma
// saída. Investimento tem prioridade sobre o sinal do valor (uma aplicação
// sai da conta mas não é gasto); depois o sinal decide entre receita e
// despesa, e só despesas ganham categoria por palavra-chave.

const (
	CategoriaReceitas      = "Receitas"
	CategoriaInvestimentos = "Investimentos"
	CategoriaOutros        = "Outros"
)

var palavrasInvestimento = []string{
	"cdb", "tesouro", "lci", "lca", "poupanca", "poupança",
	"aplicacao", "aplicação", "invest", "fundo", "acoes", "ações",
	"previdencia", "previdência", "corretora",
}

// Categorias de despesa em ordem de prioridade (a primeira que casar vale).
var categoriasDespesa = []struct {
	Nome     string
	Palavras []string
}{
	{"Marketing", []string{"ads", "publicidade", "anuncio", "anúncio", "marketing", "facebook", "google", "meta platforms"}},
	{"Fornecedores", []string{"fornecedor", "atacado", "distribuidora", "mercadoria", "estoque", "importacao", "importação"}},
	{"Impostos", []string{"darf", "das simei", "das ", "imposto", "tributo", "icms", "simples nacional", "prefeitura"}},
	{"Logística", []string{"correios", "frete", "transportadora", "loggi", "jadlog", "motoboy", "envio"}},
	{"Pessoal", []string{"salario", "salário", "pro-labore", "pró-labore", "folha", "inss", "fgts"}},
}

// Classificar decide o tipo e a categoria de uma transação a partir da
// descrição e do sinal do valor.
func Classificar(descricao string, valor float64) (TipoTransacao, string) {
	desc := strings.ToLower(descricao)

	if contemAlguma(desc, palavrasInvestimento) {
		return Investimento, CategoriaInvestimentos
	}
	if valor >= 0 {
		return Receita, CategoriaReceitas
	}
	for _, c := range categoriasDespesa {
		if contemAlguma(desc, c.Palavras) {
			return Despesa, c.Nome
		}
	}
	return Despesa, CategoriaOutros
}

func contemAlguma(texto string, palavras []string) bool {
	for _, p := range palavras {
		if strings.Contains(texto, p) {
			return true
		}
	}
	return false
}
