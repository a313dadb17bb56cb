// internal/extrato/csv.go
package extrato

import (
	"bufio"
	"encoding/csv"
	"errors"
	"io"
	"strconv"
	"strings"
)

var ErrExtratoVazio = errors.New("extrato sem transações")

// LerCSV interpreta um extrato bancário em CSV. Aceita separador vírgula ou
// ponto e vírgula, cabeçalho opcional e valores no formato brasileiro
// (1.234,56) ou com ponto decimal. Espera as colunas data, descrição e valor,
// por nome no cabeçalho ou nessa ordem.
func LerCSV(r io.Reader) ([]Transacao, error) {
	br := bufio.NewReader(r)
	primeira, err := br.Peek(1024)
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return nil, err
	}

	leitor := csv.NewReader(br)
	leitor.FieldsPerRecord = -1
	leitor.TrimLeadingSpace = true
	if delimitadorPontoEVirgula(primeira) {
		leitor.Comma = ';'
	}

	registros, err := leitor.ReadAll()
	if err != nil {
		return nil, err
	}

	colData, colDescricao, colValor := 0, 1, 2
	inicio := 0
	if len(registros) > 0 {
		if d, dc, v, ok := colunasPorCabecalho(registros[0]); ok {
			colData, colDescricao, colValor = d, dc, v
			inicio = 1
		} else if _, err := parseValor(campo(registros[0], colValor)); err != nil {
			// primeira linha não tem valor numérico: trata como cabeçalho
			inicio = 1
		}
	}

	var transacoes []Transacao
	for _, reg := range registros[inicio:] {
		valor, err := parseValor(campo(reg, colValor))
		if err != nil {
			continue // linha de saldo, rodapé ou lixo do banco
		}
		transacoes = append(transacoes, Transacao{
			Data:      strings.TrimSpace(campo(reg, colData)),
			Descricao: strings.TrimSpace(campo(reg, colDescricao)),
			Valor:     valor,
		})
	}
	if len(transacoes) == 0 {
		return nil, ErrExtratoVazio
	}
	return transacoes, nil
}

// delimitadorPontoEVirgula olha só a primeira linha do arquivo.
func delimitadorPontoEVirgula(amostra []byte) bool {
	linha := string(amostra)
	if i := strings.IndexAny(linha, "\r\n"); i >= 0 {
		linha = linha[:i]
	}
	return strings.Contains(linha, ";")
}

func colunasPorCabecalho(cabecalho []string) (data, descricao, valor int, ok bool) {
	data, descricao, valor = -1, -1, -1
	for i, nome := range cabecalho {
		switch normaliza(nome) {
		case "data", "date":
			data = i
		case "descricao", "historico", "lancamento", "description":
			descricao = i
		case "valor", "montante", "amount":
			valor = i
		}
	}
	if data >= 0 && descricao >= 0 && valor >= 0 {
		return data, descricao, valor, true
	}
	return 0, 1, 2, false
}

func normaliza(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	substituicoes := strings.NewReplacer("ç", "c", "ã", "a", "á", "a", "é", "e", "í", "i", "ó", "o")
	return substituicoes.Replace(s)
}

func campo(reg []string, i int) string {
	if i < len(reg) {
		return reg[i]
	}
	return ""
}

// parseValor aceita "R$ 1.234,56", "1234,56", "-1234.56".
func parseValor(s string) (float64, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, "R$", ""))
	s = strings.ReplaceAll(s, " ", "")
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}
	return strconv.ParseFloat(s, 64)
}
