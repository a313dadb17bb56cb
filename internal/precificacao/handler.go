// internal/precificacao/handler.go
package precificacao

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/lucrocerto/api-precificacao/internal/projecao"
	"github.com/lucrocerto/api-precificacao/internal/tarifas"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// POST /precificacao/{marketplace}
func (h *Handler) Simular(w http.ResponseWriter, r *http.Request) {
	m := Marketplace(mux.Vars(r)["marketplace"])

	var dto SimularVendaDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	params := dto.paraParametros()

	resultado, err := Calcular(m, params)
	if err != nil {
		switch {
		case errors.Is(err, ErrMarketplaceDesconhecido):
			http.Error(w, "Marketplace desconhecido", http.StatusNotFound)
		case errors.Is(err, tarifas.ErrCategoriaDesconhecida),
			errors.Is(err, tarifas.ErrTipoAnuncioDesconhecido):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, "Erro ao calcular precificação", http.StatusInternalServerError)
		}
		return
	}

	resposta := SimulacaoVendaResposta{
		Marketplace: string(m),
		Resultado:   resultado,
		Projecao:    projecao.ProjecaoMensal(resultado.Lucro, nil),
	}

	if dto.DespesasFixas != nil && dto.DespesasFixas.TemDespesas() {
		despesas := *dto.DespesasFixas
		comDespesas := params
		comDespesas.DespesaFixaUnitaria = despesas.CustoPorUnidade()
		comDespesas.OutrosPct = despesas.OutrosPct()

		rcd, err := Calcular(m, comDespesas)
		if err != nil {
			http.Error(w, "Erro ao calcular precificação com despesas fixas", http.StatusInternalServerError)
			return
		}
		resposta.ResultadoComDespesas = &rcd
		resposta.ProjecaoComDespesas = projecao.ProjecaoMensal(rcd.Lucro, nil)

		// Margem de contribuição é o lucro unitário sem as despesas fixas.
		if unidades, err := projecao.PontoEquilibrio(despesas.TotalMensal(), resultado.Lucro); err == nil {
			resposta.PontoEquilibrio = &unidades
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resposta)
}
