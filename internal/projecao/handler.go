// internal/projecao/handler.go
package projecao

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// POST /projecoes/mensal
func (h *Handler) Mensal(w http.ResponseWriter, r *http.Request) {
	var dto struct {
		LucroPorUnidade float64 `json:"lucroPorUnidade"`
		Volumes         []int   `json:"volumes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ProjecaoMensal(dto.LucroPorUnidade, dto.Volumes))
}

// POST /projecoes/ponto-equilibrio
func (h *Handler) PontoEquilibrio(w http.ResponseWriter, r *http.Request) {
	var dto struct {
		CustosFixosMensais float64 `json:"custosFixosMensais"`
		MargemContribuicao float64 `json:"margemContribuicao"`
	}
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	unidades, err := PontoEquilibrio(dto.CustosFixosMensais, dto.MargemContribuicao)
	if errors.Is(err, ErrMargemContribuicao) {
		http.Error(w, "Margem de contribuição zero ou negativa: ponto de equilíbrio não calculável", http.StatusBadRequest)
		return
	}

	resposta := struct {
		Unidades         float64 `json:"unidades"`
		UnidadesInteiras int     `json:"unidadesInteiras"`
	}{
		Unidades:         unidades,
		UnidadesInteiras: int(math.Ceil(unidades)),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resposta)
}
