// internal/extrato/handler.go
package extrato

import (
	"encoding/json"
	"errors"
	"net/http"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// limite de upload: 5 MB cobrem qualquer extrato mensal
const tamanhoMaximoUpload = 5 << 20

// POST /extratos/analise — multipart com o CSV no campo "arquivo".
func (h *Handler) Analisar(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(tamanhoMaximoUpload); err != nil {
		http.Error(w, "Upload inválido", http.StatusBadRequest)
		return
	}

	arquivo, _, err := r.FormFile("arquivo")
	if err != nil {
		http.Error(w, "Arquivo CSV ausente (campo 'arquivo')", http.StatusBadRequest)
		return
	}
	defer arquivo.Close()

	transacoes, err := LerCSV(arquivo)
	if err != nil {
		if errors.Is(err, ErrExtratoVazio) {
			http.Error(w, "Extrato sem transações reconhecíveis", http.StatusUnprocessableEntity)
			return
		}
		http.Error(w, "Não foi possível ler o extrato CSV", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(Analisar(transacoes))
}
