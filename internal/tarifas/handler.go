// internal/tarifas/handler.go
package tarifas

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
)

// Handler expõe as tabelas de tarifas para os formulários do frontend.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// GET /tarifas/{marketplace}/categorias
func (h *Handler) ListarCategorias(w http.ResponseWriter, r *http.Request) {
	var resposta struct {
		Marketplace  string   `json:"marketplace"`
		Categorias   []string `json:"categorias"`
		TiposAnuncio []string `json:"tiposAnuncio,omitempty"`
	}

	switch mux.Vars(r)["marketplace"] {
	case "mercado-livre":
		resposta.Marketplace = "mercado-livre"
		resposta.Categorias = CategoriasMercadoLivre()
		resposta.TiposAnuncio = []string{string(AnuncioClassico), string(AnuncioPremium)}
	case "amazon":
		resposta.Marketplace = "amazon"
		resposta.Categorias = CategoriasAmazon()
	case "shopee":
		resposta.Marketplace = "shopee"
		resposta.Categorias = CategoriasShopee()
	default:
		http.Error(w, "Marketplace desconhecido", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resposta)
}
