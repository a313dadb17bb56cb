// internal/produto/handler.go
package produto

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/lucrocerto/api-precificacao/internal/auth"
)

type Handler struct {
	Repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

// POST /produtos
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	usuarioID, ok := auth.UsuarioDoContexto(r)
	if !ok {
		http.Error(w, "Usuário não autenticado", http.StatusUnauthorized)
		return
	}

	var body Produto
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if body.Nome == "" {
		http.Error(w, "Nome do produto é obrigatório", http.StatusBadRequest)
		return
	}
	body.ID = 0
	body.UsuarioID = usuarioID

	if err := h.Repo.Create(&body); err != nil {
		http.Error(w, "Erro ao criar produto", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(body)
}

// GET /produtos
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	usuarioID, ok := auth.UsuarioDoContexto(r)
	if !ok {
		http.Error(w, "Usuário não autenticado", http.StatusUnauthorized)
		return
	}

	produtos, err := h.Repo.FindByUsuario(usuarioID)
	if err != nil {
		http.Error(w, "Erro ao buscar produtos", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(produtos)
}

// GET /produtos/{id}
func (h *Handler) Buscar(w http.ResponseWriter, r *http.Request) {
	existente, ok := h.produtoDoUsuario(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(existente)
}

// PUT /produtos/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	existente, ok := h.produtoDoUsuario(w, r)
	if !ok {
		return
	}

	var body Produto
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	// atualiza campos
	existente.Nome = body.Nome
	existente.SKU = body.SKU
	existente.Categoria = body.Categoria
	existente.Custo = body.Custo
	existente.CustoExtra = body.CustoExtra
	existente.PesoGramas = body.PesoGramas

	if err := h.Repo.Update(existente); err != nil {
		http.Error(w, "Erro ao atualizar produto", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(existente)
}

// DELETE /produtos/{id}
func (h *Handler) Remover(w http.ResponseWriter, r *http.Request) {
	existente, ok := h.produtoDoUsuario(w, r)
	if !ok {
		return
	}

	if err := h.Repo.Delete(existente); err != nil {
		http.Error(w, "Erro ao deletar produto", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// produtoDoUsuario carrega o produto da rota e garante que pertence ao
// usuário autenticado. Escreve a resposta de erro quando não pertence.
func (h *Handler) produtoDoUsuario(w http.ResponseWriter, r *http.Request) (*Produto, bool) {
	usuarioID, ok := auth.UsuarioDoContexto(r)
	if !ok {
		http.Error(w, "Usuário não autenticado", http.StatusUnauthorized)
		return nil, false
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de produto inválido", http.StatusBadRequest)
		return nil, false
	}

	existente, err := h.Repo.FindByID(uint(id))
	if err != nil || existente.UsuarioID != usuarioID {
		http.Error(w, "Produto não encontrado", http.StatusNotFound)
		return nil, false
	}
	return existente, true
}
