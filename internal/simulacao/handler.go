// internal/simulacao/handler.go
package simulacao

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/lucrocerto/api-precificacao/internal/auth"
)

type Handler struct {
	Repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

// POST /simulacoes
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	usuarioID, ok := auth.UsuarioDoContexto(r)
	if !ok {
		http.Error(w, "Usuário não autenticado", http.StatusUnauthorized)
		return
	}

	var dto CriarSimulacaoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if dto.Plataforma == "" {
		http.Error(w, "Plataforma é obrigatória", http.StatusBadRequest)
		return
	}
	produto := dto.Produto
	if produto == "" {
		produto = "Produto Sem Nome"
	}

	s := Simulacao{
		UsuarioID:  usuarioID,
		Produto:    produto,
		Plataforma: dto.Plataforma,
		Custo:      dto.Custo,
		Venda:      dto.Venda,
		Lucro:      dto.Lucro,
		MargemPct:  dto.MargemPct,
		RoiPct:     dto.RoiPct,
		CustoTotal: dto.CustoTotal,
		Taxas:      dto.Taxas,
		Imposto:    dto.Imposto,
	}
	if err := h.Repo.Create(&s); err != nil {
		http.Error(w, "Erro ao salvar simulação", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(s)
}

// GET /simulacoes
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	usuarioID, ok := auth.UsuarioDoContexto(r)
	if !ok {
		http.Error(w, "Usuário não autenticado", http.StatusUnauthorized)
		return
	}

	list, err := h.Repo.FindByUsuario(usuarioID)
	if err != nil {
		http.Error(w, "Erro ao buscar simulações", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

// DELETE /simulacoes
func (h *Handler) Limpar(w http.ResponseWriter, r *http.Request) {
	usuarioID, ok := auth.UsuarioDoContexto(r)
	if !ok {
		http.Error(w, "Usuário não autenticado", http.StatusUnauthorized)
		return
	}

	if err := h.Repo.ClearByUsuario(usuarioID); err != nil {
		http.Error(w, "Erro ao limpar simulações", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GET /simulacoes/export — download do histórico em CSV
func (h *Handler) ExportarCSV(w http.ResponseWriter, r *http.Request) {
	usuarioID, ok := auth.UsuarioDoContexto(r)
	if !ok {
		http.Error(w, "Usuário não autenticado", http.StatusUnauthorized)
		return
	}

	list, err := h.Repo.FindByUsuario(usuarioID)
	if err != nil {
		http.Error(w, "Erro ao buscar simulações", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename="simulacoes_lucro_%d.csv"`, time.Now().Unix()))

	escritor := csv.NewWriter(w)
	_ = escritor.Write([]string{
		"Data/Hora", "Produto", "Plataforma", "Custo (R$)", "Venda (R$)",
		"Lucro (R$)", "Margem (%)", "ROI (%)", "Custo Total (R$)",
		"Taxas (R$)", "Imposto (R$)",
	})
	for _, s := range list {
		_ = escritor.Write([]string{
			s.CreatedAt.Format("2006-01-02 15:04:05"),
			s.Produto,
			s.Plataforma,
			formata(s.Custo),
			formata(s.Venda),
			formata(s.Lucro),
			formata(s.MargemPct),
			formata(s.RoiPct),
			formata(s.CustoTotal),
			formata(s.Taxas),
			formata(s.Imposto),
		})
	}
	escritor.Flush()
}

func formata(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
