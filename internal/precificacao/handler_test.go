package precificacao

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
)

func novoRouterDeTeste() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/precificacao/{marketplace}", NewHandler().Simular).Methods("POST")
	return r
}

func TestSimularMercadoLivre(t *testing.T) {
	corpo := `{"custo": 50, "categoria": "Acessórios para Veículos", "tipoAnuncio": "Clássico"}`
	req := httptest.NewRequest(http.MethodPost, "/precificacao/mercado-livre", strings.NewReader(corpo))
	rec := httptest.NewRecorder()

	novoRouterDeTeste().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, esperado 200: %s", rec.Code, rec.Body.String())
	}

	var resposta SimulacaoVendaResposta
	if err := json.NewDecoder(rec.Body).Decode(&resposta); err != nil {
		t.Fatal(err)
	}
	if resposta.Marketplace != "mercado-livre" {
		t.Fatalf("marketplace = %q", resposta.Marketplace)
	}
	if resposta.Resultado.PrecoSugerido != 65.23 {
		t.Fatalf("preço sugerido = %.2f, esperado 65.23", resposta.Resultado.PrecoSugerido)
	}
	if len(resposta.Projecao) != 6 {
		t.Fatalf("projeção mensal com %d patamares, esperados 6", len(resposta.Projecao))
	}
	if resposta.ResultadoComDespesas != nil {
		t.Fatal("sem despesas fixas no corpo não deveria vir segunda simulação")
	}
}

func TestSimularComDespesasFixas(t *testing.T) {
	corpo := `{
		"custo": 50,
		"margemDesejadaPct": 10,
		"categoria": "Acessórios para Veículos",
		"tipoAnuncio": "Clássico",
		"despesasFixas": {"mei": 300, "vendasEstimadasMes": 30}
	}`
	req := httptest.NewRequest(http.MethodPost, "/precificacao/mercado-livre", strings.NewReader(corpo))
	rec := httptest.NewRecorder()

	novoRouterDeTeste().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, esperado 200: %s", rec.Code, rec.Body.String())
	}

	var resposta SimulacaoVendaResposta
	if err := json.NewDecoder(rec.Body).Decode(&resposta); err != nil {
		t.Fatal(err)
	}
	if resposta.ResultadoComDespesas == nil {
		t.Fatal("esperada segunda simulação com despesas rateadas")
	}
	// rateio de R$10/unidade encarece o preço
	if resposta.ResultadoComDespesas.PrecoSugerido <= resposta.Resultado.PrecoSugerido {
		t.Fatalf("preço com despesas (%.2f) deveria superar o sem despesas (%.2f)",
			resposta.ResultadoComDespesas.PrecoSugerido, resposta.Resultado.PrecoSugerido)
	}
	if resposta.PontoEquilibrio == nil {
		t.Fatal("com lucro positivo o ponto de equilíbrio deveria vir preenchido")
	}
	if *resposta.PontoEquilibrio <= 0 {
		t.Fatalf("ponto de equilíbrio = %.2f, esperado positivo", *resposta.PontoEquilibrio)
	}
	if len(resposta.ProjecaoComDespesas) != 6 {
		t.Fatalf("projeção com despesas com %d patamares, esperados 6", len(resposta.ProjecaoComDespesas))
	}
}

func TestSimularErros(t *testing.T) {
	tests := []struct {
		name   string
		rota   string
		corpo  string
		status int
	}{
		{
			"marketplace desconhecido",
			"/precificacao/magalu",
			`{"custo": 10, "categoria": "Outros"}`,
			http.StatusNotFound,
		},
		{
			"categoria desconhecida",
			"/precificacao/amazon",
			`{"custo": 10, "categoria": "Naves Espaciais"}`,
			http.StatusBadRequest,
		},
		{
			"tipo de anúncio desconhecido",
			"/precificacao/mercado-livre",
			`{"custo": 10, "categoria": "Games", "tipoAnuncio": "Turbo"}`,
			http.StatusBadRequest,
		},
		{
			"json mal formado",
			"/precificacao/shopee",
			`{"custo": `,
			http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, tc.rota, strings.NewReader(tc.corpo))
			rec := httptest.NewRecorder()

			novoRouterDeTeste().ServeHTTP(rec, req)

			if rec.Code != tc.status {
				t.Fatalf("status = %d, esperado %d: %s", rec.Code, tc.status, rec.Body.String())
			}
		})
	}
}
