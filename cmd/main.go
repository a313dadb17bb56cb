package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/lucrocerto/api-precificacao/internal/auth"
	"github.com/lucrocerto/api-precificacao/internal/extrato"
	"github.com/lucrocerto/api-precificacao/internal/precificacao"
	"github.com/lucrocerto/api-precificacao/internal/produto"
	"github.com/lucrocerto/api-precificacao/internal/projecao"
	"github.com/lucrocerto/api-precificacao/internal/simulacao"
	"github.com/lucrocerto/api-precificacao/internal/tarifas"
	"github.com/lucrocerto/api-precificacao/internal/usuario"
	"github.com/lucrocerto/api-precificacao/internal/utils/db"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Arquivo .env não encontrado, usando variáveis do ambiente")
	}

	conexao, err := db.Conectar()
	if err != nil {
		log.Fatal("Erro ao conectar no banco:", err)
	}

	// AutoMigrate para todos os modelos
	if err := conexao.AutoMigrate(
		&usuario.Usuario{},
		&produto.Produto{},
		&simulacao.Simulacao{},
	); err != nil {
		log.Fatal("Erro no AutoMigrate:", err)
	}

	// Handlers
	usuarioHandler := usuario.NewHandler(usuario.NewRepository(conexao))
	produtoHandler := produto.NewHandler(produto.NewRepository(conexao))
	simulacaoHandler := simulacao.NewHandler(simulacao.NewRepository(conexao))
	tarifasHandler := tarifas.NewHandler()
	precificacaoHandler := precificacao.NewHandler()
	projecaoHandler := projecao.NewHandler()
	extratoHandler := extrato.NewHandler()

	// Router
	r := mux.NewRouter()

	// Rotas públicas
	r.HandleFunc("/usuarios", usuarioHandler.Criar).Methods("POST")
	r.HandleFunc("/login", usuarioHandler.Login).Methods("POST")
	r.HandleFunc("/tarifas/{marketplace}/categorias", tarifasHandler.ListarCategorias).Methods("GET")
	r.HandleFunc("/precificacao/{marketplace}", precificacaoHandler.Simular).Methods("POST")
	r.HandleFunc("/projecoes/mensal", projecaoHandler.Mensal).Methods("POST")
	r.HandleFunc("/projecoes/ponto-equilibrio", projecaoHandler.PontoEquilibrio).Methods("POST")
	r.HandleFunc("/extratos/analise", extratoHandler.Analisar).Methods("POST")

	// Rotas autenticadas
	priv := r.PathPrefix("/").Subrouter()
	priv.Use(auth.MiddlewareAutenticacao)
	priv.HandleFunc("/simulacoes", simulacaoHandler.Criar).Methods("POST")
	priv.HandleFunc("/simulacoes", simulacaoHandler.Listar).Methods("GET")
	priv.HandleFunc("/simulacoes", simulacaoHandler.Limpar).Methods("DELETE")
	priv.HandleFunc("/simulacoes/export", simulacaoHandler.ExportarCSV).Methods("GET")
	priv.HandleFunc("/produtos", produtoHandler.Criar).Methods("POST")
	priv.HandleFunc("/produtos", produtoHandler.Listar).Methods("GET")
	priv.HandleFunc("/produtos/{id}", produtoHandler.Buscar).Methods("GET")
	priv.HandleFunc("/produtos/{id}", produtoHandler.Atualizar).Methods("PUT")
	priv.HandleFunc("/produtos/{id}", produtoHandler.Remover).Methods("DELETE")

	handler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler(r)

	porta := os.Getenv("PORT")
	if porta == "" {
		porta = "8080"
	}

	// Inicia servidor
	fmt.Println("Servidor rodando em http://localhost:" + porta)
	log.Fatal(http.ListenAndServe(":"+porta, handler))
}
