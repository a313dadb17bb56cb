// internal/precificacao/model.go
package precificacao

import (
	"errors"

	"github.com/lucrocerto/api-precificacao/internal/tarifas"
)

// Marketplace identifica o canal de venda suportado.
type Marketplace string

const (
	MercadoLivre Marketplace = "mercado-livre"
	Amazon       Marketplace = "amazon"
	Shopee       Marketplace = "shopee"
)

// Logistica distingue quem envia o produto na Amazon.
type Logistica string

const (
	LogisticaDBA Logistica = "dba" // Amazon ou parceiro envia
	LogisticaFBM Logistica = "fbm" // vendedor envia
)

var ErrMarketplaceDesconhecido = errors.New("marketplace desconhecido")

// ParametrosVenda reúne os dados de uma simulação de venda. O registro é
// montado por quem chama (formulário, produto cadastrado) e não muda durante
// o cálculo.
type ParametrosVenda struct {
	Custo               float64 // preço de custo do produto
	CustoExtra          float64 // embalagem, etiqueta, brinde, por venda
	DespesaFixaUnitaria float64 // gasto fixo mensal rateado por unidade
	Frete               float64 // frete pago pelo vendedor, quando aplicável
	PesoGramas          float64 // peso embalado (Amazon DBA)

	ImpostoPct        float64 // imposto sobre a nota, % do preço
	OutrosPct         float64 // marketing, antecipação, perdas e outros, % do preço
	MargemDesejadaPct float64 // margem líquida desejada, % do preço

	Categoria        string
	TipoAnuncio      tarifas.TipoAnuncio // Mercado Livre
	Logistica        Logistica           // Amazon
	FreteGratis      bool                // Shopee: programa Frete Grátis (+6 p.p.)
	CobrarTarifaFixa bool                // Mercado Livre: tarifa fixa abaixo de R$79
}

// ResultadoVenda é o detalhamento completo de uma venda no preço sugerido.
// Derivado uma única vez a partir dos parâmetros, nunca alterado depois.
type ResultadoVenda struct {
	PrecoSugerido float64 `json:"precoSugerido"`
	ComissaoPct   float64 `json:"comissaoPct"`
	Comissao      float64 `json:"comissao"`
	TarifaFixa    float64 `json:"tarifaFixa"` // tarifa fixa ou de logística DBA
	Frete         float64 `json:"frete"`      // frete efetivamente pago pelo vendedor
	Imposto       float64 `json:"imposto"`
	Outros        float64 `json:"outros"`
	TarifasTotais float64 `json:"tarifasTotais"` // comissão + tarifa fixa + outros + imposto
	CustoTotal    float64 `json:"custoTotal"`
	Lucro         float64 `json:"lucro"`
	MargemPct     float64 `json:"margemPct"`
	RoiPct        float64 `json:"roiPct"`
	ValorRecebido float64 `json:"valorRecebido"` // o que cai na conta após descontos
}
