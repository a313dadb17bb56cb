// internal/simulacao/dto.go
package simulacao

type CriarSimulacaoDTO struct {
	Produto    string  `json:"produto"`
	Plataforma string  `json:"plataforma"`
	Custo      float64 `json:"custo"`
	Venda      float64 `json:"venda"`
	Lucro      float64 `json:"lucro"`
	MargemPct  float64 `json:"margemPct"`
	RoiPct     float64 `json:"roiPct"`
	CustoTotal float64 `json:"custoTotal"`
	Taxas      float64 `json:"taxas"`
	Imposto    float64 `json:"imposto"`
}
