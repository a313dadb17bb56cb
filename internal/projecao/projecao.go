// internal/projecao/projecao.go
package projecao

// ProjecaoMensal projeta o lucro de um mês (30 dias) para cada patamar de
// vendas diárias. Com volumes vazios valem os patamares padrão.
func ProjecaoMensal(lucroPorUnidade float64, volumes []int) []ProjecaoVolume {
	if len(volumes) == 0 {
		volumes = VolumesPadrao
	}
	out := make([]ProjecaoVolume, 0, len(volumes))
	for _, v := range volumes {
		out = append(out, ProjecaoVolume{
			VendasPorDia: v,
			LucroMensal:  lucroPorUnidade * float64(v) * 30,
		})
	}
	return out
}

// PontoEquilibrio devolve quantas unidades vendidas no mês cobrem os custos
// fixos. Margem de contribuição não positiva é um resultado distinto
// (ErrMargemContribuicao), nunca zero.
func PontoEquilibrio(custosFixos, margemContribuicao float64) (float64, error) {
	if margemContribuicao <= 0 {
		return 0, ErrMargemContribuicao
	}
	return custosFixos / margemContribuicao, nil
}
