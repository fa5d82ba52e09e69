package domain

import "time"

// RegionOption é uma opção do seletor de região
type RegionOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ChartSeries contém os pontos de uma região, em ordem de data
type ChartSeries struct {
	Region string      `json:"region"`
	Dates  []time.Time `json:"dates"`
	Sales  []float64   `json:"sales"`
}

// ChartData é o modelo do gráfico de vendas por data
type ChartData struct {
	Title      string        `json:"title"`
	XLabel     string        `json:"x_label"`
	YLabel     string        `json:"y_label"`
	Series     []ChartSeries `json:"series"`
	CutoffDate time.Time     `json:"cutoff_date"`
	CutoffText string        `json:"cutoff_text"`
}

// Summary contém as estatísticas do período selecionado
type Summary struct {
	Region           string  `json:"region"`
	Total            float64 `json:"total"`
	Before           float64 `json:"before"`
	After            float64 `json:"after"`
	PercentageChange float64 `json:"percentage_change"`
}
