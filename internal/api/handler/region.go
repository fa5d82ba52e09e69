package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/sales-visualizer/internal/domain"
	"github.com/vfg2006/sales-visualizer/internal/usecases/presenting"
	"github.com/vfg2006/sales-visualizer/pkg/apiErrors"
	"github.com/vfg2006/sales-visualizer/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// selectedRegion lê o parâmetro region; ausente significa todas as regiões
func selectedRegion(r *http.Request) string {
	if region := r.URL.Query().Get("region"); region != "" {
		return region
	}
	return domain.RegionAll
}

func writeJSON(w http.ResponseWriter, r *http.Request, body any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta")
	}
}

// Regions retorna as opções do seletor de região
func Regions(dataset *presenting.Dataset) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, presenting.RegionOptions(dataset))
	}
}

// SummaryResponse é o resumo de uma seleção, com os valores e o texto formatado
type SummaryResponse struct {
	Region           string   `json:"region"`
	Title            string   `json:"title"`
	Total            float64  `json:"total"`
	Before           float64  `json:"before"`
	After            float64  `json:"after"`
	PercentageChange float64  `json:"percentage_change"`
	Lines            []string `json:"lines"`
}

// Summary recalcula o resumo da região selecionada
func Summary(dataset *presenting.Dataset) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		region := selectedRegion(r)

		view, err := presenting.Recompute(region, dataset)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).WithField("region", region).Warn("Erro ao calcular resumo")
			apiErrors.WriteDomainError(w, err)
			return
		}

		writeJSON(w, r, SummaryResponse{
			Region:           view.Summary.Region,
			Title:            view.Chart.Title,
			Total:            view.Summary.Total,
			Before:           view.Summary.Before,
			After:            view.Summary.After,
			PercentageChange: view.Summary.PercentageChange,
			Lines:            presenting.SummaryLines(view.Summary),
		})
	}
}
