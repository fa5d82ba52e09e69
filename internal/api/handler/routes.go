package handler

import (
	"net/http"

	"github.com/vfg2006/sales-visualizer/infrastructure/charting"
	"github.com/vfg2006/sales-visualizer/internal/api/handler/router"
	"github.com/vfg2006/sales-visualizer/internal/usecases/presenting"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

// Dashboard retorna a página e as rotas de leitura do dataset apresentado
func Dashboard(dataset *presenting.Dataset, renderer ChartRenderer) []router.Route {
	return []router.Route{
		{
			Path:    "/",
			Method:  http.MethodGet,
			Handler: DashboardPage(dataset),
		},
		{
			Path:    "/v1/chart." + string(charting.FormatSVG),
			Method:  http.MethodGet,
			Handler: Chart(dataset, renderer),
		},
		{
			Path:    "/v1/chart." + string(charting.FormatPNG),
			Method:  http.MethodGet,
			Handler: Chart(dataset, renderer),
		},
		{
			Path:    "/v1/summary",
			Method:  http.MethodGet,
			Handler: Summary(dataset),
		},
		{
			Path:    "/v1/regions",
			Method:  http.MethodGet,
			Handler: Regions(dataset),
		},
	}
}
