package handler

import (
	"bytes"
	"io"
	"net/http"
	"path"
	"strings"

	"github.com/vfg2006/sales-visualizer/infrastructure/charting"
	"github.com/vfg2006/sales-visualizer/internal/domain"
	"github.com/vfg2006/sales-visualizer/internal/usecases/presenting"
	"github.com/vfg2006/sales-visualizer/pkg/apiErrors"
	"github.com/vfg2006/sales-visualizer/pkg/log"
)

//go:generate mockgen -source=chart.go -destination=mocks/chart.go -package=mocks

// ChartRenderer desenha o modelo do gráfico no formato pedido
type ChartRenderer interface {
	Render(w io.Writer, data domain.ChartData, format charting.Format) error
}

// Chart desenha o gráfico da região selecionada no formato da extensão do caminho.
// O gráfico não depende do resumo, então uma seleção sem vendas anteriores ao corte ainda é desenhada.
func Chart(dataset *presenting.Dataset, renderer ChartRenderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		format, err := charting.ParseFormat(strings.TrimPrefix(path.Ext(r.URL.Path), "."))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		region := selectedRegion(r)
		data := presenting.BuildChart(region, dataset)

		var buf bytes.Buffer
		if err := renderer.Render(&buf, data, format); err != nil {
			log.ForContext(r.Context()).WithError(err).WithField("region", region).Error("Erro ao desenhar gráfico")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao desenhar gráfico", nil)
			return
		}

		w.Header().Set("Content-Type", format.ContentType())
		if _, err := buf.WriteTo(w); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar gráfico")
		}
	}
}
