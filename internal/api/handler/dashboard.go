package handler

import (
	"bytes"
	"html/template"
	"net/http"
	"net/url"

	"github.com/vfg2006/sales-visualizer/internal/domain"
	"github.com/vfg2006/sales-visualizer/internal/usecases/presenting"
	"github.com/vfg2006/sales-visualizer/pkg/apiErrors"
	"github.com/vfg2006/sales-visualizer/pkg/log"
)

const cutoffDisplayLayout = "January 2, 2006"

var dashboardTemplate = template.Must(template.New("dashboard").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Pink Morsel Sales Analysis</title>
<style>
body { font-family: sans-serif; margin: 0 auto; max-width: 1100px; }
h1 { text-align: center; }
.section { margin: 20px; }
.summary { margin: 20px; padding: 10px; border: 1px solid #ddd; }
.error { color: #b00020; }
</style>
</head>
<body>
<h1>Pink Morsel Sales Analysis</h1>
<div class="section">
<p>This dashboard visualizes the sales of Pink Morsels before and after the price increase on {{.CutoffDate}}.</p>
<p>The vertical red line indicates the date of the price increase.</p>
</div>
<div class="section">
<img src="{{.ChartURL}}" alt="{{.ChartTitle}}" width="1024" height="480">
</div>
<form class="section" method="get" action="/">
<label for="region-filter">Select Region:</label>
<select id="region-filter" name="region" onchange="this.form.submit()">
{{- range .Options}}
<option value="{{.Value}}"{{if .Selected}} selected{{end}}>{{.Label}}</option>
{{- end}}
</select>
<noscript><button type="submit">Apply</button></noscript>
</form>
<div class="summary">
<h3>Summary Statistics</h3>
{{- if .Error}}
<p class="error">{{.Error}}</p>
{{- else}}
{{- range .Lines}}
<p>{{.}}</p>
{{- end}}
{{- end}}
</div>
</body>
</html>
`))

type dashboardOption struct {
	domain.RegionOption
	Selected bool
}

type dashboardPage struct {
	CutoffDate string
	ChartURL   string
	ChartTitle string
	Options    []dashboardOption
	Lines      []string
	Error      string
}

// DashboardPage desenha a página do dashboard para a região selecionada.
// Um erro de cálculo aparece no bloco de resumo da página e responde 422, sem afetar outras requisições.
func DashboardPage(dataset *presenting.Dataset) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		region := selectedRegion(r)

		page := dashboardPage{
			CutoffDate: dataset.Cutoff().Format(cutoffDisplayLayout),
			ChartURL:   "/v1/chart.svg?" + url.Values{"region": {region}}.Encode(),
		}

		for _, option := range presenting.RegionOptions(dataset) {
			page.Options = append(page.Options, dashboardOption{
				RegionOption: option,
				Selected:     option.Value == region,
			})
		}

		status := http.StatusOK
		view, err := presenting.Recompute(region, dataset)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).WithField("region", region).Warn("Erro ao recalcular dashboard")
			page.ChartTitle = presenting.ChartTitle(region)
			page.Error = err.Error()
			status = apiErrors.StatusFor(apiErrors.CodeFor(err))
		} else {
			page.ChartTitle = view.Chart.Title
			page.Lines = presenting.SummaryLines(view.Summary)
		}

		var buf bytes.Buffer
		if err := dashboardTemplate.Execute(&buf, page); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao montar página")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao montar página", nil)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(status)
		if _, err := buf.WriteTo(w); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar página")
		}
	}
}
