package presenting

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-visualizer/internal/config"
	"github.com/vfg2006/sales-visualizer/internal/domain"
	"github.com/vfg2006/sales-visualizer/pkg/utils"
)

const (
	allRegionsLabel = "All Regions"
	cutoffText      = "Price Increase"
)

// View é o par de saídas recalculado a cada seleção de região
type View struct {
	Selection string
	Chart     domain.ChartData
	Summary   domain.Summary
}

type Service struct {
	reader DatasetReader
	path   string
	cutoff time.Time
}

func NewService(reader DatasetReader, cfg *config.Config) *Service {
	return &Service{
		reader: reader,
		path:   cfg.Extraction.OutputFile,
		cutoff: cfg.Presentation.CutoffDate,
	}
}

// LoadDataset lê o dataset combinado e constrói o dataset apresentado
func (s *Service) LoadDataset() (*Dataset, error) {
	sales, err := s.reader.LoadSales(s.path)
	if err != nil {
		return nil, err
	}

	dataset, err := NewDataset(s.path, sales, s.cutoff)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"file":    dataset.Source(),
		"rows":    dataset.Len(),
		"regions": len(dataset.Regions()),
		"cutoff":  s.cutoff.Format(config.DateLayout),
	}).Info("Dataset de vendas carregado")

	return dataset, nil
}

// Recompute calcula gráfico e resumo para a seleção. Não altera o dataset.
func Recompute(selection string, dataset *Dataset) (*View, error) {
	summary, err := Summarize(selection, dataset)
	if err != nil {
		return nil, err
	}

	return &View{
		Selection: selection,
		Chart:     BuildChart(selection, dataset),
		Summary:   summary,
	}, nil
}

// BuildChart monta uma série por região com o marcador na data de corte
func BuildChart(selection string, dataset *Dataset) domain.ChartData {
	rows := dataset.Filter(selection)

	series := make([]domain.ChartSeries, 0)
	position := make(map[string]int)
	for _, row := range rows {
		i, ok := position[row.Region]
		if !ok {
			i = len(series)
			position[row.Region] = i
			series = append(series, domain.ChartSeries{Region: row.Region})
		}
		series[i].Dates = append(series[i].Dates, row.Date)
		series[i].Sales = append(series[i].Sales, row.Sales)
	}

	return domain.ChartData{
		Title:      ChartTitle(selection),
		XLabel:     "Date",
		YLabel:     "Sales ($)",
		Series:     series,
		CutoffDate: dataset.Cutoff(),
		CutoffText: cutoffText,
	}
}

// Summarize soma as vendas por período e calcula a variação percentual
func Summarize(selection string, dataset *Dataset) (domain.Summary, error) {
	var before, after, total float64
	for _, row := range dataset.Filter(selection) {
		switch row.Period {
		case domain.PeriodBefore:
			before += row.Sales
		case domain.PeriodAfter:
			after += row.Sales
		}
		total += row.Sales
	}

	change, err := PercentageChange(before, after)
	if err != nil {
		return domain.Summary{}, err
	}

	return domain.Summary{
		Region:           selection,
		Total:            total,
		Before:           before,
		After:            after,
		PercentageChange: change,
	}, nil
}

// PercentageChange retorna (after - before) / before * 100.
// Falha com DivisionError quando before é zero.
func PercentageChange(before, after float64) (float64, error) {
	if before == 0 {
		return 0, &domain.DivisionError{Numerator: after - before, Divisor: before}
	}
	return (after - before) / before * 100, nil
}

// SummaryLines formata o resumo para exibição, valores monetários com duas casas
func SummaryLines(summary domain.Summary) []string {
	return []string{
		"Total Sales: " + utils.FormatMoney(summary.Total),
		"Sales Before Price Increase: " + utils.FormatMoney(summary.Before),
		"Sales After Price Increase: " + utils.FormatMoney(summary.After),
		"Percentage Change: " + utils.FormatPercent(summary.PercentageChange),
	}
}

// RegionOptions lista o sentinela de todas as regiões seguido de cada região do dataset
func RegionOptions(dataset *Dataset) []domain.RegionOption {
	regions := dataset.Regions()
	options := make([]domain.RegionOption, 0, len(regions)+1)
	options = append(options, domain.RegionOption{Label: allRegionsLabel, Value: domain.RegionAll})
	for _, region := range regions {
		options = append(options, domain.RegionOption{Label: region, Value: region})
	}
	return options
}

// ChartTitle retorna o título do gráfico da seleção
func ChartTitle(selection string) string {
	return "Sales Over Time - " + SelectionTitle(selection)
}

// SelectionTitle retorna "All Regions" ou "<Região> Region" com a inicial maiúscula
func SelectionTitle(selection string) string {
	if selection == domain.RegionAll {
		return allRegionsLabel
	}
	return capitalize(selection) + " Region"
}

func capitalize(s string) string {
	first, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(first)) + strings.ToLower(s[size:])
}
