package presenting_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-visualizer/internal/config"
	"github.com/vfg2006/sales-visualizer/internal/domain"
	"github.com/vfg2006/sales-visualizer/internal/usecases/presenting"
	"github.com/vfg2006/sales-visualizer/internal/usecases/presenting/mocks"
	"go.uber.org/mock/gomock"
)

var cutoff = time.Date(2021, 1, 15, 0, 0, 0, 0, time.UTC)

func date(day int) time.Time {
	return time.Date(2021, 1, day, 0, 0, 0, 0, time.UTC)
}

func newDataset(t *testing.T, sales []domain.Sale) *presenting.Dataset {
	t.Helper()
	dataset, err := presenting.NewDataset("pink_morsel_sales.csv", sales, cutoff)
	require.NoError(t, err)
	return dataset
}

func sampleSales() []domain.Sale {
	return []domain.Sale{
		{Sales: 30, Date: "2021-01-16", Region: "south"},
		{Sales: 6, Date: "2021-01-10", Region: "north"},
		{Sales: 10, Date: "2021-01-15", Region: "north"},
		{Sales: 4, Date: "2021-01-10", Region: "south"},
		{Sales: 2, Date: "2021-01-14", Region: "east"},
	}
}

func TestNewDataset_SortsAndLabels(t *testing.T) {
	dataset := newDataset(t, sampleSales())

	rows := dataset.Rows()
	require.Len(t, rows, 5)

	// ordenação estável: linhas com a mesma data mantêm a ordem do arquivo
	assert.Equal(t, []string{"north", "south", "east", "north", "south"},
		[]string{rows[0].Region, rows[1].Region, rows[2].Region, rows[3].Region, rows[4].Region})
	for i := 1; i < len(rows); i++ {
		assert.False(t, rows[i].Date.Before(rows[i-1].Date))
	}

	assert.Equal(t, domain.PeriodBefore, rows[0].Period)
	assert.Equal(t, domain.PeriodBefore, rows[2].Period)
	assert.Equal(t, domain.PeriodAfter, rows[3].Period, "a data de corte pertence ao período posterior")
	assert.Equal(t, domain.PeriodAfter, rows[4].Period)

	assert.Equal(t, []string{"north", "south", "east"}, dataset.Regions())
}

func TestNewDataset_IsImmutable(t *testing.T) {
	dataset := newDataset(t, sampleSales())

	rows := dataset.Rows()
	rows[0].Sales = 1000
	regions := dataset.Regions()
	regions[0] = "changed"

	assert.Equal(t, 6.0, dataset.Rows()[0].Sales)
	assert.Equal(t, "north", dataset.Regions()[0])
}

func TestNewDataset_InvalidDate(t *testing.T) {
	_, err := presenting.NewDataset("combined.csv", []domain.Sale{
		{Sales: 1, Date: "2021-01-10", Region: "north"},
		{Sales: 1, Date: "10/01/2021", Region: "north"},
	}, cutoff)

	var parseErr *domain.ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, "combined.csv", parseErr.Path)
	assert.Equal(t, 3, parseErr.Line)
}

func TestPeriodFor(t *testing.T) {
	assert.Equal(t, domain.PeriodBefore, presenting.PeriodFor(date(14), cutoff))
	assert.Equal(t, domain.PeriodAfter, presenting.PeriodFor(date(15), cutoff))
	assert.Equal(t, domain.PeriodAfter, presenting.PeriodFor(date(16), cutoff))
}

func TestPercentageChange(t *testing.T) {
	change, err := presenting.PercentageChange(100, 150)
	require.NoError(t, err)
	assert.Equal(t, 50.0, change)

	change, err = presenting.PercentageChange(200, 50)
	require.NoError(t, err)
	assert.Equal(t, -75.0, change)

	_, err = presenting.PercentageChange(0, 10)
	assert.ErrorIs(t, err, domain.ErrDivision)

	var divErr *domain.DivisionError
	require.True(t, errors.As(err, &divErr))
	assert.Equal(t, 0.0, divErr.Divisor)

	_, err = presenting.PercentageChange(0, 0)
	assert.ErrorIs(t, err, domain.ErrDivision)
}

func TestRecompute(t *testing.T) {
	dataset := newDataset(t, sampleSales())

	tests := []struct {
		name        string
		selection   string
		wantTitle   string
		wantSeries  []string
		wantSummary domain.Summary
	}{
		{
			name:       "todas as regiões",
			selection:  domain.RegionAll,
			wantTitle:  "Sales Over Time - All Regions",
			wantSeries: []string{"north", "south", "east"},
			wantSummary: domain.Summary{
				Region:           domain.RegionAll,
				Total:            52,
				Before:           12,
				After:            40,
				PercentageChange: (40.0 - 12.0) / 12.0 * 100,
			},
		},
		{
			name:       "região norte",
			selection:  "north",
			wantTitle:  "Sales Over Time - North Region",
			wantSeries: []string{"north"},
			wantSummary: domain.Summary{
				Region:           "north",
				Total:            16,
				Before:           6,
				After:            10,
				PercentageChange: (10.0 - 6.0) / 6.0 * 100,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view, err := presenting.Recompute(tt.selection, dataset)
			require.NoError(t, err)

			assert.Equal(t, tt.selection, view.Selection)
			assert.Equal(t, tt.wantTitle, view.Chart.Title)
			assert.Equal(t, "Date", view.Chart.XLabel)
			assert.Equal(t, "Sales ($)", view.Chart.YLabel)
			assert.Equal(t, cutoff, view.Chart.CutoffDate)
			assert.Equal(t, "Price Increase", view.Chart.CutoffText)

			regions := make([]string, 0, len(view.Chart.Series))
			for _, series := range view.Chart.Series {
				regions = append(regions, series.Region)
				assert.Len(t, series.Sales, len(series.Dates))
			}
			assert.Equal(t, tt.wantSeries, regions)

			assert.Equal(t, tt.wantSummary.Region, view.Summary.Region)
			assert.InDelta(t, tt.wantSummary.Total, view.Summary.Total, 1e-9)
			assert.InDelta(t, tt.wantSummary.Before, view.Summary.Before, 1e-9)
			assert.InDelta(t, tt.wantSummary.After, view.Summary.After, 1e-9)
			assert.InDelta(t, tt.wantSummary.PercentageChange, view.Summary.PercentageChange, 1e-9)
		})
	}
}

func TestRecompute_AllRegionsHasEverySeries(t *testing.T) {
	dataset := newDataset(t, sampleSales())

	chart := presenting.BuildChart(domain.RegionAll, dataset)

	require.Len(t, chart.Series, len(dataset.Regions()))
	points := 0
	for _, series := range chart.Series {
		points += len(series.Dates)
	}
	assert.Equal(t, dataset.Len(), points)
	assert.Equal(t, []time.Time{date(10), date(15)}, chart.Series[0].Dates)
	assert.Equal(t, []float64{6, 10}, chart.Series[0].Sales)
}

func TestRecompute_ZeroBeforeFails(t *testing.T) {
	tests := []struct {
		name      string
		selection string
	}{
		{name: "região só com vendas depois do corte", selection: "west"},
		{name: "região inexistente", selection: "nowhere"},
	}

	dataset := newDataset(t, []domain.Sale{
		{Sales: 6, Date: "2021-01-10", Region: "north"},
		{Sales: 12, Date: "2021-01-20", Region: "west"},
	})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view, err := presenting.Recompute(tt.selection, dataset)

			assert.Nil(t, view)
			assert.ErrorIs(t, err, domain.ErrDivision)
		})
	}

	// o dataset continua utilizável depois da falha
	view, err := presenting.Recompute("north", dataset)
	require.NoError(t, err)
	assert.Equal(t, 6.0, view.Summary.Before)
}

func TestScenario_PinkMorselRowBeforeCutoff(t *testing.T) {
	dataset := newDataset(t, []domain.Sale{{Sales: 6, Date: "2021-01-10", Region: "north"}})

	rows := dataset.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, 6.0, rows[0].Sales)
	assert.Equal(t, date(10), rows[0].Date)
	assert.Equal(t, "north", rows[0].Region)
	assert.Equal(t, domain.PeriodBefore, rows[0].Period)
}

func TestRegionOptions(t *testing.T) {
	dataset := newDataset(t, sampleSales())

	options := presenting.RegionOptions(dataset)

	assert.Equal(t, []domain.RegionOption{
		{Label: "All Regions", Value: "all"},
		{Label: "north", Value: "north"},
		{Label: "south", Value: "south"},
		{Label: "east", Value: "east"},
	}, options)
}

func TestSelectionTitle(t *testing.T) {
	assert.Equal(t, "All Regions", presenting.SelectionTitle("all"))
	assert.Equal(t, "North Region", presenting.SelectionTitle("north"))
	assert.Equal(t, "North Region", presenting.SelectionTitle("NORTH"))
	assert.Equal(t, " Region", presenting.SelectionTitle(""))
}

func TestChartTitle(t *testing.T) {
	assert.Equal(t, "Sales Over Time - All Regions", presenting.ChartTitle("all"))
	assert.Equal(t, "Sales Over Time - South Region", presenting.ChartTitle("south"))
}

func TestService_LoadDataset(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := mocks.NewMockDatasetReader(ctrl)
	cfg := &config.Config{
		Extraction:   config.Extraction{OutputFile: "pink_morsel_sales.csv"},
		Presentation: config.Presentation{CutoffDate: cutoff},
	}

	reader.EXPECT().LoadSales("pink_morsel_sales.csv").Return(sampleSales(), nil)

	dataset, err := presenting.NewService(reader, cfg).LoadDataset()

	require.NoError(t, err)
	assert.Equal(t, 5, dataset.Len())
	assert.Equal(t, cutoff, dataset.Cutoff())
	assert.Equal(t, "pink_morsel_sales.csv", dataset.Source())
}

func TestService_LoadDatasetMissingFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := mocks.NewMockDatasetReader(ctrl)
	cfg := &config.Config{Extraction: config.Extraction{OutputFile: "missing.csv"}}

	reader.EXPECT().
		LoadSales("missing.csv").
		Return(nil, &domain.ParseError{Path: "missing.csv", Err: errors.New("no such file or directory")})

	dataset, err := presenting.NewService(reader, cfg).LoadDataset()

	assert.Nil(t, dataset)
	assert.ErrorIs(t, err, domain.ErrParse)
}

func TestSummaryLines(t *testing.T) {
	lines := presenting.SummaryLines(domain.Summary{
		Total:            1234.5,
		Before:           500,
		After:            734.5,
		PercentageChange: 46.9,
	})

	assert.Equal(t, []string{
		"Total Sales: $1,234.50",
		"Sales Before Price Increase: $500.00",
		"Sales After Price Increase: $734.50",
		"Percentage Change: 46.9%",
	}, lines)
}
