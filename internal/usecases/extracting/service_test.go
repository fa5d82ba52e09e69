package extracting_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-visualizer/internal/config"
	"github.com/vfg2006/sales-visualizer/internal/domain"
	"github.com/vfg2006/sales-visualizer/internal/usecases/extracting"
	"github.com/vfg2006/sales-visualizer/internal/usecases/extracting/mocks"
	"go.uber.org/mock/gomock"
)

func testConfig(files ...string) *config.Config {
	return &config.Config{
		Extraction: config.Extraction{
			DataDir:       "data",
			InputFiles:    files,
			OutputFile:    "out/pink_morsel_sales.csv",
			TargetProduct: "pink morsel",
		},
	}
}

func TestCleanPrice(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    float64
		wantErr bool
	}{
		{name: "preço com centavos", input: "$3.00", want: 3},
		{name: "preço inteiro", input: "$12", want: 12},
		{name: "fração sem zero à esquerda", input: "$.5", want: 0.5},
		{name: "ponto final sem fração", input: "$3.", want: 3},
		{name: "outro símbolo monetário", input: "€2.25", want: 2.25},
		{name: "string vazia", input: "", wantErr: true},
		{name: "somente símbolo", input: "$", wantErr: true},
		{name: "sem símbolo", input: "3.00", wantErr: true},
		{name: "dois símbolos", input: "$$3.00", wantErr: true},
		{name: "letras", input: "$abc", wantErr: true},
		{name: "expoente", input: "$1e3", wantErr: true},
		{name: "negativo", input: "$-3.00", wantErr: true},
		{name: "espaço após símbolo", input: "$ 3.00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := extracting.CleanPrice(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, domain.ErrConversion))

				var convErr *domain.ConversionError
				require.True(t, errors.As(err, &convErr))
				assert.Equal(t, tt.input, convErr.Value)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFilterProduct(t *testing.T) {
	records := []domain.RawSale{
		{Product: "pink morsel", Price: "$3.00", Quantity: 1},
		{Product: "Pink Morsel", Price: "$3.00", Quantity: 2},
		{Product: " pink morsel", Price: "$3.00", Quantity: 3},
		{Product: "gold morsel", Price: "$9.99", Quantity: 4},
		{Product: "pink morsel", Price: "$3.00", Quantity: 5},
	}

	filtered := extracting.FilterProduct(records, "pink morsel")

	assert.LessOrEqual(t, len(filtered), len(records))
	require.Len(t, filtered, 2)
	for _, record := range filtered {
		assert.Equal(t, "pink morsel", record.Product)
	}
	assert.Equal(t, 1, filtered[0].Quantity)
	assert.Equal(t, 5, filtered[1].Quantity)

	assert.Empty(t, extracting.FilterProduct(nil, "pink morsel"))
}

func TestDeriveSalesMatchesCleanPrice(t *testing.T) {
	records := []domain.RawSale{
		{Product: "pink morsel", Price: "$3.00", Quantity: 2, Date: "2021-01-10", Region: "north"},
		{Product: "pink morsel", Price: "$0.10", Quantity: 3, Date: "2021-01-11", Region: "south"},
		{Product: "pink morsel", Price: "$5.00", Quantity: 0, Date: "2021-01-12", Region: "east"},
	}

	priced, err := extracting.DeriveSales(records)
	require.NoError(t, err)
	require.Len(t, priced, len(records))

	for i, record := range records {
		price, err := extracting.CleanPrice(record.Price)
		require.NoError(t, err)
		assert.Equal(t, price*float64(record.Quantity), priced[i].Sales)
		assert.Equal(t, record, priced[i].RawSale)
	}

	// sem arredondamento: 0.1 * 3 carrega a imprecisão do float64
	tenCents := 0.1
	assert.Equal(t, tenCents*3, priced[1].Sales)
	assert.NotEqual(t, 0.3, priced[1].Sales)
}

func TestDeriveSalesFailsOnBadPrice(t *testing.T) {
	records := []domain.RawSale{
		{Product: "pink morsel", Price: "$3.00", Quantity: 2},
		{Product: "pink morsel", Price: "three", Quantity: 2},
	}

	priced, err := extracting.DeriveSales(records)
	assert.Nil(t, priced)
	assert.ErrorIs(t, err, domain.ErrConversion)
}

func TestProject(t *testing.T) {
	priced := []domain.PricedSale{
		{RawSale: domain.RawSale{Product: "pink morsel", Price: "$3.00", Quantity: 2, Date: "2021-01-10", Region: "north"}, Sales: 6},
		{RawSale: domain.RawSale{Product: "pink morsel", Price: "$3.00", Quantity: 1, Date: "2021-01-11", Region: "south"}, Sales: 3},
	}

	projected := extracting.Project(priced)

	require.Len(t, projected, len(priced))
	assert.Equal(t, domain.Sale{Sales: 6, Date: "2021-01-10", Region: "north"}, projected[0])
	assert.Equal(t, domain.Sale{Sales: 3, Date: "2021-01-11", Region: "south"}, projected[1])
	assert.Equal(t, []string{"sales", "date", "region"}, domain.SaleColumns)
}

func TestCombine(t *testing.T) {
	a := []domain.Sale{{Sales: 1, Region: "a1"}, {Sales: 2, Region: "a2"}}
	b := []domain.Sale{}
	c := []domain.Sale{{Sales: 2, Region: "a2"}}

	combined := extracting.Combine(a, b, c)

	require.Len(t, combined, 3)
	assert.Equal(t, "a1", combined[0].Region)
	assert.Equal(t, "a2", combined[1].Region)
	// sem deduplicação
	assert.Equal(t, combined[1], combined[2])

	assert.Empty(t, extracting.Combine())
}

func TestService_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := mocks.NewMockSalesReader(ctrl)
	writer := mocks.NewMockSalesWriter(ctrl)

	cfg := testConfig("daily_sales_data_0.csv", "daily_sales_data_1.csv")
	service := extracting.NewService(reader, writer, cfg)

	gomock.InOrder(
		reader.EXPECT().
			LoadRawSales(filepath.Join("data", "daily_sales_data_0.csv")).
			Return([]domain.RawSale{
				{Product: "pink morsel", Price: "$3.00", Quantity: 2, Date: "2021-01-10", Region: "north"},
				{Product: "gold morsel", Price: "$9.99", Quantity: 1, Date: "2021-01-10", Region: "north"},
			}, nil),
		reader.EXPECT().
			LoadRawSales(filepath.Join("data", "daily_sales_data_1.csv")).
			Return([]domain.RawSale{
				{Product: "pink morsel", Price: "$5.00", Quantity: 1, Date: "2021-01-20", Region: "south"},
			}, nil),
		writer.EXPECT().
			SaveSales([]domain.Sale{
				{Sales: 6, Date: "2021-01-10", Region: "north"},
				{Sales: 5, Date: "2021-01-20", Region: "south"},
			}, "out/pink_morsel_sales.csv").
			Return(nil),
	)

	result, err := service.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "out/pink_morsel_sales.csv", result.OutputPath)
	assert.Equal(t, 2, result.Rows)
	assert.Equal(t, 2, result.Files)
}

func TestService_RunAbortsWithoutWriting(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(reader *mocks.MockSalesReader)
		wantErr error
	}{
		{
			name: "arquivo ausente no meio da lista",
			setup: func(reader *mocks.MockSalesReader) {
				reader.EXPECT().
					LoadRawSales(filepath.Join("data", "a.csv")).
					Return([]domain.RawSale{{Product: "pink morsel", Price: "$1.00", Quantity: 1}}, nil)
				reader.EXPECT().
					LoadRawSales(filepath.Join("data", "b.csv")).
					Return(nil, &domain.ParseError{Path: "data/b.csv", Err: errors.New("no such file")})
			},
			wantErr: domain.ErrParse,
		},
		{
			name: "preço malformado no primeiro arquivo",
			setup: func(reader *mocks.MockSalesReader) {
				reader.EXPECT().
					LoadRawSales(filepath.Join("data", "a.csv")).
					Return([]domain.RawSale{{Product: "pink morsel", Price: "USD 1", Quantity: 1}}, nil)
			},
			wantErr: domain.ErrConversion,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			reader := mocks.NewMockSalesReader(ctrl)
			writer := mocks.NewMockSalesWriter(ctrl)
			tt.setup(reader)

			// nenhum SaveSales é esperado: o gomock falha se houver escrita
			service := extracting.NewService(reader, writer, testConfig("a.csv", "b.csv", "c.csv"))

			result, err := service.Run(context.Background())

			assert.Nil(t, result)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestService_RunCanceledContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := extracting.NewService(mocks.NewMockSalesReader(ctrl), mocks.NewMockSalesWriter(ctrl), testConfig("a.csv"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := service.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
