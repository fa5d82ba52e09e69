package csvfile

import (
	"encoding/csv"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-visualizer/internal/domain"
)

const utf8BOM = "\ufeff"

// Repository lê e escreve arquivos CSV de vendas
type Repository struct{}

func NewRepository() *Repository {
	return &Repository{}
}

// LoadRawSales lê um arquivo de vendas diárias com cabeçalho.
// Colunas extras são ignoradas; valores são mantidos sem normalização.
func (r *Repository) LoadRawSales(path string) ([]domain.RawSale, error) {
	rows, index, err := readTable(path, domain.RawColumns)
	if err != nil {
		return nil, err
	}

	sales := make([]domain.RawSale, 0, len(rows))
	for i, row := range rows {
		quantityText := row[index[domain.ColumnQuantity]]
		quantity, err := strconv.Atoi(strings.TrimSpace(quantityText))
		if err != nil {
			return nil, &domain.ParseError{
				Path: path,
				Line: i + 2,
				Err:  errors.Wrapf(err, "quantidade inválida %q", quantityText),
			}
		}

		sales = append(sales, domain.RawSale{
			Product:  row[index[domain.ColumnProduct]],
			Price:    row[index[domain.ColumnPrice]],
			Quantity: quantity,
			Date:     row[index[domain.ColumnDate]],
			Region:   row[index[domain.ColumnRegion]],
		})
	}

	return sales, nil
}

// LoadSales lê o dataset combinado (sales, date, region)
func (r *Repository) LoadSales(path string) ([]domain.Sale, error) {
	rows, index, err := readTable(path, domain.SaleColumns)
	if err != nil {
		return nil, err
	}

	sales := make([]domain.Sale, 0, len(rows))
	for i, row := range rows {
		salesText := row[index[domain.ColumnSales]]
		value, err := strconv.ParseFloat(strings.TrimSpace(salesText), 64)
		if err != nil {
			return nil, &domain.ParseError{
				Path: path,
				Line: i + 2,
				Err:  errors.Wrapf(err, "valor de vendas inválido %q", salesText),
			}
		}
		if math.IsInf(value, 0) || math.IsNaN(value) {
			return nil, &domain.ParseError{
				Path: path,
				Line: i + 2,
				Err:  errors.Errorf("valor de vendas não finito %q", salesText),
			}
		}

		sales = append(sales, domain.Sale{
			Sales:  value,
			Date:   row[index[domain.ColumnDate]],
			Region: row[index[domain.ColumnRegion]],
		})
	}

	return sales, nil
}

// readTable lê todas as linhas e devolve o índice de cada coluna obrigatória
func readTable(path string, required []string) ([][]string, map[string]int, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, &domain.ParseError{Path: path, Err: errors.Wrap(err, "erro ao abrir arquivo")}
	}
	defer file.Close()

	reader := csv.NewReader(file)

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil, &domain.ParseError{Path: path, Err: errors.New("cabeçalho ausente")}
	}
	if err != nil {
		return nil, nil, &domain.ParseError{Path: path, Line: 1, Err: errors.Wrap(err, "erro ao ler cabeçalho")}
	}

	index := make(map[string]int, len(header))
	for i, column := range header {
		if i == 0 {
			column = strings.TrimPrefix(column, utf8BOM)
		}
		if _, exists := index[column]; !exists {
			index[column] = i
		}
	}

	missing := make([]string, 0)
	for _, column := range required {
		if _, ok := index[column]; !ok {
			missing = append(missing, column)
		}
	}
	if len(missing) > 0 {
		return nil, nil, &domain.ParseError{
			Path: path,
			Line: 1,
			Err:  errors.Errorf("colunas obrigatórias ausentes: %s", strings.Join(missing, ", ")),
		}
	}

	rows, err := reader.ReadAll()
	if err != nil {
		line := 0
		var csvErr *csv.ParseError
		if errors.As(err, &csvErr) {
			line = csvErr.Line
		}
		return nil, nil, &domain.ParseError{Path: path, Line: line, Err: errors.Wrap(err, "erro ao ler linhas")}
	}

	return rows, index, nil
}
