package presenting

import (
	"sort"
	"time"

	"github.com/vfg2006/sales-visualizer/internal/domain"
	"github.com/vfg2006/sales-visualizer/pkg/utils"
)

// Dataset é o dataset apresentado: datas convertidas, ordenado por data e com período.
// É imutável depois de construído e pode ser compartilhado entre requisições.
type Dataset struct {
	source  string
	cutoff  time.Time
	rows    []domain.PresentedSale
	regions []string
}

// NewDataset converte as datas, ordena de forma estável por data e rotula o período de cada linha
func NewDataset(source string, sales []domain.Sale, cutoff time.Time) (*Dataset, error) {
	rows := make([]domain.PresentedSale, 0, len(sales))
	for i, sale := range sales {
		date, err := utils.ParseDate(sale.Date)
		if err != nil {
			return nil, &domain.ParseError{Path: source, Line: i + 2, Err: err}
		}

		rows = append(rows, domain.PresentedSale{
			Sales:  sale.Sales,
			Date:   date,
			Region: sale.Region,
			Period: PeriodFor(date, cutoff),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Date.Before(rows[j].Date)
	})

	regions := make([]string, 0)
	seen := make(map[string]bool)
	for _, row := range rows {
		if !seen[row.Region] {
			seen[row.Region] = true
			regions = append(regions, row.Region)
		}
	}

	return &Dataset{
		source:  source,
		cutoff:  cutoff,
		rows:    rows,
		regions: regions,
	}, nil
}

// PeriodFor rotula a data; a data de corte já pertence ao período posterior
func PeriodFor(date, cutoff time.Time) string {
	if date.Before(cutoff) {
		return domain.PeriodBefore
	}
	return domain.PeriodAfter
}

func (d *Dataset) Source() string {
	return d.source
}

func (d *Dataset) Cutoff() time.Time {
	return d.cutoff
}

func (d *Dataset) Len() int {
	return len(d.rows)
}

// Rows retorna uma cópia das linhas em ordem de data
func (d *Dataset) Rows() []domain.PresentedSale {
	return append([]domain.PresentedSale(nil), d.rows...)
}

// Regions retorna as regiões na ordem em que aparecem no dataset ordenado
func (d *Dataset) Regions() []string {
	return append([]string(nil), d.regions...)
}

// Filter retorna as linhas da região selecionada, ou todas para o sentinela RegionAll
func (d *Dataset) Filter(selection string) []domain.PresentedSale {
	if selection == domain.RegionAll {
		return d.Rows()
	}

	filtered := make([]domain.PresentedSale, 0)
	for _, row := range d.rows {
		if row.Region == selection {
			filtered = append(filtered, row)
		}
	}
	return filtered
}
