package extracting

import (
	"context"

	"github.com/vfg2006/sales-visualizer/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/interfaces.go -package=mocks

// SalesReader lê um arquivo bruto de vendas diárias
type SalesReader interface {
	LoadRawSales(path string) ([]domain.RawSale, error)
}

// SalesWriter grava o dataset combinado
type SalesWriter interface {
	SaveSales(sales []domain.Sale, path string) error
}

// Extractor executa a extração completa: lê, filtra, calcula, combina e grava
type Extractor interface {
	Run(ctx context.Context) (*Result, error)
}
