package presenting

import "github.com/vfg2006/sales-visualizer/internal/domain"

//go:generate mockgen -source=interfaces.go -destination=mocks/interfaces.go -package=mocks

// DatasetReader lê o dataset combinado gravado pelo extrator
type DatasetReader interface {
	LoadSales(path string) ([]domain.Sale, error)
}
