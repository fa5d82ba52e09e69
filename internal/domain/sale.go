package domain

import "time"

const (
	PeriodBefore = "Before Price Increase"
	PeriodAfter  = "After Price Increase"

	// RegionAll é o valor sentinela que desativa o filtro de região
	RegionAll = "all"
)

// Colunas do arquivo bruto de vendas diárias
const (
	ColumnProduct  = "product"
	ColumnPrice    = "price"
	ColumnQuantity = "quantity"
	ColumnDate     = "date"
	ColumnRegion   = "region"
	ColumnSales    = "sales"
)

// RawColumns são as colunas obrigatórias no cabeçalho de cada arquivo de entrada
var RawColumns = []string{ColumnProduct, ColumnPrice, ColumnQuantity, ColumnDate, ColumnRegion}

// SaleColumns é o conjunto fixo de colunas do dataset combinado, na ordem de escrita
var SaleColumns = []string{ColumnSales, ColumnDate, ColumnRegion}

// RawSale representa uma linha de um arquivo de vendas diárias.
// Price mantém o texto original com o símbolo monetário.
type RawSale struct {
	Product  string
	Price    string
	Quantity int
	Date     string
	Region   string
}

// PricedSale é uma linha filtrada com o valor de vendas já calculado
type PricedSale struct {
	RawSale
	Sales float64
}

// Sale é a linha do dataset combinado
type Sale struct {
	Sales  float64
	Date   string
	Region string
}

// PresentedSale é a linha usada pelo dashboard, com data convertida e período calculado
type PresentedSale struct {
	Sales  float64
	Date   time.Time
	Region string
	Period string
}
