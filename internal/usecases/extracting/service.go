package extracting

import (
	"context"
	"regexp"
	"strconv"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-visualizer/internal/config"
	"github.com/vfg2006/sales-visualizer/internal/domain"
)

// amountPattern aceita dígitos com parte fracionária opcional ("3", "3.00", "3.", ".5")
var amountPattern = regexp.MustCompile(`^(\d+\.?\d*|\.\d+)$`)

// Result descreve a saída de uma execução
type Result struct {
	OutputPath string
	Rows       int
	Files      int
	Duration   time.Duration
}

type Service struct {
	reader        SalesReader
	writer        SalesWriter
	inputPaths    []string
	outputPath    string
	targetProduct string
}

func NewService(reader SalesReader, writer SalesWriter, cfg *config.Config) *Service {
	return &Service{
		reader:        reader,
		writer:        writer,
		inputPaths:    cfg.Extraction.InputPaths(),
		outputPath:    cfg.Extraction.OutputFile,
		targetProduct: cfg.Extraction.TargetProduct,
	}
}

// Run processa todos os arquivos na ordem configurada e grava o dataset combinado.
// Qualquer erro interrompe a execução inteira antes da escrita.
func (s *Service) Run(ctx context.Context) (*Result, error) {
	startTime := time.Now()

	sets := make([][]domain.Sale, 0, len(s.inputPaths))
	for _, path := range s.inputPaths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		sales, err := s.processFile(path)
		if err != nil {
			logrus.WithError(err).WithField("file", path).Error("Erro ao processar arquivo de vendas")
			return nil, err
		}

		sets = append(sets, sales)
	}

	combined := Combine(sets...)

	if err := s.Save(combined); err != nil {
		return nil, err
	}

	result := &Result{
		OutputPath: s.outputPath,
		Rows:       len(combined),
		Files:      len(s.inputPaths),
		Duration:   time.Since(startTime),
	}

	logrus.WithFields(logrus.Fields{
		"output":   result.OutputPath,
		"rows":     result.Rows,
		"files":    result.Files,
		"duration": result.Duration.String(),
	}).Info("Extração concluída")

	return result, nil
}

func (s *Service) processFile(path string) ([]domain.Sale, error) {
	raw, err := s.Load(path)
	if err != nil {
		return nil, err
	}

	filtered := FilterProduct(raw, s.targetProduct)

	priced, err := DeriveSales(filtered)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"file":     path,
		"rows":     len(raw),
		"retained": len(filtered),
		"product":  s.targetProduct,
	}).Debug("Arquivo de vendas processado")

	return Project(priced), nil
}

// Load lê um arquivo bruto de vendas
func (s *Service) Load(path string) ([]domain.RawSale, error) {
	return s.reader.LoadRawSales(path)
}

// Save grava o dataset combinado no caminho de saída, substituindo o anterior
func (s *Service) Save(sales []domain.Sale) error {
	return s.writer.SaveSales(sales, s.outputPath)
}

// FilterProduct mantém apenas as linhas cujo produto é exatamente igual ao alvo.
// A comparação diferencia maiúsculas e não remove espaços.
func FilterProduct(records []domain.RawSale, target string) []domain.RawSale {
	filtered := make([]domain.RawSale, 0, len(records))
	for _, record := range records {
		if record.Product == target {
			filtered = append(filtered, record)
		}
	}
	return filtered
}

// CleanPrice remove um único símbolo monetário inicial e converte o restante em número
func CleanPrice(text string) (float64, error) {
	symbol, size := utf8.DecodeRuneInString(text)
	if size == 0 || !unicode.Is(unicode.Sc, symbol) {
		return 0, &domain.ConversionError{Value: text}
	}

	amount := text[size:]
	if !amountPattern.MatchString(amount) {
		return 0, &domain.ConversionError{Value: text}
	}

	value, err := strconv.ParseFloat(amount, 64)
	if err != nil {
		return 0, &domain.ConversionError{Value: text, Err: err}
	}

	return value, nil
}

// DeriveSales calcula sales = preço * quantidade, sem arredondamento
func DeriveSales(records []domain.RawSale) ([]domain.PricedSale, error) {
	priced := make([]domain.PricedSale, 0, len(records))
	for _, record := range records {
		price, err := CleanPrice(record.Price)
		if err != nil {
			return nil, err
		}

		priced = append(priced, domain.PricedSale{
			RawSale: record,
			Sales:   price * float64(record.Quantity),
		})
	}
	return priced, nil
}

// Project descarta todas as colunas exceto sales, date e region
func Project(records []domain.PricedSale) []domain.Sale {
	projected := make([]domain.Sale, 0, len(records))
	for _, record := range records {
		projected = append(projected, domain.Sale{
			Sales:  record.Sales,
			Date:   record.Date,
			Region: record.Region,
		})
	}
	return projected
}

// Combine concatena os conjuntos na ordem recebida, preservando a ordem interna de cada um
func Combine(sets ...[]domain.Sale) []domain.Sale {
	total := 0
	for _, set := range sets {
		total += len(set)
	}

	combined := make([]domain.Sale, 0, total)
	for _, set := range sets {
		combined = append(combined, set...)
	}
	return combined
}
