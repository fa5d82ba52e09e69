package csvfile

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-visualizer/internal/domain"
)

// SaveSales grava o dataset combinado com cabeçalho, substituindo o arquivo existente.
// O conteúdo vai para um arquivo temporário no mesmo diretório e só então é renomeado,
// então uma falha nunca deixa saída parcial no destino.
func (r *Repository) SaveSales(sales []domain.Sale, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "erro ao criar diretório %s", dir)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.Wrap(err, "erro ao criar arquivo temporário")
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	writer := csv.NewWriter(tmp)

	if err := writer.Write(domain.SaleColumns); err != nil {
		tmp.Close()
		return errors.Wrap(err, "erro ao escrever cabeçalho")
	}

	for _, sale := range sales {
		record := []string{
			FormatSales(sale.Sales),
			sale.Date,
			sale.Region,
		}
		if err := writer.Write(record); err != nil {
			tmp.Close()
			return errors.Wrap(err, "erro ao escrever linha")
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		tmp.Close()
		return errors.Wrap(err, "erro ao finalizar CSV")
	}

	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "erro ao fechar arquivo temporário")
	}

	if err := os.Chmod(tmpName, 0o644); err != nil {
		return errors.Wrap(err, "erro ao ajustar permissões")
	}

	if err := os.Rename(tmpName, path); err != nil {
		return errors.Wrapf(err, "erro ao gravar %s", path)
	}

	return nil
}

// FormatSales escreve o valor com a menor representação que preserva o float64
func FormatSales(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
