package apiErrors

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/sales-visualizer/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	// Erros de validação
	ErrInvalidFormat = "VAL_002" // Formato inválido

	// Erros de recurso
	ErrNotFound = "RES_001" // Rota inexistente

	// Erros de cálculo
	ErrDivision = "CALC_001" // Variação percentual sem vendas no período anterior

	// Erros de dados
	ErrParse      = "DATA_001" // Dataset malformado
	ErrConversion = "DATA_002" // Valor monetário inválido

	// Erros do servidor
	ErrInternalServer = "SRV_001" // Erro interno do servidor
)

var httpStatusMap = map[string]int{
	ErrInvalidFormat:  http.StatusBadRequest,
	ErrNotFound:       http.StatusNotFound,
	ErrDivision:       http.StatusUnprocessableEntity,
	ErrParse:          http.StatusInternalServerError,
	ErrConversion:     http.StatusInternalServerError,
	ErrInternalServer: http.StatusInternalServerError,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// StatusFor retorna o status HTTP do código, ou 500 para códigos desconhecidos
func StatusFor(code string) int {
	if status, ok := httpStatusMap[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// WriteError escreve o erro padronizado na resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	_ = json.NewEncoder(w).Encode(apiErr)
}

// CodeFor classifica um erro de domínio
func CodeFor(err error) string {
	switch {
	case errors.Is(err, domain.ErrDivision):
		return ErrDivision
	case errors.Is(err, domain.ErrParse):
		return ErrParse
	case errors.Is(err, domain.ErrConversion):
		return ErrConversion
	default:
		return ErrInternalServer
	}
}

// FromError cria um erro de API a partir de um erro Go
func FromError(err error) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	return APIError{
		Code:    CodeFor(err),
		Message: err.Error(),
	}
}

// WriteDomainError escreve o erro de domínio com o código correspondente
func WriteDomainError(w http.ResponseWriter, err error) {
	apiErr := FromError(err)
	WriteError(w, apiErr.Code, apiErr.Message, nil)
}
