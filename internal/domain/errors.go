package domain

import (
	"errors"
	"fmt"
)

var (
	ErrParse      = errors.New("parse error")
	ErrConversion = errors.New("conversion error")
	ErrDivision   = errors.New("division error")
)

// ParseError indica arquivo ausente, ilegível ou malformado
type ParseError struct {
	Path string
	Line int // 0 quando o erro não é de uma linha específica
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s: %s:%d: %v", ErrParse, e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", ErrParse, e.Path, e.Err)
}

func (e *ParseError) Unwrap() []error {
	return []error{ErrParse, e.Err}
}

// ConversionError indica um preço fora do formato "$<número>"
type ConversionError struct {
	Value string
	Err   error
}

func (e *ConversionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: preço inválido %q: %v", ErrConversion, e.Value, e.Err)
	}
	return fmt.Sprintf("%s: preço inválido %q", ErrConversion, e.Value)
}

func (e *ConversionError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrConversion}
	}
	return []error{ErrConversion, e.Err}
}

// DivisionError indica divisão por zero no cálculo da variação percentual
type DivisionError struct {
	Numerator float64
	Divisor   float64
}

func (e *DivisionError) Error() string {
	return fmt.Sprintf("%s: %g / %g", ErrDivision, e.Numerator, e.Divisor)
}

func (e *DivisionError) Unwrap() error {
	return ErrDivision
}
