package utils

import (
	"fmt"
	"time"
)

// dateLayouts são os formatos aceitos, do mais comum ao menos comum
var dateLayouts = []string{
	time.DateOnly,
	time.DateTime,
	time.RFC3339,
}

// ParseDate converte uma data no formato YYYY-MM-DD, aceitando também data e hora
func ParseDate(dateStr string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if date, err := time.Parse(layout, dateStr); err == nil {
			return date, nil
		}
	}
	return time.Time{}, fmt.Errorf("data inválida %q", dateStr)
}
