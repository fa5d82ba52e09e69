package utils

import (
	"strconv"
	"strings"
)

// FormatMoney formata como "$1,234.56", arredondando o valor binário exato
func FormatMoney(f float64) string {
	return "$" + groupThousands(strconv.FormatFloat(f, 'f', 2, 64))
}

// FormatPercent formata com uma casa decimal, como "12.3%"
func FormatPercent(f float64) string {
	return strconv.FormatFloat(f, 'f', 1, 64) + "%"
}

// groupThousands insere vírgulas na parte inteira de um número já formatado
func groupThousands(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}

	integer, fraction, hasFraction := strings.Cut(s, ".")

	var b strings.Builder
	for i, digit := range integer {
		if i > 0 && (len(integer)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}

	if hasFraction {
		return sign + b.String() + "." + fraction
	}
	return sign + b.String()
}
