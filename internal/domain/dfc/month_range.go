package dfc

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrInvalidMonth = errors.New("mês inválido, esperado um valor entre 01 e 12")
	ErrInvalidYear  = errors.New("ano inválido, esperado um ano com quatro dígitos")
)

// BuildMonthRange retorna as chaves YYYY-MM-01 de todos os meses entre
// startMonth e endMonth, inclusive, em ordem crescente. Limites invertidos
// são corrigidos; meses fora de 1..12 são rejeitados.
func BuildMonthRange(year, startMonth, endMonth string) ([]string, error) {
	year = strings.TrimSpace(year)
	if len(year) != 4 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidYear, year)
	}
	if _, err := strconv.Atoi(year); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidYear, year)
	}

	start, err := parseMonth(startMonth)
	if err != nil {
		return nil, err
	}
	end, err := parseMonth(endMonth)
	if err != nil {
		return nil, err
	}

	lo, hi := min(start, end), max(start, end)
	months := make([]string, 0, hi-lo+1)
	for m := lo; m <= hi; m++ {
		months = append(months, MonthKey(year, m))
	}
	return months, nil
}

// MonthKey formata a chave canônica de um mês.
func MonthKey(year string, month int) string {
	return fmt.Sprintf("%s-%02d-01", year, month)
}

func parseMonth(value string) (int, error) {
	m, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || m < 1 || m > 12 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidMonth, value)
	}
	return m, nil
}

// IsSwapped informa se o mês final veio antes do inicial. Chamadores usam
// isso apenas para avisar o usuário; BuildMonthRange já corrige a ordem.
func IsSwapped(startMonth, endMonth string) bool {
	start, err1 := parseMonth(startMonth)
	end, err2 := parseMonth(endMonth)
	return err1 == nil && err2 == nil && end < start
}
