package domain

import (
	"strconv"
	"strings"
)

// ParseFullName проверяет, что ФИО не пустое
func ParseFullName(s string) (string, error) {
	return parseText(FieldFullName, s)
}

// ParseAddress проверяет, что адрес не пустой
func ParseAddress(s string) (string, error) {
	return parseText(FieldAddress, s)
}

// ParseAge разбирает возраст. Кроме успешного разбора числа ничего не проверяется.
func ParseAge(s string) (int, error) {
	return parseNumber(FieldAge, s)
}

// ParseRollNumber разбирает номер студента
func ParseRollNumber(s string) (int, error) {
	return parseNumber(FieldRollNumber, s)
}

func parseText(field, s string) (string, error) {
	if strings.TrimSpace(s) == "" {
		return "", &FieldError{Field: field, Err: ErrEmptyField}
	}
	return s, nil
}

func parseNumber(field, s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, &FieldError{Field: field, Value: s, Err: ErrInvalidNumber}
	}
	return n, nil
}
