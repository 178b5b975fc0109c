package domain

import (
	"errors"
	"fmt"
)

// Базовые ошибки, проверяются через errors.Is
var (
	ErrEmptyField      = errors.New("поле не может быть пустым")
	ErrInvalidNumber   = errors.New("ожидается целое число")
	ErrInvalidCourse   = errors.New("неизвестный курс, допустимы A, B, C, D, E, F")
	ErrCourseCount     = errors.New("нужно ровно 4 курса")
	ErrStudentNotFound = errors.New("студент не найден")
	ErrRosterEmpty     = errors.New("список студентов пуст")
)

// Названия полей студента
const (
	FieldFullName   = "fullName"
	FieldAge        = "age"
	FieldAddress    = "address"
	FieldRollNumber = "rollNumber"
	FieldCourses    = "courses"
)

// FieldError описывает ошибку ввода конкретного поля
type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("%s %q: %v", e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
