package domain

import (
	"fmt"
	"strings"
)

// Виды нарушений
const (
	ViolationEmptyField    = "Пустое поле"
	ViolationInvalidCourse = "Неизвестный курс"
	ViolationCourseCount   = "Неверное число курсов"
	ViolationDuplicateRoll = "Повтор номера"
	ViolationOutOfOrder    = "Нарушен порядок"
	ViolationInvalidRow    = "Некорректная строка"
)

// Уровни нарушений
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Violation описывает нарушение в записи списка студентов
type Violation struct {
	Position   int    // номер записи в документе, с 1
	FullName   string
	RollNumber int
	Type       string
	Severity   string
	Message    string
}

// NewViolation создает новое нарушение для записи
func NewViolation(position int, student Student, violationType, severity, message string) Violation {
	return Violation{
		Position:   position,
		FullName:   student.FullName,
		RollNumber: student.RollNumber,
		Type:       violationType,
		Severity:   severity,
		Message:    message,
	}
}

func (v Violation) String() string {
	return fmt.Sprintf("#%d %s (номер %d): %s: %s", v.Position, v.FullName, v.RollNumber, v.Type, v.Message)
}

// HasErrors сообщает, есть ли среди нарушений ошибки, а не только предупреждения
func HasErrors(violations []Violation) bool {
	for _, v := range violations {
		if v.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Validator проверяет прочитанный из файла список студентов
type Validator struct {
	students []Student
}

// NewValidator создаёт новый Validator
func NewValidator(students []Student) *Validator {
	return &Validator{
		students: students,
	}
}

// ValidateRoster проверяет каждую запись, повторы номеров и порядок
func (v *Validator) ValidateRoster() []Violation {
	violations := []Violation{}

	for i, student := range v.students {
		violations = append(violations, v.validateStudent(i+1, student)...)
	}

	violations = append(violations, v.findDuplicates()...)
	violations = append(violations, v.checkOrder()...)

	return violations
}

// validateStudent проверяет поля одной записи
func (v *Validator) validateStudent(position int, student Student) []Violation {
	violations := []Violation{}

	if strings.TrimSpace(student.FullName) == "" {
		violations = append(violations, NewViolation(position, student, ViolationEmptyField, SeverityError, "не указано ФИО"))
	}
	if strings.TrimSpace(student.Address) == "" {
		violations = append(violations, NewViolation(position, student, ViolationEmptyField, SeverityError, "не указан адрес"))
	}

	if len(student.Courses) != CoursesPerStudent {
		violations = append(violations, NewViolation(position, student, ViolationCourseCount, SeverityError,
			fmt.Sprintf("курсов %d, нужно %d", len(student.Courses), CoursesPerStudent)))
	}
	// из файла неизвестный код не прочитать, сюда он попадает только из значений,
	// собранных в коде без NewStudent
	for _, c := range student.Courses {
		if !c.Valid() {
			violations = append(violations, NewViolation(position, student, ViolationInvalidCourse, SeverityError,
				fmt.Sprintf("курс %q", string(c))))
		}
	}

	return violations
}

// findDuplicates ищет повторяющиеся номера. Уникальность не обязательна, поэтому это предупреждение.
func (v *Validator) findDuplicates() []Violation {
	violations := []Violation{}
	seen := make(map[int]int)

	for i, student := range v.students {
		first, exists := seen[student.RollNumber]
		if !exists {
			seen[student.RollNumber] = i + 1
			continue
		}
		violations = append(violations, NewViolation(i+1, student, ViolationDuplicateRoll, SeverityWarning,
			fmt.Sprintf("номер уже встречался в записи #%d", first)))
	}

	return violations
}

// checkOrder проверяет, что записи отсортированы по ФИО и номеру
func (v *Validator) checkOrder() []Violation {
	violations := []Violation{}

	for i := 1; i < len(v.students); i++ {
		if Compare(v.students[i-1], v.students[i]) > 0 {
			violations = append(violations, NewViolation(i+1, v.students[i], ViolationOutOfOrder, SeverityWarning,
				"запись стоит раньше предыдущей по ФИО и номеру"))
		}
	}

	return violations
}
