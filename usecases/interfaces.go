package usecases

import "github.com/Vaflel/student-roster/domain"

// RosterStore определяет интерфейс для хранилища списка студентов.
// Список всегда записывается и читается целиком.
type RosterStore interface {
	LoadStudents() ([]domain.Student, error)
	SaveStudents(students []domain.Student) error
	Location() string
}

// RosterExporter выгружает список студентов в другой формат
type RosterExporter interface {
	Export(students []domain.Student) error
}

// RosterImporter читает студентов из внешнего источника.
// Строки, которые не удалось разобрать, возвращаются как нарушения.
type RosterImporter interface {
	ImportStudents() ([]domain.Student, []domain.Violation, error)
}
