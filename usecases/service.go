package usecases

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/Vaflel/student-roster/domain"
)

// RosterService выполняет операции над сохранённым файлом списка: проверку, выгрузку и загрузку
type RosterService struct {
	store  RosterStore
	logger *slog.Logger
}

// ValidatingResult содержит результаты проверки списка
type ValidatingResult struct {
	Violations []domain.Violation
	Students   []domain.Student
}

// ImportResult содержит результаты загрузки студентов из внешнего файла
type ImportResult struct {
	Imported   int
	Total      int
	Violations []domain.Violation
	Location   string
}

// NewRosterService создает новый экземпляр сервиса
func NewRosterService(store RosterStore, logger *slog.Logger) *RosterService {
	return &RosterService{
		store:  store,
		logger: logger,
	}
}

// CheckRoster читает сохранённый список и проверяет его
func (s *RosterService) CheckRoster() (ValidatingResult, error) {
	students, err := s.store.LoadStudents()
	if err != nil {
		return ValidatingResult{}, fmt.Errorf("не удалось прочитать %s: %w", s.store.Location(), err)
	}

	validator := domain.NewValidator(students)
	violations := validator.ValidateRoster()
	s.logger.Info("список проверен",
		"path", s.store.Location(),
		"students", len(students),
		"violations", len(violations))

	return ValidatingResult{
		Violations: violations,
		Students:   students,
	}, nil
}

// ExportRoster выгружает сохранённый список через exporter
func (s *RosterService) ExportRoster(exporter RosterExporter) (int, error) {
	students, err := s.store.LoadStudents()
	if err != nil {
		return 0, fmt.Errorf("не удалось прочитать %s: %w", s.store.Location(), err)
	}

	if err := exporter.Export(students); err != nil {
		return 0, fmt.Errorf("не удалось выгрузить список: %w", err)
	}

	s.logger.Info("список выгружен", "students", len(students))
	return len(students), nil
}

// ImportRoster добавляет студентов из importer к сохранённому списку и сохраняет результат.
// Если файла списка ещё нет, начинаем с пустого.
func (s *RosterService) ImportRoster(importer RosterImporter) (ImportResult, error) {
	existing, err := s.store.LoadStudents()
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return ImportResult{}, fmt.Errorf("не удалось прочитать %s: %w", s.store.Location(), err)
		}
		existing = nil
	}

	imported, violations, err := importer.ImportStudents()
	if err != nil {
		return ImportResult{}, fmt.Errorf("не удалось загрузить студентов: %w", err)
	}

	manager := NewRosterManagerFrom(s.store, s.logger, existing)
	for _, student := range imported {
		manager.Add(student)
	}

	location, err := manager.Persist()
	if err != nil {
		return ImportResult{}, err
	}

	return ImportResult{
		Imported:   len(imported),
		Total:      manager.Len(),
		Violations: violations,
		Location:   location,
	}, nil
}
