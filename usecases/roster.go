package usecases

import (
	"fmt"
	"log/slog"
	"slices"
	"sort"

	"github.com/Vaflel/student-roster/domain"
)

// RosterManager хранит список студентов в памяти, всегда отсортированный по ФИО и номеру
type RosterManager struct {
	students []domain.Student
	store    RosterStore
	logger   *slog.Logger
}

// NewRosterManager создает пустой список студентов
func NewRosterManager(store RosterStore, logger *slog.Logger) *RosterManager {
	return &RosterManager{
		students: make([]domain.Student, 0),
		store:    store,
		logger:   logger,
	}
}

// NewRosterManagerFrom создает список из уже прочитанных записей и сортирует его
func NewRosterManagerFrom(store RosterStore, logger *slog.Logger, students []domain.Student) *RosterManager {
	m := NewRosterManager(store, logger)
	for _, s := range students {
		m.insert(s)
	}
	return m
}

// Add добавляет студента. Порядок такой же, как после добавления в конец и стабильной сортировки.
func (m *RosterManager) Add(student domain.Student) {
	m.insert(student)
	m.logger.Debug("студент добавлен",
		"roll_number", student.RollNumber,
		"full_name", student.FullName,
		"total", len(m.students))
}

func (m *RosterManager) insert(student domain.Student) {
	// первая позиция, где запись строго больше новой: равные остаются раньше
	i := sort.Search(len(m.students), func(i int) bool {
		return domain.Compare(m.students[i], student) > 0
	})
	m.students = slices.Insert(m.students, i, student.Clone())
}

// List возвращает копию списка в текущем порядке или ErrRosterEmpty для пустого списка
func (m *RosterManager) List() ([]domain.Student, error) {
	if len(m.students) == 0 {
		return nil, domain.ErrRosterEmpty
	}
	return m.snapshot(), nil
}

// Delete удаляет первого в текущем порядке студента с указанным номером
func (m *RosterManager) Delete(rollNumber int) (domain.Student, error) {
	i := slices.IndexFunc(m.students, func(s domain.Student) bool {
		return s.RollNumber == rollNumber
	})
	if i < 0 {
		return domain.Student{}, fmt.Errorf("номер %d: %w", rollNumber, domain.ErrStudentNotFound)
	}

	removed := m.students[i]
	m.students = slices.Delete(m.students, i, i+1)
	m.logger.Debug("студент удалён",
		"roll_number", rollNumber,
		"full_name", removed.FullName,
		"total", len(m.students))
	return removed, nil
}

// Persist записывает весь список в хранилище, перезаписывая прежнее содержимое.
// При ошибке список в памяти не меняется.
func (m *RosterManager) Persist() (string, error) {
	location := m.store.Location()
	if err := m.store.SaveStudents(m.snapshot()); err != nil {
		m.logger.Error("не удалось сохранить список", "path", location, "error", err)
		return location, fmt.Errorf("не удалось сохранить список в %s: %w", location, err)
	}

	m.logger.Info("список сохранён", "path", location, "total", len(m.students))
	return location, nil
}

// Len возвращает количество студентов
func (m *RosterManager) Len() int {
	return len(m.students)
}

func (m *RosterManager) snapshot() []domain.Student {
	out := make([]domain.Student, len(m.students))
	for i, s := range m.students {
		out[i] = s.Clone()
	}
	return out
}
