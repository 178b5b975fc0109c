package infrastructure

import (
	"fmt"
	"os"

	"github.com/Vaflel/student-roster/domain"
	"gopkg.in/yaml.v3"
)

// StudentsDocument структура YAML-файла со списком
type StudentsDocument struct {
	Students []domain.Student `yaml:"students"`
}

// YAMLRosterStore хранит список студентов в YAML-файле
type YAMLRosterStore struct {
	filename string
}

// NewYAMLRosterStore создает новый экземпляр хранилища
func NewYAMLRosterStore(filename string) *YAMLRosterStore {
	return &YAMLRosterStore{
		filename: filename,
	}
}

// Location возвращает путь к файлу
func (r *YAMLRosterStore) Location() string {
	return r.filename
}

// LoadStudents загружает список студентов из YAML файла
func (r *YAMLRosterStore) LoadStudents() ([]domain.Student, error) {
	data, err := os.ReadFile(r.filename)
	if err != nil {
		return nil, fmt.Errorf("не удалось прочитать файл: %w", err)
	}

	var doc StudentsDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("не удалось распарсить YAML: %w", err)
	}

	return doc.Students, nil
}

// SaveStudents сохраняет студентов в YAML файл, перезаписывая его
func (r *YAMLRosterStore) SaveStudents(students []domain.Student) error {
	if students == nil {
		students = []domain.Student{}
	}

	data, err := yaml.Marshal(StudentsDocument{Students: students})
	if err != nil {
		return fmt.Errorf("не удалось сериализовать YAML: %w", err)
	}

	return WriteFile(r.filename, data)
}

// Export позволяет использовать хранилище как выгрузку в YAML
func (r *YAMLRosterStore) Export(students []domain.Student) error {
	return r.SaveStudents(students)
}
