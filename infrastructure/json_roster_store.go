package infrastructure

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Vaflel/student-roster/domain"
)

// JSONRosterStore хранит список студентов в одном JSON-файле
type JSONRosterStore struct {
	filename string
}

// NewJSONRosterStore создает новый экземпляр хранилища
func NewJSONRosterStore(filename string) *JSONRosterStore {
	return &JSONRosterStore{
		filename: filename,
	}
}

// Location возвращает путь к файлу
func (r *JSONRosterStore) Location() string {
	return r.filename
}

// LoadStudents читает файл, проверяет его по схеме и возвращает студентов
func (r *JSONRosterStore) LoadStudents() ([]domain.Student, error) {
	data, err := os.ReadFile(r.filename)
	if err != nil {
		return nil, fmt.Errorf("не удалось прочитать файл: %w", err)
	}

	if err := ValidateRosterDocument(data); err != nil {
		return nil, err
	}

	var students []domain.Student
	if err := json.Unmarshal(data, &students); err != nil {
		return nil, fmt.Errorf("не удалось распарсить JSON: %w", err)
	}

	return students, nil
}

// SaveStudents перезаписывает файл целиком
func (r *JSONRosterStore) SaveStudents(students []domain.Student) error {
	if students == nil {
		students = []domain.Student{}
	}

	data, err := json.MarshalIndent(students, "", "  ")
	if err != nil {
		return fmt.Errorf("не удалось сериализовать JSON: %w", err)
	}

	if err := WriteFile(r.filename, data); err != nil {
		return err
	}

	return nil
}

// WriteFile создаёт каталог при необходимости и записывает файл целиком
func WriteFile(filename string, data []byte) error {
	if err := ensureDir(filename); err != nil {
		return err
	}

	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("не удалось записать файл: %w", err)
	}

	return nil
}

func ensureDir(filename string) error {
	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("не удалось создать каталог: %w", err)
		}
	}
	return nil
}
