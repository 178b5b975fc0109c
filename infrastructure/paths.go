package infrastructure

import (
	"os"
	"path/filepath"
)

// Имена файла списка по умолчанию для форматов json и yaml
const (
	RosterFileName     = "users.json"
	RosterYAMLFileName = "users.yaml"
)

// DefaultRosterPath возвращает путь к файлу списка в папке "Документы" пользователя.
// Без домашнего каталога используется каталог настроек, в крайнем случае текущий.
func DefaultRosterPath() string {
	return rosterPath(RosterFileName)
}

// DefaultYAMLRosterPath то же, что DefaultRosterPath, для списка в формате yaml
func DefaultYAMLRosterPath() string {
	return rosterPath(RosterYAMLFileName)
}

func rosterPath(name string) string {
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		return filepath.Join(home, "Documents", name)
	}
	if dir, err := os.UserConfigDir(); err == nil && dir != "" {
		return filepath.Join(dir, "student-roster", name)
	}
	return name
}
