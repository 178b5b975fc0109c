package infrastructure

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestXLSXExporter_Export(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export", "roster.xlsx")

	require.NoError(t, NewXLSXExporter(path).Export(sampleRoster(t)))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{RosterSheetName}, f.GetSheetList())

	rows, err := f.GetRows(RosterSheetName)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"ФИО", "Возраст", "Адрес", "Номер", "Курс 1", "Курс 2", "Курс 3", "Курс 4"}, rows[0])
	assert.Equal(t, []string{"Ann", "21", "Y", "2", "A", "A", "B", "C"}, rows[1])
	assert.Equal(t, []string{"Bob", "30", "Main st. 1", "1", "F", "E", "D", "C"}, rows[3])
}

func TestXLSXExporter_EmptyRoster(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xlsx")

	require.NoError(t, NewXLSXExporter(path).Export(nil))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(RosterSheetName)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestXLSXExporter_UnwritablePath(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	err := NewXLSXExporter(filepath.Join(blocker, "roster.xlsx")).Export(sampleRoster(t))
	assert.ErrorContains(t, err, "не удалось создать каталог")
}
