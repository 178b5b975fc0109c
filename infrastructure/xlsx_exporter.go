package infrastructure

import (
	"fmt"

	"github.com/Vaflel/student-roster/domain"
	"github.com/xuri/excelize/v2"
)

// RosterSheetName имя листа в выгружаемой книге
const RosterSheetName = "Студенты"

var rosterHeader = []any{"ФИО", "Возраст", "Адрес", "Номер", "Курс 1", "Курс 2", "Курс 3", "Курс 4"}

// XLSXExporter выгружает список студентов в книгу Excel (.xlsx)
type XLSXExporter struct {
	filename string
}

// NewXLSXExporter создаёт новый экземпляр выгрузки
func NewXLSXExporter(filename string) *XLSXExporter {
	return &XLSXExporter{
		filename: filename,
	}
}

// Export записывает заголовок и по строке на каждого студента
func (e *XLSXExporter) Export(students []domain.Student) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", RosterSheetName); err != nil {
		return fmt.Errorf("не удалось переименовать лист: %w", err)
	}

	if err := f.SetSheetRow(RosterSheetName, "A1", &rosterHeader); err != nil {
		return fmt.Errorf("не удалось записать заголовок: %w", err)
	}

	for i, s := range students {
		row := []any{s.FullName, s.Age, s.Address, s.RollNumber}
		for _, c := range s.Courses {
			row = append(row, string(c))
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(RosterSheetName, cell, &row); err != nil {
			return fmt.Errorf("не удалось записать строку %d: %w", i+2, err)
		}
	}

	if err := ensureDir(e.filename); err != nil {
		return err
	}

	if err := f.SaveAs(e.filename); err != nil {
		return fmt.Errorf("не удалось записать файл: %w", err)
	}

	return nil
}
