package infrastructure

import (
	"fmt"
	"strings"

	"github.com/Vaflel/student-roster/domain"
	"github.com/extrame/xls"
)

// Колонки таблицы со списком студентов
const (
	colFullName = iota
	colAge
	colAddress
	colRollNumber
	colCourses // курсы: одна ячейка "A, B, C, D" или четыре ячейки подряд
)

// XLSImporter читает студентов из таблицы Excel 97 (.xls).
// Первая строка листа считается заголовком.
type XLSImporter struct {
	filename string
	charset  string
}

// NewXLSImporter создаёт новый экземпляр импортёра
func NewXLSImporter(filename, charset string) *XLSImporter {
	if charset == "" {
		charset = "utf-8"
	}
	return &XLSImporter{
		filename: filename,
		charset:  charset,
	}
}

// ImportStudents разбирает первый лист. Некорректные строки пропускаются и возвращаются как нарушения.
func (p *XLSImporter) ImportStudents() ([]domain.Student, []domain.Violation, error) {
	file, err := xls.Open(p.filename, p.charset)
	if err != nil {
		return nil, nil, fmt.Errorf("не удалось открыть %s: %w", p.filename, err)
	}

	sheet := file.GetSheet(0)
	if sheet == nil {
		return nil, nil, fmt.Errorf("в файле %s нет листов", p.filename)
	}

	students := []domain.Student{}
	violations := []domain.Violation{}

	for rowIndex := 1; rowIndex <= int(sheet.MaxRow); rowIndex++ {
		cells := readRow(sheet, rowIndex)
		if isBlankRow(cells) {
			continue
		}

		student, err := parseRosterRow(cells)
		if err != nil {
			violations = append(violations, rowViolation(rowIndex+1, cells, err))
			continue
		}
		students = append(students, student)
	}

	return students, violations, nil
}

// readRow возвращает значения ячеек строки; для строки без записи ROW вернёт nil
func readRow(sheet *xls.WorkSheet, rowIndex int) []string {
	row := sheetRow(sheet, rowIndex)
	if row == nil {
		return nil
	}

	cells := make([]string, 0, row.LastCol())
	for col := 0; col < row.LastCol(); col++ {
		cells = append(cells, strings.TrimSpace(row.Col(col)))
	}
	return cells
}

// sheetRow достаёт строку листа. WorkSheet.Row паникует на пустой строке
// (в листе нет записи ROW), такую строку считаем отсутствующей.
func sheetRow(sheet *xls.WorkSheet, rowIndex int) (row *xls.Row) {
	defer func() {
		if recover() != nil {
			row = nil
		}
	}()
	return sheet.Row(rowIndex)
}

func isBlankRow(cells []string) bool {
	for _, c := range cells {
		if c != "" {
			return false
		}
	}
	return true
}

// parseRosterRow собирает студента из ячеек строки
func parseRosterRow(cells []string) (domain.Student, error) {
	cell := func(i int) string {
		if i < len(cells) {
			return cells[i]
		}
		return ""
	}

	fullName, err := domain.ParseFullName(cell(colFullName))
	if err != nil {
		return domain.Student{}, err
	}
	age, err := domain.ParseAge(cell(colAge))
	if err != nil {
		return domain.Student{}, err
	}
	address, err := domain.ParseAddress(cell(colAddress))
	if err != nil {
		return domain.Student{}, err
	}
	rollNumber, err := domain.ParseRollNumber(cell(colRollNumber))
	if err != nil {
		return domain.Student{}, err
	}

	var courses []domain.Course
	if len(cells) > colCourses {
		for _, code := range splitCourses(cells[colCourses:]) {
			course, err := domain.ParseCourse(code)
			if err != nil {
				return domain.Student{}, err
			}
			courses = append(courses, course)
		}
	}

	return domain.NewStudent(fullName, age, address, rollNumber, courses)
}

// splitCourses разбивает ячейки курсов по запятым, точкам с запятой и пробелам
func splitCourses(cells []string) []string {
	var codes []string
	for _, c := range cells {
		codes = append(codes, strings.FieldsFunc(c, func(r rune) bool {
			return r == ',' || r == ';' || r == ' '
		})...)
	}
	return codes
}

func rowViolation(rowNumber int, cells []string, err error) domain.Violation {
	student := domain.Student{}
	if len(cells) > colFullName {
		student.FullName = cells[colFullName]
	}
	return domain.NewViolation(rowNumber, student, domain.ViolationInvalidRow, domain.SeverityError,
		fmt.Sprintf("строка %d: %v", rowNumber, err))
}
