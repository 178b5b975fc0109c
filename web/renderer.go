// Package web предоставляет функции для отображения списка студентов в HTML
package web

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/Vaflel/student-roster/domain"
	"github.com/Vaflel/student-roster/infrastructure"
)

// Row представляет строку таблицы студентов
type Row struct {
	Position    int    // Номер строки (с 1)
	FullName    string // ФИО
	Age         int    // Возраст
	Address     string // Адрес
	RollNumber  int    // Номер студента
	Courses     string // Курсы через запятую
	IsViolation bool   // Флаг, указывающий на нарушение в записи
}

// TemplateData содержит все данные, необходимые для отображения отчета
type TemplateData struct {
	Total      int                // Количество студентов
	Rows       []Row              // Строки таблицы
	Violations []domain.Violation // Список нарушений
}

// reportTemplate содержит HTML-шаблон отчета; строки с нарушениями выделены цветом
const reportTemplate = `<!DOCTYPE html>
<html lang="ru">
<head>
	<meta charset="utf-8">
	<title>Список студентов</title>
</head>
<body>
	<h1>Список студентов</h1>
	<p class="total">Всего: {{.Total}}</p>
	{{if .Rows}}
	<table class="roster-table">
		<thead>
			<tr>
				<th>№</th><th>ФИО</th><th>Возраст</th><th>Адрес</th><th>Номер</th><th>Курсы</th>
			</tr>
		</thead>
		<tbody>
			{{range .Rows}}
			<tr class="student{{if .IsViolation}} violation{{end}}"{{if .IsViolation}} style="background-color: #ffcccc;"{{end}}>
				<td>{{.Position}}</td>
				<td>{{.FullName}}</td>
				<td>{{.Age}}</td>
				<td>{{.Address}}</td>
				<td>{{.RollNumber}}</td>
				<td>{{.Courses}}</td>
			</tr>
			{{end}}
		</tbody>
	</table>
	{{else}}
	<p class="empty">Список студентов пуст.</p>
	{{end}}
	{{if .Violations}}
	<h2>Нарушения</h2>
	<ul class="violations">
		{{range .Violations}}
		<li>{{.String}}</li>
		{{end}}
	</ul>
	{{end}}
</body>
</html>
`

var reportTmpl = template.Must(template.New("report").Parse(reportTemplate))

// RenderRoster генерирует HTML-отчет по списку студентов
// Принимает список студентов и найденные нарушения, возвращает HTML-строку и ошибку
func RenderRoster(students []domain.Student, violations []domain.Violation) (string, error) {
	data := prepareTemplateData(students, violations)

	var buf bytes.Buffer
	if err := reportTmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// prepareTemplateData подготавливает данные для шаблона
func prepareTemplateData(students []domain.Student, violations []domain.Violation) TemplateData {
	flagged := make(map[int]bool)
	for _, v := range violations {
		flagged[v.Position] = true
	}

	rows := make([]Row, 0, len(students))
	for i, s := range students {
		rows = append(rows, Row{
			Position:    i + 1,
			FullName:    s.FullName,
			Age:         s.Age,
			Address:     s.Address,
			RollNumber:  s.RollNumber,
			Courses:     s.CoursesString(),
			IsViolation: flagged[i+1],
		})
	}

	return TemplateData{
		Total:      len(students),
		Rows:       rows,
		Violations: violations,
	}
}

// HTMLExporter записывает отчет по списку в HTML-файл
type HTMLExporter struct {
	filename string
}

// NewHTMLExporter создаёт новый экземпляр выгрузки
func NewHTMLExporter(filename string) *HTMLExporter {
	return &HTMLExporter{filename: filename}
}

// Export проверяет список и записывает отчет с отмеченными нарушениями
func (e *HTMLExporter) Export(students []domain.Student) error {
	violations := domain.NewValidator(students).ValidateRoster()

	report, err := RenderRoster(students, violations)
	if err != nil {
		return fmt.Errorf("не удалось сформировать отчет: %w", err)
	}

	return infrastructure.WriteFile(e.filename, []byte(report))
}
