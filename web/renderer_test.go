package web

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vaflel/student-roster/domain"
)

func courses() []domain.Course {
	return []domain.Course{domain.CourseA, domain.CourseB, domain.CourseC, domain.CourseD}
}

func parse(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestRenderRoster(t *testing.T) {
	students := []domain.Student{
		{FullName: "Ann", Age: 20, Address: "X", RollNumber: 2, Courses: courses()},
		{FullName: "Bob <b>", Age: 30, Address: "Y", RollNumber: 2, Courses: courses()},
	}
	violations := domain.NewValidator(students).ValidateRoster()
	require.Len(t, violations, 1)

	html, err := RenderRoster(students, violations)
	require.NoError(t, err)
	doc := parse(t, html)

	rows := doc.Find("table.roster-table tbody tr.student")
	assert.Equal(t, 2, rows.Length())

	first := rows.Eq(0).Find("td")
	assert.Equal(t, "1", first.Eq(0).Text())
	assert.Equal(t, "Ann", first.Eq(1).Text())
	assert.Equal(t, "A, B, C, D", first.Eq(5).Text())

	assert.False(t, rows.Eq(0).HasClass("violation"))
	assert.True(t, rows.Eq(1).HasClass("violation"), "duplicate roll number is highlighted")
	assert.Equal(t, "Bob <b>", rows.Eq(1).Find("td").Eq(1).Text(), "names are escaped, not injected")

	assert.Equal(t, "Всего: 2", doc.Find("p.total").Text())
	assert.Equal(t, 1, doc.Find("ul.violations li").Length())
}

func TestRenderRoster_Empty(t *testing.T) {
	html, err := RenderRoster(nil, nil)
	require.NoError(t, err)
	doc := parse(t, html)

	assert.Zero(t, doc.Find("table").Length())
	assert.Equal(t, "Список студентов пуст.", doc.Find("p.empty").Text())
	assert.Zero(t, doc.Find("ul.violations").Length())
}

func TestHTMLExporter_Export(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report", "roster.html")
	students := []domain.Student{{FullName: "Ann", Age: 20, Address: "X", RollNumber: 1, Courses: courses()}}

	require.NoError(t, NewHTMLExporter(path).Export(students))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	doc := parse(t, string(data))
	assert.Equal(t, 1, doc.Find("tr.student").Length())
	assert.Equal(t, "Список студентов", doc.Find("title").Text())
}

func TestHTMLExporter_UnwritablePath(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	err := NewHTMLExporter(filepath.Join(blocker, "roster.html")).Export(nil)
	assert.ErrorContains(t, err, "не удалось создать каталог")
}
