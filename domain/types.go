package domain

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// CoursesPerStudent сколько курсов выбирает каждый студент
const CoursesPerStudent = 4

// Course код курса, допустимы только шесть значений A-F
type Course string

const (
	CourseA Course = "A"
	CourseB Course = "B"
	CourseC Course = "C"
	CourseD Course = "D"
	CourseE Course = "E"
	CourseF Course = "F"
)

// Courses возвращает все допустимые курсы по порядку
func Courses() []Course {
	return []Course{CourseA, CourseB, CourseC, CourseD, CourseE, CourseF}
}

// Valid сообщает, входит ли код в перечисление
func (c Course) Valid() bool {
	switch c {
	case CourseA, CourseB, CourseC, CourseD, CourseE, CourseF:
		return true
	}
	return false
}

// ParseCourse разбирает код курса без учёта регистра
func ParseCourse(s string) (Course, error) {
	c := Course(strings.ToUpper(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", &FieldError{Field: FieldCourses, Value: s, Err: ErrInvalidCourse}
	}
	return c, nil
}

// UnmarshalText принимает в файле только код заглавной буквой, без пробелов.
// Так JSON и YAML читаются одинаково строго, как того требует схема.
func (c *Course) UnmarshalText(text []byte) error {
	parsed := Course(text)
	if !parsed.Valid() {
		return &FieldError{Field: FieldCourses, Value: string(text), Err: ErrInvalidCourse}
	}
	*c = parsed
	return nil
}

// Student содержит информацию о студенте. Значение не меняется после создания,
// порядок полей совпадает с порядком в сохранённом файле.
type Student struct {
	FullName   string   `json:"fullName" yaml:"fullName"`
	Age        int      `json:"age" yaml:"age"`
	Address    string   `json:"address" yaml:"address"`
	RollNumber int      `json:"rollNumber" yaml:"rollNumber"`
	Courses    []Course `json:"courses" yaml:"courses"`
}

// NewStudent создает студента и проверяет обязательные поля
func NewStudent(fullName string, age int, address string, rollNumber int, courses []Course) (Student, error) {
	if strings.TrimSpace(fullName) == "" {
		return Student{}, &FieldError{Field: FieldFullName, Err: ErrEmptyField}
	}
	if strings.TrimSpace(address) == "" {
		return Student{}, &FieldError{Field: FieldAddress, Err: ErrEmptyField}
	}
	if len(courses) != CoursesPerStudent {
		return Student{}, &FieldError{Field: FieldCourses, Value: fmt.Sprint(len(courses)), Err: ErrCourseCount}
	}
	for _, c := range courses {
		if !c.Valid() {
			return Student{}, &FieldError{Field: FieldCourses, Value: string(c), Err: ErrInvalidCourse}
		}
	}

	return Student{
		FullName:   fullName,
		Age:        age,
		Address:    address,
		RollNumber: rollNumber,
		Courses:    slices.Clone(courses),
	}, nil
}

// Clone возвращает копию, не разделяющую слайс курсов
func (s Student) Clone() Student {
	s.Courses = slices.Clone(s.Courses)
	return s
}

// CoursesString возвращает курсы в виде "A, B, C, D"
func (s Student) CoursesString() string {
	codes := make([]string, len(s.Courses))
	for i, c := range s.Courses {
		codes[i] = string(c)
	}
	return strings.Join(codes, ", ")
}

// Compare упорядочивает студентов по ФИО, при совпадении по номеру
func Compare(a, b Student) int {
	if c := strings.Compare(a.FullName, b.FullName); c != 0 {
		return c
	}
	return cmp.Compare(a.RollNumber, b.RollNumber)
}
