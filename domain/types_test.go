package domain

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fourCourses() []Course {
	return []Course{CourseA, CourseB, CourseC, CourseD}
}

func TestParseCourse(t *testing.T) {
	tests := []struct {
		input   string
		want    Course
		wantErr bool
	}{
		{input: "A", want: CourseA},
		{input: "f", want: CourseF},
		{input: "  c ", want: CourseC},
		{input: "G", wantErr: true},
		{input: "", wantErr: true},
		{input: "AB", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseCourse(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidCourse)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCourses_AllValid(t *testing.T) {
	all := Courses()
	assert.Len(t, all, 6)
	for _, c := range all {
		assert.True(t, c.Valid(), c)
	}
	assert.False(t, Course("Z").Valid())
}

func TestNewStudent(t *testing.T) {
	t.Run("valid student with repeated courses", func(t *testing.T) {
		s, err := NewStudent("Ann", 21, "Y", 2, []Course{CourseA, CourseA, CourseB, CourseC})
		require.NoError(t, err)
		assert.Equal(t, "Ann", s.FullName)
		assert.Equal(t, []Course{CourseA, CourseA, CourseB, CourseC}, s.Courses)
	})

	t.Run("courses slice is copied", func(t *testing.T) {
		courses := fourCourses()
		s, err := NewStudent("Ann", 20, "X", 5, courses)
		require.NoError(t, err)

		courses[0] = CourseF
		assert.Equal(t, CourseA, s.Courses[0])
	})

	tests := []struct {
		name    string
		student func() (Student, error)
		field   string
		wantErr error
	}{
		{
			name:    "empty name",
			student: func() (Student, error) { return NewStudent("", 20, "X", 1, fourCourses()) },
			field:   FieldFullName,
			wantErr: ErrEmptyField,
		},
		{
			name:    "blank address",
			student: func() (Student, error) { return NewStudent("Ann", 20, "   ", 1, fourCourses()) },
			field:   FieldAddress,
			wantErr: ErrEmptyField,
		},
		{
			name:    "three courses",
			student: func() (Student, error) { return NewStudent("Ann", 20, "X", 1, fourCourses()[:3]) },
			field:   FieldCourses,
			wantErr: ErrCourseCount,
		},
		{
			name: "unknown course",
			student: func() (Student, error) {
				return NewStudent("Ann", 20, "X", 1, []Course{CourseA, CourseB, CourseC, "Q"})
			},
			field:   FieldCourses,
			wantErr: ErrInvalidCourse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.student()
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)

			var fieldErr *FieldError
			require.ErrorAs(t, err, &fieldErr)
			assert.Equal(t, tt.field, fieldErr.Field)
		})
	}
}

func TestCompare(t *testing.T) {
	ann5 := Student{FullName: "Ann", RollNumber: 5}
	ann2 := Student{FullName: "Ann", RollNumber: 2}
	bob1 := Student{FullName: "Bob", RollNumber: 1}

	assert.Negative(t, Compare(ann2, ann5), "roll number breaks a name tie")
	assert.Positive(t, Compare(ann5, ann2))
	assert.Negative(t, Compare(ann5, bob1), "name wins over roll number")
	assert.Positive(t, Compare(bob1, ann2))
	assert.Zero(t, Compare(ann5, Student{FullName: "Ann", RollNumber: 5, Age: 99}))
}

func TestStudent_JSONFieldOrder(t *testing.T) {
	s, err := NewStudent("Ann", 20, "X", 5, fourCourses())
	require.NoError(t, err)

	data, err := json.Marshal(s)
	require.NoError(t, err)
	doc := string(data)

	assert.Equal(t, `{"fullName":"Ann","age":20,"address":"X","rollNumber":5,"courses":["A","B","C","D"]}`, doc)

	keys := []string{`"fullName"`, `"age"`, `"address"`, `"rollNumber"`, `"courses"`}
	last := -1
	for _, k := range keys {
		idx := strings.Index(doc, k)
		require.Greater(t, idx, last, k)
		last = idx
	}
}

func TestStudent_JSONRejectsUnknownCourse(t *testing.T) {
	var s Student
	err := json.Unmarshal([]byte(`{"fullName":"Ann","age":20,"address":"X","rollNumber":5,"courses":["A","B","C","X"]}`), &s)
	assert.ErrorIs(t, err, ErrInvalidCourse)
}

func TestCourse_UnmarshalTextIsStrict(t *testing.T) {
	var c Course
	require.NoError(t, c.UnmarshalText([]byte("E")))
	assert.Equal(t, CourseE, c)

	for _, text := range []string{"e", " E", "E ", ""} {
		err := c.UnmarshalText([]byte(text))
		assert.ErrorIs(t, err, ErrInvalidCourse, "%q", text)
	}

	parsed, err := ParseCourse(" e ")
	require.NoError(t, err)
	assert.Equal(t, CourseE, parsed, "menu input stays case-insensitive")
}

func TestStudent_JSONRejectsLowercaseCourse(t *testing.T) {
	var s Student
	err := json.Unmarshal([]byte(`{"fullName":"Ann","age":20,"address":"X","rollNumber":5,"courses":["A","B","C","d"]}`), &s)
	assert.ErrorIs(t, err, ErrInvalidCourse)
}

func TestStudent_CoursesString(t *testing.T) {
	s := Student{Courses: []Course{CourseA, CourseA, CourseE, CourseF}}
	assert.Equal(t, "A, A, E, F", s.CoursesString())
}
