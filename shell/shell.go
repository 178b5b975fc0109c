// Package shell реализует текстовое меню для работы со списком студентов
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Vaflel/student-roster/domain"
	"github.com/Vaflel/student-roster/usecases"
)

// Пункты меню
const (
	choiceAdd    = 1
	choiceList   = 2
	choiceDelete = 3
	choiceSave   = 4
	choiceExit   = 5
)

// errInputClosed означает, что ввод закончился (EOF)
var errInputClosed = errors.New("ввод закрыт")

type styles struct {
	title   lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
}

func newStyles(out io.Writer) styles {
	r := lipgloss.NewRenderer(out)
	return styles{
		title:   r.NewStyle().Bold(true),
		success: r.NewStyle().Foreground(lipgloss.Color("2")),
		failure: r.NewStyle().Foreground(lipgloss.Color("1")),
	}
}

// Shell читает команды построчно и вызывает операции RosterManager
type Shell struct {
	roster *usecases.RosterManager
	in     *bufio.Scanner
	out    io.Writer
	logger *slog.Logger
	styles styles
}

// New создает меню поверх переданного списка
func New(roster *usecases.RosterManager, in io.Reader, out io.Writer, logger *slog.Logger) *Shell {
	return &Shell{
		roster: roster,
		in:     bufio.NewScanner(in),
		out:    out,
		logger: logger,
		styles: newStyles(out),
	}
}

// Run показывает меню, пока не выбран пункт "Выход", не закончился ввод или не отменён ctx
func (s *Shell) Run(ctx context.Context) error {
	s.logger.Debug("меню запущено")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.printMenu()
		line, err := s.readLine(ctx)
		if err != nil {
			return s.finish(err)
		}

		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			s.failf("Неверный выбор. Введите число от 1 до 5.")
			continue
		}

		switch choice {
		case choiceAdd:
			err = s.addStudent(ctx)
		case choiceList:
			s.listStudents()
		case choiceDelete:
			err = s.deleteStudent(ctx)
		case choiceSave:
			s.saveStudents()
		case choiceExit:
			s.println("До свидания!")
			s.logger.Debug("меню завершено", "students", s.roster.Len())
			return nil
		default:
			s.failf("Неверный выбор. Введите число от 1 до 5.")
		}

		if err != nil {
			return s.finish(err)
		}
	}
}

func (s *Shell) finish(err error) error {
	if errors.Is(err, errInputClosed) {
		s.logger.Debug("ввод закончился, меню завершено", "students", s.roster.Len())
		return nil
	}
	return err
}

func (s *Shell) printMenu() {
	s.println("")
	s.println(s.styles.title.Render("Меню:"))
	s.println("1. Добавить студента")
	s.println("2. Показать студентов")
	s.println("3. Удалить студента")
	s.println("4. Сохранить список на диск")
	s.println("5. Выход")
}

// addStudent спрашивает поля по порядку. Ошибка в ФИО, возрасте, адресе или номере
// прерывает добавление; курсы спрашиваются, пока не наберётся четыре допустимых.
func (s *Shell) addStudent(ctx context.Context) error {
	fullName, err := s.prompt(ctx, "Введите ФИО:")
	if err != nil {
		return err
	}
	if fullName, err = domain.ParseFullName(fullName); err != nil {
		s.rejectField(err, "ФИО не может быть пустым.")
		return nil
	}

	ageText, err := s.prompt(ctx, "Введите возраст:")
	if err != nil {
		return err
	}
	age, err := domain.ParseAge(ageText)
	if err != nil {
		s.rejectField(err, "Некорректный возраст.")
		return nil
	}

	address, err := s.prompt(ctx, "Введите адрес:")
	if err != nil {
		return err
	}
	if address, err = domain.ParseAddress(address); err != nil {
		s.rejectField(err, "Адрес не может быть пустым.")
		return nil
	}

	rollText, err := s.prompt(ctx, "Введите номер студента:")
	if err != nil {
		return err
	}
	rollNumber, err := domain.ParseRollNumber(rollText)
	if err != nil {
		s.rejectField(err, "Некорректный номер студента.")
		return nil
	}

	courses := make([]domain.Course, 0, domain.CoursesPerStudent)
	for len(courses) < domain.CoursesPerStudent {
		code, err := s.prompt(ctx, fmt.Sprintf("Выберите курс %d из A, B, C, D, E, F:", len(courses)+1))
		if err != nil {
			return err
		}
		course, err := domain.ParseCourse(code)
		if err != nil {
			s.rejectField(err, "Некорректный курс.")
			continue
		}
		courses = append(courses, course)
	}

	student, err := domain.NewStudent(fullName, age, address, rollNumber, courses)
	if err != nil {
		s.rejectField(err, "Некорректные данные студента.")
		return nil
	}

	s.roster.Add(student)
	s.successf("Студент добавлен.")
	return nil
}

func (s *Shell) listStudents() {
	students, err := s.roster.List()
	if errors.Is(err, domain.ErrRosterEmpty) {
		s.println("Студенты не найдены.")
		return
	}

	for _, st := range students {
		s.println(fmt.Sprintf("ФИО: %s, Возраст: %d, Адрес: %s, Номер: %d, Курсы: [%s]",
			st.FullName, st.Age, st.Address, st.RollNumber, st.CoursesString()))
	}
}

func (s *Shell) deleteStudent(ctx context.Context) error {
	rollText, err := s.prompt(ctx, "Введите номер студента для удаления:")
	if err != nil {
		return err
	}
	rollNumber, err := domain.ParseRollNumber(rollText)
	if err != nil {
		s.rejectField(err, "Некорректный номер студента.")
		return nil
	}

	if _, err := s.roster.Delete(rollNumber); err != nil {
		if errors.Is(err, domain.ErrStudentNotFound) {
			s.failf("Студент с номером %d не найден.", rollNumber)
			return nil
		}
		return err
	}

	s.successf("Студент с номером %d удалён.", rollNumber)
	return nil
}

func (s *Shell) saveStudents() {
	location, err := s.roster.Persist()
	if err != nil {
		s.failf("Ошибка сохранения списка: %v", err)
		return
	}
	s.successf("Список сохранён: %s", location)
}

func (s *Shell) prompt(ctx context.Context, text string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	s.println(text)
	return s.readLine(ctx)
}

// readLine читает строку; после отмены ctx прочитанное уже не используется
func (s *Shell) readLine(ctx context.Context) (string, error) {
	scanned := s.in.Scan()
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if !scanned {
		if err := s.in.Err(); err != nil {
			return "", fmt.Errorf("не удалось прочитать ввод: %w", err)
		}
		return "", errInputClosed
	}
	return s.in.Text(), nil
}

func (s *Shell) rejectField(err error, message string) {
	s.logger.Debug("ввод отклонён", "error", err)
	s.failf("%s", message)
}

func (s *Shell) successf(format string, args ...any) {
	s.println(s.styles.success.Render(fmt.Sprintf(format, args...)))
}

func (s *Shell) failf(format string, args ...any) {
	s.println(s.styles.failure.Render(fmt.Sprintf(format, args...)))
}

func (s *Shell) println(text string) {
	fmt.Fprintln(s.out, text)
}
