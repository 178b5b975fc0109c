// Package cli собирает команды приложения: интерактивное меню и работу с сохранённым списком
package cli

import (
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/Vaflel/student-roster/config"
	"github.com/Vaflel/student-roster/infrastructure"
	"github.com/Vaflel/student-roster/logging"
	"github.com/Vaflel/student-roster/shell"
	"github.com/Vaflel/student-roster/usecases"
)

// app хранит то, что нужно командам после разбора флагов
type app struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	configPath string
	dataFile   string
	format     string
	logLevel   string

	cfg    *config.Config
	logger *slog.Logger
}

// NewRootCommand создает корневую команду. Без подкоманды запускается меню.
func NewRootCommand(in io.Reader, out, errOut io.Writer) *cobra.Command {
	a := &app{in: in, out: out, errOut: errOut}

	root := &cobra.Command{
		Use:   "student-roster",
		Short: "Список студентов в памяти с сохранением в JSON",
		Long: `student-roster ведёт список студентов через текстовое меню: добавление, просмотр,
удаление по номеру и сохранение всего списка в файл. Подкоманды check, export и import
работают с уже сохранённым файлом.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		RunE:              a.runShell,
	}

	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "путь к config.yaml")
	flags.StringVar(&a.dataFile, "file", "", "файл списка (по умолчанию ~/Documents/users.json)")
	flags.StringVar(&a.format, "format", "", "формат файла списка: json или yaml")
	flags.StringVar(&a.logLevel, "log-level", "", "уровень логов: debug, info, warn, error")

	root.AddCommand(
		newCheckCommand(a),
		newExportCommand(a),
		newImportCommand(a),
	)

	return root
}

// setup загружает настройки, применяет флаги и создаёт логгер
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	if a.dataFile != "" {
		cfg.DataFile = a.dataFile
	}
	if a.format != "" {
		cfg.Format = a.format
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logging.NewLogger(a.errOut, cfg.Level(), cfg.NoColor)
	a.logger.Debug("настройки загружены",
		"data_file", cfg.DataFile,
		"format", cfg.Format,
		"command", cmd.Name())
	return nil
}

// store возвращает хранилище для файла списка из настроек
func (a *app) store() usecases.RosterStore {
	if a.cfg.Format == config.FormatYAML {
		return infrastructure.NewYAMLRosterStore(a.cfg.DataFile)
	}
	return infrastructure.NewJSONRosterStore(a.cfg.DataFile)
}

func (a *app) runShell(cmd *cobra.Command, _ []string) error {
	logger := a.logger.With("session", uuid.NewString())
	roster := usecases.NewRosterManager(a.store(), logger)

	return shell.New(roster, a.in, a.out, logger).Run(cmd.Context())
}
