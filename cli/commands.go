package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Vaflel/student-roster/domain"
	"github.com/Vaflel/student-roster/infrastructure"
	"github.com/Vaflel/student-roster/usecases"
	"github.com/Vaflel/student-roster/web"
)

func newCheckCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Проверить сохранённый список",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			service := usecases.NewRosterService(a.store(), a.logger)
			result, err := service.CheckRoster()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Студентов: %d, нарушений: %d\n", len(result.Students), len(result.Violations))
			for _, v := range result.Violations {
				fmt.Fprintf(out, "[%s] %s\n", v.Severity, v)
			}

			if domain.HasErrors(result.Violations) {
				return fmt.Errorf("в списке %s есть ошибки", a.cfg.DataFile)
			}
			return nil
		},
	}
}

func newExportCommand(a *app) *cobra.Command {
	var target string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Выгрузить сохранённый список в .xlsx, .html, .yaml или .json",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			exporter, err := exporterFor(target)
			if err != nil {
				return err
			}

			service := usecases.NewRosterService(a.store(), a.logger)
			count, err := service.ExportRoster(exporter)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Выгружено студентов: %d в %s\n", count, target)
			return nil
		},
	}

	cmd.Flags().StringVar(&target, "to", "", "файл выгрузки, формат по расширению")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

// exporterFor выбирает выгрузку по расширению файла
func exporterFor(target string) (usecases.RosterExporter, error) {
	switch strings.ToLower(filepath.Ext(target)) {
	case ".xlsx":
		return infrastructure.NewXLSXExporter(target), nil
	case ".html", ".htm":
		return web.NewHTMLExporter(target), nil
	case ".yaml", ".yml":
		return infrastructure.NewYAMLRosterStore(target), nil
	case ".json":
		return infrastructure.NewJSONRosterStore(target), nil
	}
	return nil, fmt.Errorf("неизвестный формат выгрузки %q", filepath.Ext(target))
}

func newImportCommand(a *app) *cobra.Command {
	var charset string

	cmd := &cobra.Command{
		Use:   "import <file.xls>",
		Short: "Добавить студентов из таблицы .xls к сохранённому списку",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service := usecases.NewRosterService(a.store(), a.logger)
			result, err := service.ImportRoster(infrastructure.NewXLSImporter(args[0], charset))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, v := range result.Violations {
				fmt.Fprintf(out, "Пропущено: %s\n", v.Message)
			}
			fmt.Fprintf(out, "Добавлено студентов: %d, всего: %d, файл: %s\n",
				result.Imported, result.Total, result.Location)
			return nil
		},
	}

	cmd.Flags().StringVar(&charset, "charset", "utf-8", "кодировка строк в файле .xls")
	return cmd
}
