// cmd/client/cmd/garden/export.go
package garden

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var exportOutput string

var ExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Экспортировать коллекцию в JSON",
	Long: `Выгружает коллекцию целиком вместе с датой экспорта и версией
приложения. По умолчанию пишет в стандартный вывод.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		if exportOutput == "" {
			return app.ExportGarden(os.Stdout)
		}

		f, err := os.Create(exportOutput)
		if err != nil {
			return fmt.Errorf("создание файла экспорта: %w", err)
		}
		defer f.Close()

		if err := app.ExportGarden(f); err != nil {
			return err
		}

		fmt.Printf("✅ Коллекция экспортирована в %s\n", exportOutput)
		return nil
	},
}

func init() {
	ExportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "файл для экспорта (по умолчанию stdout)")
}
