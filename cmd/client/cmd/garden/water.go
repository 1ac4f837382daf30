// cmd/client/cmd/garden/water.go
package garden

import (
	"fmt"

	"github.com/spf13/cobra"
)

var WaterCmd = &cobra.Command{
	Use:   "water <id|название>",
	Short: "Отметить полив растения",
	Long: `Отмечает полив: отсчет следующего полива начинается с текущего
момента, а не со старого графика.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		view, err := resolvePlant(app, args[0])
		if err != nil {
			return err
		}

		rec, err := app.WaterPlant(view.ID)
		if err != nil {
			return fmt.Errorf("ошибка отметки полива: %w", err)
		}

		fmt.Printf("💧 %q полито\n", rec.CommonName)
		fmt.Printf("Следующий полив: %s\n", rec.NextWaterAt.Format("2006-01-02"))
		return nil
	},
}
