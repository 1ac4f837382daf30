// cmd/client/cmd/garden/add.go
package garden

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	addScientific string
	addInfo       string
	addInterval   int
	addSunlight   float64
)

var AddCmd = &cobra.Command{
	Use:   "add <название>",
	Short: "Добавить растение в коллекцию",
	Long: `Добавляет растение и рассчитывает дату следующего полива.

Пример:
  plantkeeper garden add "Монстера" --interval 7 --sunlight 6`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		rec, err := app.AddPlant(args[0], addScientific, addInfo, addInterval, addSunlight)
		if err != nil {
			return fmt.Errorf("ошибка добавления растения: %w", err)
		}

		fmt.Printf("✅ Растение %q добавлено (ID: %s)\n", rec.CommonName, rec.ID)
		fmt.Printf("Следующий полив: %s\n", rec.NextWaterAt.Format("2006-01-02"))
		return nil
	},
}

func init() {
	AddCmd.Flags().StringVar(&addScientific, "scientific", "", "научное название")
	AddCmd.Flags().StringVar(&addInfo, "info", "", "заметки об уходе")
	AddCmd.Flags().IntVarP(&addInterval, "interval", "i", 7, "интервал полива в днях")
	AddCmd.Flags().Float64VarP(&addSunlight, "sunlight", "l", 6, "требуемые часы света в день")
}
