// cmd/client/cmd/garden/interval.go
package garden

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var IntervalCmd = &cobra.Command{
	Use:   "interval <id|название> <дни>",
	Short: "Изменить интервал полива растения",
	Long: `Меняет интервал полива. Дата следующего полива пересчитывается
от последнего полива, а не от момента правки.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		days, err := strconv.Atoi(args[1])
		if err != nil || days <= 0 {
			return fmt.Errorf("интервал должен быть положительным числом дней")
		}

		view, err := resolvePlant(app, args[0])
		if err != nil {
			return err
		}

		rec, err := app.UpdateInterval(view.ID, days)
		if err != nil {
			return fmt.Errorf("ошибка изменения интервала: %w", err)
		}

		fmt.Printf("✅ Интервал полива %q теперь %d дн.\n", rec.CommonName, days)
		fmt.Printf("Следующий полив: %s\n", rec.NextWaterAt.Format("2006-01-02"))
		return nil
	},
}
