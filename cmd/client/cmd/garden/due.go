// cmd/client/cmd/garden/due.go
package garden

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var dueHorizon int

var DueCmd = &cobra.Command{
	Use:   "due",
	Short: "Показать растения, требующие полива",
	Long: `Выводит растения, которые нужно полить сегодня, просроченные
и те, чей полив наступает в ближайшие дни. Самые срочные — первыми.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		reminders := app.Reminders(dueHorizon)
		if len(reminders) == 0 {
			fmt.Println("🌿 Все растения политы, напоминаний нет")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tНАЗВАНИЕ\tПОЛИВ")
		for _, r := range reminders {
			var due string
			switch {
			case r.DaysUntil < 0:
				due = fmt.Sprintf("просрочен на %d дн.", -r.DaysUntil)
			case r.DaysUntil == 0:
				due = "сегодня"
			default:
				due = fmt.Sprintf("через %d дн.", r.DaysUntil)
			}
			fmt.Fprintf(w, "%.8s\t%s\t%s\n", r.Record.ID, r.Record.CommonName, due)
		}
		return w.Flush()
	},
}

func init() {
	DueCmd.Flags().IntVarP(&dueHorizon, "days", "d", 2, "горизонт напоминаний в днях")
}
