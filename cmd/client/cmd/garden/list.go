// cmd/client/cmd/garden/list.go
package garden

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"plantkeeper/internal/domain/schedule"
)

var listJSON bool

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "Показать коллекцию растений",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		views := app.ListPlants()

		if listJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(views)
		}

		if len(views) == 0 {
			fmt.Println("Коллекция пуста. Добавьте растение: plantkeeper garden add")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tНАЗВАНИЕ\tИНТЕРВАЛ\tСЛЕДУЮЩИЙ ПОЛИВ\tСТАТУС")
		for _, v := range views {
			fmt.Fprintf(w, "%.8s\t%s\t%d дн.\t%s\t%s\n",
				v.ID, v.CommonName, v.WaterIntervalDays,
				v.NextWaterAt.Format("2006-01-02"), formatStatus(v.Status))
		}
		return w.Flush()
	},
}

func formatStatus(s schedule.Status) string {
	switch s.Kind {
	case schedule.StatusOverdue:
		return color.RedString("просрочен на %d дн.", s.Days)
	case schedule.StatusDueToday:
		return color.YellowString("полить сегодня")
	default:
		return color.GreenString("через %d дн.", s.Days)
	}
}

func init() {
	ListCmd.Flags().BoolVar(&listJSON, "json", false, "вывод в формате JSON")
}
