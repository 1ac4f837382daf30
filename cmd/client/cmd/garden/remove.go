// cmd/client/cmd/garden/remove.go
package garden

import (
	"fmt"

	"github.com/spf13/cobra"
)

var RemoveCmd = &cobra.Command{
	Use:   "remove <id|название>",
	Short: "Удалить растение из коллекции",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		view, err := resolvePlant(app, args[0])
		if err != nil {
			return err
		}

		if err := app.RemovePlant(view.ID); err != nil {
			return fmt.Errorf("ошибка удаления растения: %w", err)
		}

		fmt.Printf("✅ Растение %q удалено\n", view.CommonName)
		return nil
	},
}
