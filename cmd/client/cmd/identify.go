// cmd/client/cmd/identify.go
package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var identifyAdd bool

var identifyCmd = &cobra.Command{
	Use:   "identify <фото>",
	Short: "Распознать растение по фотографии",
	Long: `Отправляет фотографию мультимодальной модели и возвращает название
растения с рекомендациями по уходу.

С флагом --add распознанное растение сразу добавляется в коллекцию.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
		defer cancel()

		fmt.Println("Распознавание растения...")
		result, err := app.Identify(ctx, args[0])
		if err != nil {
			return fmt.Errorf("ошибка распознавания: %w", err)
		}

		fmt.Println()
		fmt.Printf("🌿 %s", result.CommonName)
		if result.ScientificName != "" {
			fmt.Printf(" (%s)", result.ScientificName)
		}
		fmt.Println()
		if result.Info != "" {
			fmt.Println(result.Info)
		}
		fmt.Printf("Полив: раз в %d дн., свет: %.1f ч/день\n",
			result.WaterIntervalDays, result.SunlightHoursNeeded)

		if identifyAdd {
			rec, err := app.AddPlant(result.CommonName, result.ScientificName,
				result.Info, result.WaterIntervalDays, result.SunlightHoursNeeded)
			if err != nil {
				return fmt.Errorf("ошибка добавления растения: %w", err)
			}
			fmt.Printf("\n✅ Добавлено в коллекцию (ID: %s)\n", rec.ID)
		}

		return nil
	},
}

func init() {
	identifyCmd.Flags().BoolVar(&identifyAdd, "add", false, "добавить распознанное растение в коллекцию")
}
