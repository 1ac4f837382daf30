// cmd/client/cmd/diagnose.go
package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var diagnoseCmd = &cobra.Command{
	Use:   "diagnose <фото>",
	Short: "Проверить растение на болезни по фотографии",
	Long: `Отправляет фотографию мультимодальной модели и возвращает вердикт
о состоянии растения с рекомендациями по лечению.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
		defer cancel()

		fmt.Println("Диагностика растения...")
		result, err := app.Diagnose(ctx, args[0])
		if err != nil {
			return fmt.Errorf("ошибка диагностики: %w", err)
		}

		fmt.Println()
		fmt.Printf("🩺 %s", result.DiseaseName)
		if result.AffectedPlant != "" {
			fmt.Printf(" — %s", result.AffectedPlant)
		}
		fmt.Println()
		if result.Severity != "" {
			fmt.Printf("Тяжесть: %s\n", result.Severity)
		}
		if result.Cause != "" {
			fmt.Printf("Причина: %s\n", result.Cause)
		}

		if len(result.Treatment) > 0 {
			fmt.Println("\nЛечение:")
			for _, step := range result.Treatment {
				fmt.Printf("  • %s\n", step)
			}
		}

		if len(result.Prevention) > 0 {
			fmt.Println("\nПрофилактика:")
			for _, step := range result.Prevention {
				fmt.Printf("  • %s\n", step)
			}
		}

		return nil
	},
}
