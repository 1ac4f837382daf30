// cmd/client/cmd/garden/adjust.go
package garden

import (
	"fmt"

	"github.com/spf13/cobra"

	"plantkeeper/internal/domain/schedule"
)

var (
	adjustTemp float64
	adjustHum  float64
	adjustRain float64
)

var AdjustCmd = &cobra.Command{
	Use:   "adjust",
	Short: "Скорректировать график полива под погоду",
	Long: `Пересчитывает даты полива всей коллекции под текущие условия:
жара и сухой воздух приближают полив, дождь и прохлада откладывают.

Небольшие отклонения от нормы график не трогают. Повторный запуск
с теми же условиями ничего не меняет.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		cond := schedule.Conditions{
			TemperatureC:  adjustTemp,
			Humidity:      adjustHum,
			Precipitation: adjustRain,
		}

		adjusted, err := app.ApplyWeatherAdjustment(cond)
		if err != nil {
			return fmt.Errorf("ошибка корректировки графика: %w", err)
		}

		if adjusted == 0 {
			fmt.Println("Условия близки к норме, график не изменен")
			return nil
		}

		fmt.Printf("✅ График полива скорректирован (растений: %d, коэффициент: %.2f)\n",
			adjusted, cond.Factor())
		return nil
	},
}

func init() {
	AdjustCmd.Flags().Float64VarP(&adjustTemp, "temp", "t", 21, "температура воздуха, °C")
	AdjustCmd.Flags().Float64Var(&adjustHum, "humidity", 50, "относительная влажность, %")
	AdjustCmd.Flags().Float64Var(&adjustRain, "rain", 0, "осадки за сутки, мм")
}
