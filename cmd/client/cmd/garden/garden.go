package garden

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"plantkeeper/cmd/client/cmd/types"
	"plantkeeper/internal/app/client"
)

// GardenCmd - родительская команда для всех операций с коллекцией растений
var GardenCmd = &cobra.Command{
	Use:   "garden",
	Short: "Управление коллекцией растений",
	Long:  `Добавление, полив, удаление растений и экспорт коллекции.`,
}

func appFromContext(cmd *cobra.Command) (*client.App, error) {
	app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
	if !ok || app == nil {
		return nil, fmt.Errorf("приложение не инициализировано")
	}
	return app, nil
}

// resolvePlant находит растение по точному ID, префиксу ID или имени
func resolvePlant(app *client.App, key string) (client.PlantView, error) {
	views := app.ListPlants()

	var matches []client.PlantView
	for _, v := range views {
		if v.ID == key {
			return v, nil
		}
		if strings.HasPrefix(v.ID, key) || strings.EqualFold(v.CommonName, key) {
			matches = append(matches, v)
		}
	}

	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return client.PlantView{}, fmt.Errorf("растение %q не найдено", key)
	default:
		return client.PlantView{}, fmt.Errorf("по запросу %q найдено несколько растений, уточните ID", key)
	}
}
