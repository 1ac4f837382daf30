package client

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"plantkeeper/internal/app/client/config"
	"plantkeeper/internal/domain/plant"
)

// ExportDocument — самодостаточный снимок коллекции для резервной копии
// или переноса.
type ExportDocument struct {
	ExportDate time.Time        `json:"exportDate"`
	AppVersion string           `json:"appVersion"`
	GardenData plant.Collection `json:"gardenData"`
}

// ExportGarden пишет снимок коллекции в w в формате JSON.
func (a *App) ExportGarden(w io.Writer) error {
	doc := ExportDocument{
		ExportDate: a.now(),
		AppVersion: config.AppVersion,
		GardenData: a.store.LoadCollection(),
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("экспорт коллекции: %w", err)
	}
	return nil
}
