package garden

import (
	"time"

	"plantkeeper/internal/domain/plant"
)

// Snapshot is the whole-collection unit of sync. The server never merges
// individual records: a put replaces the previous snapshot entirely and
// stamps it with a server-assigned LastUpdated.
type Snapshot struct {
	UserID      int              `json:"-"`
	Records     plant.Collection `json:"records"`
	LastUpdated time.Time        `json:"lastUpdated"`
}
