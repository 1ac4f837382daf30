package garden

import (
	"time"

	"plantkeeper/internal/domain/plant"
)

// Wire-формат обмена снапшотами, общий для сервера и клиента.

type GetResponse struct {
	Records     plant.Collection `json:"records"`
	LastUpdated time.Time        `json:"lastUpdated" format:"date-time"`
}

type PutRequest struct {
	Records plant.Collection `json:"records"`
}

type PutResponse struct {
	LastUpdated time.Time `json:"lastUpdated" format:"date-time"`
}
