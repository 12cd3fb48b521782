package dto

import "github.com/meditrack/meditrack-core/internal/domain/entity"

// ZonesRequest corps des requêtes POST/PUT sur /depots/:id/zones.
// Le document est toujours remplacé en bloc.
type ZonesRequest struct {
	Zones []entity.Zone `json:"zones"`
}
