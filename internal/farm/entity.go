// AngelaMos | 2026
// entity.go

package farm

import (
	"encoding/json"

	"github.com/DennisRono/chavfana-backend/internal/core"
)

const (
	AreaUnitHectare = "HECTARE"
	AreaUnitAcre    = "ACRE"
	AreaUnitSquareM = "SQUARE_METER"
)

type Farm struct {
	core.Record

	OwnerID           string          `db:"owner_id"`
	Name              string          `db:"name"`
	Description       *string         `db:"description"`
	Country           string          `db:"country"`
	City              *string         `db:"city"`
	Address           *string         `db:"address"`
	GeoCoordinate     json.RawMessage `db:"geo_coordinate"`
	RectangleBoundary json.RawMessage `db:"rectangle_boundary"`
	AreaSize          float64         `db:"area_size"`
	AreaUnit          string          `db:"area_unit"`
	TimeZone          string          `db:"time_zone"`
}

type Plot struct {
	core.Record

	FarmID        string          `db:"farm_id"`
	Name          string          `db:"name"`
	PlotCode      string          `db:"plot_code"`
	AreaSize      float64         `db:"area_size"`
	AreaUnit      string          `db:"area_unit"`
	SoilProfile   json.RawMessage `db:"soil_profile"`
	GPSBounds     json.RawMessage `db:"gps_bounds"`
	CurrentCropID *string         `db:"current_crop_id"`
}
