// Package shape exports property records as an ESRI point shapefile.
package shape

import (
	"fmt"

	shp "github.com/jonas-p/go-shp"
	"kastelo.dev/lvt"
)

// DBF field names are limited to ten characters.
var fields = []shp.Field{
	shp.StringField("LABEL", 64),
	shp.FloatField("AREA", 18, 2),
	shp.FloatField("LANDVAL", 18, 2),
	shp.FloatField("BUILDVAL", 18, 2),
	shp.FloatField("CONSIDER", 18, 2),
	shp.FloatField("COUNCILTAX", 18, 2),
	shp.FloatField("LBTT", 18, 2),
	shp.FloatField("BUSRATES", 18, 2),
}

// WritePoints writes one point per property to the shapefile at path (and
// its .shx and .dbf companions), with X as longitude and Y as latitude.
func WritePoints(path string, props []lvt.Property) error {
	w, err := shp.Create(path, shp.POINT)
	if err != nil {
		return err
	}
	defer w.Close()

	if err := w.SetFields(fields); err != nil {
		return err
	}

	for _, p := range props {
		idx := int(w.Write(&shp.Point{X: p.Longitude, Y: p.Latitude}))
		attrs := []interface{}{
			p.Label,
			p.Area,
			p.LandValue,
			p.BuildingValue,
			p.Consideration,
			p.CouncilTax,
			p.LBTT,
			p.BusinessRates,
		}
		for field, val := range attrs {
			if err := w.WriteAttribute(idx, field, val); err != nil {
				return fmt.Errorf("property %q: %w", p.Label, err)
			}
		}
	}
	return nil
}
