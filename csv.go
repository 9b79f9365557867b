package lvt

import (
	"encoding/csv"
	"io"
	"strconv"
)

// WriteCSV writes the properties of doc as CSV with a header row.
func WriteCSV(w io.Writer, doc *Document) error {
	cw := csv.NewWriter(w)
	cw.Write([]string{"label", "area", "landValue", "buildingValue", "consideration", "councilTax", "lbtt", "businessRates", "latitude", "longitude"})
	for _, p := range doc.Properties {
		row := []string{
			p.Label,
			formatFloat(p.Area),
			formatFloat(p.LandValue),
			formatFloat(p.BuildingValue),
			formatFloat(p.Consideration),
			formatFloat(p.CouncilTax),
			formatFloat(p.LBTT),
			formatFloat(p.BusinessRates),
			formatFloat(p.Latitude),
			formatFloat(p.Longitude),
		}
		cw.Write(row)
	}
	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
