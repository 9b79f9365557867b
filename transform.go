package lvt

import "fmt"

type fieldMapping struct {
	column string
	field  func(p *Property) *float64
}

var numericFields = []fieldMapping{
	{ColArea, func(p *Property) *float64 { return &p.Area }},
	{ColLandValue, func(p *Property) *float64 { return &p.LandValue }},
	{ColBuildingValue, func(p *Property) *float64 { return &p.BuildingValue }},
	{ColConsideration, func(p *Property) *float64 { return &p.Consideration }},
	{ColCouncilTax, func(p *Property) *float64 { return &p.CouncilTax }},
	{ColLBTT, func(p *Property) *float64 { return &p.LBTT }},
	{ColBusinessRates, func(p *Property) *float64 { return &p.BusinessRates }},
}

// Transform converts each row of t to a Property, attaching the coordinate
// with the same index. The first cell that is not a number fails the whole
// conversion.
func Transform(t *Table, coords []Coordinate) ([]Property, error) {
	if len(coords) != t.Len() {
		return nil, fmt.Errorf("have %d coordinates for %d rows", len(coords), t.Len())
	}

	labelCol, err := t.Column(ColLabel)
	if err != nil {
		return nil, err
	}
	cols := make([]int, len(numericFields))
	for i, f := range numericFields {
		if cols[i], err = t.Column(f.column); err != nil {
			return nil, err
		}
	}

	props := make([]Property, t.Len())
	for row := range props {
		p := &props[row]
		p.Label = t.Cell(row, labelCol)
		for i, f := range numericFields {
			if *f.field(p), err = t.Float(row, cols[i]); err != nil {
				return nil, err
			}
		}
		p.Latitude = coords[row].Latitude
		p.Longitude = coords[row].Longitude
	}
	return props, nil
}
