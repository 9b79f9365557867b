// Package excel renders generated LVT data as an XLSX workbook.
package excel

import (
	"github.com/xuri/excelize/v2"
	"kastelo.dev/lvt"
)

const (
	summarySheet    = "Statistics"
	propertiesSheet = "Properties"
)

type statLine struct {
	label  string
	pounds bool
	value  func(s lvt.Statistics) float64
}

var statLines = []statLine{
	{"Total properties", false, func(s lvt.Statistics) float64 { return float64(s.TotalProperties) }},
	{"Average land value", true, func(s lvt.Statistics) float64 { return s.AvgLandValue }},
	{"Average building value", true, func(s lvt.Statistics) float64 { return s.AvgBuildingValue }},
	{"Average council tax", true, func(s lvt.Statistics) float64 { return s.AvgCouncilTax }},
	{"Average LBTT", true, func(s lvt.Statistics) float64 { return s.AvgLBTT }},
	{"Average business rates", true, func(s lvt.Statistics) float64 { return s.AvgBusinessRates }},
	{"Minimum land value", true, func(s lvt.Statistics) float64 { return s.MinLandValue }},
	{"Maximum land value", true, func(s lvt.Statistics) float64 { return s.MaxLandValue }},
	{"Minimum council tax", true, func(s lvt.Statistics) float64 { return s.MinCouncilTax }},
	{"Maximum council tax", true, func(s lvt.Statistics) float64 { return s.MaxCouncilTax }},
}

type propertyColumn struct {
	header   string
	decimals int
	pounds   bool
	value    func(p lvt.Property) interface{}
}

var propertyColumns = []propertyColumn{
	{"Label", -1, false, func(p lvt.Property) interface{} { return p.Label }},
	{"Area", 2, false, func(p lvt.Property) interface{} { return p.Area }},
	{"Land value", 0, true, func(p lvt.Property) interface{} { return p.LandValue }},
	{"Building value", 0, true, func(p lvt.Property) interface{} { return p.BuildingValue }},
	{"Consideration", 0, true, func(p lvt.Property) interface{} { return p.Consideration }},
	{"Council tax", 0, true, func(p lvt.Property) interface{} { return p.CouncilTax }},
	{"LBTT", 0, true, func(p lvt.Property) interface{} { return p.LBTT }},
	{"Business rates", 0, true, func(p lvt.Property) interface{} { return p.BusinessRates }},
	{"Latitude", 5, false, func(p lvt.Property) interface{} { return p.Latitude }},
	{"Longitude", 5, false, func(p lvt.Property) interface{} { return p.Longitude }},
}

// StatisticsXLSX returns a workbook with a summary sheet of the dataset
// statistics and a sheet listing the properties of doc.
func StatisticsXLSX(doc *lvt.Document) ([]byte, error) {
	xlsx := excelize.NewFile()
	defer xlsx.Close()

	_ = xlsx.SetAppProps(&excelize.AppProperties{
		Application: "kastelo.dev/lvt",
		DocSecurity: 2,
	})

	sheet := xlsx.GetSheetName(xlsx.GetActiveSheetIndex())
	if err := xlsx.SetSheetName(sheet, summarySheet); err != nil {
		return nil, err
	}
	_ = xlsx.SetColWidth(summarySheet, "A", "A", 30)
	_ = xlsx.SetColWidth(summarySheet, "B", "B", 18)
	writeSummarySheet(xlsx, summarySheet, doc.Statistics)

	if _, err := xlsx.NewSheet(propertiesSheet); err != nil {
		return nil, err
	}
	_ = xlsx.SetColWidth(propertiesSheet, "A", "A", 20)
	_ = xlsx.SetColWidth(propertiesSheet, "B", "J", 15)
	if err := writePropertiesSheet(xlsx, propertiesSheet, doc.Properties); err != nil {
		return nil, err
	}

	xlsx.SetActiveSheet(0)

	buf, err := xlsx.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeSummarySheet(xlsx *excelize.File, sheet string, stats lvt.Statistics) {
	row := 1
	_ = xlsx.SetCellValue(sheet, cell('A', row), "Statistic")
	_ = xlsx.SetCellValue(sheet, cell('B', row), "Value")
	style, _ := xlsx.NewStyle(mergeStyles(defaultStyle(), fontBold(), thinBorder("bottom")))
	_ = xlsx.SetCellStyle(sheet, cell('A', row), cell('A', row), style)
	style, _ = xlsx.NewStyle(mergeStyles(defaultStyle(), fontBold(), thinBorder("bottom"), textAlignment("right")))
	_ = xlsx.SetCellStyle(sheet, cell('B', row), cell('B', row), style)
	row++

	for _, line := range statLines {
		_ = xlsx.SetCellValue(sheet, cell('A', row), line.label)
		if line.pounds {
			_ = xlsx.SetCellFloat(sheet, cell('B', row), line.value(stats), -1, 64)
			style, _ = xlsx.NewStyle(mergeStyles(defaultStyle(), poundsFormat()))
		} else {
			_ = xlsx.SetCellInt(sheet, cell('B', row), int(line.value(stats)))
			style, _ = xlsx.NewStyle(mergeStyles(defaultStyle(), decimalFormat(0)))
		}
		_ = xlsx.SetCellStyle(sheet, cell('B', row), cell('B', row), style)
		row++
	}

	style, _ = xlsx.NewStyle(mergeStyles(defaultStyle(), thickBorder("top")))
	_ = xlsx.SetCellStyle(sheet, cell('A', row), cell('B', row), style)
}

func writePropertiesSheet(xlsx *excelize.File, sheet string, props []lvt.Property) error {
	header := make([]interface{}, len(propertyColumns))
	for i, c := range propertyColumns {
		header[i] = c.header
	}
	if err := xlsx.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	last := 'A' + rune(len(propertyColumns)) - 1
	style, _ := xlsx.NewStyle(mergeStyles(defaultStyle(), fontBold(), thinBorder("bottom")))
	_ = xlsx.SetCellStyle(sheet, cell('A', 1), cell(last, 1), style)

	_ = xlsx.SetPanes(sheet, &excelize.Panes{
		ActivePane:  "bottomLeft",
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
	})

	for i, p := range props {
		vals := make([]interface{}, len(propertyColumns))
		for j, c := range propertyColumns {
			vals[j] = c.value(p)
		}
		if err := xlsx.SetSheetRow(sheet, cell('A', i+2), &vals); err != nil {
			return err
		}
	}

	if len(props) == 0 {
		return nil
	}
	for i, c := range propertyColumns {
		if c.decimals < 0 {
			continue
		}
		col := 'A' + rune(i)
		var style int
		if c.pounds {
			style, _ = xlsx.NewStyle(mergeStyles(defaultStyle(), poundsFormat()))
		} else {
			style, _ = xlsx.NewStyle(mergeStyles(defaultStyle(), decimalFormat(c.decimals)))
		}
		_ = xlsx.SetCellStyle(sheet, cell(col, 2), cell(col, len(props)+1), style)
	}
	return nil
}
