package lvt

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

var testHeader = []string{ColLabel, ColArea, ColLandValue, ColBuildingValue, ColConsideration, ColCouncilTax, ColLBTT, ColBusinessRates}

// testRows returns n valid source rows with labels P1..Pn.
func testRows(n int) [][]interface{} {
	rows := make([][]interface{}, n)
	for i := range rows {
		v := float64(i + 1)
		rows[i] = []interface{}{fmt.Sprintf("P%d", i+1), 10 * v, 1000 * v, 2000 * v, 3000 * v, 100 * v, 50 * v, 25 * v}
	}
	return rows
}

func testTable(rows [][]interface{}) *Table {
	data := make([][]string, len(rows))
	for i, row := range rows {
		data[i] = make([]string, len(row))
		for j, v := range row {
			data[i][j] = fmt.Sprint(v)
		}
	}
	return NewTable(testHeader, data)
}

// writeWorkbook saves a workbook with testHeader and rows in dir and
// returns its path.
func writeWorkbook(t *testing.T, dir string, rows [][]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	header := make([]interface{}, len(testHeader))
	for i, h := range testHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		t.Fatal(err)
	}
	for i, row := range rows {
		row := row
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", i+2), &row); err != nil {
			t.Fatal(err)
		}
	}

	path := filepath.Join(dir, "input.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("failed to save workbook: %v", err)
	}
	return path
}

func jsons(v interface{}) string {
	bs, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		panic(err)
	}
	return string(bs)
}
