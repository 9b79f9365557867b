package lvt

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"
)

var ErrInputNotFound = errors.New("input file not found")

// Load reads the first sheet of the workbook at path.
func Load(path string) (*Table, error) {
	fd, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", path, ErrInputNotFound)
	} else if err != nil {
		return nil, err
	}
	defer fd.Close()
	return Read(fd)
}

// Read reads the first sheet of an XLSX workbook. The first row is the
// header; rows without any non-blank cell are skipped.
func Read(r io.Reader) (*Table, error) {
	xlsx, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer xlsx.Close()

	sheets := xlsx.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}

	// Raw values, so that number formats such as "#,##0" don't leak
	// thousands separators into the cells.
	rows, err := xlsx.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q has no header row", sheets[0])
	}

	// rows[i] is sheet row i+1.
	data := make([][]string, 0, len(rows)-1)
	lines := make([]int, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if blank(row) {
			continue
		}
		data = append(data, row)
		lines = append(lines, i+2)
	}
	t := NewTable(rows[0], data)
	t.lines = lines
	return t, nil
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
