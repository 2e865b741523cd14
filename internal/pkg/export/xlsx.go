// Package export renders tabular data as xlsx workbooks.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const defaultSheet = "Sheet1"

// Column describes one spreadsheet column. A zero Width keeps the default size.
type Column struct {
	Header string
	Width  float64
}

// Table is a single-sheet report: a styled header row followed by Rows.
type Table struct {
	SheetName string
	Columns   []Column
	Rows      [][]interface{}
}

// WriteXLSX encodes table as an xlsx workbook.
func WriteXLSX(table Table) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := defaultSheet
	if table.SheetName != "" && table.SheetName != defaultSheet {
		if err := f.SetSheetName(defaultSheet, table.SheetName); err != nil {
			return nil, fmt.Errorf("rename sheet: %w", err)
		}
		sheet = table.SheetName
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		return nil, fmt.Errorf("open stream writer: %w", err)
	}

	for i, col := range table.Columns {
		if col.Width > 0 {
			if err := sw.SetColWidth(i+1, i+1, col.Width); err != nil {
				return nil, fmt.Errorf("set column width: %w", err)
			}
		}
	}

	header := make([]interface{}, len(table.Columns))
	for i, col := range table.Columns {
		header[i] = excelize.Cell{StyleID: headerStyle, Value: col.Header}
	}
	if err := sw.SetRow("A1", header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	for i, row := range table.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := sw.SetRow(cell, row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	if err := sw.Flush(); err != nil {
		return nil, fmt.Errorf("flush sheet: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("encode workbook: %w", err)
	}
	return buf.Bytes(), nil
}
