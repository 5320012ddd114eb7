package services

import (
	"bytes"
	"fmt"

	"github.com/pocketbase/pocketbase"
	"github.com/xuri/excelize/v2"
)

// RegisterRow is one line of the quotation register workbook.
type RegisterRow struct {
	QuotationNumber string
	Date            string // DD/MM/YYYY
	CustomerName    string
	Phone           string
	Route           string // "Origin -> Destination"
	Subtotal        float64
	TotalAmount     float64
}

// BuildQuotationRegister loads every quotation (newest first) into
// register rows. Records that fail to decode are skipped rather than
// aborting the whole register.
func BuildQuotationRegister(app *pocketbase.PocketBase) ([]RegisterRow, error) {
	records, err := app.FindRecordsByFilter("quotations", "id != ''", "-created", 0, 0, nil)
	if err != nil {
		return nil, fmt.Errorf("register: could not query quotations: %w", err)
	}

	var rows []RegisterRow
	for _, rec := range records {
		q, err := QuotationFromRecord(rec)
		if err != nil {
			continue
		}

		date, err := FormatDisplayDate(q.QuotationDate)
		if err != nil {
			date = q.QuotationDate
		}

		rows = append(rows, RegisterRow{
			QuotationNumber: q.QuotationNumber,
			Date:            date,
			CustomerName:    q.CustomerName,
			Phone:           q.Phone,
			Route:           fmt.Sprintf("%s -> %s", q.Origin, q.Destination),
			Subtotal:        ComputeSubtotal(q),
			TotalAmount:     q.TotalAmount,
		})
	}

	return rows, nil
}

// GenerateQuotationRegisterExcel creates the quotation register workbook
// and returns its contents as a byte slice.
func GenerateQuotationRegisterExcel(rows []RegisterRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Quotations"
	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, &ExportError{Cause: fmt.Errorf("set sheet name: %w", err)}
	}

	// Column references (A through G).
	columns := []string{"A", "B", "C", "D", "E", "F", "G"}
	lastCol := columns[len(columns)-1]

	widths := []float64{16, 14, 28, 16, 30, 16, 16}
	for i, col := range columns {
		if err := f.SetColWidth(sheetName, col, col, widths[i]); err != nil {
			return nil, &ExportError{Cause: fmt.Errorf("set col width %s: %w", col, err)}
		}
	}

	// Title style: bold, 16pt.
	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
			Size: 16,
		},
	})
	if err != nil {
		return nil, &ExportError{Cause: fmt.Errorf("create title style: %w", err)}
	}

	// Column header style: bold, white text, charcoal background, centered.
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold:  true,
			Color: "#FFFFFF",
			Size:  11,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#333333"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, &ExportError{Cause: fmt.Errorf("create header style: %w", err)}
	}

	// Data row style: normal with borders.
	rowStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Size: 10,
		},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, &ExportError{Cause: fmt.Errorf("create row style: %w", err)}
	}

	// Row 1: Title merged across all columns.
	if err := f.MergeCell(sheetName, "A1", lastCol+"1"); err != nil {
		return nil, &ExportError{Cause: fmt.Errorf("merge title: %w", err)}
	}
	f.SetCellValue(sheetName, "A1", CompanyName+" - Quotation Register")
	f.SetCellStyle(sheetName, "A1", lastCol+"1", titleStyle)

	// Row 3: Column headers.
	headers := []string{"Quotation #", "Date", "Customer", "Phone", "Route", "Subtotal", "Grand Total"}
	for i, h := range headers {
		cell := fmt.Sprintf("%s3", columns[i])
		f.SetCellValue(sheetName, cell, h)
	}
	f.SetCellStyle(sheetName, "A3", lastCol+"3", headerStyle)

	// Data rows starting at row 4.
	row := 4
	for _, r := range rows {
		rowStr := fmt.Sprintf("%d", row)

		subtotal, err := FormatINR(r.Subtotal)
		if err != nil {
			return nil, &ExportError{Cause: fmt.Errorf("row %d subtotal: %w", row, err)}
		}
		total, err := FormatINR(r.TotalAmount)
		if err != nil {
			return nil, &ExportError{Cause: fmt.Errorf("row %d total: %w", row, err)}
		}

		f.SetCellValue(sheetName, "A"+rowStr, sanitizeExcelCell(r.QuotationNumber))
		f.SetCellValue(sheetName, "B"+rowStr, r.Date)
		f.SetCellValue(sheetName, "C"+rowStr, sanitizeExcelCell(r.CustomerName))
		f.SetCellValue(sheetName, "D"+rowStr, sanitizeExcelCell(r.Phone))
		f.SetCellValue(sheetName, "E"+rowStr, sanitizeExcelCell(r.Route))
		f.SetCellValue(sheetName, "F"+rowStr, subtotal)
		f.SetCellValue(sheetName, "G"+rowStr, total)
		f.SetCellStyle(sheetName, "A"+rowStr, lastCol+rowStr, rowStyle)

		row++
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, &ExportError{Cause: fmt.Errorf("write excel: %w", err)}
	}

	return buf.Bytes(), nil
}

// sanitizeExcelCell prevents formula injection by prefixing dangerous leading
// characters with a single quote. Excel interprets cells starting with =, +, -,
// @, \t or \r as formulas, which can be abused for code execution or data theft.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

// thinBorders returns a slice of excelize.Border for thin borders on all four sides.
func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{
			Type:  side,
			Color: "#000000",
			Style: 1, // thin
		}
	}
	return borders
}
