// Package export serializes filtered row sets and single transactions
// into the artifacts the dashboard offers: spreadsheets, PDF receipts,
// and printable HTML. Export failures are recoverable and never disturb
// the fetched rows the caller holds.
package export

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/paydesk/paydesk/internal/common"
	"github.com/paydesk/paydesk/internal/model"
)

// Column maps one row field to a spreadsheet column: display header plus
// the value extractor. model.Amount values are written as numbers with
// the fixed two-decimal format.
type Column[R any] struct {
	Value  func(R) any
	Header string
}

// ReportFilename builds the deterministic artifact name
// {Report}_{ISODate}.xlsx.
func ReportFilename(report string, now time.Time) string {
	return fmt.Sprintf("%s_%s.xlsx", report, now.Format("2006-01-02"))
}

// WriteXLSX writes the row set as a single-sheet workbook under dir and
// returns the written path. An empty row set returns common.ErrNoData
// and writes nothing.
func WriteXLSX[R any](dir, report string, now time.Time, rows []R, columns []Column[R]) (string, error) {
	if len(rows) == 0 {
		return "", common.ErrNoData
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	const sheet = "Sheet1"

	moneyStyle, err := f.NewStyle(&excelize.Style{NumFmt: 2}) // 0.00
	if err != nil {
		return "", fmt.Errorf("failed to create money style: %w", err)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return "", fmt.Errorf("failed to create header style: %w", err)
	}

	for i, col := range columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return "", err
		}
		if err := f.SetCellValue(sheet, cell, col.Header); err != nil {
			return "", err
		}
		if err := f.SetCellStyle(sheet, cell, cell, headerStyle); err != nil {
			return "", err
		}
	}

	for r, row := range rows {
		for i, col := range columns {
			cell, err := excelize.CoordinatesToCellName(i+1, r+2)
			if err != nil {
				return "", err
			}

			value := col.Value(row)
			if amount, ok := value.(model.Amount); ok {
				if err := f.SetCellValue(sheet, cell, amount.Float64()); err != nil {
					return "", err
				}
				if err := f.SetCellStyle(sheet, cell, cell, moneyStyle); err != nil {
					return "", err
				}
				continue
			}

			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return "", err
			}
		}
	}

	path := filepath.Join(dir, ReportFilename(report, now))
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("failed to save workbook: %w", err)
	}

	return path, nil
}
