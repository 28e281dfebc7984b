package exports

import (
	"io"

	"github.com/xuri/excelize/v2"
)

// TransactionsXLSX writes the curated columns as an Excel worksheet.
func TransactionsXLSX(w io.Writer, records []TransactionRecord) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Transacciones"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	for col, name := range CuratedHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return err
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err == nil {
		endCell, _ := excelize.CoordinatesToCellName(len(CuratedHeader), 1)
		_ = f.SetCellStyle(sheet, "A1", endCell, headerStyle)
	}

	for i, r := range records {
		row := curatedRow(r)
		for col, value := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return err
			}
			// keep amounts numeric so spreadsheet formulas work
			if col == 4 {
				amount, _ := r.Amount.Round(2).Float64()
				if err := f.SetCellValue(sheet, cell, amount); err != nil {
					return err
				}
				continue
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return err
			}
		}
	}

	return f.Write(w)
}
