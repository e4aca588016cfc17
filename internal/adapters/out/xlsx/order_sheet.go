// Package xlsx renders order sheets as Excel workbooks.
package xlsx

import (
	"fmt"
	"io"

	"dealerorders/internal/core/application/usecases/queries"

	"github.com/xuri/excelize/v2"
)

const (
	sheetName   = "Sheet1"
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var header = []any{
	"No.", "Dealer", "Recipient", "Zip code", "Address", "Telephone", "Campaign", "Item", "Quantity",
}

// WriteOrderSheet writes a single-sheet workbook: a header row, then one row
// per order line starting at row 2.
func WriteOrderSheet(w io.Writer, sheet queries.OrderSheet) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return err
	}

	for i, row := range sheet.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}

		values := []any{
			i + 1,
			row.DealerName,
			row.Recipient,
			row.ZipCode,
			row.Address,
			row.Telephone,
			row.CampaignName,
			row.ItemName,
			row.Nos,
		}
		if err = f.SetSheetRow(sheetName, cell, &values); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write order sheet %s: %w", sheet.Filename, err)
	}
	return nil
}
