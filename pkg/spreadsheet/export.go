package spreadsheet

import (
	"bytes"
	"io"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/shopspring/decimal"
	"github.com/tealeg/xlsx"

	"github.com/skynet2/expense-tracker-sync/pkg/manualsync"
)

type Exporter struct {
}

func NewExporter() *Exporter {
	return &Exporter{}
}

// Export renders a snapshot as a workbook with one sheet per entity type and a summary sheet.
func (e *Exporter) Export(snapshot *manualsync.Snapshot, w io.Writer) error {
	if snapshot == nil || snapshot.Data == nil {
		return errors.New("snapshot has no data")
	}

	file := xlsx.NewFile()
	data := snapshot.Data

	if err := e.summary(file, snapshot); err != nil {
		return err
	}

	sheets := []struct {
		name   string
		header []string
		rows   [][]interface{}
	}{
		{SheetExpenses, expenseHeader, expenseRows(data)},
		{SheetCategories, categoryHeader, categoryRows(data)},
		{SheetWallets, walletHeader, walletRows(data)},
		{SheetTags, tagHeader, tagRows(data)},
		{SheetBudgets, budgetHeader, budgetRows(data)},
		{SheetTransfers, transferHeader, transferRows(data)},
		{SheetRecurring, recurringHeader, recurringRows(data)},
	}

	for _, s := range sheets {
		sheet, err := file.AddSheet(s.name)
		if err != nil {
			return errors.Wrapf(err, "failed to add sheet %s", s.name)
		}

		addStringRow(sheet, s.header)

		for _, values := range s.rows {
			addRow(sheet, values)
		}
	}

	if err := file.Write(w); err != nil {
		return errors.Wrap(err, "failed to write workbook")
	}

	return nil
}

func (e *Exporter) ExportBytes(snapshot *manualsync.Snapshot) ([]byte, error) {
	var buf bytes.Buffer

	if err := e.Export(snapshot, &buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func (e *Exporter) summary(file *xlsx.File, snapshot *manualsync.Snapshot) error {
	sheet, err := file.AddSheet(SheetSummary)
	if err != nil {
		return errors.Wrapf(err, "failed to add sheet %s", SheetSummary)
	}

	lastSync := "never"
	if snapshot.Metadata.LastManualSync != nil {
		lastSync = snapshot.Metadata.LastManualSync.Format(dateTimeLayout)
	}

	addRow(sheet, []interface{}{"Version", snapshot.Version})
	addRow(sheet, []interface{}{"Exported At", snapshot.ExportDate.Format(dateTimeLayout)})
	addRow(sheet, []interface{}{"User", snapshot.UserID})
	addRow(sheet, []interface{}{"Last Sync", lastSync})
	addRow(sheet, []interface{}{"Expenses", snapshot.Metadata.TotalExpenses})
	addRow(sheet, []interface{}{"Categories", snapshot.Metadata.TotalCategories})
	addRow(sheet, []interface{}{"Wallets", snapshot.Metadata.TotalWallets})
	addRow(sheet, []interface{}{"Tags", snapshot.Metadata.TotalTags})
	addRow(sheet, []interface{}{"Budgets", snapshot.Metadata.TotalBudgets})
	addRow(sheet, []interface{}{"Transfers", snapshot.Metadata.TotalTransfers})
	addRow(sheet, []interface{}{"Recurring", snapshot.Metadata.TotalRecurring})

	return nil
}

func addStringRow(sheet *xlsx.Sheet, values []string) {
	row := sheet.AddRow()
	for _, v := range values {
		row.AddCell().SetString(v)
	}
}

func addRow(sheet *xlsx.Sheet, values []interface{}) {
	row := sheet.AddRow()

	for _, v := range values {
		cell := row.AddCell()

		switch val := v.(type) {
		case decimal.Decimal:
			f, _ := val.Float64()
			cell.SetFloat(f)
		case int:
			cell.SetInt(val)
		case time.Time:
			cell.SetString(val.Format(dateLayout))
		case *time.Time:
			if val != nil {
				cell.SetString(val.Format(dateLayout))
			}
		case []string:
			cell.SetString(strings.Join(val, ", "))
		case string:
			cell.SetString(val)
		default:
			cell.SetValue(val)
		}
	}
}
