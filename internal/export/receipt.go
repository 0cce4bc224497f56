package export

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/paydesk/paydesk/internal/model"
)

// ReceiptFilename builds the deterministic receipt name
// Receipt_{transactionId}_{date}.pdf.
func ReceiptFilename(transactionID string, now time.Time) string {
	return fmt.Sprintf("Receipt_%s_%s.pdf", transactionID, now.Format("2006-01-02"))
}

// receiptFields is the transaction detail in display order, shared by
// the PDF and the printable HTML variant.
func receiptFields(tx model.Transaction) [][2]string {
	return [][2]string{
		{"Transaction ID", tx.ID},
		{"Order ID", tx.OrderID},
		{"Date", tx.CreatedAt.DisplayDate()},
		{"Service", tx.Service},
		{"Operator", tx.Operator},
		{"Account", tx.Account},
		{"Amount", "Rs. " + tx.Amount.String()},
		{"Commission", "Rs. " + tx.Commission.String()},
		{"TDS", "Rs. " + tx.TDS.String()},
		{"Status", string(tx.Status)},
	}
}

// WriteReceipt renders one transaction's full detail as a single-page
// PDF under dir and returns the written path.
func WriteReceipt(dir string, tx model.Transaction, now time.Time) (string, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Transaction Receipt", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "Transaction Receipt", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(120, 120, 120)
	pdf.CellFormat(0, 6, "Generated "+now.Format("02 Jan 2006 15:04"), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.SetTextColor(0, 0, 0)
	for _, field := range receiptFields(tx) {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(55, 9, field[0], "B", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(0, 9, field[1], "B", 1, "L", false, 0, "")
	}

	pdf.Ln(10)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.SetTextColor(120, 120, 120)
	pdf.CellFormat(0, 6, "This is a computer generated receipt and does not require a signature.", "", 1, "C", false, 0, "")

	path := filepath.Join(dir, ReceiptFilename(tx.ID, now))
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("failed to write receipt: %w", err)
	}

	return path, nil
}
