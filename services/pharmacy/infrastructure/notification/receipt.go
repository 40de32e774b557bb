package notification

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/ghuser/rxledger/services/pharmacy/domain/notifications"
)

const receiptSeparator = "------------------------------------------------"

// renderReceiptPDF renders the bill as a single-page PDF. Field order is part
// of the receipt contract: title, separator, name, description, unit price,
// quantity, separator, total (two decimals), separator, thank-you line.
func renderReceiptPDF(r notifications.Receipt) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "", 12)

	lines := []string{
		"Pharmacy Management System - Bill Invoice",
		receiptSeparator,
		"Medicine Name: " + r.MedicineName,
		"Description: " + r.Description,
		fmt.Sprintf("Price per Unit: %v", r.UnitPrice),
		fmt.Sprintf("Quantity: %d", r.Quantity),
		receiptSeparator,
		fmt.Sprintf("Total Price: %.2f", r.TotalPrice),
		receiptSeparator,
		"Thank you for your purchase!",
	}
	for _, line := range lines {
		pdf.CellFormat(0, 8, line, "", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render receipt pdf: %w", err)
	}
	return buf.Bytes(), nil
}
