// Package notifications defines the outbound receipt port for the pharmacy
// bounded context. The domain owns the interface; infrastructure implements
// it (SMTP with a PDF attachment in production, a fake in tests).
package notifications

import "context"

// Receipt carries exactly the fields a bill must present, in presentation
// order. Rendering (layout, currency symbol, attachment format) is an
// infrastructure concern.
type Receipt struct {
	To           string
	MedicineName string
	Description  string
	UnitPrice    float64
	Quantity     int
	TotalPrice   float64
}

// Notifier dispatches a receipt to a customer. The call may be slow and may
// fail; billing treats a failure as a hard abort, so implementations must not
// report success before the receipt is actually handed off.
type Notifier interface {
	SendReceipt(ctx context.Context, receipt Receipt) error
}
