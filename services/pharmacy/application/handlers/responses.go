package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/rxledger/services/pharmacy/domain/models"
	"github.com/ghuser/rxledger/services/pharmacy/domain/repositories"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"medicine not found"`
} // @name ErrorResponse

// MedicineResponse is the JSON shape of a medicine.
type MedicineResponse struct {
	ID          uuid.UUID `json:"id"          example:"123e4567-e89b-12d3-a456-426614174000"`
	Name        string    `json:"name"        example:"Paracetamol"`
	Description string    `json:"description" example:"500mg tablets"`
	UnitPrice   float64   `json:"unit_price"  example:"10.5"`
	Quantity    int       `json:"quantity"    example:"100"`
	ExpiryDate  string    `json:"expiry_date" example:"2027-01-31"`
	Expired     bool      `json:"expired"     example:"false"`
	CreatedAt   time.Time `json:"created_at"  example:"2024-01-15T10:30:00Z"`
	UpdatedAt   time.Time `json:"updated_at"  example:"2024-01-15T10:30:00Z"`
} // @name MedicineResponse

func toMedicineResponse(m *models.Medicine) MedicineResponse {
	return MedicineResponse{
		ID:          m.ID,
		Name:        m.Name.String(),
		Description: m.Description,
		UnitPrice:   m.UnitPrice,
		Quantity:    m.Quantity,
		ExpiryDate:  m.ExpiryDate,
		Expired:     m.Expired,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// SaleResponse is the JSON shape of a sale ledger entry.
type SaleResponse struct {
	ID           uuid.UUID `json:"id"            example:"123e4567-e89b-12d3-a456-426614174000"`
	MedicineName string    `json:"medicine_name" example:"Paracetamol"`
	Quantity     int       `json:"quantity"      example:"5"`
	UnitPrice    float64   `json:"unit_price"    example:"10.5"`
	TotalPrice   float64   `json:"total_price"   example:"52.5"`
	SoldAt       time.Time `json:"sold_at"       example:"2024-01-15T10:30:00Z"`
} // @name SaleResponse

func toSaleResponse(s *models.Sale) SaleResponse {
	return SaleResponse{
		ID:           s.ID,
		MedicineName: s.MedicineName,
		Quantity:     s.Quantity,
		UnitPrice:    s.UnitPrice,
		TotalPrice:   s.TotalPrice,
		SoldAt:       s.SoldAt,
	}
}

// SupplierResponse is the JSON shape of a supplier.
type SupplierResponse struct {
	ID            uuid.UUID `json:"id"             example:"123e4567-e89b-12d3-a456-426614174000"`
	Name          string    `json:"name"           example:"MediSource Ltd"`
	ContactNumber string    `json:"contact_number" example:"+1-555-0100"`
	Email         string    `json:"email"          example:"orders@medisource.example"`
	Address       string    `json:"address"        example:"12 Depot Road"`
	CreatedAt     time.Time `json:"created_at"     example:"2024-01-15T10:30:00Z"`
} // @name SupplierResponse

func toSupplierResponse(s *models.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:            s.ID,
		Name:          s.Name,
		ContactNumber: s.ContactNumber,
		Email:         s.Email,
		Address:       s.Address,
		CreatedAt:     s.CreatedAt,
	}
}

// queryOptsFromRequest reads ?paginate, ?page, and ?size, clamping to sane
// bounds. Listings return the full result set unless paginate=true; page
// numbering starts at 1.
func queryOptsFromRequest(r *http.Request) repositories.QueryOpts {
	q := r.URL.Query()
	if paginate, _ := strconv.ParseBool(q.Get("paginate")); !paginate {
		return repositories.QueryOpts{}
	}
	page, _ := strconv.Atoi(q.Get("page"))
	if page < 1 {
		page = 1
	}
	size, _ := strconv.Atoi(q.Get("size"))
	if size < 1 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}
	return repositories.QueryOpts{
		Limit:  size,
		Offset: (page - 1) * size,
	}
}
