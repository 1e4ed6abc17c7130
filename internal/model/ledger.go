package model

// LedgerEntry is a standalone record of money received, entered manually
// and not necessarily tied to a visit or appointment.
type LedgerEntry struct {
	ID            int64         `db:"id" json:"id"`
	Date          string        `db:"date" json:"date"`
	ClientName    string        `db:"client_name" json:"client_name"`
	Amount        float64       `db:"amount" json:"amount"`
	PaymentMethod PaymentMethod `db:"payment_method" json:"payment_method"`
}

type CreateLedgerEntryRequest struct {
	Date          string        `json:"date"`
	ClientName    string        `json:"client_name" binding:"required" validate:"required"`
	Amount        float64       `json:"amount" binding:"min=0" validate:"min=0"`
	PaymentMethod PaymentMethod `json:"payment_method" binding:"required" validate:"required"`
}
