package model

// DateLayout is how calendar dates are stored; no time component, matching
// the salon's paper forms.
const DateLayout = "2006-01-02"

type PaymentMethod string

const (
	PaymentMethodPix        PaymentMethod = "Pix"
	PaymentMethodCash       PaymentMethod = "Cash"
	PaymentMethodCreditCard PaymentMethod = "Credit Card"
	PaymentMethodDebitCard  PaymentMethod = "Debit Card"
)

// Valid reports whether m is one of the accepted payment methods.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodPix, PaymentMethodCash, PaymentMethodCreditCard, PaymentMethodDebitCard:
		return true
	}
	return false
}

// Visit is a completed service rendered to a client. Service and staff are
// copied as plain strings at write time; renaming either later does not
// rewrite history.
type Visit struct {
	ID            int64         `db:"id" json:"id"`
	Date          string        `db:"date" json:"date"`
	ClientID      int64         `db:"client_id" json:"client_id"`
	Service       string        `db:"service" json:"service"`
	Amount        float64       `db:"amount" json:"amount"`
	PaymentMethod PaymentMethod `db:"payment_method" json:"payment_method"`
	Staff         string        `db:"staff" json:"staff"`
}

// VisitWithClient is a visit joined with the client's full name for the
// revenue report.
type VisitWithClient struct {
	Visit
	ClientName string `db:"client_name" json:"client_name"`
}

type CreateVisitRequest struct {
	ClientID      int64         `json:"client_id" binding:"required" validate:"required"`
	Service       string        `json:"service" binding:"required" validate:"required"`
	Amount        *float64      `json:"amount"`
	PaymentMethod PaymentMethod `json:"payment_method" binding:"required" validate:"required"`
	Staff         string        `json:"staff"`
	Date          string        `json:"date"`
}
