package model

// TimeLayout is how appointment times of day are stored.
const TimeLayout = "15:04"

// Appointment is a future booking. It carries no payment information and no
// status field; a completed booking is recorded separately as a visit or
// ledger entry. All name fields are denormalized copies.
type Appointment struct {
	ID         int64  `db:"id" json:"id"`
	Date       string `db:"date" json:"date"`
	Time       string `db:"time" json:"time"`
	ClientName string `db:"client_name" json:"client_name"`
	Service    string `db:"service" json:"service"`
	Staff      string `db:"staff" json:"staff"`
}

type CreateAppointmentRequest struct {
	Date       string `json:"date" binding:"required" validate:"required"`
	Time       string `json:"time" binding:"required" validate:"required"`
	ClientName string `json:"client_name" binding:"required" validate:"required"`
	Service    string `json:"service"`
	Staff      string `json:"staff"`
}
