package model

import "strings"

// Client is a salon customer. Only the first name is mandatory; everything
// else is filled in as the front desk learns it.
type Client struct {
	ID         int64  `db:"id" json:"id"`
	FirstName  string `db:"first_name" json:"first_name"`
	LastName   string `db:"last_name" json:"last_name"`
	BirthDate  string `db:"birth_date" json:"birth_date,omitempty"`
	NationalID string `db:"national_id" json:"national_id,omitempty"`
	Phone      string `db:"phone" json:"phone,omitempty"`
	Email      string `db:"email" json:"email,omitempty"`
}

// FullName is the display form used by selection lists and the revenue
// report join.
func (c *Client) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

type CreateClientRequest struct {
	FirstName  string `json:"first_name" binding:"required" validate:"required"`
	LastName   string `json:"last_name"`
	BirthDate  string `json:"birth_date"`
	NationalID string `json:"national_id"`
	Phone      string `json:"phone"`
	Email      string `json:"email" binding:"omitempty,email" validate:"omitempty,email"`
}
