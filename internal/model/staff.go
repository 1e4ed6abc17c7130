package model

// DefaultStaffName is used for visits when no staff member has been
// registered yet, so the ticket screen still works on an empty roster.
const DefaultStaffName = "Padrão"

type Staff struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

type CreateStaffRequest struct {
	Name string `json:"name" binding:"required" validate:"required"`
}
