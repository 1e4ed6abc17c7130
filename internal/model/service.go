package model

// Service is a catalog entry: a named treatment with its list price.
// Immutable after creation; visits copy the name and may override the price.
type Service struct {
	ID    int64   `db:"id" json:"id"`
	Name  string  `db:"name" json:"name"`
	Price float64 `db:"price" json:"price"`
}

type CreateServiceRequest struct {
	Name  string  `json:"name" binding:"required" validate:"required"`
	Price float64 `json:"price" binding:"min=0" validate:"min=0"`
}
