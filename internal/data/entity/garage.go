package entity

import (
	"github.com/google/uuid"
)

type Garage struct {
	Base
	OwnerID     uuid.UUID `db:"owner_id"`
	Name        string    `db:"name"`
	Address     string    `db:"address"`
	City        string    `db:"city"`
	Phone       string    `db:"phone"`
	Description string    `db:"description"`
	IsOpen      bool      `db:"is_open"`
}
