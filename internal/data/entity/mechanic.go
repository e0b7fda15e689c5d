package entity

import (
	"github.com/google/uuid"
)

type Mechanic struct {
	Base
	GarageID  uuid.UUID `db:"garage_id"`
	Name      string    `db:"name"`
	Phone     string    `db:"phone"`
	Specialty string    `db:"specialty"`
	IsActive  bool      `db:"is_active"`
}
