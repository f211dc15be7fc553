package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Room represents one rentable unit inside a hostel.
type Room struct {
	ID           string          `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	HostelID     string          `json:"hostel_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Name         string          `json:"name" gorm:"not null" validate:"required"`
	Floor        int             `json:"floor,omitempty"`
	Area         float64         `json:"area,omitempty"`
	MaxOccupants int             `json:"max_occupants" gorm:"default:1" validate:"gte=1"`
	MonthlyRent  decimal.Decimal `json:"monthly_rent" gorm:"not null;type:numeric(14,2)" validate:"required"`
	IsAvailable  bool            `json:"is_available" gorm:"default:true"`
	CreatedAt    time.Time       `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time       `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt    *time.Time      `json:"deleted_at,omitempty" gorm:"index"`

	Hostel    *Hostel        `json:"hostel,omitempty" gorm:"foreignKey:HostelID;references:ID"`
	Tenancies []*RoomTenancy `json:"tenancies,omitempty" gorm:"foreignKey:RoomID;references:ID"`
}
