package models

import "time"

// MeterReading records the meter value of a metered service in a room for one
// billing period. One reading per (room, service, month, year); edits are
// allowed until an invoice consumes it.
type MeterReading struct {
	ID           string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	RoomID       string     `json:"room_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	ServiceID    string     `json:"service_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Reading      float64    `json:"reading" gorm:"not null" validate:"gte=0"`
	BillingMonth int        `json:"billing_month" gorm:"not null" validate:"required,min=1,max=12"`
	BillingYear  int        `json:"billing_year" gorm:"not null" validate:"required,min=2000"`
	IsBilled     bool       `json:"is_billed" gorm:"default:false"`
	CreatedAt    time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty" gorm:"index"`

	Room    *Room    `json:"room,omitempty" gorm:"foreignKey:RoomID;references:ID"`
	Service *Service `json:"service,omitempty" gorm:"foreignKey:ServiceID;references:ID"`
}

// PeriodBefore reports whether the reading's billing period falls strictly
// before (year, month) in calendar order.
func (m *MeterReading) PeriodBefore(month, year int) bool {
	if m.BillingYear != year {
		return m.BillingYear < year
	}
	return m.BillingMonth < month
}
