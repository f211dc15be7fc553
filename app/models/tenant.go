package models

import "time"

// Tenant represents a person renting (or having rented) a room.
type Tenant struct {
	ID             string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	FullName       string     `json:"full_name" gorm:"not null" validate:"required"`
	Phone          string     `json:"phone" gorm:"type:varchar(20)" validate:"required"`
	Email          string     `json:"email,omitempty" validate:"omitempty,email"`
	IdentityCard   string     `json:"identity_card,omitempty" gorm:"type:varchar(20)"`
	DateOfBirth    *time.Time `json:"date_of_birth,omitempty" gorm:"type:date"`
	PermanentAddr  string     `json:"permanent_address,omitempty"`
	CreatedAt      time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt      time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt      *time.Time `json:"deleted_at,omitempty" gorm:"index"`
}

// RoomTenancy represents one occupancy interval of a tenant in a room.
// MoveOutDate is nil while the tenancy is still open.
type RoomTenancy struct {
	ID          string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	TenantID    string     `json:"tenant_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	RoomID      string     `json:"room_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	MoveInDate  time.Time  `json:"move_in_date" gorm:"not null;type:date" validate:"required"`
	MoveOutDate *time.Time `json:"move_out_date,omitempty" gorm:"type:date"`
	CreatedAt   time.Time  `json:"created_at" gorm:"autoCreateTime"`

	Tenant *Tenant `json:"tenant,omitempty" gorm:"foreignKey:TenantID;references:ID"`
	Room   *Room   `json:"room,omitempty" gorm:"foreignKey:RoomID;references:ID"`
}

// IsActive reports whether the tenancy is still open.
func (t *RoomTenancy) IsActive() bool {
	return t.MoveOutDate == nil
}

// Overlaps reports whether the occupancy interval [MoveInDate, MoveOutDate)
// intersects the period [start, end).
func (t *RoomTenancy) Overlaps(start, end time.Time) bool {
	if !t.MoveInDate.Before(end) {
		return false
	}
	return t.MoveOutDate == nil || t.MoveOutDate.After(start)
}
