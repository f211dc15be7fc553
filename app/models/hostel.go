package models

import "time"

// Hostel represents one rental property owned by a landlord.
type Hostel struct {
	ID          string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	LandlordID  string     `json:"landlord_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Name        string     `json:"name" gorm:"not null" validate:"required"`
	Description string     `json:"description,omitempty"`
	Address     string     `json:"address" gorm:"not null" validate:"required"`
	Ward        string     `json:"ward,omitempty"`
	City        string     `json:"city,omitempty"`
	NumberRooms int        `json:"number_rooms" gorm:"default:0"`
	ImageURL    string     `json:"image_url,omitempty"`
	CreatedAt   time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty" gorm:"index"`

	Landlord *User      `json:"landlord,omitempty" gorm:"foreignKey:LandlordID;references:ID"`
	Rooms    []*Room    `json:"rooms,omitempty" gorm:"foreignKey:HostelID;references:ID"`
	Services []*Service `json:"services,omitempty" gorm:"many2many:hostel_services;"`
}
