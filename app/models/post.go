package models

import "time"

// Post is a public rental listing created by a landlord for a room. Creation
// and push-top both consume membership quota.
type Post struct {
	ID          string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	LandlordID  string     `json:"landlord_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	HostelID    string     `json:"hostel_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	RoomID      *string    `json:"room_id,omitempty" gorm:"index;type:uuid"`
	Title       string     `json:"title" gorm:"not null" validate:"required"`
	Description string     `json:"description,omitempty"`
	ImageURLs   []string   `json:"image_urls,omitempty" gorm:"-"`
	Status      PostStatus `json:"status" gorm:"not null;default:'active';type:varchar(20)"`
	PushedAt    time.Time  `json:"pushed_at" gorm:"not null;index"` // listing order key, bumped by push-top
	CreatedAt   time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty" gorm:"index"`

	Hostel *Hostel `json:"hostel,omitempty" gorm:"foreignKey:HostelID;references:ID"`
}
