package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Service represents a billable utility or amenity type (electricity, water, ...).
// The charging method decides which billing sub-workflow applies.
type Service struct {
	ID             string         `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	Name           string         `json:"name" gorm:"not null" validate:"required"`
	ChargingMethod ChargingMethod `json:"charging_method" gorm:"not null;type:varchar(20)" validate:"required,oneof=per_unit per_person flat"`
	CreatedAt      time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt      time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt      *time.Time     `json:"deleted_at,omitempty" gorm:"index"`
}

// IsMetered reports whether the service bills on meter consumption.
func (s *Service) IsMetered() bool {
	return s.ChargingMethod == ChargePerUnit
}

// ServiceCost is a tariff: a time-windowed unit price for a service at a
// hostel. Rows are never mutated after creation; a price change inserts a
// new tariff and closes the prior one's effective_to.
type ServiceCost struct {
	ID            string          `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	HostelID      string          `json:"hostel_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	ServiceID     string          `json:"service_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	UnitCost      decimal.Decimal `json:"unit_cost" gorm:"not null;type:numeric(14,2)" validate:"required"`
	Unit          string          `json:"unit" gorm:"type:varchar(20)"` // kWh, m3, person, month
	EffectiveFrom time.Time       `json:"effective_from" gorm:"not null;type:date" validate:"required"`
	EffectiveTo   *time.Time      `json:"effective_to,omitempty" gorm:"type:date"`
	CreatedAt     time.Time       `json:"created_at" gorm:"autoCreateTime"`

	Hostel  *Hostel  `json:"hostel,omitempty" gorm:"foreignKey:HostelID;references:ID"`
	Service *Service `json:"service,omitempty" gorm:"foreignKey:ServiceID;references:ID"`
}

// Covers reports whether the tariff's [EffectiveFrom, EffectiveTo) window
// contains the given date. An absent EffectiveTo means open-ended.
func (sc *ServiceCost) Covers(on time.Time) bool {
	if on.Before(sc.EffectiveFrom) {
		return false
	}
	return sc.EffectiveTo == nil || on.Before(*sc.EffectiveTo)
}
