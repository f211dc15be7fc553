package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MembershipPlan is one tier of the landlord subscription. The tiers form a
// small closed set; quotas live directly on the plan instead of an
// open-ended capability lookup.
type MembershipPlan string

const (
	PlanFree     MembershipPlan = "free"
	PlanStandard MembershipPlan = "standard"
	PlanPremium  MembershipPlan = "premium"
)

// PlanBenefits carries the quotas granted by a plan.
type PlanBenefits struct {
	MaxPosts   int             `json:"max_posts"`
	MaxPushTop int             `json:"max_push_top"`
	Price      decimal.Decimal `json:"price"`
	Days       int             `json:"days"`
}

var planBenefits = map[MembershipPlan]PlanBenefits{
	PlanFree:     {MaxPosts: 3, MaxPushTop: 0, Price: decimal.Zero, Days: 0},
	PlanStandard: {MaxPosts: 20, MaxPushTop: 5, Price: decimal.NewFromInt(99000), Days: 30},
	PlanPremium:  {MaxPosts: 100, MaxPushTop: 30, Price: decimal.NewFromInt(249000), Days: 30},
}

// Benefits returns the quotas for the plan. Unknown plans fall back to free.
func (p MembershipPlan) Benefits() PlanBenefits {
	if b, ok := planBenefits[p]; ok {
		return b
	}
	return planBenefits[PlanFree]
}

// Valid reports whether p is one of the known tiers.
func (p MembershipPlan) Valid() bool {
	_, ok := planBenefits[p]
	return ok
}

// UserMembership is one purchased (or granted) plan window for a user, with
// the remaining quota counters decremented as posts are created/pushed.
type UserMembership struct {
	ID             string         `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	UserID         string         `json:"user_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Plan           MembershipPlan `json:"plan" gorm:"not null;type:varchar(20)" validate:"required"`
	PostsLeft      int            `json:"posts_left"`
	PushTopsLeft   int            `json:"push_tops_left"`
	StartDate      time.Time      `json:"start_date" gorm:"not null"`
	ExpiryDate     *time.Time     `json:"expiry_date,omitempty"`
	CreatedAt      time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt      time.Time      `json:"updated_at" gorm:"autoUpdateTime"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID;references:ID"`
}

// IsExpired reports whether the membership window has lapsed.
func (m *UserMembership) IsExpired(now time.Time) bool {
	return m.ExpiryDate != nil && now.After(*m.ExpiryDate)
}
