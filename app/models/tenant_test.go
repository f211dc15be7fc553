package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestTenancyOverlaps(t *testing.T) {
	periodStart := date(2025, time.March, 1)
	periodEnd := date(2025, time.April, 1)

	open := &RoomTenancy{MoveInDate: date(2025, time.January, 10)}
	assert.True(t, open.Overlaps(periodStart, periodEnd))

	midPeriodOut := date(2025, time.March, 15)
	leftMidPeriod := &RoomTenancy{MoveInDate: date(2025, time.January, 10), MoveOutDate: &midPeriodOut}
	assert.True(t, leftMidPeriod.Overlaps(periodStart, periodEnd))

	beforePeriod := date(2025, time.February, 28)
	goneBefore := &RoomTenancy{MoveInDate: date(2025, time.January, 10), MoveOutDate: &beforePeriod}
	assert.False(t, goneBefore.Overlaps(periodStart, periodEnd))

	movesInLater := &RoomTenancy{MoveInDate: date(2025, time.April, 1)}
	assert.False(t, movesInLater.Overlaps(periodStart, periodEnd))

	movesInMidPeriod := &RoomTenancy{MoveInDate: date(2025, time.March, 20)}
	assert.True(t, movesInMidPeriod.Overlaps(periodStart, periodEnd))
}

func TestTariffCovers(t *testing.T) {
	to := date(2025, time.June, 1)
	tariff := &ServiceCost{
		EffectiveFrom: date(2025, time.January, 1),
		EffectiveTo:   &to,
	}

	assert.True(t, tariff.Covers(date(2025, time.January, 1)))
	assert.True(t, tariff.Covers(date(2025, time.May, 31)))
	assert.False(t, tariff.Covers(date(2025, time.June, 1)))
	assert.False(t, tariff.Covers(date(2024, time.December, 31)))

	openEnded := &ServiceCost{EffectiveFrom: date(2025, time.January, 1)}
	assert.True(t, openEnded.Covers(date(2030, time.December, 31)))
}

func TestReadingPeriodBefore(t *testing.T) {
	reading := &MeterReading{BillingMonth: 12, BillingYear: 2024}

	assert.True(t, reading.PeriodBefore(1, 2025))
	assert.True(t, reading.PeriodBefore(12, 2025))
	assert.False(t, reading.PeriodBefore(12, 2024))
	assert.False(t, reading.PeriodBefore(11, 2024))
}

func TestMembershipBenefits(t *testing.T) {
	assert.Equal(t, 3, PlanFree.Benefits().MaxPosts)
	assert.Equal(t, 0, PlanFree.Benefits().MaxPushTop)
	assert.True(t, PlanPremium.Benefits().MaxPosts > PlanStandard.Benefits().MaxPosts)

	unknown := MembershipPlan("gold")
	assert.False(t, unknown.Valid())
	assert.Equal(t, PlanFree.Benefits(), unknown.Benefits())
}
