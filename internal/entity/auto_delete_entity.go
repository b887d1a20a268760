package entity

import (
	"time"

	"github.com/google/uuid"
)

type AutoDeletePeriod string

const (
	AutoDeleteDisabled    AutoDeletePeriod = "disabled"
	AutoDeleteOneMinute   AutoDeletePeriod = "1_minute"
	AutoDeleteOneMonth    AutoDeletePeriod = "1_month"
	AutoDeleteThreeMonths AutoDeletePeriod = "3_months"
	AutoDeleteSixMonths   AutoDeletePeriod = "6_months"
	AutoDeleteOneYear     AutoDeletePeriod = "1_year"
)

var autoDeletePeriods = []AutoDeletePeriod{
	AutoDeleteDisabled,
	AutoDeleteOneMinute,
	AutoDeleteOneMonth,
	AutoDeleteThreeMonths,
	AutoDeleteSixMonths,
	AutoDeleteOneYear,
}

func AutoDeletePeriods() []AutoDeletePeriod {
	out := make([]AutoDeletePeriod, len(autoDeletePeriods))
	copy(out, autoDeletePeriods)
	return out
}

func (p AutoDeletePeriod) Valid() bool {
	for _, known := range autoDeletePeriods {
		if p == known {
			return true
		}
	}
	return false
}

// Cutoff returns now minus the retention period. ok is false for disabled
// and unknown periods, which never purge.
func (p AutoDeletePeriod) Cutoff(now time.Time) (cutoff time.Time, ok bool) {
	switch p {
	case AutoDeleteOneMinute:
		return now.Add(-time.Minute), true
	case AutoDeleteOneMonth:
		return now.AddDate(0, -1, 0), true
	case AutoDeleteThreeMonths:
		return now.AddDate(0, -3, 0), true
	case AutoDeleteSixMonths:
		return now.AddDate(0, -6, 0), true
	case AutoDeleteOneYear:
		return now.AddDate(-1, 0, 0), true
	default:
		return time.Time{}, false
	}
}

type AutoDeleteSetting struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Period    AutoDeletePeriod
	CreatedAt time.Time
	UpdatedAt time.Time
}

type AutoDeleteLog struct {
	Id           uuid.UUID
	UserId       uuid.UUID
	Period       AutoDeletePeriod
	DeletedCount int
	FailedItems  []uuid.UUID
	ExecutedAt   time.Time
}
