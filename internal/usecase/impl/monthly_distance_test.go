package impl

import (
	"bytes"
	"testing"
	"time"

	"wayfarer/internal/domain/entity"
	"wayfarer/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateMonthlyDistances_SumsPerUserAndMonth(t *testing.T) {
	userA := uuid.New()
	userB := uuid.New()
	june := time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)
	july := time.Date(2025, 7, 2, 8, 0, 0, 0, time.UTC)

	journeys := []*entity.Journey{
		mkJourney(userA, "Bike", june, june.Add(time.Hour), 5),
		mkJourney(userA, "Bike", june.Add(24*time.Hour), june.Add(25*time.Hour), 7),
		mkJourney(userA, "Car", july, july.Add(time.Hour), 12),
		mkJourney(userB, "Bike", june, june.Add(time.Hour), 40),
	}

	groups := aggregateMonthlyDistances(journeys, &usecase.MonthlyDistanceQuery{})
	require.Len(t, groups, 3)

	// Default order is total distance descending.
	assert.Equal(t, userB, groups[0].UserID)
	assert.InDelta(t, 40.0, groups[0].TotalDistanceKm, 1e-9)

	// The two 12 km groups tie; the stable sort keeps their encounter order.
	assert.Equal(t, 6, groups[1].Month)
	assert.InDelta(t, 12.0, groups[1].TotalDistanceKm, 1e-9)
	assert.Equal(t, 7, groups[2].Month)
	assert.InDelta(t, 12.0, groups[2].TotalDistanceKm, 1e-9)
}

func TestAggregateMonthlyDistances_OrderByUserID(t *testing.T) {
	userA := uuid.New()
	userB := uuid.New()
	june := time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)

	journeys := []*entity.Journey{
		mkJourney(userA, "Bike", june, june.Add(time.Hour), 1),
		mkJourney(userB, "Bike", june, june.Add(time.Hour), 100),
	}

	groups := aggregateMonthlyDistances(journeys, &usecase.MonthlyDistanceQuery{OrderBy: " UserId "})
	require.Len(t, groups, 2)
	assert.True(t, bytes.Compare(groups[0].UserID[:], groups[1].UserID[:]) < 0)
}

func TestAggregateMonthlyDistances_Filters(t *testing.T) {
	userA := uuid.New()
	userB := uuid.New()
	june := time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)
	july2024 := time.Date(2024, 7, 10, 8, 0, 0, 0, time.UTC)

	journeys := []*entity.Journey{
		mkJourney(userA, "Bike", june, june.Add(time.Hour), 5),
		mkJourney(userA, "Bike", july2024, july2024.Add(time.Hour), 9),
		mkJourney(userB, "Bike", june, june.Add(time.Hour), 40),
	}

	year := 2025
	month := 6
	groups := aggregateMonthlyDistances(journeys, &usecase.MonthlyDistanceQuery{
		UserID: &userA,
		Year:   &year,
		Month:  &month,
	})
	require.Len(t, groups, 1)
	assert.Equal(t, userA, groups[0].UserID)
	assert.Equal(t, 2025, groups[0].Year)
	assert.Equal(t, 6, groups[0].Month)
	assert.InDelta(t, 5.0, groups[0].TotalDistanceKm, 1e-9)
}
