package impl

import (
	"testing"
	"time"

	"wayfarer/internal/domain/entity"
	"wayfarer/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mkJourney(userID uuid.UUID, transport string, start, arrival time.Time, distance float64) *entity.Journey {
	return &entity.Journey{
		ID:                 uuid.New(),
		UserID:             userID,
		StartingLocation:   "A",
		ArrivalLocation:    "B",
		StartTime:          start,
		ArrivalTime:        arrival,
		TransportationType: transport,
		RouteDistanceKm:    distance,
	}
}

func TestFilterJourneys_ConjunctivePredicates(t *testing.T) {
	userA := uuid.New()
	userB := uuid.New()
	base := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)

	journeys := []*entity.Journey{
		mkJourney(userA, "Bike", base, base.Add(time.Hour), 5),
		mkJourney(userA, "Car", base.Add(2*time.Hour), base.Add(3*time.Hour), 30),
		mkJourney(userB, "Bike", base.Add(4*time.Hour), base.Add(5*time.Hour), 8),
	}

	// Both predicates have to hold at once.
	matched := filterJourneys(journeys, &usecase.JourneyFilter{
		UserID:         &userA,
		TransportTypes: []string{"Bike"},
	})
	require.Len(t, matched, 1)
	assert.Equal(t, journeys[0].ID, matched[0].ID)
}

func TestFilterJourneys_EmptyFilterMatchesEverything(t *testing.T) {
	base := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	journeys := []*entity.Journey{
		mkJourney(uuid.New(), "Bike", base, base.Add(time.Hour), 5),
		mkJourney(uuid.New(), "Car", base, base.Add(time.Hour), 9),
	}

	matched := filterJourneys(journeys, &usecase.JourneyFilter{})
	assert.Len(t, matched, 2)
}

func TestFilterJourneys_TimeWindowBoundsAreInclusive(t *testing.T) {
	base := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	arrival := base.Add(time.Hour)
	journey := mkJourney(uuid.New(), "Walk", base, arrival, 2)

	matched := filterJourneys([]*entity.Journey{journey}, &usecase.JourneyFilter{
		StartFrom: &base,
		ArrivalTo: &arrival,
	})
	assert.Len(t, matched, 1)

	after := base.Add(time.Minute)
	matched = filterJourneys([]*entity.Journey{journey}, &usecase.JourneyFilter{
		StartFrom: &after,
	})
	assert.Empty(t, matched)
}

func TestSortJourneys_KnownFieldWithDirection(t *testing.T) {
	base := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	short := mkJourney(uuid.New(), "Bike", base.Add(time.Hour), base.Add(2*time.Hour), 1)
	long := mkJourney(uuid.New(), "Bike", base, base.Add(time.Hour), 10)

	journeys := []*entity.Journey{short, long}
	sortJourneys(journeys, "RouteDistanceKm", "desc")

	assert.Equal(t, long.ID, journeys[0].ID)
	assert.Equal(t, short.ID, journeys[1].ID)
}

func TestSortJourneys_UnknownFieldFallsBackToStartTimeAscending(t *testing.T) {
	base := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	later := mkJourney(uuid.New(), "Bike", base.Add(time.Hour), base.Add(2*time.Hour), 1)
	earlier := mkJourney(uuid.New(), "Bike", base, base.Add(time.Hour), 10)

	// Direction only applies when the field resolves; "desc" on an unknown
	// field still yields StartTime ascending.
	journeys := []*entity.Journey{later, earlier}
	sortJourneys(journeys, "nonsense", "desc")

	assert.Equal(t, earlier.ID, journeys[0].ID)
	assert.Equal(t, later.ID, journeys[1].ID)
}

func TestSortJourneys_FieldNameIsCaseInsensitive(t *testing.T) {
	base := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	a := mkJourney(uuid.New(), "Bike", base, base.Add(time.Hour), 1)
	b := mkJourney(uuid.New(), "Bike", base.Add(time.Hour), base.Add(30*time.Minute), 10)

	journeys := []*entity.Journey{a, b}
	sortJourneys(journeys, "  ArrivalTime ", "")

	assert.Equal(t, b.ID, journeys[0].ID)
}

func TestPaginate_PastTheEndPageIsEmpty(t *testing.T) {
	items := []int{1, 2, 3}

	assert.Empty(t, paginate(items, 5, 10))
	assert.Equal(t, []int{3}, paginate(items, 2, 2))
	assert.Equal(t, []int{1, 2}, paginate(items, 1, 2))
}

func TestNormalizePage_Defaults(t *testing.T) {
	page, pageSize := normalizePage(0, -3)
	assert.Equal(t, 1, page)
	assert.Equal(t, defaultPageSize, pageSize)

	page, pageSize = normalizePage(4, 25)
	assert.Equal(t, 4, page)
	assert.Equal(t, 25, pageSize)
}
