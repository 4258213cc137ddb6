package impl

import (
	"bytes"
	"sort"
	"strings"

	"wayfarer/internal/domain/entity"
	"wayfarer/internal/usecase"

	"github.com/google/uuid"
)

// monthKey is the composite grouping key of the monthly aggregation.
type monthKey struct {
	userID uuid.UUID
	year   int
	month  int
}

// aggregateMonthlyDistances groups the filtered journeys by
// (user, year, month) of their start time and sums the distance per group.
// The whole filtered set is grouped and ordered before any page is cut, so
// page N is a stable slice of the complete sequence. Ties within the sort
// key keep their encounter order.
func aggregateMonthlyDistances(journeys []*entity.Journey, query *usecase.MonthlyDistanceQuery) []*usecase.MonthlyDistance {
	totals := make(map[monthKey]*usecase.MonthlyDistance)
	groups := make([]*usecase.MonthlyDistance, 0)

	for _, journey := range journeys {
		year, month := journey.StartTime.Year(), int(journey.StartTime.Month())
		if query.UserID != nil && journey.UserID != *query.UserID {
			continue
		}
		if query.Year != nil && year != *query.Year {
			continue
		}
		if query.Month != nil && month != *query.Month {
			continue
		}

		key := monthKey{userID: journey.UserID, year: year, month: month}
		group, ok := totals[key]
		if !ok {
			group = &usecase.MonthlyDistance{UserID: journey.UserID, Year: year, Month: month}
			totals[key] = group
			groups = append(groups, group)
		}
		group.TotalDistanceKm += journey.RouteDistanceKm
	}

	if strings.ToLower(strings.TrimSpace(query.OrderBy)) == "userid" {
		sort.SliceStable(groups, func(i, j int) bool {
			a, b := groups[i].UserID, groups[j].UserID

			return bytes.Compare(a[:], b[:]) < 0
		})
	} else {
		sort.SliceStable(groups, func(i, j int) bool {
			return groups[i].TotalDistanceKm > groups[j].TotalDistanceKm
		})
	}

	return groups
}
