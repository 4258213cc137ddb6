package impl

import (
	"slices"
	"sort"
	"strings"

	"wayfarer/internal/domain/entity"
	"wayfarer/internal/usecase"
)

// journeyLess orders two journeys by one sortable field, ascending.
type journeyLess func(a, b *entity.Journey) bool

// sortFields is the closed set of journey fields a caller may sort by,
// keyed by lower-cased field name. Names outside this set fall back to the
// default StartTime ascending order.
var sortFields = map[string]journeyLess{
	"starttime":          func(a, b *entity.Journey) bool { return a.StartTime.Before(b.StartTime) },
	"arrivaltime":        func(a, b *entity.Journey) bool { return a.ArrivalTime.Before(b.ArrivalTime) },
	"routedistancekm":    func(a, b *entity.Journey) bool { return a.RouteDistanceKm < b.RouteDistanceKm },
	"transportationtype": func(a, b *entity.Journey) bool { return a.TransportationType < b.TransportationType },
	"startinglocation":   func(a, b *entity.Journey) bool { return a.StartingLocation < b.StartingLocation },
	"arrivallocation":    func(a, b *entity.Journey) bool { return a.ArrivalLocation < b.ArrivalLocation },
}

// matchesFilter reports whether the journey satisfies every supplied
// predicate. Absent predicates match everything.
func matchesFilter(journey *entity.Journey, filter *usecase.JourneyFilter) bool {
	if filter.UserID != nil && journey.UserID != *filter.UserID {
		return false
	}
	if len(filter.TransportTypes) > 0 && !slices.Contains(filter.TransportTypes, journey.TransportationType) {
		return false
	}
	if filter.StartFrom != nil && journey.StartTime.Before(*filter.StartFrom) {
		return false
	}
	if filter.ArrivalTo != nil && journey.ArrivalTime.After(*filter.ArrivalTo) {
		return false
	}

	return true
}

// filterJourneys returns the journeys matching every supplied predicate.
func filterJourneys(journeys []*entity.Journey, filter *usecase.JourneyFilter) []*entity.Journey {
	matched := make([]*entity.Journey, 0, len(journeys))
	for _, journey := range journeys {
		if matchesFilter(journey, filter) {
			matched = append(matched, journey)
		}
	}

	return matched
}

// sortJourneys orders journeys in place by the named field. The direction
// applies only when the field name resolves against the sortable set;
// unknown or empty names order by StartTime ascending regardless of
// direction. Sorting is stable, so ties keep their encounter order.
func sortJourneys(journeys []*entity.Journey, orderBy, direction string) {
	less, ok := sortFields[strings.ToLower(strings.TrimSpace(orderBy))]
	if !ok {
		less = sortFields["starttime"]
	} else if strings.EqualFold(strings.TrimSpace(direction), "desc") {
		asc := less
		less = func(a, b *entity.Journey) bool { return asc(b, a) }
	}

	sort.SliceStable(journeys, func(i, j int) bool {
		return less(journeys[i], journeys[j])
	})
}

// paginate cuts one page out of the already ordered items using
// skip = (page-1)*pageSize semantics. Pages past the end yield an empty
// slice, never an error.
func paginate[T any](items []T, page, pageSize int) []T {
	skip := (page - 1) * pageSize
	if skip >= len(items) {
		return []T{}
	}

	end := skip + pageSize
	if end > len(items) {
		end = len(items)
	}

	return items[skip:end]
}

// normalizePage maps out-of-range page parameters onto usable defaults.
func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}

	return page, pageSize
}

const defaultPageSize = 10
