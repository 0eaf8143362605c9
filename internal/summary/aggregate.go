// Package summary derives a driver's daily statistics from a list of
// orders. Everything here is a pure function of its input.
package summary

import (
	"sort"
	"time"

	"github.com/fleetline/driver-assist/internal/entities"
)

// Build aggregates one driver's orders for a single date. Delivered and
// pending orders land in their own buckets; everything else (in transit,
// failed, cancelled, returned) counts only toward the total, so
// CompletedOrders+PendingOrders never exceeds TotalOrders.
func Build(date time.Time, driver entities.Driver, orders []entities.Order) entities.DailySummary {
	s := entities.DailySummary{
		Date:        date,
		DriverID:    driver.ID,
		DriverName:  driver.Name,
		TotalOrders: len(orders),
		Orders:      orders,
	}

	for _, o := range orders {
		if o.Priority == entities.PriorityUrgent {
			s.UrgentOrders++
		}
		switch o.Status {
		case entities.StatusDelivered:
			s.CompletedOrders++
		case entities.StatusPending:
			s.PendingOrders++
		}
	}

	return s
}

// RegionCount is a neighborhood histogram bucket.
type RegionCount struct {
	Region string
	Count  int
}

// RegionCounts tallies orders per neighborhood, preserving first-seen
// order of regions.
func RegionCounts(orders []entities.Order) []RegionCount {
	index := make(map[string]int)
	var counts []RegionCount

	for _, o := range orders {
		region := o.Address.Neighborhood
		if i, ok := index[region]; ok {
			counts[i].Count++
			continue
		}
		index[region] = len(counts)
		counts = append(counts, RegionCount{Region: region, Count: 1})
	}

	return counts
}

// TopRegions returns up to n regions ordered by descending count. Ties
// keep their first-seen order.
func TopRegions(counts []RegionCount, n int) []RegionCount {
	top := make([]RegionCount, len(counts))
	copy(top, counts)

	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Count > top[j].Count
	})

	if len(top) > n {
		top = top[:n]
	}
	return top
}

// SortByWindowStart returns the orders sorted by delivery-window start
// ascending without mutating the input.
func SortByWindowStart(orders []entities.Order) []entities.Order {
	sorted := make([]entities.Order, len(orders))
	copy(sorted, orders)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Window.Start.Before(sorted[j].Window.Start)
	})
	return sorted
}
