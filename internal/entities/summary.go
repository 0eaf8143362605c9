package entities

import "time"

// DailySummary is a derived view over one driver's orders for a single
// calendar date. It is built per request and never stored.
type DailySummary struct {
	Date            time.Time
	DriverID        string
	DriverName      string
	TotalOrders     int
	CompletedOrders int
	PendingOrders   int
	UrgentOrders    int
	Orders          []Order
}
