package format

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fleetline/driver-assist/internal/entities"
)

// Money renders a value in the Brazilian two-decimal grouped format,
// e.g. 7150 -> "R$ 7.150,00".
func Money(value float64) string {
	s := strconv.FormatFloat(value, 'f', 2, 64)

	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	sign := ""
	if neg {
		sign = "-"
	}
	return fmt.Sprintf("R$ %s%s,%s", sign, b.String(), fracPart)
}

// Phone renders 11-digit numbers as (DD) DDDDD-DDDD and 10-digit numbers
// as (DD) DDDD-DDDD. Anything else is returned verbatim.
func Phone(phone string) string {
	d := digits(phone)

	switch len(d) {
	case 11:
		return fmt.Sprintf("(%s) %s-%s", d[:2], d[2:7], d[7:])
	case 10:
		return fmt.Sprintf("(%s) %s-%s", d[:2], d[2:6], d[6:])
	default:
		return phone
	}
}

// PostalCode renders exactly 8 digits as DDDDD-DDD, otherwise verbatim.
func PostalCode(code string) string {
	d := digits(code)
	if len(d) == 8 {
		return d[:5] + "-" + d[5:]
	}
	return code
}

func digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func Time(t time.Time) string {
	return t.Format("15:04")
}

func Date(t time.Time) string {
	return t.Format("02/01/2006")
}

// ShortAddress is the one-line form used in lists and schedules.
func ShortAddress(a entities.Address) string {
	return fmt.Sprintf("%s, %s - %s", a.Street, a.Number, a.Neighborhood)
}

// Greeting buckets the local hour: [5,12) morning, [12,18) afternoon,
// everything else evening.
func Greeting(t time.Time) string {
	hour := t.Hour()

	switch {
	case hour >= 5 && hour < 12:
		return "Good Morning"
	case hour >= 12 && hour < 18:
		return "Good Afternoon"
	default:
		return "Good Evening"
	}
}

var statusLabels = map[entities.OrderStatus]string{
	entities.StatusPending:   "Pending",
	entities.StatusConfirmed: "Confirmed",
	entities.StatusInTransit: "In Transit",
	entities.StatusDelivered: "Delivered",
	entities.StatusFailed:    "Failed",
	entities.StatusCancelled: "Cancelled",
	entities.StatusReturned:  "Returned",
}

// StatusLabel maps a status through the closed label table. Unknown
// values pass through verbatim, never an error.
func StatusLabel(status entities.OrderStatus) string {
	if label, ok := statusLabels[status]; ok {
		return label
	}
	return string(status)
}

var statusEmojis = map[entities.OrderStatus]string{
	entities.StatusPending:   "⏳",
	entities.StatusConfirmed: "✅",
	entities.StatusInTransit: "🚚",
	entities.StatusDelivered: "📦",
	entities.StatusFailed:    "❌",
	entities.StatusCancelled: "🚫",
	entities.StatusReturned:  "↩️",
}

func statusEmoji(status entities.OrderStatus) string {
	if e, ok := statusEmojis[status]; ok {
		return e
	}
	return "❓"
}

var priorityEmojis = map[entities.OrderPriority]string{
	entities.PriorityNormal: "🟢",
	entities.PriorityHigh:   "🟡",
	entities.PriorityUrgent: "🔴",
}

func priorityEmoji(priority entities.OrderPriority) string {
	if e, ok := priorityEmojis[priority]; ok {
		return e
	}
	return "⚪"
}

func priorityLabel(priority entities.OrderPriority) string {
	switch priority {
	case entities.PriorityUrgent:
		return "URGENT"
	case entities.PriorityHigh:
		return "HIGH PRIORITY"
	default:
		return "NORMAL"
	}
}

func plural(n int, singular, pluralForm string) string {
	if n == 1 {
		return singular
	}
	return pluralForm
}
