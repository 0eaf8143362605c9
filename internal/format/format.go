// Package format renders driver-facing chat messages. Every renderer is
// a pure function of its input plus the injected clock; output is
// deterministic for a fixed clock.
package format

import (
	"fmt"
	"strings"
	"time"

	"github.com/fleetline/driver-assist/internal/entities"
	"github.com/fleetline/driver-assist/internal/summary"
)

const (
	divider = "━━━━━━━━━━━━━━━━━━"

	// visible regions in the daily summary
	topRegionCount = 5
	// normal-priority entries shown before the list is truncated
	normalBucketLimit = 10
)

type Formatter struct {
	now func() time.Time
}

func New() *Formatter {
	return &Formatter{now: time.Now}
}

// NewWithClock pins "now", which drives the greeting bucket and the
// confirmation timestamp.
func NewWithClock(now func() time.Time) *Formatter {
	return &Formatter{now: now}
}

func (f *Formatter) DailySummary(s entities.DailySummary) string {
	if s.TotalOrders == 0 {
		return fmt.Sprintf("%s, %s! 😊\n\n📅 No deliveries scheduled for today.\n\nEnjoy your day! 🎉",
			Greeting(f.now()), s.DriverName)
	}

	sorted := summary.SortByWindowStart(s.Orders)
	first := sorted[0]
	last := sorted[len(sorted)-1]

	var b strings.Builder
	fmt.Fprintf(&b, "%s, %s! 🌅\n\n", Greeting(f.now()), s.DriverName)
	fmt.Fprintf(&b, "📦 *Today's Summary* (%s):\n", Date(s.Date))
	b.WriteString(divider + "\n\n")
	fmt.Fprintf(&b, "Total: *%d %s*\n\n", s.TotalOrders, plural(s.TotalOrders, "delivery", "deliveries"))

	if s.UrgentOrders > 0 {
		fmt.Fprintf(&b, "🚨 *ATTENTION*: %d urgent %s!\n\n", s.UrgentOrders, plural(s.UrgentOrders, "delivery", "deliveries"))
	}

	b.WriteString("📍 *By region*:\n")
	for _, rc := range summary.TopRegions(summary.RegionCounts(s.Orders), topRegionCount) {
		fmt.Fprintf(&b, "• %s: %d %s\n", rc.Region, rc.Count, plural(rc.Count, "delivery", "deliveries"))
	}

	b.WriteString("\n⏰ *Schedule*:\n")
	fmt.Fprintf(&b, "First: %s - %s\n", Time(first.Window.Start), ShortAddress(first.Address))
	fmt.Fprintf(&b, "Last: %s - %s\n\n", Time(last.Window.Start), ShortAddress(last.Address))

	b.WriteString(divider + "\n")
	b.WriteString("💪 Good luck with your deliveries!\n\n")
	b.WriteString("💬 Type *\"List\"* to see all orders\n")
	b.WriteString("💬 Type *\"Order #123\"* for details")

	return b.String()
}

func (f *Formatter) OrderList(orders []entities.Order) string {
	if len(orders) == 0 {
		return "📋 You have no pending orders at the moment."
	}

	var urgent, high, normal []entities.Order
	for _, o := range orders {
		switch o.Priority {
		case entities.PriorityUrgent:
			urgent = append(urgent, o)
		case entities.PriorityHigh:
			high = append(high, o)
		default:
			normal = append(normal, o)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📋 *YOUR ORDERS* (%d total)\n\n", len(orders))

	if len(urgent) > 0 {
		b.WriteString("🔴 *URGENT* (deliver as soon as possible)\n")
		writeListEntries(&b, urgent)
		b.WriteString("\n")
	}

	if len(high) > 0 {
		b.WriteString("🟡 *HIGH PRIORITY*\n")
		writeListEntries(&b, high)
		b.WriteString("\n")
	}

	if len(normal) > 0 {
		b.WriteString("🟢 *NORMAL*\n")
		shown := normal
		if len(shown) > normalBucketLimit {
			shown = shown[:normalBucketLimit]
		}
		writeListEntries(&b, shown)
		if len(normal) > normalBucketLimit {
			fmt.Fprintf(&b, "\n... and %d more orders\n", len(normal)-normalBucketLimit)
		}
	}

	b.WriteString("\n" + divider + "\n")
	b.WriteString("💬 Type *\"Order #123\"* for details")

	return b.String()
}

func writeListEntries(b *strings.Builder, orders []entities.Order) {
	for _, o := range orders {
		fmt.Fprintf(b, "• #%s - %s\n", o.ID, ShortAddress(o.Address))
		fmt.Fprintf(b, "  ⏰ %s\n", Time(o.Window.Start))
	}
}

func (f *Formatter) OrderDetails(o entities.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📦 *Order #%s*\n", o.ID)
	fmt.Fprintf(&b, "%s %s\n", priorityEmoji(o.Priority), priorityLabel(o.Priority))
	b.WriteString(divider + "\n\n")

	b.WriteString("🏠 *ADDRESS*\n")
	fmt.Fprintf(&b, "%s, %s", o.Address.Street, o.Address.Number)
	if o.Address.Complement != "" {
		fmt.Fprintf(&b, " - %s", o.Address.Complement)
	}
	fmt.Fprintf(&b, "\n%s, %s - %s\n", o.Address.Neighborhood, o.Address.City, o.Address.State)
	fmt.Fprintf(&b, "ZIP: %s\n\n", PostalCode(o.Address.Zipcode))

	b.WriteString("👤 *CUSTOMER*\n")
	fmt.Fprintf(&b, "Name: %s\n", o.Customer.Name)
	fmt.Fprintf(&b, "Phone: %s\n", Phone(o.Customer.Phone))
	if o.Customer.Notes != "" {
		fmt.Fprintf(&b, "⚠️ Notes: %s\n", o.Customer.Notes)
	}
	b.WriteString("\n")

	b.WriteString("📋 *ITEMS*\n")
	for _, item := range o.Items {
		fmt.Fprintf(&b, "• %dx %s\n", item.Quantity, item.Name)
	}
	fmt.Fprintf(&b, "\n*Total:* %s\n\n", Money(o.TotalValue))

	b.WriteString("⏰ *SCHEDULE*\n")
	fmt.Fprintf(&b, "Window: %s - %s\n", Time(o.Window.Start), Time(o.Window.End))
	fmt.Fprintf(&b, "Status: %s %s\n\n", statusEmoji(o.Status), StatusLabel(o.Status))

	if o.Notes != "" {
		fmt.Fprintf(&b, "📝 *NOTES*\n%s\n\n", o.Notes)
	}

	b.WriteString(divider + "\n")
	fmt.Fprintf(&b, "✅ Confirm: Type *\"Confirm #%s\"*\n", o.ID)
	fmt.Fprintf(&b, "⚠️ Issue: Type *\"Issue #%s\"*", o.ID)

	return b.String()
}

// Confirmation renders the delivered acknowledgement. A non-nil next
// order appends a teaser for the following stop, otherwise the day is
// closed out with a completion banner.
func (f *Formatter) Confirmation(o entities.Order, next *entities.Order) string {
	var b strings.Builder
	b.WriteString("✅ *CONFIRMED!*\n\n")
	fmt.Fprintf(&b, "Order #%s marked as delivered\n\n", o.ID)
	b.WriteString("📝 *Details*:\n")
	fmt.Fprintf(&b, "• Customer: %s\n", o.Customer.Name)
	fmt.Fprintf(&b, "• Time: %s\n", Time(f.now()))
	b.WriteString("• Status: ✓ Delivered\n\n")

	b.WriteString(divider + "\n\n")

	if next != nil {
		b.WriteString("📦 *Next delivery*:\n")
		fmt.Fprintf(&b, "#%s - %s\n", next.ID, ShortAddress(next.Address))
		fmt.Fprintf(&b, "⏰ %s\n\n", Time(next.Window.Start))
		fmt.Fprintf(&b, "Type *\"Order #%s\"* for details", next.ID)
	} else {
		b.WriteString("🎉 *All deliveries completed!*\n")
		b.WriteString("Great job today! 💪")
	}

	return b.String()
}

func (f *Formatter) UrgentAlert(o entities.Order) string {
	var b strings.Builder
	b.WriteString("🚨 *URGENT ALERT* 🚨\n\n")
	b.WriteString("New priority order!\n\n")
	b.WriteString(divider + "\n\n")
	fmt.Fprintf(&b, "📦 *Order #%s*\n\n", o.ID)
	fmt.Fprintf(&b, "🏠 %s\n", ShortAddress(o.Address))
	fmt.Fprintf(&b, "%s - %s\n\n", o.Address.City, o.Address.State)
	fmt.Fprintf(&b, "👤 Customer: %s\n", o.Customer.Name)
	fmt.Fprintf(&b, "📱 %s\n\n", Phone(o.Customer.Phone))
	fmt.Fprintf(&b, "⏰ Deliver by: %s\n", Time(o.Window.End))
	fmt.Fprintf(&b, "💰 Amount: %s\n\n", Money(o.TotalValue))

	if o.Notes != "" {
		fmt.Fprintf(&b, "⚠️ *ATTENTION*: %s\n\n", o.Notes)
	}

	b.WriteString(divider + "\n\n")
	fmt.Fprintf(&b, "Type *\"Order #%s\"* for complete details", o.ID)

	return b.String()
}

func (f *Formatter) Help() string {
	return "📱 *AVAILABLE COMMANDS*\n\n" +
		"📊 *QUERIES*\n" +
		"• \"Summary\" - Your daily summary\n" +
		"• \"List\" - All orders\n" +
		"• \"Order #123\" - Order details\n\n" +
		"✅ *ACTIONS*\n" +
		"• \"Confirm #123\" - Mark as delivered\n" +
		"• \"Issue #123\" - Report a problem\n\n" +
		"💡 *TIPS*\n" +
		"• Use # before the number: #1234\n" +
		"• You can ask naturally\n" +
		"• Ex: \"What's the address for order 1234?\"\n\n" +
		divider + "\n\n" +
		"🤖 I'm here to help!\n" +
		"Any questions, just ask."
}

func (f *Formatter) Error(message string) string {
	return fmt.Sprintf("❌ *Error*\n\n%s\n\nIf the problem persists, contact support.", message)
}

func (f *Formatter) NotFound(orderID string) string {
	return fmt.Sprintf("⚠️ *Order not found*\n\n"+
		"Order #%s was not found.\n\n"+
		"Check the number and try again.\n"+
		"Type *\"List\"* to see your orders.", orderID)
}
