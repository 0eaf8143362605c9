package format_test

import (
	"testing"
	"time"

	"github.com/fleetline/driver-assist/internal/entities"
	"github.com/fleetline/driver-assist/internal/format"

	"github.com/stretchr/testify/assert"
)

func TestMoney(t *testing.T) {
	testCases := []struct {
		value float64
		want  string
	}{
		{0, "R$ 0,00"},
		{150, "R$ 150,00"},
		{1234.56, "R$ 1.234,56"},
		{7150, "R$ 7.150,00"},
		{1234567.89, "R$ 1.234.567,89"},
		{-42.5, "R$ -42,50"},
		{0.1 + 0.2, "R$ 0,30"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, format.Money(tc.value))
	}
}

func TestPhone(t *testing.T) {
	testCases := []struct {
		name  string
		phone string
		want  string
	}{
		{"11 digits", "11987654321", "(11) 98765-4321"},
		{"10 digits", "1133334444", "(11) 3333-4444"},
		{"already formatted 11 digits", "(11) 98765-4321", "(11) 98765-4321"},
		{"too short passes through", "12345", "12345"},
		{"13 digit international passes through", "5511987654321", "5511987654321"},
		{"empty", "", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, format.Phone(tc.phone))
		})
	}
}

func TestPostalCode(t *testing.T) {
	testCases := []struct {
		name string
		code string
		want string
	}{
		{"8 digits", "01234567", "01234-567"},
		{"already formatted", "01234-567", "01234-567"},
		{"wrong length passes through", "0123", "0123"},
		{"empty", "", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, format.PostalCode(tc.code))
		})
	}
}

func TestGreeting(t *testing.T) {
	day := func(hour int) time.Time {
		return time.Date(2025, 11, 6, hour, 0, 0, 0, time.UTC)
	}

	testCases := []struct {
		hour int
		want string
	}{
		{5, "Good Morning"},
		{11, "Good Morning"},
		{12, "Good Afternoon"},
		{17, "Good Afternoon"},
		{18, "Good Evening"},
		{23, "Good Evening"},
		{0, "Good Evening"},
		{4, "Good Evening"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, format.Greeting(day(tc.hour)), "hour %d", tc.hour)
	}
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "Pending", format.StatusLabel(entities.StatusPending))
	assert.Equal(t, "In Transit", format.StatusLabel(entities.StatusInTransit))
	assert.Equal(t, "Delivered", format.StatusLabel(entities.StatusDelivered))
	assert.Equal(t, "weird_status", format.StatusLabel(entities.OrderStatus("weird_status")))
}

func TestShortAddress(t *testing.T) {
	a := entities.Address{
		Street:       "Rua das Flores",
		Number:       "123",
		Neighborhood: "Jardim Paulista",
	}
	assert.Equal(t, "Rua das Flores, 123 - Jardim Paulista", format.ShortAddress(a))
}

func TestTimeAndDate(t *testing.T) {
	ts := time.Date(2025, 11, 6, 14, 5, 0, 0, time.UTC)
	assert.Equal(t, "14:05", format.Time(ts))
	assert.Equal(t, "06/11/2025", format.Date(ts))
}
