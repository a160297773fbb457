package dateutil

import (
	"fmt"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) civil.Date {
	return civil.Date{Year: y, Month: m, Day: d}
}

func TestAgeCalculation(t *testing.T) {
	tests := []struct {
		name        string
		birthDate   civil.Date
		atDate      civil.Date
		expectedAge string
	}{
		{
			name:        "Thirty-three years across eight leap days",
			birthDate:   date(1990, 1, 1),
			atDate:      date(2023, 1, 1),
			expectedAge: "32.99",
		},
		{
			name:        "Exactly four years including one leap day",
			birthDate:   date(2000, 1, 1),
			atDate:      date(2004, 1, 1),
			expectedAge: "4.00",
		},
		{
			name:        "Same day",
			birthDate:   date(1965, 2, 25),
			atDate:      date(1965, 2, 25),
			expectedAge: "0.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			age := Age(tt.birthDate, tt.atDate)
			assert.Equal(t, tt.expectedAge, age.Truncate(2).StringFixed(2))
		})
	}
}

func TestYearFraction(t *testing.T) {
	assert.True(t, YearFraction(0).IsZero())
	assert.True(t, YearFraction(1461).Equal(decimal.NewFromInt(4)), "1461 days is four 365.25-day years")
	assert.Equal(t, "0.9144", YearFraction(334).StringFixed(4))
}

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, 334, DaysBetween(date(2023, 1, 1), date(2023, 12, 1)))
	assert.Equal(t, -334, DaysBetween(date(2023, 12, 1), date(2023, 1, 1)))
	assert.Equal(t, 366, DaysBetween(date(2024, 1, 1), date(2025, 1, 1)))
}

func TestAddYears(t *testing.T) {
	tests := []struct {
		start    civil.Date
		years    string
		expected civil.Date
	}{
		{date(2024, 1, 1), "20", date(2044, 1, 1)},
		{date(2023, 1, 1), "0.5", date(2023, 7, 2)},
		{date(2023, 1, 1), "0", date(2023, 1, 1)},
		{date(2020, 6, 15), "1", date(2021, 6, 15)},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s+%s", tt.start, tt.years), func(t *testing.T) {
			got := AddYears(tt.start, decimal.RequireFromString(tt.years))
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestLeapYearCalculation(t *testing.T) {
	tests := []struct {
		year     int
		expected bool
	}{
		{2000, true},
		{1900, false},
		{2024, true},
		{2023, false},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("Year_%d", tt.year), func(t *testing.T) {
			assert.Equal(t, tt.expected, IsLeapYear(tt.year))
		})
	}
}

func TestDaysInYear(t *testing.T) {
	assert.Equal(t, 366, DaysInYear(2024))
	assert.Equal(t, 365, DaysInYear(2023))
}

func TestYearBoundaries(t *testing.T) {
	assert.Equal(t, date(2023, 1, 1), BeginningOfYear(2023))
	assert.Equal(t, 365, DaysBetween(BeginningOfYear(2023), BeginningOfYear(2024)))
}

func TestEarlierLater(t *testing.T) {
	a := date(2023, 1, 1)
	b := date(2024, 1, 1)
	assert.Equal(t, a, Earlier(a, b))
	assert.Equal(t, a, Earlier(b, a))
	assert.Equal(t, b, Later(a, b))
	assert.Equal(t, b, Later(b, a))
}
