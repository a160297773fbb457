package dateutil

import (
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

// DaysPerYear is the fixed divisor for every day-to-year conversion. It averages
// out leap years and is never replaced by 365 or 366.
const DaysPerYear = 365.25

var daysPerYear = decimal.RequireFromString("365.25")

// DaysBetween returns the signed number of days from "from" to "to".
func DaysBetween(from, to civil.Date) int {
	return to.DaysSince(from)
}

// YearFraction converts a day count to years using the 365.25 divisor.
func YearFraction(days int) decimal.Decimal {
	return decimal.NewFromInt(int64(days)).Div(daysPerYear)
}

// YearsBetween returns the elapsed years between two dates on the 365.25 basis.
func YearsBetween(from, to civil.Date) decimal.Decimal {
	return YearFraction(DaysBetween(from, to))
}

// Age calculates the fractional age at a given date relative to the birth date.
func Age(birthDate, atDate civil.Date) decimal.Decimal {
	return YearsBetween(birthDate, atDate)
}

// AddYears advances a date by floor(years × 365.25) days.
func AddYears(date civil.Date, years decimal.Decimal) civil.Date {
	days := years.Mul(daysPerYear).Floor().IntPart()
	return date.AddDays(int(days))
}

// IsLeapYear checks if a year is a leap year
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInYear returns the number of days in a given year
func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

// BeginningOfYear returns January 1 of the given year.
func BeginningOfYear(year int) civil.Date {
	return civil.Date{Year: year, Month: time.January, Day: 1}
}

// Earlier returns the earlier of two dates.
func Earlier(a, b civil.Date) civil.Date {
	if b.Before(a) {
		return b
	}
	return a
}

// Later returns the later of two dates.
func Later(a, b civil.Date) civil.Date {
	if b.After(a) {
		return b
	}
	return a
}
