package calculation

import (
	"cloud.google.com/go/civil"
	"github.com/econloss/loss-calculator/internal/domain"
	"github.com/econloss/loss-calculator/pkg/dateutil"
	"github.com/shopspring/decimal"
)

var one = decimal.NewFromInt(1)

// Partition splits [start, end) into calendar-year buckets.
//
// A bucket covering a whole calendar year has portion 1.0; any other bucket has
// portion days/365.25, where days counts the start day and not the end day.
// Buckets with no days are not emitted, so start == end yields no buckets.
// Ages are measured from birthDate to each bucket's start on the same 365.25 basis.
func Partition(start, end, birthDate civil.Date) ([]domain.PeriodBucket, error) {
	if end.Before(start) {
		return nil, &domain.RangeError{Start: start, End: end}
	}

	buckets := make([]domain.PeriodBucket, 0, end.Year-start.Year+1)
	for year := start.Year; year <= end.Year; year++ {
		from := dateutil.Later(start, dateutil.BeginningOfYear(year))
		to := dateutil.Earlier(end, dateutil.BeginningOfYear(year+1))
		days := dateutil.DaysBetween(from, to)
		if days <= 0 {
			continue
		}

		portion := one
		if days < dateutil.DaysInYear(year) {
			portion = dateutil.YearFraction(days)
		}

		buckets = append(buckets, domain.PeriodBucket{
			Year:          year,
			Start:         from,
			End:           to,
			Days:          days,
			PortionOfYear: portion,
			Age:           dateutil.Age(birthDate, from),
		})
	}
	return buckets, nil
}

// PartitionYears partitions a range given by a start date and a duration in years.
// The end date is start + floor(years × 365.25) days.
func PartitionYears(start civil.Date, years decimal.Decimal, birthDate civil.Date) ([]domain.PeriodBucket, error) {
	return Partition(start, dateutil.AddYears(start, years), birthDate)
}

// ApplyPortionOverrides returns a copy of buckets with the portion of each overridden
// year replaced. Years without an override keep their computed portion.
func ApplyPortionOverrides(buckets []domain.PeriodBucket, overrides domain.PortionOverrides) []domain.PeriodBucket {
	if len(overrides) == 0 {
		return buckets
	}
	out := make([]domain.PeriodBucket, len(buckets))
	copy(out, buckets)
	for i := range out {
		if p, ok := overrides[out[i].Year]; ok {
			out[i].PortionOfYear = p
		}
	}
	return out
}
