package analytics

import (
	"math"
	"time"

	"finchart/errors"
	"finchart/timeseries"
)

// CalendarBucket is the return of one (year, month) period of an equity
// curve: StartValue is the first observation of the period in chronological
// order, EndValue the last, PeriodReturn = EndValue/StartValue - 1.
type CalendarBucket struct {
	Year         int
	Month        time.Month
	StartValue   float64
	EndValue     float64
	PeriodReturn float64
	Observations int
}

// MonthlyReturns buckets an equity series into calendar months using the
// series' own timestamps and computes a percentage return per bucket.
// Buckets are emitted ordered by year then month and exist only for months
// with at least one observation. A single-observation month returns 0.
func MonthlyReturns(equity *timeseries.Series) ([]CalendarBucket, error) {
	if equity.Len() == 0 {
		return nil, errors.NewInvalidInput("monthly returns of an empty series")
	}

	var buckets []CalendarBucket
	for i := 0; i < equity.Len(); i++ {
		ts := equity.Times[i].UTC()
		year, month := ts.Year(), ts.Month()

		last := len(buckets) - 1
		if last < 0 || buckets[last].Year != year || buckets[last].Month != month {
			buckets = append(buckets, CalendarBucket{
				Year:       year,
				Month:      month,
				StartValue: math.NaN(),
				EndValue:   math.NaN(),
			})
			last++
		}

		b := &buckets[last]
		b.Observations++
		if !equity.IsMissing(i) {
			if math.IsNaN(b.StartValue) {
				b.StartValue = equity.Values[i]
			}
			b.EndValue = equity.Values[i]
		}
	}

	for i := range buckets {
		b := &buckets[i]
		if math.IsNaN(b.StartValue) || b.StartValue <= 0 {
			b.PeriodReturn = math.NaN()
			continue
		}
		b.PeriodReturn = b.EndValue/b.StartValue - 1
	}
	return buckets, nil
}
