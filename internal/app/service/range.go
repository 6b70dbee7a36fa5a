package service

import (
	"fmt"
	"time"

	"github.com/go-to-sky/onelife/internal/core/domain"
)

const dayLayout = "2006-01-02"

// ResolveStatisticsRange turns a named preset or custom range into the
// concrete YYYY-MM-DD pair it covers. Presets are anchored on today in
// the server's local clock; week runs Sunday to Saturday, trailing
// windows end today inclusive.
func ResolveStatisticsRange(query domain.StatisticsQuery, today time.Time) (domain.DateRange, error) {
	year, month, day := today.Date()
	midnight := time.Date(year, month, day, 0, 0, 0, 0, today.Location())

	switch query.Range {
	case domain.StatisticsRangeWeek:
		start := midnight.AddDate(0, 0, -int(midnight.Weekday()))
		return rangeOf(start, start.AddDate(0, 0, 6)), nil

	case domain.StatisticsRangeMonth:
		first := time.Date(year, month, 1, 0, 0, 0, 0, today.Location())
		return rangeOf(first, first.AddDate(0, 1, -1)), nil

	case domain.StatisticsRangeLast7Days:
		return rangeOf(midnight.AddDate(0, 0, -6), midnight), nil

	case domain.StatisticsRangeLast30Days:
		return rangeOf(midnight.AddDate(0, 0, -29), midnight), nil

	case domain.StatisticsRangeLast90Days:
		return rangeOf(midnight.AddDate(0, 0, -89), midnight), nil

	case domain.StatisticsRangeYear:
		first := time.Date(year, time.January, 1, 0, 0, 0, 0, today.Location())
		last := time.Date(year, time.December, 31, 0, 0, 0, 0, today.Location())
		return rangeOf(first, last), nil

	case domain.StatisticsRangeCustom:
		if query.StartDate == "" || query.EndDate == "" {
			return domain.DateRange{}, fmt.Errorf("%w: custom range requires both start and end dates", domain.ErrInvalidDateRange)
		}
		start, err := time.Parse(dayLayout, query.StartDate)
		if err != nil {
			return domain.DateRange{}, fmt.Errorf("%w: bad start date %q", domain.ErrInvalidDateRange, query.StartDate)
		}
		end, err := time.Parse(dayLayout, query.EndDate)
		if err != nil {
			return domain.DateRange{}, fmt.Errorf("%w: bad end date %q", domain.ErrInvalidDateRange, query.EndDate)
		}
		if end.Before(start) {
			return domain.DateRange{}, fmt.Errorf("%w: end date precedes start date", domain.ErrInvalidDateRange)
		}
		return domain.DateRange{StartDate: query.StartDate, EndDate: query.EndDate}, nil
	}

	return domain.DateRange{}, fmt.Errorf("%w: unsupported range type %q", domain.ErrInvalidDateRange, query.Range)
}

func rangeOf(start, end time.Time) domain.DateRange {
	return domain.DateRange{
		StartDate: start.Format(dayLayout),
		EndDate:   end.Format(dayLayout),
	}
}

// rangeBounds converts a resolved range into the fixed-UTC query window
// [start 00:00:00.000, end 23:59:59.999].
func rangeBounds(resolved domain.DateRange) (time.Time, time.Time, error) {
	start, err := time.ParseInLocation(dayLayout, resolved.StartDate, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: bad start date %q", domain.ErrInvalidDateRange, resolved.StartDate)
	}
	end, err := time.ParseInLocation(dayLayout, resolved.EndDate, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: bad end date %q", domain.ErrInvalidDateRange, resolved.EndDate)
	}
	return start, end.Add(24*time.Hour - time.Millisecond), nil
}
