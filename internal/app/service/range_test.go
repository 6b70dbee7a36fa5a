package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/go-to-sky/onelife/internal/core/domain"
)

func TestResolveStatisticsRange_Presets(t *testing.T) {
	// 2026-03-18 is a Wednesday.
	today := time.Date(2026, 3, 18, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name  string
		query domain.StatisticsQuery
		want  domain.DateRange
	}{
		{
			name:  "week runs sunday to saturday",
			query: domain.StatisticsQuery{Range: domain.StatisticsRangeWeek},
			want:  domain.DateRange{StartDate: "2026-03-15", EndDate: "2026-03-21"},
		},
		{
			name:  "month covers the whole calendar month",
			query: domain.StatisticsQuery{Range: domain.StatisticsRangeMonth},
			want:  domain.DateRange{StartDate: "2026-03-01", EndDate: "2026-03-31"},
		},
		{
			name:  "last7days ends today inclusive",
			query: domain.StatisticsQuery{Range: domain.StatisticsRangeLast7Days},
			want:  domain.DateRange{StartDate: "2026-03-12", EndDate: "2026-03-18"},
		},
		{
			name:  "last30days ends today inclusive",
			query: domain.StatisticsQuery{Range: domain.StatisticsRangeLast30Days},
			want:  domain.DateRange{StartDate: "2026-02-17", EndDate: "2026-03-18"},
		},
		{
			name:  "last90days ends today inclusive",
			query: domain.StatisticsQuery{Range: domain.StatisticsRangeLast90Days},
			want:  domain.DateRange{StartDate: "2025-12-19", EndDate: "2026-03-18"},
		},
		{
			name:  "year covers the whole calendar year",
			query: domain.StatisticsQuery{Range: domain.StatisticsRangeYear},
			want:  domain.DateRange{StartDate: "2026-01-01", EndDate: "2026-12-31"},
		},
		{
			name: "custom passes through",
			query: domain.StatisticsQuery{
				Range:     domain.StatisticsRangeCustom,
				StartDate: "2026-01-10",
				EndDate:   "2026-01-20",
			},
			want: domain.DateRange{StartDate: "2026-01-10", EndDate: "2026-01-20"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveStatisticsRange(tt.query, today)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestResolveStatisticsRange_WeekOnSunday(t *testing.T) {
	// On a Sunday the week starts today.
	today := time.Date(2026, 3, 15, 8, 0, 0, 0, time.UTC)
	got, err := ResolveStatisticsRange(domain.StatisticsQuery{Range: domain.StatisticsRangeWeek}, today)
	require.NoError(t, err)
	require.Equal(t, domain.DateRange{StartDate: "2026-03-15", EndDate: "2026-03-21"}, got)
}

func TestResolveStatisticsRange_CustomErrors(t *testing.T) {
	today := time.Date(2026, 3, 18, 0, 0, 0, 0, time.UTC)

	cases := []domain.StatisticsQuery{
		{Range: domain.StatisticsRangeCustom},
		{Range: domain.StatisticsRangeCustom, StartDate: "2026-01-10"},
		{Range: domain.StatisticsRangeCustom, StartDate: "not-a-date", EndDate: "2026-01-20"},
		{Range: domain.StatisticsRangeCustom, StartDate: "2026-01-10", EndDate: "20/01/2026"},
		{Range: domain.StatisticsRangeCustom, StartDate: "2026-01-20", EndDate: "2026-01-10"},
		{Range: "fortnight"},
	}
	for _, query := range cases {
		_, err := ResolveStatisticsRange(query, today)
		require.ErrorIs(t, err, domain.ErrInvalidDateRange)
	}
}

func TestRangeBounds(t *testing.T) {
	start, end, err := rangeBounds(domain.DateRange{StartDate: "2026-03-12", EndDate: "2026-03-18"})
	require.NoError(t, err)
	require.Equal(t, time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC), start)
	require.Equal(t, time.Date(2026, 3, 18, 23, 59, 59, 999000000, time.UTC), end)
}
