package domain

type StatisticsRange string

const (
	StatisticsRangeWeek       StatisticsRange = "week"
	StatisticsRangeMonth      StatisticsRange = "month"
	StatisticsRangeLast7Days  StatisticsRange = "last7days"
	StatisticsRangeLast30Days StatisticsRange = "last30days"
	StatisticsRangeLast90Days StatisticsRange = "last90days"
	StatisticsRangeYear       StatisticsRange = "year"
	StatisticsRangeCustom     StatisticsRange = "custom"
)

func (r StatisticsRange) Valid() bool {
	switch r {
	case StatisticsRangeWeek, StatisticsRangeMonth, StatisticsRangeLast7Days,
		StatisticsRangeLast30Days, StatisticsRangeLast90Days,
		StatisticsRangeYear, StatisticsRangeCustom:
		return true
	}
	return false
}

type StatisticsQuery struct {
	Range StatisticsRange
	// StartDate and EndDate are YYYY-MM-DD and only consulted when
	// Range is StatisticsRangeCustom.
	StartDate string
	EndDate   string
}

type BucketCount struct {
	Total     int
	Completed int
}

type DateRange struct {
	StartDate string
	EndDate   string
}

// Statistics holds one pass of completion counts over a resolved date
// range. Both maps are sparse: a category or day with no tasks has no
// entry. Completion rates are left to callers.
type Statistics struct {
	CategoryStats  map[TaskCategory]BucketCount
	DailyStats     map[string]BucketCount
	TotalTasks     int
	CompletedTasks int
	DateRange      DateRange
}
