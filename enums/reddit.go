package enums

// SearchSort is the result ordering accepted by Reddit's search endpoint.
type SearchSort string

const (
	SortRelevance SearchSort = "relevance"
	SortHot       SearchSort = "hot"
	SortTop       SearchSort = "top"
	SortNew       SearchSort = "new"
	SortComments  SearchSort = "comments"
)

func SearchSorts() []string {
	return []string{
		string(SortRelevance),
		string(SortHot),
		string(SortTop),
		string(SortNew),
		string(SortComments),
	}
}

// TimeWindow is the time filter accepted by Reddit's search and top endpoints.
type TimeWindow string

const (
	TimeHour  TimeWindow = "hour"
	TimeDay   TimeWindow = "day"
	TimeWeek  TimeWindow = "week"
	TimeMonth TimeWindow = "month"
	TimeYear  TimeWindow = "year"
	TimeAll   TimeWindow = "all"
)

func TimeWindows() []string {
	return []string{
		string(TimeHour),
		string(TimeDay),
		string(TimeWeek),
		string(TimeMonth),
		string(TimeYear),
		string(TimeAll),
	}
}
