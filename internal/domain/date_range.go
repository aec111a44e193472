package domain

import "time"

type DateRangeKey string

const (
	DateRangeToday      DateRangeKey = "today"
	DateRange7Days      DateRangeKey = "7d"
	DateRange30Days     DateRangeKey = "30d"
	DateRange90Days     DateRangeKey = "90d"
	DefaultDateRangeKey              = DateRange30Days
)

var dateRangeDays = map[DateRangeKey]int{
	DateRangeToday:  0,
	DateRange7Days:  7,
	DateRange30Days: 30,
	DateRange90Days: 90,
}

// ParseDateRangeKey devolve o padrão (30d) para chaves desconhecidas
func ParseDateRangeKey(s string) DateRangeKey {
	key := DateRangeKey(s)
	if _, ok := dateRangeDays[key]; ok {
		return key
	}
	return DefaultDateRangeKey
}

// Bounds devolve o início (N dias antes de hoje) e o fim (hoje), em dias inteiros
func (k DateRangeKey) Bounds(now time.Time) (time.Time, time.Time) {
	days, ok := dateRangeDays[k]
	if !ok {
		days = dateRangeDays[DefaultDateRangeKey]
	}
	end := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return end.AddDate(0, 0, -days), end
}
