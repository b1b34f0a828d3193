package analytics

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidRange = errors.New("invalid analytics range")

const dateLayout = "2006-01-02"

// RangeQuery is the raw, user-supplied form of a Filter.
type RangeQuery struct {
	TimeRange    string
	FromDate     string
	ToDate       string
	InitiativeID string
}

// ParseRange turns a RangeQuery into a Filter in UTC day granularity.
// An explicit fromDate/toDate pair wins over timeRange; with neither,
// the last defaultDays days up to and including today are used.
func ParseRange(q RangeQuery, now time.Time, defaultDays int) (Filter, error) {
	var f Filter

	if q.InitiativeID != "" {
		id, err := uuid.Parse(q.InitiativeID)
		if err != nil {
			return Filter{}, fmt.Errorf("%w: initiativeId is not a valid id", ErrInvalidRange)
		}

		f.InitiativeID = &id
	}

	today := startOfDay(now)

	switch {
	case q.FromDate != "" || q.ToDate != "":
		if q.FromDate == "" || q.ToDate == "" {
			return Filter{}, fmt.Errorf("%w: fromDate and toDate must be given together", ErrInvalidRange)
		}

		from, err := time.Parse(dateLayout, q.FromDate)
		if err != nil {
			return Filter{}, fmt.Errorf("%w: fromDate must be YYYY-MM-DD", ErrInvalidRange)
		}

		to, err := time.Parse(dateLayout, q.ToDate)
		if err != nil {
			return Filter{}, fmt.Errorf("%w: toDate must be YYYY-MM-DD", ErrInvalidRange)
		}

		if to.Before(from) {
			return Filter{}, fmt.Errorf("%w: toDate is before fromDate", ErrInvalidRange)
		}

		f.From = from
		f.To = to.AddDate(0, 0, 1)
	default:
		days := defaultDays

		if q.TimeRange != "" {
			n, err := strconv.Atoi(q.TimeRange)
			if err != nil || n < 1 {
				return Filter{}, fmt.Errorf("%w: timeRange must be a positive number of days", ErrInvalidRange)
			}

			days = n
		}

		f.To = today.AddDate(0, 0, 1)
		f.From = f.To.AddDate(0, 0, -days)
	}

	return f, nil
}

func startOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// cacheKey identifies a filter in the report cache.
func (f Filter) cacheKey(minimum string) string {
	initiativeID := "all"
	if f.InitiativeID != nil {
		initiativeID = f.InitiativeID.String()
	}

	return fmt.Sprintf("pledger:analytics:%s:%s:%s:%s",
		f.From.Format(dateLayout), f.To.Format(dateLayout), initiativeID, minimum)
}
