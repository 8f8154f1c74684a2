package service

import (
	"fmt"
	"time"

	"fintrack/models"

	"github.com/teambition/rrule-go"
)

const (
	DefaultOccurrences = 6
	MaxOccurrences     = 24
)

var recurrenceFreq = map[models.RecurrencePeriod]rrule.Frequency{
	models.RecurrenceWeekly:  rrule.WEEKLY,
	models.RecurrenceMonthly: rrule.MONTHLY,
	models.RecurrenceYearly:  rrule.YEARLY,
}

// NextOccurrences 以交易日期为起点，返回 after 之后的 count 个日期
// 非周期交易返回空列表；count 超出范围时回落到默认值或上限
func NextOccurrences(tx models.Transaction, after time.Time, count int) ([]time.Time, error) {
	dates := make([]time.Time, 0)
	if !tx.IsRecurring || tx.RecurringType == "" {
		return dates, nil
	}
	freq, ok := recurrenceFreq[tx.RecurringType]
	if !ok {
		return nil, fmt.Errorf("unknown recurrence period %q", tx.RecurringType)
	}
	if count <= 0 {
		count = DefaultOccurrences
	}
	if count > MaxOccurrences {
		count = MaxOccurrences
	}

	rule, err := rrule.NewRRule(rrule.ROption{Freq: freq, Dtstart: tx.Date})
	if err != nil {
		return nil, err
	}
	cursor := after
	for len(dates) < count {
		next := rule.After(cursor, false)
		if next.IsZero() {
			break
		}
		dates = append(dates, next)
		cursor = next
	}
	return dates, nil
}
