package recurring

import (
	"time"

	"github.com/cockroachdb/errors"

	"github.com/skynet2/expense-tracker-sync/pkg/common"
	"github.com/skynet2/expense-tracker-sync/pkg/database"
)

// MaxOccurrences bounds a single Materialize call. A rule far behind catches up over
// several calls.
const MaxOccurrences = 500

// NextDate returns the occurrence after from. Month based frequencies clamp to the end
// of short months and go back to anchorDay once the month is long enough.
func NextDate(freq database.Frequency, from time.Time, anchorDay int) (time.Time, error) {
	switch freq {
	case database.FrequencyDaily:
		return from.AddDate(0, 0, 1), nil
	case database.FrequencyWeekly:
		return from.AddDate(0, 0, 7), nil
	case database.FrequencyBiweekly:
		return from.AddDate(0, 0, 14), nil
	case database.FrequencyMonthly:
		return addMonths(from, 1, anchorDay), nil
	case database.FrequencyQuarterly:
		return addMonths(from, 3, anchorDay), nil
	case database.FrequencyAnnually:
		return addMonths(from, 12, anchorDay), nil
	default:
		return time.Time{}, errors.Wrapf(common.ErrValidation, "unknown frequency %q", freq)
	}
}

func addMonths(from time.Time, months int, anchorDay int) time.Time {
	if anchorDay <= 0 {
		anchorDay = from.Day()
	}

	firstOfMonth := time.Date(from.Year(), from.Month()+time.Month(months), 1,
		from.Hour(), from.Minute(), from.Second(), from.Nanosecond(), from.Location())

	day := anchorDay
	if last := daysIn(firstOfMonth); day > last {
		day = last
	}

	return firstOfMonth.AddDate(0, 0, day-1)
}

func daysIn(month time.Time) int {
	return time.Date(month.Year(), month.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Materialize emits an expense for every due date of the rule up to now and returns
// the rule advanced past them.
func Materialize(
	rule database.RecurringRule,
	now time.Time,
	newID func() string,
) ([]database.Expense, database.RecurringRule, error) {
	if rule.StartDate.IsZero() {
		return nil, rule, errors.Wrapf(common.ErrValidation, "recurring rule %s has no start date", rule.ID)
	}

	next := rule.NextDate
	if next.IsZero() || next.Before(rule.StartDate) {
		next = rule.StartDate
	}

	anchor := rule.StartDate.Day()
	today := truncateDay(now)

	var expenses []database.Expense

	for len(expenses) < MaxOccurrences && !truncateDay(next).After(today) {
		if rule.EndDate != nil && truncateDay(next).After(truncateDay(*rule.EndDate)) {
			break
		}

		expenses = append(expenses, database.Expense{
			ID:          newID(),
			Amount:      rule.Amount,
			Description: rule.Description,
			Category:    rule.Category,
			WalletID:    rule.WalletID,
			Date:        next,
			CreatedAt:   now.UTC(),
			IsIncome:    rule.IsIncome,
			Tags:        append([]string{}, rule.Tags...),
			Notes:       rule.Notes,
		})

		materialized := next
		rule.LastMaterialized = &materialized

		advanced, err := NextDate(rule.Frequency, next, anchor)
		if err != nil {
			return nil, rule, err
		}

		next = advanced
	}

	rule.NextDate = next

	return expenses, rule, nil
}

// Due reports whether the rule has at least one occurrence at or before now.
func Due(rule database.RecurringRule, now time.Time) bool {
	next := rule.NextDate
	if next.IsZero() {
		next = rule.StartDate
	}

	if next.IsZero() || truncateDay(next).After(truncateDay(now)) {
		return false
	}

	return rule.EndDate == nil || !truncateDay(next).After(truncateDay(*rule.EndDate))
}

func truncateDay(t time.Time) time.Time {
	t = t.UTC()

	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
