package manualsync

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/skynet2/expense-tracker-sync/pkg/database"
	"github.com/skynet2/expense-tracker-sync/pkg/recurring"
)

// MaterializeRecurring turns every due recurring rule into expenses and advances the
// rule's next date. A rule stops at its first occurrence that could not be stored and is
// advanced only past the stored ones.
func (m *Manager) MaterializeRecurring(ctx context.Context) (*Result, error) {
	if err := m.begin(); err != nil {
		return nil, err
	}
	defer m.end()

	lg := zerolog.Ctx(ctx)

	rules, err := m.cfg.Local.Recurring.GetAll(ctx, "")
	if err != nil {
		m.recordError(ctx, operationRecurring, err)
		return nil, err
	}

	res := newResult(operationRecurring)
	rulesStats := res.stats(database.EntityRecurring)
	expenseStats := res.stats(database.EntityExpenses)
	now := m.now()

	for _, rule := range rules {
		rulesStats.Processed++

		if !recurring.Due(rule, now) {
			rulesStats.Skipped++
			continue
		}

		expenses, updated, matErr := recurring.Materialize(rule, now, m.cfg.NewID)
		if matErr != nil {
			res.addItemError(database.EntityRecurring, rule.ID, matErr)
			continue
		}

		added := 0
		failed := false

		for _, expense := range expenses {
			expenseStats.Processed++

			if _, addErr := m.tracked.Expenses.Add(ctx, expense, ""); addErr != nil {
				res.addItemError(database.EntityExpenses, expense.ID, addErr)
				failed = true

				break
			}

			added++
			expenseStats.Inserted++
		}

		if failed {
			if added == 0 {
				continue
			}

			// the failed occurrence stays due for the next run
			last := expenses[added-1].Date
			updated.LastMaterialized = &last
			updated.NextDate = expenses[added].Date
		}

		if _, err = m.tracked.Recurring.Update(ctx, updated, ""); err != nil {
			res.addItemError(database.EntityRecurring, rule.ID, err)
			continue
		}

		rulesStats.Updated++

		lg.Info().Str("rule", rule.ID).Int("expenses", added).Msg("materialized recurring rule")
	}

	m.finish(ctx, res, nil)
	res.Message = fmt.Sprintf("%d expenses created from %d rules", expenseStats.Inserted, rulesStats.Updated)

	return res, nil
}
