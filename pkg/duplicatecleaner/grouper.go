package duplicatecleaner

import (
	"runtime"
	"sort"

	"github.com/cockroachdb/errors"
	"github.com/gammazero/workerpool"
	"github.com/samber/lo"

	"github.com/skynet2/expense-tracker-sync/pkg/common"
	"github.com/skynet2/expense-tracker-sync/pkg/database"
)

// FindDuplicates groups records that score as duplicates of a shared pivot. A record
// joins the group of the first earlier record it matches; it is not compared against
// the other members of that group.
func FindDuplicates(records []database.Expense) []Group {
	if len(records) < 2 {
		return nil
	}

	scores := scorePairs(records)
	processed := make([]bool, len(records))

	var groups []Group

	for i := range records {
		if processed[i] {
			continue
		}

		members := []database.Expense{records[i]}
		confidence := 100
		var reasons []string

		for j := i + 1; j < len(records); j++ {
			if processed[j] {
				continue
			}

			res := scores[i][j-i-1]
			if !res.IsDuplicate {
				continue
			}

			processed[j] = true
			members = append(members, records[j])
			reasons = append(reasons, res.Reasons...)

			if res.Confidence < confidence {
				confidence = res.Confidence
			}
		}

		if len(members) < 2 {
			continue
		}

		processed[i] = true
		groups = append(groups, newGroup(members, confidence, lo.Uniq(reasons)))
	}

	return groups
}

// scorePairs computes the upper triangle of the score matrix, one row per task.
func scorePairs(records []database.Expense) [][]Result {
	scores := make([][]Result, len(records))

	wp := workerpool.New(runtime.NumCPU())

	for i := range records {
		i := i

		wp.Submit(func() {
			row := make([]Result, 0, len(records)-i-1)
			for j := i + 1; j < len(records); j++ {
				row = append(row, Score(records[i], records[j]))
			}

			scores[i] = row
		})
	}

	wp.StopWait()

	return scores
}

func newGroup(members []database.Expense, confidence int, reasons []string) Group {
	sort.SliceStable(members, func(i, j int) bool {
		return members[i].RecencyTime().After(members[j].RecencyTime())
	})

	return Group{
		Transactions: members,
		ToKeep:       members[0],
		ToDelete:     append([]database.Expense{}, members[1:]...),
		Confidence:   confidence,
		Reasons:      reasons,
	}
}

// Keep makes id the surviving record of the group.
func (g *Group) Keep(id string) error {
	keep, ok := lo.Find(g.Transactions, func(item database.Expense) bool {
		return item.ID == id
	})
	if !ok {
		return errors.Wrapf(common.ErrValidation, "expense %s is not part of the group", id)
	}

	g.ToKeep = keep
	g.ToDelete = lo.Filter(g.Transactions, func(item database.Expense, _ int) bool {
		return item.ID != id
	})

	return nil
}
