package duplicatecleaner

import (
	"crypto/sha512"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
	"github.com/shopspring/decimal"

	"github.com/skynet2/expense-tracker-sync/pkg/database"
)

var amountTolerance = decimal.RequireFromString("0.01")

// Score compares two expenses field by field. Secondary signals only add up when at
// least one of amount, description or date matched, so two records that share nothing
// but defaults never look alike.
func Score(a database.Expense, b database.Expense) Result {
	if a.ID != "" && a.ID == b.ID {
		return Result{
			IsDuplicate: true,
			Confidence:  100,
			Reasons:     []string{"identical id"},
		}
	}

	var (
		confidence int
		reasons    []string
		primary    bool
	)

	add := func(points int, reason string) {
		confidence += points
		reasons = append(reasons, reason)
	}

	if a.Amount.Sub(b.Amount).Abs().LessThan(amountTolerance) {
		add(35, "same amount")
		primary = true
	}

	descA := normalize(a.Description)
	descB := normalize(b.Description)

	if descA != "" && descB != "" {
		switch similarity := Similarity(descA, descB); {
		case descA == descB:
			add(30, "identical description")
			primary = true
		case similarity > 0.8:
			add(20, "very similar description")
			primary = true
		case similarity > 0.6:
			add(10, "similar description")
			primary = true
		}
	}

	if !a.Date.IsZero() && !b.Date.IsZero() {
		switch diff := absDuration(a.Date.Sub(b.Date)); {
		case sameDay(a.Date, b.Date):
			add(25, "same date")
			primary = true
		case diff <= 24*time.Hour:
			add(15, "within 24 hours")
			primary = true
		case diff <= 48*time.Hour:
			add(5, "within 48 hours")
			primary = true
		}
	}

	if primary {
		if a.Category != "" && a.Category == b.Category {
			add(10, "same category")
		}

		if a.WalletID != "" && a.WalletID == b.WalletID {
			add(10, "same wallet")
		}

		if a.IsIncome == b.IsIncome {
			add(5, "same type")
		}

		if strings.TrimSpace(a.Notes) != "" && a.Notes == b.Notes {
			add(5, "identical notes")
		}

		if !a.CreatedAt.IsZero() && !b.CreatedAt.IsZero() {
			switch diff := absDuration(a.CreatedAt.Sub(b.CreatedAt)); {
			case diff <= 5*time.Minute:
				add(15, "created within 5 minutes")
			case diff <= 30*time.Minute:
				add(10, "created within 30 minutes")
			}
		}
	}

	if confidence > 100 {
		confidence = 100
	}

	return Result{
		IsDuplicate: confidence >= DuplicateThreshold,
		Confidence:  confidence,
		Reasons:     reasons,
	}
}

// Similarity is 1 - levenshtein distance / longest length, over runes.
func Similarity(a string, b string) float64 {
	longest := utf8.RuneCountInString(a)
	if l := utf8.RuneCountInString(b); l > longest {
		longest = l
	}

	if longest == 0 {
		return 1
	}

	return 1 - float64(levenshtein.ComputeDistance(a, b))/float64(longest)
}

// Fingerprint is a coarse bucketing key of amount, description, date, wallet and type.
func Fingerprint(e database.Expense) string {
	key := fmt.Sprintf("%s|%s|%s|%s|%s",
		e.Amount.StringFixed(2),
		normalize(e.Description),
		e.Date.UTC().Format(time.DateOnly),
		e.WalletID,
		e.TypeLabel(),
	)

	shaImpl := sha512.New()
	shaImpl.Write([]byte(key))

	return fmt.Sprintf("%x", shaImpl.Sum(nil))
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func sameDay(a time.Time, b time.Time) bool {
	a = a.UTC()
	b = b.UTC()

	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}

	return d
}
