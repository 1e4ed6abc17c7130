// Package report computes revenue summaries over a named time window.
// It is store-free: callers hand it the dated amounts they want scoped.
package report

import (
	"fmt"
	"time"
)

// Period is a named reporting window.
type Period string

const (
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
	PeriodAll   Period = "all"
)

// ParsePeriod validates a caller-supplied period selector.
func ParsePeriod(s string) (Period, error) {
	switch p := Period(s); p {
	case PeriodDay, PeriodWeek, PeriodMonth, PeriodYear, PeriodAll:
		return p, nil
	}
	return "", fmt.Errorf("unknown period %q", s)
}

// Entry is one dated amount.
type Entry struct {
	Date   time.Time
	Amount float64
}

// Summary is the aggregate over the filtered entries.
type Summary struct {
	Total float64 `json:"total"`
	Count int     `json:"count"`
}

// Aggregate filters entries by period relative to ref and sums the amounts.
//
// Window semantics:
//   - day: same calendar date as ref.
//   - week: strictly after ref minus 7 days, a rolling window rather than a
//     calendar week.
//   - month: same month NUMBER as ref, in any year. March 2023 entries count
//     when reporting in March 2024.
//   - year: same calendar year as ref.
//   - all: everything.
func Aggregate(entries []Entry, period Period, ref time.Time) (Summary, error) {
	var summary Summary
	for _, e := range entries {
		match, err := Matches(e.Date, period, ref)
		if err != nil {
			return Summary{}, err
		}
		if match {
			summary.Total += e.Amount
			summary.Count++
		}
	}
	return summary, nil
}

// Matches reports whether date falls inside the period window around ref.
func Matches(date time.Time, period Period, ref time.Time) (bool, error) {
	switch period {
	case PeriodDay:
		ry, rm, rd := ref.Date()
		y, m, d := date.Date()
		return y == ry && m == rm && d == rd, nil
	case PeriodWeek:
		return date.After(ref.AddDate(0, 0, -7)), nil
	case PeriodMonth:
		return date.Month() == ref.Month(), nil
	case PeriodYear:
		return date.Year() == ref.Year(), nil
	case PeriodAll:
		return true, nil
	}
	return false, fmt.Errorf("unknown period %q", period)
}
