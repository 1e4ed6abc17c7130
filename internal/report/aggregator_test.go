package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParsePeriod(t *testing.T) {
	for _, valid := range []string{"day", "week", "month", "year", "all"} {
		p, err := ParsePeriod(valid)
		require.NoError(t, err)
		assert.Equal(t, Period(valid), p)
	}

	_, err := ParsePeriod("quarter")
	assert.Error(t, err)
}

func TestAggregateDay(t *testing.T) {
	ref := time.Date(2024, time.March, 15, 18, 30, 0, 0, time.UTC)
	entries := []Entry{
		{Date: date(2024, time.March, 15), Amount: 50},
		{Date: date(2024, time.March, 15), Amount: 30},
		{Date: date(2024, time.March, 14), Amount: 100},
		{Date: date(2024, time.March, 16), Amount: 100},
		{Date: date(2023, time.March, 15), Amount: 100},
	}

	got, err := Aggregate(entries, PeriodDay, ref)
	require.NoError(t, err)
	assert.Equal(t, Summary{Total: 80, Count: 2}, got)
}

func TestAggregateWeekIsRollingWindow(t *testing.T) {
	ref := date(2024, time.March, 15)
	entries := []Entry{
		{Date: date(2024, time.March, 15), Amount: 10},
		{Date: date(2024, time.March, 9), Amount: 20},
		// Exactly ref minus 7 days is excluded, the window is strict.
		{Date: date(2024, time.March, 8), Amount: 40},
		{Date: date(2024, time.March, 1), Amount: 80},
	}

	got, err := Aggregate(entries, PeriodWeek, ref)
	require.NoError(t, err)
	assert.Equal(t, Summary{Total: 30, Count: 2}, got)
}

func TestAggregateMonthMatchesAcrossYears(t *testing.T) {
	// The month window matches the month number only: March entries from
	// other years are included.
	ref := date(2024, time.March, 20)
	entries := []Entry{
		{Date: date(2024, time.March, 5), Amount: 50},
		{Date: date(2022, time.March, 9), Amount: 25},
		{Date: date(2024, time.April, 1), Amount: 100},
	}

	got, err := Aggregate(entries, PeriodMonth, ref)
	require.NoError(t, err)
	assert.Equal(t, Summary{Total: 75, Count: 2}, got)
}

func TestAggregateYear(t *testing.T) {
	ref := date(2024, time.June, 1)
	entries := []Entry{
		{Date: date(2024, time.January, 1), Amount: 10},
		{Date: date(2024, time.December, 31), Amount: 20},
		{Date: date(2023, time.June, 1), Amount: 100},
	}

	got, err := Aggregate(entries, PeriodYear, ref)
	require.NoError(t, err)
	assert.Equal(t, Summary{Total: 30, Count: 2}, got)
}

func TestAggregateAll(t *testing.T) {
	ref := date(2024, time.June, 1)
	entries := []Entry{
		{Date: date(1999, time.January, 1), Amount: 1},
		{Date: date(2024, time.June, 1), Amount: 2},
		{Date: date(2030, time.December, 25), Amount: 4},
	}

	got, err := Aggregate(entries, PeriodAll, ref)
	require.NoError(t, err)
	assert.Equal(t, Summary{Total: 7, Count: 3}, got)
}

func TestAggregateEmpty(t *testing.T) {
	got, err := Aggregate(nil, PeriodDay, date(2024, time.March, 15))
	require.NoError(t, err)
	assert.Equal(t, Summary{}, got)
}

func TestAggregateUnknownPeriod(t *testing.T) {
	_, err := Aggregate([]Entry{{Date: date(2024, time.March, 15), Amount: 1}}, Period("fortnight"), date(2024, time.March, 15))
	assert.Error(t, err)
}
