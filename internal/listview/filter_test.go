package listview

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type testRow struct {
	ts     time.Time
	id     string
	status string
	fields []string
}

func (r testRow) RowTime() time.Time     { return r.ts }
func (r testRow) RowStatus() string      { return r.status }
func (r testRow) SearchFields() []string { return r.fields }

func day(d int) time.Time {
	return time.Date(2026, time.March, d, 12, 0, 0, 0, time.UTC)
}

func sampleRows() []testRow {
	return []testRow{
		{id: "T1", ts: day(1), status: "SUCCESS", fields: []string{"T1", "Airtel", "9876543210"}},
		{id: "T2", ts: day(2), status: "FAILED", fields: []string{"T2", "Jio", "9876500000"}},
		{id: "T3", ts: day(3), status: "SUCCESS", fields: []string{"T3", "Airtel", "9123456789"}},
		{id: "T4", ts: day(4), status: "PENDING", fields: []string{"T4", "BBPS", "electricity"}},
		{id: "T5", ts: day(5), status: "SUCCESS", fields: []string{"T5", "Jio", "9000011111"}},
	}
}

func ids(rows []testRow) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.id)
	}
	return out
}

func TestFilter_Matches(t *testing.T) {
	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{name: "empty filter passes everything", filter: Filter{}, want: []string{"T5", "T4", "T3", "T2", "T1"}},
		{name: "status exact", filter: Filter{Status: "FAILED"}, want: []string{"T2"}},
		{name: "status is case-insensitive", filter: Filter{Status: "success"}, want: []string{"T5", "T3", "T1"}},
		{name: "ALL status passes everything", filter: Filter{Status: "ALL"}, want: []string{"T5", "T4", "T3", "T2", "T1"}},
		{name: "search matches any field", filter: Filter{Search: "airtel"}, want: []string{"T3", "T1"}},
		{name: "search trims whitespace", filter: Filter{Search: "  jio  "}, want: []string{"T5", "T2"}},
		{name: "search with no hits", filter: Filter{Search: "vodafone"}, want: []string{}},
		{name: "date range is inclusive of both ends", filter: Filter{StartDate: day(2), EndDate: day(4)}, want: []string{"T4", "T3", "T2"}},
		{name: "start only", filter: Filter{StartDate: day(4)}, want: []string{"T5", "T4"}},
		{name: "end only", filter: Filter{EndDate: day(2)}, want: []string{"T2", "T1"}},
		{name: "predicates combine conjunctively", filter: Filter{Status: "SUCCESS", Search: "jio", StartDate: day(2)}, want: []string{"T5"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(sampleRows(), tt.filter)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

// Because the predicates are independent, applying them one at a time in
// any order must always give the same rows as applying them together.
func TestFilter_OrderIndependent(t *testing.T) {
	rows := sampleRows()
	full := Filter{Status: "SUCCESS", Search: "9", StartDate: day(1), EndDate: day(5)}

	combined := Apply(rows, full)

	searchFirst := Apply(Apply(rows, Filter{Search: full.Search}), Filter{Status: full.Status, StartDate: full.StartDate, EndDate: full.EndDate})
	statusFirst := Apply(Apply(rows, Filter{Status: full.Status}), Filter{Search: full.Search, StartDate: full.StartDate, EndDate: full.EndDate})
	datesFirst := Apply(Apply(rows, Filter{StartDate: full.StartDate, EndDate: full.EndDate}), Filter{Search: full.Search, Status: full.Status})

	assert.Equal(t, ids(combined), ids(searchFirst))
	assert.Equal(t, ids(combined), ids(statusFirst))
	assert.Equal(t, ids(combined), ids(datesFirst))
}

func TestFilter_DateBoundaryTimes(t *testing.T) {
	bound := time.Date(2026, time.March, 3, 0, 0, 0, 0, time.UTC)
	rows := []testRow{
		{id: "start-of-day", ts: time.Date(2026, time.March, 3, 0, 0, 0, 0, time.UTC)},
		{id: "end-of-day", ts: time.Date(2026, time.March, 3, 23, 59, 59, 0, time.UTC)},
		{id: "next-midnight", ts: time.Date(2026, time.March, 4, 0, 0, 0, 0, time.UTC)},
	}

	got := Apply(rows, Filter{StartDate: bound, EndDate: bound})
	assert.Equal(t, []string{"end-of-day", "start-of-day"}, ids(got))
}

func TestApply_SortsNewestFirstStably(t *testing.T) {
	same := day(7)
	rows := []testRow{
		{id: "old", ts: day(1)},
		{id: "a", ts: same},
		{id: "b", ts: same},
		{id: "new", ts: day(9)},
	}

	got := Apply(rows, Filter{})
	assert.Equal(t, []string{"new", "a", "b", "old"}, ids(got))
}
