package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestItemLookup(t *testing.T) {
	t.Parallel()

	item := Item{
		"Total Revenue":   500.0,
		"Purchase Of PPE": -12.0,
		"provider": map[string]any{
			"displayName": "Reuters",
		},
		"ex_dividend_date": "2024-03-28",
	}

	tests := []struct {
		name   string
		key    string
		want   any
		wantOK bool
	}{
		{name: "exact", key: "Total Revenue", want: 500.0, wantOK: true},
		{name: "case insensitive", key: "Purchase Of Ppe", want: -12.0, wantOK: true},
		{name: "dotted path", key: "provider.displayName", want: "Reuters", wantOK: true},
		{name: "underscore vs space", key: "Ex Dividend Date", want: "2024-03-28", wantOK: true},
		{name: "missing", key: "Operating Revenue", wantOK: false},
		{name: "missing path", key: "provider.url", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := item.Lookup(tt.key)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestSnapshotHelpers(t *testing.T) {
	t.Parallel()

	assert.True(t, IsEmpty(Empty{}))
	assert.True(t, IsEmpty(Tabular{}))
	assert.True(t, IsEmpty(Single(nil)))

	keyed := Keyed{Entries: map[string]Item{
		"+1y": {"avg": 3.0},
		"0q":  {"avg": 1.0},
		"+1q": {"avg": 2.0},
	}}
	rows := Rows(keyed)
	assert.Len(t, rows, 3)
	assert.Equal(t, []string{"+1q", "+1y", "0q"}, []string{rows[0].Index, rows[1].Index, rows[2].Index})

	single := Single(Item{"currency": "JPY"})
	assert.Equal(t, 1, Len(single))
}

func TestParseDataset(t *testing.T) {
	t.Parallel()

	ds, err := ParseDataset("history:1m")
	assert.NoError(t, err)
	assert.Equal(t, Dataset{Domain: DomainHistory, Variant: Interval1m}, ds)
	assert.Equal(t, "history:1m", ds.String())

	ds, err = ParseDataset("news")
	assert.NoError(t, err)
	assert.Equal(t, "news", ds.String())

	for _, bad := range []string{"history", "history:1h", "balancesheet:monthly", "news:1d", "unknown"} {
		_, err := ParseDataset(bad)
		assert.ErrorIs(t, err, ErrUnknownDataset, bad)
	}
}

func TestReportAdd(t *testing.T) {
	t.Parallel()

	var r Report
	r.Add(Result{Symbol: "7974.T", Dataset: Dataset{Domain: DomainInfo}, Rows: 1})
	r.Add(Result{Symbol: "7974.T", Dataset: Dataset{Domain: DomainNews}, Err: &FetchError{
		Symbol: "7974.T", Dataset: Dataset{Domain: DomainNews}, Stage: StageFetch, Err: assert.AnError,
	}})

	assert.Equal(t, 2, r.Datasets)
	assert.Equal(t, 1, r.Rows)
	assert.Equal(t, 1, r.Failures)
	assert.Len(t, r.Errors, 1)
	assert.Contains(t, r.Errors[0], "7974.T news fetch")
}
