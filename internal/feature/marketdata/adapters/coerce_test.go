package adapters

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCoerce(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		kind   Kind
		in     any
		want   any
		wantOK bool
	}{
		{name: "float from float", kind: KindFloat, in: 1.5, want: 1.5, wantOK: true},
		{name: "float from int64", kind: KindFloat, in: int64(3), want: 3.0, wantOK: true},
		{name: "float from numeric string", kind: KindFloat, in: " 2.25 ", want: 2.25, wantOK: true},
		{name: "float from json.Number", kind: KindFloat, in: json.Number("7"), want: 7.0, wantOK: true},
		{name: "float rejects NaN", kind: KindFloat, in: math.NaN(), wantOK: false},
		{name: "float rejects Inf", kind: KindFloat, in: math.Inf(1), wantOK: false},
		{name: "float rejects text", kind: KindFloat, in: "n/a", wantOK: false},
		{name: "float rejects bool", kind: KindFloat, in: true, wantOK: false},
		{name: "nil is absent", kind: KindFloat, in: nil, wantOK: false},
		{name: "int truncates float", kind: KindInt, in: 7.9, want: int64(7), wantOK: true},
		{name: "int from string", kind: KindInt, in: "12", want: int64(12), wantOK: true},
		{name: "int rejects text", kind: KindInt, in: "twelve", wantOK: false},
		{name: "int rejects overflow", kind: KindInt, in: 1e20, wantOK: false},
		{name: "int rejects negative overflow", kind: KindInt, in: -1e20, wantOK: false},
		{name: "int rejects overflowing string", kind: KindInt, in: "100000000000000000000", wantOK: false},
		{name: "int keeps large in-range value", kind: KindInt, in: 9e15, want: int64(9e15), wantOK: true},
		{name: "string keeps text", kind: KindString, in: "JPY", want: "JPY", wantOK: true},
		{name: "string from number", kind: KindString, in: 10.0, want: "10", wantOK: true},
		{name: "string rejects empty", kind: KindString, in: "", wantOK: false},
		{name: "string rejects map", kind: KindString, in: map[string]any{}, wantOK: false},
		{name: "bool from bool", kind: KindBool, in: true, want: "true", wantOK: true},
		{name: "bool lowercases string", kind: KindBool, in: "False", want: "false", wantOK: true},
		{name: "bool rejects number", kind: KindBool, in: 1.0, wantOK: false},
		{name: "unix zero is absent", kind: KindUnixTime, in: 0.0, wantOK: false},
		{name: "date from list", kind: KindDate, in: []any{"2024-08-01", "2024-08-05"}, want: "2024-08-01", wantOK: true},
		{name: "date from empty list", kind: KindDate, in: []any{}, wantOK: false},
		{name: "date from RFC3339", kind: KindDate, in: "2024-03-31T15:00:00Z", want: "2024-03-31", wantOK: true},
		{name: "date falls back to prefix", kind: KindDate, in: "2024-03-31 something", want: "2024-03-31", wantOK: true},
		{name: "date from time", kind: KindDate, in: time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC), want: "2024-03-31", wantOK: true},
		{name: "timestamp truncates", kind: KindTimestamp, in: "2024-05-07T06:30:00.000000Z", want: "2024-05-07T06:30:00.0000", wantOK: true},
		{name: "timestamp keeps offset wall clock", kind: KindTimestamp, in: "2024-05-07T15:30:00+09:00", want: "2024-05-07T15:30:00.0000", wantOK: true},
		{name: "timestamp from time", kind: KindTimestamp, in: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), want: "2024-01-02T00:00:00.0000", wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := coerce(tt.kind, tt.in)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestCoerce_UnixTime(t *testing.T) {
	t.Parallel()

	got, ok := coerce(KindUnixTime, 1711843200.0)
	assert.True(t, ok)
	assert.Equal(t, time.Unix(1711843200, 0).Local().Format("2006-01-02T15:04:05"), got)
}

func TestKeyNormalizers(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "2024-01-01", date10("2024-01-01T00:00:00.0000"))
	assert.Equal(t, "2024-01-01", date10(time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)))
	assert.Equal(t, "", date10(nil))
	assert.Equal(t, "2024-01-01T09:30:00.0000", ts24("2024-01-01T09:30:00.000000Z"))
	assert.Equal(t, "2024-01-01T00:00:00.0000", ts24("2024-01-01"))
	// オフセット付きは壁時計時刻のまま揃え、文字数で切らない
	assert.Equal(t, "2024-01-01T00:00:00.0000", ts24("2024-01-01T00:00:00+09:00"))
	assert.Equal(t, "2024-01-01T09:30:00.0000", ts24("2024-01-01 09:30:00-05:00"))
	assert.Equal(t, "2024-01-01T00:00:00.0000", ts24("2024-01-01T00:00:00.0000"))
	assert.Equal(t, "not a timestamp at all, ", ts24("not a timestamp at all, really"))
	assert.Equal(t, "2024-01-01T00:00:00.0000", ts24(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "Vanguard", trim("  Vanguard "))
	assert.Equal(t, "42", keyString(int64(42)))
	assert.Equal(t, "abc", keyString([]byte("abc")))
}
