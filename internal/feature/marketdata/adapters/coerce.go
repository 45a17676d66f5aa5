package adapters

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"gorm.io/datatypes"
)

// Kind は保存先カラムの型です。取得値はこの型に変換してから書き込みます。
type Kind int

const (
	KindFloat Kind = iota
	KindInt
	KindString
	KindBool      // "true" / "false" の文字列で保存
	KindUnixTime  // UNIX 秒 → ローカル時刻の ISO 文字列
	KindDate      // YYYY-MM-DD
	KindTimestamp // 24 文字の ISO 文字列
	KindJSON
)

const (
	dateLayout  = "2006-01-02"
	stampLayout = "2006-01-02T15:04:05.000000Z"
	stampLen    = 24
)

// coerce は値を kind に変換します。変換できない場合は ok=false を返し、呼び出し側は欠損として扱います。
func coerce(kind Kind, v any) (any, bool) {
	if v == nil {
		return nil, false
	}
	switch kind {
	case KindFloat:
		return toFloat(v)
	case KindInt:
		return toInt(v)
	case KindString:
		return toText(v)
	case KindBool:
		return toBoolText(v)
	case KindUnixTime:
		return toUnixText(v)
	case KindDate:
		return toDate(v)
	case KindTimestamp:
		return toStamp(v)
	case KindJSON:
		return toJSON(v)
	}
	return nil, false
}

func toFloat(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint:
		f = float64(n)
	case uint64:
		f = float64(n)
	case json.Number:
		p, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = p
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return 0, false
		}
		p, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		f = p
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func toInt(v any) (any, bool) {
	if s, ok := v.(string); ok {
		if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
			return int64(n), true
		}
	}
	f, ok := toFloat(v)
	if !ok || f < math.MinInt64 || f >= math.MaxInt64 {
		return nil, false
	}
	return int64(f), true
}

func toText(v any) (any, bool) {
	switch s := v.(type) {
	case string:
		if s == "" {
			return nil, false
		}
		return s, true
	case bool:
		return strconv.FormatBool(s), true
	case time.Time:
		return s.Format(stampLayout)[:stampLen], true
	}
	if f, ok := toFloat(v); ok {
		return strconv.FormatFloat(f, 'f', -1, 64), true
	}
	return nil, false
}

func toBoolText(v any) (any, bool) {
	switch b := v.(type) {
	case bool:
		return strconv.FormatBool(b), true
	case string:
		s := strings.ToLower(strings.TrimSpace(b))
		if s == "true" || s == "false" {
			return s, true
		}
	}
	return nil, false
}

func toUnixText(v any) (any, bool) {
	if t, ok := v.(time.Time); ok {
		return t.Local().Format("2006-01-02T15:04:05"), true
	}
	if sec, ok := toFloat(v); ok {
		if sec == 0 {
			return nil, false
		}
		return time.Unix(int64(sec), 0).Local().Format("2006-01-02T15:04:05"), true
	}
	if s, ok := v.(string); ok && s != "" {
		return truncate(s, stampLen), true
	}
	return nil, false
}

func toDate(v any) (any, bool) {
	switch d := v.(type) {
	case []any:
		if len(d) == 0 {
			return nil, false
		}
		return toDate(d[0])
	case []string:
		if len(d) == 0 {
			return nil, false
		}
		return toDate(d[0])
	case time.Time:
		return d.Format(dateLayout), true
	case string:
		s := strings.TrimSpace(d)
		if s == "" {
			return nil, false
		}
		if t, ok := parseTime(s); ok {
			return t.Format(dateLayout), true
		}
		return truncate(s, len(dateLayout)), true
	}
	if sec, ok := toFloat(v); ok && sec != 0 {
		return time.Unix(int64(sec), 0).Local().Format(dateLayout), true
	}
	return nil, false
}

func toStamp(v any) (any, bool) {
	switch s := v.(type) {
	case time.Time:
		return s.Format(stampLayout)[:stampLen], true
	case string:
		s = strings.TrimSpace(s)
		if s == "" {
			return nil, false
		}
		return stampString(s), true
	}
	if sec, ok := toFloat(v); ok && sec != 0 {
		return time.Unix(int64(sec), 0).UTC().Format(stampLayout)[:stampLen], true
	}
	return nil, false
}

func toJSON(v any) (any, bool) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, false
	}
	return datatypes.JSON(b), true
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05-07:00",
	dateLayout,
}

// parseTime は日付文字列を解釈します。タイムゾーン付きの値は元のオフセットのまま扱います。
func parseTime(s string) (time.Time, bool) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// stampString は日時文字列を 24 文字の表現に揃えます。
// 解釈できた場合は元のオフセットの壁時計時刻で整形し、できない場合のみ先頭を切り出します。
func stampString(s string) string {
	if t, ok := parseTime(s); ok {
		return t.Format(stampLayout)[:stampLen]
	}
	return truncate(s, stampLen)
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
