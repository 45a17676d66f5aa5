package adapters

import (
	"fmt"
	"strings"
	"time"

	"github.com/kettleTeacues/yfinance/internal/feature/marketdata/domain/entity"
)

// Field は1カラム分のマッピングです。
// Sources は優先順の取得元フィールド名で、最初に「存在し、かつ変換できた」値を採用します。
type Field struct {
	Column  string
	Sources []string
	Kind    Kind
}

func num(col string, src ...string) Field      { return Field{Column: col, Sources: src, Kind: KindFloat} }
func integer(col string, src ...string) Field  { return Field{Column: col, Sources: src, Kind: KindInt} }
func text(col string, src ...string) Field     { return Field{Column: col, Sources: src, Kind: KindString} }
func flag(col string, src ...string) Field     { return Field{Column: col, Sources: src, Kind: KindBool} }
func unixTime(col string, src ...string) Field { return Field{Column: col, Sources: src, Kind: KindUnixTime} }
func date(col string, src ...string) Field     { return Field{Column: col, Sources: src, Kind: KindDate} }
func stamp(col string, src ...string) Field    { return Field{Column: col, Sources: src, Kind: KindTimestamp} }
func jsonb(col string, src ...string) Field    { return Field{Column: col, Sources: src, Kind: KindJSON} }

func (f Field) resolve(item entity.Item) (any, bool) {
	for _, src := range f.Sources {
		raw, ok := item.Lookup(src)
		if !ok {
			continue
		}
		if v, ok := coerce(f.Kind, raw); ok {
			return v, true
		}
	}
	return nil, false
}

// buildPatch は item から存在する値だけを取り出したカラム辞書を返します。
func buildPatch(fields []Field, item entity.Item) map[string]any {
	patch := make(map[string]any, len(fields))
	for _, f := range fields {
		if v, ok := f.resolve(item); ok {
			patch[f.Column] = v
		}
	}
	return patch
}

// normalizer converts a raw key value to its stored string form. Empty means "no key".
type normalizer func(v any) string

func date10(v any) string {
	d, ok := toDate(v)
	if !ok {
		return ""
	}
	return d.(string)
}

func ts24(v any) string {
	switch t := v.(type) {
	case time.Time:
		return t.Format(stampLayout)[:stampLen]
	case string:
		return stampString(strings.TrimSpace(t))
	}
	return keyString(v)
}

func trim(v any) string { return strings.TrimSpace(keyString(v)) }

// keyString は DB から読み出した値と取得値の双方を同じ文字列表現に揃えます。
func keyString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case []byte:
		return string(t)
	case time.Time:
		return t.Format(stampLayout)[:stampLen]
	case int64:
		return fmt.Sprintf("%d", t)
	case int:
		return fmt.Sprintf("%d", t)
	case float64:
		return fmt.Sprintf("%v", t)
	}
	return fmt.Sprint(v)
}

// keyPart は複合キーの1要素です。Source が空の場合は行ラベル（Row.Index）を使います。
type keyPart struct {
	Column string
	Source string
	Norm   normalizer
}

func (k keyPart) extract(row entity.Row) string {
	if k.Source == "" {
		return k.Norm(row.Index)
	}
	v, ok := row.Item.Lookup(k.Source)
	if !ok {
		return ""
	}
	return k.Norm(v)
}

// table はデータ領域ごとの保存ルールです。
type table struct {
	Name   string
	Key    []keyPart
	Fields []Field

	// PeriodScoped のテーブルは period_type ごとに既存行を読み込みます。
	// FixedPeriod が空でなければ Dataset.Variant の代わりに使います。
	PeriodScoped bool
	FixedPeriod  string

	// GlobalKey はキーがシンボルを跨いで一意であることを示します（news）。
	GlobalKey bool

	Skip   func(patch map[string]any) bool
	Derive func(patch, existing map[string]any, now time.Time)
}

func (t *table) period(ds entity.Dataset) string {
	if t.FixedPeriod != "" {
		return t.FixedPeriod
	}
	return ds.Variant
}

const keySep = "\x1f"

// keyOf は行の複合キーを返します。いずれかの要素が空なら ok=false です。
func (t *table) keyOf(row entity.Row) (string, []string, bool) {
	parts := make([]string, len(t.Key))
	for i, k := range t.Key {
		parts[i] = k.extract(row)
		if parts[i] == "" {
			return "", nil, false
		}
	}
	return strings.Join(parts, keySep), parts, true
}

// storedKey は既存行から複合キーを組み立てます。
func (t *table) storedKey(row map[string]any) string {
	parts := make([]string, len(t.Key))
	for i, k := range t.Key {
		parts[i] = k.Norm(row[k.Column])
	}
	return strings.Join(parts, keySep)
}
