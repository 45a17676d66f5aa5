// Package entity defines the domain models for the marketdata feature.
package entity

import (
	"sort"
	"strings"
)

// Item は1件分の取得データ（フィールド名 → 値）です。
// 値は JSON デコード直後の形（float64, string, bool, map, slice, nil）を想定します。
type Item map[string]any

// Lookup はフィールド値を取得します。
// 完全一致が無い場合、"a.b" 形式のネストしたパスを辿り、
// それでも見つからなければ大文字小文字と空白を無視した名前で照合します。
func (it Item) Lookup(name string) (any, bool) {
	if it == nil {
		return nil, false
	}
	if v, ok := it[name]; ok {
		return v, true
	}
	if strings.Contains(name, ".") {
		if v, ok := lookupPath(it, strings.Split(name, ".")); ok {
			return v, true
		}
	}
	want := looseKey(name)
	for k, v := range it {
		if looseKey(k) == want {
			return v, true
		}
	}
	return nil, false
}

func lookupPath(m map[string]any, path []string) (any, bool) {
	var cur any = m
	for _, p := range path {
		switch node := cur.(type) {
		case Item:
			v, ok := node[p]
			if !ok {
				return nil, false
			}
			cur = v
		case map[string]any:
			v, ok := node[p]
			if !ok {
				return nil, false
			}
			cur = v
		default:
			return nil, false
		}
	}
	return cur, true
}

func looseKey(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if r == ' ' || r == '_' || r == '-' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Row は表形式スナップショットの1行です。Index には日付などの行ラベルが入ります。
type Row struct {
	Index string
	Item  Item
}

// Snapshot は1銘柄・1データ領域分の取得結果です。
// Empty, Tabular, Keyed のいずれかで、利用側は型スイッチで分岐します。
type Snapshot interface {
	isSnapshot()
}

// Empty はデータが存在しなかったことを表します。
type Empty struct{}

// Tabular は行ラベル付きの表形式データです（株価履歴、財務諸表など）。
type Tabular struct {
	Rows []Row
}

// Keyed は識別子（"0q", "+1y" など）ごとのフィールド辞書です。
type Keyed struct {
	Entries map[string]Item
}

func (Empty) isSnapshot()   {}
func (Tabular) isSnapshot() {}
func (Keyed) isSnapshot()   {}

// SingleKey is the entry key used by snapshots that describe one record per symbol.
const SingleKey = "_"

// Single wraps a single field dict. A nil or empty item yields Empty.
func Single(item Item) Snapshot {
	if len(item) == 0 {
		return Empty{}
	}
	return Keyed{Entries: map[string]Item{SingleKey: item}}
}

// IsEmpty reports whether the snapshot carries no records.
func IsEmpty(s Snapshot) bool {
	return Len(s) == 0
}

// Len returns the number of records in the snapshot.
func Len(s Snapshot) int {
	switch v := s.(type) {
	case Tabular:
		return len(v.Rows)
	case Keyed:
		return len(v.Entries)
	default:
		return 0
	}
}

// Rows は Tabular / Keyed を行の列に揃えて返します。Keyed はキー順に並べます。
func Rows(s Snapshot) []Row {
	switch v := s.(type) {
	case Tabular:
		return v.Rows
	case Keyed:
		keys := make([]string, 0, len(v.Entries))
		for k := range v.Entries {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		rows := make([]Row, 0, len(keys))
		for _, k := range keys {
			rows = append(rows, Row{Index: k, Item: v.Entries[k]})
		}
		return rows
	default:
		return nil
	}
}
