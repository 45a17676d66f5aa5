package adapters

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"github.com/kettleTeacues/yfinance/internal/feature/marketdata/domain/entity"
	"github.com/kettleTeacues/yfinance/internal/feature/marketdata/usecase"
	platformdb "github.com/kettleTeacues/yfinance/internal/platform/db"
)

const insertBatchSize = 1000

type snapshotGorm struct {
	db  *gorm.DB
	now func() time.Time
}

var _ usecase.SnapshotRepository = (*snapshotGorm)(nil)

// NewSnapshotRepository はスナップショットを upsert するリポジトリを生成します。
func NewSnapshotRepository(db *gorm.DB) *snapshotGorm {
	return &snapshotGorm{db: db, now: time.Now}
}

// candidate は1件分の書き込み候補です。
type candidate struct {
	key   string
	parts []string
	patch map[string]any
}

// Upsert reconciles snap against the rows already stored for (symbol, dataset).
// Existing keys are updated in place, new keys are bulk-inserted, and the whole
// call runs in one transaction. It returns inserted + updated.
func (r *snapshotGorm) Upsert(ctx context.Context, symbol string, ds entity.Dataset, snap entity.Snapshot) (int, error) {
	t, err := tableFor(ds)
	if err != nil {
		return 0, err
	}
	return r.apply(ctx, t, symbol, t.period(ds), entity.Rows(snap))
}

func (r *snapshotGorm) apply(ctx context.Context, t *table, symbol, period string, rows []entity.Row) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	now := r.now()
	var touched int
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		n, err := reconcile(tx, t, symbol, period, rows, now)
		if err != nil {
			return err
		}
		touched = n
		return nil
	})
	if err != nil {
		if platformdb.IsUniqueViolation(err) {
			slog.Warn("unique key conflict; another writer may be ingesting the same symbol", "table", t.Name, "symbol", symbol)
		}
		return 0, fmt.Errorf("upsert %s: %w", t.Name, err)
	}
	return touched, nil
}

func reconcile(tx *gorm.DB, t *table, symbol, period string, rows []entity.Row, now time.Time) (int, error) {
	cands := make([]candidate, 0, len(rows))
	for _, row := range rows {
		key, parts, ok := t.keyOf(row)
		if !ok {
			continue
		}
		patch := buildPatch(t.Fields, row.Item)
		if len(patch) == 0 {
			continue
		}
		if t.Skip != nil && t.Skip(patch) {
			continue
		}
		cands = append(cands, candidate{key: key, parts: parts, patch: patch})
	}
	if len(cands) == 0 {
		return 0, nil
	}

	index, err := loadExisting(tx, t, symbol, period, cands)
	if err != nil {
		return 0, err
	}

	ts := nowStamp(now)
	var (
		inserts []map[string]interface{}
		pending = make(map[string]map[string]interface{})
		// 既存行への更新もキーごとに1回へまとめる
		updates     []string
		updatePatch = make(map[string]map[string]interface{})
	)
	for _, c := range cands {
		if row, ok := index[c.key]; ok {
			if t.Derive != nil {
				t.Derive(c.patch, row, now)
			}
			if staged, ok := updatePatch[c.key]; ok {
				for k, v := range c.patch {
					staged[k] = v
				}
				continue
			}
			updatePatch[c.key] = c.patch
			updates = append(updates, c.key)
			continue
		}

		if staged, ok := pending[c.key]; ok {
			if t.Derive != nil {
				t.Derive(c.patch, staged, now)
			}
			for k, v := range c.patch {
				staged[k] = v
			}
			continue
		}

		if t.Derive != nil {
			t.Derive(c.patch, nil, now)
		}
		m := make(map[string]interface{}, len(c.patch)+len(t.Key)+4)
		m["symbol"] = symbol
		if t.PeriodScoped {
			m["period_type"] = period
		}
		for i, k := range t.Key {
			m[k.Column] = c.parts[i]
		}
		for k, v := range c.patch {
			m[k] = v
		}
		m["created_at"] = ts
		m["updated_at"] = ts
		pending[c.key] = m
		inserts = append(inserts, m)
	}

	for _, key := range updates {
		row, patch := index[key], updatePatch[key]
		patch["updated_at"] = ts
		if err := tx.Table(t.Name).Where("id = ?", row["id"]).Updates(patch).Error; err != nil {
			return 0, platformdb.Wrap(fmt.Sprintf("update id=%v", row["id"]), err)
		}
	}

	for start := 0; start < len(inserts); start += insertBatchSize {
		end := min(start+insertBatchSize, len(inserts))
		if err := tx.Table(t.Name).Create(inserts[start:end]).Error; err != nil {
			return 0, platformdb.Wrap("insert", err)
		}
	}
	return len(inserts) + len(updates), nil
}

// loadExisting は対象スコープの既存行を1回だけ読み込み、複合キーで索引化します。
func loadExisting(tx *gorm.DB, t *table, symbol, period string, cands []candidate) (map[string]map[string]interface{}, error) {
	q := tx.Table(t.Name)
	if t.GlobalKey {
		ids := make([]string, 0, len(cands))
		for _, c := range cands {
			ids = append(ids, c.key)
		}
		q = q.Where(t.Key[0].Column+" IN ?", ids)
	} else {
		q = q.Where("symbol = ?", symbol)
		if t.PeriodScoped {
			q = q.Where("period_type = ?", period)
		}
	}

	var found []map[string]interface{}
	if err := q.Find(&found).Error; err != nil {
		return nil, platformdb.Wrap("load existing", err)
	}
	index := make(map[string]map[string]interface{}, len(found))
	for _, row := range found {
		index[t.storedKey(row)] = row
	}
	return index, nil
}

// nowStamp は created_at / updated_at 用の 24 文字のローカル時刻です。
func nowStamp(now time.Time) string {
	return now.Format("2006-01-02T15:04:05.000000")[:stampLen]
}
