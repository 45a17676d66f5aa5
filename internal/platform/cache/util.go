package cache

import (
	"time"
)

var jst = loadJST()

func loadJST() *time.Location {
	loc, err := time.LoadLocation("Asia/Tokyo")
	if err != nil {
		return time.FixedZone("JST", 9*60*60)
	}
	return loc
}

// TimeUntilNext8AM は次の午前8時（日本時間）までの期間を返します。
// J-Quants の上場銘柄一覧は毎朝更新されるため、キャッシュの有効期限に使います。
func TimeUntilNext8AM() time.Duration {
	return untilNext8AM(time.Now())
}

func untilNext8AM(t time.Time) time.Duration {
	now := t.In(jst)
	next8am := time.Date(now.Year(), now.Month(), now.Day(), 8, 0, 0, 0, jst)

	// 今日の午前8時が既に過ぎている場合は明日の午前8時を使用
	if !now.Before(next8am) {
		next8am = next8am.AddDate(0, 0, 1)
	}
	return next8am.Sub(now)
}
