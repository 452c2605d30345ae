package cache

import (
	"time"
)

// TimeUntilNextUTCDay は次のUTC日付の0時までの期間を返します。
// 日足データは当日のうちは変化しないため、これを日足キャッシュのTTLに使います。
func TimeUntilNextUTCDay() time.Duration {
	now := time.Now().UTC()

	// 翌日の0時（UTC）を計算
	next := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).Add(24 * time.Hour)

	return next.Sub(now)
}
