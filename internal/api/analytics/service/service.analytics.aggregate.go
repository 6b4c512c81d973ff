// Package analyticsvc - Analytics & Scoring Engine: các hàm thuần tính metrics
// từ records đã load sẵn (inventory, loyalty, goal) + AnalyticsService orchestration.
package analyticsvc

import (
	"math"
	"time"
)

// GroupBy nhóm items theo key, giữ nguyên thứ tự insertion trong từng nhóm.
// Trả về thêm danh sách keys theo thứ tự xuất hiện đầu tiên để caller iterate ổn định.
func GroupBy[T any, K comparable](items []T, keyFn func(T) K) (map[K][]T, []K) {
	groups := make(map[K][]T)
	keys := make([]K, 0)
	for _, item := range items {
		k := keyFn(item)
		if _, exists := groups[k]; !exists {
			keys = append(keys, k)
		}
		groups[k] = append(groups[k], item)
	}
	return groups, keys
}

// SafeDivide chia num/den, trả về fallback khi mẫu số bằng 0 hoặc không hữu hạn.
func SafeDivide(num, den, fallback float64) float64 {
	if den == 0 || math.IsNaN(den) || math.IsInf(den, 0) {
		return fallback
	}
	return num / den
}

// CumulativeShare trả về iterator lazy qua tỷ lệ lũy kế của từng value trên tổng.
// Mỗi lần gọi CumulativeShare tạo iterator mới — không share state giữa các lần duyệt.
// Tổng bằng 0 thì mọi tỷ lệ đều 0.
//
// Example:
//
//	next := CumulativeShare([]float64{800, 150, 50})
//	for share, ok := next(); ok; share, ok = next() { ... } // 0.8, 0.95, 1.0
func CumulativeShare(values []float64) func() (float64, bool) {
	var total float64
	for _, v := range values {
		total += v
	}

	i := 0
	var running float64
	return func() (float64, bool) {
		if i >= len(values) {
			return 0, false
		}
		running += values[i]
		i++
		if total == 0 {
			return 0, true
		}
		return running / total, true
	}
}

// GroupByMonth nhóm các mốc thời gian theo tháng (key "YYYY-MM").
// Zero time bị bỏ qua (ngày không parse được không làm hỏng aggregate).
func GroupByMonth(dates []time.Time) (map[string][]time.Time, []string) {
	valid := make([]time.Time, 0, len(dates))
	for _, d := range dates {
		if d.IsZero() {
			continue
		}
		valid = append(valid, d)
	}
	return GroupBy(valid, func(d time.Time) string {
		return d.Format("2006-01")
	})
}
