// Package analyticsvc - Test các hàm aggregation dùng chung (groupBy, safeDivide, cumulativeShare).
package analyticsvc

import (
	"math"
	"testing"
	"time"
)

func TestGroupBy_GiuThuTuInsertion(t *testing.T) {
	items := []string{"ba", "aa", "bb", "ab", "bc"}
	groups, keys := GroupBy(items, func(s string) string { return s[:1] })

	if len(keys) != 2 {
		t.Fatalf("số keys = %d, muốn 2", len(keys))
	}
	// Key theo thứ tự xuất hiện đầu tiên: "b" trước "a"
	if keys[0] != "b" || keys[1] != "a" {
		t.Errorf("thứ tự keys = %v, muốn [b a]", keys)
	}
	b := groups["b"]
	if len(b) != 3 || b[0] != "ba" || b[1] != "bb" || b[2] != "bc" {
		t.Errorf("nhóm 'b' sai thứ tự insertion: %v", b)
	}
}

func TestGroupBy_InputRong(t *testing.T) {
	groups, keys := GroupBy(nil, func(i int) int { return i })
	if len(groups) != 0 || len(keys) != 0 {
		t.Errorf("input rỗng phải trả về nhóm rỗng, got %v / %v", groups, keys)
	}
}

func TestSafeDivide(t *testing.T) {
	if got := SafeDivide(10, 4, 0); got != 2.5 {
		t.Errorf("SafeDivide(10,4) = %v, muốn 2.5", got)
	}
	if got := SafeDivide(10, 0, -1); got != -1 {
		t.Errorf("mẫu số 0 phải trả fallback, got %v", got)
	}
	if got := SafeDivide(10, math.NaN(), 7); got != 7 {
		t.Errorf("mẫu số NaN phải trả fallback, got %v", got)
	}
	if got := SafeDivide(10, math.Inf(1), 7); got != 7 {
		t.Errorf("mẫu số Inf phải trả fallback, got %v", got)
	}
}

func TestCumulativeShare_ChuoiLuyKe(t *testing.T) {
	next := CumulativeShare([]float64{800, 150, 50})
	want := []float64{0.8, 0.95, 1.0}
	for i, w := range want {
		got, ok := next()
		if !ok {
			t.Fatalf("iterator kết thúc sớm tại bước %d", i)
		}
		if math.Abs(got-w) > 1e-9 {
			t.Errorf("bước %d: share = %v, muốn %v", i, got, w)
		}
	}
	if _, ok := next(); ok {
		t.Error("iterator phải kết thúc sau khi duyệt hết values")
	}
}

func TestCumulativeShare_Restartable(t *testing.T) {
	values := []float64{1, 1}

	// Hai iterator độc lập — không share state
	first := CumulativeShare(values)
	second := CumulativeShare(values)

	f1, _ := first()
	f2, _ := first()
	s1, _ := second()

	if f1 != 0.5 || f2 != 1.0 {
		t.Errorf("iterator 1 trả về %v, %v, muốn 0.5, 1.0", f1, f2)
	}
	if s1 != 0.5 {
		t.Errorf("iterator 2 phải bắt đầu lại từ đầu, got %v", s1)
	}
}

func TestCumulativeShare_TongBangKhong(t *testing.T) {
	next := CumulativeShare([]float64{0, 0, 0})
	for i := 0; i < 3; i++ {
		got, ok := next()
		if !ok {
			t.Fatalf("iterator kết thúc sớm tại bước %d", i)
		}
		if got != 0 {
			t.Errorf("tổng 0 thì mọi share phải là 0, got %v", got)
		}
	}
}

func TestGroupByMonth_BoQuaZeroTime(t *testing.T) {
	d1 := time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC)
	d3 := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	groups, keys := GroupByMonth([]time.Time{d1, {}, d2, d3})

	if len(keys) != 2 {
		t.Fatalf("số tháng = %d, muốn 2 (zero time phải bị bỏ qua)", len(keys))
	}
	if keys[0] != "2025-03" || keys[1] != "2025-04" {
		t.Errorf("thứ tự tháng = %v, muốn [2025-03 2025-04]", keys)
	}
	if len(groups["2025-03"]) != 2 {
		t.Errorf("tháng 2025-03 có %d mốc, muốn 2", len(groups["2025-03"]))
	}
}
