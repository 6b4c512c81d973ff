// Package analyticsvc - Test loyalty scoring: chu kỳ ghé thăm, hạng, churn thresholds.
package analyticsvc

import (
	"testing"
	"time"

	"salon_manager/internal/api/analytics/models"
)

var loyaltyNow = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

func visitsEvery(days int, count int) []time.Time {
	visits := make([]time.Time, 0, count)
	d := loyaltyNow
	for i := 0; i < count; i++ {
		visits = append(visits, d)
		d = d.AddDate(0, 0, -days)
	}
	return visits
}

func TestComputeAverageVisitInterval(t *testing.T) {
	// 3 lượt cách nhau 10 ngày → trung bình 10
	visits := visitsEvery(10, 3)
	if got := ComputeAverageVisitInterval(visits); got != 10 {
		t.Errorf("avgInterval = %d, muốn 10", got)
	}

	// Dưới 2 lượt → 0
	if got := ComputeAverageVisitInterval(visits[:1]); got != 0 {
		t.Errorf("1 lượt phải trả 0, got %d", got)
	}
	if got := ComputeAverageVisitInterval(nil); got != 0 {
		t.Errorf("không có lượt nào phải trả 0, got %d", got)
	}
}

func TestComputeAverageVisitInterval_BoQuaKhoangCachKhongDuong(t *testing.T) {
	base := loyaltyNow
	// 2 lượt trùng ngày + 1 lượt cách 20 ngày → chỉ tính khoảng cách 20
	visits := []time.Time{base, base, base.AddDate(0, 0, 20)}
	if got := ComputeAverageVisitInterval(visits); got != 20 {
		t.Errorf("khoảng cách 0 phải bị bỏ qua (không kéo trung bình về), got %d", got)
	}
}

func TestComputeAverageVisitInterval_BoQuaZeroTime(t *testing.T) {
	visits := []time.Time{loyaltyNow, {}, loyaltyNow.AddDate(0, 0, -14)}
	if got := ComputeAverageVisitInterval(visits); got != 14 {
		t.Errorf("zero time phải bị loại trước khi tính, got %d", got)
	}
}

func TestComputeAverageVisitInterval_KhongSortTruoc(t *testing.T) {
	// Input không theo thứ tự — hàm tự sort ascending
	visits := []time.Time{
		loyaltyNow.AddDate(0, 0, -10),
		loyaltyNow,
		loyaltyNow.AddDate(0, 0, -20),
	}
	if got := ComputeAverageVisitInterval(visits); got != 10 {
		t.Errorf("avgInterval với input lộn xộn = %d, muốn 10", got)
	}
}

func TestComputeLoyaltyTier_ThuTuDanhGia(t *testing.T) {
	cases := []struct {
		visits   int
		interval int
		want     string
	}{
		// Boundary: đúng 10 lượt, chu kỳ 45 ngày → rule visits ≥ 10 thắng dù interval nói medium
		{10, 45, models.LoyaltyTierHigh},
		// 12 lượt chu kỳ 90 ngày vẫn high — High check trước Medium
		{12, 90, models.LoyaltyTierHigh},
		{3, 30, models.LoyaltyTierHigh},
		{5, 90, models.LoyaltyTierMedium},
		{3, 60, models.LoyaltyTierMedium},
		{3, 90, models.LoyaltyTierLow},
		{9, 61, models.LoyaltyTierMedium},
	}
	for _, c := range cases {
		if got := ComputeLoyaltyTier(c.visits, c.interval); got != c.want {
			t.Errorf("tier(%d lượt, %d ngày) = %s, muốn %s", c.visits, c.interval, got, c.want)
		}
	}
}

func TestComputeChurnRisk_Nguong(t *testing.T) {
	// Trễ 14 ngày → chưa at risk
	risk := ComputeChurnRisk(44, 30)
	if risk.IsAtRisk {
		t.Error("trễ 14 ngày chưa được coi là at risk")
	}
	if risk.Urgency != models.ChurnUrgencyNone {
		t.Errorf("urgency = %s, muốn none", risk.Urgency)
	}

	// Trễ 15 ngày → at risk, moderate, 10%
	risk = ComputeChurnRisk(45, 30)
	if !risk.IsAtRisk || risk.Urgency != models.ChurnUrgencyModerate || risk.SuggestedDiscountPercent != 10 {
		t.Errorf("trễ 15 ngày: got %+v, muốn moderate/10%%", risk)
	}

	// Trễ 20 ngày → attention, 15%
	risk = ComputeChurnRisk(50, 30)
	if risk.Urgency != models.ChurnUrgencyAttention || risk.SuggestedDiscountPercent != 15 {
		t.Errorf("trễ 20 ngày: got %+v, muốn attention/15%%", risk)
	}

	// Trễ 30 ngày → critical, 20%
	risk = ComputeChurnRisk(60, 30)
	if risk.Urgency != models.ChurnUrgencyCritical || risk.SuggestedDiscountPercent != 20 {
		t.Errorf("trễ 30 ngày: got %+v, muốn critical/20%%", risk)
	}
}

func TestComputeChurnRisk_ClampDaysDelayed(t *testing.T) {
	// Khách quay lại sớm hơn chu kỳ — raw delay âm, báo cáo phải clamp về 0
	risk := ComputeChurnRisk(10, 30)
	if risk.IsAtRisk {
		t.Error("delay âm không được coi là at risk")
	}
	if risk.DaysDelayed != 0 {
		t.Errorf("daysDelayed báo cáo phải ≥ 0, got %d", risk.DaysDelayed)
	}
}

func TestComputeClientScore_KhongCoLichSu(t *testing.T) {
	score := ComputeClientScore(models.ClientVisitHistory{ClientID: "c1"}, loyaltyNow)
	if score.ChurnRisk.IsAtRisk {
		t.Error("khách không có lịch sử không bao giờ được coi là at risk")
	}
	if score.ChurnRisk.Urgency != models.ChurnUrgencyNone {
		t.Errorf("urgency = %s, muốn none", score.ChurnRisk.Urgency)
	}
	if score.TotalVisits != 0 || score.AverageIntervalDays != 0 {
		t.Errorf("score phải trung tính, got %+v", score)
	}
}

func TestComputeClientScore_EndToEnd(t *testing.T) {
	// 10 lượt chu kỳ 45 ngày, lượt cuối cách now 45 ngày
	history := models.ClientVisitHistory{
		ClientID: "c2",
		Visits:   visitsEvery(45, 10)[1:],
	}
	// visitsEvery bắt đầu từ now; bỏ phần tử đầu để lượt cuối cách now 45 ngày
	score := ComputeClientScore(history, loyaltyNow)

	if score.TotalVisits != 9 {
		t.Fatalf("totalVisits = %d, muốn 9", score.TotalVisits)
	}
	if score.AverageIntervalDays != 45 {
		t.Errorf("avgInterval = %d, muốn 45", score.AverageIntervalDays)
	}
	// daysSinceLastVisit 45, chu kỳ 45 → delay 0 → không at risk
	if score.ChurnRisk.IsAtRisk {
		t.Errorf("delay 0 không được at risk, got %+v", score.ChurnRisk)
	}
}

func TestComputeClientScore_Idempotent(t *testing.T) {
	history := models.ClientVisitHistory{ClientID: "c3", Visits: visitsEvery(20, 5)}
	first := ComputeClientScore(history, loyaltyNow)
	second := ComputeClientScore(history, loyaltyNow)
	if first != second {
		t.Errorf("hai lần gọi với cùng input phải giống hệt: %+v vs %+v", first, second)
	}
}
