// Package analyticsvc - Loyalty scoring: chu kỳ ghé thăm, hạng loyalty, churn risk với gợi ý ưu đãi.
package analyticsvc

import (
	"math"
	"sort"
	"time"

	"salon_manager/internal/api/analytics/models"
)

const (
	// Ngưỡng hạng loyalty — High check trước Medium, thứ tự là contract:
	// khách 12 lượt chu kỳ 90 ngày vẫn là High.
	loyaltyHighVisits     = 10
	loyaltyHighInterval   = 30
	loyaltyMediumVisits   = 5
	loyaltyMediumInterval = 60

	// Ngưỡng churn (số ngày trễ so với chu kỳ trung bình)
	churnAtRiskDelay    = 15
	churnAttentionDelay = 20
	churnCriticalDelay  = 30

	// Gợi ý ưu đãi kéo khách quay lại (%)
	churnDiscountModerate  = 10.0
	churnDiscountAttention = 15.0
	churnDiscountCritical  = 20.0
)

// ComputeAverageVisitInterval tính chu kỳ ghé thăm trung bình (ngày, làm tròn).
// Sort ascending rồi lấy mean các khoảng cách dương giữa 2 lần liên tiếp;
// khoảng cách ≤ 0 (trùng ngày, dữ liệu lệch) bị bỏ qua chứ không tính 0.
// Dưới 2 lượt hợp lệ trả về 0. Zero time (ngày hỏng) bị loại trước khi tính.
func ComputeAverageVisitInterval(visits []time.Time) int {
	valid := make([]time.Time, 0, len(visits))
	for _, v := range visits {
		if v.IsZero() {
			continue
		}
		valid = append(valid, v)
	}
	if len(valid) < 2 {
		return 0
	}

	sort.Slice(valid, func(i, j int) bool {
		return valid[i].Before(valid[j])
	})

	var sum float64
	count := 0
	for i := 1; i < len(valid); i++ {
		gap := valid[i].Sub(valid[i-1]).Hours() / 24
		if gap <= 0 {
			continue
		}
		sum += gap
		count++
	}
	if count == 0 {
		return 0
	}
	return int(math.Round(sum / float64(count)))
}

// ComputeLoyaltyTier phân hạng loyalty từ số lượt và chu kỳ trung bình.
// high nếu visits ≥ 10 HOẶC chu kỳ ≤ 30 ngày; medium nếu visits ≥ 5 HOẶC chu kỳ ≤ 60; còn lại low.
func ComputeLoyaltyTier(totalVisits, avgIntervalDays int) string {
	if totalVisits >= loyaltyHighVisits || avgIntervalDays <= loyaltyHighInterval {
		return models.LoyaltyTierHigh
	}
	if totalVisits >= loyaltyMediumVisits || avgIntervalDays <= loyaltyMediumInterval {
		return models.LoyaltyTierMedium
	}
	return models.LoyaltyTierLow
}

// ComputeChurnRisk đánh giá rủi ro rời bỏ từ số ngày vắng mặt so với chu kỳ trung bình.
// isAtRisk quyết định trên delay CHƯA clamp (raw ≥ 15); DaysDelayed báo cáo luôn ≥ 0.
// Tiering khi at risk: ≥30 ngày critical/20%, ≥20 attention/15%, ≥15 moderate/10%.
func ComputeChurnRisk(daysSinceLastVisit, avgIntervalDays int) models.ChurnRisk {
	rawDelay := daysSinceLastVisit - avgIntervalDays

	reported := rawDelay
	if reported < 0 {
		reported = 0
	}

	if rawDelay < churnAtRiskDelay {
		return models.ChurnRisk{
			IsAtRisk:    false,
			DaysDelayed: reported,
			Urgency:     models.ChurnUrgencyNone,
		}
	}

	risk := models.ChurnRisk{
		IsAtRisk:    true,
		DaysDelayed: reported,
	}
	switch {
	case rawDelay >= churnCriticalDelay:
		risk.Urgency = models.ChurnUrgencyCritical
		risk.SuggestedDiscountPercent = churnDiscountCritical
	case rawDelay >= churnAttentionDelay:
		risk.Urgency = models.ChurnUrgencyAttention
		risk.SuggestedDiscountPercent = churnDiscountAttention
	default:
		risk.Urgency = models.ChurnUrgencyModerate
		risk.SuggestedDiscountPercent = churnDiscountModerate
	}
	return risk
}

// ComputeClientScore tính điểm loyalty + churn đầy đủ cho một khách.
// Khách không có lịch sử ghé thăm trả về score trung tính: không bao giờ at risk
// (không có mốc tham chiếu), hạng tính từ 0 lượt / chu kỳ 0.
func ComputeClientScore(h models.ClientVisitHistory, now time.Time) models.ClientScore {
	valid := make([]time.Time, 0, len(h.Visits))
	for _, v := range h.Visits {
		if v.IsZero() {
			continue
		}
		valid = append(valid, v)
	}

	score := models.ClientScore{
		ClientID:    h.ClientID,
		TotalVisits: len(valid),
	}

	if len(valid) == 0 {
		score.LoyaltyTier = models.LoyaltyTierLow
		score.ChurnRisk = models.ChurnRisk{Urgency: models.ChurnUrgencyNone}
		return score
	}

	score.AverageIntervalDays = ComputeAverageVisitInterval(valid)
	score.LoyaltyTier = ComputeLoyaltyTier(score.TotalVisits, score.AverageIntervalDays)

	lastVisit := valid[0]
	for _, v := range valid[1:] {
		if v.After(lastVisit) {
			lastVisit = v
		}
	}
	daysSinceLastVisit := int(now.Sub(lastVisit).Hours() / 24)
	score.ChurnRisk = ComputeChurnRisk(daysSinceLastVisit, score.AverageIntervalDays)
	return score
}
