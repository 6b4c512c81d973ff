// Package models - các entity output của analytics engine.
// Chỉ derive, không persist: engine tính lại từ records mỗi lần gọi.
package models

// Phân lớp ABC (Pareto) theo đóng góp doanh thu lũy kế
const (
	ABCClassA = "A" // Lũy kế ≤ 80%
	ABCClassB = "B" // Lũy kế ≤ 95%
	ABCClassC = "C" // Phần còn lại (hoặc toàn bộ khi tổng doanh thu = 0)
)

// Hạng loyalty của khách
const (
	LoyaltyTierHigh   = "high"   // ≥10 lượt hoặc chu kỳ ≤30 ngày
	LoyaltyTierMedium = "medium" // ≥5 lượt hoặc chu kỳ ≤60 ngày
	LoyaltyTierLow    = "low"
)

// Mức độ khẩn cấp churn
const (
	ChurnUrgencyNone      = "none"
	ChurnUrgencyModerate  = "moderate"  // Trễ 15-19 ngày
	ChurnUrgencyAttention = "attention" // Trễ 20-29 ngày
	ChurnUrgencyCritical  = "critical"  // Trễ ≥30 ngày
)

// Trạng thái goal progress
const (
	GoalStatusBelowMin = "belowMin"
	GoalStatusBetween  = "between"
	GoalStatusAboveMax = "aboveMax"
)

// InventoryMetric là metrics theo từng sản phẩm.
// DaysToStockout tính theo đơn vị chu kỳ 30 ngày (nhân 30 để ra ngày lịch);
// sentinel vô hạn (math.Inf) nghĩa là không bao giờ hết hàng với tốc độ hiện tại.
type InventoryMetric struct {
	ProductID                string  `json:"productId"`
	TurnoverRate             float64 `json:"turnoverRate"`             // Số lượng bán ra mỗi 30 ngày
	DaysToStockout           float64 `json:"daysToStockout"`           // Đơn vị 30 ngày; +Inf = không bao giờ
	ProfitMarginPercent      float64 `json:"profitMarginPercent"`      // Có thể âm khi cost > price
	ABCClass                 string  `json:"abcClass"`                 // A | B | C
	CumulativeRevenuePercent float64 `json:"cumulativeRevenuePercent"` // Theo thứ tự doanh thu giảm dần
}

// InventoryABC là kết quả phân lớp Pareto cho một sản phẩm trong portfolio.
type InventoryABC struct {
	ProductID                string  `json:"productId"`
	Revenue                  float64 `json:"revenue"` // totalSold * price
	CumulativeRevenuePercent float64 `json:"cumulativeRevenuePercent"`
	ABCClass                 string  `json:"abcClass"`
}

// ChurnRisk là đánh giá rủi ro rời bỏ của một khách.
type ChurnRisk struct {
	IsAtRisk                 bool    `json:"isAtRisk"`
	DaysDelayed              int     `json:"daysDelayed"` // Đã clamp ≥ 0
	SuggestedDiscountPercent float64 `json:"suggestedDiscountPercent,omitempty"`
	Urgency                  string  `json:"urgency"` // none | moderate | attention | critical
}

// ClientScore là điểm loyalty + churn của một khách.
type ClientScore struct {
	ClientID            string    `json:"clientId"`
	TotalVisits         int       `json:"totalVisits"`
	AverageIntervalDays int       `json:"averageIntervalDays"`
	LoyaltyTier         string    `json:"loyaltyTier"` // high | medium | low
	ChurnRisk           ChurnRisk `json:"churnRisk"`
}

// GoalProgress là tiến độ thực hiện của một goal trong kỳ.
type GoalProgress struct {
	GoalID             string  `json:"goalId"`
	TechnicianID       string  `json:"technicianId"`
	GoalType           string  `json:"goalType"`
	CurrentValue       float64 `json:"currentValue"`
	MinExpectedValue   float64 `json:"minExpectedValue"`
	MaxExpectedValue   float64 `json:"maxExpectedValue"`
	ProgressPercentage float64 `json:"progressPercentage"` // Clamp [0, 100]
	Status             string  `json:"status"`             // belowMin | between | aboveMax
}
