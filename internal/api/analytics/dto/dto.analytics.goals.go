// Package analyticsdto - DTO cho goal progress theo kỳ (tháng/năm).
package analyticsdto

import (
	analyticsmodels "salon_manager/internal/api/analytics/models"
)

// GoalProgressQueryParams query params cho GET /analytics/goals/progress.
// Thiếu month/year thì mặc định kỳ hiện tại (theo server time).
type GoalProgressQueryParams struct {
	Month int `query:"month" validate:"omitempty,min=1,max=12"`
	Year  int `query:"year" validate:"omitempty,min=2000"`
}

// GoalProgressSummary đếm goal theo trạng thái ngưỡng.
type GoalProgressSummary struct {
	TotalGoals    int64 `json:"totalGoals"`
	AboveMaxCount int64 `json:"aboveMaxCount"`
	BetweenCount  int64 `json:"betweenCount"`
	BelowMinCount int64 `json:"belowMinCount"`
}

// GoalProgressResult kết quả GET /analytics/goals/progress.
type GoalProgressResult struct {
	Month   int                            `json:"month"`
	Year    int                            `json:"year"`
	Summary GoalProgressSummary            `json:"summary"`
	Goals   []analyticsmodels.GoalProgress `json:"goals"`
}
