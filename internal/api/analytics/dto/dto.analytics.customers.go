// Package analyticsdto - DTO cho client loyalty scores và churn panel.
package analyticsdto

import (
	analyticsmodels "salon_manager/internal/api/analytics/models"
)

// ClientScoresQueryParams query params cho GET /analytics/clients/scores.
type ClientScoresQueryParams struct {
	Page       int    `query:"page" validate:"omitempty,min=1"`                                                  // Trang hiện tại (mặc định 1)
	Limit      int    `query:"limit" validate:"omitempty,min=1,max=2000"`                                        // Số dòng mỗi trang (mặc định 50)
	Tier       string `query:"tier" validate:"omitempty,oneof=high medium low all"`                              // Lọc theo hạng loyalty
	AtRiskOnly bool   `query:"atRiskOnly"`                                                                       // Chỉ lấy khách đang at risk
	Sort       string `query:"sort" validate:"omitempty,oneof=urgency_desc days_delayed_desc visits_desc interval_asc"`
}

// ClientScoresSummary phân bố hạng và đếm at-risk toàn bộ tập khách (trước paginate).
type ClientScoresSummary struct {
	TotalClients     int64            `json:"totalClients"`
	TierDistribution map[string]int64 `json:"tierDistribution"` // high/medium/low → số khách
	AtRiskCount      int64            `json:"atRiskCount"`
	CriticalCount    int64            `json:"criticalCount"` // Khách urgency critical
}

// ClientScoresResult kết quả GET /analytics/clients/scores — format PaginateResult.
type ClientScoresResult struct {
	Summary   ClientScoresSummary            `json:"summary"`
	Items     []analyticsmodels.ClientScore `json:"items"`
	Page      int64                          `json:"page"`
	Limit     int64                          `json:"limit"`
	ItemCount int64                          `json:"itemCount"`
	Total     int64                          `json:"total"`
	TotalPage int64                          `json:"totalPage"`
}
