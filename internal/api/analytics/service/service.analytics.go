// Package analyticsvc - AnalyticsService: load records từ Mongo theo organization,
// gọi engine thuần, trả DTO với defaults/filter/sort/paginate.
package analyticsvc

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	analyticsdto "salon_manager/internal/api/analytics/dto"
	analyticsmodels "salon_manager/internal/api/analytics/models"
	"salon_manager/internal/common"
	"salon_manager/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Trạng thái tồn kho cho bảng báo cáo
const (
	inventoryStatusOK         = "ok"
	inventoryStatusLowStock   = "low_stock"
	inventoryStatusOutOfStock = "out_of_stock"
)

// AnalyticsService xử lý các báo cáo analytics: inventory, client scores, goal progress.
type AnalyticsService struct {
	apptColl    *mongo.Collection
	productColl *mongo.Collection
	serviceColl *mongo.Collection
	goalColl    *mongo.Collection
}

// NewAnalyticsService tạo mới AnalyticsService.
func NewAnalyticsService() (*AnalyticsService, error) {
	apptColl, ok := global.RegistryCollections.Get(global.MongoDB_ColNames.Appointments)
	if !ok {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Appointments, common.ErrNotFound)
	}
	productColl, ok := global.RegistryCollections.Get(global.MongoDB_ColNames.Products)
	if !ok {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Products, common.ErrNotFound)
	}
	serviceColl, ok := global.RegistryCollections.Get(global.MongoDB_ColNames.SalonServices)
	if !ok {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.SalonServices, common.ErrNotFound)
	}
	goalColl, ok := global.RegistryCollections.Get(global.MongoDB_ColNames.Goals)
	if !ok {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Goals, common.ErrNotFound)
	}
	return &AnalyticsService{
		apptColl:    apptColl,
		productColl: productColl,
		serviceColl: serviceColl,
		goalColl:    goalColl,
	}, nil
}

// ============================================================
// Inventory report
// ============================================================

// GetInventoryReport tính báo cáo tồn kho cho một organization:
// metrics từng sản phẩm (turnover, stockout, margin), phân lớp ABC, KPI tổng hợp,
// phân bố stockout bucket, rồi filter/sort/paginate theo params.
// now truyền explicit để kết quả deterministic.
func (s *AnalyticsService) GetInventoryReport(ctx context.Context, orgID primitive.ObjectID, params *analyticsdto.InventoryQueryParams, now time.Time) (*analyticsdto.InventoryReportResult, error) {
	applyInventoryDefaults(params)

	products, err := s.loadProducts(ctx, orgID)
	if err != nil {
		return nil, err
	}

	metrics := ComputeInventoryMetrics(products, now)

	summary := analyticsdto.InventorySummary{
		SkuCount:        int64(len(products)),
		StockoutBuckets: make(map[string]int64),
		ABCCounts:       make(map[string]int64),
	}

	items := make([]analyticsdto.InventoryItem, 0, len(products))
	for i, p := range products {
		m := metrics[i]

		// Engine trả stockout theo đơn vị 30 ngày; DTO quy về ngày lịch,
		// sentinel vô hạn serialize thành -1 (JSON không có +Inf)
		stockoutDays := -1.0
		if !math.IsInf(m.DaysToStockout, 1) {
			stockoutDays = m.DaysToStockout * 30
		}

		status := computeInventoryStatus(p.Stock, p.MinStock)
		summary.TotalInventoryValue += float64(p.Stock) * p.Cost
		summary.StockoutBuckets[getStockoutBucket(stockoutDays)]++
		summary.ABCCounts[m.ABCClass]++
		switch status {
		case inventoryStatusLowStock:
			summary.LowStockCount++
		case inventoryStatusOutOfStock:
			summary.OutOfStockCount++
		}

		items = append(items, analyticsdto.InventoryItem{
			ProductID:                m.ProductID,
			ProductName:              p.Name,
			Category:                 p.Category,
			Stock:                    p.Stock,
			MinStock:                 p.MinStock,
			TurnoverRate:             m.TurnoverRate,
			DaysToStockout:           stockoutDays,
			ProfitMarginPercent:      m.ProfitMarginPercent,
			ABCClass:                 m.ABCClass,
			CumulativeRevenuePercent: m.CumulativeRevenuePercent,
			Revenue:                  float64(p.TotalSold) * p.Price,
			Status:                   status,
		})
	}

	items = filterInventoryItems(items, params.ABCClass, params.Status)
	sortInventoryItems(items, params.Sort)

	// Phân trang theo chuẩn PaginateResult: page, limit, itemCount, total, totalPage
	pagedItems, page, limit, total, totalPage := paginateInventoryItems(items, params.Page, params.Limit)

	return &analyticsdto.InventoryReportResult{
		Summary:   summary,
		Items:     pagedItems,
		Page:      page,
		Limit:     limit,
		ItemCount: int64(len(pagedItems)),
		Total:     total,
		TotalPage: totalPage,
	}, nil
}

func (s *AnalyticsService) loadProducts(ctx context.Context, orgID primitive.ObjectID) ([]analyticsmodels.ProductRecord, error) {
	cursor, err := s.productColl.Find(ctx, bson.M{"ownerOrganizationId": orgID})
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var products []analyticsmodels.ProductRecord
	if err := cursor.All(ctx, &products); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	return products, nil
}

// computeInventoryStatus trạng thái tồn kho: hết hàng, dưới ngưỡng minStock, hoặc ok.
func computeInventoryStatus(stock, minStock int64) string {
	if stock <= 0 {
		return inventoryStatusOutOfStock
	}
	if stock < minStock {
		return inventoryStatusLowStock
	}
	return inventoryStatusOK
}

// getStockoutBucket phân bucket theo số ngày lịch còn lại; -1 = infinity.
func getStockoutBucket(stockoutDays float64) string {
	if stockoutDays < 0 {
		return "infinity"
	}
	d := int64(stockoutDays)
	if d == 0 {
		return "0"
	}
	if d < 8 {
		return "1-7"
	}
	if d < 15 {
		return "8-14"
	}
	if d < 31 {
		return "15-30"
	}
	if d < 61 {
		return "31-60"
	}
	if d < 91 {
		return "61-90"
	}
	return "90+"
}

func filterInventoryItems(items []analyticsdto.InventoryItem, abcFilter, statusFilter string) []analyticsdto.InventoryItem {
	out := make([]analyticsdto.InventoryItem, 0, len(items))
	for _, it := range items {
		if abcFilter != "" && abcFilter != "all" && it.ABCClass != abcFilter {
			continue
		}
		if statusFilter != "" && statusFilter != "all" && it.Status != statusFilter {
			continue
		}
		out = append(out, it)
	}
	return out
}

func sortInventoryItems(items []analyticsdto.InventoryItem, sortBy string) {
	switch sortBy {
	case "turnover_asc":
		sort.Slice(items, func(i, j int) bool { return items[i].TurnoverRate < items[j].TurnoverRate })
	case "turnover_desc":
		sort.Slice(items, func(i, j int) bool { return items[i].TurnoverRate > items[j].TurnoverRate })
	case "stockout_desc":
		sort.Slice(items, func(i, j int) bool {
			// -1 (infinity) coi như lớn nhất
			if items[i].DaysToStockout < 0 && items[j].DaysToStockout < 0 {
				return items[i].ProductName < items[j].ProductName
			}
			if items[i].DaysToStockout < 0 {
				return true
			}
			if items[j].DaysToStockout < 0 {
				return false
			}
			return items[i].DaysToStockout > items[j].DaysToStockout
		})
	case "margin_desc":
		sort.Slice(items, func(i, j int) bool { return items[i].ProfitMarginPercent > items[j].ProfitMarginPercent })
	case "revenue_desc":
		sort.Slice(items, func(i, j int) bool { return items[i].Revenue > items[j].Revenue })
	case "product_name":
		sort.Slice(items, func(i, j int) bool { return items[i].ProductName < items[j].ProductName })
	default:
		// stockout_asc: sản phẩm sắp hết hàng lên đầu; infinity xuống cuối
		sort.Slice(items, func(i, j int) bool {
			if items[i].DaysToStockout < 0 && items[j].DaysToStockout < 0 {
				return items[i].ProductName < items[j].ProductName
			}
			if items[i].DaysToStockout < 0 {
				return false
			}
			if items[j].DaysToStockout < 0 {
				return true
			}
			return items[i].DaysToStockout < items[j].DaysToStockout
		})
	}
}

func paginateInventoryItems(items []analyticsdto.InventoryItem, pageParam, limitParam int) (paged []analyticsdto.InventoryItem, page, limit, total, totalPage int64) {
	total = int64(len(items))
	page = int64(pageParam)
	if page < 1 {
		page = 1
	}
	limit = int64(limitParam)
	if limit <= 0 {
		limit = 50
	}
	skip := (page - 1) * limit
	if skip < total {
		end := skip + limit
		if end > total {
			end = total
		}
		paged = items[int(skip):int(end)]
	} else {
		paged = []analyticsdto.InventoryItem{}
	}
	if total > 0 {
		totalPage = (total + limit - 1) / limit
	}
	return paged, page, limit, total, totalPage
}

func applyInventoryDefaults(p *analyticsdto.InventoryQueryParams) {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.Limit <= 0 {
		p.Limit = 50 // Mặc định 50 dòng/trang — chuẩn PaginateResult
	}
	if p.Limit > 2000 {
		p.Limit = 2000
	}
	if p.ABCClass == "" {
		p.ABCClass = "all"
	}
	if p.Status == "" {
		p.Status = "all"
	}
	if p.Sort == "" {
		p.Sort = "stockout_asc"
	}
}

// ============================================================
// Client scores
// ============================================================

// GetClientScores tính điểm loyalty + churn cho toàn bộ khách của organization.
// Lịch sử ghé thăm build từ lịch hẹn completed; summary (phân bố hạng, đếm at-risk)
// tính trên toàn tập trước khi filter/paginate.
func (s *AnalyticsService) GetClientScores(ctx context.Context, orgID primitive.ObjectID, params *analyticsdto.ClientScoresQueryParams, now time.Time) (*analyticsdto.ClientScoresResult, error) {
	applyClientScoresDefaults(params)

	appts, err := s.loadCompletedAppointments(ctx, orgID)
	if err != nil {
		return nil, err
	}

	// Nhóm theo khách, giữ thứ tự xuất hiện để output ổn định
	groups, clientIDs := GroupBy(appts, func(a analyticsmodels.AppointmentRecord) string {
		return a.ClientID
	})

	scores := make([]analyticsmodels.ClientScore, 0, len(clientIDs))
	summary := analyticsdto.ClientScoresSummary{
		TotalClients:     int64(len(clientIDs)),
		TierDistribution: make(map[string]int64),
	}
	for _, clientID := range clientIDs {
		visits := make([]time.Time, 0, len(groups[clientID]))
		for _, a := range groups[clientID] {
			visits = append(visits, a.Date)
		}
		score := ComputeClientScore(analyticsmodels.ClientVisitHistory{
			ClientID: clientID,
			Visits:   visits,
		}, now)

		summary.TierDistribution[score.LoyaltyTier]++
		if score.ChurnRisk.IsAtRisk {
			summary.AtRiskCount++
		}
		if score.ChurnRisk.Urgency == analyticsmodels.ChurnUrgencyCritical {
			summary.CriticalCount++
		}
		scores = append(scores, score)
	}

	scores = filterClientScores(scores, params.Tier, params.AtRiskOnly)
	sortClientScores(scores, params.Sort)

	pagedItems, page, limit, total, totalPage := paginateClientScores(scores, params.Page, params.Limit)

	return &analyticsdto.ClientScoresResult{
		Summary:   summary,
		Items:     pagedItems,
		Page:      page,
		Limit:     limit,
		ItemCount: int64(len(pagedItems)),
		Total:     total,
		TotalPage: totalPage,
	}, nil
}

func (s *AnalyticsService) loadCompletedAppointments(ctx context.Context, orgID primitive.ObjectID) ([]analyticsmodels.AppointmentRecord, error) {
	filter := bson.M{
		"ownerOrganizationId": orgID,
		"status":              analyticsmodels.AppointmentStatusCompleted,
	}
	cursor, err := s.apptColl.Find(ctx, filter)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var appts []analyticsmodels.AppointmentRecord
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	return appts, nil
}

func filterClientScores(scores []analyticsmodels.ClientScore, tierFilter string, atRiskOnly bool) []analyticsmodels.ClientScore {
	out := make([]analyticsmodels.ClientScore, 0, len(scores))
	for _, sc := range scores {
		if tierFilter != "" && tierFilter != "all" && sc.LoyaltyTier != tierFilter {
			continue
		}
		if atRiskOnly && !sc.ChurnRisk.IsAtRisk {
			continue
		}
		out = append(out, sc)
	}
	return out
}

// urgencyRank thứ tự khẩn cấp để sort: critical > attention > moderate > none.
func urgencyRank(urgency string) int {
	switch urgency {
	case analyticsmodels.ChurnUrgencyCritical:
		return 3
	case analyticsmodels.ChurnUrgencyAttention:
		return 2
	case analyticsmodels.ChurnUrgencyModerate:
		return 1
	}
	return 0
}

func sortClientScores(scores []analyticsmodels.ClientScore, sortBy string) {
	switch sortBy {
	case "days_delayed_desc":
		sort.Slice(scores, func(i, j int) bool {
			return scores[i].ChurnRisk.DaysDelayed > scores[j].ChurnRisk.DaysDelayed
		})
	case "visits_desc":
		sort.Slice(scores, func(i, j int) bool { return scores[i].TotalVisits > scores[j].TotalVisits })
	case "interval_asc":
		sort.Slice(scores, func(i, j int) bool {
			return scores[i].AverageIntervalDays < scores[j].AverageIntervalDays
		})
	default:
		// urgency_desc: khách cần chăm sóc nhất lên đầu, cùng mức thì trễ nhiều hơn trước
		sort.Slice(scores, func(i, j int) bool {
			ri, rj := urgencyRank(scores[i].ChurnRisk.Urgency), urgencyRank(scores[j].ChurnRisk.Urgency)
			if ri != rj {
				return ri > rj
			}
			return scores[i].ChurnRisk.DaysDelayed > scores[j].ChurnRisk.DaysDelayed
		})
	}
}

func paginateClientScores(scores []analyticsmodels.ClientScore, pageParam, limitParam int) (paged []analyticsmodels.ClientScore, page, limit, total, totalPage int64) {
	total = int64(len(scores))
	page = int64(pageParam)
	if page < 1 {
		page = 1
	}
	limit = int64(limitParam)
	if limit <= 0 {
		limit = 50
	}
	skip := (page - 1) * limit
	if skip < total {
		end := skip + limit
		if end > total {
			end = total
		}
		paged = scores[int(skip):int(end)]
	} else {
		paged = []analyticsmodels.ClientScore{}
	}
	if total > 0 {
		totalPage = (total + limit - 1) / limit
	}
	return paged, page, limit, total, totalPage
}

func applyClientScoresDefaults(p *analyticsdto.ClientScoresQueryParams) {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.Limit <= 0 {
		p.Limit = 50
	}
	if p.Limit > 2000 {
		p.Limit = 2000
	}
	if p.Tier == "" {
		p.Tier = "all"
	}
	if p.Sort == "" {
		p.Sort = "urgency_desc"
	}
}

// ============================================================
// Goal progress
// ============================================================

// GetGoalProgress tính tiến độ goal của organization trong kỳ month/year.
// Lịch hẹn cùng kỳ load một lần, price lookup build từ salon_services;
// engine lọc và định giá từng goal.
func (s *AnalyticsService) GetGoalProgress(ctx context.Context, orgID primitive.ObjectID, params *analyticsdto.GoalProgressQueryParams, now time.Time) (*analyticsdto.GoalProgressResult, error) {
	applyGoalProgressDefaults(params, now)
	if params.Month < 1 || params.Month > 12 {
		return nil, fmt.Errorf("month phải trong khoảng 1-12: %w", common.ErrInvalidInput)
	}

	goals, err := s.loadGoals(ctx, orgID, params.Month, params.Year)
	if err != nil {
		return nil, err
	}
	appts, err := s.loadAppointmentsInPeriod(ctx, orgID, params.Month, params.Year)
	if err != nil {
		return nil, err
	}
	prices, err := s.loadServicePrices(ctx, orgID)
	if err != nil {
		return nil, err
	}
	priceOf := func(serviceID string) float64 { return prices[serviceID] }

	result := &analyticsdto.GoalProgressResult{
		Month: params.Month,
		Year:  params.Year,
		Goals: make([]analyticsmodels.GoalProgress, 0, len(goals)),
	}
	result.Summary.TotalGoals = int64(len(goals))
	for _, goal := range goals {
		qualified := FilterQualifyingAppointments(goal, appts)
		currentValue := ComputeGoalValue(qualified, priceOf)
		progress := ComputeGoalProgress(goal, currentValue)

		switch progress.Status {
		case analyticsmodels.GoalStatusAboveMax:
			result.Summary.AboveMaxCount++
		case analyticsmodels.GoalStatusBetween:
			result.Summary.BetweenCount++
		default:
			result.Summary.BelowMinCount++
		}
		result.Goals = append(result.Goals, progress)
	}
	return result, nil
}

func (s *AnalyticsService) loadGoals(ctx context.Context, orgID primitive.ObjectID, month, year int) ([]analyticsmodels.GoalDefinition, error) {
	filter := bson.M{
		"ownerOrganizationId": orgID,
		"month":               month,
		"year":                year,
	}
	cursor, err := s.goalColl.Find(ctx, filter)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var goals []analyticsmodels.GoalDefinition
	if err := cursor.All(ctx, &goals); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	return goals, nil
}

func (s *AnalyticsService) loadAppointmentsInPeriod(ctx context.Context, orgID primitive.ObjectID, month, year int) ([]analyticsmodels.AppointmentRecord, error) {
	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)
	filter := bson.M{
		"ownerOrganizationId": orgID,
		"date":                bson.M{"$gte": from, "$lt": to},
	}
	cursor, err := s.apptColl.Find(ctx, filter)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var appts []analyticsmodels.AppointmentRecord
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	return appts, nil
}

func (s *AnalyticsService) loadServicePrices(ctx context.Context, orgID primitive.ObjectID) (map[string]float64, error) {
	cursor, err := s.serviceColl.Find(ctx, bson.M{"ownerOrganizationId": orgID})
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var services []analyticsmodels.SalonService
	if err := cursor.All(ctx, &services); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	prices := make(map[string]float64, len(services))
	for _, sv := range services {
		prices[sv.ID.Hex()] = sv.Price
	}
	return prices, nil
}

func applyGoalProgressDefaults(p *analyticsdto.GoalProgressQueryParams, now time.Time) {
	if p.Month <= 0 {
		p.Month = int(now.Month())
	}
	if p.Year <= 0 {
		p.Year = now.Year()
	}
}
