// Package analyticsvc - Inventory metrics: turnover, stockout horizon, margin, phân lớp ABC (Pareto).
package analyticsvc

import (
	"math"
	"sort"
	"time"

	"salon_manager/internal/api/analytics/models"
)

const (
	// Cửa sổ chuẩn hóa tốc độ bán: mọi velocity đều quy về "số lượng mỗi 30 ngày"
	turnoverWindowDays = 30

	// Ngưỡng lũy kế ABC (%)
	abcThresholdA = 80.0
	abcThresholdB = 95.0
)

// StockoutNever là sentinel "không bao giờ hết hàng với tốc độ hiện tại".
// DTO layer serialize thành -1 (JSON không biểu diễn được +Inf).
var StockoutNever = math.Inf(1)

// ComputeTurnoverRate tính tốc độ bán chuẩn hóa: số lượng bán ra mỗi 30 ngày.
// Sản phẩm mới tạo (daysSinceCreated ≤ 0) hoặc thiếu createdAt trả về 0.
func ComputeTurnoverRate(p models.ProductRecord, now time.Time) float64 {
	if p.CreatedAt.IsZero() {
		return 0
	}
	daysSinceCreated := now.Sub(p.CreatedAt).Hours() / 24
	if daysSinceCreated <= 0 {
		return 0
	}
	return float64(p.TotalSold) / daysSinceCreated * turnoverWindowDays
}

// ComputeDaysToStockout tính thời gian còn lại trước khi hết hàng.
// Kết quả theo đơn vị chu kỳ 30 ngày (cùng hệ đơn vị với turnoverRate) —
// nhân 30 để ra ngày lịch. turnoverRate ≤ 0 trả về StockoutNever.
func ComputeDaysToStockout(stock int64, turnoverRate float64) float64 {
	if turnoverRate <= 0 {
		return StockoutNever
	}
	return float64(stock) / turnoverRate
}

// ComputeProfitMargin tính biên lợi nhuận (%) = (price - cost) / price * 100.
// Giá bán ≤ 0 trả về 0. Biên âm (cost > price) là hợp lệ, không clamp.
func ComputeProfitMargin(price, cost float64) float64 {
	if price <= 0 {
		return 0
	}
	return (price - cost) / price * 100
}

// ClassifyABC phân lớp Pareto toàn bộ portfolio theo đóng góp doanh thu lũy kế.
// Doanh thu = totalSold * price. Sort giảm dần, stable — doanh thu bằng nhau
// giữ thứ tự input. Duyệt theo thứ tự đã sort: lũy kế ≤ 80% → A, ≤ 95% → B,
// còn lại C. Một sản phẩm doanh thu lớn vẫn là B/C nếu lũy kế trước nó đã vượt ngưỡng.
// Tổng doanh thu bằng 0 → tất cả C, lũy kế 0, giữ thứ tự input.
func ClassifyABC(products []models.ProductRecord) []models.InventoryABC {
	result := make([]models.InventoryABC, len(products))
	var total float64
	for i, p := range products {
		revenue := float64(p.TotalSold) * p.Price
		result[i] = models.InventoryABC{
			ProductID: p.ID.Hex(),
			Revenue:   revenue,
		}
		total += revenue
	}

	if total <= 0 {
		for i := range result {
			result[i].ABCClass = models.ABCClassC
			result[i].CumulativeRevenuePercent = 0
		}
		return result
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Revenue > result[j].Revenue
	})

	var running float64
	for i := range result {
		running += result[i].Revenue
		// running*100/total thay vì (running/total)*100 để các mốc chẵn
		// (80, 95, 100) không lệch vì sai số float
		cumulative := running * 100 / total
		result[i].CumulativeRevenuePercent = cumulative
		switch {
		case cumulative <= abcThresholdA:
			result[i].ABCClass = models.ABCClassA
		case cumulative <= abcThresholdB:
			result[i].ABCClass = models.ABCClassB
		default:
			result[i].ABCClass = models.ABCClassC
		}
	}
	return result
}

// ComputeInventoryMetrics tính metrics đầy đủ cho từng sản phẩm trong portfolio:
// per-product (turnover, stockout, margin) + phân lớp ABC toàn portfolio.
// Kết quả giữ nguyên thứ tự input.
func ComputeInventoryMetrics(products []models.ProductRecord, now time.Time) []models.InventoryMetric {
	abcByProduct := make(map[string]models.InventoryABC, len(products))
	for _, abc := range ClassifyABC(products) {
		abcByProduct[abc.ProductID] = abc
	}

	metrics := make([]models.InventoryMetric, 0, len(products))
	for _, p := range products {
		turnover := ComputeTurnoverRate(p, now)
		abc := abcByProduct[p.ID.Hex()]
		metrics = append(metrics, models.InventoryMetric{
			ProductID:                p.ID.Hex(),
			TurnoverRate:             turnover,
			DaysToStockout:           ComputeDaysToStockout(p.Stock, turnover),
			ProfitMarginPercent:      ComputeProfitMargin(p.Price, p.Cost),
			ABCClass:                 abc.ABCClass,
			CumulativeRevenuePercent: abc.CumulativeRevenuePercent,
		})
	}
	return metrics
}
