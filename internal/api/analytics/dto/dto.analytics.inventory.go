// Package analyticsdto - DTO cho các báo cáo analytics (inventory, client scores, goal progress).
package analyticsdto

// InventoryQueryParams query params cho GET /analytics/inventory.
// Phân trang theo chuẩn PaginateResult: page (mặc định 1), limit (mặc định 50).
type InventoryQueryParams struct {
	Page     int    `query:"page" validate:"omitempty,min=1"`                                                                                     // Trang hiện tại (mặc định 1)
	Limit    int    `query:"limit" validate:"omitempty,min=1,max=2000"`                                                                           // Số dòng mỗi trang (mặc định 50)
	ABCClass string `query:"abcClass" validate:"omitempty,oneof=A B C all"`                                                                       // Lọc theo phân lớp Pareto
	Status   string `query:"status" validate:"omitempty,oneof=out_of_stock low_stock ok all"`                                                    // Lọc theo trạng thái tồn kho
	Sort     string `query:"sort" validate:"omitempty,oneof=turnover_desc turnover_asc stockout_asc stockout_desc margin_desc revenue_desc product_name"`
}

// InventorySummary các KPI tổng hợp của báo cáo tồn kho.
type InventorySummary struct {
	SkuCount            int64              `json:"skuCount"`            // Số sản phẩm
	TotalInventoryValue float64            `json:"totalInventoryValue"` // Tổng giá trị tồn kho (stock * cost)
	LowStockCount       int64              `json:"lowStockCount"`       // Số sản phẩm dưới ngưỡng minStock
	OutOfStockCount     int64              `json:"outOfStockCount"`     // Số sản phẩm hết hàng
	StockoutBuckets     map[string]int64   `json:"stockoutBuckets"`     // Phân bố horizon hết hàng theo ngày lịch; key "infinity" = không ước tính được
	ABCCounts           map[string]int64   `json:"abcCounts"`           // Số sản phẩm theo lớp A/B/C
}

// InventoryItem 1 dòng trong bảng báo cáo tồn kho.
type InventoryItem struct {
	ProductID                string  `json:"productId"`
	ProductName              string  `json:"productName"`
	Category                 string  `json:"category,omitempty"`
	Stock                    int64   `json:"stock"`
	MinStock                 int64   `json:"minStock"`
	TurnoverRate             float64 `json:"turnoverRate"`             // Số lượng bán mỗi 30 ngày
	DaysToStockout           float64 `json:"daysToStockout"`           // Ngày lịch còn lại; -1 = infinity (không ước tính)
	ProfitMarginPercent      float64 `json:"profitMarginPercent"`
	ABCClass                 string  `json:"abcClass"`
	CumulativeRevenuePercent float64 `json:"cumulativeRevenuePercent"`
	Revenue                  float64 `json:"revenue"` // totalSold * price
	Status                   string  `json:"status"`  // ok|low_stock|out_of_stock
}

// InventoryReportResult kết quả GET /analytics/inventory — format PaginateResult.
type InventoryReportResult struct {
	Summary   InventorySummary `json:"summary"`
	Items     []InventoryItem  `json:"items"`
	Page      int64            `json:"page"`
	Limit     int64            `json:"limit"`
	ItemCount int64            `json:"itemCount"`
	Total     int64            `json:"total"`
	TotalPage int64            `json:"totalPage"`
}
