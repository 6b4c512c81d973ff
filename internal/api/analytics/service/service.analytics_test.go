// Package analyticsvc - Test các helper thuần của service layer: status, bucket, sort, paginate, defaults.
package analyticsvc

import (
	"testing"
	"time"

	analyticsdto "salon_manager/internal/api/analytics/dto"
	analyticsmodels "salon_manager/internal/api/analytics/models"
)

func TestComputeInventoryStatus(t *testing.T) {
	if got := computeInventoryStatus(0, 5); got != inventoryStatusOutOfStock {
		t.Errorf("stock 0 = %s, muốn out_of_stock", got)
	}
	if got := computeInventoryStatus(4, 5); got != inventoryStatusLowStock {
		t.Errorf("stock 4 / minStock 5 = %s, muốn low_stock", got)
	}
	if got := computeInventoryStatus(5, 5); got != inventoryStatusOK {
		t.Errorf("stock == minStock = %s, muốn ok", got)
	}
	if got := computeInventoryStatus(100, 5); got != inventoryStatusOK {
		t.Errorf("stock dư = %s, muốn ok", got)
	}
}

func TestGetStockoutBucket(t *testing.T) {
	cases := []struct {
		days float64
		want string
	}{
		{-1, "infinity"},
		{0, "0"},
		{0.9, "0"},
		{1, "1-7"},
		{7.5, "1-7"},
		{8, "8-14"},
		{14.9, "8-14"},
		{15, "15-30"},
		{30.5, "15-30"},
		{31, "31-60"},
		{60.2, "31-60"},
		{61, "61-90"},
		{90.9, "61-90"},
		{91, "90+"},
		{365, "90+"},
	}
	for _, c := range cases {
		if got := getStockoutBucket(c.days); got != c.want {
			t.Errorf("bucket(%v) = %s, muốn %s", c.days, got, c.want)
		}
	}
}

func TestSortInventoryItems_InfinityXuongCuoi(t *testing.T) {
	items := []analyticsdto.InventoryItem{
		{ProductName: "a", DaysToStockout: -1},
		{ProductName: "b", DaysToStockout: 5},
		{ProductName: "c", DaysToStockout: 2},
	}
	sortInventoryItems(items, "stockout_asc")
	if items[0].ProductName != "c" || items[1].ProductName != "b" || items[2].ProductName != "a" {
		t.Errorf("stockout_asc phải đưa infinity xuống cuối: %v, %v, %v",
			items[0].ProductName, items[1].ProductName, items[2].ProductName)
	}

	sortInventoryItems(items, "stockout_desc")
	if items[0].ProductName != "a" {
		t.Errorf("stockout_desc phải đưa infinity lên đầu, got %s", items[0].ProductName)
	}
}

func TestFilterInventoryItems(t *testing.T) {
	items := []analyticsdto.InventoryItem{
		{ProductID: "p1", ABCClass: "A", Status: inventoryStatusOK},
		{ProductID: "p2", ABCClass: "B", Status: inventoryStatusLowStock},
		{ProductID: "p3", ABCClass: "A", Status: inventoryStatusLowStock},
	}

	got := filterInventoryItems(items, "A", "all")
	if len(got) != 2 {
		t.Errorf("lọc lớp A: %d items, muốn 2", len(got))
	}
	got = filterInventoryItems(items, "all", inventoryStatusLowStock)
	if len(got) != 2 {
		t.Errorf("lọc low_stock: %d items, muốn 2", len(got))
	}
	got = filterInventoryItems(items, "A", inventoryStatusLowStock)
	if len(got) != 1 || got[0].ProductID != "p3" {
		t.Errorf("lọc kết hợp phải còn p3, got %v", got)
	}
}

func TestPaginateInventoryItems(t *testing.T) {
	items := make([]analyticsdto.InventoryItem, 0, 7)
	for i := 0; i < 7; i++ {
		items = append(items, analyticsdto.InventoryItem{Stock: int64(i)})
	}

	paged, page, limit, total, totalPage := paginateInventoryItems(items, 2, 3)
	if page != 2 || limit != 3 || total != 7 || totalPage != 3 {
		t.Errorf("paginate metadata sai: page=%d limit=%d total=%d totalPage=%d", page, limit, total, totalPage)
	}
	if len(paged) != 3 || paged[0].Stock != 3 {
		t.Errorf("trang 2 phải bắt đầu từ item thứ 4, got %v", paged)
	}

	// Trang vượt quá total → rỗng, không panic
	paged, _, _, _, _ = paginateInventoryItems(items, 10, 3)
	if len(paged) != 0 {
		t.Errorf("trang vượt quá phải trả rỗng, got %d items", len(paged))
	}
}

func TestSortClientScores_UrgencyDesc(t *testing.T) {
	scores := []analyticsmodels.ClientScore{
		{ClientID: "none", ChurnRisk: analyticsmodels.ChurnRisk{Urgency: analyticsmodels.ChurnUrgencyNone}},
		{ClientID: "critical", ChurnRisk: analyticsmodels.ChurnRisk{Urgency: analyticsmodels.ChurnUrgencyCritical, DaysDelayed: 35}},
		{ClientID: "moderate", ChurnRisk: analyticsmodels.ChurnRisk{Urgency: analyticsmodels.ChurnUrgencyModerate, DaysDelayed: 16}},
		{ClientID: "attention", ChurnRisk: analyticsmodels.ChurnRisk{Urgency: analyticsmodels.ChurnUrgencyAttention, DaysDelayed: 22}},
	}
	sortClientScores(scores, "urgency_desc")

	want := []string{"critical", "attention", "moderate", "none"}
	for i, w := range want {
		if scores[i].ClientID != w {
			t.Errorf("vị trí %d: %s, muốn %s", i, scores[i].ClientID, w)
		}
	}
}

func TestFilterClientScores(t *testing.T) {
	scores := []analyticsmodels.ClientScore{
		{ClientID: "c1", LoyaltyTier: analyticsmodels.LoyaltyTierHigh, ChurnRisk: analyticsmodels.ChurnRisk{IsAtRisk: true}},
		{ClientID: "c2", LoyaltyTier: analyticsmodels.LoyaltyTierLow},
		{ClientID: "c3", LoyaltyTier: analyticsmodels.LoyaltyTierHigh},
	}
	got := filterClientScores(scores, analyticsmodels.LoyaltyTierHigh, false)
	if len(got) != 2 {
		t.Errorf("lọc tier high: %d, muốn 2", len(got))
	}
	got = filterClientScores(scores, "all", true)
	if len(got) != 1 || got[0].ClientID != "c1" {
		t.Errorf("lọc atRiskOnly phải còn c1, got %v", got)
	}
}

func TestApplyGoalProgressDefaults(t *testing.T) {
	now := time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC)

	p := &analyticsdto.GoalProgressQueryParams{}
	applyGoalProgressDefaults(p, now)
	if p.Month != 7 || p.Year != 2025 {
		t.Errorf("thiếu month/year phải mặc định kỳ hiện tại, got %d/%d", p.Month, p.Year)
	}

	p = &analyticsdto.GoalProgressQueryParams{Month: 2, Year: 2024}
	applyGoalProgressDefaults(p, now)
	if p.Month != 2 || p.Year != 2024 {
		t.Errorf("params có sẵn không được ghi đè, got %d/%d", p.Month, p.Year)
	}
}

func TestApplyInventoryDefaults(t *testing.T) {
	p := &analyticsdto.InventoryQueryParams{}
	applyInventoryDefaults(p)
	if p.Page != 1 || p.Limit != 50 || p.ABCClass != "all" || p.Status != "all" || p.Sort != "stockout_asc" {
		t.Errorf("defaults sai: %+v", p)
	}

	p = &analyticsdto.InventoryQueryParams{Limit: 99999}
	applyInventoryDefaults(p)
	if p.Limit != 2000 {
		t.Errorf("limit phải cap 2000, got %d", p.Limit)
	}
}
