// Package analyticsvc - Test inventory metrics: turnover, stockout sentinel, margin, phân lớp ABC.
package analyticsvc

import (
	"math"
	"testing"
	"time"

	"salon_manager/internal/api/analytics/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var inventoryNow = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

func productWith(totalSold int64, price float64, daysAgo int) models.ProductRecord {
	return models.ProductRecord{
		ID:        primitive.NewObjectID(),
		TotalSold: totalSold,
		Price:     price,
		CreatedAt: inventoryNow.AddDate(0, 0, -daysAgo),
	}
}

func TestComputeTurnoverRate_ChuanHoa30Ngay(t *testing.T) {
	// 12 sản phẩm bán trong 60 ngày → (12/60)*30 = 6.0 mỗi 30 ngày
	p := productWith(12, 0, 60)
	got := ComputeTurnoverRate(p, inventoryNow)
	if math.Abs(got-6.0) > 1e-9 {
		t.Errorf("turnoverRate = %v, muốn 6.0", got)
	}
}

func TestComputeTurnoverRate_SanPhamMoi(t *testing.T) {
	// createdAt trùng now → daysSinceCreated = 0 → turnover 0, không âm
	p := models.ProductRecord{TotalSold: 5, CreatedAt: inventoryNow}
	if got := ComputeTurnoverRate(p, inventoryNow); got != 0 {
		t.Errorf("sản phẩm mới tạo phải có turnover 0, got %v", got)
	}

	// createdAt trong tương lai cũng không được âm
	p.CreatedAt = inventoryNow.AddDate(0, 0, 3)
	if got := ComputeTurnoverRate(p, inventoryNow); got != 0 {
		t.Errorf("createdAt tương lai phải có turnover 0, got %v", got)
	}
}

func TestComputeTurnoverRate_ThieuCreatedAt(t *testing.T) {
	p := models.ProductRecord{TotalSold: 5}
	if got := ComputeTurnoverRate(p, inventoryNow); got != 0 {
		t.Errorf("thiếu createdAt phải có turnover 0, got %v", got)
	}
}

func TestComputeDaysToStockout(t *testing.T) {
	// turnover 6.0, tồn 4 → 4/6 ≈ 0.667 (đơn vị chu kỳ 30 ngày)
	got := ComputeDaysToStockout(4, 6.0)
	if math.Abs(got-4.0/6.0) > 1e-9 {
		t.Errorf("daysToStockout = %v, muốn %v", got, 4.0/6.0)
	}

	// turnover 0 → sentinel vô hạn, không phải NaN
	if got := ComputeDaysToStockout(10, 0); !math.IsInf(got, 1) {
		t.Errorf("turnover 0 phải trả sentinel vô hạn, got %v", got)
	}
	if got := ComputeDaysToStockout(10, -1); !math.IsInf(got, 1) {
		t.Errorf("turnover âm phải trả sentinel vô hạn, got %v", got)
	}
}

func TestComputeProfitMargin(t *testing.T) {
	if got := ComputeProfitMargin(100, 40); got != 60 {
		t.Errorf("margin(100, 40) = %v, muốn 60", got)
	}
	// Giá bán 0 → 0, không chia cho 0
	if got := ComputeProfitMargin(0, 40); got != 0 {
		t.Errorf("price 0 phải trả margin 0, got %v", got)
	}
	// Cost > price → margin âm hợp lệ, không clamp
	if got := ComputeProfitMargin(100, 150); got != -50 {
		t.Errorf("margin âm phải giữ nguyên, got %v", got)
	}
}

func TestClassifyABC_Nguong80_95(t *testing.T) {
	// Doanh thu [800, 150, 50] → lũy kế [80, 95, 100] → [A, B, C] (ngưỡng inclusive)
	products := []models.ProductRecord{
		productWith(8, 100, 30),
		productWith(3, 50, 30),
		productWith(1, 50, 30),
	}
	result := ClassifyABC(products)

	wantClass := []string{models.ABCClassA, models.ABCClassB, models.ABCClassC}
	wantCumulative := []float64{80, 95, 100}
	for i := range result {
		if result[i].ABCClass != wantClass[i] {
			t.Errorf("vị trí %d: class = %s, muốn %s", i, result[i].ABCClass, wantClass[i])
		}
		if math.Abs(result[i].CumulativeRevenuePercent-wantCumulative[i]) > 1e-9 {
			t.Errorf("vị trí %d: lũy kế = %v, muốn %v", i, result[i].CumulativeRevenuePercent, wantCumulative[i])
		}
	}
}

func TestClassifyABC_PartitionVaPrefix(t *testing.T) {
	products := []models.ProductRecord{
		productWith(100, 10, 30),
		productWith(50, 10, 30),
		productWith(200, 10, 30),
		productWith(5, 10, 30),
		productWith(1, 10, 30),
	}
	result := ClassifyABC(products)

	if len(result) != len(products) {
		t.Fatalf("phải phân lớp đủ %d sản phẩm, got %d", len(products), len(result))
	}

	// Mỗi sản phẩm đúng 1 lớp; lớp A là prefix của thứ tự doanh thu giảm dần;
	// lũy kế không giảm và kết thúc tại 100
	seenB, seenC := false, false
	prev := 0.0
	for i, r := range result {
		switch r.ABCClass {
		case models.ABCClassA:
			if seenB || seenC {
				t.Errorf("vị trí %d: lớp A xuất hiện sau B/C — không còn là prefix", i)
			}
		case models.ABCClassB:
			if seenC {
				t.Errorf("vị trí %d: lớp B xuất hiện sau C", i)
			}
			seenB = true
		case models.ABCClassC:
			seenC = true
		default:
			t.Errorf("vị trí %d: lớp không hợp lệ %q", i, r.ABCClass)
		}
		if r.CumulativeRevenuePercent < prev {
			t.Errorf("vị trí %d: lũy kế giảm (%v < %v)", i, r.CumulativeRevenuePercent, prev)
		}
		prev = r.CumulativeRevenuePercent
	}
	if math.Abs(prev-100) > 1e-9 {
		t.Errorf("lũy kế cuối = %v, muốn 100", prev)
	}
}

func TestClassifyABC_TongDoanhThuBangKhong(t *testing.T) {
	products := []models.ProductRecord{
		productWith(0, 100, 30),
		productWith(10, 0, 30),
	}
	result := ClassifyABC(products)
	for i, r := range result {
		if r.ABCClass != models.ABCClassC {
			t.Errorf("vị trí %d: tổng doanh thu 0 thì mọi sản phẩm phải là C, got %s", i, r.ABCClass)
		}
		if r.CumulativeRevenuePercent != 0 {
			t.Errorf("vị trí %d: lũy kế phải là 0, got %v", i, r.CumulativeRevenuePercent)
		}
	}
}

func TestClassifyABC_TieBreakOnDinh(t *testing.T) {
	// Doanh thu bằng nhau → giữ thứ tự input (stable sort)
	p1 := productWith(10, 10, 30)
	p2 := productWith(10, 10, 30)
	result := ClassifyABC([]models.ProductRecord{p1, p2})
	if result[0].ProductID != p1.ID.Hex() {
		t.Error("doanh thu bằng nhau phải giữ thứ tự input, sản phẩm đầu bị đổi chỗ")
	}
}

func TestClassifyABC_InputRong(t *testing.T) {
	result := ClassifyABC(nil)
	if len(result) != 0 {
		t.Errorf("input rỗng phải trả về slice rỗng, got %d phần tử", len(result))
	}
}

func TestComputeInventoryMetrics_EndToEnd(t *testing.T) {
	// Kịch bản: 60 ngày, bán 12, tồn 4 → turnover 6.0, stockout 4/6 ≈ 0.667
	p := productWith(12, 100, 60)
	p.Stock = 4
	p.MinStock = 5
	p.Cost = 40

	metrics := ComputeInventoryMetrics([]models.ProductRecord{p}, inventoryNow)
	if len(metrics) != 1 {
		t.Fatalf("số metrics = %d, muốn 1", len(metrics))
	}
	m := metrics[0]
	if math.Abs(m.TurnoverRate-6.0) > 1e-9 {
		t.Errorf("turnoverRate = %v, muốn 6.0", m.TurnoverRate)
	}
	if math.Abs(m.DaysToStockout-4.0/6.0) > 1e-9 {
		t.Errorf("daysToStockout = %v, muốn %v", m.DaysToStockout, 4.0/6.0)
	}
	if m.ProfitMarginPercent != 60 {
		t.Errorf("margin = %v, muốn 60", m.ProfitMarginPercent)
	}
	if m.ABCClass != models.ABCClassA {
		t.Errorf("sản phẩm duy nhất phải là lớp A, got %s", m.ABCClass)
	}
}

func TestComputeInventoryMetrics_Idempotent(t *testing.T) {
	products := []models.ProductRecord{
		productWith(12, 100, 60),
		productWith(3, 50, 45),
	}
	first := ComputeInventoryMetrics(products, inventoryNow)
	second := ComputeInventoryMetrics(products, inventoryNow)
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("vị trí %d: hai lần gọi với cùng input phải cho kết quả giống hệt", i)
		}
	}
}
