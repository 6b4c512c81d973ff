// Package analyticsvc - Goal progress: lọc lịch hẹn đạt điều kiện, tổng giá trị, % tiến độ và trạng thái ngưỡng.
package analyticsvc

import (
	"math"

	"salon_manager/internal/api/analytics/models"
)

// FilterQualifyingAppointments lọc các lịch hẹn được tính vào goal:
// đúng kỹ thuật viên, status completed hoặc confirmed, và điều kiện chữ ký
// khớp loại goal (services_signed/general_signed cần signatureUsed = true,
// bản unsigned cần false). Goal type "products" không định giá qua lịch hẹn —
// không có record nào qualify (chưa có nguồn product-sales ledger).
func FilterQualifyingAppointments(goal models.GoalDefinition, appts []models.AppointmentRecord) []models.AppointmentRecord {
	var wantSignature bool
	switch goal.GoalType {
	case models.GoalTypeServicesSigned, models.GoalTypeGeneralSigned:
		wantSignature = true
	case models.GoalTypeServicesUnsigned, models.GoalTypeGeneralUnsigned:
		wantSignature = false
	default:
		// products hoặc goal type lạ → không qualify gì
		return []models.AppointmentRecord{}
	}

	qualified := make([]models.AppointmentRecord, 0)
	for _, a := range appts {
		if a.TechnicianID != goal.TechnicianID {
			continue
		}
		if a.Status != models.AppointmentStatusCompleted && a.Status != models.AppointmentStatusConfirmed {
			continue
		}
		if a.SignatureUsed != wantSignature {
			continue
		}
		qualified = append(qualified, a)
	}
	return qualified
}

// ComputeGoalValue tính tổng giá trị của các lịch hẹn đã lọc qua price lookup.
// serviceId không resolve được đóng góp 0, không lỗi.
func ComputeGoalValue(appts []models.AppointmentRecord, priceOf func(serviceID string) float64) float64 {
	if priceOf == nil {
		return 0
	}
	var total float64
	for _, a := range appts {
		total += priceOf(a.ServiceID)
	}
	return total
}

// ComputeGoalProgress tính % tiến độ và trạng thái ngưỡng từ giá trị hiện tại.
// progressPercentage = min(100, current/max*100), max ≤ 0 trả về 0.
// Ngưỡng inclusive resolve lên trạng thái cao hơn: current == max → aboveMax,
// current == min → between.
func ComputeGoalProgress(goal models.GoalDefinition, currentValue float64) models.GoalProgress {
	progress := models.GoalProgress{
		GoalID:           goal.ID.Hex(),
		TechnicianID:     goal.TechnicianID,
		GoalType:         goal.GoalType,
		CurrentValue:     currentValue,
		MinExpectedValue: goal.MinExpectedValue,
		MaxExpectedValue: goal.MaxExpectedValue,
	}

	if goal.MaxExpectedValue > 0 {
		progress.ProgressPercentage = math.Min(100, currentValue/goal.MaxExpectedValue*100)
	}

	switch {
	case currentValue >= goal.MaxExpectedValue:
		progress.Status = models.GoalStatusAboveMax
	case currentValue >= goal.MinExpectedValue:
		progress.Status = models.GoalStatusBetween
	default:
		progress.Status = models.GoalStatusBelowMin
	}
	return progress
}
