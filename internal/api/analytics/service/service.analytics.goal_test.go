// Package analyticsvc - Test goal progress: lọc lịch hẹn, tổng giá trị, clamp % và trạng thái ngưỡng.
package analyticsvc

import (
	"testing"
	"time"

	"salon_manager/internal/api/analytics/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func appt(techID, status, serviceID string, signed bool) models.AppointmentRecord {
	return models.AppointmentRecord{
		ID:            primitive.NewObjectID(),
		Date:          time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC),
		Status:        status,
		TechnicianID:  techID,
		ServiceID:     serviceID,
		SignatureUsed: signed,
	}
}

func TestFilterQualifyingAppointments_DieuKienLoc(t *testing.T) {
	goal := models.GoalDefinition{
		TechnicianID: "tech1",
		GoalType:     models.GoalTypeServicesSigned,
	}
	appts := []models.AppointmentRecord{
		appt("tech1", models.AppointmentStatusCompleted, "s1", true),  // qualify
		appt("tech1", models.AppointmentStatusConfirmed, "s2", true),  // qualify (confirmed cũng tính)
		appt("tech1", models.AppointmentStatusPending, "s3", true),    // sai status
		appt("tech1", models.AppointmentStatusCancelled, "s4", true),  // sai status
		appt("tech1", models.AppointmentStatusCompleted, "s5", false), // sai chữ ký
		appt("tech2", models.AppointmentStatusCompleted, "s6", true),  // sai kỹ thuật viên
	}

	got := FilterQualifyingAppointments(goal, appts)
	if len(got) != 2 {
		t.Fatalf("số lịch hẹn qualify = %d, muốn 2", len(got))
	}
	if got[0].ServiceID != "s1" || got[1].ServiceID != "s2" {
		t.Errorf("lọc sai records: %v, %v", got[0].ServiceID, got[1].ServiceID)
	}
}

func TestFilterQualifyingAppointments_Unsigned(t *testing.T) {
	goal := models.GoalDefinition{
		TechnicianID: "tech1",
		GoalType:     models.GoalTypeGeneralUnsigned,
	}
	appts := []models.AppointmentRecord{
		appt("tech1", models.AppointmentStatusCompleted, "s1", false), // qualify
		appt("tech1", models.AppointmentStatusCompleted, "s2", true),  // sai chữ ký
	}
	got := FilterQualifyingAppointments(goal, appts)
	if len(got) != 1 || got[0].ServiceID != "s1" {
		t.Errorf("goal unsigned chỉ nhận signatureUsed=false, got %d records", len(got))
	}
}

func TestFilterQualifyingAppointments_ProductsKhongQualify(t *testing.T) {
	goal := models.GoalDefinition{
		TechnicianID: "tech1",
		GoalType:     models.GoalTypeProducts,
	}
	appts := []models.AppointmentRecord{
		appt("tech1", models.AppointmentStatusCompleted, "s1", true),
		appt("tech1", models.AppointmentStatusCompleted, "s2", false),
	}
	if got := FilterQualifyingAppointments(goal, appts); len(got) != 0 {
		t.Errorf("goal type products không định giá qua lịch hẹn, got %d records", len(got))
	}
}

func TestComputeGoalValue(t *testing.T) {
	prices := map[string]float64{"s1": 500, "s2": 1000}
	priceOf := func(id string) float64 { return prices[id] }

	appts := []models.AppointmentRecord{
		appt("tech1", models.AppointmentStatusCompleted, "s1", true),
		appt("tech1", models.AppointmentStatusCompleted, "s2", true),
		appt("tech1", models.AppointmentStatusCompleted, "unknown", true), // lookup miss → 0
	}
	if got := ComputeGoalValue(appts, priceOf); got != 1500 {
		t.Errorf("currentValue = %v, muốn 1500", got)
	}

	if got := ComputeGoalValue(appts, nil); got != 0 {
		t.Errorf("price lookup nil phải trả 0, got %v", got)
	}
	if got := ComputeGoalValue(nil, priceOf); got != 0 {
		t.Errorf("không có lịch hẹn phải trả 0, got %v", got)
	}
}

func TestComputeGoalProgress_KichBan1500(t *testing.T) {
	goal := models.GoalDefinition{
		ID:               primitive.NewObjectID(),
		MinExpectedValue: 1000,
		MaxExpectedValue: 2000,
	}
	progress := ComputeGoalProgress(goal, 1500)

	if progress.ProgressPercentage != 75 {
		t.Errorf("progressPercentage = %v, muốn 75", progress.ProgressPercentage)
	}
	if progress.Status != models.GoalStatusBetween {
		t.Errorf("status = %s, muốn between", progress.Status)
	}
}

func TestComputeGoalProgress_ClampVaNguong(t *testing.T) {
	goal := models.GoalDefinition{MinExpectedValue: 1000, MaxExpectedValue: 2000}

	// Gấp đôi max vẫn clamp 100, aboveMax
	progress := ComputeGoalProgress(goal, 4000)
	if progress.ProgressPercentage != 100 {
		t.Errorf("vượt max phải clamp 100, got %v", progress.ProgressPercentage)
	}
	if progress.Status != models.GoalStatusAboveMax {
		t.Errorf("status = %s, muốn aboveMax", progress.Status)
	}

	// Boundary inclusive: == max → aboveMax, == min → between
	if got := ComputeGoalProgress(goal, 2000).Status; got != models.GoalStatusAboveMax {
		t.Errorf("currentValue == max phải là aboveMax, got %s", got)
	}
	if got := ComputeGoalProgress(goal, 1000).Status; got != models.GoalStatusBetween {
		t.Errorf("currentValue == min phải là between, got %s", got)
	}
	if got := ComputeGoalProgress(goal, 999).Status; got != models.GoalStatusBelowMin {
		t.Errorf("dưới min phải là belowMin, got %s", got)
	}
}

func TestComputeGoalProgress_MaxBangKhong(t *testing.T) {
	goal := models.GoalDefinition{MinExpectedValue: 0, MaxExpectedValue: 0}
	progress := ComputeGoalProgress(goal, 500)
	if progress.ProgressPercentage != 0 {
		t.Errorf("max 0 phải trả progressPercentage 0 (không chia cho 0), got %v", progress.ProgressPercentage)
	}
}
