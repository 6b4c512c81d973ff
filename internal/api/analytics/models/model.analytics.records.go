// Package models - các record đầu vào cho analytics engine (appointments, products, goals).
// Document Mongo được scope theo ownerOrganizationId; engine thuần không áp dụng tenancy.
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trạng thái lịch hẹn
const (
	AppointmentStatusPending   = "pending"   // Chờ xác nhận
	AppointmentStatusConfirmed = "confirmed" // Đã xác nhận
	AppointmentStatusCompleted = "completed" // Đã hoàn thành
	AppointmentStatusCancelled = "cancelled" // Đã hủy
)

// Loại mục tiêu doanh số
const (
	GoalTypeProducts         = "products"          // Doanh số sản phẩm (chưa có nguồn định giá — luôn 0)
	GoalTypeServicesUnsigned = "services_unsigned" // Dịch vụ không chữ ký
	GoalTypeServicesSigned   = "services_signed"   // Dịch vụ có chữ ký
	GoalTypeGeneralUnsigned  = "general_unsigned"  // Tổng hợp không chữ ký
	GoalTypeGeneralSigned    = "general_signed"    // Tổng hợp có chữ ký
)

// AppointmentRecord lưu lịch hẹn (appointments).
type AppointmentRecord struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	Date          time.Time `json:"date" bson:"date" index:"single:-1"`       // Thời điểm hẹn
	Status        string    `json:"status" bson:"status" index:"single:1"`    // pending | confirmed | completed | cancelled
	ClientID      string    `json:"clientId" bson:"clientId" index:"single:1"`
	TechnicianID  string    `json:"technicianId" bson:"technicianId" index:"single:1"`
	ServiceID     string    `json:"serviceId" bson:"serviceId"`
	SignatureUsed bool      `json:"signatureUsed" bson:"signatureUsed"` // Khách có ký xác nhận dịch vụ hay không
	UnitPrice     float64   `json:"unitPrice" bson:"unitPrice"`         // Giá tại thời điểm đặt (service layer resolve từ salon_services)

	// Phân quyền
	OwnerOrganizationID primitive.ObjectID `json:"ownerOrganizationId" bson:"ownerOrganizationId" index:"single:1"`

	// Metadata
	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}

// ProductRecord lưu sản phẩm bán lẻ (products).
// Các field numeric thiếu trong document cũ decode về 0 — engine coi 0 là giá trị trung tính.
type ProductRecord struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	Name      string    `json:"name" bson:"name"`
	Category  string    `json:"category,omitempty" bson:"category,omitempty"`
	Stock     int64     `json:"stock" bson:"stock"`         // Tồn kho hiện tại (≥0)
	MinStock  int64     `json:"minStock" bson:"minStock"`   // Ngưỡng cảnh báo tồn kho
	Price     float64   `json:"price" bson:"price"`         // Giá bán
	Cost      float64   `json:"cost" bson:"cost"`           // Giá vốn
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"` // Ngày bắt đầu bán — mốc tính turnover
	TotalSold int64     `json:"totalSold" bson:"totalSold"` // Lũy kế số lượng đã bán

	// Phân quyền
	OwnerOrganizationID primitive.ObjectID `json:"ownerOrganizationId" bson:"ownerOrganizationId" index:"single:1"`

	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}

// SalonService lưu dịch vụ salon (salon_services) — nguồn price lookup cho goal progress.
type SalonService struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	Name     string  `json:"name" bson:"name"`
	Price    float64 `json:"price" bson:"price"`
	Duration int     `json:"duration,omitempty" bson:"duration,omitempty"` // Phút

	// Phân quyền
	OwnerOrganizationID primitive.ObjectID `json:"ownerOrganizationId" bson:"ownerOrganizationId" index:"single:1"`
}

// ClientVisitHistory là chuỗi ngày ghé thăm (completed only) của một khách.
// Service layer build từ appointments; engine chỉ đọc.
type ClientVisitHistory struct {
	ClientID string      `json:"clientId" bson:"clientId"`
	Visits   []time.Time `json:"visits" bson:"visits"` // Không bắt buộc đã sort — engine tự sort ascending
}

// GoalDefinition lưu mục tiêu doanh số theo kỹ thuật viên/tháng (goals).
// Ràng buộc: maxExpectedValue ≥ minExpectedValue ≥ 0.
type GoalDefinition struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	TechnicianID     string  `json:"technicianId" bson:"technicianId" index:"single:1"`
	GoalType         string  `json:"goalType" bson:"goalType"` // products | services_unsigned | services_signed | general_unsigned | general_signed
	MinExpectedValue float64 `json:"minExpectedValue" bson:"minExpectedValue"`
	MaxExpectedValue float64 `json:"maxExpectedValue" bson:"maxExpectedValue"`
	Month            int     `json:"month" bson:"month" index:"compound:goal_org_period"` // 1-12
	Year             int     `json:"year" bson:"year" index:"compound:goal_org_period"`

	// Phân quyền
	OwnerOrganizationID primitive.ObjectID `json:"ownerOrganizationId" bson:"ownerOrganizationId" index:"single:1,compound:goal_org_period"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
