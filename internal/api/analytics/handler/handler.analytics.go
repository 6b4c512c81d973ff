// Package analyticshdl chứa HTTP handler cho domain Analytics (inventory, client scores, goal progress).
package analyticshdl

import (
	"fmt"

	analyticsvc "salon_manager/internal/api/analytics/service"
	basehdl "salon_manager/internal/api/base/handler"
	"salon_manager/internal/common"
	"salon_manager/internal/global"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AnalyticsHandler xử lý API báo cáo analytics.
type AnalyticsHandler struct {
	AnalyticsService *analyticsvc.AnalyticsService
}

// NewAnalyticsHandler tạo mới AnalyticsHandler.
func NewAnalyticsHandler() (*AnalyticsHandler, error) {
	svc, err := analyticsvc.NewAnalyticsService()
	if err != nil {
		return nil, fmt.Errorf("tạo AnalyticsService: %w", err)
	}
	return &AnalyticsHandler{
		AnalyticsService: svc,
	}, nil
}

// validateQueryParams validate query params bằng global validator.
// Trả về false nếu params không hợp lệ (đã ghi response lỗi cho client).
func validateQueryParams(c fiber.Ctx, params interface{}) bool {
	if err := global.Validate.Struct(params); err != nil {
		basehdl.HandleResponse(c, nil, common.NewError(
			common.ErrCodeValidationInput,
			"Tham số truy vấn không hợp lệ: "+err.Error(),
			common.StatusBadRequest,
			nil,
		))
		return false
	}
	return true
}

// getActiveOrganizationID lấy organization ID từ context (set bởi organization middleware).
func getActiveOrganizationID(c fiber.Ctx) *primitive.ObjectID {
	orgIDStr, ok := c.Locals("active_organization_id").(string)
	if !ok || orgIDStr == "" {
		return nil
	}
	orgID, err := primitive.ObjectIDFromHex(orgIDStr)
	if err != nil {
		return nil
	}
	return &orgID
}
