// Package analyticshdl - Handler cho 3 báo cáo: inventory, client scores, goal progress.
package analyticshdl

import (
	"time"

	analyticsdto "salon_manager/internal/api/analytics/dto"
	basehdl "salon_manager/internal/api/base/handler"
	"salon_manager/internal/common"
	"salon_manager/internal/logger"

	"github.com/gofiber/fiber/v3"
)

// HandleGetInventoryReport xử lý GET /analytics/inventory — báo cáo tồn kho.
// Query: page, limit, abcClass (A|B|C|all), status (out_of_stock|low_stock|ok|all),
// sort (stockout_asc mặc định | turnover_desc | margin_desc | revenue_desc | product_name).
func (h *AnalyticsHandler) HandleGetInventoryReport(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		orgID := getActiveOrganizationID(c)
		if orgID == nil || orgID.IsZero() {
			c.Status(common.StatusBadRequest).JSON(fiber.Map{
				"code": common.ErrCodeValidationInput.Code, "message": "Vui lòng chọn tổ chức (active organization)", "status": "error",
			})
			return nil
		}

		var params analyticsdto.InventoryQueryParams
		_ = c.Bind().Query(&params)
		if !validateQueryParams(c, &params) {
			return nil
		}

		result, err := h.AnalyticsService.GetInventoryReport(c.Context(), *orgID, &params, time.Now())
		if err != nil {
			logger.WithRequest(c).WithError(err).Error("Lỗi tính báo cáo tồn kho")
			c.Status(common.StatusInternalServerError).JSON(fiber.Map{
				"code": common.ErrCodeDatabase.Code, "message": "Lỗi truy vấn báo cáo tồn kho", "status": "error",
			})
			return nil
		}

		c.Status(common.StatusOK).JSON(fiber.Map{
			"code": common.StatusOK, "message": "Thành công", "data": result, "status": "success",
		})
		return nil
	})
}

// HandleGetClientScores xử lý GET /analytics/clients/scores — loyalty + churn panel.
// Query: page, limit, tier (high|medium|low|all), atRiskOnly (true/false),
// sort (urgency_desc mặc định | days_delayed_desc | visits_desc | interval_asc).
func (h *AnalyticsHandler) HandleGetClientScores(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		orgID := getActiveOrganizationID(c)
		if orgID == nil || orgID.IsZero() {
			c.Status(common.StatusBadRequest).JSON(fiber.Map{
				"code": common.ErrCodeValidationInput.Code, "message": "Vui lòng chọn tổ chức (active organization)", "status": "error",
			})
			return nil
		}

		var params analyticsdto.ClientScoresQueryParams
		_ = c.Bind().Query(&params)
		if !validateQueryParams(c, &params) {
			return nil
		}

		result, err := h.AnalyticsService.GetClientScores(c.Context(), *orgID, &params, time.Now())
		if err != nil {
			logger.WithRequest(c).WithError(err).Error("Lỗi tính client scores")
			c.Status(common.StatusInternalServerError).JSON(fiber.Map{
				"code": common.ErrCodeDatabase.Code, "message": "Lỗi truy vấn client scores", "status": "error",
			})
			return nil
		}

		c.Status(common.StatusOK).JSON(fiber.Map{
			"code": common.StatusOK, "message": "Thành công", "data": result, "status": "success",
		})
		return nil
	})
}

// HandleGetGoalProgress xử lý GET /analytics/goals/progress — tiến độ goal theo kỳ.
// Query: month (1-12), year — thiếu thì mặc định kỳ hiện tại.
func (h *AnalyticsHandler) HandleGetGoalProgress(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		orgID := getActiveOrganizationID(c)
		if orgID == nil || orgID.IsZero() {
			c.Status(common.StatusBadRequest).JSON(fiber.Map{
				"code": common.ErrCodeValidationInput.Code, "message": "Vui lòng chọn tổ chức (active organization)", "status": "error",
			})
			return nil
		}

		var params analyticsdto.GoalProgressQueryParams
		_ = c.Bind().Query(&params)
		if !validateQueryParams(c, &params) {
			return nil
		}

		result, err := h.AnalyticsService.GetGoalProgress(c.Context(), *orgID, &params, time.Now())
		if err != nil {
			logger.WithRequest(c).WithError(err).Warn("Lỗi tính goal progress")
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		c.Status(common.StatusOK).JSON(fiber.Map{
			"code": common.StatusOK, "message": "Thành công", "data": result, "status": "success",
		})
		return nil
	})
}
