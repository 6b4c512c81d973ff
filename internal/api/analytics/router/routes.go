// Package router đăng ký các route thuộc domain Analytics: inventory, client scores, goal progress.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	analyticshdl "salon_manager/internal/api/analytics/handler"
	"salon_manager/internal/api/middleware"
	apirouter "salon_manager/internal/api/router"
)

// Register đăng ký tất cả route analytics lên v1.
// Mọi route báo cáo đều đi qua organization context middleware (X-Organization-ID).
func Register(v1 fiber.Router, r *apirouter.Router) error {
	analyticsHandler, err := analyticshdl.NewAnalyticsHandler()
	if err != nil {
		return fmt.Errorf("create analytics handler: %w", err)
	}
	orgContextMiddleware := middleware.OrganizationContextMiddleware()

	apirouter.RegisterRouteWithMiddleware(v1, "/analytics", "GET", "/inventory", []fiber.Handler{orgContextMiddleware}, analyticsHandler.HandleGetInventoryReport)
	apirouter.RegisterRouteWithMiddleware(v1, "/analytics", "GET", "/clients/scores", []fiber.Handler{orgContextMiddleware}, analyticsHandler.HandleGetClientScores)
	apirouter.RegisterRouteWithMiddleware(v1, "/analytics", "GET", "/goals/progress", []fiber.Handler{orgContextMiddleware}, analyticsHandler.HandleGetGoalProgress)

	return nil
}
