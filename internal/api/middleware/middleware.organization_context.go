package middleware

import (
	"context"

	"salon_manager/internal/common"
	"salon_manager/internal/global"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrganizationContextMiddleware middleware để quản lý organization context.
// - Đọc X-Organization-ID từ header
// - Validate organization tồn tại trong collection organizations
// - Lưu active_organization_id vào context cho các handler phía sau
// Handler tự quyết định có bắt buộc organization hay không (báo cáo analytics thì bắt buộc).
func OrganizationContextMiddleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		orgIDStr := c.Get("X-Organization-ID")
		if orgIDStr == "" {
			// Không có header — cho phép tiếp tục, handler sẽ từ chối nếu route cần organization
			return c.Next()
		}

		orgID, err := primitive.ObjectIDFromHex(orgIDStr)
		if err != nil {
			HandleErrorResponse(c, common.NewError(
				common.ErrCodeValidationFormat,
				"X-Organization-ID không đúng định dạng ObjectID",
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		// Validate organization tồn tại
		orgColl, exists := global.RegistryCollections.Get(global.MongoDB_ColNames.Organizations)
		if exists {
			count, err := orgColl.CountDocuments(context.Background(), bson.M{"_id": orgID})
			if err != nil {
				HandleErrorResponse(c, common.ConvertMongoError(err))
				return nil
			}
			if count == 0 {
				HandleErrorResponse(c, common.NewError(
					common.ErrCodeValidationInput,
					"Organization không tồn tại",
					common.StatusNotFound,
					nil,
				))
				return nil
			}
		}

		c.Locals("active_organization_id", orgID.Hex())
		return c.Next()
	}
}
