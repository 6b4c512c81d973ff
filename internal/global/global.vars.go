package global

import (
	"salon_manager/config"
	"salon_manager/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDB_CollectionName chứa tên các collection trong MongoDB
type MongoDB_CollectionName struct {
	Organizations string // Tên collection cho tổ chức (salon)
	Appointments  string // Tên collection cho lịch hẹn
	Clients       string // Tên collection cho khách hàng
	Technicians   string // Tên collection cho kỹ thuật viên
	SalonServices string // Tên collection cho dịch vụ salon
	Products      string // Tên collection cho sản phẩm bán lẻ
	Goals         string // Tên collection cho mục tiêu doanh số
}

// Các biến toàn cục
var Validate *validator.Validate              // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client             // Phiên kết nối tới MongoDB
var MongoDB_ServerConfig *config.Configuration // Cấu hình của server
var MongoDB_ColNames MongoDB_CollectionName = *new(MongoDB_CollectionName) // Tên các collection

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
