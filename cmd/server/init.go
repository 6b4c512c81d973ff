package main

import (
	"context"

	"salon_manager/config"
	analyticsmodels "salon_manager/internal/api/analytics/models"
	"salon_manager/internal/database"
	"salon_manager/internal/global"

	"github.com/sirupsen/logrus"
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initColNames()         // Khởi tạo tên các collection trong database
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
}

// Hàm khởi tạo tên các collection trong database
func initColNames() {
	global.MongoDB_ColNames.Organizations = "organizations"
	global.MongoDB_ColNames.Appointments = "appointments"
	global.MongoDB_ColNames.Clients = "clients"
	global.MongoDB_ColNames.Technicians = "technicians"
	global.MongoDB_ColNames.SalonServices = "salon_services"
	global.MongoDB_ColNames.Products = "products"
	global.MongoDB_ColNames.Goals = "goals"

	logrus.Info("Initialized collection names") // Ghi log thông báo đã khởi tạo tên các collection
}

// Hàm khởi tạo validator (dùng global.InitValidator để đăng ký custom validators: no_xss, exists, ...)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator") // Ghi log thông báo đã khởi tạo validator
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.MongoDB_ServerConfig = config.NewConfig()
	if global.MongoDB_ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil") // Ghi log lỗi nếu khởi tạo cấu hình thất bại
	}
	logrus.Info("Initialized server config") // Ghi log thông báo đã khởi tạo cấu hình server
}

// Hàm khởi tạo kết nối database
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.MongoDB_ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err) // Ghi log lỗi nếu kết nối database thất bại
	}
	logrus.Info("Connected to MongoDB") // Ghi log thông báo đã kết nối database thành công

	// Khởi tạo db và các collections nếu chưa có
	if err := database.EnsureDatabaseAndCollections(global.MongoDB_Session); err != nil {
		logrus.Fatalf("Failed to ensure database and collections: %v", err)
	}
	logrus.Info("Ensured database and collections") // Ghi log thông báo đã đảm bảo database và các collection

	// Khởi tạo các index cho các collection theo tag `index` trên model
	dbName := global.MongoDB_ServerConfig.MongoDB_DBName
	db := global.MongoDB_Session.Database(dbName)
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Appointments), analyticsmodels.AppointmentRecord{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Products), analyticsmodels.ProductRecord{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.SalonServices), analyticsmodels.SalonService{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Goals), analyticsmodels.GoalDefinition{})
}
