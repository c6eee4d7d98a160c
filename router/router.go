package router

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	"Sistem-Absensi-Karyawan/config"
	"Sistem-Absensi-Karyawan/config/middleware"
	_ "Sistem-Absensi-Karyawan/docs"
	"Sistem-Absensi-Karyawan/handlers"
	"Sistem-Absensi-Karyawan/repository"
	"Sistem-Absensi-Karyawan/service"
)

func SetupRoutes(app *fiber.App, cfg *config.AppConfig, loc *time.Location) {
	log.Println("Memulai pendaftaran rute aplikasi...")

	// Inisialisasi Repositories
	userRepo := repository.NewUserRepository()
	attendanceRepo := repository.NewAttendanceRepository()
	shiftRepo := repository.NewShiftRepository()
	locationRepo := repository.NewLocationRepository()
	deviceRepo := repository.NewDeviceRepository()
	scheduleRepo := repository.NewScheduleRuleRepository()
	makeupRepo := repository.NewMakeupRequestRepository()

	// Inisialisasi Services
	reportService := service.NewReportService(userRepo, attendanceRepo, loc)
	dashboardCache := service.NewDashboardCache()

	// Inisialisasi Handlers
	authHandler := handlers.NewAuthHandler(userRepo)
	userHandler := handlers.NewUserHandler(userRepo)
	attendanceHandler := handlers.NewAttendanceHandler(attendanceRepo, locationRepo, deviceRepo, shiftRepo, loc)
	shiftHandler := handlers.NewShiftHandler(shiftRepo)
	locationHandler := handlers.NewLocationHandler(locationRepo)
	deviceHandler := handlers.NewDeviceHandler(deviceRepo, locationRepo)
	scheduleHandler := handlers.NewScheduleHandler(scheduleRepo, shiftRepo, userRepo, loc)
	makeupHandler := handlers.NewMakeupRequestHandler(makeupRepo, attendanceRepo, cfg.UploadDir, loc)
	reportHandler := handlers.NewReportHandler(reportService, attendanceRepo, userRepo, makeupRepo, dashboardCache, loc)

	// Health check & Docs
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Sistem Absensi Karyawan API",
			"status":  "running",
			"docs":    "/docs/index.html",
		})
	})
	app.Get("/docs/*", swagger.HandlerDefault)
	app.Static("/uploads", cfg.UploadDir)

	// API v1 group
	api := app.Group("/api/v1")

	// Authentication routes
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", middleware.AuthMiddleware(), authHandler.Logout)

	// User routes
	protectedUserGroup := api.Group("/users", middleware.AuthMiddleware())
	protectedUserGroup.Get("/:id", userHandler.GetUserByID)

	// Admin routes
	adminGroup := api.Group("/admin", middleware.AuthMiddleware(), middleware.AdminMiddleware())
	adminGroup.Post("/users", userHandler.CreateUser)
	adminGroup.Get("/users", userHandler.GetAllUsers)
	adminGroup.Put("/users/:id", userHandler.UpdateUser)
	adminGroup.Delete("/users/:id", userHandler.DeleteUser)

	// Rute kehadiran karyawan
	attendanceGroup := api.Group("/attendance", middleware.AuthMiddleware())
	attendanceGroup.Post("/check-in", attendanceHandler.CheckIn)
	attendanceGroup.Post("/check-out", attendanceHandler.CheckOut)
	attendanceGroup.Get("/my-history", attendanceHandler.GetMyAttendanceHistory)

	adminAttendanceGroup := attendanceGroup.Group("/", middleware.AdminMiddleware())
	adminAttendanceGroup.Get("/today", attendanceHandler.GetTodayAttendance)

	adminGroup.Get("/attendance", attendanceHandler.GetAllAttendances)
	adminGroup.Put("/attendance/:id", attendanceHandler.UpdateAttendance)

	// Rute shift kerja
	api.Get("/shifts", middleware.AuthMiddleware(), shiftHandler.GetAllShifts)
	api.Get("/shifts/:id", middleware.AuthMiddleware(), shiftHandler.GetShiftByID)
	adminGroup.Post("/shifts", shiftHandler.CreateShift)
	adminGroup.Put("/shifts/:id", shiftHandler.UpdateShift)
	adminGroup.Delete("/shifts/:id", shiftHandler.DeleteShift)

	// Rute lokasi kerja
	api.Get("/locations", middleware.AuthMiddleware(), locationHandler.GetAllLocations)
	api.Get("/locations/:id", middleware.AuthMiddleware(), locationHandler.GetLocationByID)
	adminGroup.Post("/locations", locationHandler.CreateLocation)
	adminGroup.Put("/locations/:id", locationHandler.UpdateLocation)
	adminGroup.Post("/locations/:id/qr", locationHandler.GenerateLocationQR)
	adminGroup.Delete("/locations/:id", locationHandler.DeleteLocation)

	// Rute perangkat absensi (admin only)
	adminGroup.Post("/devices", deviceHandler.RegisterDevice)
	adminGroup.Get("/devices", deviceHandler.GetAllDevices)
	adminGroup.Put("/devices/:id/active", deviceHandler.SetDeviceActive)
	adminGroup.Delete("/devices/:id", deviceHandler.DeleteDevice)

	// Rute jadwal kerja
	scheduleGroup := api.Group("/schedules", middleware.AuthMiddleware())
	scheduleGroup.Get("/me", scheduleHandler.GetMySchedules)
	scheduleGroup.Get("/holidays", scheduleHandler.GetHolidays)
	adminGroup.Post("/schedules", scheduleHandler.CreateScheduleRule)
	adminGroup.Get("/schedules", scheduleHandler.GetAllSchedules)
	adminGroup.Get("/schedules/:id", scheduleHandler.GetScheduleRuleByID)
	adminGroup.Put("/schedules/:id", scheduleHandler.UpdateScheduleRule)
	adminGroup.Delete("/schedules/:id", scheduleHandler.DeleteScheduleRule)

	// Rute pengajuan absen susulan
	makeupGroup := api.Group("/makeup-requests", middleware.AuthMiddleware())
	makeupGroup.Post("/", makeupHandler.CreateMakeupRequest)
	makeupGroup.Post("/:id/evidence", makeupHandler.UploadEvidence)
	makeupGroup.Get("/my-requests", makeupHandler.GetMyMakeupRequests)
	adminGroup.Get("/makeup-requests", makeupHandler.GetAllMakeupRequests)
	adminGroup.Put("/makeup-requests/:id/status", makeupHandler.UpdateMakeupRequestStatus)

	// Rute laporan
	reportGroup := api.Group("/reports", middleware.AuthMiddleware())
	reportGroup.Get("/me/calendar", reportHandler.GetMyCalendar)
	reportGroup.Get("/me/hours", reportHandler.GetMyHoursSummary)
	adminGroup.Get("/reports/grid", reportHandler.GetMonthlyGrid)
	adminGroup.Get("/reports/hours", reportHandler.GetHoursSummaries)
	adminGroup.Get("/reports/hours/:userID", reportHandler.GetUserHoursSummary)
	adminGroup.Get("/reports/calendar/:userID", reportHandler.GetUserCalendar)
	adminGroup.Get("/reports/dashboard", reportHandler.GetDashboard)
	adminGroup.Get("/reports/export", reportHandler.ExportReport)

	log.Println("Semua rute aplikasi berhasil didaftarkan.")
	log.Println("Routes yang tersedia:")
	log.Println("- POST /api/v1/auth/login")
	log.Println("- POST /api/v1/auth/logout (protected)")
	log.Println("- GET /api/v1/users/:id (protected)")
	log.Println("- POST /api/v1/admin/users (admin only)")
	log.Println("- GET /api/v1/admin/users (admin only)")
	log.Println("- PUT /api/v1/admin/users/:id (admin only)")
	log.Println("- DELETE /api/v1/admin/users/:id (admin only)")
	log.Println("- POST /api/v1/attendance/check-in (protected)")
	log.Println("- POST /api/v1/attendance/check-out (protected)")
	log.Println("- GET /api/v1/attendance/my-history (protected)")
	log.Println("- GET /api/v1/attendance/today (admin only)")
	log.Println("- GET /api/v1/admin/attendance (admin only)")
	log.Println("- PUT /api/v1/admin/attendance/:id (admin only)")
	log.Println("- GET /api/v1/shifts (protected)")
	log.Println("- POST /api/v1/admin/shifts (admin only)")
	log.Println("- GET /api/v1/locations (protected)")
	log.Println("- POST /api/v1/admin/locations (admin only)")
	log.Println("- POST /api/v1/admin/locations/:id/qr (admin only)")
	log.Println("- POST /api/v1/admin/devices (admin only)")
	log.Println("- PUT /api/v1/admin/devices/:id/active (admin only)")
	log.Println("- GET /api/v1/schedules/me (protected)")
	log.Println("- GET /api/v1/schedules/holidays (protected)")
	log.Println("- POST /api/v1/admin/schedules (admin only)")
	log.Println("- GET /api/v1/admin/schedules (admin only)")
	log.Println("- POST /api/v1/makeup-requests (protected)")
	log.Println("- POST /api/v1/makeup-requests/:id/evidence (protected)")
	log.Println("- GET /api/v1/makeup-requests/my-requests (protected)")
	log.Println("- GET /api/v1/admin/makeup-requests (admin only)")
	log.Println("- PUT /api/v1/admin/makeup-requests/:id/status (admin only)")
	log.Println("- GET /api/v1/reports/me/calendar (protected)")
	log.Println("- GET /api/v1/reports/me/hours (protected)")
	log.Println("- GET /api/v1/admin/reports/grid (admin only)")
	log.Println("- GET /api/v1/admin/reports/hours (admin only)")
	log.Println("- GET /api/v1/admin/reports/calendar/:userID (admin only)")
	log.Println("- GET /api/v1/admin/reports/dashboard (admin only)")
	log.Println("- GET /api/v1/admin/reports/export (admin only)")
	log.Println("Swagger documentation tersedia di: /docs/index.html")
}
