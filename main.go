package main

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"

	"Sistem-Absensi-Karyawan/config"
	_ "Sistem-Absensi-Karyawan/docs"
	"Sistem-Absensi-Karyawan/pkg/paseto"
	"Sistem-Absensi-Karyawan/repository"
	"Sistem-Absensi-Karyawan/router"
	"Sistem-Absensi-Karyawan/seeder"
	_ "time/tzdata" // zona waktu tetap tersedia di image minimal
)

// @title Sistem Absensi Karyawan API
// @version 1.0
// @description API absensi karyawan berbasis QR lokasi: check-in/check-out, shift kerja, pengajuan absen susulan, dan rekonsiliasi jam kerja bulanan
// @termsOfService https://github.com/your-repo/terms/
//
// @contact.name API Support
// @contact.url https://github.com/your-repo
// @contact.email support@example.com
//
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
//
// @host localhost:3000
// @BasePath /api/v1
// @schemes http https
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and PASETO token.
//
// @tag.name Auth
// @tag.description Authentication endpoints
//
// @tag.name Users
// @tag.description User management endpoints
//
// @tag.name Attendance
// @tag.description Check-in, check-out, dan riwayat kehadiran
//
// @tag.name Shift
// @tag.description Shift kerja
//
// @tag.name Location
// @tag.description Lokasi kerja dan QR Code
//
// @tag.name Device
// @tag.description Perangkat absensi terdaftar
//
// @tag.name Schedule
// @tag.description Penjadwalan shift dengan recurrence rule
//
// @tag.name Makeup
// @tag.description Pengajuan absen susulan
//
// @tag.name Report
// @tag.description Rekap harian, kalender, rekonsiliasi jam, dan ekspor
func main() {

	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file tidak ditemukan, menggunakan environment variables sistem")
	}

	cfg := config.LoadConfig()

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Fatalf("Zona waktu %q tidak dikenal: %v", cfg.Timezone, err)
	}

	if err := paseto.InitKey(cfg.PASETO_SECRET); err != nil {
		log.Fatalf("Gagal inisialisasi kunci PASETO: %v", err)
	}

	config.MongoConnect()
	config.InitDatabase()
	defer config.DisconnectDB()

	if os.Getenv("SEED_DB") == "true" {
		userRepo := repository.NewUserRepository()
		shiftRepo := repository.NewShiftRepository()
		locationRepo := repository.NewLocationRepository()
		deviceRepo := repository.NewDeviceRepository()

		seeder.SeedUsers(userRepo)
		seeder.SeedShifts(shiftRepo)
		seeder.SeedLocationsAndDevices(locationRepo, deviceRepo, userRepo)
	}

	if err := os.MkdirAll(filepath.Join(cfg.UploadDir, "evidence"), 0o755); err != nil {
		log.Printf("Warning: gagal menyiapkan direktori upload: %v", err)
	}

	app := fiber.New()

	config.SetupCORS(app)

	app.Use(logger.New())

	router.SetupRoutes(app, cfg, loc)

	log.Printf("Server running on port %s", cfg.Port)
	log.Printf("API Documentation: http://localhost:%s/docs/index.html", cfg.Port)
	log.Printf("Health Check: http://localhost:%s/", cfg.Port)
	log.Printf("CORS enabled for origins: %v", config.GetAllowedOrigins())
	log.Fatal(app.Listen(":" + cfg.Port))
}
