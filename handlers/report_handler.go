package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Sistem-Absensi-Karyawan/models"
	"Sistem-Absensi-Karyawan/pkg/paseto"
	"Sistem-Absensi-Karyawan/repository"
	"Sistem-Absensi-Karyawan/service"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ReportHandler struct {
	reportService  *service.ReportService
	attendanceRepo repository.AttendanceRepository
	userRepo       *repository.UserRepository
	makeupRepo     repository.MakeupRequestRepository
	cache          *service.DashboardCache
	loc            *time.Location
}

func NewReportHandler(
	reportService *service.ReportService,
	attendanceRepo repository.AttendanceRepository,
	userRepo *repository.UserRepository,
	makeupRepo repository.MakeupRequestRepository,
	cache *service.DashboardCache,
	loc *time.Location,
) *ReportHandler {
	return &ReportHandler{
		reportService:  reportService,
		attendanceRepo: attendanceRepo,
		userRepo:       userRepo,
		makeupRepo:     makeupRepo,
		cache:          cache,
		loc:            loc,
	}
}

func (h *ReportHandler) monthParam(c *fiber.Ctx) (string, error) {
	month := c.Query("month")
	if month == "" {
		month = time.Now().In(h.loc).Format(service.MonthLayout)
	}
	if _, _, err := service.MonthRange(month, h.loc); err != nil {
		return "", err
	}
	return month, nil
}

// GetMonthlyGrid godoc
// @Summary Get Monthly Grid
// @Description Rekap harian seluruh karyawan dalam satu bulan: satu baris per karyawan, satu glyph per hari kerja (admin only)
// @Tags Report
// @Produce json
// @Security BearerAuth
// @Param month query string false "Bulan (YYYY-MM), default bulan berjalan"
// @Success 200 {object} models.MonthlyGrid
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/reports/grid [get]
func (h *ReportHandler) GetMonthlyGrid(c *fiber.Ctx) error {
	month, err := h.monthParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format bulan tidak valid, gunakan YYYY-MM"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 15*time.Second)
	defer cancel()

	grid, err := h.reportService.MonthlyGrid(ctx, month)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyusun rekap harian", "details": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(grid)
}

// GetHoursSummaries godoc
// @Summary Get Hours Summaries
// @Description Rekonsiliasi jam kerja bulanan seluruh karyawan (admin only)
// @Tags Report
// @Produce json
// @Security BearerAuth
// @Param month query string false "Bulan (YYYY-MM), default bulan berjalan"
// @Success 200 {array} models.HoursSummary
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/reports/hours [get]
func (h *ReportHandler) GetHoursSummaries(c *fiber.Ctx) error {
	month, err := h.monthParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format bulan tidak valid, gunakan YYYY-MM"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 15*time.Second)
	defer cancel()

	summaries, err := h.reportService.HoursSummaries(ctx, month)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyusun rekonsiliasi jam kerja", "details": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(summaries)
}

// GetUserCalendar godoc
// @Summary Get User Calendar
// @Description Kalender bulanan satu karyawan, 6 minggu dimulai hari Senin (admin only)
// @Tags Report
// @Produce json
// @Security BearerAuth
// @Param userID path string true "User ID"
// @Param month query string false "Bulan (YYYY-MM), default bulan berjalan"
// @Success 200 {object} models.CalendarGrid
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/reports/calendar/{userID} [get]
func (h *ReportHandler) GetUserCalendar(c *fiber.Ctx) error {
	userID, err := primitive.ObjectIDFromHex(c.Params("userID"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID user tidak valid"})
	}

	month, err := h.monthParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format bulan tidak valid, gunakan YYYY-MM"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 15*time.Second)
	defer cancel()

	calendar, err := h.reportService.UserCalendar(ctx, userID, month)
	if err != nil {
		if err.Error() == "user tidak ditemukan" {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User tidak ditemukan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyusun kalender", "details": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(calendar)
}

// GetMyCalendar godoc
// @Summary Get My Calendar
// @Description Kalender bulanan milik sendiri
// @Tags Report
// @Produce json
// @Security BearerAuth
// @Param month query string false "Bulan (YYYY-MM), default bulan berjalan"
// @Success 200 {object} models.CalendarGrid
// @Router /reports/me/calendar [get]
func (h *ReportHandler) GetMyCalendar(c *fiber.Ctx) error {
	claims, ok := c.Locals("user").(*paseto.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Tidak terautentikasi atau klaim token tidak valid"})
	}

	month, err := h.monthParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format bulan tidak valid, gunakan YYYY-MM"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 15*time.Second)
	defer cancel()

	calendar, err := h.reportService.UserCalendar(ctx, claims.UserID, month)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyusun kalender", "details": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(calendar)
}

// GetMyHoursSummary godoc
// @Summary Get My Hours Summary
// @Description Rekonsiliasi jam kerja bulanan milik sendiri
// @Tags Report
// @Produce json
// @Security BearerAuth
// @Param month query string false "Bulan (YYYY-MM), default bulan berjalan"
// @Success 200 {object} models.HoursSummary
// @Router /reports/me/hours [get]
func (h *ReportHandler) GetMyHoursSummary(c *fiber.Ctx) error {
	claims, ok := c.Locals("user").(*paseto.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Tidak terautentikasi atau klaim token tidak valid"})
	}

	month, err := h.monthParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format bulan tidak valid, gunakan YYYY-MM"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 15*time.Second)
	defer cancel()

	summary, err := h.reportService.UserHoursSummary(ctx, claims.UserID, month)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyusun rekonsiliasi jam kerja", "details": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(summary)
}

// GetUserHoursSummary godoc
// @Summary Get User Hours Summary
// @Description Rekonsiliasi jam kerja bulanan satu karyawan (admin only)
// @Tags Report
// @Produce json
// @Security BearerAuth
// @Param userID path string true "User ID"
// @Param month query string false "Bulan (YYYY-MM), default bulan berjalan"
// @Success 200 {object} models.HoursSummary
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/reports/hours/{userID} [get]
func (h *ReportHandler) GetUserHoursSummary(c *fiber.Ctx) error {
	userID, err := primitive.ObjectIDFromHex(c.Params("userID"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID user tidak valid"})
	}

	month, err := h.monthParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format bulan tidak valid, gunakan YYYY-MM"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 15*time.Second)
	defer cancel()

	summary, err := h.reportService.UserHoursSummary(ctx, userID, month)
	if err != nil {
		if err.Error() == "user tidak ditemukan" {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User tidak ditemukan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyusun rekonsiliasi jam kerja", "details": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(summary)
}

// GetDashboard godoc
// @Summary Get Dashboard Stats
// @Description Statistik harian untuk dashboard admin. Hasil refresh yang datang terlambat tidak menimpa data yang lebih baru.
// @Tags Report
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.DashboardStats
// @Failure 500 {object} object{error=string,stale=models.DashboardStats}
// @Router /admin/reports/dashboard [get]
func (h *ReportHandler) GetDashboard(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 15*time.Second)
	defer cancel()

	stats, err := h.cache.Refresh(ctx, h.fetchDashboardStats)
	if err != nil {
		response := fiber.Map{"error": "Gagal memuat statistik dashboard"}
		if stats != nil {
			response["stale"] = stats
		}
		return c.Status(fiber.StatusInternalServerError).JSON(response)
	}

	return c.Status(fiber.StatusOK).JSON(stats)
}

func (h *ReportHandler) fetchDashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	today := time.Now().In(h.loc).Format(service.DateLayout)

	totalKaryawan, err := h.userRepo.CountByRole(ctx, "karyawan")
	if err != nil {
		return nil, err
	}
	hadir, err := h.attendanceRepo.CountByStatusOnDate(ctx, today, models.StatusHadir)
	if err != nil {
		return nil, err
	}
	telat, err := h.attendanceRepo.CountByStatusOnDate(ctx, today, models.StatusTelat)
	if err != nil {
		return nil, err
	}
	susulan, err := h.attendanceRepo.CountByStatusOnDate(ctx, today, models.StatusSusulan)
	if err != nil {
		return nil, err
	}
	sesiTerbuka, err := h.attendanceRepo.CountOpenSessionsOnDate(ctx, today)
	if err != nil {
		return nil, err
	}
	pending, err := h.makeupRepo.CountPendingRequests(ctx)
	if err != nil {
		return nil, err
	}

	return &models.DashboardStats{
		Date:             today,
		TotalKaryawan:    totalKaryawan,
		HadirHariIni:     hadir,
		TelatHariIni:     telat,
		SusulanHariIni:   susulan,
		SesiTerbuka:      sesiTerbuka,
		PengajuanPending: pending,
		UpdatedAt:        time.Now(),
	}, nil
}

// ExportReport godoc
// @Summary Export Report
// @Description Mengunduh laporan bulanan sebagai CSV atau XLSX (admin only). type: attendance, hours, atau grid.
// @Tags Report
// @Produce octet-stream
// @Security BearerAuth
// @Param type query string false "Jenis laporan (attendance/hours/grid)" default(attendance)
// @Param format query string false "Format file (csv/xlsx)" default(csv)
// @Param month query string false "Bulan (YYYY-MM), default bulan berjalan"
// @Success 200 {file} file
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/reports/export [get]
func (h *ReportHandler) ExportReport(c *fiber.Ctx) error {
	month, err := h.monthParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format bulan tidak valid, gunakan YYYY-MM"})
	}

	reportType := c.Query("type", "attendance")
	format := c.Query("format", "csv")
	if format != "csv" && format != "xlsx" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format tidak dikenal, gunakan csv atau xlsx"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 30*time.Second)
	defer cancel()

	var (
		content  []byte
		baseName string
	)

	switch reportType {
	case "attendance":
		first, last, err := service.MonthRange(month, h.loc)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format bulan tidak valid, gunakan YYYY-MM"})
		}
		filter := bson.M{"date": bson.M{
			"$gte": first.Format(service.DateLayout),
			"$lte": last.Format(service.DateLayout),
		}}
		records, _, err := h.attendanceRepo.GetAllAttendancesWithUserDetails(ctx, filter, 1, 10000)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data absensi"})
		}
		if format == "xlsx" {
			content, err = service.AttendanceXLSX(records)
		} else {
			content, err = service.AttendanceCSV(records)
		}
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyusun laporan", "details": err.Error()})
		}
		baseName = "laporan_absensi_" + month

	case "hours":
		summaries, err := h.reportService.HoursSummaries(ctx, month)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyusun rekonsiliasi jam kerja", "details": err.Error()})
		}
		if format == "xlsx" {
			content, err = service.HoursSummaryXLSX(summaries)
		} else {
			content, err = service.HoursSummaryCSV(summaries)
		}
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyusun laporan", "details": err.Error()})
		}
		baseName = "rekonsiliasi_jam_" + month

	case "grid":
		grid, err := h.reportService.MonthlyGrid(ctx, month)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyusun rekap harian", "details": err.Error()})
		}
		if format == "xlsx" {
			content, err = service.GridXLSX(grid)
		} else {
			content, err = service.GridCSV(grid)
		}
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyusun laporan", "details": err.Error()})
		}
		baseName = "rekap_harian_" + month

	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Jenis laporan tidak dikenal, gunakan attendance, hours, atau grid"})
	}

	fileName := fmt.Sprintf("%s.%s", baseName, format)
	if format == "xlsx" {
		c.Set(fiber.HeaderContentType, xlsxContentType)
	} else {
		c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	}
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, fileName))

	return c.Status(fiber.StatusOK).Send(content)
}
