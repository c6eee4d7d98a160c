package handlers

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Sistem-Absensi-Karyawan/models"
	"Sistem-Absensi-Karyawan/pkg/paseto"
	util "Sistem-Absensi-Karyawan/pkg/utils"
	"Sistem-Absensi-Karyawan/repository"
	"Sistem-Absensi-Karyawan/service"
)

type AttendanceHandler struct {
	repo         repository.AttendanceRepository
	locationRepo *repository.LocationRepository
	deviceRepo   *repository.DeviceRepository
	shiftRepo    *repository.ShiftRepository
	loc          *time.Location
}

func NewAttendanceHandler(
	repo repository.AttendanceRepository,
	locationRepo *repository.LocationRepository,
	deviceRepo *repository.DeviceRepository,
	shiftRepo *repository.ShiftRepository,
	loc *time.Location,
) *AttendanceHandler {
	return &AttendanceHandler{
		repo:         repo,
		locationRepo: locationRepo,
		deviceRepo:   deviceRepo,
		shiftRepo:    shiftRepo,
		loc:          loc,
	}
}

// CheckIn godoc
// @Summary Check In
// @Description Absen masuk dengan memindai QR lokasi dari perangkat terdaftar. Status Telat diturunkan dari jam mulai shift.
// @Tags Attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.AttendanceCheckInPayload true "Data absen masuk"
// @Success 201 {object} object{message=string,attendance=models.Attendance}
// @Failure 400 {object} object{error=string,errors=array}
// @Failure 403 {object} models.ErrorResponse "Di luar radius atau perangkat tidak sah"
// @Failure 404 {object} models.ErrorResponse "QR, perangkat, atau shift tidak dikenal"
// @Failure 409 {object} models.ErrorResponse "Masih ada sesi absensi terbuka"
// @Router /attendance/check-in [post]
func (h *AttendanceHandler) CheckIn(c *fiber.Ctx) error {
	claims, ok := c.Locals("user").(*paseto.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Tidak terautentikasi atau klaim token tidak valid"})
	}

	var payload models.AttendanceCheckInPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	now := time.Now().In(h.loc)
	today := now.Format(service.DateLayout)

	openSession, err := h.repo.FindOpenSession(ctx, claims.UserID, today)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal memeriksa sesi absensi"})
	}
	if openSession != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Anda masih memiliki sesi absensi yang belum ditutup. Lakukan check-out terlebih dahulu."})
	}

	location, err := h.locationRepo.FindByQRValue(ctx, payload.QRValue)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal memeriksa lokasi"})
	}
	if location == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "QR Code lokasi tidak dikenal."})
	}

	distance := util.HaversineMeter(location.Latitude, location.Longitude, *payload.Latitude, *payload.Longitude)
	if distance > location.RadiusM {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": fmt.Sprintf("Anda berada %.0f meter dari %s, di luar radius %.0f meter.", distance, location.Name, location.RadiusM),
		})
	}

	device, err := h.deviceRepo.FindBySerial(ctx, payload.DeviceSerial)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal memeriksa perangkat"})
	}
	if device == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Perangkat tidak terdaftar."})
	}
	if !device.Active {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Perangkat sedang dinonaktifkan."})
	}
	if device.LocationID != location.ID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Perangkat tidak terdaftar pada lokasi ini."})
	}

	shiftID, err := primitive.ObjectIDFromHex(payload.ShiftID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID shift tidak valid"})
	}
	shift, err := h.shiftRepo.FindByID(ctx, shiftID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal memeriksa shift"})
	}
	if shift == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Shift tidak ditemukan."})
	}

	checkInClock := now.Format(service.ClockLayout)
	status := models.StatusHadir

	nowClock, err := service.ParseClock(checkInClock)
	if err == nil {
		startClock, parseErr := service.ParseClock(shift.StartTime)
		if parseErr == nil && nowClock > startClock {
			status = models.StatusTelat
		}
	}

	newAttendance := models.Attendance{
		ID:        primitive.NewObjectID(),
		UserID:    claims.UserID,
		ShiftID:   shift.ID,
		DeviceID:  device.ID,
		Date:      today,
		Waktu:     checkInClock,
		Status:    status,
		Method:    models.MethodReguler,
		Lokasi:    location.Name,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if _, err := h.repo.CreateAttendance(ctx, &newAttendance); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal melakukan check-in."})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":    "Berhasil check-in pukul " + checkInClock,
		"attendance": newAttendance,
	})
}

// CheckOut godoc
// @Summary Check Out
// @Description Menutup sesi absensi yang masih terbuka. Sesi shift malam dari hari sebelumnya juga ditutup di sini.
// @Tags Attendance
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.MessageResponse
// @Failure 404 {object} models.ErrorResponse "Tidak ada sesi terbuka"
// @Router /attendance/check-out [post]
func (h *AttendanceHandler) CheckOut(c *fiber.Ctx) error {
	claims, ok := c.Locals("user").(*paseto.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Tidak terautentikasi atau klaim token tidak valid"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	now := time.Now().In(h.loc)
	today := now.Format(service.DateLayout)

	openSession, err := h.repo.FindOpenSession(ctx, claims.UserID, today)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal memeriksa sesi absensi"})
	}

	// Shift malam: sesi terbuka bisa tercatat pada tanggal kemarin.
	if openSession == nil {
		yesterday := now.AddDate(0, 0, -1).Format(service.DateLayout)
		openSession, err = h.repo.FindOpenSession(ctx, claims.UserID, yesterday)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal memeriksa sesi absensi"})
		}
	}

	if openSession == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Tidak ada sesi absensi yang terbuka."})
	}

	checkOutClock := now.Format(service.ClockLayout)
	if _, err := h.repo.UpdateAttendanceCheckout(ctx, openSession.ID, checkOutClock); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal melakukan check-out."})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Berhasil check-out pukul " + checkOutClock})
}

func (h *AttendanceHandler) GetMyAttendanceHistory(c *fiber.Ctx) error {
	claims, ok := c.Locals("user").(*paseto.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Tidak terautentikasi atau klaim token tidak valid",
		})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	attendanceHistory, err := h.repo.FindAttendanceByUserID(ctx, claims.UserID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Gagal mengambil riwayat kehadiran",
		})
	}

	return c.Status(fiber.StatusOK).JSON(attendanceHistory)
}

func (h *AttendanceHandler) GetTodayAttendance(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	today := time.Now().In(h.loc).Format(service.DateLayout)

	attendanceList, _, err := h.repo.GetAllAttendancesWithUserDetails(ctx, bson.M{"date": today}, 1, 1000)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Gagal mengambil daftar kehadiran",
		})
	}

	return c.Status(fiber.StatusOK).JSON(attendanceList)
}

// GetAllAttendances godoc
// @Summary Get All Attendances
// @Description Mengambil riwayat absensi seluruh karyawan dengan filter dan pagination (admin only)
// @Tags Attendance
// @Produce json
// @Security BearerAuth
// @Param page query int false "Halaman" default(1)
// @Param limit query int false "Jumlah per halaman" default(10)
// @Param user_id query string false "Filter user"
// @Param start_date query string false "Tanggal awal (YYYY-MM-DD)"
// @Param end_date query string false "Tanggal akhir (YYYY-MM-DD)"
// @Param status query string false "Filter status (Hadir/Telat/Susulan)"
// @Param method query string false "Filter metode (reguler/susulan)"
// @Success 200 {object} models.PaginatedResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /admin/attendance [get]
func (h *AttendanceHandler) GetAllAttendances(c *fiber.Ctx) error {
	page, err := strconv.ParseInt(c.Query("page", "1"), 10, 64)
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.ParseInt(c.Query("limit", "10"), 10, 64)
	if err != nil || limit < 1 {
		limit = 10
	}

	filter := bson.M{}
	if userIDHex := c.Query("user_id"); userIDHex != "" {
		userID, err := primitive.ObjectIDFromHex(userIDHex)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID user tidak valid"})
		}
		filter["user_id"] = userID
	}

	dateFilter := bson.M{}
	if startDate := c.Query("start_date"); startDate != "" {
		dateFilter["$gte"] = startDate
	}
	if endDate := c.Query("end_date"); endDate != "" {
		dateFilter["$lte"] = endDate
	}
	if len(dateFilter) > 0 {
		filter["date"] = dateFilter
	}

	if status := c.Query("status"); status != "" {
		filter["status"] = status
	}
	if method := c.Query("method"); method != "" {
		filter["method"] = method
	}

	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	attendances, total, err := h.repo.GetAllAttendancesWithUserDetails(ctx, filter, page, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil riwayat absensi"})
	}

	totalPages := total / limit
	if total%limit != 0 {
		totalPages++
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data":        attendances,
		"page":        page,
		"limit":       limit,
		"total_data":  total,
		"total_pages": totalPages,
	})
}

// UpdateAttendance godoc
// @Summary Update Attendance
// @Description Koreksi manual record absensi oleh admin
// @Tags Attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Attendance ID"
// @Param payload body models.AttendanceUpdatePayload true "Field yang dikoreksi"
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} object{error=string,errors=array}
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/attendance/{id} [put]
func (h *AttendanceHandler) UpdateAttendance(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID absensi tidak valid"})
	}

	var payload models.AttendanceUpdatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	result, err := h.repo.UpdateAttendance(ctx, id, &payload)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("Gagal update absensi: %v", err)})
	}
	if result.MatchedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Record absensi tidak ditemukan"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Record absensi berhasil diperbarui"})
}
