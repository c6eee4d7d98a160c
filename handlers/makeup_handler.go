package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Sistem-Absensi-Karyawan/models"
	"Sistem-Absensi-Karyawan/pkg/paseto"
	util "Sistem-Absensi-Karyawan/pkg/utils"
	"Sistem-Absensi-Karyawan/repository"
	"Sistem-Absensi-Karyawan/service"
)

type MakeupRequestHandler struct {
	makeupRepo     repository.MakeupRequestRepository
	attendanceRepo repository.AttendanceRepository
	uploadDir      string
	loc            *time.Location
}

func NewMakeupRequestHandler(
	makeupRepo repository.MakeupRequestRepository,
	attendanceRepo repository.AttendanceRepository,
	uploadDir string,
	loc *time.Location,
) *MakeupRequestHandler {
	return &MakeupRequestHandler{
		makeupRepo:     makeupRepo,
		attendanceRepo: attendanceRepo,
		uploadDir:      uploadDir,
		loc:            loc,
	}
}

// CreateMakeupRequest godoc
// @Summary Create Makeup Request
// @Description Mengajukan absen susulan untuk tanggal yang terlewat. Satu pengajuan pending per tanggal.
// @Tags Makeup
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.MakeupRequestPayload true "Data pengajuan"
// @Success 201 {object} models.MakeupRequest
// @Failure 400 {object} object{error=string,errors=array}
// @Failure 409 {object} models.ErrorResponse "Sudah ada pengajuan pending untuk tanggal ini"
// @Router /makeup-requests [post]
func (h *MakeupRequestHandler) CreateMakeupRequest(c *fiber.Ctx) error {
	claims, ok := c.Locals("user").(*paseto.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Tidak terautentikasi atau klaim token tidak valid"})
	}

	var payload models.MakeupRequestPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	today := time.Now().In(h.loc).Format(service.DateLayout)
	if payload.Date > today {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Tanggal pengajuan tidak boleh di masa depan"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	existing, err := h.makeupRepo.FindPendingByUserAndDate(ctx, claims.UserID, payload.Date)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal memeriksa pengajuan"})
	}
	if existing != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Sudah ada pengajuan pending untuk tanggal ini"})
	}

	newRequest := &models.MakeupRequest{
		ID:        primitive.NewObjectID(),
		UserID:    claims.UserID,
		Date:      payload.Date,
		Reason:    payload.Reason,
		Status:    models.MakeupStatusPending,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if _, err := h.makeupRepo.Create(ctx, newRequest); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal membuat pengajuan"})
	}

	return c.Status(fiber.StatusCreated).JSON(newRequest)
}

// UploadEvidence godoc
// @Summary Upload Evidence
// @Description Mengunggah bukti pendukung pengajuan absen susulan milik sendiri
// @Tags Makeup
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param id path string true "Makeup Request ID"
// @Param evidence formData file true "File bukti"
// @Success 200 {object} object{message=string,file_url=string}
// @Failure 403 {object} models.ErrorResponse "Bukan pengajuan milik sendiri"
// @Failure 404 {object} models.ErrorResponse
// @Router /makeup-requests/{id}/evidence [post]
func (h *MakeupRequestHandler) UploadEvidence(c *fiber.Ctx) error {
	claims, ok := c.Locals("user").(*paseto.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Tidak terautentikasi atau klaim token tidak valid"})
	}

	reqID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID pengajuan tidak valid"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	request, err := h.makeupRepo.FindByID(ctx, reqID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil pengajuan"})
	}
	if request == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Pengajuan tidak ditemukan"})
	}
	if request.UserID != claims.UserID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Anda tidak berhak mengubah pengajuan ini"})
	}

	file, err := c.FormFile("evidence")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "File tidak ditemukan"})
	}

	uniqueFileName := fmt.Sprintf("%d-%s", time.Now().Unix(), file.Filename)
	filePath := fmt.Sprintf("%s/evidence/%s", h.uploadDir, uniqueFileName)

	if err := c.SaveFile(file, filePath); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyimpan file"})
	}

	fileURL := fmt.Sprintf("/uploads/evidence/%s", uniqueFileName)

	if _, err := h.makeupRepo.UpdateEvidenceURL(ctx, reqID, fileURL); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyimpan URL file ke database"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":  "File berhasil diunggah",
		"file_url": fileURL,
	})
}

func (h *MakeupRequestHandler) GetMyMakeupRequests(c *fiber.Ctx) error {
	claims, ok := c.Locals("user").(*paseto.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Tidak terautentikasi atau klaim token tidak valid"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	requests, err := h.makeupRepo.FindByUserID(ctx, claims.UserID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data pengajuan"})
	}

	return c.Status(fiber.StatusOK).JSON(requests)
}

// GetAllMakeupRequests godoc
// @Summary Get All Makeup Requests
// @Description Mengambil semua pengajuan absen susulan beserta data pemohonnya (admin only)
// @Tags Makeup
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter status (pending/approved/rejected)"
// @Success 200 {array} models.MakeupRequestWithUser
// @Router /admin/makeup-requests [get]
func (h *MakeupRequestHandler) GetAllMakeupRequests(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	requests, err := h.makeupRepo.FindAll(ctx, c.Query("status"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data pengajuan"})
	}

	return c.Status(fiber.StatusOK).JSON(requests)
}

// UpdateMakeupRequestStatus godoc
// @Summary Approve / Reject Makeup Request
// @Description Memutuskan pengajuan absen susulan (admin only). Persetujuan otomatis membuat record kehadiran susulan pada tanggal yang diajukan.
// @Tags Makeup
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Makeup Request ID"
// @Param payload body models.MakeupStatusUpdatePayload true "Keputusan"
// @Success 200 {object} models.MessageResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse "Pengajuan sudah diproses"
// @Router /admin/makeup-requests/{id}/status [put]
func (h *MakeupRequestHandler) UpdateMakeupRequestStatus(c *fiber.Ctx) error {
	reqID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID pengajuan tidak valid"})
	}

	var payload models.MakeupStatusUpdatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	request, err := h.makeupRepo.FindByID(ctx, reqID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil pengajuan"})
	}
	if request == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Pengajuan dengan ID ini tidak ditemukan"})
	}
	if request.Status != models.MakeupStatusPending {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Pengajuan sudah diproses"})
	}

	if _, err := h.makeupRepo.UpdateStatus(ctx, reqID, payload.Status, payload.Note); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal memperbarui status"})
	}

	if payload.Status == models.MakeupStatusApproved {
		attendanceRecord := &models.Attendance{
			ID:        primitive.NewObjectID(),
			UserID:    request.UserID,
			Date:      request.Date,
			Status:    models.StatusSusulan,
			Method:    models.MethodSusulan,
			Reason:    "Disetujui: " + request.Reason,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		if _, err := h.attendanceRepo.CreateAttendance(ctx, attendanceRecord); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Status tersimpan tetapi gagal membuat record kehadiran susulan"})
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Status pengajuan berhasil diperbarui"})
}
