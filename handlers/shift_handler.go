package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Sistem-Absensi-Karyawan/models"
	util "Sistem-Absensi-Karyawan/pkg/utils"
	"Sistem-Absensi-Karyawan/repository"
)

type ShiftHandler struct {
	shiftRepo *repository.ShiftRepository
}

func NewShiftHandler(shiftRepo *repository.ShiftRepository) *ShiftHandler {
	return &ShiftHandler{shiftRepo: shiftRepo}
}

// CreateShift godoc
// @Summary Create Shift
// @Description Membuat shift kerja baru (admin only). Shift yang melewati tengah malam ditulis apa adanya, misal 22:00 - 06:00.
// @Tags Shift
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.ShiftPayload true "Data shift"
// @Success 201 {object} object{message=string,shift=models.Shift}
// @Failure 400 {object} object{error=string,errors=array}
// @Failure 409 {object} models.ErrorResponse "Nama shift sudah dipakai"
// @Router /admin/shifts [post]
func (h *ShiftHandler) CreateShift(c *fiber.Ctx) error {
	var payload models.ShiftPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	existing, err := h.shiftRepo.FindByName(ctx, payload.Name)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal memeriksa shift"})
	}
	if existing != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Nama shift sudah dipakai"})
	}

	shift := models.Shift{
		Name:      payload.Name,
		StartTime: payload.StartTime,
		EndTime:   payload.EndTime,
	}

	created, err := h.shiftRepo.Create(ctx, &shift)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal membuat shift"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Shift berhasil dibuat",
		"shift":   created,
	})
}

// GetAllShifts godoc
// @Summary Get All Shifts
// @Description Mengambil daftar semua shift kerja
// @Tags Shift
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Shift
// @Router /shifts [get]
func (h *ShiftHandler) GetAllShifts(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	shifts, err := h.shiftRepo.FindAll(ctx)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil daftar shift"})
	}

	return c.Status(fiber.StatusOK).JSON(shifts)
}

func (h *ShiftHandler) GetShiftByID(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID shift tidak valid"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	shift, err := h.shiftRepo.FindByID(ctx, id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil shift"})
	}
	if shift == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Shift tidak ditemukan"})
	}

	return c.Status(fiber.StatusOK).JSON(shift)
}

// UpdateShift godoc
// @Summary Update Shift
// @Description Memperbarui shift kerja (admin only)
// @Tags Shift
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Shift ID"
// @Param payload body models.ShiftPayload true "Data shift"
// @Success 200 {object} models.MessageResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/shifts/{id} [put]
func (h *ShiftHandler) UpdateShift(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID shift tidak valid"})
	}

	var payload models.ShiftPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	if err := h.shiftRepo.UpdateByID(ctx, id, &payload); err != nil {
		if err.Error() == "shift tidak ditemukan" {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Shift tidak ditemukan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("Gagal update shift: %v", err)})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Shift berhasil diperbarui"})
}

// DeleteShift godoc
// @Summary Delete Shift
// @Description Menghapus shift kerja (admin only). Record absensi lama tetap tersimpan, jam seharusnya-nya menjadi nol.
// @Tags Shift
// @Produce json
// @Security BearerAuth
// @Param id path string true "Shift ID"
// @Success 200 {object} models.MessageResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/shifts/{id} [delete]
func (h *ShiftHandler) DeleteShift(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID shift tidak valid"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	if err := h.shiftRepo.DeleteByID(ctx, id); err != nil {
		if err.Error() == "shift tidak ditemukan" {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Shift tidak ditemukan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghapus shift"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Shift berhasil dihapus"})
}
