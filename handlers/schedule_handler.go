package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/teambition/rrule-go"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Sistem-Absensi-Karyawan/models"
	"Sistem-Absensi-Karyawan/pkg/paseto"
	util "Sistem-Absensi-Karyawan/pkg/utils"
	"Sistem-Absensi-Karyawan/repository"
	"Sistem-Absensi-Karyawan/service"
)

type ScheduleHandler struct {
	scheduleRepo *repository.ScheduleRuleRepository
	shiftRepo    *repository.ShiftRepository
	userRepo     *repository.UserRepository
	loc          *time.Location
}

func NewScheduleHandler(
	scheduleRepo *repository.ScheduleRuleRepository,
	shiftRepo *repository.ShiftRepository,
	userRepo *repository.UserRepository,
	loc *time.Location,
) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleRepo: scheduleRepo,
		shiftRepo:    shiftRepo,
		userRepo:     userRepo,
		loc:          loc,
	}
}

// CreateScheduleRule godoc
// @Summary Create Schedule Rule
// @Description Menugaskan shift kepada karyawan (admin only). Recurrence rule opsional memakai format RRULE, misal FREQ=WEEKLY;BYDAY=MO,TU,WE,TH,FR
// @Tags Schedule
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.ScheduleRulePayload true "Aturan jadwal"
// @Success 201 {object} object{message=string,data=models.ScheduleRule}
// @Failure 400 {object} object{error=string,errors=array}
// @Failure 404 {object} models.ErrorResponse "User atau shift tidak ditemukan"
// @Router /admin/schedules [post]
func (h *ScheduleHandler) CreateScheduleRule(c *fiber.Ctx) error {
	var payload models.ScheduleRulePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	if payload.RecurrenceRule != "" {
		if _, err := rrule.StrToROption(payload.RecurrenceRule); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Recurrence rule tidak valid", "details": err.Error()})
		}
	}

	userID, err := primitive.ObjectIDFromHex(payload.UserID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID user tidak valid"})
	}
	shiftID, err := primitive.ObjectIDFromHex(payload.ShiftID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID shift tidak valid"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	user, err := h.userRepo.FindUserByID(ctx, userID)
	if err != nil || user == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User tidak ditemukan"})
	}
	shift, err := h.shiftRepo.FindByID(ctx, shiftID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal memeriksa shift"})
	}
	if shift == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Shift tidak ditemukan"})
	}

	rule := models.ScheduleRule{
		UserID:         userID,
		ShiftID:        shiftID,
		Date:           payload.Date,
		RecurrenceRule: payload.RecurrenceRule,
		Note:           payload.Note,
	}

	created, err := h.scheduleRepo.Create(ctx, &rule)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyimpan aturan jadwal", "details": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Aturan jadwal berhasil ditambahkan", "data": created})
}

func (h *ScheduleHandler) GetScheduleRuleByID(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID aturan jadwal tidak valid"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	rule, err := h.scheduleRepo.FindByID(ctx, id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil aturan jadwal", "details": err.Error()})
	}
	if rule == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Aturan jadwal tidak ditemukan"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"data": rule})
}

// GetAllSchedules godoc
// @Summary Get All Schedules
// @Description Mengambil jadwal kerja hasil ekspansi recurrence rule pada rentang tanggal (admin only)
// @Tags Schedule
// @Produce json
// @Security BearerAuth
// @Param start_date query string true "Tanggal awal (YYYY-MM-DD)"
// @Param end_date query string true "Tanggal akhir (YYYY-MM-DD)"
// @Param user_id query string false "Filter user"
// @Success 200 {object} object{data=[]models.ScheduleEntry}
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/schedules [get]
func (h *ScheduleHandler) GetAllSchedules(c *fiber.Ctx) error {
	startDate, err := time.Parse(service.DateLayout, c.Query("start_date"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format start_date tidak valid"})
	}
	endDate, err := time.Parse(service.DateLayout, c.Query("end_date"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format end_date tidak valid"})
	}

	filter := bson.M{}
	if userIDHex := c.Query("user_id"); userIDHex != "" {
		userID, err := primitive.ObjectIDFromHex(userIDHex)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID user tidak valid"})
		}
		filter["user_id"] = userID
	}

	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	entries, err := h.expandSchedules(ctx, filter, startDate, endDate)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil jadwal kerja", "details": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"data": entries})
}

// GetMySchedules godoc
// @Summary Get My Schedules
// @Description Mengambil jadwal kerja milik sendiri. Tanpa parameter tanggal, bulan berjalan yang dipakai.
// @Tags Schedule
// @Produce json
// @Security BearerAuth
// @Param start_date query string false "Tanggal awal (YYYY-MM-DD)"
// @Param end_date query string false "Tanggal akhir (YYYY-MM-DD)"
// @Success 200 {object} object{data=[]models.ScheduleEntry}
// @Router /schedules/me [get]
func (h *ScheduleHandler) GetMySchedules(c *fiber.Ctx) error {
	claims, ok := c.Locals("user").(*paseto.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Tidak terautentikasi atau klaim token tidak valid"})
	}

	now := time.Now().In(h.loc)
	startDate := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	endDate := startDate.AddDate(0, 1, -1)

	if startStr := c.Query("start_date"); startStr != "" {
		parsed, err := time.Parse(service.DateLayout, startStr)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format start_date tidak valid"})
		}
		startDate = parsed
	}
	if endStr := c.Query("end_date"); endStr != "" {
		parsed, err := time.Parse(service.DateLayout, endStr)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format end_date tidak valid"})
		}
		endDate = parsed
	}

	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	entries, err := h.expandSchedules(ctx, bson.M{"user_id": claims.UserID}, startDate, endDate)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil jadwal kerja", "details": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"data": entries})
}

// expandSchedules mengubah aturan jadwal menjadi kemunculan per tanggal.
// Aturan berulang diekspansi lewat rrule dan melewati hari libur nasional,
// sedangkan penugasan sekali jalan tetap tampil dengan penanda IsHoliday.
func (h *ScheduleHandler) expandSchedules(ctx context.Context, filter bson.M, startDate, endDate time.Time) ([]models.ScheduleEntry, error) {
	rules, err := h.scheduleRepo.FindAllWithFilter(ctx, filter)
	if err != nil {
		return nil, err
	}

	shifts, err := h.shiftRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	shiftByID := make(map[primitive.ObjectID]models.Shift, len(shifts))
	for _, s := range shifts {
		shiftByID[s.ID] = s
	}

	holidayMap, err := util.GetHolidayMap(startDate.Format("2006"))
	if err != nil {
		return nil, err
	}
	if startDate.Year() != endDate.Year() {
		nextYearHolidays, _ := util.GetHolidayMap(endDate.Format("2006"))
		for date, val := range nextYearHolidays {
			holidayMap[date] = val
		}
	}

	entries := []models.ScheduleEntry{}

	appendEntry := func(rule models.ScheduleRule, date string, isHoliday bool) {
		entry := models.ScheduleEntry{
			RuleID:    rule.ID,
			UserID:    rule.UserID,
			Date:      date,
			ShiftID:   rule.ShiftID,
			Note:      rule.Note,
			IsHoliday: isHoliday,
		}
		if shift, ok := shiftByID[rule.ShiftID]; ok {
			entry.ShiftName = shift.Name
			entry.StartTime = shift.StartTime
			entry.EndTime = shift.EndTime
		}
		entries = append(entries, entry)
	}

	for _, rule := range rules {
		if rule.RecurrenceRule != "" {
			rOption, err := rrule.StrToROption(rule.RecurrenceRule)
			if err != nil {
				continue
			}

			ruleStartDate, err := time.Parse(service.DateLayout, rule.Date)
			if err != nil {
				continue
			}
			rOption.Dtstart = ruleStartDate

			rr, err := rrule.NewRRule(*rOption)
			if err != nil {
				continue
			}

			ruleSet := rrule.Set{}
			ruleSet.RRule(rr)

			instances := ruleSet.Between(startDate, endDate, true)
			for _, instance := range instances {
				instanceDateStr := instance.Format(service.DateLayout)
				if !holidayMap[instanceDateStr] {
					appendEntry(rule, instanceDateStr, false)
				}
			}
		} else {
			ruleDate, err := time.Parse(service.DateLayout, rule.Date)
			if err != nil {
				continue
			}
			if (ruleDate.After(startDate) || ruleDate.Equal(startDate)) && (ruleDate.Before(endDate) || ruleDate.Equal(endDate)) {
				appendEntry(rule, rule.Date, holidayMap[rule.Date])
			}
		}
	}

	return entries, nil
}

// GetHolidays melayani daftar hari libur nasional untuk kalender frontend.
func (h *ScheduleHandler) GetHolidays(c *fiber.Ctx) error {
	year := c.Query("year")
	if year == "" {
		year = time.Now().In(h.loc).Format("2006")
	}

	holidays, err := util.GetExternalHolidays(year)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data hari libur", "details": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(holidays)
}

// UpdateScheduleRule godoc
// @Summary Update Schedule Rule
// @Description Memperbarui aturan jadwal (admin only)
// @Tags Schedule
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Schedule Rule ID"
// @Param payload body models.ScheduleRulePayload true "Aturan jadwal"
// @Success 200 {object} models.MessageResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/schedules/{id} [put]
func (h *ScheduleHandler) UpdateScheduleRule(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID aturan jadwal tidak valid"})
	}

	var payload models.ScheduleRulePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	if payload.RecurrenceRule != "" {
		if _, err := rrule.StrToROption(payload.RecurrenceRule); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Recurrence rule tidak valid", "details": err.Error()})
		}
	}

	shiftID, err := primitive.ObjectIDFromHex(payload.ShiftID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID shift tidak valid"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	shift, err := h.shiftRepo.FindByID(ctx, shiftID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal memeriksa shift"})
	}
	if shift == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Shift tidak ditemukan"})
	}

	if err := h.scheduleRepo.UpdateByID(ctx, id, &payload, shiftID); err != nil {
		if err.Error() == "aturan jadwal tidak ditemukan" {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Aturan jadwal tidak ditemukan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal memperbarui aturan jadwal", "details": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Aturan jadwal berhasil diperbarui"})
}

// DeleteScheduleRule godoc
// @Summary Delete Schedule Rule
// @Description Menghapus aturan jadwal beserta seluruh kemunculannya (admin only)
// @Tags Schedule
// @Produce json
// @Security BearerAuth
// @Param id path string true "Schedule Rule ID"
// @Success 200 {object} models.MessageResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/schedules/{id} [delete]
func (h *ScheduleHandler) DeleteScheduleRule(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID aturan jadwal tidak valid"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	if err := h.scheduleRepo.DeleteByID(ctx, id); err != nil {
		if err.Error() == "aturan jadwal tidak ditemukan" {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Aturan jadwal tidak ditemukan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghapus aturan jadwal", "details": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Aturan jadwal berhasil dihapus"})
}
