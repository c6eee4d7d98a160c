package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"Sistem-Absensi-Karyawan/config"
	"Sistem-Absensi-Karyawan/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ScheduleRuleRepository struct {
	collection *mongo.Collection
}

func NewScheduleRuleRepository() *ScheduleRuleRepository {
	return &ScheduleRuleRepository{
		collection: config.GetCollection(config.ScheduleRuleCollection),
	}
}

func (r *ScheduleRuleRepository) Create(ctx context.Context, rule *models.ScheduleRule) (*models.ScheduleRule, error) {
	rule.ID = primitive.NewObjectID()
	rule.CreatedAt = time.Now()
	rule.UpdatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, rule)
	if err != nil {
		return nil, fmt.Errorf("gagal membuat aturan jadwal: %w", err)
	}
	return rule, nil
}

func (r *ScheduleRuleRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.ScheduleRule, error) {
	var rule models.ScheduleRule
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&rule)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("gagal menemukan aturan jadwal berdasarkan ID: %w", err)
	}
	return &rule, nil
}

// FindAllWithFilter mengambil aturan jadwal mentah. Aturan berulang tetap
// harus diikutkan walau dtstart-nya di luar rentang tampilan, jadi filter
// tanggal dikerjakan pemanggil setelah ekspansi recurrence.
func (r *ScheduleRuleRepository) FindAllWithFilter(ctx context.Context, filter bson.M) ([]models.ScheduleRule, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("gagal mengambil aturan jadwal: %w", err)
	}
	defer cursor.Close(ctx)

	var rules []models.ScheduleRule
	if err = cursor.All(ctx, &rules); err != nil {
		return nil, fmt.Errorf("gagal mendecode aturan jadwal: %w", err)
	}

	if len(rules) == 0 {
		return []models.ScheduleRule{}, nil
	}
	return rules, nil
}

func (r *ScheduleRuleRepository) FindByUser(ctx context.Context, userID primitive.ObjectID) ([]models.ScheduleRule, error) {
	return r.FindAllWithFilter(ctx, bson.M{"user_id": userID})
}

func (r *ScheduleRuleRepository) UpdateByID(ctx context.Context, id primitive.ObjectID, payload *models.ScheduleRulePayload, shiftID primitive.ObjectID) error {
	update := bson.M{
		"$set": bson.M{
			"shift_id":        shiftID,
			"date":            payload.Date,
			"recurrence_rule": payload.RecurrenceRule,
			"note":            payload.Note,
			"updated_at":      time.Now(),
		},
	}

	result, err := r.collection.UpdateByID(ctx, id, update)
	if err != nil {
		return fmt.Errorf("gagal mengupdate aturan jadwal: %w", err)
	}
	if result.MatchedCount == 0 {
		return errors.New("aturan jadwal tidak ditemukan")
	}
	return nil
}

func (r *ScheduleRuleRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("gagal menghapus aturan jadwal: %w", err)
	}
	if res.DeletedCount == 0 {
		return errors.New("aturan jadwal tidak ditemukan")
	}
	return nil
}
