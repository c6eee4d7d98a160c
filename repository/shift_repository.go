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
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ShiftRepository struct {
	collection *mongo.Collection
}

func NewShiftRepository() *ShiftRepository {
	return &ShiftRepository{
		collection: config.GetCollection(config.ShiftCollection),
	}
}

func (r *ShiftRepository) Create(ctx context.Context, shift *models.Shift) (*models.Shift, error) {
	shift.ID = primitive.NewObjectID()
	shift.CreatedAt = time.Now()
	shift.UpdatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, shift)
	if err != nil {
		return nil, fmt.Errorf("gagal membuat shift: %w", err)
	}
	return shift, nil
}

func (r *ShiftRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Shift, error) {
	var shift models.Shift
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&shift)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("gagal menemukan shift berdasarkan ID: %w", err)
	}
	return &shift, nil
}

func (r *ShiftRepository) FindByName(ctx context.Context, name string) (*models.Shift, error) {
	var shift models.Shift
	err := r.collection.FindOne(ctx, bson.M{"name": name}).Decode(&shift)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("gagal menemukan shift berdasarkan nama: %w", err)
	}
	return &shift, nil
}

func (r *ShiftRepository) FindAll(ctx context.Context) ([]models.Shift, error) {
	opts := options.Find().SetSort(bson.D{{Key: "start_time", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("gagal mengambil daftar shift: %w", err)
	}
	defer cursor.Close(ctx)

	var shifts []models.Shift
	if err = cursor.All(ctx, &shifts); err != nil {
		return nil, fmt.Errorf("gagal mendecode daftar shift: %w", err)
	}

	if len(shifts) == 0 {
		return []models.Shift{}, nil
	}
	return shifts, nil
}

func (r *ShiftRepository) UpdateByID(ctx context.Context, id primitive.ObjectID, payload *models.ShiftPayload) error {
	update := bson.M{
		"$set": bson.M{
			"name":       payload.Name,
			"start_time": payload.StartTime,
			"end_time":   payload.EndTime,
			"updated_at": time.Now(),
		},
	}

	result, err := r.collection.UpdateByID(ctx, id, update)
	if err != nil {
		return fmt.Errorf("gagal mengupdate shift: %w", err)
	}
	if result.MatchedCount == 0 {
		return errors.New("shift tidak ditemukan")
	}
	return nil
}

func (r *ShiftRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("gagal menghapus shift: %w", err)
	}
	if res.DeletedCount == 0 {
		return errors.New("shift tidak ditemukan")
	}
	return nil
}
