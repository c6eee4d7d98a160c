package repository

import (
	"context"
	"fmt"
	"time"

	"Sistem-Absensi-Karyawan/config"
	"Sistem-Absensi-Karyawan/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MakeupRequestRepository interface {
	Create(ctx context.Context, req *models.MakeupRequest) (*mongo.InsertOneResult, error)
	FindAll(ctx context.Context, status string) ([]models.MakeupRequestWithUser, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.MakeupRequest, error)
	FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]models.MakeupRequest, error)
	FindPendingByUserAndDate(ctx context.Context, userID primitive.ObjectID, date string) (*models.MakeupRequest, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status string, note string) (*mongo.UpdateResult, error)
	UpdateEvidenceURL(ctx context.Context, id primitive.ObjectID, fileURL string) (*mongo.UpdateResult, error)
	CountPendingRequests(ctx context.Context) (int64, error)
}

type makeupRequestRepository struct {
	collection *mongo.Collection
}

func NewMakeupRequestRepository() MakeupRequestRepository {
	return &makeupRequestRepository{
		collection: config.GetCollection(config.MakeupRequestCollection),
	}
}

func (r *makeupRequestRepository) Create(ctx context.Context, req *models.MakeupRequest) (*mongo.InsertOneResult, error) {
	res, err := r.collection.InsertOne(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("gagal membuat pengajuan absen susulan: %w", err)
	}
	return res, nil
}

// FindAll mengembalikan pengajuan beserta detail pengajunya. Status kosong
// berarti semua status.
func (r *makeupRequestRepository) FindAll(ctx context.Context, status string) ([]models.MakeupRequestWithUser, error) {
	match := bson.M{}
	if status != "" {
		match["status"] = status
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: match}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}}}},
		bson.D{{
			Key: "$lookup",
			Value: bson.D{
				{Key: "from", Value: config.UserCollection},
				{Key: "localField", Value: "user_id"},
				{Key: "foreignField", Value: "_id"},
				{Key: "as", Value: "user_info"},
			},
		}},
		bson.D{{
			Key: "$unwind",
			Value: bson.D{
				{Key: "path", Value: "$user_info"},
				{Key: "preserveNullAndEmptyArrays", Value: false},
			},
		}},
		bson.D{{
			Key: "$project",
			Value: bson.D{
				{Key: "_id", Value: 1},
				{Key: "user_id", Value: 1},
				{Key: "date", Value: 1},
				{Key: "reason", Value: 1},
				{Key: "evidence_url", Value: 1},
				{Key: "status", Value: 1},
				{Key: "note", Value: 1},
				{Key: "created_at", Value: 1},
				{Key: "name", Value: "$user_info.name"},
				{Key: "email", Value: "$user_info.email"},
			},
		}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("gagal melakukan agregasi pengajuan dengan detail user: %w", err)
	}
	defer cursor.Close(ctx)

	var requests []models.MakeupRequestWithUser
	if err = cursor.All(ctx, &requests); err != nil {
		return nil, fmt.Errorf("gagal mendecode pengajuan dengan detail user: %w", err)
	}

	if len(requests) == 0 {
		return []models.MakeupRequestWithUser{}, nil
	}
	return requests, nil
}

func (r *makeupRequestRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.MakeupRequest, error) {
	var request models.MakeupRequest
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&request)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("gagal menemukan pengajuan berdasarkan ID: %w", err)
	}
	return &request, nil
}

func (r *makeupRequestRepository) FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]models.MakeupRequest, error) {
	var requests []models.MakeupRequest
	filter := bson.M{"user_id": userID}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("gagal mencari pengajuan berdasarkan user ID: %w", err)
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &requests); err != nil {
		return nil, fmt.Errorf("gagal decode hasil pengajuan: %w", err)
	}

	if len(requests) == 0 {
		return []models.MakeupRequest{}, nil
	}
	return requests, nil
}

// FindPendingByUserAndDate dipakai untuk menolak pengajuan ganda pada
// tanggal yang sama selagi masih pending.
func (r *makeupRequestRepository) FindPendingByUserAndDate(ctx context.Context, userID primitive.ObjectID, date string) (*models.MakeupRequest, error) {
	var request models.MakeupRequest
	filter := bson.M{
		"user_id": userID,
		"date":    date,
		"status":  models.MakeupStatusPending,
	}

	err := r.collection.FindOne(ctx, filter).Decode(&request)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("gagal mencari pengajuan pending: %w", err)
	}
	return &request, nil
}

func (r *makeupRequestRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string, note string) (*mongo.UpdateResult, error) {
	update := bson.M{
		"$set": bson.M{
			"status":     status,
			"note":       note,
			"updated_at": time.Now(),
		},
	}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return nil, fmt.Errorf("gagal mengupdate status pengajuan: %w", err)
	}
	return result, nil
}

func (r *makeupRequestRepository) UpdateEvidenceURL(ctx context.Context, id primitive.ObjectID, fileURL string) (*mongo.UpdateResult, error) {
	update := bson.M{"$set": bson.M{"evidence_url": fileURL, "updated_at": time.Now()}}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return nil, fmt.Errorf("gagal mengupdate URL bukti: %w", err)
	}
	return result, nil
}

func (r *makeupRequestRepository) CountPendingRequests(ctx context.Context) (int64, error) {
	filter := bson.M{"status": models.MakeupStatusPending}
	count, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("gagal menghitung pengajuan tertunda: %w", err)
	}
	return count, nil
}
