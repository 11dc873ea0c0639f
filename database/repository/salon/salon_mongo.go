package salonRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"glowdesk/database"
	"glowdesk/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoSalonRepo implements SalonRepository using MongoDB.
type MongoSalonRepo struct {
	coll *mongo.Collection
}

// NewMongoSalonRepo creates a new SalonRepository backed by MongoDB.
func NewMongoSalonRepo() SalonRepository {
	coll := database.Collection("salons")
	repo := &MongoSalonRepo{coll: coll}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create salon indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoSalonRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (r *MongoSalonRepo) GetByID(id string) (*models.Salon, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var salon models.Salon
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&salon)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch salon %s: %w", id, err)
	}
	return &salon, nil
}

func (r *MongoSalonRepo) Create(salon *models.Salon) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if salon.ID == "" {
		salon.ID = uuid.NewString()
	}
	now := time.Now()
	salon.CreatedAt = now
	salon.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, salon); err != nil {
		return fmt.Errorf("failed to create salon: %w", err)
	}
	return nil
}

func (r *MongoSalonRepo) Update(salon *models.Salon) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	salon.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": salon.ID}, bson.M{"$set": salon})
	if err != nil {
		return fmt.Errorf("failed to update salon %s: %w", salon.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("salon with id %s not found", salon.ID)
	}
	return nil
}

func (r *MongoSalonRepo) UpdateBusinessHours(id string, hours models.BusinessHours) error {
	return r.updateField(id, "business_hours", hours)
}

func (r *MongoSalonRepo) UpdateBranding(id string, colors models.BrandColors) error {
	return r.updateField(id, "brand_colors", colors)
}

func (r *MongoSalonRepo) updateField(id, field string, value interface{}) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{field: value, "updated_at": time.Now()}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update salon %s %s: %w", id, field, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("salon with id %s not found", id)
	}
	return nil
}
