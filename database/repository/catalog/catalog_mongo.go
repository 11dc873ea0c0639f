package catalogRepo

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

// MongoCatalogRepo implements CatalogRepository using MongoDB.
type MongoCatalogRepo struct {
	coll *mongo.Collection
}

// NewMongoCatalogRepo creates a new CatalogRepository backed by MongoDB.
func NewMongoCatalogRepo() CatalogRepository {
	coll := database.Collection("services")
	repo := &MongoCatalogRepo{coll: coll}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create service indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoCatalogRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "salon_id", Value: 1}, {Key: "name", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "id", Value: 1}}},
	})
	return err
}

func (r *MongoCatalogRepo) ListServices(salonID string) ([]models.Service, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"salon_id": salonID})
	if err != nil {
		return nil, fmt.Errorf("failed to list services for salon %s: %w", salonID, err)
	}
	var services []models.Service
	if err := cursor.All(ctx, &services); err != nil {
		return nil, fmt.Errorf("failed to decode services: %w", err)
	}
	return services, nil
}

func (r *MongoCatalogRepo) GetServiceByName(salonID, name string) (*models.Service, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var svc models.Service
	err := r.coll.FindOne(ctx, bson.M{"salon_id": salonID, "name": name}).Decode(&svc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch service %q: %w", name, err)
	}
	return &svc, nil
}

func (r *MongoCatalogRepo) GetServiceByID(salonID, id string) (*models.Service, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var svc models.Service
	err := r.coll.FindOne(ctx, bson.M{"salon_id": salonID, "id": id}).Decode(&svc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch service %s: %w", id, err)
	}
	return &svc, nil
}

func (r *MongoCatalogRepo) Create(service *models.Service) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if service.ID == "" {
		service.ID = uuid.NewString()
	}
	now := time.Now()
	service.CreatedAt = now
	service.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, service); err != nil {
		return fmt.Errorf("failed to create service: %w", err)
	}
	return nil
}

func (r *MongoCatalogRepo) Update(service *models.Service) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	service.UpdatedAt = time.Now()
	filter := bson.M{"salon_id": service.SalonID, "id": service.ID}
	result, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": service})
	if err != nil {
		return fmt.Errorf("failed to update service %s: %w", service.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("service with id %s not found", service.ID)
	}
	return nil
}

func (r *MongoCatalogRepo) Delete(salonID, id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"salon_id": salonID, "id": id})
	if err != nil {
		return fmt.Errorf("failed to delete service %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("service with id %s not found", id)
	}
	return nil
}

func (r *MongoCatalogRepo) Rename(salonID, id, newName string) (string, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var before models.Service
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"salon_id": salonID, "id": id},
		bson.M{"$set": bson.M{"name": newName, "updated_at": time.Now()}},
	).Decode(&before)
	if err != nil {
		return "", fmt.Errorf("failed to rename service %s: %w", id, err)
	}
	return before.Name, nil
}
