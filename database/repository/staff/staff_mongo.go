package staffRepo

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

// MongoStaffRepo implements StaffRepository using MongoDB.
type MongoStaffRepo struct {
	coll *mongo.Collection
}

// NewMongoStaffRepo creates a new StaffRepository backed by MongoDB.
func NewMongoStaffRepo() StaffRepository {
	coll := database.Collection("staff")
	repo := &MongoStaffRepo{coll: coll}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create staff indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoStaffRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "salon_id", Value: 1}}},
		{Keys: bson.D{{Key: "id", Value: 1}}},
	})
	return err
}

func (r *MongoStaffRepo) ListStaff(salonID string) ([]models.Staff, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"salon_id": salonID})
	if err != nil {
		return nil, fmt.Errorf("failed to list staff for salon %s: %w", salonID, err)
	}
	var roster []models.Staff
	if err := cursor.All(ctx, &roster); err != nil {
		return nil, fmt.Errorf("failed to decode staff: %w", err)
	}
	return roster, nil
}

func (r *MongoStaffRepo) GetByID(salonID, id string) (*models.Staff, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var member models.Staff
	err := r.coll.FindOne(ctx, bson.M{"salon_id": salonID, "id": id}).Decode(&member)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch staff member %s: %w", id, err)
	}
	return &member, nil
}

func (r *MongoStaffRepo) Create(member *models.Staff) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if member.ID == "" {
		member.ID = uuid.NewString()
	}
	now := time.Now()
	member.CreatedAt = now
	member.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, member); err != nil {
		return fmt.Errorf("failed to create staff member: %w", err)
	}
	return nil
}

func (r *MongoStaffRepo) Update(member *models.Staff) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	member.UpdatedAt = time.Now()
	filter := bson.M{"salon_id": member.SalonID, "id": member.ID}
	result, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": member})
	if err != nil {
		return fmt.Errorf("failed to update staff member %s: %w", member.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("staff member with id %s not found", member.ID)
	}
	return nil
}

func (r *MongoStaffRepo) Delete(salonID, id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"salon_id": salonID, "id": id})
	if err != nil {
		return fmt.Errorf("failed to delete staff member %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("staff member with id %s not found", id)
	}
	return nil
}

func (r *MongoStaffRepo) RenameServiceRefs(salonID, oldName, newName string) (int64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{"salon_id": salonID, "services": oldName}
	update := bson.M{
		"$set": bson.M{"services.$[elem]": newName, "updated_at": time.Now()},
	}
	opts := options.Update().SetArrayFilters(options.ArrayFilters{
		Filters: []interface{}{bson.M{"elem": oldName}},
	})

	result, err := r.coll.UpdateMany(ctx, filter, update, opts)
	if err != nil {
		return 0, fmt.Errorf("failed to cascade rename %q -> %q: %w", oldName, newName, err)
	}
	return result.ModifiedCount, nil
}
