package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/SYD090303/GymFlow/internal/core/domain"
)

const receptionistsCollection = "receptionists"

type ReceptionistRepository struct {
	col *mongo.Collection
}

func NewReceptionistRepository(db *mongo.Database) *ReceptionistRepository {
	return &ReceptionistRepository{col: db.Collection(receptionistsCollection)}
}

func (r *ReceptionistRepository) Create(ctx context.Context, rec *domain.Receptionist) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, rec)
	if mongo.IsDuplicateKeyError(err) {
		return domain.ErrReceptionistExists
	}
	return err
}

func (r *ReceptionistRepository) FindByID(ctx context.Context, id string) (*domain.Receptionist, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *ReceptionistRepository) FindByEmail(ctx context.Context, email string) (*domain.Receptionist, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *ReceptionistRepository) findOne(ctx context.Context, filter bson.M) (*domain.Receptionist, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var rec domain.Receptionist
	if err := r.col.FindOne(ctx, filter).Decode(&rec); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrReceptionistNotFound
		}
		return nil, err
	}
	return &rec, nil
}

func (r *ReceptionistRepository) List(ctx context.Context) ([]*domain.Receptionist, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var recs []*domain.Receptionist
	if err := cur.All(ctx, &recs); err != nil {
		return nil, err
	}
	return recs, nil
}

func (r *ReceptionistRepository) Update(ctx context.Context, rec *domain.Receptionist) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": rec.ID}, rec)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrReceptionistNotFound
	}
	return nil
}

func (r *ReceptionistRepository) SetStatus(ctx context.Context, id string, status domain.Status) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status, "updated_at": time.Now().UTC()}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrReceptionistNotFound
	}
	return nil
}

func (r *ReceptionistRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrReceptionistNotFound
	}
	return nil
}

// EnsureIndexes creates the unique email index for receptionists.
func (r *ReceptionistRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: optionsUniqueIndex(),
	})
	return err
}
