package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/SYD090303/GymFlow/internal/core/domain"
)

const attendanceCollection = "attendance_logs"

type AttendanceRepository struct {
	col *mongo.Collection
}

func NewAttendanceRepository(db *mongo.Database) *AttendanceRepository {
	return &AttendanceRepository{col: db.Collection(attendanceCollection)}
}

func (r *AttendanceRepository) Insert(ctx context.Context, log *domain.AttendanceLog) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, log)
	return err
}

func (r *AttendanceRepository) Update(ctx context.Context, log *domain.AttendanceLog) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": log.ID}, log)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrNoOpenSession
	}
	return nil
}

func (r *AttendanceRepository) ListByMember(ctx context.Context, memberID string) ([]*domain.AttendanceLog, error) {
	return r.list(ctx, bson.M{"member_id": memberID})
}

func (r *AttendanceRepository) ListByStatus(ctx context.Context, status domain.AttendanceStatus) ([]*domain.AttendanceLog, error) {
	return r.list(ctx, bson.M{"attendance_status": status})
}

func (r *AttendanceRepository) ListBetween(ctx context.Context, start, end time.Time) ([]*domain.AttendanceLog, error) {
	return r.list(ctx, bson.M{"check_in_time": bson.M{"$gte": start, "$lte": end}})
}

// list returns logs ordered by check-in time ascending, so the first open
// session found is also the oldest.
func (r *AttendanceRepository) list(ctx context.Context, filter bson.M) ([]*domain.AttendanceLog, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "check_in_time", Value: 1}})
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var logs []*domain.AttendanceLog
	if err := cur.All(ctx, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

// EnsureIndexes creates the indexes behind the member, status, and range queries.
func (r *AttendanceRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "member_id", Value: 1}, {Key: "check_in_time", Value: 1}}},
		{Keys: bson.D{{Key: "attendance_status", Value: 1}}},
		{Keys: bson.D{{Key: "check_in_time", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
