package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cbhud/trackrig/internal/core/domain"
)

const maintenanceCollection = "maintenance_logs"

// MaintenanceRepository is the Mongo-backed maintenance-log store.
type MaintenanceRepository struct {
	coll *mongo.Collection
}

func NewMaintenanceRepository(db *mongo.Database) *MaintenanceRepository {
	return &MaintenanceRepository{coll: db.Collection(maintenanceCollection)}
}

type mongoMaintenanceLog struct {
	ID            primitive.ObjectID     `bson:"_id,omitempty"`
	WorkstationID string                 `bson:"workstation_id"`
	Type          domain.MaintenanceType `bson:"type"`
	PerformedBy   string                 `bson:"performed_by"`
	Notes         string                 `bson:"notes,omitempty"`
	PerformedAt   time.Time              `bson:"performed_at"`
}

func (ml mongoMaintenanceLog) toDomain() domain.MaintenanceLog {
	return domain.MaintenanceLog{
		ID:            ml.ID.Hex(),
		WorkstationID: ml.WorkstationID,
		Type:          ml.Type,
		PerformedBy:   ml.PerformedBy,
		Notes:         ml.Notes,
		PerformedAt:   ml.PerformedAt.UTC(),
	}
}

func (r *MaintenanceRepository) Create(ctx context.Context, log *domain.MaintenanceLog) (*domain.MaintenanceLog, error) {
	doc := mongoMaintenanceLog{
		WorkstationID: log.WorkstationID,
		Type:          log.Type,
		PerformedBy:   log.PerformedBy,
		Notes:         log.Notes,
		PerformedAt:   log.PerformedAt.UTC(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert maintenance log: %w", err)
	}

	created := *log
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *MaintenanceRepository) ListByWorkstation(ctx context.Context, workstationID string) ([]domain.MaintenanceLog, error) {
	return r.list(ctx, bson.M{"workstation_id": workstationID})
}

func (r *MaintenanceRepository) List(ctx context.Context) ([]domain.MaintenanceLog, error) {
	return r.list(ctx, bson.M{})
}

func (r *MaintenanceRepository) list(ctx context.Context, query bson.M) ([]domain.MaintenanceLog, error) {
	// Newest first.
	opts := options.Find().SetSort(bson.D{{Key: "performed_at", Value: -1}})

	cur, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("list maintenance logs: %w", err)
	}
	defer cur.Close(ctx)

	logs := make([]domain.MaintenanceLog, 0)
	for cur.Next(ctx) {
		var ml mongoMaintenanceLog
		if err := cur.Decode(&ml); err != nil {
			return nil, fmt.Errorf("decode maintenance log: %w", err)
		}
		logs = append(logs, ml.toDomain())
	}
	return logs, cur.Err()
}
