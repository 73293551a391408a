package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/cbhud/trackrig/internal/core/domain"
)

const workstationsCollection = "workstations"

// WorkstationRepository is the Mongo-backed workstation store.
type WorkstationRepository struct {
	coll *mongo.Collection
}

func NewWorkstationRepository(db *mongo.Database) *WorkstationRepository {
	return &WorkstationRepository{coll: db.Collection(workstationsCollection)}
}

type mongoWorkstation struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Status    string             `bson:"status"`
	GridX     int                `bson:"grid_x"`
	GridY     int                `bson:"grid_y"`
	CreatedAt time.Time          `bson:"created_at"`
}

func (mw mongoWorkstation) toDomain() domain.Workstation {
	return domain.Workstation{
		ID:        mw.ID.Hex(),
		Name:      mw.Name,
		Status:    domain.WorkstationStatus(mw.Status),
		GridX:     mw.GridX,
		GridY:     mw.GridY,
		CreatedAt: mw.CreatedAt.UTC(),
	}
}

func (r *WorkstationRepository) Create(ctx context.Context, w *domain.Workstation) (*domain.Workstation, error) {
	doc := mongoWorkstation{
		Name:      w.Name,
		Status:    string(w.Status),
		GridX:     w.GridX,
		GridY:     w.GridY,
		CreatedAt: w.CreatedAt.UTC(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateWorkstation
		}
		return nil, fmt.Errorf("insert workstation: %w", err)
	}

	created := *w
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *WorkstationRepository) FindByID(ctx context.Context, id string) (*domain.Workstation, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrWorkstationNotFound
	}

	var mw mongoWorkstation
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mw); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrWorkstationNotFound
		}
		return nil, fmt.Errorf("find workstation: %w", err)
	}
	w := mw.toDomain()
	return &w, nil
}

func (r *WorkstationRepository) List(ctx context.Context) ([]domain.Workstation, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list workstations: %w", err)
	}
	defer cur.Close(ctx)

	workstations := make([]domain.Workstation, 0)
	for cur.Next(ctx) {
		var mw mongoWorkstation
		if err := cur.Decode(&mw); err != nil {
			return nil, fmt.Errorf("decode workstation: %w", err)
		}
		workstations = append(workstations, mw.toDomain())
	}
	return workstations, cur.Err()
}

func (r *WorkstationRepository) Update(ctx context.Context, w *domain.Workstation) error {
	oid, err := primitive.ObjectIDFromHex(w.ID)
	if err != nil {
		return domain.ErrWorkstationNotFound
	}

	doc := mongoWorkstation{
		Name:      w.Name,
		Status:    string(w.Status),
		GridX:     w.GridX,
		GridY:     w.GridY,
		CreatedAt: w.CreatedAt.UTC(),
	}

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		// A rename can collide with the unique name index just like an
		// insert can.
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicateWorkstation
		}
		return fmt.Errorf("update workstation: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrWorkstationNotFound
	}
	return nil
}

func (r *WorkstationRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrWorkstationNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete workstation: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrWorkstationNotFound
	}
	return nil
}
