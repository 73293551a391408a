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

const componentsCollection = "components"

// ComponentRepository is the Mongo-backed component store.
type ComponentRepository struct {
	coll *mongo.Collection
}

func NewComponentRepository(db *mongo.Database) *ComponentRepository {
	return &ComponentRepository{coll: db.Collection(componentsCollection)}
}

type mongoComponent struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	SerialNumber   string             `bson:"serial_number"`
	Name           string             `bson:"name"`
	Category       string             `bson:"category"`
	Status         string             `bson:"status"`
	WorkstationID  string             `bson:"workstation_id,omitempty"`
	PurchaseDate   *time.Time         `bson:"purchase_date,omitempty"`
	WarrantyExpiry *time.Time         `bson:"warranty_expiry,omitempty"`
	Notes          string             `bson:"notes,omitempty"`
	CreatedAt      time.Time          `bson:"created_at"`
}

func toMongoComponent(c *domain.Component) mongoComponent {
	return mongoComponent{
		SerialNumber:   c.SerialNumber,
		Name:           c.Name,
		Category:       string(c.Category),
		Status:         string(c.Status),
		WorkstationID:  c.WorkstationID,
		PurchaseDate:   c.PurchaseDate,
		WarrantyExpiry: c.WarrantyExpiry,
		Notes:          c.Notes,
		CreatedAt:      c.CreatedAt.UTC(),
	}
}

func (mc mongoComponent) toDomain() domain.Component {
	return domain.Component{
		ID:             mc.ID.Hex(),
		SerialNumber:   mc.SerialNumber,
		Name:           mc.Name,
		Category:       domain.ComponentCategory(mc.Category),
		Status:         domain.ComponentStatus(mc.Status),
		WorkstationID:  mc.WorkstationID,
		PurchaseDate:   mc.PurchaseDate,
		WarrantyExpiry: mc.WarrantyExpiry,
		Notes:          mc.Notes,
		CreatedAt:      mc.CreatedAt.UTC(),
	}
}

func (r *ComponentRepository) Create(ctx context.Context, c *domain.Component) (*domain.Component, error) {
	res, err := r.coll.InsertOne(ctx, toMongoComponent(c))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateSerial
		}
		return nil, fmt.Errorf("insert component: %w", err)
	}

	created := *c
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *ComponentRepository) FindByID(ctx context.Context, id string) (*domain.Component, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrComponentNotFound
	}

	var mc mongoComponent
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrComponentNotFound
		}
		return nil, fmt.Errorf("find component: %w", err)
	}
	c := mc.toDomain()
	return &c, nil
}

func (r *ComponentRepository) List(ctx context.Context, filter domain.ComponentFilter) ([]domain.Component, error) {
	query := bson.M{}
	if filter.Category != "" {
		query["category"] = string(filter.Category)
	}
	if filter.Status != "" {
		query["status"] = string(filter.Status)
	}
	if filter.WorkstationID != "" {
		query["workstation_id"] = filter.WorkstationID
	}

	cur, err := r.coll.Find(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list components: %w", err)
	}
	defer cur.Close(ctx)

	components := make([]domain.Component, 0)
	for cur.Next(ctx) {
		var mc mongoComponent
		if err := cur.Decode(&mc); err != nil {
			return nil, fmt.Errorf("decode component: %w", err)
		}
		components = append(components, mc.toDomain())
	}
	return components, cur.Err()
}

func (r *ComponentRepository) Update(ctx context.Context, c *domain.Component) error {
	oid, err := primitive.ObjectIDFromHex(c.ID)
	if err != nil {
		return domain.ErrComponentNotFound
	}

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, toMongoComponent(c))
	if err != nil {
		return fmt.Errorf("update component: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrComponentNotFound
	}
	return nil
}

func (r *ComponentRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrComponentNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete component: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrComponentNotFound
	}
	return nil
}
