package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/skillstorm/hotel-management/internal/core/domain"
)

const collectionRooms = "rooms"

type RoomRepository struct {
	col *mongo.Collection
}

func NewRoomRepository(db *mongo.Database) *RoomRepository {
	return &RoomRepository{col: db.Collection(collectionRooms)}
}

type roomDocument struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	RoomNumber    string             `bson:"room_number"`
	Type          string             `bson:"type"`
	Description   string             `bson:"description"`
	PricePerNight float64            `bson:"price_per_night"`
	MaxCapacity   int                `bson:"max_capacity"`
	BedType       string             `bson:"bed_type"`
	Size          int                `bson:"size"`
	Floor         int                `bson:"floor"`
	Amenities     []string           `bson:"amenities"`
	Images        []string           `bson:"images"`
	IsAvailable   bool               `bson:"is_available"`
	Status        string             `bson:"status"`
	CreatedAt     time.Time          `bson:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at"`
}

func toRoomDocument(r *domain.Room) roomDocument {
	return roomDocument{
		RoomNumber:    r.RoomNumber,
		Type:          r.Type,
		Description:   r.Description,
		PricePerNight: r.PricePerNight,
		MaxCapacity:   r.MaxCapacity,
		BedType:       r.BedType,
		Size:          r.Size,
		Floor:         r.Floor,
		Amenities:     r.Amenities,
		Images:        r.Images,
		IsAvailable:   r.IsAvailable,
		Status:        r.Status,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

func (d roomDocument) toDomain() *domain.Room {
	return &domain.Room{
		ID:            d.ID.Hex(),
		RoomNumber:    d.RoomNumber,
		Type:          d.Type,
		Description:   d.Description,
		PricePerNight: d.PricePerNight,
		MaxCapacity:   d.MaxCapacity,
		BedType:       d.BedType,
		Size:          d.Size,
		Floor:         d.Floor,
		Amenities:     nonNil(d.Amenities),
		Images:        nonNil(d.Images),
		IsAvailable:   d.IsAvailable,
		Status:        d.Status,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

func (r *RoomRepository) FindAll(ctx context.Context) ([]*domain.Room, error) {
	return r.findMany(ctx, bson.M{})
}

func (r *RoomRepository) FindByID(ctx context.Context, id string) (*domain.Room, error) {
	oid, err := objectID(id, domain.ErrRoomNotFound)
	if err != nil {
		return nil, err
	}
	return r.findOne(ctx, byID(oid))
}

func (r *RoomRepository) FindByRoomNumber(ctx context.Context, roomNumber string) (*domain.Room, error) {
	return r.findOne(ctx, bson.M{"room_number": roomNumber})
}

func (r *RoomRepository) FindByType(ctx context.Context, roomType string) ([]*domain.Room, error) {
	return r.findMany(ctx, bson.M{"type": roomType})
}

// FindByAmenities matches rooms whose amenity list contains all of amenities.
func (r *RoomRepository) FindByAmenities(ctx context.Context, amenities []string) ([]*domain.Room, error) {
	return r.findMany(ctx, bson.M{"amenities": bson.M{"$all": amenities}})
}

// Create inserts room with a new ObjectID. A duplicate room number is
// reported as domain.ErrRoomExists.
func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := toRoomDocument(room)
	doc.ID = primitive.NewObjectID()

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrRoomExists
		}
		return fmt.Errorf("insert room: %w", err)
	}
	room.ID = doc.ID.Hex()
	return nil
}

func (r *RoomRepository) Save(ctx context.Context, room *domain.Room) error {
	oid, err := objectID(room.ID, domain.ErrRoomNotFound)
	if err != nil {
		return err
	}
	doc := toRoomDocument(room)
	doc.ID = oid
	return replaceByID(ctx, r.col, oid, doc, domain.ErrRoomNotFound)
}

func (r *RoomRepository) DeleteByID(ctx context.Context, id string) error {
	return deleteByID(ctx, r.col, id, domain.ErrRoomNotFound)
}

// EnsureIndexes creates the unique room number index and the lookup indexes
// used by the type and amenity finders.
func (r *RoomRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "room_number", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_room_number"),
		},
		{Keys: bson.D{{Key: "type", Value: 1}}},
		{Keys: bson.D{{Key: "amenities", Value: 1}}},
	}

	if _, err := r.col.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("create room indexes: %w", err)
	}
	return nil
}

func (r *RoomRepository) findOne(ctx context.Context, filter bson.M) (*domain.Room, error) {
	var doc roomDocument
	if err := findOne(ctx, r.col, filter, &doc, domain.ErrRoomNotFound); err != nil {
		return nil, err
	}
	return doc.toDomain(), nil
}

func (r *RoomRepository) findMany(ctx context.Context, filter bson.M) ([]*domain.Room, error) {
	docs, err := findMany[roomDocument](ctx, r.col, filter, options.Find().SetSort(bson.D{{Key: "room_number", Value: 1}}))
	if err != nil {
		return nil, err
	}
	rooms := make([]*domain.Room, 0, len(docs))
	for _, d := range docs {
		rooms = append(rooms, d.toDomain())
	}
	return rooms, nil
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
