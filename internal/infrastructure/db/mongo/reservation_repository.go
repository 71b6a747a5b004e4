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

const collectionReservations = "reservations"

type ReservationRepository struct {
	col *mongo.Collection
}

func NewReservationRepository(db *mongo.Database) *ReservationRepository {
	return &ReservationRepository{col: db.Collection(collectionReservations)}
}

// reservationDocument stores dates as BSON datetimes at midnight UTC. A zero
// date is stored as null.
type reservationDocument struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	UserID     string             `bson:"user_id"`
	GuestName  string             `bson:"guest_name"`
	RoomNumber int                `bson:"room_number"`
	CheckIn    *time.Time         `bson:"check_in"`
	CheckOut   *time.Time         `bson:"check_out"`
	Status     string             `bson:"status"`
	TotalPrice float64            `bson:"total_price"`
}

func toReservationDocument(r *domain.Reservation) reservationDocument {
	return reservationDocument{
		UserID:     r.UserID,
		GuestName:  r.GuestName,
		RoomNumber: r.RoomNumber,
		CheckIn:    dateToTime(r.CheckIn),
		CheckOut:   dateToTime(r.CheckOut),
		Status:     r.Status,
		TotalPrice: r.TotalPrice,
	}
}

func (d reservationDocument) toDomain() *domain.Reservation {
	return &domain.Reservation{
		ID:         d.ID.Hex(),
		UserID:     d.UserID,
		GuestName:  d.GuestName,
		RoomNumber: d.RoomNumber,
		CheckIn:    timeToDate(d.CheckIn),
		CheckOut:   timeToDate(d.CheckOut),
		Status:     d.Status,
		TotalPrice: d.TotalPrice,
	}
}

func dateToTime(d domain.Date) *time.Time {
	if d.IsZero() {
		return nil
	}
	t := d.UTC()
	return &t
}

func timeToDate(t *time.Time) domain.Date {
	if t == nil {
		return domain.Date{}
	}
	u := t.UTC()
	return domain.NewDate(u.Year(), u.Month(), u.Day())
}

func (r *ReservationRepository) FindAll(ctx context.Context) ([]*domain.Reservation, error) {
	return r.findMany(ctx, bson.M{})
}

func (r *ReservationRepository) FindByID(ctx context.Context, id string) (*domain.Reservation, error) {
	oid, err := objectID(id, domain.ErrReservationNotFound)
	if err != nil {
		return nil, err
	}

	var doc reservationDocument
	if err := findOne(ctx, r.col, byID(oid), &doc, domain.ErrReservationNotFound); err != nil {
		return nil, err
	}
	return doc.toDomain(), nil
}

func (r *ReservationRepository) FindByRoomNumber(ctx context.Context, roomNumber int) ([]*domain.Reservation, error) {
	return r.findMany(ctx, bson.M{"room_number": roomNumber})
}

func (r *ReservationRepository) FindByUserID(ctx context.Context, userID string) ([]*domain.Reservation, error) {
	return r.findMany(ctx, bson.M{"user_id": userID})
}

func (r *ReservationRepository) Create(ctx context.Context, reservation *domain.Reservation) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := toReservationDocument(reservation)
	doc.ID = primitive.NewObjectID()

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert reservation: %w", err)
	}
	reservation.ID = doc.ID.Hex()
	return nil
}

func (r *ReservationRepository) Save(ctx context.Context, reservation *domain.Reservation) error {
	oid, err := objectID(reservation.ID, domain.ErrReservationNotFound)
	if err != nil {
		return err
	}
	doc := toReservationDocument(reservation)
	doc.ID = oid
	return replaceByID(ctx, r.col, oid, doc, domain.ErrReservationNotFound)
}

func (r *ReservationRepository) DeleteByID(ctx context.Context, id string) error {
	return deleteByID(ctx, r.col, id, domain.ErrReservationNotFound)
}

// EnsureIndexes creates the lookup indexes for the room and user finders.
func (r *ReservationRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "room_number", Value: 1}, {Key: "check_in", Value: 1}}},
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
	}

	if _, err := r.col.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("create reservation indexes: %w", err)
	}
	return nil
}

func (r *ReservationRepository) findMany(ctx context.Context, filter bson.M) ([]*domain.Reservation, error) {
	docs, err := findMany[reservationDocument](ctx, r.col, filter, options.Find().SetSort(bson.D{{Key: "check_in", Value: 1}}))
	if err != nil {
		return nil, err
	}
	out := make([]*domain.Reservation, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}
