package mongo

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/skillstorm/hotel-management/internal/core/domain"
)

const collectionUsers = "users"

type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection(collectionUsers)}
}

type userDocument struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty"`
	Email               string             `bson:"email"`
	Password            string             `bson:"password,omitempty"`
	FirstName           string             `bson:"first_name"`
	LastName            string             `bson:"last_name"`
	PhoneNumber         string             `bson:"phone_number"`
	Roles               []string           `bson:"roles"`
	EmailVerified       bool               `bson:"email_verified"`
	Provider            string             `bson:"provider,omitempty"`
	ProviderID          string             `bson:"provider_id,omitempty"`
	ProfileImage        string             `bson:"profile_image,omitempty"`
	Preferences         map[string]any     `bson:"preferences"`
	SavedPaymentMethods []string           `bson:"saved_payment_methods,omitempty"`
	CreatedAt           time.Time          `bson:"created_at"`
	UpdatedAt           time.Time          `bson:"updated_at"`
}

func toUserDocument(u *domain.User) userDocument {
	return userDocument{
		Email:               u.Email,
		Password:            u.PasswordHash,
		FirstName:           u.FirstName,
		LastName:            u.LastName,
		PhoneNumber:         u.PhoneNumber,
		Roles:               u.Roles,
		EmailVerified:       u.EmailVerified,
		Provider:            u.Provider,
		ProviderID:          u.ProviderID,
		ProfileImage:        u.ProfileImage,
		Preferences:         u.Preferences,
		SavedPaymentMethods: u.SavedPaymentMethods,
		CreatedAt:           u.CreatedAt,
		UpdatedAt:           u.UpdatedAt,
	}
}

func (d userDocument) toDomain() *domain.User {
	prefs := d.Preferences
	if prefs == nil {
		prefs = map[string]any{}
	}
	return &domain.User{
		ID:                  d.ID.Hex(),
		Email:               d.Email,
		PasswordHash:        d.Password,
		FirstName:           d.FirstName,
		LastName:            d.LastName,
		PhoneNumber:         d.PhoneNumber,
		Roles:               nonNil(d.Roles),
		EmailVerified:       d.EmailVerified,
		Provider:            d.Provider,
		ProviderID:          d.ProviderID,
		ProfileImage:        d.ProfileImage,
		Preferences:         prefs,
		SavedPaymentMethods: d.SavedPaymentMethods,
		CreatedAt:           d.CreatedAt,
		UpdatedAt:           d.UpdatedAt,
	}
}

func (r *UserRepository) FindAll(ctx context.Context) ([]*domain.User, error) {
	return r.findMany(ctx, bson.M{})
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	oid, err := objectID(id, domain.ErrUserNotFound)
	if err != nil {
		return nil, err
	}
	return r.findOne(ctx, byID(oid))
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

// FindByRole matches any role element containing role, ignoring case, so
// "guest" also finds users stored with "ROLE_GUEST".
func (r *UserRepository) FindByRole(ctx context.Context, role string) ([]*domain.User, error) {
	return r.findMany(ctx, roleFilter(role))
}

func roleFilter(role string) bson.M {
	return bson.M{"roles": primitive.Regex{Pattern: regexp.QuoteMeta(role), Options: "i"}}
}

// Create inserts user with a new ObjectID. A registered email is reported as
// domain.ErrUserExists.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := toUserDocument(user)
	doc.ID = primitive.NewObjectID()

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrUserExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	user.ID = doc.ID.Hex()
	return nil
}

func (r *UserRepository) Save(ctx context.Context, user *domain.User) error {
	oid, err := objectID(user.ID, domain.ErrUserNotFound)
	if err != nil {
		return err
	}
	doc := toUserDocument(user)
	doc.ID = oid
	return replaceByID(ctx, r.col, oid, doc, domain.ErrUserNotFound)
}

func (r *UserRepository) DeleteByID(ctx context.Context, id string) error {
	return deleteByID(ctx, r.col, id, domain.ErrUserNotFound)
}

// EnsureIndexes creates the unique email index.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_email"),
		},
		{Keys: bson.D{{Key: "roles", Value: 1}}},
	}

	if _, err := r.col.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("create user indexes: %w", err)
	}
	return nil
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	var doc userDocument
	if err := findOne(ctx, r.col, filter, &doc, domain.ErrUserNotFound); err != nil {
		return nil, err
	}
	return doc.toDomain(), nil
}

func (r *UserRepository) findMany(ctx context.Context, filter bson.M) ([]*domain.User, error) {
	docs, err := findMany[userDocument](ctx, r.col, filter, options.Find().SetSort(bson.D{{Key: "email", Value: 1}}))
	if err != nil {
		return nil, err
	}
	users := make([]*domain.User, 0, len(docs))
	for _, d := range docs {
		users = append(users, d.toDomain())
	}
	return users, nil
}
