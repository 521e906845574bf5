package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/avelinom/vidgate/internal/domain"
)

const usersCollection = "users"

// UserRepository persists user accounts in the users collection.
type UserRepository struct {
	coll *mongo.Collection
}

// NewUserRepository creates a new user repository
func NewUserRepository(client *Client) *UserRepository {
	return &UserRepository{coll: client.Database().Collection(usersCollection)}
}

// EnsureIndexes creates the unique email index. The index is what closes
// the check-then-insert race between two concurrent signups.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create email index: %w", err)
	}
	return nil
}

// FindByEmail returns the user with the given email, or (nil, nil) if absent.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	return &user, nil
}

// FindByID returns the user with the given id, or (nil, nil) if absent.
// The password hash is excluded from the projection; this lookup serves
// profile display only.
func (r *UserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	opts := options.FindOne().SetProjection(bson.M{"password": 0})

	var user domain.User
	err := r.coll.FindOne(ctx, bson.M{"_id": id}, opts).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user by id: %w", err)
	}
	return &user, nil
}

// Insert stores a new user and returns its assigned id. A unique-index
// violation on email maps to domain.ErrEmailTaken.
func (r *UserRepository) Insert(ctx context.Context, user *domain.User) (primitive.ObjectID, error) {
	res, err := r.coll.InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return primitive.NilObjectID, domain.ErrEmailTaken
	}
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to insert user: %w", err)
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return id, nil
}
