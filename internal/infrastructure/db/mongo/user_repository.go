package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shopfront/storefront-api/internal/core/domain"
)

const usersCollection = "users"

// MongoUserRepository is the credential store. The users collection carries a
// unique index on username.
type MongoUserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{coll: db.Collection(usersCollection)}
}

type mongoUser struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Username     string             `bson:"username"`
	Name         string             `bson:"name,omitempty"`
	Surname      string             `bson:"surname,omitempty"`
	Email        string             `bson:"email,omitempty"`
	Phone        string             `bson:"phone,omitempty"`
	City         string             `bson:"city,omitempty"`
	Address      string             `bson:"address,omitempty"`
	PasswordHash string             `bson:"password_hash"`
	Role         string             `bson:"role"`
	CreatedAt    int64              `bson:"created_at"`
	UpdatedAt    int64              `bson:"updated_at"`
}

func (r *MongoUserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

func (r *MongoUserRepository) FindByIdentifier(ctx context.Context, identifier string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"$or": bson.A{
		bson.M{"username": identifier},
		bson.M{"email": identifier},
	}})
}

func (r *MongoUserRepository) UpdatePassword(ctx context.Context, username, passwordHash string) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"username": username},
		bson.M{"$set": bson.M{
			"password_hash": passwordHash,
			"updated_at":    time.Now().UTC().Unix(),
		}},
	)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *MongoUserRepository) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	var mu mongoUser
	if err := r.coll.FindOne(ctx, filter).Decode(&mu); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	return &domain.User{
		ID:           mu.ID.Hex(),
		Username:     mu.Username,
		Name:         mu.Name,
		Surname:      mu.Surname,
		Email:        mu.Email,
		Phone:        mu.Phone,
		City:         mu.City,
		Address:      mu.Address,
		PasswordHash: mu.PasswordHash,
		Role:         domain.ParseRole(mu.Role),
		CreatedAt:    unixToTime(mu.CreatedAt),
		UpdatedAt:    unixToTime(mu.UpdatedAt),
	}, nil
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
