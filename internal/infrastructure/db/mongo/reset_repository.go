package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shopfront/storefront-api/internal/core/domain"
)

const resetsCollection = "password_resets"

// MongoResetTokenRepository stores at most one reset token per account by
// using the account identifier as the document _id. Replacement is therefore
// atomic: there is never a window with two live tokens for one account.
//
// An optional TTL index on expires_at keeps the collection tidy; expiry is
// still enforced lazily at redemption time and does not depend on it.
type MongoResetTokenRepository struct {
	coll *mongo.Collection
}

func NewResetTokenRepository(db *mongo.Database) *MongoResetTokenRepository {
	return &MongoResetTokenRepository{coll: db.Collection(resetsCollection)}
}

type mongoResetToken struct {
	Identifier string `bson:"_id"`
	Token      string `bson:"token"`
	IssuedAt   int64  `bson:"issued_at"`
	ExpiresAt  int64  `bson:"expires_at"`
	Consumed   bool   `bson:"consumed"`
}

func (r *MongoResetTokenRepository) Replace(ctx context.Context, token *domain.ResetToken) error {
	doc := mongoResetToken{
		Identifier: token.Identifier,
		Token:      token.Token,
		IssuedAt:   token.IssuedAt.Unix(),
		ExpiresAt:  token.ExpiresAt.Unix(),
		Consumed:   token.Consumed,
	}

	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, bson.M{"_id": token.Identifier}, doc, opts); err != nil {
		return fmt.Errorf("replace reset token: %w", err)
	}
	return nil
}

func (r *MongoResetTokenRepository) FindLive(ctx context.Context, identifier string) (*domain.ResetToken, error) {
	var mt mongoResetToken
	err := r.coll.FindOne(ctx, bson.M{"_id": identifier, "consumed": false}).Decode(&mt)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrResetInvalid
		}
		return nil, fmt.Errorf("find reset token: %w", err)
	}

	return &domain.ResetToken{
		Identifier: mt.Identifier,
		Token:      mt.Token,
		IssuedAt:   unixToTime(mt.IssuedAt),
		ExpiresAt:  unixToTime(mt.ExpiresAt),
		Consumed:   mt.Consumed,
	}, nil
}

// Consume flips the consumed flag in a single conditional update. With
// concurrent redeemers exactly one call matches the document; the rest see
// ErrNoDocuments and report the token as already spent.
func (r *MongoResetTokenRepository) Consume(ctx context.Context, identifier, token string) error {
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": identifier, "token": token, "consumed": false},
		bson.M{"$set": bson.M{"consumed": true}},
	).Err()
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return domain.ErrResetInvalid
		}
		return fmt.Errorf("consume reset token: %w", err)
	}
	return nil
}
