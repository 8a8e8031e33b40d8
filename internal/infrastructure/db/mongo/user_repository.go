package mongo

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/foodytravelers/booking/internal/core/domain"
)

const userCollection = "users"

type MongoUserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{coll: db.Collection(userCollection)}
}

type tokenDoc struct {
	Token string `bson:"token"`
}

type userDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Username     string             `bson:"username"`
	Email        string             `bson:"email"`
	Phone        string             `bson:"phone"`
	Age          int                `bson:"age"`
	Address      string             `bson:"address"`
	PasswordHash string             `bson:"password"`
	Tokens       []tokenDoc         `bson:"tokens"`
}

func (d *userDoc) toDomain() *domain.User {
	tokens := make([]string, 0, len(d.Tokens))
	for _, t := range d.Tokens {
		tokens = append(tokens, t.Token)
	}
	return &domain.User{
		ID:           d.ID.Hex(),
		Username:     d.Username,
		Email:        d.Email,
		Phone:        d.Phone,
		Age:          d.Age,
		Address:      d.Address,
		PasswordHash: d.PasswordHash,
		Tokens:       tokens,
	}
}

// NewID generates an ObjectID client-side, so callers can bind tokens to the
// user before the insert happens.
func (r *MongoUserRepository) NewID() string {
	return primitive.NewObjectID().Hex()
}

func (r *MongoUserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	tokens := make([]tokenDoc, 0, len(user.Tokens))
	for _, t := range user.Tokens {
		tokens = append(tokens, tokenDoc{Token: t})
	}
	doc := userDoc{
		Username:     user.Username,
		Email:        user.Email,
		Phone:        user.Phone,
		Age:          user.Age,
		Address:      user.Address,
		PasswordHash: user.PasswordHash,
		Tokens:       tokens,
	}
	if user.ID != "" {
		oid, err := primitive.ObjectIDFromHex(user.ID)
		if err != nil {
			return nil, fmt.Errorf("invalid user id %q: %w", user.ID, err)
		}
		doc.ID = oid
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		// The unique index is the authority on duplicates; the service-level
		// pre-check only exists for friendlier messages. Concurrent signups
		// racing past the pre-check land here.
		if mongo.IsDuplicateKeyError(err) {
			if strings.Contains(err.Error(), "phone") {
				return nil, domain.ErrPhoneTaken
			}
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	created := *user
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *MongoUserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *MongoUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *MongoUserRepository) FindByPhone(ctx context.Context, phone string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"phone": phone})
}

func (r *MongoUserRepository) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	var doc userDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *MongoUserRepository) AppendToken(ctx context.Context, id, token string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrUserNotFound
	}
	res, err := r.coll.UpdateByID(ctx, oid, bson.M{
		"$push": bson.M{"tokens": tokenDoc{Token: token}},
	})
	if err != nil {
		return fmt.Errorf("append token: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *MongoUserRepository) ClearTokens(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrUserNotFound
	}
	res, err := r.coll.UpdateByID(ctx, oid, bson.M{
		"$set": bson.M{"tokens": []tokenDoc{}},
	})
	if err != nil {
		return fmt.Errorf("clear tokens: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
