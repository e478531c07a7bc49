package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/userhub/identity-api/internal/core/domain"
)

const collectionUsers = "users"

// UserRepository persists users in the users collection. Every method runs a
// single independent point query bounded by the default timeout; no state is
// shared across calls.
type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection(collectionUsers)}
}

// FindByID retrieves a user by document id.
func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

// FindByUsernameOrEmail matches value against the username or email field.
func (r *UserRepository) FindByUsernameOrEmail(ctx context.Context, value string) (*domain.User, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"username": value},
		bson.M{"email": value},
	}}
	return r.findOne(ctx, filter)
}

// FindByUsernameAndEmail is the registration duplicate probe. A registration
// collides when the username is taken or, if an email was supplied, when the
// email is taken.
func (r *UserRepository) FindByUsernameAndEmail(ctx context.Context, username, email string) (*domain.User, error) {
	conditions := bson.A{bson.M{"username": username}}
	if email != "" {
		conditions = append(conditions, bson.M{"email": email})
	}
	return r.findOne(ctx, bson.M{"$or": conditions})
}

// FindAll returns one page of users ordered by creation time.
func (r *UserRepository) FindAll(ctx context.Context, skip, limit int) (*domain.Page[domain.User], error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return paginate[domain.User](ctx, r.col, bson.M{}, skip, limit)
}

// Create inserts a new user document. A unique-index violation means another
// request won the race on username or email; it surfaces as ErrDuplicateUser.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateUser
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return user, nil
}

// Update replaces the stored document, refreshing updated_at.
func (r *UserRepository) Update(ctx context.Context, user *domain.User) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	user.UpdatedAt = time.Now().UTC()
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": user.ID}, user)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

// Delete removes a user by id.
func (r *UserRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var u domain.User
	if err := r.col.FindOne(ctx, filter).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &u, nil
}
