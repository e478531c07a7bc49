package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/userhub/identity-api/internal/core/domain"
)

// paginate runs a count plus a windowed find over the collection and wraps the
// decoded documents in a Page. Results are ordered by creation time so pages
// stay stable across requests.
func paginate[T any](ctx context.Context, col *mongo.Collection, filter bson.M, skip, limit int) (*domain.Page[T], error) {
	total, err := col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count documents: %w", err)
	}

	opts := options.Find().
		SetSkip(int64(skip)).
		SetLimit(int64(limit)).
		SetSort(bson.D{{Key: "created_at", Value: 1}})

	cursor, err := col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find documents: %w", err)
	}
	defer cursor.Close(ctx)

	data := make([]T, 0, limit)
	if err := cursor.All(ctx, &data); err != nil {
		return nil, fmt.Errorf("decode documents: %w", err)
	}

	return domain.NewPage(data, skip, limit, total), nil
}
