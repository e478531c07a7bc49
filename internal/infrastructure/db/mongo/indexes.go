package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// collectionIndexes declares, per collection, every index the service relies
// on. The registry is static: adding an entity means adding its indexes here,
// where they are reviewed at compile time instead of discovered by reflection
// at startup.
type collectionIndexes struct {
	Collection string
	Indexes    []mongo.IndexModel
}

var indexRegistry = []collectionIndexes{
	{
		Collection: collectionUsers,
		Indexes: []mongo.IndexModel{
			{
				Keys:    bson.D{{Key: "username", Value: 1}},
				Options: options.Index().SetName("username_1").SetUnique(true),
			},
			{
				// Partial unique index: emails must be unique among the
				// documents that carry one, while any number of documents
				// may omit the field entirely.
				Keys: bson.D{{Key: "email", Value: 1}},
				Options: options.Index().
					SetName("email_1").
					SetUnique(true).
					SetPartialFilterExpression(bson.M{
						"email": bson.M{"$exists": true, "$type": "string"},
					}),
			},
			{
				Keys:    bson.D{{Key: "created_at", Value: 1}},
				Options: options.Index().SetName("created_at_1"),
			},
		},
	},
}

// EnsureIndexes creates any missing collections and builds every index in the
// registry. Index creation is idempotent on the server side, so running it on
// every startup is safe.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	existing, err := db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("list collections: %w", err)
	}
	known := make(map[string]struct{}, len(existing))
	for _, name := range existing {
		known[name] = struct{}{}
	}

	for _, entry := range indexRegistry {
		if _, ok := known[entry.Collection]; !ok {
			if err := db.CreateCollection(ctx, entry.Collection); err != nil {
				return fmt.Errorf("create collection %s: %w", entry.Collection, err)
			}
		}

		if _, err := db.Collection(entry.Collection).Indexes().CreateMany(ctx, entry.Indexes); err != nil {
			return fmt.Errorf("create indexes for %s: %w", entry.Collection, err)
		}
	}

	return nil
}
