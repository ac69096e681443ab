package repository

import (
	"context"

	"video_sharing_service/internal/user/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Directory resolve user ids to display names, unknown ids are left out
type Directory interface {
	DisplayNames(ctx context.Context, ids []string) (map[string]string, error)
}

type userRepository struct {
	usersColl *mongo.Collection
}

// NewMongoUserRepository create users lookup
func NewMongoUserRepository(db *mongo.Database) Directory {
	return &userRepository{
		usersColl: db.Collection(domain.CollectionName),
	}
}

// DisplayNames users may be keyed by ObjectID or by plain string, query both
func (r *userRepository) DisplayNames(ctx context.Context, ids []string) (map[string]string, error) {
	names := make(map[string]string, len(ids))
	keys := lookupKeys(ids)
	if len(keys) == 0 {
		return names, nil
	}

	cursor, err := r.usersColl.Find(ctx,
		bson.M{"_id": bson.M{"$in": keys}},
		options.Find().SetProjection(bson.M{"name": 1}),
	)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var u domain.User
		if err := cursor.Decode(&u); err != nil {
			return nil, err
		}
		if id := u.IDString(); id != "" {
			names[id] = u.Name
		}
	}
	return names, cursor.Err()
}

func lookupKeys(ids []string) []interface{} {
	seen := make(map[string]struct{}, len(ids))
	keys := make([]interface{}, 0, len(ids)*2)
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}

		keys = append(keys, id)
		if oid, err := primitive.ObjectIDFromHex(id); err == nil {
			keys = append(keys, oid)
		}
	}
	return keys
}
