package repository

import (
	"context"
	"errors"

	"video_sharing_service/internal/channel/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	// ErrNotFound channel does not exist
	ErrNotFound = errors.New("channel not found")
	// ErrAlreadySubscribed user already in subscribers
	ErrAlreadySubscribed = errors.New("already subscribed")
	// ErrNotSubscribed user not in subscribers
	ErrNotSubscribed = errors.New("not subscribed")
)

// ChannelRepository definition channel store.
// Set mutations use atomic operators, never whole document writes.
type ChannelRepository interface {
	Create(ctx context.Context, ch *domain.Channel) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Channel, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.Channel, error)
	FindLatestByOwner(ctx context.Context, owner string) (*domain.Channel, error)
	AddSubscriber(ctx context.Context, id primitive.ObjectID, userID string) error
	RemoveSubscriber(ctx context.Context, id primitive.ObjectID, userID string) error
	AddVideo(ctx context.Context, id, videoID primitive.ObjectID) error
	RemoveVideo(ctx context.Context, id, videoID primitive.ObjectID) error
	EnsureIndexes(ctx context.Context) error
}

type channelRepository struct {
	channelsColl *mongo.Collection
}

// NewMongoChannelRepository create new mongo channel repository
func NewMongoChannelRepository(db *mongo.Database) ChannelRepository {
	return &channelRepository{
		channelsColl: db.Collection(domain.CollectionName),
	}
}

// EnsureIndexes owner lookup index for "current user" channel
func (r *channelRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.channelsColl.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "owner", Value: 1}, {Key: "created_at", Value: -1}},
	})
	return err
}

// Create insert channel, ID is generated when empty
func (r *channelRepository) Create(ctx context.Context, ch *domain.Channel) error {
	if ch.ID.IsZero() {
		ch.ID = primitive.NewObjectID()
	}
	_, err := r.channelsColl.InsertOne(ctx, ch)
	return err
}

// FindByID find channel by id
func (r *channelRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Channel, error) {
	var ch domain.Channel
	err := r.channelsColl.FindOne(ctx, bson.M{"_id": id}).Decode(&ch)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &ch, nil
}

// FindByIDs find channels by ids, missing ids are skipped
func (r *channelRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.Channel, error) {
	channels := []domain.Channel{}
	if len(ids) == 0 {
		return channels, nil
	}

	cursor, err := r.channelsColl.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	if err := cursor.All(ctx, &channels); err != nil {
		return nil, err
	}
	return channels, nil
}

// FindLatestByOwner most recently created channel of owner
func (r *channelRepository) FindLatestByOwner(ctx context.Context, owner string) (*domain.Channel, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})

	var ch domain.Channel
	err := r.channelsColl.FindOne(ctx, bson.M{"owner": owner}, opts).Decode(&ch)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &ch, nil
}

// AddSubscriber $addToSet guarded by $ne so a duplicate matches nothing
func (r *channelRepository) AddSubscriber(ctx context.Context, id primitive.ObjectID, userID string) error {
	res, err := r.channelsColl.UpdateOne(ctx,
		bson.M{"_id": id, "subscribers": bson.M{"$ne": userID}},
		bson.M{"$addToSet": bson.M{"subscribers": userID}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 1 {
		return nil
	}
	return r.missOr(ctx, id, ErrAlreadySubscribed)
}

// RemoveSubscriber $pull guarded by membership
func (r *channelRepository) RemoveSubscriber(ctx context.Context, id primitive.ObjectID, userID string) error {
	res, err := r.channelsColl.UpdateOne(ctx,
		bson.M{"_id": id, "subscribers": userID},
		bson.M{"$pull": bson.M{"subscribers": userID}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 1 {
		return nil
	}
	return r.missOr(ctx, id, ErrNotSubscribed)
}

// AddVideo append videoID keeping upload order and unique membership
func (r *channelRepository) AddVideo(ctx context.Context, id, videoID primitive.ObjectID) error {
	res, err := r.channelsColl.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$addToSet": bson.M{"videos": videoID}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// RemoveVideo pull videoID, a missing channel is not an error
func (r *channelRepository) RemoveVideo(ctx context.Context, id, videoID primitive.ObjectID) error {
	_, err := r.channelsColl.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$pull": bson.M{"videos": videoID}},
	)
	return err
}

// missOr tell a missing channel apart from a failed guard
func (r *channelRepository) missOr(ctx context.Context, id primitive.ObjectID, guardErr error) error {
	n, err := r.channelsColl.CountDocuments(ctx, bson.M{"_id": id}, options.Count().SetLimit(1))
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return guardErr
}
