package repository

import (
	"context"
	"errors"

	"video_sharing_service/internal/video/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	// ErrNotFound video does not exist
	ErrNotFound = errors.New("video not found")
	// ErrAlreadyReacted user already in the reaction set
	ErrAlreadyReacted = errors.New("already reacted")
)

// VideoRepository definition video store
type VideoRepository interface {
	Create(ctx context.Context, v *domain.Video) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Video, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.Video, error)
	FindAll(ctx context.Context) ([]domain.Video, error)
	Update(ctx context.Context, id primitive.ObjectID, patch domain.VideoPatch) (*domain.Video, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*domain.Video, error)
	AddReaction(ctx context.Context, id primitive.ObjectID, kind domain.ReactionKind, userID string) error
	AppendComment(ctx context.Context, id primitive.ObjectID, c domain.Comment) error
}

type videoRepository struct {
	videosColl *mongo.Collection
}

// NewMongoVideoRepository create new mongo video repository
func NewMongoVideoRepository(db *mongo.Database) VideoRepository {
	return &videoRepository{
		videosColl: db.Collection(domain.CollectionName),
	}
}

// Create insert video, ID is generated when empty
func (r *videoRepository) Create(ctx context.Context, v *domain.Video) error {
	if v.ID.IsZero() {
		v.ID = primitive.NewObjectID()
	}
	_, err := r.videosColl.InsertOne(ctx, v)
	return err
}

// FindByID find video by id
func (r *videoRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Video, error) {
	var v domain.Video
	err := r.videosColl.FindOne(ctx, bson.M{"_id": id}).Decode(&v)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// FindByIDs find videos by ids, missing ids are skipped and order is not kept
func (r *videoRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.Video, error) {
	if len(ids) == 0 {
		return []domain.Video{}, nil
	}
	return r.find(ctx, bson.M{"_id": bson.M{"$in": ids}})
}

// FindAll all videos, oldest first
func (r *videoRepository) FindAll(ctx context.Context) ([]domain.Video, error) {
	return r.find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
}

func (r *videoRepository) find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]domain.Video, error) {
	cursor, err := r.videosColl.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	videos := []domain.Video{}
	if err := cursor.All(ctx, &videos); err != nil {
		return nil, err
	}
	return videos, nil
}

// Update $set the non nil patch fields and return the stored result
func (r *videoRepository) Update(ctx context.Context, id primitive.ObjectID, patch domain.VideoPatch) (*domain.Video, error) {
	set := bson.M{}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.URL != nil {
		set["url"] = *patch.URL
	}
	if patch.ThumbnailURL != nil {
		set["thumbnailUrl"] = *patch.ThumbnailURL
	}
	if patch.VideoKey != nil {
		set["video_key"] = *patch.VideoKey
	}
	if patch.ThumbnailKey != nil {
		set["thumbnail_key"] = *patch.ThumbnailKey
	}
	if len(set) == 0 {
		return r.FindByID(ctx, id)
	}

	var v domain.Video
	err := r.videosColl.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&v)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// Delete remove video and return what was removed
func (r *videoRepository) Delete(ctx context.Context, id primitive.ObjectID) (*domain.Video, error) {
	var v domain.Video
	err := r.videosColl.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&v)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// AddReaction $addToSet on likes / dislikes, the opposite set is left untouched
func (r *videoRepository) AddReaction(ctx context.Context, id primitive.ObjectID, kind domain.ReactionKind, userID string) error {
	field := kind.Field()
	if field == "" {
		return errors.New("unknown reaction kind " + string(kind))
	}

	res, err := r.videosColl.UpdateOne(ctx,
		bson.M{"_id": id, field: bson.M{"$ne": userID}},
		bson.M{"$addToSet": bson.M{field: userID}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 1 {
		return nil
	}

	n, err := r.videosColl.CountDocuments(ctx, bson.M{"_id": id}, options.Count().SetLimit(1))
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return ErrAlreadyReacted
}

// AppendComment $push keeps insertion order
func (r *videoRepository) AppendComment(ctx context.Context, id primitive.ObjectID, c domain.Comment) error {
	res, err := r.videosColl.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$push": bson.M{"comments": c}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
