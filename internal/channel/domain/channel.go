package domain

import (
	videodomain "video_sharing_service/internal/video/domain"
	"video_sharing_service/pkg"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CollectionName channels collection
const CollectionName = "channels"

// Channel definition channel document
type Channel struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"_id"`
	Name        string               `bson:"name" json:"name"`
	Description string               `bson:"description" json:"description"`
	Owner       string               `bson:"owner" json:"owner"`
	Videos      []primitive.ObjectID `bson:"videos" json:"videos"`      // upload order
	Subscribers []string             `bson:"subscribers" json:"subscribers"`
	CreatedAt   int64                `bson:"created_at" json:"createdAt"`
}

// IsSubscribed check userID in subscribers
func (c *Channel) IsSubscribed(userID string) bool {
	return pkg.Contains(c.Subscribers, userID)
}

// SubscribersCount subscriber set size
func (c *Channel) SubscribersCount() int {
	return len(c.Subscribers)
}

// Ref reduce to the fields a video projection needs
func (c *Channel) Ref() videodomain.ChannelRef {
	return videodomain.ChannelRef{
		ID:               c.ID,
		Name:             c.Name,
		SubscribersCount: c.SubscribersCount(),
	}
}

// ChannelDetails channel with its videos and subscriber display names resolved
type ChannelDetails struct {
	Channel         Channel
	Videos          []videodomain.Video
	SubscriberNames []string
}

// CreateChannelReq usecase create channel request
type CreateChannelReq struct {
	Name        string `json:"name" form:"name" validate:"required,notblank"`
	Description string `json:"description" form:"description" validate:"required,notblank"`
}
