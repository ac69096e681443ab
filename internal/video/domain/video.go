package domain

import (
	"io"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CollectionName videos collection
const CollectionName = "videos"

// Video definition video document
type Video struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title        string             `bson:"title" json:"title"`
	Description  string             `bson:"description" json:"description"`
	URL          string             `bson:"url" json:"url"`
	ThumbnailURL string             `bson:"thumbnailUrl" json:"thumbnailUrl"`
	VideoKey     string             `bson:"video_key,omitempty" json:"-"` // object key in the media store
	ThumbnailKey string             `bson:"thumbnail_key,omitempty" json:"-"`
	Channel      primitive.ObjectID `bson:"channel" json:"channel"`
	Owner        string             `bson:"owner" json:"owner"`
	Likes        []string           `bson:"likes" json:"likes"`
	Dislikes     []string           `bson:"dislikes" json:"dislikes"`
	Comments     []Comment          `bson:"comments" json:"comments"`
	CreatedAt    int64              `bson:"created_at" json:"createdAt"`
}

// Comment append-only comment sub document
type Comment struct {
	ID        primitive.ObjectID `bson:"_id" json:"_id"`
	User      string             `bson:"user" json:"user"`
	Text      string             `bson:"text" json:"text"`
	CreatedAt int64              `bson:"created_at" json:"createdAt"`
}

// CommentUsers distinct comment author ids in comment order
func (v *Video) CommentUsers() []string {
	seen := make(map[string]struct{}, len(v.Comments))
	users := make([]string, 0, len(v.Comments))
	for _, c := range v.Comments {
		if _, ok := seen[c.User]; ok {
			continue
		}
		seen[c.User] = struct{}{}
		users = append(users, c.User)
	}
	return users
}

// ReactionKind like or dislike
type ReactionKind string

const (
	// ReactionLike like
	ReactionLike ReactionKind = "like"
	// ReactionDislike dislike
	ReactionDislike ReactionKind = "dislike"
)

// Field the video set holding this kind
func (k ReactionKind) Field() string {
	switch k {
	case ReactionLike:
		return "likes"
	case ReactionDislike:
		return "dislikes"
	default:
		return ""
	}
}

// MediaFile an uploaded file handed to the media store
type MediaFile struct {
	FileName    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// VideoPatch fields to $set on update, nil means unchanged
type VideoPatch struct {
	Title        *string
	Description  *string
	URL          *string
	ThumbnailURL *string
	VideoKey     *string
	ThumbnailKey *string
}

// IsEmpty nothing to update
func (p VideoPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil &&
		p.URL == nil && p.ThumbnailURL == nil &&
		p.VideoKey == nil && p.ThumbnailKey == nil
}

// ChannelRef the channel fields a video projection needs
type ChannelRef struct {
	ID               primitive.ObjectID
	Name             string
	SubscribersCount int
}

// VideoDetails video with resolved references, Channel nil when the channel is gone
type VideoDetails struct {
	Video          Video
	Channel        *ChannelRef
	CommentAuthors map[string]string
}
