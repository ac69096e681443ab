// Package projector reshapes stored documents into the payloads returned to clients.
package projector

import (
	channeldomain "video_sharing_service/internal/channel/domain"
	videodomain "video_sharing_service/internal/video/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UnknownChannel channel name shown when a video's channel can't be resolved
const UnknownChannel = "Unknown Channel"

// ChannelVideo video entry of the get-channel-by-id payload
type ChannelVideo struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnailUrl"`
}

// OwnerChannelVideo video entry of the current-user channel payload
type OwnerChannelVideo struct {
	ID           string `json:"_id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnailUrl"`
}

// ChannelView get channel by id
type ChannelView struct {
	Name             string         `json:"name"`
	Description      string         `json:"description"`
	Videos           []ChannelVideo `json:"videos"`
	Subscribers      []string       `json:"subscribers"`
	SubscribersCount int            `json:"subscribersCount"`
}

// OwnerChannelView current user's channel
type OwnerChannelView struct {
	Name             string              `json:"name"`
	Description      string              `json:"description"`
	Videos           []OwnerChannelVideo `json:"videos"`
	Subscribers      []string            `json:"subscribers"`
	SubscribersCount int                 `json:"subscribersCount"`
}

// SubscriptionView check-subscription payload
type SubscriptionView struct {
	Subscribed bool `json:"subscribed"`
}

// VideoSummary list / upload payload
type VideoSummary struct {
	VideoID          string                `json:"videoId"`
	Title            string                `json:"title"`
	Description      string                `json:"description"`
	URL              string                `json:"url"`
	ThumbnailURL     string                `json:"thumbnailUrl"`
	ChannelName      string                `json:"channelName"`
	ChannelID        *string               `json:"channelId"`
	SubscribersCount int                   `json:"subscribersCount"`
	Likes            int                   `json:"likes"`
	Dislikes         int                   `json:"dislikes"`
	Comments         []videodomain.Comment `json:"comments"`
}

// CommentAuthor populated comment author
type CommentAuthor struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

// CommentView comment with its author resolved, User nil when the author is unknown
type CommentView struct {
	ID   string         `json:"_id"`
	User *CommentAuthor `json:"user"`
	Text string         `json:"text"`
}

// VideoView get video by id, no thumbnailUrl
type VideoView struct {
	VideoID          string        `json:"videoId"`
	Title            string        `json:"title"`
	Description      string        `json:"description"`
	URL              string        `json:"url"`
	ChannelName      string        `json:"channelName"`
	ChannelID        *string       `json:"channelId"`
	SubscribersCount int           `json:"subscribersCount"`
	Likes            int           `json:"likes"`
	Dislikes         int           `json:"dislikes"`
	Comments         []CommentView `json:"comments"`
}

// UpdatedVideoView update payload, no videoId
type UpdatedVideoView struct {
	Title            string                `json:"title"`
	Description      string                `json:"description"`
	URL              string                `json:"url"`
	ThumbnailURL     string                `json:"thumbnailUrl"`
	ChannelName      string                `json:"channelName"`
	ChannelID        *string               `json:"channelId"`
	SubscribersCount int                   `json:"subscribersCount"`
	Likes            int                   `json:"likes"`
	Dislikes         int                   `json:"dislikes"`
	Comments         []videodomain.Comment `json:"comments"`
}

// Channel get channel by id
func Channel(d *channeldomain.ChannelDetails) ChannelView {
	videos := make([]ChannelVideo, 0, len(d.Videos))
	for _, v := range d.Videos {
		videos = append(videos, ChannelVideo{
			ID:           v.ID.Hex(),
			Title:        v.Title,
			Description:  v.Description,
			URL:          v.URL,
			ThumbnailURL: v.ThumbnailURL,
		})
	}
	return ChannelView{
		Name:             d.Channel.Name,
		Description:      d.Channel.Description,
		Videos:           videos,
		Subscribers:      nonNil(d.SubscriberNames),
		SubscribersCount: d.Channel.SubscribersCount(),
	}
}

// OwnerChannel current user's channel, nested video ids keyed by _id
func OwnerChannel(d *channeldomain.ChannelDetails) OwnerChannelView {
	view := Channel(d)
	videos := make([]OwnerChannelVideo, 0, len(view.Videos))
	for _, v := range view.Videos {
		videos = append(videos, OwnerChannelVideo(v))
	}
	return OwnerChannelView{
		Name:             view.Name,
		Description:      view.Description,
		Videos:           videos,
		Subscribers:      view.Subscribers,
		SubscribersCount: view.SubscribersCount,
	}
}

// NewChannel created channel document with empty sets rendered as []
func NewChannel(c *channeldomain.Channel) channeldomain.Channel {
	out := *c
	if out.Videos == nil {
		out.Videos = []primitive.ObjectID{}
	}
	out.Subscribers = nonNil(out.Subscribers)
	return out
}

// Summary list / upload entry
func Summary(d *videodomain.VideoDetails) VideoSummary {
	name, id, subs := channelFields(d.Channel)
	return VideoSummary{
		VideoID:          d.Video.ID.Hex(),
		Title:            d.Video.Title,
		Description:      d.Video.Description,
		URL:              d.Video.URL,
		ThumbnailURL:     d.Video.ThumbnailURL,
		ChannelName:      name,
		ChannelID:        id,
		SubscribersCount: subs,
		Likes:            len(d.Video.Likes),
		Dislikes:         len(d.Video.Dislikes),
		Comments:         comments(d.Video.Comments),
	}
}

// Summaries list payload, never nil
func Summaries(list []videodomain.VideoDetails) []VideoSummary {
	out := make([]VideoSummary, 0, len(list))
	for i := range list {
		out = append(out, Summary(&list[i]))
	}
	return out
}

// Video get video by id, comment authors resolved through d.CommentAuthors
func Video(d *videodomain.VideoDetails) VideoView {
	name, id, subs := channelFields(d.Channel)

	cs := make([]CommentView, 0, len(d.Video.Comments))
	for _, c := range d.Video.Comments {
		cv := CommentView{ID: c.ID.Hex(), Text: c.Text}
		if author, ok := d.CommentAuthors[c.User]; ok {
			cv.User = &CommentAuthor{ID: c.User, Name: author}
		}
		cs = append(cs, cv)
	}

	return VideoView{
		VideoID:          d.Video.ID.Hex(),
		Title:            d.Video.Title,
		Description:      d.Video.Description,
		URL:              d.Video.URL,
		ChannelName:      name,
		ChannelID:        id,
		SubscribersCount: subs,
		Likes:            len(d.Video.Likes),
		Dislikes:         len(d.Video.Dislikes),
		Comments:         cs,
	}
}

// UpdatedVideo update payload
func UpdatedVideo(d *videodomain.VideoDetails) UpdatedVideoView {
	s := Summary(d)
	return UpdatedVideoView{
		Title:            s.Title,
		Description:      s.Description,
		URL:              s.URL,
		ThumbnailURL:     s.ThumbnailURL,
		ChannelName:      s.ChannelName,
		ChannelID:        s.ChannelID,
		SubscribersCount: s.SubscribersCount,
		Likes:            s.Likes,
		Dislikes:         s.Dislikes,
		Comments:         s.Comments,
	}
}

func channelFields(ref *videodomain.ChannelRef) (string, *string, int) {
	if ref == nil {
		return UnknownChannel, nil, 0
	}
	id := ref.ID.Hex()
	return ref.Name, &id, ref.SubscribersCount
}

func comments(cs []videodomain.Comment) []videodomain.Comment {
	if cs == nil {
		return []videodomain.Comment{}
	}
	return cs
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
