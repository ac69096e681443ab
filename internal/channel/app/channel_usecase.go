package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"video_sharing_service/internal/channel/domain"
	"video_sharing_service/internal/channel/repository"
	userrepo "video_sharing_service/internal/user/repository"
	videodomain "video_sharing_service/internal/video/domain"
	errprocess "video_sharing_service/pkg/err"
	"video_sharing_service/pkg/logger"
	"video_sharing_service/pkg/metrics"
	"video_sharing_service/pkg/validate"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// user facing messages
const (
	MsgChannelNotFound   = "Channel not found"
	MsgNoOwnChannel      = "You don't have a channel. Create a channel first."
	MsgAlreadySubscribed = "Already subscribed to this channel"
	MsgNotSubscribed     = "Not subscribed to this channel"
	MsgInvalidChannelID  = "Invalid channelId"
	MsgUnauthorized      = "Unauthorized"
)

// VideoLookup video documents referenced by a channel
type VideoLookup interface {
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]videodomain.Video, error)
}

// ChannelUseCase channel lifecycle and subscriptions
type ChannelUseCase struct {
	channelRepo repository.ChannelRepository
	videos      VideoLookup
	users       userrepo.Directory
	metrics     *metrics.Metrics
}

// NewChannelUseCase init channel use case
func NewChannelUseCase(r repository.ChannelRepository, v VideoLookup, u userrepo.Directory, m *metrics.Metrics) *ChannelUseCase {
	return &ChannelUseCase{
		channelRepo: r,
		videos:      v,
		users:       u,
		metrics:     m,
	}
}

// Create channel owned by callerID, owners may hold any number of channels
func (uc *ChannelUseCase) Create(ctx context.Context, callerID string, req domain.CreateChannelReq) (*domain.Channel, error) {
	if callerID == "" {
		return nil, errprocess.New(errprocess.KindUnauthorized, MsgUnauthorized)
	}
	if err := validate.Struct(req); err != nil {
		return nil, err
	}

	ch := &domain.Channel{
		ID:          primitive.NewObjectID(),
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		Owner:       callerID,
		Videos:      []primitive.ObjectID{},
		Subscribers: []string{},
		CreatedAt:   time.Now().Unix(),
	}
	if err := uc.channelRepo.Create(ctx, ch); err != nil {
		return nil, internal(fmt.Sprintf("owner[%s] 建立頻道失敗", callerID), err)
	}
	return ch, nil
}

// GetByID channel with videos and subscriber names
func (uc *ChannelUseCase) GetByID(ctx context.Context, channelID string) (*domain.ChannelDetails, error) {
	id, err := parseChannelID(channelID)
	if err != nil {
		return nil, err
	}

	ch, err := uc.channelRepo.FindByID(ctx, id)
	if err != nil {
		return nil, uc.translate(err, channelID)
	}
	return uc.details(ctx, ch)
}

// GetByOwner the caller's most recent channel
func (uc *ChannelUseCase) GetByOwner(ctx context.Context, callerID string) (*domain.ChannelDetails, error) {
	ch, err := uc.channelRepo.FindLatestByOwner(ctx, callerID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, errprocess.New(errprocess.KindNotFound, MsgNoOwnChannel)
	}
	if err != nil {
		return nil, internal(fmt.Sprintf("owner[%s] 查詢頻道失敗", callerID), err)
	}
	return uc.details(ctx, ch)
}

// Subscribe add callerID to the subscriber set
func (uc *ChannelUseCase) Subscribe(ctx context.Context, channelID, callerID string) error {
	id, err := parseChannelID(channelID)
	if err != nil {
		return err
	}
	if err := uc.channelRepo.AddSubscriber(ctx, id, callerID); err != nil {
		return uc.translate(err, channelID)
	}
	uc.metrics.Subscription("subscribe")
	return nil
}

// Unsubscribe remove callerID from the subscriber set
func (uc *ChannelUseCase) Unsubscribe(ctx context.Context, channelID, callerID string) error {
	id, err := parseChannelID(channelID)
	if err != nil {
		return err
	}
	if err := uc.channelRepo.RemoveSubscriber(ctx, id, callerID); err != nil {
		return uc.translate(err, channelID)
	}
	uc.metrics.Subscription("unsubscribe")
	return nil
}

// IsSubscribed membership check, caller must be resolved
func (uc *ChannelUseCase) IsSubscribed(ctx context.Context, channelID, callerID string) (bool, error) {
	if callerID == "" {
		return false, errprocess.New(errprocess.KindUnauthorized, MsgUnauthorized)
	}
	id, err := parseChannelID(channelID)
	if err != nil {
		return false, err
	}

	ch, err := uc.channelRepo.FindByID(ctx, id)
	if err != nil {
		return false, uc.translate(err, channelID)
	}
	return ch.IsSubscribed(callerID), nil
}

// OwnedChannel the channel uploads from ownerID go to, nil when the owner has none
func (uc *ChannelUseCase) OwnedChannel(ctx context.Context, ownerID string) (*videodomain.ChannelRef, error) {
	ch, err := uc.channelRepo.FindLatestByOwner(ctx, ownerID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	ref := ch.Ref()
	return &ref, nil
}

// ChannelRefs resolve channel ids, unresolved ids are absent from the map
func (uc *ChannelUseCase) ChannelRefs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]videodomain.ChannelRef, error) {
	channels, err := uc.channelRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	refs := make(map[primitive.ObjectID]videodomain.ChannelRef, len(channels))
	for i := range channels {
		refs[channels[i].ID] = channels[i].Ref()
	}
	return refs, nil
}

// AttachVideo append videoID to the channel's videos
func (uc *ChannelUseCase) AttachVideo(ctx context.Context, channelID, videoID primitive.ObjectID) error {
	return uc.channelRepo.AddVideo(ctx, channelID, videoID)
}

// DetachVideo remove videoID from the channel's videos, never fails the caller
func (uc *ChannelUseCase) DetachVideo(ctx context.Context, channelID, videoID primitive.ObjectID) {
	if err := uc.channelRepo.RemoveVideo(ctx, channelID, videoID); err != nil {
		logger.Log.Warn("detach video failed",
			zap.String("channel", channelID.Hex()),
			zap.String("video", videoID.Hex()),
			zap.Error(err))
	}
}

// details resolve videos in channel order and subscriber names in subscriber order
func (uc *ChannelUseCase) details(ctx context.Context, ch *domain.Channel) (*domain.ChannelDetails, error) {
	videos, err := uc.videos.FindByIDs(ctx, ch.Videos)
	if err != nil {
		return nil, internal(fmt.Sprintf("channel[%s] 查詢影片失敗", ch.ID.Hex()), err)
	}
	byID := make(map[primitive.ObjectID]videodomain.Video, len(videos))
	for _, v := range videos {
		byID[v.ID] = v
	}
	ordered := make([]videodomain.Video, 0, len(ch.Videos))
	for _, id := range ch.Videos {
		if v, ok := byID[id]; ok {
			ordered = append(ordered, v)
		}
	}

	names, err := uc.users.DisplayNames(ctx, ch.Subscribers)
	if err != nil {
		return nil, internal(fmt.Sprintf("channel[%s] 查詢訂閱者失敗", ch.ID.Hex()), err)
	}
	subscriberNames := make([]string, 0, len(ch.Subscribers))
	for _, id := range ch.Subscribers {
		if name, ok := names[id]; ok {
			subscriberNames = append(subscriberNames, name)
		}
	}

	return &domain.ChannelDetails{
		Channel:         *ch,
		Videos:          ordered,
		SubscriberNames: subscriberNames,
	}, nil
}

func (uc *ChannelUseCase) translate(err error, channelID string) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return errprocess.New(errprocess.KindNotFound, MsgChannelNotFound)
	case errors.Is(err, repository.ErrAlreadySubscribed):
		return errprocess.New(errprocess.KindConflict, MsgAlreadySubscribed)
	case errors.Is(err, repository.ErrNotSubscribed):
		return errprocess.New(errprocess.KindConflict, MsgNotSubscribed)
	default:
		return internal(fmt.Sprintf("channel[%s] 存取失敗", channelID), err)
	}
}

func parseChannelID(channelID string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(channelID)
	if err != nil {
		return primitive.NilObjectID, errprocess.New(errprocess.KindBadRequest, MsgInvalidChannelID)
	}
	return id, nil
}

func internal(msg string, err error) error {
	logger.Log.Error(msg, zap.Error(err))
	return errprocess.Wrap(errprocess.KindInternal, msg, err)
}
