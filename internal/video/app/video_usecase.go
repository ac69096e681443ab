package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	userrepo "video_sharing_service/internal/user/repository"
	"video_sharing_service/internal/video/domain"
	"video_sharing_service/internal/video/repository"
	"video_sharing_service/pkg/database"
	errprocess "video_sharing_service/pkg/err"
	"video_sharing_service/pkg/logger"
	"video_sharing_service/pkg/metrics"
	"video_sharing_service/pkg/validate"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// user facing messages
const (
	MsgNeedChannel     = "You need to create a channel first"
	MsgInvalidVideoID  = "Invalid videoId"
	MsgVideoNotFound   = "Video not found"
	MsgAlreadyLiked    = "You have already liked this video"
	MsgAlreadyDisliked = "You have already disliked this video"
	MsgUnknownReaction = "Unknown reaction"
)

// media store key prefixes
const (
	videoPrefix     = "videos"
	thumbnailPrefix = "thumbnails"
)

// ChannelDirectory channel side of the channel / video reference bookkeeping
type ChannelDirectory interface {
	OwnedChannel(ctx context.Context, ownerID string) (*domain.ChannelRef, error)
	ChannelRefs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]domain.ChannelRef, error)
	AttachVideo(ctx context.Context, channelID, videoID primitive.ObjectID) error
	DetachVideo(ctx context.Context, channelID, videoID primitive.ObjectID)
}

// EventPublisher video lifecycle events, nil disables publishing
type EventPublisher interface {
	Publish(ctx context.Context, event domain.VideoEvent) error
}

// VideoUseCase video lifecycle, reactions and comments
type VideoUseCase struct {
	videoRepo repository.VideoRepository
	media     database.MinIOClientRepo
	channels  ChannelDirectory
	users     userrepo.Directory
	events    EventPublisher
	metrics   *metrics.Metrics
}

// NewVideoUseCase init video use case
func NewVideoUseCase(
	r repository.VideoRepository,
	media database.MinIOClientRepo,
	channels ChannelDirectory,
	users userrepo.Directory,
	events EventPublisher,
	m *metrics.Metrics,
) *VideoUseCase {
	return &VideoUseCase{
		videoRepo: r,
		media:     media,
		channels:  channels,
		users:     users,
		events:    events,
		metrics:   m,
	}
}

// Upload store both files, create the video and link it into the caller's channel.
// Partial failures are rolled back so no orphan document or media is left behind.
func (uc *VideoUseCase) Upload(ctx context.Context, callerID string, req domain.UploadVideoReq) (*domain.VideoDetails, error) {
	ref, err := uc.channels.OwnedChannel(ctx, callerID)
	if err != nil {
		return nil, internal(fmt.Sprintf("owner[%s] 查詢頻道失敗", callerID), err)
	}
	if ref == nil {
		return nil, errprocess.New(errprocess.KindPrecondition, MsgNeedChannel)
	}
	if err := validate.Struct(req); err != nil {
		return nil, err
	}

	videoObj, err := uc.store(ctx, videoPrefix, req.Video)
	if err != nil {
		return nil, internal(fmt.Sprintf("owner[%s] 上傳影片失敗", callerID), err)
	}
	thumbObj, err := uc.store(ctx, thumbnailPrefix, req.Thumbnail)
	if err != nil {
		uc.removeMedia(ctx, videoObj.Key)
		return nil, internal(fmt.Sprintf("owner[%s] 上傳縮圖失敗", callerID), err)
	}

	video := &domain.Video{
		ID:           primitive.NewObjectID(),
		Title:        strings.TrimSpace(req.Title),
		Description:  strings.TrimSpace(req.Description),
		URL:          videoObj.URL,
		ThumbnailURL: thumbObj.URL,
		VideoKey:     videoObj.Key,
		ThumbnailKey: thumbObj.Key,
		Channel:      ref.ID,
		Owner:        callerID,
		Likes:        []string{},
		Dislikes:     []string{},
		Comments:     []domain.Comment{},
		CreatedAt:    time.Now().Unix(),
	}
	if err := uc.videoRepo.Create(ctx, video); err != nil {
		uc.removeMedia(ctx, videoObj.Key, thumbObj.Key)
		return nil, internal(fmt.Sprintf("owner[%s] 建立影片失敗", callerID), err)
	}

	if err := uc.channels.AttachVideo(ctx, ref.ID, video.ID); err != nil {
		if _, delErr := uc.videoRepo.Delete(ctx, video.ID); delErr != nil {
			logger.Log.Error("rollback video failed", zap.String("video", video.ID.Hex()), zap.Error(delErr))
		}
		uc.removeMedia(ctx, videoObj.Key, thumbObj.Key)
		return nil, internal(fmt.Sprintf("video[%s] 加入頻道失敗", video.ID.Hex()), err)
	}

	uc.metrics.Upload()
	uc.publish(ctx, domain.EventUploaded, video)

	return &domain.VideoDetails{Video: *video, Channel: ref}, nil
}

// List every video with its channel resolved when possible
func (uc *VideoUseCase) List(ctx context.Context) ([]domain.VideoDetails, error) {
	videos, err := uc.videoRepo.FindAll(ctx)
	if err != nil {
		return nil, internal("查詢影片列表失敗", err)
	}

	seen := make(map[primitive.ObjectID]struct{}, len(videos))
	ids := make([]primitive.ObjectID, 0, len(videos))
	for _, v := range videos {
		if _, ok := seen[v.Channel]; ok {
			continue
		}
		seen[v.Channel] = struct{}{}
		ids = append(ids, v.Channel)
	}
	refs, err := uc.channels.ChannelRefs(ctx, ids)
	if err != nil {
		return nil, internal("查詢頻道失敗", err)
	}

	list := make([]domain.VideoDetails, 0, len(videos))
	for _, v := range videos {
		d := domain.VideoDetails{Video: v}
		if ref, ok := refs[v.Channel]; ok {
			d.Channel = &ref
		}
		list = append(list, d)
	}
	return list, nil
}

// GetByID video with channel and comment authors resolved
func (uc *VideoUseCase) GetByID(ctx context.Context, videoID string) (*domain.VideoDetails, error) {
	id, err := parseVideoID(videoID)
	if err != nil {
		return nil, err
	}

	video, err := uc.videoRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err, videoID)
	}

	d, err := uc.withChannel(ctx, video)
	if err != nil {
		return nil, err
	}

	authors, err := uc.users.DisplayNames(ctx, video.CommentUsers())
	if err != nil {
		return nil, internal(fmt.Sprintf("video[%s] 查詢留言者失敗", videoID), err)
	}
	d.CommentAuthors = authors
	return d, nil
}

// Update replace the fields present in req. Old media of a replaced kind is
// deleted before the new file is uploaded.
func (uc *VideoUseCase) Update(ctx context.Context, videoID string, req domain.UpdateVideoReq) (*domain.VideoDetails, error) {
	id, err := parseVideoID(videoID)
	if err != nil {
		return nil, err
	}

	existing, err := uc.videoRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err, videoID)
	}

	if req.Video != nil {
		if err := uc.deleteMedia(ctx, existing.VideoKey, existing.URL); err != nil {
			return nil, internal(fmt.Sprintf("video[%s] 刪除舊影片失敗", videoID), err)
		}
	}
	if req.Thumbnail != nil {
		if err := uc.deleteMedia(ctx, existing.ThumbnailKey, existing.ThumbnailURL); err != nil {
			return nil, internal(fmt.Sprintf("video[%s] 刪除舊縮圖失敗", videoID), err)
		}
	}

	var patch domain.VideoPatch
	if req.Video != nil {
		obj, err := uc.store(ctx, videoPrefix, req.Video)
		if err != nil {
			return nil, internal(fmt.Sprintf("video[%s] 上傳新影片失敗", videoID), err)
		}
		patch.URL, patch.VideoKey = &obj.URL, &obj.Key
	}
	if req.Thumbnail != nil {
		obj, err := uc.store(ctx, thumbnailPrefix, req.Thumbnail)
		if err != nil {
			return nil, internal(fmt.Sprintf("video[%s] 上傳新縮圖失敗", videoID), err)
		}
		patch.ThumbnailURL, patch.ThumbnailKey = &obj.URL, &obj.Key
	}
	if title := strings.TrimSpace(req.Title); title != "" {
		patch.Title = &title
	}
	if description := strings.TrimSpace(req.Description); description != "" {
		patch.Description = &description
	}

	updated := existing
	if !patch.IsEmpty() {
		updated, err = uc.videoRepo.Update(ctx, id, patch)
		if err != nil {
			return nil, translate(err, videoID)
		}
		uc.publish(ctx, domain.EventUpdated, updated)
	}
	return uc.withChannel(ctx, updated)
}

// Delete remove the video, then detach it from its channel and drop its media.
// Follow-up failures are logged only.
func (uc *VideoUseCase) Delete(ctx context.Context, videoID string) error {
	id, err := parseVideoID(videoID)
	if err != nil {
		return err
	}

	deleted, err := uc.videoRepo.Delete(ctx, id)
	if err != nil {
		return translate(err, videoID)
	}

	if !deleted.Channel.IsZero() {
		uc.channels.DetachVideo(ctx, deleted.Channel, deleted.ID)
	}
	for _, m := range [][2]string{{deleted.VideoKey, deleted.URL}, {deleted.ThumbnailKey, deleted.ThumbnailURL}} {
		if err := uc.deleteMedia(ctx, m[0], m[1]); err != nil {
			logger.Log.Warn("remove media of deleted video failed", zap.String("video", videoID), zap.Error(err))
		}
	}

	uc.publish(ctx, domain.EventDeleted, deleted)
	return nil
}

// React add callerID to likes or dislikes, the other set is not touched
func (uc *VideoUseCase) React(ctx context.Context, videoID, callerID string, kind domain.ReactionKind) error {
	if kind.Field() == "" {
		return errprocess.New(errprocess.KindBadRequest, MsgUnknownReaction)
	}
	id, err := parseVideoID(videoID)
	if err != nil {
		return err
	}

	err = uc.videoRepo.AddReaction(ctx, id, kind, callerID)
	if errors.Is(err, repository.ErrAlreadyReacted) {
		if kind == domain.ReactionLike {
			return errprocess.New(errprocess.KindConflict, MsgAlreadyLiked)
		}
		return errprocess.New(errprocess.KindConflict, MsgAlreadyDisliked)
	}
	if err != nil {
		return translate(err, videoID)
	}

	uc.metrics.Reaction(string(kind))
	return nil
}

// Comment append a comment at the end of the video's comment list
func (uc *VideoUseCase) Comment(ctx context.Context, videoID, callerID string, req domain.CommentReq) error {
	id, err := parseVideoID(videoID)
	if err != nil {
		return err
	}
	if err := validate.Struct(req); err != nil {
		return err
	}

	c := domain.Comment{
		ID:        primitive.NewObjectID(),
		User:      callerID,
		Text:      req.Text,
		CreatedAt: time.Now().Unix(),
	}
	if err := uc.videoRepo.AppendComment(ctx, id, c); err != nil {
		return translate(err, videoID)
	}

	uc.metrics.Comment()
	return nil
}

func (uc *VideoUseCase) withChannel(ctx context.Context, video *domain.Video) (*domain.VideoDetails, error) {
	refs, err := uc.channels.ChannelRefs(ctx, []primitive.ObjectID{video.Channel})
	if err != nil {
		return nil, internal(fmt.Sprintf("video[%s] 查詢頻道失敗", video.ID.Hex()), err)
	}

	d := &domain.VideoDetails{Video: *video}
	if ref, ok := refs[video.Channel]; ok {
		d.Channel = &ref
	}
	return d, nil
}

func (uc *VideoUseCase) store(ctx context.Context, prefix string, f *domain.MediaFile) (database.MediaObject, error) {
	key := objectKey(prefix, f.FileName)
	size := f.Size
	if size <= 0 {
		size = -1
	}
	return uc.media.UploadObject(ctx, key, f.Reader, size, f.ContentType)
}

// deleteMedia delete by stored key, falling back to a key derived from the url
func (uc *VideoUseCase) deleteMedia(ctx context.Context, key, url string) error {
	if key == "" && url != "" {
		key = uc.media.KeyFromURL(url)
	}
	if key == "" {
		return nil
	}
	return uc.media.RemoveObject(ctx, key)
}

// removeMedia best effort cleanup
func (uc *VideoUseCase) removeMedia(ctx context.Context, keys ...string) {
	for _, key := range keys {
		if err := uc.media.RemoveObject(ctx, key); err != nil {
			logger.Log.Warn("cleanup media failed", zap.String("key", key), zap.Error(err))
		}
	}
}

func (uc *VideoUseCase) publish(ctx context.Context, t domain.EventType, v *domain.Video) {
	if uc.events == nil {
		return
	}
	event := domain.VideoEvent{
		Type:       t,
		VideoID:    v.ID.Hex(),
		ChannelID:  v.Channel.Hex(),
		Owner:      v.Owner,
		Title:      v.Title,
		VideoKey:   v.VideoKey,
		OccurredAt: time.Now().Unix(),
	}
	if err := uc.events.Publish(ctx, event); err != nil {
		logger.Log.Warn("publish video event failed", zap.String("type", string(t)), zap.String("video", event.VideoID), zap.Error(err))
	}
}

func objectKey(prefix, fileName string) string {
	return prefix + "/" + uuid.NewString() + strings.ToLower(filepath.Ext(fileName))
}

func parseVideoID(videoID string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(videoID)
	if err != nil {
		return primitive.NilObjectID, errprocess.New(errprocess.KindBadRequest, MsgInvalidVideoID)
	}
	return id, nil
}

func translate(err error, videoID string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return errprocess.New(errprocess.KindNotFound, MsgVideoNotFound)
	}
	return internal(fmt.Sprintf("video[%s] 存取失敗", videoID), err)
}

func internal(msg string, err error) error {
	logger.Log.Error(msg, zap.Error(err))
	return errprocess.Wrap(errprocess.KindInternal, msg, err)
}
