package router_test

import (
	"context"
	"io"
	"strings"
	"sync"

	channeldomain "video_sharing_service/internal/channel/domain"
	channelrepo "video_sharing_service/internal/channel/repository"
	videodomain "video_sharing_service/internal/video/domain"
	videorepo "video_sharing_service/internal/video/repository"
	"video_sharing_service/pkg"
	"video_sharing_service/pkg/database"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// memChannels in-memory ChannelRepository
type memChannels struct {
	mu   sync.Mutex
	docs map[primitive.ObjectID]*channeldomain.Channel
}

func newMemChannels() *memChannels {
	return &memChannels{docs: map[primitive.ObjectID]*channeldomain.Channel{}}
}

func (r *memChannels) Create(_ context.Context, ch *channeldomain.Channel) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := *ch
	r.docs[c.ID] = &c
	return nil
}

func (r *memChannels) FindByID(_ context.Context, id primitive.ObjectID) (*channeldomain.Channel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.docs[id]
	if !ok {
		return nil, channelrepo.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *memChannels) FindByIDs(_ context.Context, ids []primitive.ObjectID) ([]channeldomain.Channel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []channeldomain.Channel{}
	for _, id := range ids {
		if c, ok := r.docs[id]; ok {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *memChannels) FindLatestByOwner(_ context.Context, owner string) (*channeldomain.Channel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var latest *channeldomain.Channel
	for _, c := range r.docs {
		if c.Owner != owner {
			continue
		}
		if latest == nil || c.CreatedAt > latest.CreatedAt ||
			(c.CreatedAt == latest.CreatedAt && c.ID.Hex() > latest.ID.Hex()) {
			latest = c
		}
	}
	if latest == nil {
		return nil, channelrepo.ErrNotFound
	}
	cp := *latest
	return &cp, nil
}

func (r *memChannels) AddSubscriber(_ context.Context, id primitive.ObjectID, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.docs[id]
	if !ok {
		return channelrepo.ErrNotFound
	}
	if pkg.Contains(c.Subscribers, userID) {
		return channelrepo.ErrAlreadySubscribed
	}
	c.Subscribers = append(c.Subscribers, userID)
	return nil
}

func (r *memChannels) RemoveSubscriber(_ context.Context, id primitive.ObjectID, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.docs[id]
	if !ok {
		return channelrepo.ErrNotFound
	}
	if !pkg.Contains(c.Subscribers, userID) {
		return channelrepo.ErrNotSubscribed
	}
	kept := []string{}
	for _, s := range c.Subscribers {
		if s != userID {
			kept = append(kept, s)
		}
	}
	c.Subscribers = kept
	return nil
}

func (r *memChannels) AddVideo(_ context.Context, id, videoID primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.docs[id]
	if !ok {
		return channelrepo.ErrNotFound
	}
	for _, v := range c.Videos {
		if v == videoID {
			return nil
		}
	}
	c.Videos = append(c.Videos, videoID)
	return nil
}

func (r *memChannels) RemoveVideo(_ context.Context, id, videoID primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.docs[id]
	if !ok {
		return nil
	}
	kept := []primitive.ObjectID{}
	for _, v := range c.Videos {
		if v != videoID {
			kept = append(kept, v)
		}
	}
	c.Videos = kept
	return nil
}

func (r *memChannels) EnsureIndexes(context.Context) error { return nil }

// memVideos in-memory VideoRepository, keeps insertion order for FindAll
type memVideos struct {
	mu    sync.Mutex
	order []primitive.ObjectID
	docs  map[primitive.ObjectID]*videodomain.Video
}

func newMemVideos() *memVideos {
	return &memVideos{docs: map[primitive.ObjectID]*videodomain.Video{}}
}

func (r *memVideos) Create(_ context.Context, v *videodomain.Video) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *v
	r.docs[cp.ID] = &cp
	r.order = append(r.order, cp.ID)
	return nil
}

func (r *memVideos) get(id primitive.ObjectID) (*videodomain.Video, error) {
	v, ok := r.docs[id]
	if !ok {
		return nil, videorepo.ErrNotFound
	}
	return v, nil
}

func (r *memVideos) FindByID(_ context.Context, id primitive.ObjectID) (*videodomain.Video, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, err := r.get(id)
	if err != nil {
		return nil, err
	}
	cp := *v
	return &cp, nil
}

func (r *memVideos) FindByIDs(_ context.Context, ids []primitive.ObjectID) ([]videodomain.Video, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []videodomain.Video{}
	for _, id := range ids {
		if v, ok := r.docs[id]; ok {
			out = append(out, *v)
		}
	}
	return out, nil
}

func (r *memVideos) FindAll(ctx context.Context) ([]videodomain.Video, error) {
	r.mu.Lock()
	ids := append([]primitive.ObjectID(nil), r.order...)
	r.mu.Unlock()
	return r.FindByIDs(ctx, ids)
}

func (r *memVideos) Update(_ context.Context, id primitive.ObjectID, p videodomain.VideoPatch) (*videodomain.Video, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, err := r.get(id)
	if err != nil {
		return nil, err
	}
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&v.Title, p.Title)
	set(&v.Description, p.Description)
	set(&v.URL, p.URL)
	set(&v.ThumbnailURL, p.ThumbnailURL)
	set(&v.VideoKey, p.VideoKey)
	set(&v.ThumbnailKey, p.ThumbnailKey)
	cp := *v
	return &cp, nil
}

func (r *memVideos) Delete(_ context.Context, id primitive.ObjectID) (*videodomain.Video, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, err := r.get(id)
	if err != nil {
		return nil, err
	}
	delete(r.docs, id)
	for i, o := range r.order {
		if o == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return v, nil
}

func (r *memVideos) AddReaction(_ context.Context, id primitive.ObjectID, kind videodomain.ReactionKind, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, err := r.get(id)
	if err != nil {
		return err
	}
	set := &v.Likes
	if kind == videodomain.ReactionDislike {
		set = &v.Dislikes
	}
	if pkg.Contains(*set, userID) {
		return videorepo.ErrAlreadyReacted
	}
	*set = append(*set, userID)
	return nil
}

func (r *memVideos) AppendComment(_ context.Context, id primitive.ObjectID, c videodomain.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, err := r.get(id)
	if err != nil {
		return err
	}
	v.Comments = append(v.Comments, c)
	return nil
}

// memMedia in-memory media store
type memMedia struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func newMemMedia() *memMedia {
	return &memMedia{objects: map[string][]byte{}}
}

func (m *memMedia) UploadObject(_ context.Context, name string, r io.Reader, _ int64, _ string) (database.MediaObject, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return database.MediaObject{}, err
	}
	m.mu.Lock()
	m.objects[name] = data
	m.mu.Unlock()
	return database.MediaObject{Key: name, URL: m.ObjectURL(name)}, nil
}

func (m *memMedia) RemoveObject(_ context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.objects, name)
	return nil
}

func (m *memMedia) ObjectURL(name string) string {
	return "http://media.test/media/" + name
}

func (m *memMedia) KeyFromURL(rawURL string) string {
	return strings.TrimPrefix(rawURL, "http://media.test/media/")
}

func (m *memMedia) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.objects)
}

// memUsers static display names
type memUsers map[string]string

func (u memUsers) DisplayNames(_ context.Context, ids []string) (map[string]string, error) {
	out := map[string]string{}
	for _, id := range ids {
		if name, ok := u[id]; ok {
			out[id] = name
		}
	}
	return out, nil
}
