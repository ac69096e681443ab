package app

import (
	"context"

	"video_sharing_service/internal/channel/domain"
	videodomain "video_sharing_service/internal/video/domain"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockChannelRepository Mock ChannelRepository
type MockChannelRepository struct {
	mock.Mock
}

func (m *MockChannelRepository) Create(ctx context.Context, ch *domain.Channel) error {
	return m.Called(ctx, ch).Error(0)
}

func (m *MockChannelRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Channel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Channel), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockChannelRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.Channel, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) != nil {
		return args.Get(0).([]domain.Channel), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockChannelRepository) FindLatestByOwner(ctx context.Context, owner string) (*domain.Channel, error) {
	args := m.Called(ctx, owner)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Channel), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockChannelRepository) AddSubscriber(ctx context.Context, id primitive.ObjectID, userID string) error {
	return m.Called(ctx, id, userID).Error(0)
}

func (m *MockChannelRepository) RemoveSubscriber(ctx context.Context, id primitive.ObjectID, userID string) error {
	return m.Called(ctx, id, userID).Error(0)
}

func (m *MockChannelRepository) AddVideo(ctx context.Context, id, videoID primitive.ObjectID) error {
	return m.Called(ctx, id, videoID).Error(0)
}

func (m *MockChannelRepository) RemoveVideo(ctx context.Context, id, videoID primitive.ObjectID) error {
	return m.Called(ctx, id, videoID).Error(0)
}

func (m *MockChannelRepository) EnsureIndexes(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// MockVideoLookup Mock VideoLookup
type MockVideoLookup struct {
	mock.Mock
}

func (m *MockVideoLookup) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]videodomain.Video, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) != nil {
		return args.Get(0).([]videodomain.Video), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockDirectory Mock user Directory
type MockDirectory struct {
	mock.Mock
}

func (m *MockDirectory) DisplayNames(ctx context.Context, ids []string) (map[string]string, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) != nil {
		return args.Get(0).(map[string]string), args.Error(1)
	}
	return nil, args.Error(1)
}
