package handlers

import (
	"context"

	channeldomain "video_sharing_service/internal/channel/domain"
	videodomain "video_sharing_service/internal/video/domain"

	"github.com/stretchr/testify/mock"
)

// MockChannelService Mock ChannelService
type MockChannelService struct {
	mock.Mock
}

func (m *MockChannelService) Create(ctx context.Context, callerID string, req channeldomain.CreateChannelReq) (*channeldomain.Channel, error) {
	args := m.Called(ctx, callerID, req)
	if args.Get(0) != nil {
		return args.Get(0).(*channeldomain.Channel), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockChannelService) GetByID(ctx context.Context, channelID string) (*channeldomain.ChannelDetails, error) {
	args := m.Called(ctx, channelID)
	if args.Get(0) != nil {
		return args.Get(0).(*channeldomain.ChannelDetails), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockChannelService) GetByOwner(ctx context.Context, callerID string) (*channeldomain.ChannelDetails, error) {
	args := m.Called(ctx, callerID)
	if args.Get(0) != nil {
		return args.Get(0).(*channeldomain.ChannelDetails), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockChannelService) Subscribe(ctx context.Context, channelID, callerID string) error {
	return m.Called(ctx, channelID, callerID).Error(0)
}

func (m *MockChannelService) Unsubscribe(ctx context.Context, channelID, callerID string) error {
	return m.Called(ctx, channelID, callerID).Error(0)
}

func (m *MockChannelService) IsSubscribed(ctx context.Context, channelID, callerID string) (bool, error) {
	args := m.Called(ctx, channelID, callerID)
	return args.Bool(0), args.Error(1)
}

// MockVideoService Mock VideoService
type MockVideoService struct {
	mock.Mock
}

func (m *MockVideoService) Upload(ctx context.Context, callerID string, req videodomain.UploadVideoReq) (*videodomain.VideoDetails, error) {
	args := m.Called(ctx, callerID, req)
	if args.Get(0) != nil {
		return args.Get(0).(*videodomain.VideoDetails), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockVideoService) List(ctx context.Context) ([]videodomain.VideoDetails, error) {
	args := m.Called(ctx)
	if args.Get(0) != nil {
		return args.Get(0).([]videodomain.VideoDetails), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockVideoService) GetByID(ctx context.Context, videoID string) (*videodomain.VideoDetails, error) {
	args := m.Called(ctx, videoID)
	if args.Get(0) != nil {
		return args.Get(0).(*videodomain.VideoDetails), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockVideoService) Update(ctx context.Context, videoID string, req videodomain.UpdateVideoReq) (*videodomain.VideoDetails, error) {
	args := m.Called(ctx, videoID, req)
	if args.Get(0) != nil {
		return args.Get(0).(*videodomain.VideoDetails), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockVideoService) Delete(ctx context.Context, videoID string) error {
	return m.Called(ctx, videoID).Error(0)
}

func (m *MockVideoService) React(ctx context.Context, videoID, callerID string, kind videodomain.ReactionKind) error {
	return m.Called(ctx, videoID, callerID, kind).Error(0)
}

func (m *MockVideoService) Comment(ctx context.Context, videoID, callerID string, req videodomain.CommentReq) error {
	return m.Called(ctx, videoID, callerID, req).Error(0)
}
