package app

import (
	"context"
	"io"

	"video_sharing_service/internal/video/domain"
	"video_sharing_service/pkg/database"

	"github.com/streadway/amqp"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockVideoRepository Mock VideoRepository
type MockVideoRepository struct {
	mock.Mock
}

func (m *MockVideoRepository) Create(ctx context.Context, v *domain.Video) error {
	return m.Called(ctx, v).Error(0)
}

func (m *MockVideoRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Video, error) {
	args := m.Called(ctx, id)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Video), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockVideoRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.Video, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) != nil {
		return args.Get(0).([]domain.Video), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockVideoRepository) FindAll(ctx context.Context) ([]domain.Video, error) {
	args := m.Called(ctx)
	if args.Get(0) != nil {
		return args.Get(0).([]domain.Video), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockVideoRepository) Update(ctx context.Context, id primitive.ObjectID, patch domain.VideoPatch) (*domain.Video, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Video), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockVideoRepository) Delete(ctx context.Context, id primitive.ObjectID) (*domain.Video, error) {
	args := m.Called(ctx, id)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Video), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockVideoRepository) AddReaction(ctx context.Context, id primitive.ObjectID, kind domain.ReactionKind, userID string) error {
	return m.Called(ctx, id, kind, userID).Error(0)
}

func (m *MockVideoRepository) AppendComment(ctx context.Context, id primitive.ObjectID, c domain.Comment) error {
	return m.Called(ctx, id, c).Error(0)
}

// MockMinIOClient Mock MinIOClientRepo
type MockMinIOClient struct {
	mock.Mock
}

func (m *MockMinIOClient) UploadObject(ctx context.Context, objectName string, r io.Reader, size int64, contentType string) (database.MediaObject, error) {
	args := m.Called(ctx, objectName, r, size, contentType)
	return args.Get(0).(database.MediaObject), args.Error(1)
}

func (m *MockMinIOClient) RemoveObject(ctx context.Context, objectName string) error {
	return m.Called(ctx, objectName).Error(0)
}

func (m *MockMinIOClient) ObjectURL(objectName string) string {
	return m.Called(objectName).String(0)
}

func (m *MockMinIOClient) KeyFromURL(rawURL string) string {
	return m.Called(rawURL).String(0)
}

// MockChannelDirectory Mock ChannelDirectory
type MockChannelDirectory struct {
	mock.Mock
}

func (m *MockChannelDirectory) OwnedChannel(ctx context.Context, ownerID string) (*domain.ChannelRef, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.ChannelRef), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockChannelDirectory) ChannelRefs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]domain.ChannelRef, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) != nil {
		return args.Get(0).(map[primitive.ObjectID]domain.ChannelRef), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockChannelDirectory) AttachVideo(ctx context.Context, channelID, videoID primitive.ObjectID) error {
	return m.Called(ctx, channelID, videoID).Error(0)
}

func (m *MockChannelDirectory) DetachVideo(ctx context.Context, channelID, videoID primitive.ObjectID) {
	m.Called(ctx, channelID, videoID)
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

// MockEventPublisher Mock EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, event domain.VideoEvent) error {
	return m.Called(ctx, event).Error(0)
}

// MockRabbitRepo 是 RabbitMQ 的 Mock
type MockRabbitRepo struct {
	mock.Mock
}

func (m *MockRabbitRepo) GetRabbit() *amqp.Channel {
	args := m.Called()
	return args.Get(0).(*amqp.Channel)
}

func (m *MockRabbitRepo) DeclareQueue(name string) error {
	return m.Called(name).Error(0)
}

func (m *MockRabbitRepo) Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	return m.Called(exchange, key, mandatory, immediate, msg).Error(0)
}
