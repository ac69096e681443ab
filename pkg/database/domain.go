package database

import (
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

// Connection definition generic connect-string setting
type Connection struct {
	ConnectStr string

	RetryCount    int
	RetryInterval time.Duration
}

// MongoDB definition mongo db
type MongoDB struct {
	Client   *mongo.Client
	Database *mongo.Database
}

// MinIOConnection definition minio
type MinIOConnection struct {
	Endpoint      string
	User          string
	Password      string
	BucketName    string
	UseSSL        bool
	PublicBaseURL string

	RetryCount    int
	RetryInterval time.Duration
}

// RedisConnection definition redis, Sentinels take precedence over Addr
type RedisConnection struct {
	Addr       string
	Password   string
	DB         int
	MasterName string
	Sentinels  []string
}

// MediaObject result of a media upload
type MediaObject struct {
	Key string
	URL string
}
