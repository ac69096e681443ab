package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// CollectionName users collection owned by the identity service
const CollectionName = "users"

// User identity reference, only id and display name are read
type User struct {
	ID   interface{} `bson:"_id"`
	Name string      `bson:"name"`
}

// IDString normalize _id (ObjectID or string) into the opaque user id
func (u User) IDString() string {
	switch id := u.ID.(type) {
	case primitive.ObjectID:
		return id.Hex()
	case string:
		return id
	default:
		return ""
	}
}
