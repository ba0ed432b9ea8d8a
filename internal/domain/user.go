package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name"          json:"name"`
	Email        string             `bson:"email"         json:"email"`
	PasswordHash string             `bson:"password_hash" json:"-"`
	Avatar       string             `bson:"avatar"        json:"avatar"` // gravatar URL
	CreatedAt    time.Time          `bson:"created_at"    json:"created_at"`
}
