package queue

import "go.mongodb.org/mongo-driver/bson/primitive"

const Exchange = "devnet.events"

type UserRegistered struct {
	UserID primitive.ObjectID `json:"user_id"`
	Email  string             `json:"email"`
	Name   string             `json:"name"`
}

type UserLoggedIn struct {
	UserID primitive.ObjectID `json:"user_id"`
	Email  string             `json:"email"`
}

type ProfileUpdated struct {
	UserID primitive.ObjectID `json:"user_id"`
}

type AccountDeleted struct {
	UserID primitive.ObjectID `json:"user_id"`
}
