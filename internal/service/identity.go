package service

import "go.mongodb.org/mongo-driver/bson/primitive"

// Identity is the authorized caller, established from a verified access token.
// Every owner-scoped operation takes it explicitly; client-supplied ids are
// never trusted for mutation targets.
type Identity struct {
	UserID primitive.ObjectID
}
