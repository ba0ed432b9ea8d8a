package repo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RemovePostsByOwner deletes every post owned by the user. Used as the first
// step of the account-delete cascade.
func (s *Store) RemovePostsByOwner(ctx context.Context, owner primitive.ObjectID) error {
	_, err := s.colPosts.DeleteMany(ctx, bson.M{"user_id": owner})
	return err
}
