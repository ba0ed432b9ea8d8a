package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/haseebk/dev-net/internal/domain"
)

// Store interfaces are satisfied by *repo.Store; finders return (nil, nil) when
// no document matches.

type ProfileStore interface {
	FindProfileByOwner(ctx context.Context, owner primitive.ObjectID) (*domain.Profile, error)
	UpsertProfile(ctx context.Context, owner primitive.ObjectID, patch domain.ProfilePatch) (*domain.Profile, error)
	SaveProfile(ctx context.Context, p *domain.Profile) error
	ListProfiles(ctx context.Context) ([]domain.Profile, error)
	RemoveProfile(ctx context.Context, owner primitive.ObjectID) error
}

type UserStore interface {
	CreateUser(ctx context.Context, u *domain.User) error
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	FindUserByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	FindUsersByID(ctx context.Context, ids []primitive.ObjectID) ([]domain.User, error)
	RemoveUser(ctx context.Context, id primitive.ObjectID) error
}

type PostStore interface {
	RemovePostsByOwner(ctx context.Context, owner primitive.ObjectID) error
}
