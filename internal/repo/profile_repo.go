package repo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"gopkg.in/DataDog/dd-trace-go.v1/ddtrace/tracer"

	"github.com/haseebk/dev-net/internal/domain"
)

func (s *Store) FindProfileByOwner(ctx context.Context, owner primitive.ObjectID) (*domain.Profile, error) {
	var p domain.Profile
	err := s.colProfiles.FindOne(ctx, bson.M{"user_id": owner}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// UpsertProfile applies patch as a $set on the owner's profile, creating the
// document (with empty embedded lists) when none exists. Returns the stored
// profile after the update.
func (s *Store) UpsertProfile(ctx context.Context, owner primitive.ObjectID, patch domain.ProfilePatch) (*domain.Profile, error) {
	sp, ctx := tracer.StartSpanFromContext(ctx, "mongo.profile.upsert",
		tracer.Tag("user_id", owner.Hex()),
	)
	defer sp.Finish()

	now := time.Now().UTC()
	set := bson.M{"updated_at": now}
	for k, v := range patch {
		set[k] = v
	}

	res := s.colProfiles.FindOneAndUpdate(
		ctx,
		bson.M{"user_id": owner},
		bson.M{
			"$set": set,
			"$setOnInsert": bson.M{
				"user_id":    owner,
				"experience": []domain.Experience{},
				"education":  []domain.Education{},
				"created_at": now,
			},
		},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	)
	var p domain.Profile
	if err := res.Decode(&p); err != nil {
		sp.SetTag("error", err)
		return nil, err
	}
	return &p, nil
}

// SaveProfile replaces the whole document; used for embedded-list mutations.
// Concurrent writers are last-writer-wins, there is no cross-operation locking.
func (s *Store) SaveProfile(ctx context.Context, p *domain.Profile) error {
	sp, ctx := tracer.StartSpanFromContext(ctx, "mongo.profile.save",
		tracer.Tag("user_id", p.UserID.Hex()),
	)
	defer sp.Finish()

	p.UpdatedAt = time.Now().UTC()
	_, err := s.colProfiles.ReplaceOne(ctx, bson.M{"user_id": p.UserID}, p)
	if err != nil {
		sp.SetTag("error", err)
	}
	return err
}

func (s *Store) ListProfiles(ctx context.Context) ([]domain.Profile, error) {
	cur, err := s.colProfiles.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var out []domain.Profile
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) RemoveProfile(ctx context.Context, owner primitive.ObjectID) error {
	sp, ctx := tracer.StartSpanFromContext(ctx, "mongo.profile.remove",
		tracer.Tag("user_id", owner.Hex()),
	)
	defer sp.Finish()

	_, err := s.colProfiles.DeleteOne(ctx, bson.M{"user_id": owner})
	if err != nil {
		sp.SetTag("error", err)
	}
	return err
}
