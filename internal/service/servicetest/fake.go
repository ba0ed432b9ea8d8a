// Package servicetest provides an in-memory store used by service and handler
// tests in place of MongoDB.
package servicetest

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/haseebk/dev-net/internal/domain"
	"github.com/haseebk/dev-net/internal/repo"
)

type FakeStore struct {
	mu       sync.Mutex
	Users    map[primitive.ObjectID]domain.User
	Profiles map[primitive.ObjectID]domain.Profile // keyed by owner user id
	Posts    map[primitive.ObjectID]int            // owner -> post count

	// FailOn makes the named operation return an error, for failure-path tests.
	FailOn map[string]error
}

func New() *FakeStore {
	return &FakeStore{
		Users:    map[primitive.ObjectID]domain.User{},
		Profiles: map[primitive.ObjectID]domain.Profile{},
		Posts:    map[primitive.ObjectID]int{},
		FailOn:   map[string]error{},
	}
}

func (f *FakeStore) fail(op string) error { return f.FailOn[op] }

func (f *FakeStore) CreateUser(_ context.Context, u *domain.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fail("CreateUser"); err != nil {
		return err
	}
	for _, ex := range f.Users {
		if ex.Email == u.Email {
			return repo.ErrEmailExists
		}
	}
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	u.CreatedAt = time.Now().UTC()
	f.Users[u.ID] = *u
	return nil
}

func (f *FakeStore) FindUserByEmail(_ context.Context, email string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fail("FindUserByEmail"); err != nil {
		return nil, err
	}
	for _, u := range f.Users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (f *FakeStore) FindUserByID(_ context.Context, id primitive.ObjectID) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.Users[id]; ok {
		return &u, nil
	}
	return nil, nil
}

func (f *FakeStore) FindUsersByID(_ context.Context, ids []primitive.ObjectID) ([]domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.User
	for _, id := range ids {
		if u, ok := f.Users[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *FakeStore) RemoveUser(_ context.Context, id primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fail("RemoveUser"); err != nil {
		return err
	}
	delete(f.Users, id)
	return nil
}

func (f *FakeStore) FindProfileByOwner(_ context.Context, owner primitive.ObjectID) (*domain.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fail("FindProfileByOwner"); err != nil {
		return nil, err
	}
	if p, ok := f.Profiles[owner]; ok {
		p := clone(p)
		return &p, nil
	}
	return nil, nil
}

func (f *FakeStore) UpsertProfile(_ context.Context, owner primitive.ObjectID, patch domain.ProfilePatch) (*domain.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fail("UpsertProfile"); err != nil {
		return nil, err
	}
	p, ok := f.Profiles[owner]
	if !ok {
		p = domain.Profile{
			ID:         primitive.NewObjectID(),
			UserID:     owner,
			Experience: []domain.Experience{},
			Education:  []domain.Education{},
			CreatedAt:  time.Now().UTC(),
		}
	}
	applyPatch(&p, patch)
	p.UpdatedAt = time.Now().UTC()
	f.Profiles[owner] = p
	p = clone(p)
	return &p, nil
}

func (f *FakeStore) SaveProfile(_ context.Context, p *domain.Profile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fail("SaveProfile"); err != nil {
		return err
	}
	p.UpdatedAt = time.Now().UTC()
	f.Profiles[p.UserID] = clone(*p)
	return nil
}

func (f *FakeStore) ListProfiles(_ context.Context) ([]domain.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.Profile, 0, len(f.Profiles))
	for _, p := range f.Profiles {
		out = append(out, clone(p))
	}
	return out, nil
}

func (f *FakeStore) RemoveProfile(_ context.Context, owner primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fail("RemoveProfile"); err != nil {
		return err
	}
	delete(f.Profiles, owner)
	return nil
}

func (f *FakeStore) RemovePostsByOwner(_ context.Context, owner primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fail("RemovePostsByOwner"); err != nil {
		return err
	}
	delete(f.Posts, owner)
	return nil
}

// applyPatch mirrors the $set semantics of the mongo repo, including dotted
// social keys.
func applyPatch(p *domain.Profile, patch domain.ProfilePatch) {
	for k, v := range patch {
		switch k {
		case "company":
			p.Company = v.(string)
		case "website":
			p.Website = v.(string)
		case "location":
			p.Location = v.(string)
		case "status":
			p.Status = v.(string)
		case "bio":
			p.Bio = v.(string)
		case "github":
			p.Github = v.(string)
		case "skills":
			p.Skills = append([]string(nil), v.([]string)...)
		case "social.youtube":
			p.Social.Youtube = v.(string)
		case "social.twitter":
			p.Social.Twitter = v.(string)
		case "social.instagram":
			p.Social.Instagram = v.(string)
		case "social.linkedin":
			p.Social.Linkedin = v.(string)
		case "social.facebook":
			p.Social.Facebook = v.(string)
		}
	}
}

func clone(p domain.Profile) domain.Profile {
	p.Skills = append([]string(nil), p.Skills...)
	p.Experience = append([]domain.Experience(nil), p.Experience...)
	p.Education = append([]domain.Education(nil), p.Education...)
	return p
}
