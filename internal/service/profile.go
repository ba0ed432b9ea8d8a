package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/haseebk/dev-net/internal/domain"
	"github.com/haseebk/dev-net/internal/log"
	"github.com/haseebk/dev-net/internal/queue"
)

// ProfileService owns every profile mutation and query. Owner-scoped operations
// take an Identity and only ever touch that identity's document.
type ProfileService struct {
	profiles ProfileStore
	users    UserStore
	posts    PostStore
	events   queue.Publisher
	log      *zap.Logger
}

func NewProfileService(profiles ProfileStore, users UserStore, posts PostStore, events queue.Publisher, log *zap.Logger) *ProfileService {
	return &ProfileService{profiles: profiles, users: users, posts: posts, events: events, log: log}
}

func (s *ProfileService) OwnProfile(ctx context.Context, id Identity) (*domain.Profile, error) {
	p, err := s.profiles.FindProfileByOwner(ctx, id.UserID)
	if err != nil {
		log.WithDD(ctx, s.log).Error("find own profile", zap.String("user_id", id.UserID.Hex()), zap.Error(err))
		return nil, ErrInternal
	}
	if p == nil {
		return nil, ErrProfileNotFound
	}
	return p, nil
}

// Upsert merges the present fields of in into the caller's profile, creating it
// when absent. Repeating the same input yields the same stored state.
func (s *ProfileService) Upsert(ctx context.Context, id Identity, in ProfileInput, reqID string) (*domain.Profile, error) {
	patch := domain.ProfilePatch{}
	setStr := func(key string, v *string) {
		if v != nil {
			patch[key] = trim(*v)
		}
	}
	setStr("company", in.Company)
	setStr("location", in.Location)
	setStr("status", in.Status)
	setStr("bio", in.Bio)
	setStr("github", in.Github)
	if in.Website != nil {
		patch["website"] = normalizeURL(*in.Website)
	}
	if in.Skills != nil {
		patch["skills"] = []string(*in.Skills)
	}
	// dotted keys merge into the social sub-document without clobbering
	// platforms that were not supplied
	setSocial := func(key string, v *string) {
		if v != nil {
			patch["social."+key] = normalizeURL(*v)
		}
	}
	setSocial("youtube", in.Youtube)
	setSocial("twitter", in.Twitter)
	setSocial("instagram", in.Instagram)
	setSocial("linkedin", in.Linkedin)
	setSocial("facebook", in.Facebook)

	p, err := s.profiles.UpsertProfile(ctx, id.UserID, patch)
	if err != nil {
		log.WithDD(ctx, s.log).Error("upsert profile", zap.String("user_id", id.UserID.Hex()), zap.Error(err))
		return nil, ErrInternal
	}

	if err := s.events.Publish(ctx, queue.Exchange, "profile.updated",
		queue.ProfileUpdated{UserID: id.UserID}, reqID); err != nil {
		s.log.Warn("publish profile.updated", zap.Error(err))
	}
	return p, nil
}

// List returns every profile joined with its owner's display fields. Read-only.
func (s *ProfileService) List(ctx context.Context) ([]domain.ProfileWithOwner, error) {
	profiles, err := s.profiles.ListProfiles(ctx)
	if err != nil {
		log.WithDD(ctx, s.log).Error("list profiles", zap.Error(err))
		return nil, ErrInternal
	}
	ids := make([]primitive.ObjectID, 0, len(profiles))
	for _, p := range profiles {
		ids = append(ids, p.UserID)
	}
	owners := map[primitive.ObjectID]domain.User{}
	if len(ids) > 0 {
		users, err := s.users.FindUsersByID(ctx, ids)
		if err != nil {
			log.WithDD(ctx, s.log).Error("join profile owners", zap.Error(err))
			return nil, ErrInternal
		}
		for _, u := range users {
			owners[u.ID] = u
		}
	}
	out := make([]domain.ProfileWithOwner, 0, len(profiles))
	for _, p := range profiles {
		u := owners[p.UserID]
		out = append(out, domain.ProfileWithOwner{
			Profile: p,
			Owner:   domain.Owner{ID: p.UserID, Name: u.Name, Avatar: u.Avatar},
		})
	}
	return out, nil
}

// ByOwner looks a profile up by its owner's id. A syntactically bad id is
// reported as ErrInvalidID, distinct from a missing profile.
func (s *ProfileService) ByOwner(ctx context.Context, rawID string) (*domain.ProfileWithOwner, error) {
	owner, err := primitive.ObjectIDFromHex(rawID)
	if err != nil {
		return nil, ErrInvalidID
	}
	p, err := s.profiles.FindProfileByOwner(ctx, owner)
	if err != nil {
		log.WithDD(ctx, s.log).Error("find profile by owner", zap.String("user_id", rawID), zap.Error(err))
		return nil, ErrInternal
	}
	if p == nil {
		return nil, ErrProfileNotFound
	}
	res := &domain.ProfileWithOwner{Profile: *p, Owner: domain.Owner{ID: owner}}
	if u, err := s.users.FindUserByID(ctx, owner); err == nil && u != nil {
		res.Owner.Name = u.Name
		res.Owner.Avatar = u.Avatar
	}
	return res, nil
}

// DeleteAccount removes the caller's posts, profile and user document in that
// order. The steps are not transactional: a later failure leaves earlier
// removals in place, so each step is idempotent and the failing step is
// logged. Deleting an already-deleted account succeeds.
func (s *ProfileService) DeleteAccount(ctx context.Context, id Identity, reqID string) error {
	l := s.log.With(zap.String("user_id", id.UserID.Hex()))
	if err := s.posts.RemovePostsByOwner(ctx, id.UserID); err != nil {
		l.Error("delete account: remove posts", zap.Error(err))
		return ErrInternal
	}
	if err := s.profiles.RemoveProfile(ctx, id.UserID); err != nil {
		l.Error("delete account: remove profile", zap.Error(err))
		return ErrInternal
	}
	if err := s.users.RemoveUser(ctx, id.UserID); err != nil {
		l.Error("delete account: remove user", zap.Error(err))
		return ErrInternal
	}

	if err := s.events.Publish(ctx, queue.Exchange, "account.deleted",
		queue.AccountDeleted{UserID: id.UserID}, reqID); err != nil {
		l.Warn("publish account.deleted", zap.Error(err))
	}
	return nil
}

// AddExperience validates the entry, assigns it a fresh id and prepends it to
// the caller's experience list. There is no implicit profile creation here.
func (s *ProfileService) AddExperience(ctx context.Context, id Identity, in ExperienceInput) (*domain.Profile, error) {
	errs := checkStruct(in)
	errs = dateOrder(errs, in.From, in.To)
	if len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}

	p, err := s.ownedProfile(ctx, id)
	if err != nil {
		return nil, err
	}

	entry := domain.Experience{
		ID:          primitive.NewObjectID(),
		Title:       trim(in.Title),
		Company:     trim(in.Company),
		Location:    trim(in.Location),
		From:        in.From.Time,
		Current:     in.Current,
		Description: trim(in.Description),
	}
	if in.To != nil {
		t := in.To.Time
		entry.To = &t
	}
	p.Experience = append([]domain.Experience{entry}, p.Experience...)
	return s.save(ctx, p)
}

// RemoveExperience removes the entry with the given id, preserving the order of
// the rest. An unknown (or malformed) id is a clean no-op, not an error.
func (s *ProfileService) RemoveExperience(ctx context.Context, id Identity, entryID string) (*domain.Profile, error) {
	p, err := s.ownedProfile(ctx, id)
	if err != nil {
		return nil, err
	}
	kept := p.Experience[:0:0]
	for _, e := range p.Experience {
		if e.ID.Hex() != entryID {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(p.Experience) {
		return p, nil
	}
	p.Experience = kept
	return s.save(ctx, p)
}

func (s *ProfileService) AddEducation(ctx context.Context, id Identity, in EducationInput) (*domain.Profile, error) {
	errs := checkStruct(in)
	errs = dateOrder(errs, in.From, in.To)
	if len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}

	p, err := s.ownedProfile(ctx, id)
	if err != nil {
		return nil, err
	}

	entry := domain.Education{
		ID:           primitive.NewObjectID(),
		School:       trim(in.School),
		Degree:       trim(in.Degree),
		FieldOfStudy: trim(in.FieldOfStudy),
		From:         in.From.Time,
		Current:      in.Current,
		Description:  trim(in.Description),
	}
	if in.To != nil {
		t := in.To.Time
		entry.To = &t
	}
	p.Education = append([]domain.Education{entry}, p.Education...)
	return s.save(ctx, p)
}

func (s *ProfileService) RemoveEducation(ctx context.Context, id Identity, entryID string) (*domain.Profile, error) {
	p, err := s.ownedProfile(ctx, id)
	if err != nil {
		return nil, err
	}
	kept := p.Education[:0:0]
	for _, e := range p.Education {
		if e.ID.Hex() != entryID {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(p.Education) {
		return p, nil
	}
	p.Education = kept
	return s.save(ctx, p)
}

func (s *ProfileService) ownedProfile(ctx context.Context, id Identity) (*domain.Profile, error) {
	p, err := s.profiles.FindProfileByOwner(ctx, id.UserID)
	if err != nil {
		log.WithDD(ctx, s.log).Error("load profile", zap.String("user_id", id.UserID.Hex()), zap.Error(err))
		return nil, ErrInternal
	}
	if p == nil {
		return nil, ErrProfileNotFound
	}
	return p, nil
}

func (s *ProfileService) save(ctx context.Context, p *domain.Profile) (*domain.Profile, error) {
	if err := s.profiles.SaveProfile(ctx, p); err != nil {
		log.WithDD(ctx, s.log).Error("save profile", zap.String("user_id", p.UserID.Hex()), zap.Error(err))
		return nil, ErrInternal
	}
	return p, nil
}
