package service_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/haseebk/dev-net/internal/domain"
	"github.com/haseebk/dev-net/internal/queue"
	"github.com/haseebk/dev-net/internal/service"
	"github.com/haseebk/dev-net/internal/service/servicetest"
)

func newProfileService(f *servicetest.FakeStore) *service.ProfileService {
	return service.NewProfileService(f, f, f, queue.NewNoop(), zap.NewNop())
}

func strp(s string) *string { return &s }

func datep(s string) *service.Date {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &service.Date{Time: t}
}

func seedUser(f *servicetest.FakeStore, name string) service.Identity {
	u := domain.User{ID: primitive.NewObjectID(), Name: name, Email: name + "@example.com", Avatar: "https://gravatar.com/avatar/x"}
	f.Users[u.ID] = u
	return service.Identity{UserID: u.ID}
}

func TestSkillListFromDelimitedString(t *testing.T) {
	var s service.SkillList
	require.NoError(t, json.Unmarshal([]byte(`"node, express , mongo"`), &s))
	assert.Equal(t, service.SkillList{"node", "express", "mongo"}, s)
}

func TestSkillListFromArray(t *testing.T) {
	var s service.SkillList
	require.NoError(t, json.Unmarshal([]byte(`[" js ","go","",  "rust"]`), &s))
	assert.Equal(t, service.SkillList{"js", "go", "rust"}, s)
}

func TestUpsertCreatesProfile(t *testing.T) {
	f := servicetest.New()
	svc := newProfileService(f)
	id := seedUser(f, "john")

	var skills service.SkillList
	require.NoError(t, json.Unmarshal([]byte(`"js,go"`), &skills))

	p, err := svc.Upsert(context.Background(), id, service.ProfileInput{
		Status: strp("Developer"),
		Skills: &skills,
	}, "req-1")
	require.NoError(t, err)

	assert.Equal(t, id.UserID, p.UserID)
	assert.Equal(t, "Developer", p.Status)
	assert.Equal(t, []string{"js", "go"}, p.Skills)
	assert.Empty(t, p.Experience)
	assert.Empty(t, p.Education)
}

func TestUpsertMergesOnlyPresentFields(t *testing.T) {
	f := servicetest.New()
	svc := newProfileService(f)
	id := seedUser(f, "john")
	ctx := context.Background()

	_, err := svc.Upsert(ctx, id, service.ProfileInput{
		Status:  strp("Developer"),
		Company: strp("Acme"),
	}, "")
	require.NoError(t, err)

	// only bio supplied: status and company must survive
	p, err := svc.Upsert(ctx, id, service.ProfileInput{Bio: strp("hello")}, "")
	require.NoError(t, err)
	assert.Equal(t, "Developer", p.Status)
	assert.Equal(t, "Acme", p.Company)
	assert.Equal(t, "hello", p.Bio)

	// explicit empty clears the field
	p, err = svc.Upsert(ctx, id, service.ProfileInput{Company: strp("")}, "")
	require.NoError(t, err)
	assert.Empty(t, p.Company)
	assert.Equal(t, "Developer", p.Status)
}

func TestUpsertIsIdempotent(t *testing.T) {
	f := servicetest.New()
	svc := newProfileService(f)
	id := seedUser(f, "john")
	ctx := context.Background()

	in := service.ProfileInput{
		Status:   strp("Developer"),
		Website:  strp("example.com"),
		Twitter:  strp("http://twitter.com/john"),
		Location: strp("Toronto"),
	}
	first, err := svc.Upsert(ctx, id, in, "")
	require.NoError(t, err)
	second, err := svc.Upsert(ctx, id, in, "")
	require.NoError(t, err)

	first.UpdatedAt, second.UpdatedAt = time.Time{}, time.Time{}
	assert.Equal(t, first, second)
}

func TestUpsertNormalizesURLs(t *testing.T) {
	f := servicetest.New()
	svc := newProfileService(f)
	id := seedUser(f, "john")

	p, err := svc.Upsert(context.Background(), id, service.ProfileInput{
		Website: strp("example.com/"),
		Youtube: strp("http://youtube.com/c/john"),
		Twitter: strp(""),
	}, "")
	require.NoError(t, err)

	assert.Equal(t, "https://example.com", p.Website)
	assert.Equal(t, "https://youtube.com/c/john", p.Social.Youtube)
	assert.Empty(t, p.Social.Twitter, "empty URL fields stay empty")
}

func TestOwnProfileNotFound(t *testing.T) {
	f := servicetest.New()
	svc := newProfileService(f)
	id := seedUser(f, "john")

	_, err := svc.OwnProfile(context.Background(), id)
	assert.ErrorIs(t, err, service.ErrProfileNotFound)
}

func TestByOwnerInvalidID(t *testing.T) {
	f := servicetest.New()
	svc := newProfileService(f)

	_, err := svc.ByOwner(context.Background(), "not-a-hex-id")
	assert.ErrorIs(t, err, service.ErrInvalidID)

	_, err = svc.ByOwner(context.Background(), primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, service.ErrProfileNotFound)
}

func TestListJoinsOwners(t *testing.T) {
	f := servicetest.New()
	svc := newProfileService(f)
	ctx := context.Background()
	id := seedUser(f, "john")

	_, err := svc.Upsert(ctx, id, service.ProfileInput{Status: strp("Developer")}, "")
	require.NoError(t, err)

	out, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "john", out[0].Owner.Name)
	assert.NotEmpty(t, out[0].Owner.Avatar)
}

func TestAddExperienceRequiresProfile(t *testing.T) {
	f := servicetest.New()
	svc := newProfileService(f)
	id := seedUser(f, "john")

	_, err := svc.AddExperience(context.Background(), id, service.ExperienceInput{
		Title: "Dev", Company: "Acme", From: datep("2020-01-01"),
	})
	assert.ErrorIs(t, err, service.ErrProfileNotFound, "no implicit profile creation")
}

func TestAddRemoveExperienceRoundTrip(t *testing.T) {
	f := servicetest.New()
	svc := newProfileService(f)
	id := seedUser(f, "john")
	ctx := context.Background()

	_, err := svc.Upsert(ctx, id, service.ProfileInput{Status: strp("Developer")}, "")
	require.NoError(t, err)

	p, err := svc.AddExperience(ctx, id, service.ExperienceInput{
		Title: "Senior Dev", Company: "Acme", From: datep("2020-01-01"),
	})
	require.NoError(t, err)
	require.Len(t, p.Experience, 1)

	p, err = svc.AddExperience(ctx, id, service.ExperienceInput{
		Title: "Staff Dev", Company: "Acme", From: datep("2022-01-01"),
	})
	require.NoError(t, err)
	require.Len(t, p.Experience, 2)
	assert.Equal(t, "Staff Dev", p.Experience[0].Title, "new entries are prepended")

	// removing the newest entry restores the previous sequence
	p, err = svc.RemoveExperience(ctx, id, p.Experience[0].ID.Hex())
	require.NoError(t, err)
	require.Len(t, p.Experience, 1)
	assert.Equal(t, "Senior Dev", p.Experience[0].Title)
}

func TestRemoveExperienceUnknownIDIsNoop(t *testing.T) {
	f := servicetest.New()
	svc := newProfileService(f)
	id := seedUser(f, "john")
	ctx := context.Background()

	_, err := svc.Upsert(ctx, id, service.ProfileInput{Status: strp("Developer")}, "")
	require.NoError(t, err)
	before, err := svc.AddExperience(ctx, id, service.ExperienceInput{
		Title: "Dev", Company: "Acme", From: datep("2020-01-01"),
	})
	require.NoError(t, err)

	after, err := svc.RemoveExperience(ctx, id, primitive.NewObjectID().Hex())
	require.NoError(t, err)
	assert.Equal(t, before.Experience, after.Experience)

	after, err = svc.RemoveExperience(ctx, id, "garbage-id")
	require.NoError(t, err)
	assert.Equal(t, before.Experience, after.Experience)
}

func TestAddEducationDateOrder(t *testing.T) {
	f := servicetest.New()
	svc := newProfileService(f)
	id := seedUser(f, "john")
	ctx := context.Background()

	_, err := svc.Upsert(ctx, id, service.ProfileInput{Status: strp("Student")}, "")
	require.NoError(t, err)

	_, err = svc.AddEducation(ctx, id, service.EducationInput{
		School: "MIT", Degree: "BSc", FieldOfStudy: "CS",
		From: datep("2022-01-01"), To: datep("2020-01-01"),
	})
	var verr *service.ValidationError
	require.ErrorAs(t, err, &verr)
	found := false
	for _, fe := range verr.Fields {
		if fe.Field == "from" {
			found = true
		}
	}
	assert.True(t, found, "date-order violation must be reported: %v", verr.Fields)

	// no state change
	p, err := svc.OwnProfile(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, p.Education)
}

func TestAddEducationCollectsAllViolations(t *testing.T) {
	f := servicetest.New()
	svc := newProfileService(f)
	id := seedUser(f, "john")

	_, err := svc.AddEducation(context.Background(), id, service.EducationInput{})
	var verr *service.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Fields, 4, "school, degree, field_of_study and from are all required")
}

func TestDeleteAccountTwice(t *testing.T) {
	f := servicetest.New()
	svc := newProfileService(f)
	id := seedUser(f, "john")
	ctx := context.Background()

	_, err := svc.Upsert(ctx, id, service.ProfileInput{Status: strp("Developer")}, "")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteAccount(ctx, id, ""))
	_, err = svc.OwnProfile(ctx, id)
	assert.ErrorIs(t, err, service.ErrProfileNotFound)

	// second delete is a success, not an error
	assert.NoError(t, svc.DeleteAccount(ctx, id, ""))
}

func TestStoreFailureIsGeneric(t *testing.T) {
	f := servicetest.New()
	svc := newProfileService(f)
	id := seedUser(f, "john")
	f.FailOn["FindProfileByOwner"] = assert.AnError

	_, err := svc.OwnProfile(context.Background(), id)
	assert.ErrorIs(t, err, service.ErrInternal, "store detail must not leak")
}
