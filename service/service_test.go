package service

import (
	"testing"

	"github.com/Luismorlan/socialgraph/model"
	"github.com/Luismorlan/socialgraph/store"
	"github.com/stretchr/testify/require"
)

// newTestService returns a service over a fresh seeded database.
func newTestService(t *testing.T) *Service {
	t.Helper()
	db := store.NewDatabase()
	require.NoError(t, db.Seed())
	return New(db)
}

func createTestUser(t *testing.T, s *Service, firstName string) *model.User {
	t.Helper()
	user, err := s.CreateUser(model.CreateUserInput{
		FirstName: firstName,
		LastName:  "Tester",
		Email:     firstName + "@example.com",
	})
	require.NoError(t, err)
	require.NotEmpty(t, user.Id)
	require.Empty(t, user.SubscriberIds)
	return user
}

func createTestProfile(t *testing.T, s *Service, userId string) *model.Profile {
	t.Helper()
	profile, err := s.CreateProfile(model.CreateProfileInput{
		Avatar:       "https://robohash.org/" + userId,
		Sex:          "female",
		Birthday:     11490,
		Country:      "UK",
		Street:       "St James Square",
		City:         "London",
		MemberTypeId: "basic",
		UserId:       userId,
	})
	require.NoError(t, err)
	return profile
}
