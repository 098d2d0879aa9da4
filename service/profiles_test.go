package service

import (
	"testing"

	"github.com/Luismorlan/socialgraph/model"
	"github.com/stretchr/testify/require"
)

func TestCreateProfileChecksReferences(t *testing.T) {
	s := newTestService(t)
	user := createTestUser(t, s, "ada")

	t.Run("missing user", func(t *testing.T) {
		_, err := s.CreateProfile(model.CreateProfileInput{UserId: "ghost", MemberTypeId: "basic"})
		require.True(t, IsReference(err))
		var re *ReferenceError
		require.ErrorAs(t, err, &re)
		require.Equal(t, ReasonUserNotFound, re.Reason)
	})

	t.Run("missing member type", func(t *testing.T) {
		_, err := s.CreateProfile(model.CreateProfileInput{UserId: user.Id, MemberTypeId: "platinum"})
		var re *ReferenceError
		require.ErrorAs(t, err, &re)
		require.Equal(t, ReasonMemberTypeNotFound, re.Reason)
	})

	t.Run("success then duplicate", func(t *testing.T) {
		profile := createTestProfile(t, s, user.Id)
		require.Equal(t, user.Id, profile.UserId)
		require.Equal(t, "basic", profile.MemberTypeId)

		_, err := s.CreateProfile(model.CreateProfileInput{UserId: user.Id, MemberTypeId: "basic"})
		var re *ReferenceError
		require.ErrorAs(t, err, &re)
		require.Equal(t, ReasonProfileAlreadyExists, re.Reason)
	})
}

func TestUpdateProfile(t *testing.T) {
	s := newTestService(t)
	user := createTestUser(t, s, "ada")
	profile := createTestProfile(t, s, user.Id)

	city := "Cambridge"
	tier := "business"
	updated, err := s.UpdateProfile(profile.Id, model.UpdateProfileInput{City: &city, MemberTypeId: &tier})
	require.NoError(t, err)
	require.Equal(t, "Cambridge", updated.City)
	require.Equal(t, "business", updated.MemberTypeId)
	require.Equal(t, profile.Avatar, updated.Avatar)

	t.Run("missing profile", func(t *testing.T) {
		_, err := s.UpdateProfile("ghost", model.UpdateProfileInput{City: &city})
		require.True(t, IsNotFound(err))
	})

	t.Run("dangling member type", func(t *testing.T) {
		bogus := "platinum"
		_, err := s.UpdateProfile(profile.Id, model.UpdateProfileInput{MemberTypeId: &bogus})
		var re *ReferenceError
		require.ErrorAs(t, err, &re)
		require.Equal(t, ReasonMemberTypeNotFound, re.Reason)
	})
}

func TestDeleteProfile(t *testing.T) {
	s := newTestService(t)
	user := createTestUser(t, s, "ada")
	profile := createTestProfile(t, s, user.Id)

	deleted, err := s.DeleteProfile(profile.Id)
	require.NoError(t, err)
	require.Equal(t, profile.Id, deleted.Id)

	_, err = s.GetProfile(profile.Id)
	require.True(t, IsNotFound(err))

	_, err = s.DeleteProfile(profile.Id)
	require.True(t, IsNotFound(err))
}

func TestUpdateMemberType(t *testing.T) {
	s := newTestService(t)

	discount := int32(10)
	updated, err := s.UpdateMemberType("business", model.UpdateMemberTypeInput{Discount: &discount})
	require.NoError(t, err)
	require.Equal(t, int32(10), updated.Discount)
	require.Equal(t, int32(100), updated.MonthPostsLimit)

	_, err = s.UpdateMemberType("platinum", model.UpdateMemberTypeInput{Discount: &discount})
	require.True(t, IsNotFound(err))
}
