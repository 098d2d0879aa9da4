package service

import (
	"testing"

	"github.com/Luismorlan/socialgraph/model"
	"github.com/Luismorlan/socialgraph/store"
	"github.com/stretchr/testify/require"
)

func TestUserCrud(t *testing.T) {
	s := newTestService(t)
	user := createTestUser(t, s, "ada")

	found, err := s.GetUser(user.Id)
	require.NoError(t, err)
	require.Equal(t, "ada", found.FirstName)

	email := "new@example.com"
	updated, err := s.UpdateUser(user.Id, model.UpdateUserInput{Email: &email})
	require.NoError(t, err)
	require.Equal(t, "new@example.com", updated.Email)
	require.Equal(t, "ada", updated.FirstName)

	_, err = s.UpdateUser("ghost", model.UpdateUserInput{Email: &email})
	require.True(t, IsNotFound(err))

	require.Len(t, s.ListUsers(), 1)
}

func TestPostCrud(t *testing.T) {
	s := newTestService(t)
	user := createTestUser(t, s, "ada")

	post, err := s.CreatePost(model.CreatePostInput{Title: "hello", Content: "world", UserId: user.Id})
	require.NoError(t, err)
	require.NotEmpty(t, post.Id)

	t.Run("owner must exist", func(t *testing.T) {
		_, err := s.CreatePost(model.CreatePostInput{Title: "x", UserId: "ghost"})
		var re *ReferenceError
		require.ErrorAs(t, err, &re)
		require.Equal(t, ReasonUserNotFound, re.Reason)
	})

	title := "hello again"
	updated, err := s.UpdatePost(post.Id, model.UpdatePostInput{Title: &title})
	require.NoError(t, err)
	require.Equal(t, "hello again", updated.Title)
	require.Equal(t, "world", updated.Content)

	deleted, err := s.DeletePost(post.Id)
	require.NoError(t, err)
	require.Equal(t, post.Id, deleted.Id)
	require.Empty(t, s.PostsOf(user.Id))
}

func TestDeleteUserCascades(t *testing.T) {
	s := newTestService(t)
	owner := createTestUser(t, s, "owner")
	follower := createTestUser(t, s, "follower")
	bystander := createTestUser(t, s, "bystander")

	createTestProfile(t, s, owner.Id)
	_, err := s.CreatePost(model.CreatePostInput{Title: "p1", UserId: owner.Id})
	require.NoError(t, err)
	_, err = s.CreatePost(model.CreatePostInput{Title: "p2", UserId: owner.Id})
	require.NoError(t, err)
	_, err = s.CreatePost(model.CreatePostInput{Title: "keep", UserId: bystander.Id})
	require.NoError(t, err)

	// follower -> owner and owner -> bystander edges
	_, err = s.SubscribeTo(follower.Id, owner.Id)
	require.NoError(t, err)
	_, err = s.SubscribeTo(owner.Id, bystander.Id)
	require.NoError(t, err)

	deleted, err := s.DeleteUser(owner.Id)
	require.NoError(t, err)
	require.Equal(t, owner.Id, deleted.Id)

	_, err = s.GetUser(owner.Id)
	require.True(t, IsNotFound(err))

	// no post, profile, or edge references the deleted user anymore
	for _, post := range s.ListPosts() {
		require.NotEqual(t, owner.Id, post.UserId)
	}
	for _, profile := range s.ListProfiles() {
		require.NotEqual(t, owner.Id, profile.UserId)
	}
	for _, user := range s.ListUsers() {
		require.NotContains(t, user.SubscriberIds, owner.Id)
	}

	// unrelated records survive
	require.Len(t, s.PostsOf(bystander.Id), 1)
	_, err = s.GetUser(follower.Id)
	require.NoError(t, err)

	t.Run("missing user", func(t *testing.T) {
		_, err := s.DeleteUser(owner.Id)
		require.True(t, IsNotFound(err))
	})
}

func TestDeleteUserWithoutDependents(t *testing.T) {
	s := newTestService(t)
	loner := createTestUser(t, s, "loner")

	_, err := s.DeleteUser(loner.Id)
	require.NoError(t, err)
	_, err = s.DB.Users.FindOne(store.Eq("id", loner.Id))
	require.ErrorIs(t, err, store.ErrNotFound)
}
