package service

import (
	"github.com/Luismorlan/socialgraph/model"
	"github.com/Luismorlan/socialgraph/store"
	"github.com/Luismorlan/socialgraph/utils"
	. "github.com/Luismorlan/socialgraph/utils/log"
	"github.com/pkg/errors"
)

// CreateUser creates a user with an empty follower list.
func (s *Service) CreateUser(input model.CreateUserInput) (*model.User, error) {
	user, err := s.DB.Users.Create(model.User{
		FirstName:     input.FirstName,
		LastName:      input.LastName,
		Email:         input.Email,
		SubscriberIds: []string{},
	})
	if err != nil {
		return nil, errors.Wrap(err, "create user")
	}
	return &user, nil
}

// GetUser resolves a user by id.
func (s *Service) GetUser(id string) (*model.User, error) {
	user, err := s.DB.Users.FindOne(store.Eq("id", id))
	if err != nil {
		return nil, &NotFoundError{Entity: "user", Id: id}
	}
	return &user, nil
}

// ListUsers returns all users in insertion order.
func (s *Service) ListUsers() []model.User {
	return s.DB.Users.FindMany()
}

// UpdateUser patches a user after checking it exists.
func (s *Service) UpdateUser(id string, input model.UpdateUserInput) (*model.User, error) {
	if _, err := s.GetUser(id); err != nil {
		return nil, err
	}
	user, err := s.DB.Users.Change(id, input)
	if err != nil {
		return nil, errors.Wrapf(err, "update user %s", id)
	}
	return &user, nil
}

// userEdgePatch rewrites only the follower array of a user.
type userEdgePatch struct {
	SubscriberIds *[]string
}

/*

DeleteUser removes a user and everything that references it, in this order:

 1. resolve the user, failing fast if it does not exist
 2. find every user holding an edge entry for it and rewrite their arrays
 3. delete its posts
 4. delete its profile
 5. delete the user record itself

Dependents are captured before any mutation so the unwinding works off a
consistent pre-deletion snapshot. There is no rollback: if a step fails after
mutation started, the graph stays partially cleaned and the error reports the
step that failed. Callers must treat the sequence as best-effort cleanup.

*/

func (s *Service) DeleteUser(id string) (*model.User, error) {
	user, err := s.GetUser(id)
	if err != nil {
		return nil, err
	}

	// Pre-deletion snapshot of every dependent record.
	referencing := s.DB.Users.FindMany(store.InArray("subscribedToUserIds", id))
	posts := s.DB.Posts.FindMany(store.Eq("userId", id))
	profiles := s.DB.Profiles.FindMany(store.Eq("userId", id))

	Log.Info("delete user ", id,
		" edges=", len(referencing), " posts=", len(posts), " profiles=", len(profiles))

	for _, holder := range referencing {
		kept := utils.RemoveString(holder.SubscriberIds, id)
		if _, err := s.DB.Users.Change(holder.Id, userEdgePatch{SubscriberIds: &kept}); err != nil {
			return nil, errors.Wrapf(err, "remove edge to %s from user %s", id, holder.Id)
		}
	}

	for _, post := range posts {
		if _, err := s.DB.Posts.Delete(post.Id); err != nil {
			return nil, errors.Wrapf(err, "delete post %s of user %s", post.Id, id)
		}
	}

	for _, profile := range profiles {
		if _, err := s.DB.Profiles.Delete(profile.Id); err != nil {
			return nil, errors.Wrapf(err, "delete profile %s of user %s", profile.Id, id)
		}
	}

	if _, err := s.DB.Users.Delete(id); err != nil {
		return nil, errors.Wrapf(err, "delete user %s", id)
	}
	return user, nil
}
