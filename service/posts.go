package service

import (
	"github.com/Luismorlan/socialgraph/model"
	"github.com/Luismorlan/socialgraph/store"
	"github.com/pkg/errors"
)

// CreatePost creates a post for an existing user.
func (s *Service) CreatePost(input model.CreatePostInput) (*model.Post, error) {
	if _, err := s.DB.Users.FindOne(store.Eq("id", input.UserId)); err != nil {
		return nil, &ReferenceError{Reason: ReasonUserNotFound, Id: input.UserId}
	}
	post, err := s.DB.Posts.Create(model.Post{
		Title:   input.Title,
		Content: input.Content,
		UserId:  input.UserId,
	})
	if err != nil {
		return nil, errors.Wrap(err, "create post")
	}
	return &post, nil
}

// GetPost resolves a post by id.
func (s *Service) GetPost(id string) (*model.Post, error) {
	post, err := s.DB.Posts.FindOne(store.Eq("id", id))
	if err != nil {
		return nil, &NotFoundError{Entity: "post", Id: id}
	}
	return &post, nil
}

// ListPosts returns all posts in insertion order.
func (s *Service) ListPosts() []model.Post {
	return s.DB.Posts.FindMany()
}

// PostsOf returns the posts owned by a user.
func (s *Service) PostsOf(userId string) []model.Post {
	return s.DB.Posts.FindMany(store.Eq("userId", userId))
}

// UpdatePost patches a post after checking it exists.
func (s *Service) UpdatePost(id string, input model.UpdatePostInput) (*model.Post, error) {
	if _, err := s.GetPost(id); err != nil {
		return nil, err
	}
	post, err := s.DB.Posts.Change(id, input)
	if err != nil {
		return nil, errors.Wrapf(err, "update post %s", id)
	}
	return &post, nil
}

// DeletePost removes a post.
func (s *Service) DeletePost(id string) (*model.Post, error) {
	if _, err := s.GetPost(id); err != nil {
		return nil, err
	}
	post, err := s.DB.Posts.Delete(id)
	if err != nil {
		return nil, errors.Wrapf(err, "delete post %s", id)
	}
	return &post, nil
}
