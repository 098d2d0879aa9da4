package service

import (
	"github.com/Luismorlan/socialgraph/model"
	"github.com/Luismorlan/socialgraph/store"
)

// UserOverview is the denormalized read-model for one user: the user's own
// fields plus its optional profile, its posts, and the membership tier the
// profile references. A user without a profile has nil Profile and nil
// MemberType; that is absence, not an error.
type UserOverview struct {
	User       model.User
	Profile    *model.Profile
	Posts      []model.Post
	MemberType *model.MemberType
}

// SubscriptionView extends UserOverview with both edge directions as id
// lists: the stored follower array and the computed following set.
type SubscriptionView struct {
	UserOverview
	FollowerIds  []string
	FollowingIds []string
}

// buildOverview fans out the per-collection reads for one already-resolved
// user. It only reads; underlying collections are never mutated.
func (s *Service) buildOverview(user model.User) UserOverview {
	view := UserOverview{
		User:  user,
		Posts: s.DB.Posts.FindMany(store.Eq("userId", user.Id)),
	}

	profile, err := s.DB.Profiles.FindOne(store.Eq("userId", user.Id))
	if err != nil {
		return view
	}
	view.Profile = &profile

	tier, err := s.DB.MemberTypes.FindOne(store.Eq("id", profile.MemberTypeId))
	if err == nil {
		view.MemberType = &tier
	}
	return view
}

// UserOverview assembles the composite view for one user. Only a missing
// root user is an error; missing relations degrade to absent fields.
func (s *Service) UserOverview(id string) (*UserOverview, error) {
	user, err := s.GetUser(id)
	if err != nil {
		return nil, err
	}
	view := s.buildOverview(*user)
	return &view, nil
}

// UserOverviews assembles the composite view for every user, in the store's
// enumeration order.
func (s *Service) UserOverviews() []UserOverview {
	users := s.DB.Users.FindMany()
	views := make([]UserOverview, 0, len(users))
	for _, user := range users {
		views = append(views, s.buildOverview(user))
	}
	return views
}

// SubscriptionView assembles the composite view plus both edge directions
// for one user.
func (s *Service) SubscriptionView(id string) (*SubscriptionView, error) {
	user, err := s.GetUser(id)
	if err != nil {
		return nil, err
	}
	view := s.subscriptionView(*user)
	return &view, nil
}

// SubscriptionViews assembles the subscription view for every user. Each
// view's following list is a full membership scan, so a listing of N users
// costs O(N^2); fine at this data scale.
func (s *Service) SubscriptionViews() []SubscriptionView {
	users := s.DB.Users.FindMany()
	views := make([]SubscriptionView, 0, len(users))
	for _, user := range users {
		views = append(views, s.subscriptionView(user))
	}
	return views
}

func (s *Service) subscriptionView(user model.User) SubscriptionView {
	followingIds := []string{}
	for _, other := range s.DB.Users.FindMany(store.InArray("subscribedToUserIds", user.Id)) {
		followingIds = append(followingIds, other.Id)
	}
	followerIds := append([]string{}, user.SubscriberIds...)

	return SubscriptionView{
		UserOverview: s.buildOverview(user),
		FollowerIds:  followerIds,
		FollowingIds: followingIds,
	}
}
