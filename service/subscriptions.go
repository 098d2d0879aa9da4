package service

import (
	"github.com/Luismorlan/socialgraph/model"
	"github.com/Luismorlan/socialgraph/store"
	"github.com/Luismorlan/socialgraph/utils"
	. "github.com/Luismorlan/socialgraph/utils/log"
	"github.com/pkg/errors"
)

/*

Subscription edges are stored on the target side: subscribing appends the
follower's id to the target user's SubscriberIds array. A user's array is
therefore its follower list, read directly; the forward direction ("who does
X follow") is computed by scanning all users for membership of X's id. The
edge itself is modeled as model.Edge so traversal code never touches the
array layout.

*/

// SubscribeTo records that follower subscribed to target. Both users must
// exist, and a duplicate edge is rejected. Returns the updated target user,
// which now carries the new edge.
func (s *Service) SubscribeTo(followerId, targetId string) (*model.User, error) {
	if _, err := s.GetUser(followerId); err != nil {
		return nil, err
	}
	target, err := s.GetUser(targetId)
	if err != nil {
		return nil, err
	}

	if utils.ContainsString(target.SubscriberIds, followerId) {
		return nil, &ConflictError{Reason: ReasonAlreadySubscribed}
	}

	ids := append(append([]string{}, target.SubscriberIds...), followerId)
	updated, err := s.DB.Users.Change(targetId, userEdgePatch{SubscriberIds: &ids})
	if err != nil {
		return nil, errors.Wrapf(err, "subscribe %s to %s", followerId, targetId)
	}
	Log.Info("user ", followerId, " subscribed to ", targetId)
	return &updated, nil
}

// UnsubscribeFrom removes the follower's edge from the target user. Both
// users must exist; a missing edge is a conflict.
func (s *Service) UnsubscribeFrom(followerId, targetId string) (*model.User, error) {
	if _, err := s.GetUser(followerId); err != nil {
		return nil, err
	}
	target, err := s.GetUser(targetId)
	if err != nil {
		return nil, err
	}

	if !utils.ContainsString(target.SubscriberIds, followerId) {
		return nil, &ConflictError{Reason: ReasonNotSubscribed}
	}

	ids := utils.RemoveString(target.SubscriberIds, followerId)
	updated, err := s.DB.Users.Change(targetId, userEdgePatch{SubscriberIds: &ids})
	if err != nil {
		return nil, errors.Wrapf(err, "unsubscribe %s from %s", followerId, targetId)
	}
	Log.Info("user ", followerId, " unsubscribed from ", targetId)
	return &updated, nil
}

// Followers returns the users subscribed to the given user: a direct read of
// its edge array. Dangling entries are skipped.
func (s *Service) Followers(userId string) ([]model.User, error) {
	user, err := s.GetUser(userId)
	if err != nil {
		return nil, err
	}

	followers := make([]model.User, 0, len(user.SubscriberIds))
	for _, edge := range model.EdgesOf(*user) {
		follower, err := s.DB.Users.FindOne(store.Eq("id", edge.FollowerId))
		if err != nil {
			continue
		}
		followers = append(followers, follower)
	}
	return followers, nil
}

// Following returns the users the given user subscribed to. This is the
// computed direction: an O(N) membership scan over all users.
func (s *Service) Following(userId string) ([]model.User, error) {
	if _, err := s.GetUser(userId); err != nil {
		return nil, err
	}
	return s.DB.Users.FindMany(store.InArray("subscribedToUserIds", userId)), nil
}

// Edges enumerates every subscription edge in the graph.
func (s *Service) Edges() []model.Edge {
	var edges []model.Edge
	for _, user := range s.DB.Users.FindMany() {
		edges = append(edges, model.EdgesOf(user)...)
	}
	return edges
}
