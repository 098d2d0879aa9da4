package model

/*

Edge is a directed subscription relation between two users: the follower
subscribed to the target. Storage keeps edges denormalized as the
SubscriberIds array on the target user; Edge is the explicit form the
subscription and cascade logic works with, so traversal code does not care
about the array layout.

*/

type Edge struct {
	FollowerId string `json:"followerId"`
	TargetId   string `json:"targetId"`
}

// EdgesOf expands a user's follower array into explicit edges.
func EdgesOf(target User) []Edge {
	edges := make([]Edge, 0, len(target.SubscriberIds))
	for _, followerId := range target.SubscriberIds {
		edges = append(edges, Edge{FollowerId: followerId, TargetId: target.Id})
	}
	return edges
}
