package resolver

import (
	"github.com/Luismorlan/socialgraph/model"
	"github.com/Luismorlan/socialgraph/service"
	"github.com/graph-gophers/graphql-go"
)

// Thin wrappers giving each model entity its GraphQL field methods.

type userResolver struct{ u model.User }

func (r *userResolver) Id() graphql.ID    { return graphql.ID(r.u.Id) }
func (r *userResolver) FirstName() string { return r.u.FirstName }
func (r *userResolver) LastName() string  { return r.u.LastName }
func (r *userResolver) Email() string     { return r.u.Email }

func (r *userResolver) SubscribedToUserIds() []graphql.ID {
	return toGraphqlIds(r.u.SubscriberIds)
}

type profileResolver struct{ p model.Profile }

func (r *profileResolver) Id() graphql.ID           { return graphql.ID(r.p.Id) }
func (r *profileResolver) Avatar() string           { return r.p.Avatar }
func (r *profileResolver) Sex() string              { return r.p.Sex }
func (r *profileResolver) Birthday() int32          { return r.p.Birthday }
func (r *profileResolver) Country() string          { return r.p.Country }
func (r *profileResolver) Street() string           { return r.p.Street }
func (r *profileResolver) City() string             { return r.p.City }
func (r *profileResolver) MemberTypeId() graphql.ID { return graphql.ID(r.p.MemberTypeId) }
func (r *profileResolver) UserId() graphql.ID       { return graphql.ID(r.p.UserId) }

type postResolver struct{ p model.Post }

func (r *postResolver) Id() graphql.ID     { return graphql.ID(r.p.Id) }
func (r *postResolver) Title() string      { return r.p.Title }
func (r *postResolver) Content() string    { return r.p.Content }
func (r *postResolver) UserId() graphql.ID { return graphql.ID(r.p.UserId) }

type memberTypeResolver struct{ m model.MemberType }

func (r *memberTypeResolver) Id() graphql.ID         { return graphql.ID(r.m.Id) }
func (r *memberTypeResolver) Discount() int32        { return r.m.Discount }
func (r *memberTypeResolver) MonthPostsLimit() int32 { return r.m.MonthPostsLimit }

type overviewResolver struct{ v service.UserOverview }

func (r *overviewResolver) User() *userResolver { return &userResolver{u: r.v.User} }

func (r *overviewResolver) Profile() *profileResolver {
	if r.v.Profile == nil {
		return nil
	}
	return &profileResolver{p: *r.v.Profile}
}

func (r *overviewResolver) Posts() []*postResolver { return toPostResolvers(r.v.Posts) }

func (r *overviewResolver) MemberType() *memberTypeResolver {
	if r.v.MemberType == nil {
		return nil
	}
	return &memberTypeResolver{m: *r.v.MemberType}
}

type subscriptionViewResolver struct{ v service.SubscriptionView }

func (r *subscriptionViewResolver) User() *userResolver { return &userResolver{u: r.v.User} }

func (r *subscriptionViewResolver) Profile() *profileResolver {
	if r.v.Profile == nil {
		return nil
	}
	return &profileResolver{p: *r.v.Profile}
}

func (r *subscriptionViewResolver) Posts() []*postResolver { return toPostResolvers(r.v.Posts) }

func (r *subscriptionViewResolver) MemberType() *memberTypeResolver {
	if r.v.MemberType == nil {
		return nil
	}
	return &memberTypeResolver{m: *r.v.MemberType}
}

func (r *subscriptionViewResolver) FollowerIds() []graphql.ID {
	return toGraphqlIds(r.v.FollowerIds)
}

func (r *subscriptionViewResolver) FollowingIds() []graphql.ID {
	return toGraphqlIds(r.v.FollowingIds)
}

func toGraphqlIds(ids []string) []graphql.ID {
	out := make([]graphql.ID, 0, len(ids))
	for _, id := range ids {
		out = append(out, graphql.ID(id))
	}
	return out
}

func toPostResolvers(posts []model.Post) []*postResolver {
	out := make([]*postResolver, 0, len(posts))
	for i := range posts {
		out = append(out, &postResolver{p: posts[i]})
	}
	return out
}
