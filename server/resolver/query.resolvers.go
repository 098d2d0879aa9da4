package resolver

import (
	"github.com/graph-gophers/graphql-go"
)

type idArgs struct {
	Id graphql.ID
}

func (r *Root) User(args idArgs) (*userResolver, error) {
	user, err := r.Service.GetUser(string(args.Id))
	if err != nil {
		return nil, err
	}
	return &userResolver{u: *user}, nil
}

func (r *Root) Users() ([]*userResolver, error) {
	users := r.Service.ListUsers()
	resolvers := make([]*userResolver, 0, len(users))
	for i := range users {
		resolvers = append(resolvers, &userResolver{u: users[i]})
	}
	return resolvers, nil
}

func (r *Root) Post(args idArgs) (*postResolver, error) {
	post, err := r.Service.GetPost(string(args.Id))
	if err != nil {
		return nil, err
	}
	return &postResolver{p: *post}, nil
}

func (r *Root) Posts() ([]*postResolver, error) {
	return toPostResolvers(r.Service.ListPosts()), nil
}

func (r *Root) Profile(args idArgs) (*profileResolver, error) {
	profile, err := r.Service.GetProfile(string(args.Id))
	if err != nil {
		return nil, err
	}
	return &profileResolver{p: *profile}, nil
}

func (r *Root) Profiles() ([]*profileResolver, error) {
	profiles := r.Service.ListProfiles()
	resolvers := make([]*profileResolver, 0, len(profiles))
	for i := range profiles {
		resolvers = append(resolvers, &profileResolver{p: profiles[i]})
	}
	return resolvers, nil
}

func (r *Root) MemberType(args idArgs) (*memberTypeResolver, error) {
	tier, err := r.Service.GetMemberType(string(args.Id))
	if err != nil {
		return nil, err
	}
	return &memberTypeResolver{m: *tier}, nil
}

func (r *Root) MemberTypes() ([]*memberTypeResolver, error) {
	tiers := r.Service.ListMemberTypes()
	resolvers := make([]*memberTypeResolver, 0, len(tiers))
	for i := range tiers {
		resolvers = append(resolvers, &memberTypeResolver{m: tiers[i]})
	}
	return resolvers, nil
}

func (r *Root) UserOverview(args idArgs) (*overviewResolver, error) {
	view, err := r.Service.UserOverview(string(args.Id))
	if err != nil {
		return nil, err
	}
	return &overviewResolver{v: *view}, nil
}

func (r *Root) UserOverviews() ([]*overviewResolver, error) {
	views := r.Service.UserOverviews()
	resolvers := make([]*overviewResolver, 0, len(views))
	for i := range views {
		resolvers = append(resolvers, &overviewResolver{v: views[i]})
	}
	return resolvers, nil
}

func (r *Root) SubscriptionView(args idArgs) (*subscriptionViewResolver, error) {
	view, err := r.Service.SubscriptionView(string(args.Id))
	if err != nil {
		return nil, err
	}
	return &subscriptionViewResolver{v: *view}, nil
}

func (r *Root) SubscriptionViews() ([]*subscriptionViewResolver, error) {
	views := r.Service.SubscriptionViews()
	resolvers := make([]*subscriptionViewResolver, 0, len(views))
	for i := range views {
		resolvers = append(resolvers, &subscriptionViewResolver{v: views[i]})
	}
	return resolvers, nil
}
