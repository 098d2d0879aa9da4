package resolver

import (
	"github.com/Luismorlan/socialgraph/model"
	"github.com/graph-gophers/graphql-go"
)

func (r *Root) CreateUser(args struct{ Input model.CreateUserInput }) (*userResolver, error) {
	user, err := r.Service.CreateUser(args.Input)
	if err != nil {
		return nil, err
	}
	return &userResolver{u: *user}, nil
}

func (r *Root) UpdateUser(args struct {
	Id    graphql.ID
	Input model.UpdateUserInput
}) (*userResolver, error) {
	user, err := r.Service.UpdateUser(string(args.Id), args.Input)
	if err != nil {
		return nil, err
	}
	return &userResolver{u: *user}, nil
}

func (r *Root) DeleteUser(args idArgs) (*userResolver, error) {
	user, err := r.Service.DeleteUser(string(args.Id))
	if err != nil {
		return nil, err
	}
	return &userResolver{u: *user}, nil
}

func (r *Root) CreateProfile(args struct{ Input model.CreateProfileInput }) (*profileResolver, error) {
	profile, err := r.Service.CreateProfile(args.Input)
	if err != nil {
		return nil, err
	}
	return &profileResolver{p: *profile}, nil
}

func (r *Root) UpdateProfile(args struct {
	Id    graphql.ID
	Input model.UpdateProfileInput
}) (*profileResolver, error) {
	profile, err := r.Service.UpdateProfile(string(args.Id), args.Input)
	if err != nil {
		return nil, err
	}
	return &profileResolver{p: *profile}, nil
}

func (r *Root) DeleteProfile(args idArgs) (*profileResolver, error) {
	profile, err := r.Service.DeleteProfile(string(args.Id))
	if err != nil {
		return nil, err
	}
	return &profileResolver{p: *profile}, nil
}

func (r *Root) CreatePost(args struct{ Input model.CreatePostInput }) (*postResolver, error) {
	post, err := r.Service.CreatePost(args.Input)
	if err != nil {
		return nil, err
	}
	return &postResolver{p: *post}, nil
}

func (r *Root) UpdatePost(args struct {
	Id    graphql.ID
	Input model.UpdatePostInput
}) (*postResolver, error) {
	post, err := r.Service.UpdatePost(string(args.Id), args.Input)
	if err != nil {
		return nil, err
	}
	return &postResolver{p: *post}, nil
}

func (r *Root) DeletePost(args idArgs) (*postResolver, error) {
	post, err := r.Service.DeletePost(string(args.Id))
	if err != nil {
		return nil, err
	}
	return &postResolver{p: *post}, nil
}

func (r *Root) UpdateMemberType(args struct {
	Id    graphql.ID
	Input model.UpdateMemberTypeInput
}) (*memberTypeResolver, error) {
	tier, err := r.Service.UpdateMemberType(string(args.Id), args.Input)
	if err != nil {
		return nil, err
	}
	return &memberTypeResolver{m: *tier}, nil
}

type edgeArgs struct {
	FollowerId graphql.ID
	TargetId   graphql.ID
}

func (r *Root) SubscribeTo(args edgeArgs) (*userResolver, error) {
	target, err := r.Service.SubscribeTo(string(args.FollowerId), string(args.TargetId))
	if err != nil {
		return nil, err
	}
	return &userResolver{u: *target}, nil
}

func (r *Root) UnsubscribeFrom(args edgeArgs) (*userResolver, error) {
	target, err := r.Service.UnsubscribeFrom(string(args.FollowerId), string(args.TargetId))
	if err != nil {
		return nil, err
	}
	return &userResolver{u: *target}, nil
}
