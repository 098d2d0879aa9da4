package service

import (
	"github.com/Luismorlan/socialgraph/model"
	"github.com/Luismorlan/socialgraph/store"
	"github.com/pkg/errors"
)

// CreateProfile creates a profile once every reference resolves: the owning
// user must exist, must not already have a profile, and the membership tier
// must exist. Each failed check is a ReferenceError with the matching reason.
func (s *Service) CreateProfile(input model.CreateProfileInput) (*model.Profile, error) {
	if _, err := s.DB.Users.FindOne(store.Eq("id", input.UserId)); err != nil {
		return nil, &ReferenceError{Reason: ReasonUserNotFound, Id: input.UserId}
	}
	if _, err := s.DB.Profiles.FindOne(store.Eq("userId", input.UserId)); err == nil {
		return nil, &ReferenceError{Reason: ReasonProfileAlreadyExists, Id: input.UserId}
	}
	if _, err := s.DB.MemberTypes.FindOne(store.Eq("id", input.MemberTypeId)); err != nil {
		return nil, &ReferenceError{Reason: ReasonMemberTypeNotFound, Id: input.MemberTypeId}
	}

	profile, err := s.DB.Profiles.Create(model.Profile{
		Avatar:       input.Avatar,
		Sex:          input.Sex,
		Birthday:     input.Birthday,
		Country:      input.Country,
		Street:       input.Street,
		City:         input.City,
		MemberTypeId: input.MemberTypeId,
		UserId:       input.UserId,
	})
	if err != nil {
		return nil, errors.Wrap(err, "create profile")
	}
	return &profile, nil
}

// GetProfile resolves a profile by id.
func (s *Service) GetProfile(id string) (*model.Profile, error) {
	profile, err := s.DB.Profiles.FindOne(store.Eq("id", id))
	if err != nil {
		return nil, &NotFoundError{Entity: "profile", Id: id}
	}
	return &profile, nil
}

// ListProfiles returns all profiles in insertion order.
func (s *Service) ListProfiles() []model.Profile {
	return s.DB.Profiles.FindMany()
}

// UpdateProfile patches a profile after checking it exists. A patched
// member type reference must still resolve.
func (s *Service) UpdateProfile(id string, input model.UpdateProfileInput) (*model.Profile, error) {
	if _, err := s.GetProfile(id); err != nil {
		return nil, err
	}
	if input.MemberTypeId != nil {
		if _, err := s.DB.MemberTypes.FindOne(store.Eq("id", *input.MemberTypeId)); err != nil {
			return nil, &ReferenceError{Reason: ReasonMemberTypeNotFound, Id: *input.MemberTypeId}
		}
	}
	profile, err := s.DB.Profiles.Change(id, input)
	if err != nil {
		return nil, errors.Wrapf(err, "update profile %s", id)
	}
	return &profile, nil
}

// DeleteProfile removes a profile. Nothing references profiles, so no
// unwinding is needed.
func (s *Service) DeleteProfile(id string) (*model.Profile, error) {
	if _, err := s.GetProfile(id); err != nil {
		return nil, err
	}
	profile, err := s.DB.Profiles.Delete(id)
	if err != nil {
		return nil, errors.Wrapf(err, "delete profile %s", id)
	}
	return &profile, nil
}
