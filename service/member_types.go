package service

import (
	"github.com/Luismorlan/socialgraph/model"
	"github.com/Luismorlan/socialgraph/store"
	"github.com/pkg/errors"
)

// GetMemberType resolves a membership tier by id.
func (s *Service) GetMemberType(id string) (*model.MemberType, error) {
	tier, err := s.DB.MemberTypes.FindOne(store.Eq("id", id))
	if err != nil {
		return nil, &NotFoundError{Entity: "member type", Id: id}
	}
	return &tier, nil
}

// ListMemberTypes returns all membership tiers.
func (s *Service) ListMemberTypes() []model.MemberType {
	return s.DB.MemberTypes.FindMany()
}

// UpdateMemberType patches a tier after checking it exists. Tiers are seeded
// reference data; patching is the only mutation they support.
func (s *Service) UpdateMemberType(id string, input model.UpdateMemberTypeInput) (*model.MemberType, error) {
	if _, err := s.GetMemberType(id); err != nil {
		return nil, err
	}
	tier, err := s.DB.MemberTypes.Change(id, input)
	if err != nil {
		return nil, errors.Wrapf(err, "update member type %s", id)
	}
	return &tier, nil
}
