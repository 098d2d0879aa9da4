package resolver

import (
	"github.com/Luismorlan/socialgraph/service"
)

// Root resolves every query and mutation of the schema. It serves as
// dependency injection for the GraphQL surface; add any collaborators the
// resolvers require here.
type Root struct {
	Service *service.Service
}

func NewRoot(svc *service.Service) *Root {
	return &Root{Service: svc}
}
