package store

import "github.com/Luismorlan/socialgraph/model"

// Database bundles the four entity collections. It is created once by the
// composition root and handed to every component that needs it; there is no
// package-level instance.
type Database struct {
	Users       *Collection[model.User]
	Profiles    *Collection[model.Profile]
	Posts       *Collection[model.Post]
	MemberTypes *Collection[model.MemberType]
}

// NewDatabase creates an empty database.
func NewDatabase() *Database {
	return &Database{
		Users:       NewCollection[model.User]("users"),
		Profiles:    NewCollection[model.Profile]("profiles"),
		Posts:       NewCollection[model.Post]("posts"),
		MemberTypes: NewCollection[model.MemberType]("member-types"),
	}
}

// Seed installs the default membership tiers. Call once on a fresh database.
func (db *Database) Seed() error {
	for _, tier := range model.DefaultMemberTypes() {
		if _, err := db.MemberTypes.Create(tier); err != nil {
			return err
		}
	}
	return nil
}
