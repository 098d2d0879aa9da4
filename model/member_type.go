package model

// MemberType is a membership tier referenced by profiles. Tiers are fixed
// reference data seeded at startup; the API can read and patch them but
// never creates or deletes one.
type MemberType struct {
	Id              string `json:"id"`
	Discount        int32  `json:"discount"`
	MonthPostsLimit int32  `json:"monthPostsLimit"`
}

// DefaultMemberTypes returns the tiers every fresh database starts with.
func DefaultMemberTypes() []MemberType {
	return []MemberType{
		{Id: "basic", Discount: 0, MonthPostsLimit: 20},
		{Id: "business", Discount: 5, MonthPostsLimit: 100},
	}
}
