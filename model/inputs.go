package model

// Inputs for the mutation surface. Create inputs carry every required field;
// update inputs use pointers so that absent fields are left untouched by the
// patch merge in the store.

type CreateUserInput struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

type UpdateUserInput struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Email     *string `json:"email"`
}

type CreateProfileInput struct {
	Avatar       string `json:"avatar"`
	Sex          string `json:"sex"`
	Birthday     int32  `json:"birthday"`
	Country      string `json:"country"`
	Street       string `json:"street"`
	City         string `json:"city"`
	MemberTypeId string `json:"memberTypeId"`
	UserId       string `json:"userId"`
}

type UpdateProfileInput struct {
	Avatar       *string `json:"avatar"`
	Sex          *string `json:"sex"`
	Birthday     *int32  `json:"birthday"`
	Country      *string `json:"country"`
	Street       *string `json:"street"`
	City         *string `json:"city"`
	MemberTypeId *string `json:"memberTypeId"`
}

type CreatePostInput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	UserId  string `json:"userId"`
}

type UpdatePostInput struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

type UpdateMemberTypeInput struct {
	Discount        *int32 `json:"discount"`
	MonthPostsLimit *int32 `json:"monthPostsLimit"`
}

// SubscribeInput identifies the acting user; the target user id comes from
// the route or mutation argument.
type SubscribeInput struct {
	UserId string `json:"userId"`
}
