package resolver

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"testing"

	"github.com/Luismorlan/socialgraph/model"
	gqlschema "github.com/Luismorlan/socialgraph/server/graphql"
	"github.com/Luismorlan/socialgraph/service"
	"github.com/Luismorlan/socialgraph/store"
	"github.com/Luismorlan/socialgraph/utils"
	"github.com/Luismorlan/socialgraph/utils/dotenv"
	"github.com/graph-gophers/graphql-go"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	dotenv.LoadDotEnvsInTests()
	os.Exit(m.Run())
}

// prepareTestSchema parses the SDL against a root resolver over a fresh
// seeded database, so every test exercises the same wiring as the server.
func prepareTestSchema(t *testing.T) (*graphql.Schema, *service.Service) {
	t.Helper()
	db := store.NewDatabase()
	require.NoError(t, db.Seed())
	svc := service.New(db)
	return utils.ParseGraphQLSchema(gqlschema.GetGQLSchema(), NewRoot(svc)), svc
}

// exec runs a query and decodes the data payload into out, failing the test
// on any GraphQL error.
func exec(t *testing.T, schema *graphql.Schema, query string, out interface{}) {
	t.Helper()
	resp := schema.Exec(context.Background(), query, "", nil)
	require.Empty(t, resp.Errors, "unexpected graphql errors: %+v", resp.Errors)
	require.NoError(t, json.Unmarshal(resp.Data, out))
}

// execErr runs a query expected to fail and returns the first error message.
func execErr(t *testing.T, schema *graphql.Schema, query string) string {
	t.Helper()
	resp := schema.Exec(context.Background(), query, "", nil)
	require.NotEmpty(t, resp.Errors)
	return resp.Errors[0].Message
}

func TestCreateUserMutation(t *testing.T) {
	schema, _ := prepareTestSchema(t)

	var resp struct {
		CreateUser struct {
			Id                  string   `json:"id"`
			FirstName           string   `json:"firstName"`
			Email               string   `json:"email"`
			SubscribedToUserIds []string `json:"subscribedToUserIds"`
		} `json:"createUser"`
	}
	exec(t, schema, `mutation {
		createUser(input: {firstName: "Ada", lastName: "Lovelace", email: "ada@example.com"}) {
			id
			firstName
			email
			subscribedToUserIds
		}
	}`, &resp)

	require.NotEmpty(t, resp.CreateUser.Id)
	require.Equal(t, "Ada", resp.CreateUser.FirstName)
	require.Equal(t, "ada@example.com", resp.CreateUser.Email)
	require.Empty(t, resp.CreateUser.SubscribedToUserIds)
}

func TestCreateProfileMutationChecksReferences(t *testing.T) {
	schema, svc := prepareTestSchema(t)
	user, err := svc.CreateUser(model.CreateUserInput{FirstName: "Ada", LastName: "L", Email: "a@e.c"})
	require.NoError(t, err)

	msg := execErr(t, schema, `mutation {
		createProfile(input: {avatar: "", sex: "", birthday: 0, country: "", street: "", city: "", memberTypeId: "basic", userId: "ghost"}) { id }
	}`)
	require.Contains(t, msg, service.ReasonUserNotFound)

	var resp struct {
		CreateProfile struct {
			Id           string `json:"id"`
			MemberTypeId string `json:"memberTypeId"`
			UserId       string `json:"userId"`
		} `json:"createProfile"`
	}
	exec(t, schema, fmt.Sprintf(`mutation {
		createProfile(input: {avatar: "", sex: "", birthday: 0, country: "", street: "", city: "", memberTypeId: "basic", userId: "%s"}) {
			id
			memberTypeId
			userId
		}
	}`, user.Id), &resp)
	require.NotEmpty(t, resp.CreateProfile.Id)
	require.Equal(t, user.Id, resp.CreateProfile.UserId)

	msg = execErr(t, schema, fmt.Sprintf(`mutation {
		createProfile(input: {avatar: "", sex: "", birthday: 0, country: "", street: "", city: "", memberTypeId: "basic", userId: "%s"}) { id }
	}`, user.Id))
	require.Contains(t, msg, service.ReasonProfileAlreadyExists)
}

func TestSubscribeMutationAndSubscriptionView(t *testing.T) {
	schema, svc := prepareTestSchema(t)
	follower, err := svc.CreateUser(model.CreateUserInput{FirstName: "f", LastName: "f", Email: "f@e.c"})
	require.NoError(t, err)
	target, err := svc.CreateUser(model.CreateUserInput{FirstName: "t", LastName: "t", Email: "t@e.c"})
	require.NoError(t, err)

	var resp struct {
		SubscribeTo struct {
			Id                  string   `json:"id"`
			SubscribedToUserIds []string `json:"subscribedToUserIds"`
		} `json:"subscribeTo"`
	}
	exec(t, schema, fmt.Sprintf(`mutation {
		subscribeTo(followerId: "%s", targetId: "%s") {
			id
			subscribedToUserIds
		}
	}`, follower.Id, target.Id), &resp)
	require.Equal(t, target.Id, resp.SubscribeTo.Id)
	require.Equal(t, []string{follower.Id}, resp.SubscribeTo.SubscribedToUserIds)

	msg := execErr(t, schema, fmt.Sprintf(`mutation {
		subscribeTo(followerId: "%s", targetId: "%s") { id }
	}`, follower.Id, target.Id))
	require.Contains(t, msg, service.ReasonAlreadySubscribed)

	var viewResp struct {
		SubscriptionView struct {
			User         struct{ Id string }
			FollowerIds  []string `json:"followerIds"`
			FollowingIds []string `json:"followingIds"`
		} `json:"subscriptionView"`
	}
	exec(t, schema, fmt.Sprintf(`query {
		subscriptionView(id: "%s") {
			user { id }
			followerIds
			followingIds
		}
	}`, target.Id), &viewResp)
	require.Equal(t, target.Id, viewResp.SubscriptionView.User.Id)
	require.Equal(t, []string{follower.Id}, viewResp.SubscriptionView.FollowerIds)
	require.Empty(t, viewResp.SubscriptionView.FollowingIds)
}

func TestUserOverviewQuery(t *testing.T) {
	schema, svc := prepareTestSchema(t)
	user, err := svc.CreateUser(model.CreateUserInput{FirstName: "Ada", LastName: "L", Email: "a@e.c"})
	require.NoError(t, err)
	_, err = svc.CreatePost(model.CreatePostInput{Title: "hello", Content: "world", UserId: user.Id})
	require.NoError(t, err)

	var resp struct {
		UserOverview struct {
			User       struct{ Id string }
			Profile    *struct{ Id string }
			Posts      []struct{ Title string }
			MemberType *struct{ Id string }
		} `json:"userOverview"`
	}
	exec(t, schema, fmt.Sprintf(`query {
		userOverview(id: "%s") {
			user { id }
			profile { id }
			posts { title }
			memberType { id }
		}
	}`, user.Id), &resp)

	require.Equal(t, user.Id, resp.UserOverview.User.Id)
	require.Nil(t, resp.UserOverview.Profile)
	require.Nil(t, resp.UserOverview.MemberType)
	require.Len(t, resp.UserOverview.Posts, 1)
	require.Equal(t, "hello", resp.UserOverview.Posts[0].Title)
}

func TestDeleteUserMutationCascades(t *testing.T) {
	schema, svc := prepareTestSchema(t)
	owner, err := svc.CreateUser(model.CreateUserInput{FirstName: "o", LastName: "o", Email: "o@e.c"})
	require.NoError(t, err)
	follower, err := svc.CreateUser(model.CreateUserInput{FirstName: "f", LastName: "f", Email: "f@e.c"})
	require.NoError(t, err)
	_, err = svc.SubscribeTo(follower.Id, owner.Id)
	require.NoError(t, err)
	_, err = svc.CreatePost(model.CreatePostInput{Title: "gone", UserId: owner.Id})
	require.NoError(t, err)

	var resp struct {
		DeleteUser struct {
			Id string `json:"id"`
		} `json:"deleteUser"`
	}
	exec(t, schema, fmt.Sprintf(`mutation {
		deleteUser(id: "%s") { id }
	}`, owner.Id), &resp)
	require.Equal(t, owner.Id, resp.DeleteUser.Id)

	require.Empty(t, svc.ListPosts())
	_, err = svc.GetUser(owner.Id)
	require.True(t, service.IsNotFound(err))

	msg := execErr(t, schema, fmt.Sprintf(`query { user(id: "%s") { id } }`, owner.Id))
	require.Contains(t, msg, "not found")
}

func TestMemberTypeQueries(t *testing.T) {
	schema, _ := prepareTestSchema(t)

	var resp struct {
		MemberTypes []struct {
			Id              string `json:"id"`
			Discount        int32  `json:"discount"`
			MonthPostsLimit int32  `json:"monthPostsLimit"`
		} `json:"memberTypes"`
	}
	exec(t, schema, `query { memberTypes { id discount monthPostsLimit } }`, &resp)
	require.Len(t, resp.MemberTypes, 2)
	require.Equal(t, "basic", resp.MemberTypes[0].Id)
	require.Equal(t, int32(100), resp.MemberTypes[1].MonthPostsLimit)

	var patched struct {
		UpdateMemberType struct {
			Discount int32 `json:"discount"`
		} `json:"updateMemberType"`
	}
	exec(t, schema, `mutation { updateMemberType(id: "basic", input: {discount: 3}) { discount } }`, &patched)
	require.Equal(t, int32(3), patched.UpdateMemberType.Discount)
}
