package server

import (
	"net/http"

	"github.com/Luismorlan/socialgraph/model"
	"github.com/Luismorlan/socialgraph/server/graphql"
	"github.com/Luismorlan/socialgraph/server/resolver"
	"github.com/Luismorlan/socialgraph/service"
	"github.com/Luismorlan/socialgraph/utils"
	"github.com/gin-gonic/gin"
	"github.com/graph-gophers/graphql-go/relay"
)

// GraphqlHandler is the universal handler for all GraphQL queries issued
// from client, by default it binds to a POST method.
func GraphqlHandler(svc *service.Service) gin.HandlerFunc {
	schemaString := graphql.GetGQLSchema()
	h := &relay.Handler{
		Schema: utils.ParseGraphQLSchema(schemaString, resolver.NewRoot(svc)),
	}

	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}

// API exposes the REST surface over the service. Routes mirror the
// historical HTTP layout: entity collections at the top level, subscription
// actions nested under the acting user.
type API struct {
	Service *service.Service
}

func NewAPI(svc *service.Service) *API {
	return &API{Service: svc}
}

// RegisterRoutes attaches every REST route to the router.
func (a *API) RegisterRoutes(router *gin.Engine) {
	users := router.Group("/users")
	users.GET("", a.listUsers)
	users.GET("/:id", a.getUser)
	users.POST("", a.createUser)
	users.PATCH("/:id", a.updateUser)
	users.DELETE("/:id", a.deleteUser)
	users.POST("/:id/subscribeTo", a.subscribeTo)
	users.POST("/:id/unsubscribeFrom", a.unsubscribeFrom)

	profiles := router.Group("/profiles")
	profiles.GET("", a.listProfiles)
	profiles.GET("/:id", a.getProfile)
	profiles.POST("", a.createProfile)
	profiles.PATCH("/:id", a.updateProfile)
	profiles.DELETE("/:id", a.deleteProfile)

	posts := router.Group("/posts")
	posts.GET("", a.listPosts)
	posts.GET("/:id", a.getPost)
	posts.POST("", a.createPost)
	posts.PATCH("/:id", a.updatePost)
	posts.DELETE("/:id", a.deletePost)

	memberTypes := router.Group("/member-types")
	memberTypes.GET("", a.listMemberTypes)
	memberTypes.GET("/:id", a.getMemberType)
	memberTypes.PATCH("/:id", a.updateMemberType)
}

// readError maps service errors on the read path: a missing record is 404.
func readError(c *gin.Context, err error) {
	if service.IsNotFound(err) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

// writeError maps service errors on the mutation path: integrity and
// conflict failures, including a missing target, are 400.
func writeError(c *gin.Context, err error) {
	if service.IsNotFound(err) || service.IsReference(err) || service.IsConflict(err) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

func (a *API) listUsers(c *gin.Context) {
	c.JSON(http.StatusOK, a.Service.ListUsers())
}

func (a *API) getUser(c *gin.Context) {
	user, err := a.Service.GetUser(c.Param("id"))
	if err != nil {
		readError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (a *API) createUser(c *gin.Context) {
	var input model.CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, err := a.Service.CreateUser(input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (a *API) updateUser(c *gin.Context) {
	var input model.UpdateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, err := a.Service.UpdateUser(c.Param("id"), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (a *API) deleteUser(c *gin.Context) {
	user, err := a.Service.DeleteUser(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (a *API) subscribeTo(c *gin.Context) {
	var input model.SubscribeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	target, err := a.Service.SubscribeTo(c.Param("id"), input.UserId)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, target)
}

func (a *API) unsubscribeFrom(c *gin.Context) {
	var input model.SubscribeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	target, err := a.Service.UnsubscribeFrom(c.Param("id"), input.UserId)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, target)
}

func (a *API) listProfiles(c *gin.Context) {
	c.JSON(http.StatusOK, a.Service.ListProfiles())
}

func (a *API) getProfile(c *gin.Context) {
	profile, err := a.Service.GetProfile(c.Param("id"))
	if err != nil {
		readError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (a *API) createProfile(c *gin.Context) {
	var input model.CreateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	profile, err := a.Service.CreateProfile(input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (a *API) updateProfile(c *gin.Context) {
	var input model.UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	profile, err := a.Service.UpdateProfile(c.Param("id"), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (a *API) deleteProfile(c *gin.Context) {
	profile, err := a.Service.DeleteProfile(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (a *API) listPosts(c *gin.Context) {
	c.JSON(http.StatusOK, a.Service.ListPosts())
}

func (a *API) getPost(c *gin.Context) {
	post, err := a.Service.GetPost(c.Param("id"))
	if err != nil {
		readError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

func (a *API) createPost(c *gin.Context) {
	var input model.CreatePostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	post, err := a.Service.CreatePost(input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

func (a *API) updatePost(c *gin.Context) {
	var input model.UpdatePostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	post, err := a.Service.UpdatePost(c.Param("id"), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

func (a *API) deletePost(c *gin.Context) {
	post, err := a.Service.DeletePost(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

func (a *API) listMemberTypes(c *gin.Context) {
	c.JSON(http.StatusOK, a.Service.ListMemberTypes())
}

func (a *API) getMemberType(c *gin.Context) {
	tier, err := a.Service.GetMemberType(c.Param("id"))
	if err != nil {
		readError(c, err)
		return
	}
	c.JSON(http.StatusOK, tier)
}

func (a *API) updateMemberType(c *gin.Context) {
	var input model.UpdateMemberTypeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	tier, err := a.Service.UpdateMemberType(c.Param("id"), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, tier)
}
