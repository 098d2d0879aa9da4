package main

import (
	"net/http"

	"github.com/99designs/gqlgen/graphql/playground"
	"github.com/Luismorlan/socialgraph/server"
	"github.com/Luismorlan/socialgraph/server/middlewares"
	"github.com/Luismorlan/socialgraph/service"
	"github.com/Luismorlan/socialgraph/store"
	"github.com/Luismorlan/socialgraph/utils/dotenv"
	. "github.com/Luismorlan/socialgraph/utils/flag"
	. "github.com/Luismorlan/socialgraph/utils/log"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	Parse()

	if err := dotenv.LoadDotEnvs(); err != nil {
		panic(err)
	}

	db := store.NewDatabase()
	if err := db.Seed(); err != nil {
		Log.Fatal("seed database: ", err)
	}
	svc := service.New(db)

	// Default With the Logger and Recovery middleware already attached
	router := gin.Default()

	router.Use(cors.Default())
	router.Use(middlewares.RequestId())
	router.Use(middlewares.AccessLog())

	api := server.NewAPI(svc)
	api.RegisterRoutes(router)

	handler := server.GraphqlHandler(svc)
	router.POST("/graphql", handler)

	// Setup graphql playground for debugging
	router.GET("/", func(c *gin.Context) {
		playground.Handler("GraphQL", "/graphql").ServeHTTP(c.Writer, c.Request)
	})

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	Log.Info("api server starts up")
	router.Run(":" + *Port)
}
