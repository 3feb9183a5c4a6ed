package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"marketplace-backend/internal/schema"
	"marketplace-backend/internal/shared/middleware"
	"marketplace-backend/internal/shared/response"
	"marketplace-backend/pkg/container"

	"github.com/gin-gonic/gin"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	router.GET("/", rootHandler)
	router.GET("/test", storeTestHandler(c))
	router.GET("/schema", schemaHandler)

	api := router.Group("/api")
	{
		api.GET("/hello", helloHandler)

		api.GET("/listings", c.ListingHandler.List)
		api.POST("/listings", c.ListingHandler.Create)

		api.GET("/submissions", c.SubmissionHandler.List)
		api.POST("/submissions", c.SubmissionHandler.Create)

		api.POST("/users", c.UserHandler.Create)

		api.GET("/activity", c.ActivityHandler.List)
	}

	return router
}

func rootHandler(c *gin.Context) {
	response.Message(c, "Marketplace Backend Running")
}

func helloHandler(c *gin.Context) {
	response.Message(c, "Hello from the backend API!")
}

// schemaHandler returns the ordered field list of every resource type.
// Pure registry read, no store access.
func schemaHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"collections": schema.Collections()})
}

// storeTestHandler reports store reachability, env flags and a bounded list
// of collection names. Diagnostics only.
func storeTestHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		resp := gin.H{
			"backend":           "✅ Running",
			"database":          "❌ Not Available",
			"database_url":      setFlag(os.Getenv("DATABASE_URL") != ""),
			"database_name":     setFlag(os.Getenv("DATABASE_NAME") != ""),
			"connection_status": "Not Connected",
			"collections":       []string{},
		}

		if appCtx.DB == nil {
			c.JSON(http.StatusOK, resp)
			return
		}

		resp["connection_status"] = "Connected"

		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := appCtx.DB.HealthCheck(ctx); err != nil {
			resp["database"] = fmt.Sprintf("⚠️  Connected but Error: %v", err)
			c.JSON(http.StatusOK, resp)
			return
		}

		if names, err := appCtx.DB.ListCollectionNames(ctx); err != nil {
			resp["database"] = fmt.Sprintf("⚠️  Connected but Error: %v", err)
		} else {
			resp["database"] = "✅ Connected & Working"
			resp["collections"] = names
		}

		c.JSON(http.StatusOK, resp)
	}
}

func setFlag(set bool) string {
	if set {
		return "✅ Set"
	}
	return "❌ Not Set"
}
