package container

import (
	"context"
	"time"

	"marketplace-backend/internal/config"
	"marketplace-backend/internal/infrastructure/database"
	"marketplace-backend/internal/store"
	"marketplace-backend/pkg/logger"

	"marketplace-backend/internal/domains/activity"
	activityHandler "marketplace-backend/internal/domains/activity/handler"
	activityService "marketplace-backend/internal/domains/activity/service"
	"marketplace-backend/internal/domains/listing"
	listingHandler "marketplace-backend/internal/domains/listing/handler"
	listingService "marketplace-backend/internal/domains/listing/service"
	"marketplace-backend/internal/domains/submission"
	submissionHandler "marketplace-backend/internal/domains/submission/handler"
	submissionService "marketplace-backend/internal/domains/submission/service"
	"marketplace-backend/internal/domains/user"
	userHandler "marketplace-backend/internal/domains/user/handler"
	userService "marketplace-backend/internal/domains/user/service"
)

// Container holds every dependency of the application, built once at process
// start. Order matters: config, then infrastructure, then store, then
// services, then handlers.
type Container struct {
	Config *config.Config

	// DB is nil when no connection string was configured or the initial
	// connect failed; Store is then a store.Disconnected so data endpoints
	// report the outage instead of nil-panicking.
	DB    *database.MongoDB
	Store store.Store

	ListingService    listing.Service
	SubmissionService submission.Service
	UserService       user.Service
	ActivityService   activity.Service

	ListingHandler    *listingHandler.ListingHandler
	SubmissionHandler *submissionHandler.SubmissionHandler
	UserHandler       *userHandler.UserHandler
	ActivityHandler   *activityHandler.ActivityHandler
}

// NewContainer builds the full dependency graph. A missing or unreachable
// store is not fatal: the API still serves, reporting the store state on the
// data endpoints and on /test.
func NewContainer() (*Container, error) {
	c := &Container{}

	c.Config = config.Load()

	var docStore store.Store = store.Disconnected{}
	if c.Config.HasStore() {
		db, err := database.NewMongoDB(&database.MongoConfig{
			URL:            c.Config.Database.URL,
			Name:           c.Config.Database.Name,
			ConnectTimeout: c.Config.Database.ConnectTimeout,
		})
		if err != nil {
			logger.Warn("store connect failed, starting without store", err)
		} else {
			c.DB = db
			docStore = store.NewMongo(db.DB)
			logger.Info("store connected", map[string]interface{}{
				"database": c.Config.Database.Name,
			})
		}
	} else {
		logger.Info("no DATABASE_URL set, starting without store", nil)
	}
	c.Store = docStore

	c.ListingService = listingService.NewListingService(c.Store)
	c.SubmissionService = submissionService.NewSubmissionService(c.Store)
	c.UserService = userService.NewUserService(c.Store)
	c.ActivityService = activityService.NewActivityService(c.Store)

	c.ListingHandler = listingHandler.NewListingHandler(c.ListingService)
	c.SubmissionHandler = submissionHandler.NewSubmissionHandler(c.SubmissionService)
	c.UserHandler = userHandler.NewUserHandler(c.UserService)
	c.ActivityHandler = activityHandler.NewActivityHandler(c.ActivityService)

	return c, nil
}

// Cleanup releases infrastructure resources on shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := c.DB.Close(ctx); err != nil {
			logger.Error("store disconnect failed", err)
		}
	}
}
