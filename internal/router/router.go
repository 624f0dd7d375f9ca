package router

import (
	"time"

	"carelog-go/internal/handlers"
	"carelog-go/internal/scoring"
	"carelog-go/internal/services"

	ratelimit "github.com/JGLTechnologies/gin-rate-limit"
	"github.com/gin-gonic/gin"
	"github.com/unrolled/secure"
	"go.uber.org/zap"
)

func keyFunc(c *gin.Context) string {
	return c.ClientIP()
}

func errorHandler(c *gin.Context, info ratelimit.Info) {
	c.String(429, "Too many requests. Try again later.")
}

func Setup(log *zap.Logger, engine *scoring.Engine, batch *services.BatchService) *gin.Engine {
	// Set up a new Gin router, add recovery middleware and request logging.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLogger(log))

	secureMiddleware := secure.New(secure.Options{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
	})
	router.Use(func(c *gin.Context) {
		err := secureMiddleware.Process(c.Writer, c.Request)
		if err != nil {
			c.Abort()
			return
		}
	})

	// Rate limit ingestion and recalculation triggers per client IP.
	store := ratelimit.InMemoryStore(&ratelimit.InMemoryOptions{
		Rate:  time.Minute,
		Limit: 60,
	})
	limiter := ratelimit.RateLimiter(store, &ratelimit.Options{
		ErrorHandler: errorHandler,
		KeyFunc:      keyFunc,
	})

	// Handlers and routes
	analysisHandler := handlers.NewAnalysisHandler(log, engine)
	eventsHandler := handlers.NewEventsHandler(log, batch)
	dashboardHandler := handlers.NewDashboardHandler(log, engine)

	api := router.Group("/api")
	{
		api.GET("/residents/:id/analysis", analysisHandler.Analyze)
		api.GET("/residents/:id/history", analysisHandler.History)
		api.GET("/units/:id/rollup", dashboardHandler.Rollup)
		api.POST("/events", limiter, eventsHandler.Ingest)
		api.POST("/recalculate", limiter, eventsHandler.Recalculate)
	}

	router.GET("/dashboard/units/:id/chart", dashboardHandler.Chart)

	return router
}
