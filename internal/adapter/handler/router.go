package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fisherypulse/councilpulse/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg      *config.Config
	catalog  *Catalog
	sync     *Sync
	workplan *Workplan
	stats    *Stats
	compare  *Compare
	archive  *Archive
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, catalog *Catalog, sync *Sync, workplan *Workplan, stats *Stats, compare *Compare, archive *Archive) *Router {
	return &Router{
		cfg:      cfg,
		catalog:  catalog,
		sync:     sync,
		workplan: workplan,
		stats:    stats,
		compare:  compare,
		archive:  archive,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	api := e.Group("/api")

	rt.setupCatalogRoutes(api)
	rt.setupSyncRoutes(api)
	rt.setupWorkplanRoutes(api)
	rt.setupStatsRoutes(api)
	rt.setupCompareRoutes(api)
}

// setupCatalogRoutes configures record read routes
func (rt *Router) setupCatalogRoutes(g *echo.Group) {
	g.GET("/actions", rt.catalog.ListActions)
	g.GET("/actions/with-stock-status", rt.catalog.ListActionsWithStockStatus)
	g.GET("/actions/:id", rt.catalog.GetAction)

	g.GET("/meetings", rt.catalog.ListMeetings)
	g.GET("/comments", rt.catalog.ListComments)

	g.GET("/ssc/meetings", rt.catalog.ListSSCMeetings)
	g.GET("/ssc/recommendations", rt.catalog.ListSSCRecommendations)

	g.GET("/ecosystem/indicators", rt.catalog.ListIndicators)
}

// setupSyncRoutes configures scrape trigger and history routes
func (rt *Router) setupSyncRoutes(g *echo.Group) {
	scrape := g.Group("/scrape")
	scrape.POST("/amendments", rt.sync.ScrapeAmendments)
	scrape.POST("/meetings", rt.sync.ScrapeMeetings)
	scrape.POST("/comments", rt.sync.ScrapeComments)
	scrape.POST("/fisherypulse", rt.sync.ScrapeFisheryPulse)
	scrape.POST("/all", rt.sync.ScrapeAll)

	g.POST("/ssc/import/meetings", rt.sync.ImportSSCMeetings)
	g.POST("/cmod/import/workshops", rt.sync.ImportCMODWorkshops)
	g.POST("/ecosystem/import", rt.sync.ImportEcosystem)

	g.GET("/sync/runs", rt.sync.ListRuns)
	g.GET("/sync/archive", rt.archive.ListObjects)
	g.GET("/sync/archive/url", rt.archive.DownloadURL)
}

// setupWorkplanRoutes configures workplan version routes
func (rt *Router) setupWorkplanRoutes(g *echo.Group) {
	wp := g.Group("/workplan")
	wp.GET("/current", rt.workplan.Current)
	wp.POST("/current", rt.workplan.Create)
	wp.GET("/version/:id", rt.workplan.Version)
	wp.GET("/versions", rt.workplan.Versions)
	wp.GET("/stats", rt.workplan.Stats)
}

// setupStatsRoutes configures aggregate routes
func (rt *Router) setupStatsRoutes(g *echo.Group) {
	g.GET("/dashboard/stats", rt.stats.Dashboard)
	g.GET("/species/stats", rt.stats.Species)
	g.GET("/species/:name", rt.stats.SpeciesByName)
	g.GET("/resource-allocation", rt.stats.ResourceAllocation)
}

// setupCompareRoutes configures comparison routes
func (rt *Router) setupCompareRoutes(g *echo.Group) {
	g.GET("/compare", rt.compare.SideBySide)
	g.GET("/compare/similar/:id", rt.compare.Similar)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": rt.cfg.Server.Environment,
	})
}
