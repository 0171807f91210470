package handler

import "github.com/gin-gonic/gin"

// Handlers bundles every HTTP handler of the service.
type Handlers struct {
	Datasets  *DatasetHandler
	Dashboard *DashboardHandler
	Exports   *ExportHandler
	Metrics   *MetricsHandler
}

// RegisterRoutes mounts probes at the root and the API under prefix.
func RegisterRoutes(r *gin.Engine, prefix string, h Handlers, middlewares ...gin.HandlerFunc) {
	r.GET("/health", h.Metrics.Health)
	r.GET("/ready", h.Metrics.Ready)
	r.GET("/metrics", h.Metrics.Prometheus)

	api := r.Group(prefix, middlewares...)
	api.GET("/metrics/summary", h.Metrics.Summary)

	datasets := api.Group("/datasets")
	datasets.GET("", h.Datasets.List)
	datasets.GET("/:id", h.Datasets.Get)
	datasets.GET("/:id/issues", h.Datasets.Issues)
	datasets.GET("/:id/classes", h.Datasets.Classes)
	datasets.GET("/:id/classes/:class/students", h.Datasets.Students)

	datasets.GET("/:id/teachers", h.Dashboard.Teachers)
	datasets.GET("/:id/rooms", h.Dashboard.Rooms)
	datasets.GET("/:id/rooms/timeline", h.Dashboard.RoomTimelines)
	datasets.GET("/:id/rooms/students", h.Datasets.StudentsByRoom)
	datasets.GET("/:id/days", h.Dashboard.Days)
	datasets.DELETE("/:id/cache", h.Dashboard.Refresh)

	datasets.POST("/:id/exports", h.Exports.Create)
	datasets.POST("/:id/exports/batch", h.Exports.CreateBatch)
	api.GET("/exports/jobs/:jobId", h.Exports.JobStatus)
	api.GET("/exports/download/:token", h.Exports.Download)
}
