package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/hirestack/jobboard-api/internal/interface/http"
)

// JobModule wires the public job CRUD routes. Static segments (featured,
// search) are registered alongside the :id parameter routes.
type JobModule struct {
	Handler *handlers.JobHandler
}

func NewJobModule(h *handlers.JobHandler) *JobModule {
	return &JobModule{Handler: h}
}

func (m *JobModule) Register(rg *gin.RouterGroup) {
	rg.POST("/jobs", m.Handler.Create)
	rg.GET("/jobs", m.Handler.List)
	rg.GET("/jobs/featured", m.Handler.ListFeatured)
	rg.GET("/jobs/search", m.Handler.Search)
	rg.GET("/jobs/:id", m.Handler.Get)
	rg.PATCH("/jobs/:id", m.Handler.Patch)
	rg.DELETE("/jobs/:id", m.Handler.Delete)
}
