package api

import "github.com/gin-gonic/gin"

const serviceName = "coinpulse"

// HealthHandler exposes the liveness and readiness probes.
//
// /healthz only says the process is up; /readyz additionally requires the
// Postgres connection to be reachable, so load balancers can drain the
// instance while the database is down without killing it.
type HealthHandler struct {
	dbPing func() error // usually db.Ping from *sql.DB
}

// NewHealthHandler constructs a HealthHandler around the given connectivity
// check. Passing nil disables the database check and /readyz always reports
// ready.
func NewHealthHandler(dbPing func() error) *HealthHandler {
	return &HealthHandler{dbPing: dbPing}
}

// Register mounts GET /healthz and GET /readyz on the router.
func (h *HealthHandler) Register(r *gin.Engine) {
	// @Summary      Liveness probe
	// @Description  Always returns OK if the service is running
	// @Tags         health
	// @Produce      json
	// @Success      200  {object}  map[string]string
	// @Router       /healthz [get]
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "service": serviceName})
	})

	// @Summary      Readiness probe
	// @Description  Returns ready once the database is reachable
	// @Tags         health
	// @Produce      json
	// @Success      200  {object}  map[string]string
	// @Failure      503  {object}  map[string]string
	// @Router       /readyz [get]
	r.GET("/readyz", func(c *gin.Context) {
		if h.dbPing != nil {
			if err := h.dbPing(); err != nil {
				c.JSON(503, gin.H{"status": "degraded", "service": serviceName})
				return
			}
		}
		c.JSON(200, gin.H{"status": "ready", "service": serviceName})
	})
}
