package api

import (
	"github.com/gin-gonic/gin"

	"cafe-employee-backend/config"
	"cafe-employee-backend/internal/mw"
	"cafe-employee-backend/internal/store"
)

// newEngine builds a Gin engine with the middleware shared by both services.
func newEngine(server config.ServerConfig, cors config.CORSConfig) *gin.Engine {
	r := gin.Default()
	r.Use(mw.CORS(cors.AllowedOrigins))
	r.Use(mw.RateLimiter(server.RateLimitPerSec, server.RateLimitBurst))
	return r
}

// NewCafeRouter creates the router of the cafe service.
func NewCafeRouter(s store.Store, cfg *config.Config) *gin.Engine {
	r := newEngine(cfg.CafeService, cfg.CORS)
	handler := NewHandler(s)

	r.GET("/health", handler.Health)
	r.GET("/cafes", handler.ListCafes)
	r.POST("/cafe", handler.CreateCafe)
	r.GET("/cafe/:id", handler.GetCafe)
	r.PUT("/cafe/:id", handler.UpdateCafe)
	r.DELETE("/cafe/:id", handler.DeleteCafe)

	return r
}

// NewEmployeeRouter creates the router of the employee service.
func NewEmployeeRouter(s store.Store, cfg *config.Config) *gin.Engine {
	r := newEngine(cfg.EmployeeService, cfg.CORS)
	handler := NewHandler(s)

	r.GET("/health", handler.Health)
	r.GET("/employees", handler.ListEmployees)
	r.POST("/employee", handler.CreateEmployee)
	r.GET("/employee/:id", handler.GetEmployee)
	r.PUT("/employee/:id", handler.UpdateEmployee)
	r.DELETE("/employee/:id", handler.DeleteEmployee)

	return r
}
