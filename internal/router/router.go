package router

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jasakreatif/storefront-service/api"
	"github.com/jasakreatif/storefront-service/internal/handler"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	PathHealth  = "/health"
	PathReady   = "/ready"
	PathSwagger = "/swagger"
)

// CORS mirrors the headers the storefront frontend was built against: any
// origin may call, and a preflight gets an empty 200.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Headers", "authorization, x-client-info, apikey, content-type")
		if c.Request.Method == http.MethodOptions {
			c.Status(http.StatusOK)
			c.Abort()
			return
		}
		c.Next()
	}
}

func New(orderHandler *handler.OrderHandler, catalogHandler *handler.CatalogHandler) http.Handler {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(CORS())
	r.GET(PathHealth, gin.WrapF(handler.Health))
	r.GET(PathReady, gin.WrapF(handler.Ready))
	r.GET(PathSwagger, func(c *gin.Context) { c.Redirect(http.StatusFound, PathSwagger+"/") })
	r.GET(PathSwagger+"/*any", func(c *gin.Context) {
		if strings.TrimPrefix(c.Param("any"), "/") == "openapi.json" {
			c.Data(http.StatusOK, "application/json", api.OpenAPISpec)
			return
		}
		if strings.TrimPrefix(c.Param("any"), "/") == "" {
			c.Request.URL.Path = PathSwagger + "/index.html"
			c.Request.RequestURI = PathSwagger + "/index.html"
		}
		ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/openapi.json"))(c)
	})

	v1 := r.Group("/api/v1")
	{
		v1.GET("/services", catalogHandler.List)
		v1.POST("/orders", orderHandler.Create)
		v1.GET("/orders", orderHandler.List)
		v1.GET("/orders/summary", orderHandler.Summary)
		v1.GET("/orders/:id", orderHandler.Get)
		v1.PUT("/orders/:id", orderHandler.Update)
	}

	return r
}
