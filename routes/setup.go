package routes

import (
	"github.com/Kariqs/storefront/controllers"
	"github.com/Kariqs/storefront/middlewares"
	"github.com/gin-gonic/gin"
)

// Setup loads the visitor session for every request and registers all route
// groups.
func Setup(server *gin.Engine, c *controllers.Controller) {
	server.Use(middlewares.LoadSession(c.Sessions, c.Log))
	DefaultRoutes(server, c)
	AuthRoutes(server, c)
	ProductRoutes(server, c)
	CartRoutes(server, c)
}
