package routes

import (
	"github.com/Kariqs/storefront/controllers"
	"github.com/gin-gonic/gin"
)

func AuthRoutes(server *gin.Engine, c *controllers.Controller) {
	auth := server.Group("/auth")
	{
		auth.GET("/register", c.GetRegister)
		auth.POST("/register", c.Register)
		auth.GET("/login", c.GetLogin)
		auth.POST("/login", c.Login)
		auth.GET("/logout", c.Logout)
	}
}
