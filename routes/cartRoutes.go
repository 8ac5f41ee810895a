package routes

import (
	"github.com/Kariqs/storefront/controllers"
	"github.com/gin-gonic/gin"
)

func CartRoutes(server *gin.Engine, c *controllers.Controller) {
	server.GET("/cart", c.GetCart)
	server.POST("/cart/:productId", c.AddToCart)
	server.GET("/cart/:productId/remove", c.RemoveFromCart)
	server.POST("/cart/:productId/remove", c.RemoveFromCart)
}
