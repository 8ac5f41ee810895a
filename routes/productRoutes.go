package routes

import (
	"github.com/Kariqs/storefront/controllers"
	"github.com/Kariqs/storefront/middlewares"
	"github.com/gin-gonic/gin"
)

func ProductRoutes(server *gin.Engine, c *controllers.Controller) {
	server.GET("/products", c.GetProducts)
	server.GET("/products/:id", c.GetProduct)

	admin := server.Group("/admin", middlewares.RequireAdmin())
	{
		admin.POST("/products", c.CreateProduct)
		admin.POST("/products/:id/image", c.UploadProductImage)
	}
}
