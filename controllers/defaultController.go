package controllers

import "github.com/gin-gonic/gin"

// Number of products featured on the home page
const homeProductLimit = 8

// GetHome handles GET /
func (c *Controller) GetHome(ctx *gin.Context) {
	c.listProducts(ctx, homeProductLimit)
}
