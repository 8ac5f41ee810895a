package controllers

import (
	"errors"
	"net/http"

	"github.com/Kariqs/storefront/models"
	"github.com/Kariqs/storefront/repository"
	"github.com/Kariqs/storefront/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetProducts handles GET /products
func (c *Controller) GetProducts(ctx *gin.Context) {
	c.listProducts(ctx, 0)
}

func (c *Controller) listProducts(ctx *gin.Context, limit int) {
	products, err := c.Catalog.ListProducts(ctx.Request.Context(), limit)
	if err != nil {
		c.Log.Error("list products failed", zap.Error(err))
		respondWithError(ctx, http.StatusInternalServerError, msgFailedToFetchProducts, err)
		return
	}

	session := currentSession(ctx)
	data := pageData(session)
	if !c.saveSession(ctx, session) {
		return
	}

	data["products"] = products
	sendJSONResponse(ctx, http.StatusOK, data)
}

// GetProduct handles GET /products/:id
func (c *Controller) GetProduct(ctx *gin.Context) {
	productID, ok := parseProductID(ctx, "id")
	if !ok {
		return
	}

	product, err := c.Catalog.GetProduct(ctx.Request.Context(), productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			respondWithError(ctx, http.StatusNotFound, msgProductNotFound, nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve product", err)
		}
		return
	}

	session := currentSession(ctx)
	data := pageData(session)
	if !c.saveSession(ctx, session) {
		return
	}

	data["product"] = product
	sendJSONResponse(ctx, http.StatusOK, data)
}

// CreateProduct handles POST /admin/products
func (c *Controller) CreateProduct(ctx *gin.Context) {
	var productData models.ProductData
	if err := ctx.ShouldBindJSON(&productData); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if productData.Price.IsNegative() {
		respondWithError(ctx, http.StatusBadRequest, msgInvalidPrice, nil)
		return
	}

	product := models.Product{
		Name:        productData.Name,
		Description: productData.Description,
		Price:       productData.Price,
		Image:       productData.Image,
	}
	if err := c.Catalog.CreateProduct(ctx.Request.Context(), &product); err != nil {
		c.Log.Error("create product failed", zap.Error(err))
		respondWithError(ctx, http.StatusInternalServerError, "Failed to create product", err)
		return
	}

	c.Log.Info("product created", zap.Uint("productId", product.ID), zap.String("name", product.Name))
	ctx.JSON(http.StatusCreated, product)
}

// UploadProductImage handles POST /admin/products/:id/image
func (c *Controller) UploadProductImage(ctx *gin.Context) {
	if c.Images == nil {
		respondWithError(ctx, http.StatusServiceUnavailable, msgImageStorageDisabled, nil)
		return
	}

	productID, ok := parseProductID(ctx, "id")
	if !ok {
		return
	}

	file, err := ctx.FormFile("image")
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "No image uploaded", err)
		return
	}

	if _, err := c.Catalog.GetProduct(ctx.Request.Context(), productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			respondWithError(ctx, http.StatusNotFound, msgProductNotFound, nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to validate product", err)
		}
		return
	}

	f, err := file.Open()
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Unable to read image", err)
		return
	}
	defer f.Close()

	key := utils.ObjectKey(productID, file.Filename)
	url, err := c.Images.Upload(ctx.Request.Context(), key, file.Header.Get("Content-Type"), f)
	if err != nil {
		c.Log.Error("image upload failed", zap.Uint("productId", productID), zap.Error(err))
		respondWithError(ctx, http.StatusBadGateway, "Failed to upload image", err)
		return
	}

	if err := c.Catalog.SetProductImage(ctx.Request.Context(), productID, url); err != nil {
		c.Log.Error("saving image url failed", zap.Uint("productId", productID), zap.String("url", url), zap.Error(err))
		respondWithError(ctx, http.StatusInternalServerError, "Failed to save image", err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Image uploaded", "url": url})
}
