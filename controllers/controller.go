package controllers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/Kariqs/storefront/middlewares"
	"github.com/Kariqs/storefront/models"
	"github.com/Kariqs/storefront/repository"
	"github.com/Kariqs/storefront/sessions"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Standard response messages
const (
	msgInvalidInput          = "invalid input"
	msgInvalidProductID      = "Invalid product ID"
	msgInvalidQuantity       = "Quantity must be a positive whole number"
	msgInvalidPrice          = "Price must not be negative"
	msgInternalServerError   = "Internal server error"
	msgProductNotFound       = "Product not found"
	msgImageStorageDisabled  = "Image storage is not configured"
	msgFailedToHashPassword  = "failed to hash password"
	msgFailedToFetchProducts = "Unable to fetch products"
)

// Flash messages shown on the next page the visitor loads.
const (
	flashEmailTaken      = "Email already registered!"
	flashRegistered      = "Registration successful! Please log in."
	flashLoggedIn        = "Login successful!"
	flashBadCredentials  = "Incorrect email or password."
	flashLoggedOut       = "You have been logged out."
	flashAddedToCart     = "Product added to cart!"
	flashRemovedFromCart = "Product removed from cart."
)

type Catalog interface {
	ListProducts(ctx context.Context, limit int) ([]models.Product, error)
	GetProduct(ctx context.Context, id uint) (*models.Product, error)
	CreateProduct(ctx context.Context, product *models.Product) error
	SetProductImage(ctx context.Context, id uint, url string) error
}

type Accounts interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	CreateAccount(ctx context.Context, email, name, passwordHash string) (*models.User, error)
}

type ImageUploader interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error)
}

type WelcomeMailer interface {
	SendWelcomeEmail(user models.User) error
}

type Controller struct {
	Catalog  Catalog
	Accounts Accounts
	Sessions sessions.Store
	// Images and Mailer are optional; nil disables uploads and welcome mail.
	Images           ImageUploader
	Mailer           WelcomeMailer
	KeepCartOnLogout bool
	Log              *zap.Logger
}

func sendJSONResponse(ctx *gin.Context, status int, data gin.H) {
	ctx.JSON(status, data)
}

func sendErrorResponse(ctx *gin.Context, status int, message string) {
	sendJSONResponse(ctx, status, gin.H{"message": message})
}

// Common error response helper
func respondWithError(ctx *gin.Context, statusCode int, message string, err error) {
	errMsg := ""
	if err != nil {
		errMsg = err.Error()
	}
	ctx.JSON(statusCode, gin.H{
		"message": message,
		"error":   errMsg,
	})
}

// saveSession writes the session back to its store. On failure it answers the
// request and returns false.
func (c *Controller) saveSession(ctx *gin.Context, session *sessions.Session) bool {
	if err := c.Sessions.Save(ctx.Writer, ctx.Request, session); err != nil {
		c.Log.Error("session save failed", zap.Error(err))
		sendErrorResponse(ctx, http.StatusServiceUnavailable, middlewares.MsgSessionUnavailable)
		return false
	}
	return true
}

// saveAndRedirect persists the session and sends a 303 to location.
func (c *Controller) saveAndRedirect(ctx *gin.Context, session *sessions.Session, location string) {
	if !c.saveSession(ctx, session) {
		return
	}
	ctx.Redirect(http.StatusSeeOther, location)
}

// pageData is the visitor context every page payload carries. It consumes the
// pending flash messages.
func pageData(session *sessions.Session) gin.H {
	data := gin.H{
		"messages":  session.Flashes(),
		"cartCount": cartCount(session),
	}
	if session.IsLoggedIn() {
		data["user"] = gin.H{
			"id":      session.AccountID(),
			"name":    session.AccountName(),
			"isAdmin": session.IsAdmin(),
		}
	}
	return data
}

func parseProductID(ctx *gin.Context, param string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(param), 10, 64)
	if err != nil || id == 0 {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidProductID)
		return 0, false
	}
	return uint(id), true
}

// lookupProduct binds the catalog to a request for cart pricing. Products the
// catalog no longer has resolve to nil.
func (c *Controller) lookupProduct(ctx context.Context) func(id uint) (*models.Product, error) {
	return func(id uint) (*models.Product, error) {
		product, err := c.Catalog.GetProduct(ctx, id)
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, nil
		}
		return product, err
	}
}

func currentSession(ctx *gin.Context) *sessions.Session {
	return middlewares.CurrentSession(ctx)
}
