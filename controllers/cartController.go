package controllers

import (
	"net/http"
	"strconv"

	"github.com/Kariqs/storefront/cart"
	"github.com/Kariqs/storefront/sessions"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const cartPath = "/cart"

func cartCount(session *sessions.Session) int {
	return cart.Count(session)
}

// parseQuantity reads the optional quantity form field. The cart itself
// accepts any integer, so the range is enforced here.
func parseQuantity(ctx *gin.Context) (int, bool) {
	quantity, err := strconv.Atoi(ctx.DefaultPostForm("quantity", "1"))
	if err != nil || quantity < 1 {
		return 0, false
	}
	return quantity, true
}

// AddToCart handles POST /cart/:productId
func (c *Controller) AddToCart(ctx *gin.Context) {
	productID, ok := parseProductID(ctx, "productId")
	if !ok {
		return
	}

	quantity, ok := parseQuantity(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidQuantity)
		return
	}

	session := currentSession(ctx)
	cart.AddItem(session, productID, quantity)
	session.AddFlash(flashAddedToCart)

	c.saveAndRedirect(ctx, session, cartPath)
}

// GetCart handles GET /cart
func (c *Controller) GetCart(ctx *gin.Context) {
	session := currentSession(ctx)
	cart.EnsureInitialized(session)

	view, err := cart.ComputeView(session, c.lookupProduct(ctx.Request.Context()))
	if err != nil {
		c.Log.Error("cart view failed", zap.Error(err))
		respondWithError(ctx, http.StatusInternalServerError, "Unable to load cart", err)
		return
	}

	data := pageData(session)
	if !c.saveSession(ctx, session) {
		return
	}

	data["items"] = view.Items
	data["total"] = view.Total
	sendJSONResponse(ctx, http.StatusOK, data)
}

// RemoveFromCart handles GET and POST /cart/:productId/remove
func (c *Controller) RemoveFromCart(ctx *gin.Context) {
	productID, ok := parseProductID(ctx, "productId")
	if !ok {
		return
	}

	session := currentSession(ctx)
	if cart.RemoveItem(session, productID) {
		session.AddFlash(flashRemovedFromCart)
	}

	c.saveAndRedirect(ctx, session, cartPath)
}
