package controllers

import (
	"errors"
	"net/http"

	"github.com/Kariqs/storefront/models"
	"github.com/Kariqs/storefront/repository"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	registerPath = "/auth/register"
	loginPath    = "/auth/login"
	homePath     = "/"
)

// GetRegister handles GET /auth/register
func (c *Controller) GetRegister(ctx *gin.Context) {
	c.authPage(ctx)
}

// GetLogin handles GET /auth/login
func (c *Controller) GetLogin(ctx *gin.Context) {
	c.authPage(ctx)
}

func (c *Controller) authPage(ctx *gin.Context) {
	session := currentSession(ctx)
	data := pageData(session)
	if !c.saveSession(ctx, session) {
		return
	}
	sendJSONResponse(ctx, http.StatusOK, data)
}

// Register handles user registration
func (c *Controller) Register(ctx *gin.Context) {
	var registerData models.RegisterData
	if err := ctx.ShouldBind(&registerData); err != nil {
		respondWithError(ctx, http.StatusBadRequest, msgInvalidInput, err)
		return
	}

	session := currentSession(ctx)

	existing, err := c.Accounts.FindByEmail(ctx.Request.Context(), registerData.Email)
	if err != nil {
		c.Log.Error("user lookup failed", zap.Error(err))
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	if existing != nil {
		session.AddFlash(flashEmailTaken)
		c.saveAndRedirect(ctx, session, registerPath)
		return
	}

	hashedPassword, err := repository.HashPassword(registerData.Password)
	if err != nil {
		c.Log.Error("password hashing failed", zap.Error(err))
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToHashPassword)
		return
	}

	user, err := c.Accounts.CreateAccount(ctx.Request.Context(), registerData.Email, registerData.Name, hashedPassword)
	if errors.Is(err, repository.ErrEmailTaken) {
		session.AddFlash(flashEmailTaken)
		c.saveAndRedirect(ctx, session, registerPath)
		return
	}
	if err != nil {
		c.Log.Error("user creation failed", zap.Error(err))
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	if c.Mailer != nil {
		if err := c.Mailer.SendWelcomeEmail(*user); err != nil {
			c.Log.Warn("welcome email failed", zap.String("email", user.Email), zap.Error(err))
		} else {
			c.Log.Info("welcome email sent", zap.String("email", user.Email))
		}
	}

	session.AddFlash(flashRegistered)
	c.saveAndRedirect(ctx, session, loginPath)
}

// Login handles user authentication
func (c *Controller) Login(ctx *gin.Context) {
	var loginData models.LoginData
	if err := ctx.ShouldBind(&loginData); err != nil {
		respondWithError(ctx, http.StatusBadRequest, msgInvalidInput, err)
		return
	}

	user, err := c.Accounts.FindByEmail(ctx.Request.Context(), loginData.Email)
	if err != nil {
		c.Log.Error("user lookup failed", zap.Error(err))
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	session := currentSession(ctx)
	if user == nil || !repository.VerifyPassword(user, loginData.Password) {
		session.AddFlash(flashBadCredentials)
		c.saveAndRedirect(ctx, session, loginPath)
		return
	}

	session.LogIn(*user)
	session.AddFlash(flashLoggedIn)
	c.saveAndRedirect(ctx, session, homePath)
}

// Logout clears the session. The cart goes with it unless KeepCartOnLogout.
func (c *Controller) Logout(ctx *gin.Context) {
	session := currentSession(ctx)
	session.LogOut(c.KeepCartOnLogout)
	session.AddFlash(flashLoggedOut)
	c.saveAndRedirect(ctx, session, homePath)
}
