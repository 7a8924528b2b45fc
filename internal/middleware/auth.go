package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/monocle-dev/notebook/internal/auth"
	"github.com/monocle-dev/notebook/internal/repository"
	"github.com/monocle-dev/notebook/internal/services"
	"github.com/monocle-dev/notebook/internal/types"
	"github.com/monocle-dev/notebook/internal/utils"
	"github.com/sirupsen/logrus"
)

const LoginRequiredMessage = "Please log in to access this page."

// LoadUser resolves the session cookie into the current user. Requests
// without a usable session continue anonymously.
func LoadUser(cookies *auth.Cookies, accounts *services.AccountService, log *logrus.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userID, ok := cookies.SessionUserID(ctx.Request)

		if !ok {
			ctx.Next()
			return
		}

		user, err := accounts.CurrentUser(ctx.Request.Context(), userID)

		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				cookies.ClearSession(ctx.Writer)
				ctx.Next()
				return
			}

			RequestLogger(ctx, log).WithError(err).Error("Failed to load session user")
			ctx.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		ctx.Set(types.ContextUserKey, types.AuthenticatedUser{
			ID:        user.ID,
			FirstName: user.FirstName,
			Email:     user.Email,
		})
		ctx.Next()
	}
}

// RequireUser sends anonymous visitors to the login page.
func RequireUser(cookies *auth.Cookies, log *logrus.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if _, err := utils.GetCurrentUser(ctx); err == nil {
			ctx.Next()
			return
		}

		if err := utils.Flash(ctx, cookies, types.CategoryMessage, LoginRequiredMessage); err != nil {
			RequestLogger(ctx, log).WithError(err).Warn("Failed to queue login flash")
		}

		ctx.Redirect(http.StatusSeeOther, "/login")
		ctx.Abort()
	}
}

// RequireCSRF rejects form posts that do not echo the user's CSRF token.
// It must run after RequireUser.
func RequireCSRF(sessions *auth.SessionManager, log *logrus.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userID, err := utils.GetCurrentUserID(ctx)

		if err != nil || !sessions.VerifyCSRF(ctx.PostForm(types.CSRFFieldName), userID) {
			RequestLogger(ctx, log).Warn("Rejected form post with bad CSRF token")
			ctx.String(http.StatusForbidden, "Invalid or missing CSRF token")
			ctx.Abort()
			return
		}

		ctx.Next()
	}
}
