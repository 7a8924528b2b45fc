package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/monocle-dev/notebook/internal/auth"
	"github.com/monocle-dev/notebook/internal/metrics"
	"github.com/monocle-dev/notebook/internal/middleware"
	"github.com/monocle-dev/notebook/internal/services"
	"github.com/monocle-dev/notebook/internal/types"
	"github.com/monocle-dev/notebook/internal/utils"
	"github.com/sirupsen/logrus"
)

// Handler carries everything the route handlers need. It is built once in
// main and shared by all requests.
type Handler struct {
	accounts *services.AccountService
	notes    *services.NoteService
	cookies  *auth.Cookies
	metrics  *metrics.Metrics
	log      *logrus.Logger
	ping     func(context.Context) error
}

type Deps struct {
	Accounts *services.AccountService
	Notes    *services.NoteService
	Cookies  *auth.Cookies
	Metrics  *metrics.Metrics
	Log      *logrus.Logger
	// Ping checks the database for the health endpoint.
	Ping func(context.Context) error
}

func NewHandler(deps Deps) *Handler {
	return &Handler{
		accounts: deps.Accounts,
		notes:    deps.Notes,
		cookies:  deps.Cookies,
		metrics:  deps.Metrics,
		log:      deps.Log,
		ping:     deps.Ping,
	}
}

// render adds the current user, pending flashes and a CSRF token to data and
// writes the page.
func (h *Handler) render(ctx *gin.Context, status int, page string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}

	var current *types.AuthenticatedUser

	if user, err := utils.GetCurrentUser(ctx); err == nil {
		current = &user

		token, err := h.cookies.Sessions().IssueCSRF(user.ID)

		if err != nil {
			h.internalError(ctx, err, "Failed to issue CSRF token")
			return
		}

		data["CSRFToken"] = token
	}

	data["User"] = current
	data["Flashes"] = utils.ConsumeFlashes(ctx, h.cookies)

	ctx.HTML(status, page, data)
}

func (h *Handler) flash(ctx *gin.Context, category, message string) {
	if err := utils.Flash(ctx, h.cookies, category, message); err != nil {
		middleware.RequestLogger(ctx, h.log).WithError(err).Warn("Failed to queue flash message")
	}
}

func (h *Handler) redirect(ctx *gin.Context, location string) {
	ctx.Redirect(http.StatusSeeOther, location)
}

func (h *Handler) internalError(ctx *gin.Context, err error, message string) {
	middleware.RequestLogger(ctx, h.log).WithError(err).Error(message)
	ctx.String(http.StatusInternalServerError, "Internal server error")
}
