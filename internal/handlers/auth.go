package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/monocle-dev/notebook/internal/services"
	"github.com/monocle-dev/notebook/internal/types"
)

func (h *Handler) LoginPage(ctx *gin.Context) {
	h.render(ctx, http.StatusOK, "login.html", nil)
}

func (h *Handler) Login(ctx *gin.Context) {
	email := ctx.PostForm("email")
	password := ctx.PostForm("password")

	user, err := h.accounts.Authenticate(ctx.Request.Context(), email, password)

	switch {
	case errors.Is(err, services.ErrEmailNotFound):
		h.metrics.Logins.WithLabelValues("unknown_email").Inc()
		h.flash(ctx, types.CategoryError, MsgEmailNotFound)
		h.render(ctx, http.StatusOK, "login.html", gin.H{"Email": email})
		return
	case errors.Is(err, services.ErrIncorrectPassword):
		h.metrics.Logins.WithLabelValues("bad_password").Inc()
		h.flash(ctx, types.CategoryError, MsgIncorrectPassword)
		h.render(ctx, http.StatusOK, "login.html", gin.H{"Email": email})
		return
	case err != nil:
		h.internalError(ctx, err, "Failed to authenticate user")
		return
	}

	if err := h.cookies.SetSession(ctx.Writer, user.ID); err != nil {
		h.internalError(ctx, err, "Failed to issue session")
		return
	}

	h.metrics.Logins.WithLabelValues("success").Inc()
	h.redirect(ctx, "/note_list")
}

func (h *Handler) Logout(ctx *gin.Context) {
	h.cookies.ClearSession(ctx.Writer)
	h.redirect(ctx, "/login")
}

func (h *Handler) SignUpPage(ctx *gin.Context) {
	h.render(ctx, http.StatusOK, "sign_up.html", nil)
}

func (h *Handler) SignUp(ctx *gin.Context) {
	in := services.SignUpInput{
		Email:     ctx.PostForm("email"),
		FirstName: ctx.PostForm("firstName"),
		Password1: ctx.PostForm("password1"),
		Password2: ctx.PostForm("password2"),
	}

	user, err := h.accounts.Register(ctx.Request.Context(), in)

	if err != nil {
		message, ok := SignUpMessage(err)

		if !ok {
			h.internalError(ctx, err, "Failed to register user")
			return
		}

		h.flash(ctx, types.CategoryError, message)
		h.render(ctx, http.StatusOK, "sign_up.html", gin.H{
			"Email":     in.Email,
			"FirstName": in.FirstName,
		})
		return
	}

	h.metrics.Registrations.Inc()

	if err := h.cookies.SetSession(ctx.Writer, user.ID); err != nil {
		h.internalError(ctx, err, "Failed to issue session")
		return
	}

	h.redirect(ctx, "/note_list")
}
