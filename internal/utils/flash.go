package utils

import (
	"github.com/gin-gonic/gin"
	"github.com/monocle-dev/notebook/internal/auth"
	"github.com/monocle-dev/notebook/internal/types"
)

const flashesKey = "flashes"

// Flash queues a message for the next rendered page, whether that is this
// response or the one after a redirect.
func Flash(ctx *gin.Context, cookies *auth.Cookies, category, message string) error {
	flashes := append(pendingFlashes(ctx, cookies), types.FlashMessage{Category: category, Message: message})
	ctx.Set(flashesKey, flashes)

	return cookies.WriteFlashes(ctx.Writer, flashes)
}

// ConsumeFlashes returns every queued message and forgets them.
func ConsumeFlashes(ctx *gin.Context, cookies *auth.Cookies) []types.FlashMessage {
	flashes := pendingFlashes(ctx, cookies)

	if len(flashes) > 0 {
		cookies.ClearFlashes(ctx.Writer)
	}

	ctx.Set(flashesKey, []types.FlashMessage{})

	return flashes
}

func pendingFlashes(ctx *gin.Context, cookies *auth.Cookies) []types.FlashMessage {
	if v, ok := ctx.Get(flashesKey); ok {
		if flashes, ok := v.([]types.FlashMessage); ok {
			return flashes
		}
	}

	return cookies.ReadFlashes(ctx.Request)
}
