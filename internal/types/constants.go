package types

const ContextUserKey = "user"

const (
	SessionCookieName = "session"
	FlashCookieName   = "flash"
	CSRFFieldName     = "csrf_token"
)

// Flash categories understood by the templates.
const (
	CategoryError   = "error"
	CategorySuccess = "success"
	CategoryMessage = "message"
)

// DateStampLayout is MM-DD-YYYY.
const DateStampLayout = "01-02-2006"

type FlashMessage struct {
	Category string `json:"category"`
	Message  string `json:"message"`
}
