// internal/app/features/errors/logger.go
package errors

import (
	"net/http"

	"go.uber.org/zap"
)

// ErrorLogger logs handler failures and answers the client with a friendly
// message. htmx requests get a plain-text body so the page around the
// failed swap stays intact.
type ErrorLogger struct {
	log *zap.Logger
}

// NewErrorLogger constructs an ErrorLogger.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ErrorLogger{log: logger}
}

// LogServerError logs err with msg and writes a 500 response showing userMsg.
func (e *ErrorLogger) LogServerError(w http.ResponseWriter, r *http.Request, msg string, err error, userMsg, backURL string) {
	e.log.Error(msg,
		zap.Error(err),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path))
	e.respond(w, r, http.StatusInternalServerError, "Something went wrong", userMsg, backURL)
}

// LogBadRequest logs a rejected request at warn level and writes a 400.
func (e *ErrorLogger) LogBadRequest(w http.ResponseWriter, r *http.Request, msg string, err error, userMsg, backURL string) {
	e.log.Warn(msg,
		zap.Error(err),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path))
	e.respond(w, r, http.StatusBadRequest, "Bad request", userMsg, backURL)
}

func (e *ErrorLogger) respond(w http.ResponseWriter, r *http.Request, status int, title, userMsg, backURL string) {
	if userMsg == "" {
		userMsg = http.StatusText(status)
	}
	if r.Header.Get("HX-Request") != "" {
		http.Error(w, userMsg, status)
		return
	}
	RenderError(w, r, status, title, userMsg, backURL)
}
