package middleware

import (
	"net/http"
	"time"

	"github.com/anonto42/connectly/web/internal/session"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// RequireSession checks for a usable session token before any protected
// page renders. Visitors without one are redirected to loginPath. The loaded
// session is placed on the context for handlers.
func RequireSession(store *session.Store, loginPath string, logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, err := store.Load(c)
			if err != nil {
				logger.Warn("Session load failed", zap.Error(err))
				return c.Redirect(http.StatusSeeOther, loginPath)
			}

			if !sess.Valid(time.Now()) {
				if sess.Authenticated() {
					logger.Info("Session token expired", zap.String("user", sess.Name))
					if err := store.Clear(c, sess); err != nil {
						logger.Warn("Session clear failed", zap.Error(err))
					}
				}
				return c.Redirect(http.StatusSeeOther, loginPath)
			}

			// Popped flashes must be persisted before the page writes its body
			if len(sess.Flashes()) > 0 {
				if err := store.Save(c, sess); err != nil {
					logger.Warn("Session save failed", zap.Error(err))
				}
			}

			session.WithContext(c, sess)
			return next(c)
		}
	}
}
