package middlewares

import (
	"net/http"
	"time"

	"github.com/fsdevblog/wish-ledger/internal/logger"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Logger пишет строку лога на каждый запрос. Приватные ошибки попадают только в лог.
func Logger(l *logrus.Logger) gin.HandlerFunc {
	entry := logger.Component(l, "api")
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := logrus.Fields{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  c.Writer.Status(),
			"latency": time.Since(start).String(),
		}
		if userID, ok := c.Get(CurrentUserIDKey); ok {
			fields["userID"] = userID
		}

		reqEntry := entry.WithFields(fields)
		if private := c.Errors.ByType(gin.ErrorTypePrivate); len(private) > 0 {
			reqEntry = reqEntry.WithField("errors", private.String())
			if c.Writer.Status() >= http.StatusInternalServerError {
				reqEntry.Error("request failed")
			} else {
				reqEntry.Warn("request rejected")
			}
			return
		}
		reqEntry.Debug("request")
	}
}
