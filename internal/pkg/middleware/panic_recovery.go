package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/roundup/internal/pkg/logger"
	"github.com/piresc/roundup/internal/utils"
)

// PanicRecoveryWithZapMiddleware turns a handler panic into a 500 and logs the stack
func PanicRecoveryWithZapMiddleware(zapLogger *logger.ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				if r == http.ErrAbortHandler {
					panic(r)
				}

				panicErr := fmt.Errorf("panic recovered: %v", r)
				if txn := newrelic.FromContext(c.Request().Context()); txn != nil {
					txn.NoticeError(panicErr)
				}

				zapLogger.Error("Panic recovered",
					logger.Any("panic_value", r),
					logger.String("stack_trace", string(debug.Stack())),
					logger.String("method", c.Request().Method),
					logger.String("path", c.Request().URL.Path),
					logger.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)))

				if c.Response().Committed {
					err = panicErr
					return
				}
				err = utils.InternalServerErrorResponse(c, "")
			}()

			return next(c)
		}
	}
}
