package middleware

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"bookstore-api/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const (
	RequestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
	maxRequestIDLen = 64
)

type Logger struct {
	logger   *slog.Logger
	timezone *time.Location
	// probe endpoints are logged at debug so they do not drown request logs
	quietPaths map[string]struct{}
}

func NewLogger(cfg config.LogConfig) *Logger {
	timezone := time.FixedZone(cfg.TimeZone, cfg.TimeZoneOffset)

	opts := &slog.HandlerOptions{
		Level: parseLevel(cfg.Level),
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key != slog.TimeKey {
				return a
			}
			if t, ok := a.Value.Any().(time.Time); ok {
				a.Value = slog.StringValue(t.In(timezone).Format(cfg.TimeFormat))
			}
			return a
		},
	}

	var handler slog.Handler = slog.NewTextHandler(os.Stdout, opts)
	if gin.Mode() == gin.ReleaseMode {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	return &Logger{logger: logger, timezone: timezone}
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (l *Logger) GetSlogLogger() *slog.Logger {
	return l.logger
}

// LoggingMiddleware builds the request logger around an existing slog logger.
// quietPaths are logged at debug level instead of info.
func LoggingMiddleware(logger *slog.Logger, cfg config.LogConfig, quietPaths ...string) gin.HandlerFunc {
	l := &Logger{
		logger:     logger,
		timezone:   time.FixedZone(cfg.TimeZone, cfg.TimeZoneOffset),
		quietPaths: make(map[string]struct{}, len(quietPaths)),
	}
	if logger == nil {
		l = NewLogger(cfg)
		l.quietPaths = make(map[string]struct{}, len(quietPaths))
	}
	for _, p := range quietPaths {
		l.quietPaths[p] = struct{}{}
	}
	return l.LoggingMiddleware()
}

func (l *Logger) LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()

		requestID := l.requestID(c.GetHeader(RequestIDHeader))
		c.Set(requestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)

		attrs := []slog.Attr{
			slog.String("request_id", requestID),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.String("client_ip", c.ClientIP()),
		}
		l.logger.LogAttrs(context.Background(), l.levelFor(c.FullPath(), 0), "Request started", attrs...)

		c.Next()

		// identity is only known once RequireAuth has run
		if identity, ok := GetIdentity(c); ok {
			attrs = append(attrs,
				slog.String("user_id", identity.UserID.String()),
				slog.Bool("is_staff", identity.IsStaff))
		}

		status := c.Writer.Status()
		attrs = append(attrs,
			slog.Int("status_code", status),
			slog.Duration("duration", time.Since(startTime)),
		)
		if size := c.Writer.Size(); size > 0 {
			attrs = append(attrs, slog.Int("response_size", size))
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, slog.String("errors", c.Errors.String()))
		}

		l.logger.LogAttrs(context.Background(), l.levelFor(c.FullPath(), status), "Request completed", attrs...)
	}
}

func (l *Logger) levelFor(path string, status int) slog.Level {
	switch {
	case status >= 500:
		return slog.LevelError
	case status >= 400:
		return slog.LevelWarn
	}
	if _, quiet := l.quietPaths[path]; quiet {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// requestID keeps a caller supplied id when it is printable and short enough.
func (l *Logger) requestID(incoming string) string {
	if incoming != "" && len(incoming) <= maxRequestIDLen && isPrintableASCII(incoming) {
		return incoming
	}
	return l.generateRequestID()
}

func isPrintableASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x21 || s[i] > 0x7e {
			return false
		}
	}
	return true
}

func (l *Logger) generateRequestID() string {
	timestamp := time.Now().In(l.timezone).Format("20060102150405")

	randomBytes := make([]byte, 4)
	if _, err := rand.Read(randomBytes); err != nil {
		return fmt.Sprintf("%s-fallback-%d", timestamp, time.Now().UnixNano()%100000000)
	}
	return timestamp + "-" + hex.EncodeToString(randomBytes)
}

func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
