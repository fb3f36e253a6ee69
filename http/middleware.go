package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	personalsign "github.com/blip-labs/personalsign-go"
)

const (
	// AuthScheme is the Authorization scheme for signature auth
	AuthScheme = "PersonalSign"
	// AuthHeader is the header carrying the credentials
	AuthHeader = "Authorization"
	// WalletKey is the gin context key holding the authenticated address
	WalletKey = "wallet"

	// RequestIDHeader carries the request id on requests and responses
	RequestIDHeader = "X-Request-ID"
	// RequestIDKey is the gin context key holding the request id
	RequestIDKey = "request_id"
)

// RequestID assigns each request a UUID unless the client supplied one,
// echoing it on the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}

		c.Set(RequestIDKey, id)
		c.Header(RequestIDHeader, id)

		c.Next()
	}
}

// Logger returns a zap request-logging middleware
func Logger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		logger.Info("request",
			zap.Int("status", c.Writer.Status()),
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("ip", c.ClientIP()),
			zap.Duration("latency", time.Since(start)),
			zap.String("request_id", c.GetString(RequestIDKey)),
		)
	}
}

// RequireSignature authenticates requests with a personal-message signature.
//
// Expected header:
//
//	Authorization: PersonalSign {address}:{signature}
//
// where signature is the hex personal-message signature over
// "{METHOD} {PATH}". On success the claimed address is stored in the gin
// context under WalletKey; on failure the request is aborted with 401.
func RequireSignature() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(AuthHeader)
		if header == "" {
			abortUnauthorized(c, "missing Authorization header")
			return
		}

		address, signature, ok := parseAuthHeader(header)
		if !ok {
			abortUnauthorized(c, "Authorization header must be 'PersonalSign {address}:{signature}'")
			return
		}

		if !personalsign.IsValidAddress(address) {
			abortUnauthorized(c, "invalid wallet address")
			return
		}

		message := []byte(c.Request.Method + " " + c.Request.URL.Path)
		valid, err := personalsign.Verify(message, signature, address)
		if err != nil || !valid {
			abortUnauthorized(c, "signature verification failed")
			return
		}

		c.Set(WalletKey, personalsign.NormalizeAddress(address))
		c.Next()
	}
}

// parseAuthHeader splits "PersonalSign {address}:{signature}"
func parseAuthHeader(header string) (address, signature string, ok bool) {
	scheme, credentials, found := strings.Cut(header, " ")
	if !found || scheme != AuthScheme {
		return "", "", false
	}

	address, signature, found = strings.Cut(credentials, ":")
	if !found || address == "" || signature == "" {
		return "", "", false
	}
	return address, signature, true
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{
		Error: message,
		Code:  "unauthorized",
	})
}
