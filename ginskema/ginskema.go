// Package ginskema binds skemabind's per-source extractors to *gin.Context.
//
// The surface mirrors echoskema: one extractor per request part with a
// uniform signature, validation and error shaping shared through
// skemabind.Apply. Extraction failures propagate unchanged.
package ginskema

import (
	"net/http"

	"github.com/gin-gonic/gin"
	goskema "github.com/reoring/goskema"
	"github.com/reoring/skemabind"
	"github.com/reoring/skemabind/internal/httpraw"
)

type extractFunc func(c *gin.Context) (any, error)

func parseAs[T any](c *gin.Context, s goskema.Schema[T], extract extractFunc, opts []skemabind.Opt) (T, error) {
	raw, err := extract(c)
	if err != nil {
		var zero T
		return zero, err
	}
	return skemabind.Apply(c.Request.Context(), s, raw, opts...)
}

// ParseBody reads and decodes the request payload (JSON, YAML, urlencoded or
// multipart form by Content-Type; empty body decodes to nil) and validates it
// with s.
func ParseBody[T any](c *gin.Context, s goskema.Schema[T], opts ...skemabind.Opt) (T, error) {
	return parseAs(c, s, bodyValue, opts)
}

// ParseQuery validates the URL query parameters as a string-keyed map.
func ParseQuery[T any](c *gin.Context, s goskema.Schema[T], opts ...skemabind.Opt) (T, error) {
	return parseAs(c, s, queryValue, opts)
}

// ParseParams validates the router-bound path parameters as a string-keyed map.
func ParseParams[T any](c *gin.Context, s goskema.Schema[T], opts ...skemabind.Opt) (T, error) {
	return parseAs(c, s, paramsValue, opts)
}

// ParseHeaders validates the request headers as a string-keyed map with
// lowercased keys.
func ParseHeaders[T any](c *gin.Context, s goskema.Schema[T], opts ...skemabind.Opt) (T, error) {
	return parseAs(c, s, headersValue, opts)
}

// ParseCookies validates the request cookies as a name→value map.
func ParseCookies[T any](c *gin.Context, s goskema.Schema[T], opts ...skemabind.Opt) (T, error) {
	return parseAs(c, s, cookiesValue, opts)
}

func bodyValue(c *gin.Context) (any, error) {
	return httpraw.Body(c.ContentType(), c.Request.Body)
}

func queryValue(c *gin.Context) (any, error) {
	return httpraw.Values(c.Request.URL.Query()), nil
}

func paramsValue(c *gin.Context) (any, error) {
	out := make(map[string]any, len(c.Params))
	for _, p := range c.Params {
		out[p.Key] = p.Value
	}
	return out, nil
}

func headersValue(c *gin.Context) (any, error) {
	return httpraw.Headers(c.Request.Header), nil
}

func cookiesValue(c *gin.Context) (any, error) {
	return httpraw.Cookies(c.Request.Cookies()), nil
}

// AbortWithError terminates the request with the error's status and message.
// When the cause carries engine issues they are included in the payload;
// anything that is not a *skemabind.Error aborts with 500.
func AbortWithError(c *gin.Context, err error) {
	if e, ok := skemabind.AsError(err); ok {
		payload := gin.H{"message": e.StatusMessage}
		if iss, ok := e.Issues(); ok {
			payload["issues"] = iss
		}
		c.AbortWithStatusJSON(e.StatusCode, payload)
		return
	}
	_ = c.AbortWithError(http.StatusInternalServerError, err)
}
