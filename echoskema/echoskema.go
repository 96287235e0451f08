// Package echoskema binds skemabind's per-source extractors to echo.Context.
//
// Each extractor reads one request part, validates it with the supplied
// schema and returns the engine's parsed value or a *skemabind.Error with
// the given (or default 422) status. Extraction failures (an unreadable or
// undecodable body) propagate unchanged.
package echoskema

import (
	"github.com/labstack/echo/v4"
	goskema "github.com/reoring/goskema"
	"github.com/reoring/skemabind"
	"github.com/reoring/skemabind/internal/httpraw"
)

// extractFunc reads one raw value from the request. Supplying one of these is
// all a new source needs; validation and error shaping are shared in parseAs.
type extractFunc func(c echo.Context) (any, error)

func parseAs[T any](c echo.Context, s goskema.Schema[T], extract extractFunc, opts []skemabind.Opt) (T, error) {
	raw, err := extract(c)
	if err != nil {
		var zero T
		return zero, err
	}
	return skemabind.Apply(c.Request().Context(), s, raw, opts...)
}

// ParseBody reads and decodes the request payload (JSON, YAML, urlencoded or
// multipart form by Content-Type; empty body decodes to nil) and validates it
// with s.
func ParseBody[T any](c echo.Context, s goskema.Schema[T], opts ...skemabind.Opt) (T, error) {
	return parseAs(c, s, bodyValue, opts)
}

// ParseQuery validates the URL query parameters as a string-keyed map.
// A key seen once extracts as string, a repeated key as []string.
func ParseQuery[T any](c echo.Context, s goskema.Schema[T], opts ...skemabind.Opt) (T, error) {
	return parseAs(c, s, queryValue, opts)
}

// ParseParams validates the router-bound path parameters as a string-keyed map.
func ParseParams[T any](c echo.Context, s goskema.Schema[T], opts ...skemabind.Opt) (T, error) {
	return parseAs(c, s, paramsValue, opts)
}

// ParseHeaders validates the request headers as a string-keyed map with
// lowercased keys.
func ParseHeaders[T any](c echo.Context, s goskema.Schema[T], opts ...skemabind.Opt) (T, error) {
	return parseAs(c, s, headersValue, opts)
}

// ParseCookies validates the request cookies as a name→value map.
func ParseCookies[T any](c echo.Context, s goskema.Schema[T], opts ...skemabind.Opt) (T, error) {
	return parseAs(c, s, cookiesValue, opts)
}

func bodyValue(c echo.Context) (any, error) {
	req := c.Request()
	return httpraw.Body(req.Header.Get(echo.HeaderContentType), req.Body)
}

func queryValue(c echo.Context) (any, error) {
	return httpraw.Values(c.QueryParams()), nil
}

func paramsValue(c echo.Context) (any, error) {
	names := c.ParamNames()
	out := make(map[string]any, len(names))
	for _, n := range names {
		out[n] = c.Param(n)
	}
	return out, nil
}

func headersValue(c echo.Context) (any, error) {
	return httpraw.Headers(c.Request().Header), nil
}

func cookiesValue(c echo.Context) (any, error) {
	return httpraw.Cookies(c.Cookies()), nil
}

// HTTPErrorHandler makes echo surface *skemabind.Error as a response with the
// error's status and message, keeping the engine failure in Internal for the
// logger. Everything else is delegated to next (typically the server's
// existing handler):
//
//	e.HTTPErrorHandler = echoskema.HTTPErrorHandler(e.DefaultHTTPErrorHandler)
func HTTPErrorHandler(next echo.HTTPErrorHandler) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if e, ok := skemabind.AsError(err); ok {
			next(&echo.HTTPError{Code: e.StatusCode, Message: e.StatusMessage, Internal: e.Cause}, c)
			return
		}
		next(err, c)
	}
}
