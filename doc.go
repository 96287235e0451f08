// Package skemabind validates request-boundary data with goskema schemas.
//
// It provides:
//
//   - A validation gate (Apply) that runs a goskema.Schema against a raw value
//     and converts engine failures into a single HTTP-style *Error
//     (status code, status message, structured cause)
//   - Value and future parsing (ParseData / ParseDataFrom) plus a reusable
//     Parser bound to one schema and one default error configuration
//   - Per-source request extractors for echo.Context (echoskema) and
//     *gin.Context (ginskema): body, query, path params, headers, cookies
//
// Design policy:
//
//   - The schema engine is consumed, never wrapped in abstraction: callers pass
//     goskema.Schema[T] values directly and get the engine's parsed output back
//     verbatim, coercions included.
//   - Extraction failures (an unreadable or undecodable payload) propagate
//     unchanged; only schema failures become *Error.
//   - Framework bindings live in their own packages so the root package stays
//     free of HTTP framework imports.
//
// Typical usage:
//
//	v, err := echoskema.ParseBody(c, userSchema)
//	v, err := echoskema.ParseQuery(c, filterSchema, skemabind.Opt{StatusCode: 400})
//
//	p := skemabind.NewParser(userSchema)
//	v, err := p.Parse(ctx, payload)
package skemabind
