// Package httpraw turns request parts into the untyped values the validation
// gate feeds to a schema. It is extraction only: no schema is ever consulted
// here, and every error it returns is an extraction failure the bindings
// propagate unchanged.
package httpraw

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedMediaType reports a request body whose content type has no
// registered decoder.
var ErrUnsupportedMediaType = errors.New("httpraw: unsupported media type")

// Body reads the whole payload from r and decodes it according to
// contentType. An empty (or whitespace-only) payload yields nil regardless of
// content type. A missing content type is treated as JSON.
func Body(contentType string, r io.Reader) (any, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(b)) == 0 {
		return nil, nil
	}
	mt := contentType
	var params map[string]string
	if contentType != "" {
		if m, p, err := mime.ParseMediaType(contentType); err == nil {
			mt, params = m, p
		}
	}
	switch {
	case mt == "" || mt == "application/json" || strings.HasSuffix(mt, "+json"):
		dec := json.NewDecoder(bytes.NewReader(b))
		// Keep numbers as json.Number so precision survives until the schema
		// decides how to interpret them, matching the engine's own sources.
		dec.UseNumber()
		var v any
		if err := dec.Decode(&v); err != nil {
			return nil, err
		}
		return v, nil
	case mt == "application/x-www-form-urlencoded":
		vs, err := url.ParseQuery(string(b))
		if err != nil {
			return nil, err
		}
		return Values(vs), nil
	case mt == "multipart/form-data":
		return multipartFields(b, params["boundary"])
	case mt == "application/yaml" || mt == "application/x-yaml" || mt == "text/yaml":
		var v any
		if err := yaml.Unmarshal(b, &v); err != nil {
			return nil, err
		}
		return v, nil
	case strings.HasPrefix(mt, "text/"):
		return string(b), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMediaType, mt)
	}
}

// multipartFields flattens multipart form fields with the Values convention.
// File parts are skipped; only fields participate in validation.
func multipartFields(b []byte, boundary string) (any, error) {
	if boundary == "" {
		return nil, errors.New("httpraw: multipart body missing boundary")
	}
	mr := multipart.NewReader(bytes.NewReader(b), boundary)
	vs := url.Values{}
	for {
		p, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if p.FileName() != "" {
			continue
		}
		fv, err := io.ReadAll(p)
		if err != nil {
			return nil, err
		}
		vs.Add(p.FormName(), string(fv))
	}
	return Values(vs), nil
}

// Values flattens url.Values into a string-keyed map: a key seen once maps to
// its string, a repeated key maps to []string.
func Values(vs url.Values) map[string]any {
	out := make(map[string]any, len(vs))
	for k, v := range vs {
		switch len(v) {
		case 0:
			out[k] = ""
		case 1:
			out[k] = v[0]
		default:
			out[k] = v
		}
	}
	return out
}

// Headers flattens an http.Header like Values, lowercasing keys so schemas
// address fields deterministically regardless of wire casing.
func Headers(h http.Header) map[string]any {
	out := make(map[string]any, len(h))
	for k, v := range h {
		k = strings.ToLower(k)
		switch len(v) {
		case 0:
			out[k] = ""
		case 1:
			out[k] = v[0]
		default:
			out[k] = v
		}
	}
	return out
}

// Cookies maps cookie names to values. Later duplicates win, matching the
// order net/http reports them.
func Cookies(cs []*http.Cookie) map[string]any {
	out := make(map[string]any, len(cs))
	for _, c := range cs {
		out[c.Name] = c.Value
	}
	return out
}
