package echoskema_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	goskema "github.com/reoring/goskema"
	g "github.com/reoring/goskema/dsl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/skemabind"
	"github.com/reoring/skemabind/echoskema"
)

func newContext(t *testing.T, req *http.Request) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

func uuidParamSchema() goskema.Schema[map[string]any] {
	return g.Object().
		Field("id", g.StringOf[string]()).Required().
		Refine("uuid-format", func(_ context.Context, m map[string]any) error {
			s, _ := m["id"].(string)
			if _, err := uuid.Parse(s); err != nil {
				return goskema.Issues{goskema.Issue{Path: "/id", Code: goskema.CodeInvalidFormat, Message: "id must be a UUID"}}
			}
			return nil
		}).
		MustBuild()
}

func sortQuerySchema() goskema.Schema[map[string]any] {
	return g.Object().
		Field("sort", g.StringOf[string]()).Required().
		Refine("sort-enum", func(_ context.Context, m map[string]any) error {
			s, _ := m["sort"].(string)
			if s != "ASC" && s != "DESC" {
				return goskema.Issues{goskema.Issue{Path: "/sort", Code: goskema.CodeInvalidEnum, Message: "sort must be ASC or DESC"}}
			}
			return nil
		}).
		MustBuild()
}

func TestParseBody_JSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"alice"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c, _ := newContext(t, req)

	s := g.Object().Field("name", g.StringOf[string]()).Required().MustBuild()
	v, err := echoskema.ParseBody(c, s)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"name": "alice"}, v)
}

func TestParseBody_SchemaFailureIsAdapterError(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"unexpected":"x"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c, _ := newContext(t, req)

	s := g.Object().Field("name", g.StringOf[string]()).Required().MustBuild()
	_, err := echoskema.ParseBody(c, s)
	e, ok := skemabind.AsError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnprocessableEntity, e.StatusCode)
	assert.Equal(t, skemabind.DefaultStatusMessage, e.StatusMessage)
	require.NotNil(t, e.Cause)
}

func TestParseBody_MalformedPayloadPropagatesUnchanged(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c, _ := newContext(t, req)

	s := g.Object().Field("name", g.StringOf[string]()).Required().MustBuild()
	_, err := echoskema.ParseBody(c, s)
	require.Error(t, err)
	_, ok := skemabind.AsError(err)
	assert.False(t, ok, "decode failure must stay an extraction failure")
}

func TestParseQuery_SortEnum(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?sort=ASC", nil)
	c, _ := newContext(t, req)

	v, err := echoskema.ParseQuery(c, sortQuerySchema())
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"sort": "ASC"}, v)

	req = httptest.NewRequest(http.MethodGet, "/?sort=SIDEWAYS", nil)
	c, _ = newContext(t, req)
	_, err = echoskema.ParseQuery(c, sortQuerySchema())
	e, ok := skemabind.AsError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnprocessableEntity, e.StatusCode)
}

func TestParseParams_UUIDScenario(t *testing.T) {
	valid := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/users/"+valid, nil)
	c, _ := newContext(t, req)
	c.SetParamNames("id")
	c.SetParamValues(valid)

	v, err := echoskema.ParseParams(c, uuidParamSchema())
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"id": valid}, v)

	req = httptest.NewRequest(http.MethodGet, "/users/abc", nil)
	c, _ = newContext(t, req)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	_, err = echoskema.ParseParams(c, uuidParamSchema())
	e, ok := skemabind.AsError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnprocessableEntity, e.StatusCode)
	assert.Equal(t, skemabind.DefaultStatusMessage, e.StatusMessage)
}

func TestParseHeaders_LowercasedKeys(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Api-Key", "secret")
	c, _ := newContext(t, req)

	s := g.Object().Field("x-api-key", g.StringOf[string]()).Required().UnknownStrip().MustBuild()
	v, err := echoskema.ParseHeaders(c, s)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"x-api-key": "secret"}, v)
}

func TestParseCookies(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: "s-1"})
	c, _ := newContext(t, req)

	s := g.Object().Field("sid", g.StringOf[string]()).Required().UnknownStrip().MustBuild()
	v, err := echoskema.ParseCookies(c, s)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"sid": "s-1"}, v)
}

func TestParse_OptOverride(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?sort=NOPE", nil)
	c, _ := newContext(t, req)

	_, err := echoskema.ParseQuery(c, sortQuerySchema(), skemabind.Opt{StatusCode: http.StatusBadRequest, StatusMessage: "bad sort"})
	e, ok := skemabind.AsError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, e.StatusCode)
	assert.Equal(t, "bad sort", e.StatusMessage)
}

func TestHTTPErrorHandler_SurfacesAdapterError(t *testing.T) {
	e := echo.New()
	handler := echoskema.HTTPErrorHandler(e.DefaultHTTPErrorHandler)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	handler(&skemabind.Error{StatusCode: http.StatusUnprocessableEntity, StatusMessage: "Data validation failed"}, c)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "Data validation failed")

	rec = httptest.NewRecorder()
	c = e.NewContext(req, rec)
	handler(plainError{}, c)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

type plainError struct{}

func (plainError) Error() string { return "plain failure" }
