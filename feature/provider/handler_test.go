package provider

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"storage-provider/core/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T) (*fiber.App, *storage.MemoryClient) {
	t.Helper()
	app := fiber.New(fiber.Config{Immutable: true})
	mem := storage.NewMemoryClient("eu-west-1", "test-bucket")
	svc := NewService(mem, testScope, zap.NewNop())
	NewHandler(svc).RegisterRoutes(app)
	return app, mem
}

func decode(t *testing.T, r io.Reader) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(r).Decode(&body))
	return body
}

func TestHandlePutAndGetContent(t *testing.T) {
	app, mem := setupTestApp(t)

	req := httptest.NewRequest("PUT", "/objects/content?key=docs/a.txt&private=true", strings.NewReader("hello"))
	req.Header.Set("Content-Type", "text/plain")
	req.Header.Set("Content-Disposition", "inline")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	stored := decode(t, resp.Body)
	assert.Equal(t, "stored", stored["status"])
	assert.Equal(t, "PRIVATE/STANDARD", stored["policy"])

	opts, ok := mem.ObjectOptions("test-bucket", "docs/a.txt")
	require.True(t, ok)
	assert.Equal(t, "private", opts.ACL)
	assert.Equal(t, "text/plain", opts.ContentType)
	assert.Equal(t, "inline", opts.ContentDisposition)

	resp, err = app.Test(httptest.NewRequest("GET", "/objects/content?key=docs/a.txt", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	data, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "hello", string(data))
}

func TestHandleList(t *testing.T) {
	app, _ := setupTestApp(t)
	for _, key := range []string{"img/a.png", "img/b.png", "txt/c.txt"} {
		resp, err := app.Test(httptest.NewRequest("PUT", "/objects/content?key="+key, strings.NewReader("x")))
		require.NoError(t, err)
		require.Equal(t, 200, resp.StatusCode)
	}

	resp, err := app.Test(httptest.NewRequest("GET", "/objects?prefix=img/", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var rs struct {
		Columns []Column `json:"columns"`
		Rows    [][]any  `json:"rows"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rs))
	assert.Equal(t, ListingColumns, rs.Columns)
	require.Len(t, rs.Rows, 2)
	assert.Equal(t, "a.png", rs.Rows[0][0])
	assert.Equal(t, "/img", rs.Rows[0][1])
	assert.Equal(t, float64(1), rs.Rows[0][2])
}

func TestHandlePutContent_KeysSurviveRequest(t *testing.T) {
	app, mem := setupTestApp(t)
	for _, key := range []string{"aaaa", "bbbb"} {
		resp, err := app.Test(httptest.NewRequest("PUT", "/objects/content?key="+key, strings.NewReader(key)))
		require.NoError(t, err)
		require.Equal(t, 200, resp.StatusCode)
	}

	page, err := mem.ListObjectsPage(t.Context(), "test-bucket", storage.ListInput{})
	require.NoError(t, err)
	require.Len(t, page.Objects, 2)
	assert.Equal(t, "aaaa", page.Objects[0].Key)
	assert.Equal(t, "bbbb", page.Objects[1].Key)

	for _, key := range []string{"aaaa", "bbbb"} {
		resp, err := app.Test(httptest.NewRequest("GET", "/objects/content?key="+key, nil))
		require.NoError(t, err)
		data, _ := io.ReadAll(resp.Body)
		assert.Equal(t, key, string(data))
	}
}

func TestHandlers_MissingKey(t *testing.T) {
	app, _ := setupTestApp(t)

	for _, route := range []struct{ method, path string }{
		{"GET", "/objects/info"},
		{"GET", "/objects/content"},
		{"PUT", "/objects/content"},
		{"DELETE", "/objects"},
	} {
		resp, err := app.Test(httptest.NewRequest(route.method, route.path, strings.NewReader("x")))
		require.NoError(t, err)
		assert.Equal(t, 400, resp.StatusCode, "%s %s", route.method, route.path)
		assert.NotEmpty(t, decode(t, resp.Body)["error"])
	}
}

func TestHandleInfo(t *testing.T) {
	app, _ := setupTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/objects/info?key=missing", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/objects/info", nil))
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)

	_, err = app.Test(httptest.NewRequest("PUT", "/objects/content?key=k", strings.NewReader("abc")))
	require.NoError(t, err)

	resp, err = app.Test(httptest.NewRequest("GET", "/objects/info?key=k", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	body := decode(t, resp.Body)
	assert.Equal(t, float64(3), body["size"])
	assert.NotEmpty(t, body["lastmodified"])
}

func TestHandleDelete(t *testing.T) {
	app, _ := setupTestApp(t)

	resp, err := app.Test(httptest.NewRequest("DELETE", "/objects?key=missing", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "deleted", decode(t, resp.Body)["status"])
}

func TestHandleMove(t *testing.T) {
	move := func(t *testing.T, app *fiber.App, body MoveRequest) *moveResponse {
		raw, _ := json.Marshal(body)
		req := httptest.NewRequest("POST", "/objects/move", bytes.NewReader(raw))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		return &moveResponse{status: resp.StatusCode, body: decode(t, resp.Body)}
	}

	t.Run("Success", func(t *testing.T) {
		app, mem := setupTestApp(t)
		_, err := app.Test(httptest.NewRequest("PUT", "/objects/content?key=src", strings.NewReader("x")))
		require.NoError(t, err)

		res := move(t, app, MoveRequest{Source: "src", Target: "dst", Trashed: true})
		assert.Equal(t, 200, res.status)
		assert.Equal(t, "moved", res.body["outcome"])

		opts, ok := mem.ObjectOptions("test-bucket", "dst")
		require.True(t, ok)
		assert.Equal(t, "REDUCED_REDUNDANCY", opts.StorageClass)
	})

	t.Run("MissingSource", func(t *testing.T) {
		app, _ := setupTestApp(t)
		res := move(t, app, MoveRequest{Source: "nope", Target: "dst"})
		assert.Equal(t, 404, res.status)
		assert.Equal(t, "copy_failed", res.body["outcome"])
	})

	t.Run("DeleteFails", func(t *testing.T) {
		app, mem := setupTestApp(t)
		_, err := app.Test(httptest.NewRequest("PUT", "/objects/content?key=src", strings.NewReader("x")))
		require.NoError(t, err)
		mem.FailOn(storage.OpRemoveObject, errors.New("denied"))

		res := move(t, app, MoveRequest{Source: "src", Target: "dst"})
		assert.Equal(t, 500, res.status)
		assert.Equal(t, "copied_but_delete_failed", res.body["outcome"])
	})

	t.Run("BadRequest", func(t *testing.T) {
		app, _ := setupTestApp(t)
		res := move(t, app, MoveRequest{Source: "src"})
		assert.Equal(t, 400, res.status)
	})
}

type moveResponse struct {
	status int
	body   map[string]any
}
