package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/emzola/scribe/config"
	"github.com/emzola/scribe/data"
	"github.com/emzola/scribe/internal/jsonlog"
	"github.com/emzola/scribe/repository/repositorytest"
	"github.com/emzola/scribe/service"
	"github.com/jellydator/ttlcache/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type response struct {
	Success bool              `json:"success"`
	Data    json.RawMessage   `json:"data"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors"`
}

type testServer struct {
	t      *testing.T
	routes http.Handler
	repo   *repositorytest.Repository
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	var cfg config.Config
	cfg.Server.Env = "testing"
	cfg.Auth.Secret = "0123456789abcdef0123456789abcdef"
	cfg.Auth.TokenTTL = time.Hour
	logger := jsonlog.New(io.Discard, jsonlog.LevelOff)
	repo := repositorytest.New()
	identities := ttlcache.New(ttlcache.WithTTL[int64, data.Identity](time.Minute))
	var wg sync.WaitGroup
	t.Cleanup(wg.Wait)
	svc := service.New(cfg, &wg, logger, repo, identities, nil)
	return &testServer{t: t, routes: New(cfg, logger, svc).Routes(), repo: repo}
}

// do issues a request and decodes the envelope of the response.
func (ts *testServer) do(method, path, body, token string) (int, response) {
	ts.t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	ts.routes.ServeHTTP(rr, req)
	assert.Equal(ts.t, "application/json", rr.Header().Get("Content-Type"))
	var res response
	require.NoError(ts.t, json.Unmarshal(rr.Body.Bytes(), &res), rr.Body.String())
	return rr.Code, res
}

func (ts *testServer) signup(email string) string {
	ts.t.Helper()
	code, res := ts.do(http.MethodPost, "/v1/auth/signup", `{"name":"Test User","email":"`+email+`","password":"pa55word"}`, "")
	require.Equal(ts.t, http.StatusCreated, code, res.Message)
	var auth struct {
		Token string `json:"token"`
	}
	require.NoError(ts.t, json.Unmarshal(res.Data, &auth))
	require.NotEmpty(ts.t, auth.Token)
	return auth.Token
}

func (ts *testServer) createPost() int64 {
	ts.t.Helper()
	code, res := ts.do(http.MethodPost, "/v1/posts", `{"title":"Hello","content":"# Hello\n\nworld"}`, "")
	require.Equal(ts.t, http.StatusCreated, code, res.Message)
	var post data.Post
	require.NoError(ts.t, json.Unmarshal(res.Data, &post))
	return post.ID
}

func decodeComment(t *testing.T, res response) data.Comment {
	t.Helper()
	var comment data.Comment
	require.NoError(t, json.Unmarshal(res.Data, &comment))
	return comment
}

func TestHealthcheck(t *testing.T) {
	ts := newTestServer(t)

	code, res := ts.do(http.MethodGet, "/v1/healthcheck", "", "")

	assert.Equal(t, http.StatusOK, code)
	assert.True(t, res.Success)
	assert.JSONEq(t, `{"status":"available","environment":"testing","version":"1.0.0"}`, string(res.Data))
}

func TestNotFoundRoute(t *testing.T) {
	ts := newTestServer(t)

	code, res := ts.do(http.MethodGet, "/v1/nothing", "", "")

	assert.Equal(t, http.StatusNotFound, code)
	assert.False(t, res.Success)
	assert.NotEmpty(t, res.Message)
}

func TestSwaggerDocument(t *testing.T) {
	ts := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/spec", nil)
	rr := httptest.NewRecorder()

	ts.routes.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var doc struct {
		Paths       map[string]map[string]json.RawMessage `json:"paths"`
		Definitions map[string]struct {
			Properties map[string]json.RawMessage `json:"properties"`
		} `json:"definitions"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &doc))
	for _, method := range []string{"get", "put", "delete"} {
		assert.Contains(t, doc.Paths["/v1/posts/{postId}/comments/{commentId}"], method)
	}
	assert.Contains(t, doc.Definitions["dto.CreateCommentRequestBody"].Properties, "parentComment")
	assert.Contains(t, doc.Definitions["data.Comment"].Properties, "isEdited")
}
