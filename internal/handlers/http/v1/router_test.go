package v1_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gfdmit/blogdesk/config"
	"github.com/gfdmit/blogdesk/internal/auth"
	v1 "github.com/gfdmit/blogdesk/internal/handlers/http/v1"
	"github.com/gfdmit/blogdesk/internal/repository"
	"github.com/gfdmit/blogdesk/internal/repository/memory"
	"github.com/gfdmit/blogdesk/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testAPI struct {
	router *gin.Engine
	svc    *service.Service
	store  *memory.Store
	tokens *auth.TokenManager
}

type envelope struct {
	Code int             `json:"code"`
	Data json.RawMessage `json:"data"`
	Msg  string          `json:"msg"`
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := memory.New()
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	svc := service.New(store, tokens)
	router := v1.New(svc, tokens, config.CORS{AllowedOrigins: []string{"*"}})
	return &testAPI{router: router, svc: svc, store: store, tokens: tokens}
}

func (api *testAPI) do(t *testing.T, method, path, token string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	api.router.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	// the envelope code always mirrors the HTTP status
	assert.Equal(t, rec.Code, env.Code)
	return rec, env
}

func (api *testAPI) registerAndLogin(t *testing.T, username string) string {
	t.Helper()
	_, env := api.do(t, http.MethodPost, "/api/register", "", gin.H{
		"username": username, "password": "s3cret",
	})
	require.Equal(t, http.StatusCreated, env.Code)

	_, env = api.do(t, http.MethodPost, "/api/login", "", gin.H{
		"username": username, "password": "s3cret",
	})
	require.Equal(t, http.StatusOK, env.Code)

	var data struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.NotEmpty(t, data.Token)
	return data.Token
}

func TestWelcome(t *testing.T) {
	api := newTestAPI(t)

	rec, env := api.do(t, http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "success", env.Msg)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestAuthFlow(t *testing.T) {
	api := newTestAPI(t)
	token := api.registerAndLogin(t, "alice")

	_, env := api.do(t, http.MethodGet, "/api/me", token, nil)
	assert.Equal(t, http.StatusOK, env.Code)

	var me struct {
		Username string `json:"username"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &me))
	assert.Equal(t, "alice", me.Username)

	rec, env := api.do(t, http.MethodGet, "/api/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "not authenticated", env.Msg)

	rec, _ = api.do(t, http.MethodGet, "/api/me", "garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRegisterConflict(t *testing.T) {
	api := newTestAPI(t)
	api.registerAndLogin(t, "alice")

	rec, env := api.do(t, http.MethodPost, "/api/register", "", gin.H{
		"username": "alice", "password": "other",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "username already exists", env.Msg)
}

func TestLoginBadCredentials(t *testing.T) {
	api := newTestAPI(t)
	api.registerAndLogin(t, "alice")

	rec, env := api.do(t, http.MethodPost, "/api/login", "", gin.H{
		"username": "alice", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "invalid username or password", env.Msg)
}

func TestPostLifecycle(t *testing.T) {
	api := newTestAPI(t)
	token := api.registerAndLogin(t, "alice")

	rec, _ := api.do(t, http.MethodPost, "/api/posts", "", gin.H{
		"title": "nope", "content": "x",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	_, env := api.do(t, http.MethodPost, "/api/posts", token, gin.H{
		"title": "hello", "content": "world",
	})
	require.Equal(t, http.StatusCreated, env.Code)

	var post struct {
		ID     int    `json:"id"`
		Author string `json:"author"`
		Date   string `json:"date"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &post))
	assert.Equal(t, "alice", post.Author)
	assert.Equal(t, time.Now().Format(time.DateOnly), post.Date)

	_, env = api.do(t, http.MethodGet, "/api/posts", "", nil)
	require.Equal(t, http.StatusOK, env.Code)

	var list struct {
		Page  int               `json:"page"`
		Size  int               `json:"size"`
		Total int               `json:"total"`
		Posts []json.RawMessage `json:"posts"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Equal(t, 1, list.Page)
	assert.Equal(t, 10, list.Size)
	assert.Equal(t, 1, list.Total)
	assert.Len(t, list.Posts, 1)

	rec, env = api.do(t, http.MethodGet, "/api/posts/999", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "post not found", env.Msg)

	rec, env = api.do(t, http.MethodGet, "/api/posts/zero", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid id", env.Msg)
}

func TestPostOwnershipForbidden(t *testing.T) {
	api := newTestAPI(t)
	aliceToken := api.registerAndLogin(t, "alice")
	bobToken := api.registerAndLogin(t, "bob")

	_, env := api.do(t, http.MethodPost, "/api/posts", aliceToken, gin.H{
		"title": "mine", "content": "x",
	})
	require.Equal(t, http.StatusCreated, env.Code)
	var post struct {
		ID int `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &post))

	rec, env := api.do(t, http.MethodDelete, "/api/posts/"+itoa(post.ID), bobToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "not authorized", env.Msg)
}

func TestViewAndLikeCounters(t *testing.T) {
	api := newTestAPI(t)
	token := api.registerAndLogin(t, "alice")

	_, env := api.do(t, http.MethodPost, "/api/posts", token, gin.H{
		"title": "counted", "content": "x",
	})
	require.Equal(t, http.StatusCreated, env.Code)
	var post struct {
		ID int `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &post))

	path := "/api/posts/" + itoa(post.ID)
	for i := 0; i < 3; i++ {
		rec, _ := api.do(t, http.MethodPost, path+"/view", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)
	}
	rec, _ := api.do(t, http.MethodPost, path+"/like", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	_, env = api.do(t, http.MethodGet, path, "", nil)
	var got struct {
		Views int `json:"views"`
		Likes int `json:"likes"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, 3, got.Views)
	assert.Equal(t, 1, got.Likes)
}

func TestCategoryConflictAndInUse(t *testing.T) {
	api := newTestAPI(t)
	token := api.registerAndLogin(t, "alice")

	_, env := api.do(t, http.MethodPost, "/api/categories", token, gin.H{"name": "go"})
	require.Equal(t, http.StatusCreated, env.Code)
	var category struct {
		ID int `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &category))

	rec, env := api.do(t, http.MethodPost, "/api/categories", token, gin.H{"name": "go"})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "category name already exists", env.Msg)

	_, env = api.do(t, http.MethodPost, "/api/posts", token, gin.H{
		"title": "tagged", "content": "x", "category_id": category.ID,
	})
	require.Equal(t, http.StatusCreated, env.Code)

	rec, env = api.do(t, http.MethodDelete, "/api/categories/"+itoa(category.ID), token, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "category has posts, cannot delete", env.Msg)
}

func TestAnonymousComment(t *testing.T) {
	api := newTestAPI(t)
	token := api.registerAndLogin(t, "alice")

	_, env := api.do(t, http.MethodPost, "/api/posts", token, gin.H{
		"title": "open thread", "content": "x",
	})
	require.Equal(t, http.StatusCreated, env.Code)
	var post struct {
		ID int `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &post))

	_, env = api.do(t, http.MethodPost, "/api/comments", "", gin.H{
		"post_id": post.ID, "author_name": "drive-by", "content": "hi",
	})
	require.Equal(t, http.StatusCreated, env.Code)
	var comment struct {
		ID int `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &comment))

	// anonymous comments belong to nobody, so even a logged-in user gets 403
	rec, _ := api.do(t, http.MethodDelete, "/api/comments/"+itoa(comment.ID), token, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestSiteInfo(t *testing.T) {
	api := newTestAPI(t)

	rec, env := api.do(t, http.MethodGet, "/api/siteinfo", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "site info not found", env.Msg)

	api.store.SeedSiteInfo(repository.SiteInfo{Title: "Blogdesk"})
	_, env = api.do(t, http.MethodGet, "/api/siteinfo", "", nil)
	require.Equal(t, http.StatusOK, env.Code)
	var info struct {
		Title string `json:"title"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &info))
	assert.Equal(t, "Blogdesk", info.Title)
}

func TestTicketValidation(t *testing.T) {
	api := newTestAPI(t)
	token := api.registerAndLogin(t, "alice")

	rec, _ := api.do(t, http.MethodPost, "/api/tickets", token, gin.H{
		"title": "broken", "description": "details", "status": "bogus",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	_, env := api.do(t, http.MethodPost, "/api/tickets", token, gin.H{
		"title": "broken", "description": "details",
	})
	require.Equal(t, http.StatusCreated, env.Code)
	var ticket struct {
		Status   string `json:"status"`
		Priority string `json:"priority"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &ticket))
	assert.Equal(t, "open", ticket.Status)
	assert.Equal(t, "medium", ticket.Priority)
}

func TestQuickReplyUse(t *testing.T) {
	api := newTestAPI(t)
	token := api.registerAndLogin(t, "alice")

	_, env := api.do(t, http.MethodPost, "/api/quick-replies", token, gin.H{
		"title": "greeting", "content": "hello",
	})
	require.Equal(t, http.StatusCreated, env.Code)
	var reply struct {
		ID int `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &reply))

	_, env = api.do(t, http.MethodPost, "/api/quick-replies/"+itoa(reply.ID)+"/use", token, nil)
	require.Equal(t, http.StatusOK, env.Code)
	var used struct {
		UseCount int `json:"use_count"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &used))
	assert.Equal(t, 1, used.UseCount)
}

func TestOverviewEndpoints(t *testing.T) {
	api := newTestAPI(t)
	token := api.registerAndLogin(t, "alice")

	_, env := api.do(t, http.MethodPost, "/api/tickets", token, gin.H{
		"title": "one", "description": "x", "priority": "urgent",
	})
	require.Equal(t, http.StatusCreated, env.Code)

	_, env = api.do(t, http.MethodGet, "/api/overview/tickets", "", nil)
	require.Equal(t, http.StatusOK, env.Code)
	var overview struct {
		Total          int `json:"total"`
		Open           int `json:"open"`
		UrgentPriority int `json:"urgent_priority"`
		Today          int `json:"today"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &overview))
	assert.Equal(t, 1, overview.Total)
	assert.Equal(t, 1, overview.Open)
	assert.Equal(t, 1, overview.UrgentPriority)
	assert.Equal(t, 1, overview.Today)

	_, env = api.do(t, http.MethodGet, "/api/overview/ticket-trend?days=7", "", nil)
	require.Equal(t, http.StatusOK, env.Code)
	var trend struct {
		Days  int               `json:"days"`
		Trend []json.RawMessage `json:"trend"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &trend))
	assert.Equal(t, 7, trend.Days)
	assert.Len(t, trend.Trend, 1)

	_, env = api.do(t, http.MethodGet, "/api/overview/status-distribution", "", nil)
	require.Equal(t, http.StatusOK, env.Code)
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
