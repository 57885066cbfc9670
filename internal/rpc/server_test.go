package rpc

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daniilsolovey/truck-portal/internal/auth"
	"github.com/daniilsolovey/truck-portal/internal/db"
	"github.com/daniilsolovey/truck-portal/internal/portal"
)

const (
	testSecret  = "rpc-test-secret"
	adminOpenID = "owner"
	tokenHeader = "X-Test-Token"
)

// stubUsers signs in every caller without storage.
type stubUsers struct{}

func (stubUsers) UpsertSession(_ context.Context, in portal.SignIn) (*portal.User, error) {
	u := &portal.User{}
	u.ID = 7
	u.OpenID = in.OpenID
	u.Name = &in.Name
	u.Role = db.RoleUser
	if in.Admin {
		u.Role = db.RoleAdmin
	}
	return u, nil
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type testServer struct {
	handler  http.Handler
	sessions *auth.Sessions
}

// newTestServer wires the rpc server to a database that cannot be reached.
func newTestServer(t *testing.T, degradeReads bool) *testServer {
	t.Helper()
	return newTestServerWithUsers(t, degradeReads, stubUsers{})
}

// newTestServerWithUsers records sign-ins in users, or in the unreachable database when users is nil.
func newTestServerWithUsers(t *testing.T, degradeReads bool, users auth.UserStore) *testServer {
	t.Helper()

	conn := pg.Connect(&pg.Options{
		Addr:        "127.0.0.1:1",
		User:        "nobody",
		Database:    "nowhere",
		DialTimeout: 200 * time.Millisecond,
		MaxRetries:  0,
		PoolSize:    1,
	})
	t.Cleanup(func() { _ = conn.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	manager := portal.NewManager(db.New(conn), logger, degradeReads)
	if users == nil {
		users = manager
	}
	sessions := auth.NewSessions(testSecret, time.Hour)
	authn := auth.NewAuthenticator(sessions, auth.NopRevoker{}, users, adminOpenID, logger)
	srv := New(logger, manager, authn)

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session := auth.NewSession(r.Header.Get(tokenHeader), auth.DefaultCookieName, false, w)
		srv.ServeHTTP(w, r.WithContext(auth.WithSession(r.Context(), session)))
	})

	return &testServer{handler: handler, sessions: sessions}
}

func (ts *testServer) token(t *testing.T, openID string) string {
	t.Helper()
	token, err := ts.sessions.Issue(openID, "Test "+openID)
	require.NoError(t, err)
	return token
}

func (ts *testServer) call(t *testing.T, token, method, params string) (rpcResponse, *httptest.ResponseRecorder) {
	t.Helper()

	if params == "" {
		params = "{}"
	}
	body := `{"jsonrpc":"2.0","id":1,"method":"` + method + `","params":` + params + `}`

	req := httptest.NewRequest(http.MethodPost, "/v1/rpc/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set(tokenHeader, token)
	}

	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)

	var resp rpcResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), rec.Body.String())
	return resp, rec
}

func errorCode(t *testing.T, resp rpcResponse) int {
	t.Helper()
	require.NotNil(t, resp.Error, "expected an error, got result %s", resp.Result)
	return resp.Error.Code
}

func TestValidation(t *testing.T) {
	ts := newTestServer(t, false)

	tests := []struct {
		name    string
		method  string
		params  string
		message string
	}{
		{"limit zero", "jobs.getJobs", `{"filter":{"limit":0}}`, "limit"},
		{"limit too large", "academy.getCourses", `{"filter":{"limit":101}}`, "limit"},
		{"negative offset", "schools.getSchools", `{"filter":{"offset":-1}}`, "offset"},
		{"unknown region", "jobs.getJobs", `{"filter":{"region":"asia"}}`, "region"},
		{"unknown level", "academy.getCourses", `{"filter":{"level":"guru"}}`, "level"},
		{"unknown language", "knowledge.getArticles", `{"filter":{"lang":"xx"}}`, "lang"},
		{"price range", "marketplace.getListings", `{"filter":{"minPrice":500,"maxPrice":100}}`, "minPrice"},
		{"long search", "mechanics.getLessons", `{"filter":{"search":"` + strings.Repeat("a", 201) + `"}}`, "search"},
		{"bad id", "jobs.getJobById", `{"id":0}`, "id"},
		{"bad category", "academy.getCourses", `{"filter":{"categoryId":-3}}`, "categoryId"},
		{"license region", "licenses.getTypes", `{"region":"mars"}`, "region"},
		{"school id", "schools.getPrograms", `{"schoolId":0}`, "schoolId"},
		{"filter outside filter object", "jobs.getJobs", `{"region":"europe"}`, "region"},
		{"undeclared param", "jobs.getJobById", `{"id":1,"locale":"de"}`, "locale"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, _ := ts.call(t, "", tt.method, tt.params)
			assert.Equal(t, http.StatusBadRequest, errorCode(t, resp))
			assert.True(t, strings.HasPrefix(resp.Error.Message, tt.message+":"), resp.Error.Message)
		})
	}
}

func TestCreateListingValidation(t *testing.T) {
	ts := newTestServer(t, false)
	token := ts.token(t, "seller")

	valid := ListingInput{
		CategoryID:    1,
		TitleEn:       "Volvo FH16 750",
		DescriptionEn: "Well maintained tractor unit, full service history.",
		Price:         89000,
		Currency:      "eur",
		Condition:     "good",
		Location:      "Hamburg",
		Country:       "Germany",
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		modify func(*ListingInput)
		field  string
	}{
		{"short title", func(in *ListingInput) { in.TitleEn = "Vol" }, "titleEn"},
		{"short description", func(in *ListingInput) { in.DescriptionEn = "too short" }, "descriptionEn"},
		{"zero price", func(in *ListingInput) { in.Price = 0 }, "price"},
		{"currency", func(in *ListingInput) { in.Currency = "EURO" }, "currency"},
		{"condition", func(in *ListingInput) { in.Condition = "broken" }, "condition"},
		{"category", func(in *ListingInput) { in.CategoryID = 0 }, "categoryId"},
		{"location", func(in *ListingInput) { in.Location = "  " }, "location"},
		{"country", func(in *ListingInput) { in.Country = "" }, "country"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.modify(&in)

			params, err := json.Marshal(map[string]any{"listing": in})
			require.NoError(t, err)

			resp, _ := ts.call(t, token, "marketplace.createListing", string(params))
			assert.Equal(t, http.StatusBadRequest, errorCode(t, resp))
			assert.True(t, strings.HasPrefix(resp.Error.Message, tt.field+":"), resp.Error.Message)
		})
	}

	t.Run("model", func(t *testing.T) {
		l := valid.ToModel()
		require.NotNil(t, l.Currency)
		assert.Equal(t, "EUR", *l.Currency)
		assert.Equal(t, "Volvo FH16 750", l.TitleEn)
		require.NotNil(t, l.CategoryID)
		assert.Equal(t, 1, *l.CategoryID)
	})
}

func TestAccessPolicy(t *testing.T) {
	ts := newTestServer(t, false)

	t.Run("anonymous caller is not logged in", func(t *testing.T) {
		for _, method := range []string{"admin.getStats", "admin.getScrapingStatus", "academy.enrollCourse", "jobs.saveJob"} {
			resp, _ := ts.call(t, "", method, `{"courseId":1,"jobId":1}`)
			assert.Equal(t, http.StatusUnauthorized, errorCode(t, resp), method)
			assert.Equal(t, "not logged in", resp.Error.Message)
		}
	})

	t.Run("invalid token is anonymous", func(t *testing.T) {
		resp, _ := ts.call(t, "garbage", "admin.getStats", "")
		assert.Equal(t, http.StatusUnauthorized, errorCode(t, resp))
	})

	t.Run("user is forbidden from admin procedures", func(t *testing.T) {
		resp, _ := ts.call(t, ts.token(t, "driver"), "admin.getStats", "")
		assert.Equal(t, http.StatusForbidden, errorCode(t, resp))
		assert.Equal(t, "access denied", resp.Error.Message)
	})

	t.Run("admin reaches the handler", func(t *testing.T) {
		resp, _ := ts.call(t, ts.token(t, adminOpenID), "admin.getStats", "")
		assert.Equal(t, http.StatusServiceUnavailable, errorCode(t, resp))
	})
}

func TestAuthMe(t *testing.T) {
	ts := newTestServer(t, false)

	resp, _ := ts.call(t, "", "auth.me", "")
	require.Nil(t, resp.Error)
	assert.JSONEq(t, "null", string(resp.Result))

	resp, _ = ts.call(t, ts.token(t, "driver"), "auth.me", "")
	require.Nil(t, resp.Error)

	var user User
	require.NoError(t, json.Unmarshal(resp.Result, &user))
	assert.Equal(t, "driver", user.OpenID)
	assert.Equal(t, db.RoleUser, user.Role)
	require.NotNil(t, user.Name)
	assert.Equal(t, "Test driver", *user.Name)
}

func TestAuthLogout(t *testing.T) {
	ts := newTestServer(t, false)

	resp, rec := ts.call(t, ts.token(t, "driver"), "auth.logout", "")
	require.Nil(t, resp.Error)
	assert.JSONEq(t, `{"success":true}`, string(resp.Result))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, auth.DefaultCookieName, cookies[0].Name)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestStorageUnavailable(t *testing.T) {
	t.Run("reads report unavailable", func(t *testing.T) {
		ts := newTestServer(t, false)

		resp, _ := ts.call(t, "", "jobs.getJobs", `{"filter":{"region":"europe","limit":10}}`)
		assert.Equal(t, http.StatusServiceUnavailable, errorCode(t, resp))
		assert.Equal(t, "storage unavailable", resp.Error.Message)
	})

	t.Run("degraded reads are empty", func(t *testing.T) {
		ts := newTestServer(t, true)

		resp, _ := ts.call(t, "", "jobs.getJobs", `{"filter":{"region":"europe"}}`)
		require.Nil(t, resp.Error)
		assert.JSONEq(t, "[]", string(resp.Result))

		resp, _ = ts.call(t, "", "academy.getCourseById", `{"id":1}`)
		require.Nil(t, resp.Error)
		assert.JSONEq(t, "null", string(resp.Result))

		resp, _ = ts.call(t, "", "schools.count", "")
		require.Nil(t, resp.Error)
		assert.JSONEq(t, "0", string(resp.Result))
	})

	t.Run("writes are never degraded", func(t *testing.T) {
		ts := newTestServer(t, true)

		resp, _ := ts.call(t, ts.token(t, "driver"), "jobs.saveJob", `{"jobId":1}`)
		assert.Equal(t, http.StatusServiceUnavailable, errorCode(t, resp))
	})
}

func TestPositionalParams(t *testing.T) {
	ts := newTestServer(t, true)

	resp, _ := ts.call(t, "", "jobs.getJobById", `[1, "de"]`)
	require.Nil(t, resp.Error)
	assert.JSONEq(t, "null", string(resp.Result))
}

func TestSignInUnavailable(t *testing.T) {
	t.Run("public reads stay degraded", func(t *testing.T) {
		ts := newTestServerWithUsers(t, true, nil)
		token := ts.token(t, "driver")

		resp, _ := ts.call(t, token, "jobs.getJobs", `{"filter":{"region":"europe"}}`)
		require.Nil(t, resp.Error)
		assert.JSONEq(t, "[]", string(resp.Result))

		resp, _ = ts.call(t, token, "auth.me", "")
		require.Nil(t, resp.Error)
		assert.JSONEq(t, "null", string(resp.Result))
	})

	t.Run("logout clears the cookie", func(t *testing.T) {
		ts := newTestServerWithUsers(t, false, nil)

		resp, rec := ts.call(t, ts.token(t, "driver"), "auth.logout", "")
		require.Nil(t, resp.Error)
		assert.JSONEq(t, `{"success":true}`, string(resp.Result))

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Negative(t, cookies[0].MaxAge)
	})

	t.Run("protected procedures report unavailable", func(t *testing.T) {
		ts := newTestServerWithUsers(t, true, nil)

		for _, method := range []string{"jobs.saveJob", "admin.getStats"} {
			resp, _ := ts.call(t, ts.token(t, adminOpenID), method, `{"jobId":1}`)
			assert.Equal(t, http.StatusServiceUnavailable, errorCode(t, resp), method)
		}
	})
}
