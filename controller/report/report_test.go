package report

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"signalalert/dto"
	"signalalert/model"
	"signalalert/seed"
	"signalalert/store"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var secret = []byte("test-secret")

func newDeps(t *testing.T) Deps {
	t.Helper()
	reports, err := seed.Reports()
	require.NoError(t, err)
	users := store.NewUserStore()
	for _, name := range []string{"awa", "koffi"} {
		_, err := users.Register(name, name+"@signalalert.bj", "secret", "user")
		require.NoError(t, err)
	}
	return Deps{
		Reports:  store.New(reports, store.WithImagePicker(func(model.ReportType) string { return "default.jpg" })),
		Comments: store.NewCommentStore(),
		Users:    users,
		Inbox:    store.NewNotificationStore(),
	}
}

func setupDeps(t *testing.T) (*gin.Engine, Deps) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	dto.RegisterValidations()

	deps := newDeps(t)
	router := gin.New()
	ReportController(router, deps, secret, zap.NewNop())
	return router, deps
}

func setup(t *testing.T) (*gin.Engine, *store.ReportStore, *store.NotificationStore) {
	t.Helper()
	router, deps := setupDeps(t)
	return router, deps.Reports, deps.Inbox
}

func do(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	return doAs(router, method, path, body, "")
}

func doAs(router *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

type listResponse struct {
	Reports []struct {
		ID         int    `json:"id"`
		BadgeLabel string `json:"badge_label"`
	} `json:"reports"`
	HasMore   bool `json:"has_more"`
	Total     int  `json:"total"`
	NextLimit int  `json:"next_limit"`
}

func TestListReports(t *testing.T) {
	router, _, _ := setup(t)

	tests := []struct {
		name      string
		query     string
		ids       []int
		hasMore   bool
		nextLimit int
	}{
		{"default page", "", []int{1, 2, 3}, true, 6},
		{"found", "?filter=found&limit=3", []int{4, 6}, false, 0},
		{"lost one", "?filter=lost&limit=1", []int{1}, true, 4},
		{"search", "?search=moto", []int{3}, false, 0},
		{"date range", "?start_date=2023-06-05&end_date=2023-06-12&limit=6", []int{2, 3, 4, 5}, false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(router, http.MethodGet, "/api/signalements"+tt.query, "")
			require.Equal(t, http.StatusOK, w.Code)

			var resp listResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			got := make([]int, 0, len(resp.Reports))
			for _, r := range resp.Reports {
				got = append(got, r.ID)
			}
			assert.Equal(t, tt.ids, got)
			assert.Equal(t, tt.hasMore, resp.HasMore)
			assert.Equal(t, tt.nextLimit, resp.NextLimit)
		})
	}

	t.Run("unknown filter", func(t *testing.T) {
		w := do(router, http.MethodGet, "/api/signalements?filter=bogus", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed dates", func(t *testing.T) {
		for _, q := range []string{"?start_date=15/06/2023", "?end_date=demain"} {
			w := do(router, http.MethodGet, "/api/signalements"+q, "")
			assert.Equal(t, http.StatusBadRequest, w.Code, q)
		}
	})
}

func TestReadReport(t *testing.T) {
	router, _, _ := setup(t)

	w := do(router, http.MethodGet, "/api/signalements/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	var detail map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detail))
	assert.Equal(t, "jeudi 15 juin 2023", detail["long_date"])
	assert.NotNil(t, detail["reward"])
	assert.NotNil(t, detail["mark_found"])

	assert.Equal(t, http.StatusNotFound, do(router, http.MethodGet, "/api/signalements/99", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(router, http.MethodGet, "/api/signalements/abc", "").Code)
}

func TestCreateReport(t *testing.T) {
	router, rs, _ := setup(t)

	body := `{"type":"stolen","title":"Vélo","location":"Cotonou","date":"2024-02-10",
		"category":"Véhicule","description":"Vélo rouge volé.","contact":"a@b.bj","lat":6.36,"lng":2.41}`
	w := do(router, http.MethodPost, "/api/signalements", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	require.Equal(t, 7, rs.Len())
	created := rs.All()[0]
	assert.Equal(t, 7, created.ID)
	assert.Equal(t, model.StatusActive, created.Status)
	assert.Equal(t, "default.jpg", created.Image)
	assert.True(t, created.HasLocation())
	assert.Equal(t, "2024-02-10", created.Date.Format("2006-01-02"))

	t.Run("validation failure leaves the store untouched", func(t *testing.T) {
		bad := []string{
			`{"type":"stolen","title":"Vélo"}`,
			`{"type":"found","title":"x","location":"x","date":"2024-02-10","category":"x","description":"x","contact":"x"}`,
			`{"type":"lost","title":"x","location":"x","date":"10/02/2024","category":"x","description":"x","contact":"x"}`,
			`{"type":"lost","title":"x","location":"x","date":"2024-02-10","category":"x","description":"x","contact":"x","lat":123}`,
		}
		for _, b := range bad {
			w := do(router, http.MethodPost, "/api/signalements", b)
			assert.Equal(t, http.StatusBadRequest, w.Code, b)
		}
		assert.Equal(t, 7, rs.Len())
	})
}

func TestMarkFound(t *testing.T) {
	router, rs, inbox := setup(t)

	w := do(router, http.MethodPut, "/api/signalements/1/found", "")
	assert.Equal(t, http.StatusOK, w.Code)
	r, _ := rs.Get(1)
	assert.Equal(t, model.StatusFound, r.Status)

	t.Run("unknown id is silent", func(t *testing.T) {
		before := rs.All()
		w := do(router, http.MethodPut, "/api/signalements/99/found", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, before, rs.All())
	})

	t.Run("twice is still found", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, do(router, http.MethodPut, "/api/signalements/1/found", "").Code)
		r, _ := rs.Get(1)
		assert.Equal(t, model.StatusFound, r.Status)
		assert.Empty(t, inbox.ForUser(r.UserID))
	})
}

func token(t *testing.T, userID uint) string {
	t.Helper()
	claims := jwt.MapClaims{"userId": userID, "exp": time.Now().Add(time.Hour).Unix()}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	require.NoError(t, err)
	return s
}

func TestCreateComment(t *testing.T) {
	router, deps := setupDeps(t)
	authored := deps.Reports.Add(context.Background(), model.Report{Type: model.TypeLost, Title: "Clés", UserID: 1})
	path := "/api/signalements/" + strconv.Itoa(authored.ID) + "/comments"

	t.Run("requires a token", func(t *testing.T) {
		w := do(router, http.MethodPost, path, `{"comment_content":"Vu au marché"}`)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Empty(t, deps.Comments.ForReport(authored.ID))
	})

	t.Run("empty comment is rejected", func(t *testing.T) {
		for _, body := range []string{`{}`, `{"comment_content":""}`, `{"comment_content":"   "}`} {
			w := doAs(router, http.MethodPost, path, body, token(t, 2))
			assert.Equal(t, http.StatusBadRequest, w.Code, body)
		}
		assert.Empty(t, deps.Comments.ForReport(authored.ID))
		assert.Empty(t, deps.Inbox.ForUser(1))
	})

	t.Run("unknown report", func(t *testing.T) {
		w := doAs(router, http.MethodPost, "/api/signalements/99/comments", `{"comment_content":"x"}`, token(t, 2))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("other user notifies the author", func(t *testing.T) {
		w := doAs(router, http.MethodPost, path, `{"comment_content":"Vu au marché"}`, token(t, 2))
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		ns := deps.Inbox.ForUser(1)
		require.Len(t, ns, 1)
		assert.Equal(t, "koffi a commenté votre signalement : \"Clés\"", ns[0].Title)
		assert.Equal(t, "Vu au marché", ns[0].Content)
		assert.Equal(t, authored.ID, ns[0].RelatedID)
	})

	t.Run("author commenting own report is not notified", func(t *testing.T) {
		w := doAs(router, http.MethodPost, path, `{"comment_content":"Toujours perdu"}`, token(t, 1))
		require.Equal(t, http.StatusCreated, w.Code)
		assert.Len(t, deps.Inbox.ForUser(1), 1)
	})

	t.Run("detail lists comments newest first", func(t *testing.T) {
		w := do(router, http.MethodGet, "/api/signalements/"+strconv.Itoa(authored.ID), "")
		require.Equal(t, http.StatusOK, w.Code)
		var detail struct {
			Comments []struct {
				Author  string `json:"author"`
				Content string `json:"content"`
			} `json:"comments"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detail))
		require.Len(t, detail.Comments, 2)
		assert.Equal(t, "Toujours perdu", detail.Comments[0].Content)
		assert.Equal(t, "awa", detail.Comments[0].Author)
		assert.Equal(t, "koffi", detail.Comments[1].Author)
	})
}

func TestShareAndStats(t *testing.T) {
	router, _, _ := setup(t)

	w := do(router, http.MethodPost, "/api/signalements/2/share", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "simulation")

	w = do(router, http.MethodGet, "/api/stats", "")
	require.Equal(t, http.StatusOK, w.Code)
	var stats store.Stats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, 6, stats.Total)
	assert.Equal(t, 2, stats.Found)
}

func TestReadLocations(t *testing.T) {
	router, _, _ := setup(t)

	w := do(router, http.MethodGet, "/api/signalements/locations", "")
	require.Equal(t, http.StatusOK, w.Code)
	var locations []dto.LocationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &locations))
	require.Len(t, locations, 3)
	assert.Equal(t, 1, locations[0].ID)
	assert.Equal(t, "lost", locations[0].Type)
}
