package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/noplanb/backend/internal/database"
	"github.com/noplanb/backend/internal/models"
	"github.com/noplanb/backend/internal/repository"
)

var episodeTestColumns = []string{
	"id", "title", "description", "guest", "spotify_link", "youtube_link",
	"apple_link", "amazon_link", "tags", "thumbnail_url", "duration",
	"publish_date", "featured", "created_at", "updated_at",
}

func setupEpisodeRouter(db *database.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewEpisodeHandler(
		repository.NewEpisodeRepository(db),
		repository.NewActivityRepository(db),
		nil,
	)
	router := gin.New()
	router.GET("/episodes", handler.List)
	router.POST("/episodes", handler.Create)
	router.PUT("/episodes/:id", handler.Update)
	router.DELETE("/episodes/:id", handler.Delete)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("failed to marshal payload: %v", err)
		}
		body = bytes.NewReader(b)
	} else {
		body = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestEpisodeCreate(t *testing.T) {
	db, mock := newMockDB(t)
	router := setupEpisodeRouter(db)

	now := time.Now()
	mock.ExpectQuery(`INSERT INTO episodes`).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	w := doJSON(t, router, http.MethodPost, "/episodes", gin.H{
		"title":        "Episode 1",
		"guest":        "Jane Doe",
		"publish_date": "2025-03-14",
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (body: %s)", w.Code, w.Body.String())
	}
	var episode models.Episode
	if err := json.Unmarshal(w.Body.Bytes(), &episode); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if episode.Title != "Episode 1" {
		t.Errorf("title = %q, want Episode 1", episode.Title)
	}
	if episode.ID == uuid.Nil {
		t.Error("created episode should carry a generated id")
	}
}

func TestEpisodeCreate_ValidationFailure(t *testing.T) {
	db, _ := newMockDB(t)
	router := setupEpisodeRouter(db)

	w := doJSON(t, router, http.MethodPost, "/episodes", gin.H{
		"title":        "Episode 1",
		"spotify_link": "not-a-url",
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 (body: %s)", w.Code, w.Body.String())
	}
	var resp map[string]string
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["error"] != "spotify_link must be a valid URL" {
		t.Errorf("error = %q, want the spotify_link message", resp["error"])
	}
}

func TestEpisodeUpdate_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	router := setupEpisodeRouter(db)

	mock.ExpectQuery(`UPDATE episodes`).
		WillReturnRows(sqlmock.NewRows([]string{"updated_at"}))

	w := doJSON(t, router, http.MethodPut, "/episodes/"+uuid.NewString(), gin.H{
		"title": "Renamed",
	})

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404 (body: %s)", w.Code, w.Body.String())
	}
}

func TestEpisodeUpdate(t *testing.T) {
	db, mock := newMockDB(t)
	router := setupEpisodeRouter(db)

	id := uuid.New()
	now := time.Now()
	mock.ExpectQuery(`UPDATE episodes`).
		WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow(now))
	mock.ExpectQuery(`SELECT (.+) FROM episodes WHERE id = \$1`).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(episodeTestColumns).
			AddRow(id, "Renamed", nil, nil, nil, nil, nil, nil, "{}", nil, nil, nil, false, now, now))

	w := doJSON(t, router, http.MethodPut, "/episodes/"+id.String(), gin.H{
		"title": "Renamed",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body: %s)", w.Code, w.Body.String())
	}
	var episode models.Episode
	json.Unmarshal(w.Body.Bytes(), &episode)
	if episode.Title != "Renamed" {
		t.Errorf("title = %q, want Renamed", episode.Title)
	}
}

func TestEpisodeUpdate_InvalidID(t *testing.T) {
	db, _ := newMockDB(t)
	router := setupEpisodeRouter(db)

	w := doJSON(t, router, http.MethodPut, "/episodes/not-a-uuid", gin.H{"title": "x"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestEpisodeDelete_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	router := setupEpisodeRouter(db)

	id := uuid.New()
	mock.ExpectExec(`DELETE FROM episodes WHERE id = \$1`).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	w := doJSON(t, router, http.MethodDelete, "/episodes/"+id.String(), nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404 (body: %s)", w.Code, w.Body.String())
	}
}

func TestEpisodeList(t *testing.T) {
	db, mock := newMockDB(t)
	router := setupEpisodeRouter(db)

	now := time.Now()
	mock.ExpectQuery(`SELECT (.+) FROM episodes ORDER BY`).
		WillReturnRows(sqlmock.NewRows(episodeTestColumns).
			AddRow(uuid.New(), "Episode 1", nil, nil, nil, nil, nil, nil, "{}", nil, nil, now, false, now, now))

	w := doJSON(t, router, http.MethodGet, "/episodes", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body: %s)", w.Code, w.Body.String())
	}
	var resp struct {
		Episodes []models.Episode `json:"episodes"`
		Total    int              `json:"total"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Total != 1 || len(resp.Episodes) != 1 {
		t.Errorf("got %d episodes (total %d), want 1", len(resp.Episodes), resp.Total)
	}
}
