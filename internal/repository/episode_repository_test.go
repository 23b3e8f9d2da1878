package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/noplanb/backend/internal/database"
	"github.com/noplanb/backend/internal/models"
)

func newMockDB(t *testing.T) (*database.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	t.Cleanup(func() { mockDB.Close() })
	return &database.DB{DB: mockDB}, mock
}

var episodeTestColumns = []string{
	"id", "title", "description", "guest", "spotify_link", "youtube_link",
	"apple_link", "amazon_link", "tags", "thumbnail_url", "duration",
	"publish_date", "featured", "created_at", "updated_at",
}

func TestEpisodeRepository_List(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEpisodeRepository(db)

	now := time.Now()
	id1 := uuid.New()
	id2 := uuid.New()
	rows := sqlmock.NewRows(episodeTestColumns).
		AddRow(id1, "Episode 2", "Newer", nil, nil, nil, nil, nil, "{mindset,business}", nil, nil, now, true, now, now).
		AddRow(id2, "Episode 1", nil, "Jane Doe", nil, nil, nil, nil, "{}", nil, nil, now.Add(-24*time.Hour), false, now, now)

	mock.ExpectQuery(`SELECT (.+) FROM episodes ORDER BY publish_date DESC NULLS LAST, created_at DESC`).
		WillReturnRows(rows)

	episodes, err := repo.List(0, false)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(episodes) != 2 {
		t.Fatalf("List() returned %d episodes, want 2", len(episodes))
	}
	if episodes[0].Title != "Episode 2" {
		t.Errorf("first episode = %q, want the newest", episodes[0].Title)
	}
	if len(episodes[0].Tags) != 2 || episodes[0].Tags[0] != "mindset" {
		t.Errorf("tags = %v, want [mindset business]", episodes[0].Tags)
	}
	if episodes[1].Guest == nil || *episodes[1].Guest != "Jane Doe" {
		t.Errorf("guest = %v, want Jane Doe", episodes[1].Guest)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestEpisodeRepository_ListFeaturedWithLimit(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEpisodeRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows(episodeTestColumns).
		AddRow(uuid.New(), "Featured", nil, nil, nil, nil, nil, nil, "{}", nil, nil, now, true, now, now)

	mock.ExpectQuery(`SELECT (.+) FROM episodes WHERE featured = true ORDER BY (.+) LIMIT \$1`).
		WithArgs(3).
		WillReturnRows(rows)

	episodes, err := repo.List(3, true)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(episodes) != 1 || !episodes[0].Featured {
		t.Errorf("expected one featured episode, got %+v", episodes)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestEpisodeRepository_GetByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEpisodeRepository(db)

	id := uuid.New()
	mock.ExpectQuery(`SELECT (.+) FROM episodes WHERE id = \$1`).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(episodeTestColumns))

	_, err := repo.GetByID(id)
	if !errors.Is(err, database.ErrNotFound) {
		t.Errorf("GetByID() error = %v, want ErrNotFound", err)
	}
}

func TestEpisodeRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEpisodeRepository(db)

	now := time.Now()
	e := &models.Episode{
		ID:        uuid.New(),
		Title:     "Episode 1",
		Tags:      []string{"mindset"},
		CreatedAt: now,
		UpdatedAt: now,
	}

	mock.ExpectQuery(`INSERT INTO episodes`).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	if err := repo.Create(e); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestEpisodeRepository_Update_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEpisodeRepository(db)

	e := &models.Episode{ID: uuid.New(), Title: "Ghost"}
	mock.ExpectQuery(`UPDATE episodes`).
		WillReturnRows(sqlmock.NewRows([]string{"updated_at"}))

	err := repo.Update(e)
	if !errors.Is(err, database.ErrNotFound) {
		t.Errorf("Update() error = %v, want ErrNotFound", err)
	}
}

func TestEpisodeRepository_Delete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEpisodeRepository(db)

	id := uuid.New()
	mock.ExpectExec(`DELETE FROM episodes WHERE id = \$1`).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Delete(id); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
}

func TestEpisodeRepository_Delete_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEpisodeRepository(db)

	id := uuid.New()
	mock.ExpectExec(`DELETE FROM episodes WHERE id = \$1`).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(id)
	if !errors.Is(err, database.ErrNotFound) {
		t.Errorf("Delete() error = %v, want ErrNotFound", err)
	}
}

func TestEpisodeRepository_Create_Conflict(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEpisodeRepository(db)

	e := &models.Episode{ID: uuid.New(), Title: "Duplicate"}
	mock.ExpectQuery(`INSERT INTO episodes`).
		WillReturnError(&pq.Error{Code: "23505"})

	err := repo.Create(e)
	if !errors.Is(err, database.ErrConflict) {
		t.Errorf("Create() error = %v, want ErrConflict", err)
	}
}
