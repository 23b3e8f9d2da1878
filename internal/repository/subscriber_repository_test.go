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

func TestSubscriberRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSubscriberRepository(db)

	now := time.Now()
	s := &models.Subscriber{
		ID:             uuid.New(),
		Email:          "listener@example.com",
		PrivacyConsent: true,
		SubscribedAt:   now,
		CreatedAt:      now,
	}

	mock.ExpectQuery(`INSERT INTO subscribers`).
		WillReturnRows(sqlmock.NewRows([]string{"subscribed_at", "created_at"}).AddRow(now, now))

	if err := repo.Create(s); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

// A duplicate email is reported as ErrConflict so the handler can answer
// "already subscribed" instead of failing.
func TestSubscriberRepository_Create_DuplicateEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSubscriberRepository(db)

	s := &models.Subscriber{
		ID:             uuid.New(),
		Email:          "listener@example.com",
		PrivacyConsent: true,
	}

	mock.ExpectQuery(`INSERT INTO subscribers`).
		WillReturnError(&pq.Error{Code: "23505", Constraint: "subscribers_email_key"})

	err := repo.Create(s)
	if !errors.Is(err, database.ErrConflict) {
		t.Errorf("Create() error = %v, want ErrConflict", err)
	}
}

func TestSubscriberRepository_List(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSubscriberRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "email", "mobile", "marketing_consent", "privacy_consent", "subscribed_at", "created_at"}).
		AddRow(uuid.New(), "second@example.com", nil, false, true, now, now).
		AddRow(uuid.New(), "first@example.com", "+44 7700 900123", true, true, now.Add(-time.Hour), now.Add(-time.Hour))

	mock.ExpectQuery(`SELECT (.+) FROM subscribers ORDER BY created_at DESC`).
		WillReturnRows(rows)

	subscribers, err := repo.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(subscribers) != 2 {
		t.Fatalf("List() returned %d subscribers, want 2", len(subscribers))
	}
	if subscribers[0].Email != "second@example.com" {
		t.Errorf("first subscriber = %q, want the newest", subscribers[0].Email)
	}
	if subscribers[1].Mobile == nil || *subscribers[1].Mobile != "+44 7700 900123" {
		t.Errorf("mobile = %v, want the stored number", subscribers[1].Mobile)
	}
}

func TestSubscriberRepository_ListSignupTimes(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSubscriberRepository(db)

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"created_at"}).
		AddRow(base).
		AddRow(base.Add(time.Hour)).
		AddRow(base.Add(48 * time.Hour))

	mock.ExpectQuery(`SELECT created_at FROM subscribers ORDER BY created_at ASC`).
		WillReturnRows(rows)

	times, err := repo.ListSignupTimes()
	if err != nil {
		t.Fatalf("ListSignupTimes() error = %v", err)
	}
	if len(times) != 3 {
		t.Fatalf("got %d times, want 3", len(times))
	}
	if !times[0].Before(times[2]) {
		t.Error("signup times should be oldest first")
	}
}

func TestSubscriberRepository_CountSince(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSubscriberRepository(db)

	since := time.Now().AddDate(0, 0, -30)
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM subscribers WHERE created_at >= \$1`).
		WithArgs(since).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	count, err := repo.CountSince(since)
	if err != nil {
		t.Fatalf("CountSince() error = %v", err)
	}
	if count != 7 {
		t.Errorf("CountSince() = %d, want 7", count)
	}
}
