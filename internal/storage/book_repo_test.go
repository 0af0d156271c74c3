package storage

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestBookRepo_InsertNormalizesFolder(t *testing.T) {
	db := newTestDB(t)
	repo := NewBookRepo(db)

	b := &Book{
		ID:        "book-1",
		OwnerID:   "owner-a",
		Title:     "Thinking in Systems",
		Author:    "Donella Meadows",
		CreatedAt: time.Now(),
	}
	if err := repo.Insert(context.Background(), b); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	got, err := repo.GetByID(context.Background(), "owner-a", "book-1")
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.FolderID != DefaultFolderID {
		t.Errorf("GetByID() FolderID = %q, want %q", got.FolderID, DefaultFolderID)
	}
}

func TestBookRepo_GetByID_OwnerScoped(t *testing.T) {
	db := newTestDB(t)
	repo := NewBookRepo(db)

	b := &Book{
		ID:        "book-1",
		OwnerID:   "owner-a",
		Title:     "Private Library",
		Author:    "Someone",
		ISBN:      "9780000000001",
		CoverURL:  "https://covers.example.com/1.jpg",
		FolderID:  "folder-1",
		CreatedAt: time.Now(),
	}
	if err := repo.Insert(context.Background(), b); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	got, err := repo.GetByID(context.Background(), "owner-a", "book-1")
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.ISBN != b.ISBN || got.CoverURL != b.CoverURL || got.FolderID != "folder-1" {
		t.Errorf("GetByID() = %+v, want %+v", got, b)
	}

	if _, err := repo.GetByID(context.Background(), "owner-b", "book-1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetByID() foreign owner error = %v, want ErrNotFound", err)
	}
}

func TestBookRepo_GetByIDs(t *testing.T) {
	db := newTestDB(t)
	repo := NewBookRepo(db)

	now := time.Now()
	books := []*Book{
		{ID: "book-1", OwnerID: "owner-a", Title: "One", Author: "A", CreatedAt: now},
		{ID: "book-2", OwnerID: "owner-a", Title: "Two", Author: "B", CreatedAt: now},
		{ID: "book-3", OwnerID: "owner-b", Title: "Theirs", Author: "C", CreatedAt: now},
	}
	for _, b := range books {
		if err := repo.Insert(context.Background(), b); err != nil {
			t.Fatalf("Insert(%s) error = %v", b.ID, err)
		}
	}

	got, err := repo.GetByIDs(context.Background(), "owner-a", []string{"book-1", "book-2", "book-3", "missing"})
	if err != nil {
		t.Fatalf("GetByIDs() error = %v", err)
	}
	if len(got) != 2 {
		t.Errorf("GetByIDs() returned %d books, want 2", len(got))
	}
}

func TestBookRepo_ListByOwner(t *testing.T) {
	db := newTestDB(t)
	repo := NewBookRepo(db)

	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	insert := func(id string, createdAt time.Time) {
		t.Helper()
		err := repo.Insert(context.Background(), &Book{
			ID: id, OwnerID: "owner-a", Title: id, Author: "A", CreatedAt: createdAt,
		})
		if err != nil {
			t.Fatalf("Insert(%s) error = %v", id, err)
		}
	}
	insert("book-old", base)
	insert("book-new", base.Add(time.Second))

	got, err := repo.ListByOwner(context.Background(), "owner-a")
	if err != nil {
		t.Fatalf("ListByOwner() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("ListByOwner() returned %d books, want 2", len(got))
	}
	if got[0].ID != "book-new" {
		t.Errorf("ListByOwner() first = %q, want newest first", got[0].ID)
	}
}
