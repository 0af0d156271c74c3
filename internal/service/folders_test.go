package service_test

import (
	"context"
	"errors"
	"testing"

	"lumen/internal/service"
	"lumen/internal/storage"
)

func TestFolderService_Create(t *testing.T) {
	repo := storage.NewFolderRepo(newTestDB(t))
	svc := service.NewFolderService(repo)

	tests := []struct {
		name     string
		input    string
		wantName string
	}{
		{name: "explicit name", input: "Philosophy", wantName: "Philosophy"},
		{name: "blank defaults", input: "   ", wantName: "Default"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Create(context.Background(), "owner-a", tt.input)
			if err != nil {
				t.Fatalf("Create() error = %v", err)
			}
			if got.Name != tt.wantName {
				t.Errorf("Create() Name = %q, want %q", got.Name, tt.wantName)
			}

			stored, err := svc.GetByID(context.Background(), "owner-a", got.ID)
			if err != nil {
				t.Fatalf("GetByID() error = %v", err)
			}
			if stored.Name != tt.wantName {
				t.Errorf("GetByID() Name = %q, want %q", stored.Name, tt.wantName)
			}
		})
	}
}

func TestFolderService_GetByID_OwnerScoped(t *testing.T) {
	repo := storage.NewFolderRepo(newTestDB(t))
	svc := service.NewFolderService(repo)

	created, err := svc.Create(context.Background(), "owner-a", "Private")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if _, err := svc.GetByID(context.Background(), "owner-b", created.ID); !errors.Is(err, service.ErrNotFound) {
		t.Errorf("GetByID() foreign owner error = %v, want ErrNotFound", err)
	}
}

func TestFolderService_List(t *testing.T) {
	repo := storage.NewFolderRepo(newTestDB(t))
	svc := service.NewFolderService(repo)

	for _, name := range []string{"One", "Two"} {
		if _, err := svc.Create(context.Background(), "owner-a", name); err != nil {
			t.Fatalf("Create(%s) error = %v", name, err)
		}
	}

	got, err := svc.List(context.Background(), "owner-a")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(got) != 2 {
		t.Errorf("List() returned %d folders, want 2", len(got))
	}
}
