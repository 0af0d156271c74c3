package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	blobmocks "lumen/internal/blobstore/mocks"
	"lumen/internal/bookmeta"
	"lumen/internal/service"
	"lumen/internal/service/mocks"
	"lumen/internal/storage"
)

func TestBookService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := storage.NewBookRepo(newTestDB(t))
	svc := service.NewBookService(repo, mocks.NewMockMetadataClient(ctrl), blobmocks.NewMockStore(ctrl), mocks.NewMockTextExtractor(ctrl))

	got, err := svc.Create(context.Background(), "owner-a", service.CreateBookParams{
		Title:    "Godel, Escher, Bach",
		Author:   "Douglas Hofstadter",
		FolderID: "",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if got.FolderID != storage.DefaultFolderID {
		t.Errorf("Create() FolderID = %q, want %q", got.FolderID, storage.DefaultFolderID)
	}

	stored, err := repo.GetByID(context.Background(), "owner-a", got.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if stored.Title != "Godel, Escher, Bach" {
		t.Errorf("GetByID() Title = %q", stored.Title)
	}
}

func TestBookService_Create_MissingTitle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := storage.NewBookRepo(newTestDB(t))
	svc := service.NewBookService(repo, mocks.NewMockMetadataClient(ctrl), blobmocks.NewMockStore(ctrl), mocks.NewMockTextExtractor(ctrl))

	_, err := svc.Create(context.Background(), "owner-a", service.CreateBookParams{Author: "Anonymous"})
	if !errors.Is(err, service.ErrInvalidInput) {
		t.Errorf("Create() error = %v, want ErrInvalidInput", err)
	}
}

func TestBookService_CreateFromCover(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := storage.NewBookRepo(newTestDB(t))
	metadata := mocks.NewMockMetadataClient(ctrl)
	blobs := blobmocks.NewMockStore(ctrl)
	ocr := mocks.NewMockTextExtractor(ctrl)

	image := []byte{0xff, 0xd8}
	blobs.EXPECT().
		Put(gomock.Any(), gomock.Any(), image, "image/jpeg", gomock.Any()).
		DoAndReturn(func(_ context.Context, blobPath string, _ []byte, _ string, _ any) (string, error) {
			if !strings.HasPrefix(blobPath, "covers/owner-a/") || !strings.HasSuffix(blobPath, ".jpg") {
				t.Errorf("Put() blobPath = %q, want covers/owner-a/*.jpg", blobPath)
			}
			return "https://blobs.example.com/signed", nil
		})
	ocr.EXPECT().
		ExtractText(gomock.Any(), image).
		Return("DEEP WORK\nCal Newport", nil)
	metadata.EXPECT().
		Lookup(gomock.Any(), bookmeta.LookupParams{Title: "DEEP WORK"}).
		Return(&bookmeta.Metadata{Title: "Deep Work", Author: "Cal Newport", ISBN: "9781455586691"}, nil)

	svc := service.NewBookService(repo, metadata, blobs, ocr)

	got, err := svc.CreateFromCover(context.Background(), "owner-a", image, "")
	if err != nil {
		t.Fatalf("CreateFromCover() error = %v", err)
	}
	if got.Title != "Deep Work" || got.Author != "Cal Newport" {
		t.Errorf("CreateFromCover() = %s by %s, want catalog metadata", got.Title, got.Author)
	}
	// The catalog gave no cover image, so the stored upload stands in.
	if got.CoverURL != "https://blobs.example.com/signed" {
		t.Errorf("CreateFromCover() CoverURL = %q, want signed upload URL", got.CoverURL)
	}
}

func TestBookService_CreateFromCover_LookupFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := storage.NewBookRepo(newTestDB(t))
	metadata := mocks.NewMockMetadataClient(ctrl)
	blobs := blobmocks.NewMockStore(ctrl)
	ocr := mocks.NewMockTextExtractor(ctrl)

	blobs.EXPECT().
		Put(gomock.Any(), gomock.Any(), gomock.Any(), "image/jpeg", gomock.Any()).
		Return("https://blobs.example.com/signed", nil)
	// Cover OCR failing never fails the operation.
	ocr.EXPECT().
		ExtractText(gomock.Any(), gomock.Any()).
		Return("", errors.New("ocr unavailable"))

	svc := service.NewBookService(repo, metadata, blobs, ocr)

	got, err := svc.CreateFromCover(context.Background(), "owner-a", []byte{0x01}, "folder-1")
	if err != nil {
		t.Fatalf("CreateFromCover() error = %v", err)
	}
	if got.Title != "Unknown Book" || got.Author != "Unknown Author" {
		t.Errorf("CreateFromCover() = %s by %s, want placeholder metadata", got.Title, got.Author)
	}
	if got.FolderID != "folder-1" {
		t.Errorf("CreateFromCover() FolderID = %q, want folder-1", got.FolderID)
	}
}

func TestBookService_LookupAndCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := storage.NewBookRepo(newTestDB(t))
	metadata := mocks.NewMockMetadataClient(ctrl)

	tests := []struct {
		name      string
		params    service.LookupBookParams
		mockSetup func()
		wantErr   error
		wantTitle string
	}{
		{
			name:   "isbn match",
			params: service.LookupBookParams{ISBN: "9780140449334"},
			mockSetup: func() {
				metadata.EXPECT().
					Lookup(gomock.Any(), bookmeta.LookupParams{ISBN: "9780140449334"}).
					Return(&bookmeta.Metadata{Title: "The Odyssey", Author: "Homer"}, nil)
			},
			wantTitle: "The Odyssey",
		},
		{
			name:   "no catalog match",
			params: service.LookupBookParams{Title: "Nonexistent"},
			mockSetup: func() {
				metadata.EXPECT().
					Lookup(gomock.Any(), bookmeta.LookupParams{Title: "Nonexistent"}).
					Return(nil, nil)
			},
			wantErr: service.ErrNotFound,
		},
		{
			name:      "no parameters",
			params:    service.LookupBookParams{},
			mockSetup: func() {},
			wantErr:   service.ErrInvalidInput,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			svc := service.NewBookService(repo, metadata, blobmocks.NewMockStore(ctrl), mocks.NewMockTextExtractor(ctrl))
			got, err := svc.LookupAndCreate(context.Background(), "owner-a", tt.params)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("LookupAndCreate() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("LookupAndCreate() error = %v", err)
			}
			if got.Title != tt.wantTitle {
				t.Errorf("LookupAndCreate() Title = %q, want %q", got.Title, tt.wantTitle)
			}
		})
	}
}

func TestBookService_List_FolderFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := storage.NewBookRepo(newTestDB(t))
	svc := service.NewBookService(repo, mocks.NewMockMetadataClient(ctrl), blobmocks.NewMockStore(ctrl), mocks.NewMockTextExtractor(ctrl))

	seed := func(params service.CreateBookParams) {
		t.Helper()
		if _, err := svc.Create(context.Background(), "owner-a", params); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}
	seed(service.CreateBookParams{Title: "Unassigned"})
	seed(service.CreateBookParams{Title: "Filed", FolderID: "folder-1"})

	all, err := svc.List(context.Background(), "owner-a", nil)
	if err != nil {
		t.Fatalf("List(nil) error = %v", err)
	}
	if len(all) != 2 {
		t.Errorf("List(nil) returned %d books, want 2", len(all))
	}

	def := storage.DefaultFolderID
	unassigned, err := svc.List(context.Background(), "owner-a", &def)
	if err != nil {
		t.Fatalf("List(default) error = %v", err)
	}
	if len(unassigned) != 1 || unassigned[0].Title != "Unassigned" {
		t.Errorf("List(default) = %+v, want only the unassigned book", unassigned)
	}

	folder := "folder-1"
	filed, err := svc.List(context.Background(), "owner-a", &folder)
	if err != nil {
		t.Fatalf("List(folder-1) error = %v", err)
	}
	if len(filed) != 1 || filed[0].Title != "Filed" {
		t.Errorf("List(folder-1) = %+v, want only the filed book", filed)
	}
}

func TestBookService_GetByID_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := storage.NewBookRepo(newTestDB(t))
	svc := service.NewBookService(repo, mocks.NewMockMetadataClient(ctrl), blobmocks.NewMockStore(ctrl), mocks.NewMockTextExtractor(ctrl))

	_, err := svc.GetByID(context.Background(), "owner-a", "missing")
	if !errors.Is(err, service.ErrNotFound) {
		t.Errorf("GetByID() error = %v, want ErrNotFound", err)
	}
}
