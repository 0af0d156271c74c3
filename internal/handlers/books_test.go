package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"lumen/internal/service"
	"lumen/internal/service/mocks"
	"lumen/internal/storage"
)

func bookRouter(h *BookHandler) http.Handler {
	r := chi.NewRouter()
	r.Post("/api/books", h.Create)
	r.Post("/api/books/cover", h.CreateFromCover)
	r.Post("/api/books/lookup", h.Lookup)
	r.Get("/api/books", h.List)
	r.Get("/api/books/{id}", h.Get)
	return r
}

func TestBookHandler_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockBookService(ctrl)
	mockService.EXPECT().
		Create(gomock.Any(), gomock.Any(), service.CreateBookParams{
			Title:  "Walden",
			Author: "Thoreau",
		}).
		Return(&storage.Book{ID: "book-1", Title: "Walden"}, nil)

	body, _ := json.Marshal(CreateBookRequest{Title: "Walden", Author: "Thoreau"})
	req := httptest.NewRequest(http.MethodPost, "/api/books", bytes.NewReader(body))
	w := httptest.NewRecorder()

	bookRouter(NewBookHandler(mockService)).ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Errorf("Create() status = %d, want 201", w.Code)
	}
}

func TestBookHandler_CreateFromCover(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	image := []byte{0xff, 0xd8}

	mockService := mocks.NewMockBookService(ctrl)
	mockService.EXPECT().
		CreateFromCover(gomock.Any(), gomock.Any(), image, "folder-1").
		Return(&storage.Book{ID: "book-1"}, nil)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	_ = mw.WriteField("folderId", "folder-1")
	fw, _ := mw.CreateFormFile("cover", "cover.jpg")
	_, _ = fw.Write(image)
	_ = mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/books/cover", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()

	bookRouter(NewBookHandler(mockService)).ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Errorf("CreateFromCover() status = %d, want 201: %s", w.Code, w.Body.String())
	}
}

func TestBookHandler_CreateFromCover_MissingFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockBookService(ctrl)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	_ = mw.WriteField("folderId", "folder-1")
	_ = mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/books/cover", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()

	bookRouter(NewBookHandler(mockService)).ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("CreateFromCover() status = %d, want 400", w.Code)
	}
}

func TestBookHandler_Lookup_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockBookService(ctrl)
	mockService.EXPECT().
		LookupAndCreate(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, service.ErrNotFound)

	body, _ := json.Marshal(LookupBookRequest{ISBN: "0000000000"})
	req := httptest.NewRequest(http.MethodPost, "/api/books/lookup", bytes.NewReader(body))
	w := httptest.NewRecorder()

	bookRouter(NewBookHandler(mockService)).ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("Lookup() status = %d, want 404", w.Code)
	}
}

func TestBookHandler_List_FolderParam(t *testing.T) {
	tests := []struct {
		name       string
		url        string
		wantFolder *string
	}{
		{name: "no filter", url: "/api/books", wantFolder: nil},
		{name: "empty value means no filter", url: "/api/books?folderId=", wantFolder: nil},
		{name: "default folder", url: "/api/books?folderId=default", wantFolder: ptr("default")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := mocks.NewMockBookService(ctrl)
			mockService.EXPECT().
				List(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ any, _ string, folderID *string) ([]storage.Book, error) {
					if (folderID == nil) != (tt.wantFolder == nil) {
						t.Errorf("List() folderID = %v, want %v", folderID, tt.wantFolder)
					} else if folderID != nil && *folderID != *tt.wantFolder {
						t.Errorf("List() folderID = %q, want %q", *folderID, *tt.wantFolder)
					}
					return []storage.Book{}, nil
				})

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			w := httptest.NewRecorder()

			bookRouter(NewBookHandler(mockService)).ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Errorf("List() status = %d, want 200", w.Code)
			}
		})
	}
}

func ptr(s string) *string { return &s }
