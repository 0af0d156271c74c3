package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/mock/gomock"

	"lumen/internal/service"
	"lumen/internal/service/mocks"
)

func TestSearchHandler_Search(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockSearchService(ctrl)
	mockService.EXPECT().
		Search(gomock.Any(), gomock.Any(), "stoicism", 5).
		Return(&service.SearchResults{
			Keyword:  []service.RankedHit{{ID: "snip-1", Score: 2}},
			Semantic: []service.RankedHit{},
		}, nil)

	h := NewSearchHandler(mockService)

	req := httptest.NewRequest(http.MethodGet, "/api/search?q=stoicism&limit=5", nil)
	w := httptest.NewRecorder()

	h.Search(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Search() status = %d, want 200", w.Code)
	}
	var resp service.SearchResults
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Keyword) != 1 || resp.Keyword[0].ID != "snip-1" {
		t.Errorf("Search() Keyword = %+v", resp.Keyword)
	}
}

func TestSearchHandler_Search_EmptyQuery(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockSearchService(ctrl)
	mockService.EXPECT().
		Search(gomock.Any(), gomock.Any(), "", 0).
		Return(nil, service.ErrInvalidInput)

	h := NewSearchHandler(mockService)

	req := httptest.NewRequest(http.MethodGet, "/api/search", nil)
	w := httptest.NewRecorder()

	h.Search(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Search() status = %d, want 400", w.Code)
	}
}

func TestSearchHandler_Search_BadLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewSearchHandler(mocks.NewMockSearchService(ctrl))

	req := httptest.NewRequest(http.MethodGet, "/api/search?q=x&limit=many", nil)
	w := httptest.NewRecorder()

	h.Search(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Search() status = %d, want 400", w.Code)
	}
}
