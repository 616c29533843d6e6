package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sweetshop/inventory-system/internal/core/domain"
	"github.com/sweetshop/inventory-system/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Stub catalog service
// ---------------------------------------------------------------------------

type stubCatalogService struct {
	createFn func(ctx context.Context, input ports.CreateItemInput) (*domain.Item, error)
	updateFn func(ctx context.Context, id string, input ports.UpdateItemInput) (*domain.Item, error)
	deleteFn func(ctx context.Context, id string) error
	getFn    func(ctx context.Context, id string) (*domain.Item, error)
	listFn   func(ctx context.Context) ([]*domain.Item, error)
	searchFn func(ctx context.Context, input ports.SearchItemsInput) ([]*domain.Item, error)
}

func (s *stubCatalogService) CreateItem(ctx context.Context, input ports.CreateItemInput) (*domain.Item, error) {
	return s.createFn(ctx, input)
}

func (s *stubCatalogService) UpdateItem(ctx context.Context, id string, input ports.UpdateItemInput) (*domain.Item, error) {
	return s.updateFn(ctx, id, input)
}

func (s *stubCatalogService) DeleteItem(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func (s *stubCatalogService) GetItem(ctx context.Context, id string) (*domain.Item, error) {
	return s.getFn(ctx, id)
}

func (s *stubCatalogService) ListItems(ctx context.Context) ([]*domain.Item, error) {
	return s.listFn(ctx)
}

func (s *stubCatalogService) SearchItems(ctx context.Context, input ports.SearchItemsInput) ([]*domain.Item, error) {
	return s.searchFn(ctx, input)
}

func (s *stubCatalogService) ListMovements(ctx context.Context, itemID string) ([]*domain.StockMovement, error) {
	return nil, nil
}

func testItem() *domain.Item {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return &domain.Item{
		ID:        "i1",
		Name:      "Choco",
		Category:  "Bar",
		Price:     2.5,
		Quantity:  10,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// ---------------------------------------------------------------------------
// Create
// ---------------------------------------------------------------------------

func TestItemHandler_Create_Success(t *testing.T) {
	stub := &stubCatalogService{
		createFn: func(_ context.Context, input ports.CreateItemInput) (*domain.Item, error) {
			if input.Name != "Choco" || input.Quantity != 10 {
				t.Fatalf("unexpected input: %+v", input)
			}
			return testItem(), nil
		},
	}
	h := NewItemHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/v1/items",
		`{"name":"Choco","category":"Bar","price":2.5,"quantity":10}`)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp itemEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Item.ID != "i1" || resp.Item.Quantity != 10 {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestItemHandler_Create_ZeroQuantityAccepted(t *testing.T) {
	stub := &stubCatalogService{
		createFn: func(_ context.Context, input ports.CreateItemInput) (*domain.Item, error) {
			if input.Quantity != 0 {
				t.Fatalf("expected quantity 0, got %d", input.Quantity)
			}
			item := testItem()
			item.Quantity = 0
			return item, nil
		},
	}
	h := NewItemHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/v1/items",
		`{"name":"Choco","category":"Bar","price":2.5,"quantity":0}`)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestItemHandler_Create_MissingFields(t *testing.T) {
	stub := &stubCatalogService{
		createFn: func(context.Context, ports.CreateItemInput) (*domain.Item, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	h := NewItemHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/v1/items", `{"name":"Choco"}`)

	err := h.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestItemHandler_Create_PropagatesInvalidPrice(t *testing.T) {
	stub := &stubCatalogService{
		createFn: func(context.Context, ports.CreateItemInput) (*domain.Item, error) {
			return nil, domain.ErrInvalidPrice
		},
	}
	h := NewItemHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/v1/items",
		`{"name":"Choco","category":"Bar","price":1.0,"quantity":1}`)

	if err := h.Create(c); !errors.Is(err, domain.ErrInvalidPrice) {
		t.Fatalf("expected ErrInvalidPrice to propagate, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Search
// ---------------------------------------------------------------------------

func TestItemHandler_Search_ParsesPriceBounds(t *testing.T) {
	var got ports.SearchItemsInput
	stub := &stubCatalogService{
		searchFn: func(_ context.Context, input ports.SearchItemsInput) ([]*domain.Item, error) {
			got = input
			return []*domain.Item{testItem()}, nil
		},
	}
	h := NewItemHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/v1/items/search?name=cho&minPrice=2&maxPrice=10", "")

	if err := h.Search(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got.Name != "cho" {
		t.Errorf("name not passed through: %q", got.Name)
	}
	if got.MinPrice == nil || *got.MinPrice != 2 {
		t.Errorf("minPrice not parsed: %v", got.MinPrice)
	}
	if got.MaxPrice == nil || *got.MaxPrice != 10 {
		t.Errorf("maxPrice not parsed: %v", got.MaxPrice)
	}

	var resp listItemsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Count != 1 {
		t.Fatalf("expected count 1, got %d", resp.Count)
	}
}

func TestItemHandler_Search_RejectsBadPrice(t *testing.T) {
	stub := &stubCatalogService{
		searchFn: func(context.Context, ports.SearchItemsInput) ([]*domain.Item, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	h := NewItemHandler(stub)

	c, _ := newTestContext(t, http.MethodGet, "/v1/items/search?minPrice=abc", "")

	err := h.Search(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Get / Update / Delete
// ---------------------------------------------------------------------------

func TestItemHandler_Get_NotFoundPropagates(t *testing.T) {
	stub := &stubCatalogService{
		getFn: func(context.Context, string) (*domain.Item, error) {
			return nil, domain.ErrItemNotFound
		},
	}
	h := NewItemHandler(stub)

	c, _ := newTestContext(t, http.MethodGet, "/v1/items/i1", "")
	c.SetParamNames("id")
	c.SetParamValues("i1")

	if err := h.Get(c); !errors.Is(err, domain.ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound to propagate, got %v", err)
	}
}

func TestItemHandler_Update_PartialBody(t *testing.T) {
	var got ports.UpdateItemInput
	stub := &stubCatalogService{
		updateFn: func(_ context.Context, id string, input ports.UpdateItemInput) (*domain.Item, error) {
			if id != "i1" {
				t.Fatalf("unexpected id %q", id)
			}
			got = input
			return testItem(), nil
		},
	}
	h := NewItemHandler(stub)

	c, rec := newTestContext(t, http.MethodPut, "/v1/items/i1", `{"price":3.5}`)
	c.SetParamNames("id")
	c.SetParamValues("i1")

	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got.Price == nil || *got.Price != 3.5 {
		t.Errorf("price not passed: %v", got.Price)
	}
	if got.Name != nil || got.Category != nil || got.Quantity != nil {
		t.Errorf("absent fields must stay nil: %+v", got)
	}
}

func TestItemHandler_Update_RejectsEmptyText(t *testing.T) {
	stub := &stubCatalogService{
		updateFn: func(context.Context, string, ports.UpdateItemInput) (*domain.Item, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	h := NewItemHandler(stub)

	for _, body := range []string{`{"name":""}`, `{"category":""}`} {
		c, _ := newTestContext(t, http.MethodPut, "/v1/items/i1", body)
		c.SetParamNames("id")
		c.SetParamValues("i1")

		err := h.Update(c)
		var he *echo.HTTPError
		if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
			t.Fatalf("body %s: expected 400 HTTPError, got %v", body, err)
		}
	}
}

func TestItemHandler_Delete_Success(t *testing.T) {
	stub := &stubCatalogService{
		deleteFn: func(_ context.Context, id string) error {
			if id != "i1" {
				t.Fatalf("unexpected id %q", id)
			}
			return nil
		},
	}
	h := NewItemHandler(stub)

	c, rec := newTestContext(t, http.MethodDelete, "/v1/items/i1", "")
	c.SetParamNames("id")
	c.SetParamValues("i1")

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
