package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restobill/backend/internal/application/usecase/cart"
	"github.com/restobill/backend/internal/domain/entity"
	domainerror "github.com/restobill/backend/internal/domain/error"
	"github.com/restobill/backend/internal/integration/entrypoint/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubCartMenuRepository struct {
	items map[uuid.UUID]*entity.MenuItem
}

func (s *stubCartMenuRepository) Create(_ context.Context, item *entity.MenuItem) error {
	s.items[item.ID] = item
	return nil
}

func (s *stubCartMenuRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.MenuItem, error) {
	item, ok := s.items[id]
	if !ok {
		return nil, domainerror.NewMenuError(
			domainerror.ErrCodeMenuItemNotFound,
			"menu item not found",
			domainerror.ErrMenuItemNotFound,
		)
	}
	return item, nil
}

func (s *stubCartMenuRepository) FindByIDs(_ context.Context, ids []uuid.UUID) ([]*entity.MenuItem, error) {
	found := make([]*entity.MenuItem, 0, len(ids))
	for _, id := range ids {
		if item, ok := s.items[id]; ok {
			found = append(found, item)
		}
	}
	return found, nil
}

func (s *stubCartMenuRepository) FindAll(_ context.Context, _ bool) ([]*entity.MenuItem, error) {
	return nil, nil
}

func (s *stubCartMenuRepository) Update(_ context.Context, item *entity.MenuItem) error {
	s.items[item.ID] = item
	return nil
}

func (s *stubCartMenuRepository) Delete(_ context.Context, id uuid.UUID) error {
	delete(s.items, id)
	return nil
}

func (s *stubCartMenuRepository) CountOrderItems(_ context.Context, _ uuid.UUID) (int64, error) {
	return 0, nil
}

type stubCartStore struct {
	carts map[uuid.UUID]*entity.Cart
}

func (s *stubCartStore) Get(_ context.Context, sessionID uuid.UUID) (*entity.Cart, error) {
	if c, ok := s.carts[sessionID]; ok {
		return c, nil
	}
	return entity.NewCart(), nil
}

func (s *stubCartStore) Save(_ context.Context, sessionID uuid.UUID, c *entity.Cart) error {
	s.carts[sessionID] = c
	return nil
}

func (s *stubCartStore) Clear(_ context.Context, sessionID uuid.UUID) error {
	delete(s.carts, sessionID)
	return nil
}

type cartTestFixture struct {
	router *gin.Engine
	menu   *stubCartMenuRepository
}

func newCartTestFixture(sessionID uuid.UUID) *cartTestFixture {
	menuRepo := &stubCartMenuRepository{items: make(map[uuid.UUID]*entity.MenuItem)}
	store := &stubCartStore{carts: make(map[uuid.UUID]*entity.Cart)}

	cartController := NewCartController(
		cart.NewAddItemUseCase(menuRepo, store),
		cart.NewUpdateItemUseCase(store),
		cart.NewRemoveItemUseCase(store),
		cart.NewGetCartUseCase(store),
		cart.NewClearCartUseCase(store),
	)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(string(middleware.SessionIDKey), sessionID)
	})
	router.GET("/cart", cartController.Get)
	router.POST("/cart/items", cartController.Add)
	router.PATCH("/cart/items/:menuItemId", cartController.Update)
	router.DELETE("/cart/items/:menuItemId", cartController.Remove)
	router.DELETE("/cart", cartController.Clear)

	return &cartTestFixture{router: router, menu: menuRepo}
}

func (f *cartTestFixture) addMenuItem(name string, price int64, available bool) *entity.MenuItem {
	item := entity.NewMenuItem(name, decimal.NewFromInt(price), "", "breakfast", available)
	f.menu.items[item.ID] = item
	return item
}

func (f *cartTestFixture) do(t *testing.T, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	request := httptest.NewRequest(method, path, strings.NewReader(body))
	request.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	f.router.ServeHTTP(recorder, request)

	parsed := make(map[string]any)
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &parsed))
	return recorder, parsed
}

func TestCartAddReturnsMutationEnvelope(t *testing.T) {
	fixture := newCartTestFixture(uuid.New())
	item := fixture.addMenuItem("Idly", 15, true)

	recorder, body := fixture.do(t, http.MethodPost, "/cart/items",
		`{"menu_item_id":"`+item.ID.String()+`","quantity":2}`)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Idly added to cart", body["message"])
	assert.Equal(t, float64(2), body["cart_count"])
	assert.Equal(t, "30.00", body["total"])
}

func TestCartInvalidQuantityUsesFailureEnvelope(t *testing.T) {
	fixture := newCartTestFixture(uuid.New())
	item := fixture.addMenuItem("Idly", 15, true)

	recorder, body := fixture.do(t, http.MethodPost, "/cart/items",
		`{"menu_item_id":"`+item.ID.String()+`","quantity":-1}`)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Quantity must be at least 1", body["message"])
	assert.Equal(t, "CRT-010003", body["code"])
	// Failures answer in the same envelope as successes, not an error body.
	assert.NotContains(t, body, "error")
}

func TestCartBindFailureUsesFailureEnvelope(t *testing.T) {
	fixture := newCartTestFixture(uuid.New())

	recorder, body := fixture.do(t, http.MethodPost, "/cart/items", `{"quantity":1}`)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "menu_item_id is required", body["message"])
}

func TestCartUnknownMenuItemUsesFailureEnvelope(t *testing.T) {
	fixture := newCartTestFixture(uuid.New())

	recorder, body := fixture.do(t, http.MethodPost, "/cart/items",
		`{"menu_item_id":"`+uuid.NewString()+`","quantity":1}`)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Menu item not found", body["message"])
}

func TestCartUnavailableItemUsesFailureEnvelope(t *testing.T) {
	fixture := newCartTestFixture(uuid.New())
	item := fixture.addMenuItem("Poori", 25, false)

	recorder, body := fixture.do(t, http.MethodPost, "/cart/items",
		`{"menu_item_id":"`+item.ID.String()+`","quantity":1}`)

	assert.Equal(t, http.StatusConflict, recorder.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Menu item is not available", body["message"])
}

func TestCartUpdateBadPathParamUsesFailureEnvelope(t *testing.T) {
	fixture := newCartTestFixture(uuid.New())

	recorder, body := fixture.do(t, http.MethodPatch, "/cart/items/not-a-uuid", `{"quantity":2}`)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Invalid menu item id format", body["message"])
}

func TestCartUpdateMissingLineUsesFailureEnvelope(t *testing.T) {
	fixture := newCartTestFixture(uuid.New())

	recorder, body := fixture.do(t, http.MethodPatch, "/cart/items/"+uuid.NewString(), `{"quantity":2}`)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Item is not in the cart", body["message"])
}
