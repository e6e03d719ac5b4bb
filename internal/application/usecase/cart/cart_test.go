package cart

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restobill/backend/internal/domain/entity"
	domainerror "github.com/restobill/backend/internal/domain/error"
)

type memoryCartStore struct {
	carts map[uuid.UUID]*entity.Cart
}

func newMemoryCartStore() *memoryCartStore {
	return &memoryCartStore{carts: make(map[uuid.UUID]*entity.Cart)}
}

func (s *memoryCartStore) Get(_ context.Context, sessionID uuid.UUID) (*entity.Cart, error) {
	if cart, ok := s.carts[sessionID]; ok {
		return cart, nil
	}
	return entity.NewCart(), nil
}

func (s *memoryCartStore) Save(_ context.Context, sessionID uuid.UUID, cart *entity.Cart) error {
	s.carts[sessionID] = cart
	return nil
}

func (s *memoryCartStore) Clear(_ context.Context, sessionID uuid.UUID) error {
	delete(s.carts, sessionID)
	return nil
}

type memoryMenuRepository struct {
	items map[uuid.UUID]*entity.MenuItem
}

func newMemoryMenuRepository(items ...*entity.MenuItem) *memoryMenuRepository {
	repo := &memoryMenuRepository{items: make(map[uuid.UUID]*entity.MenuItem)}
	for _, item := range items {
		repo.items[item.ID] = item
	}
	return repo
}

func (r *memoryMenuRepository) Create(_ context.Context, item *entity.MenuItem) error {
	r.items[item.ID] = item
	return nil
}

func (r *memoryMenuRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.MenuItem, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, domainerror.NewMenuError(
			domainerror.ErrCodeMenuItemNotFound,
			"menu item not found",
			domainerror.ErrMenuItemNotFound,
		)
	}
	return item, nil
}

func (r *memoryMenuRepository) FindByIDs(_ context.Context, ids []uuid.UUID) ([]*entity.MenuItem, error) {
	found := make([]*entity.MenuItem, 0, len(ids))
	for _, id := range ids {
		if item, ok := r.items[id]; ok {
			found = append(found, item)
		}
	}
	return found, nil
}

func (r *memoryMenuRepository) FindAll(_ context.Context, _ bool) ([]*entity.MenuItem, error) {
	items := make([]*entity.MenuItem, 0, len(r.items))
	for _, item := range r.items {
		items = append(items, item)
	}
	return items, nil
}

func (r *memoryMenuRepository) Update(_ context.Context, item *entity.MenuItem) error {
	r.items[item.ID] = item
	return nil
}

func (r *memoryMenuRepository) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.items, id)
	return nil
}

func (r *memoryMenuRepository) CountOrderItems(_ context.Context, _ uuid.UUID) (int64, error) {
	return 0, nil
}

func testMenuItem(name, price string, available bool) *entity.MenuItem {
	p, _ := decimal.NewFromString(price)
	return entity.NewMenuItem(name, p, "", "breakfast", available)
}

func TestAddItemDefaultsQuantityToOne(t *testing.T) {
	idly := testMenuItem("Idly", "15.00", true)
	store := newMemoryCartStore()
	useCase := NewAddItemUseCase(newMemoryMenuRepository(idly), store)
	sessionID := uuid.New()

	output, err := useCase.Execute(context.Background(), AddItemInput{
		SessionID:  sessionID,
		MenuItemID: idly.ID,
	})
	require.NoError(t, err)

	assert.Equal(t, "Idly", output.ItemName)
	assert.Equal(t, 1, output.CartCount)
	assert.Equal(t, "15.00", output.Total.StringFixed(2))
}

func TestAddItemRejectsNegativeQuantity(t *testing.T) {
	idly := testMenuItem("Idly", "15.00", true)
	useCase := NewAddItemUseCase(newMemoryMenuRepository(idly), newMemoryCartStore())

	_, err := useCase.Execute(context.Background(), AddItemInput{
		SessionID:  uuid.New(),
		MenuItemID: idly.ID,
		Quantity:   -1,
	})

	assert.True(t, errors.Is(err, domainerror.ErrInvalidQuantity))
}

func TestAddItemRejectsUnavailableItem(t *testing.T) {
	dosai := testMenuItem("Dosai", "40.00", false)
	useCase := NewAddItemUseCase(newMemoryMenuRepository(dosai), newMemoryCartStore())

	_, err := useCase.Execute(context.Background(), AddItemInput{
		SessionID:  uuid.New(),
		MenuItemID: dosai.ID,
		Quantity:   1,
	})

	assert.True(t, errors.Is(err, domainerror.ErrMenuItemUnavailable))
}

func TestAddItemUnknownMenuItem(t *testing.T) {
	useCase := NewAddItemUseCase(newMemoryMenuRepository(), newMemoryCartStore())

	_, err := useCase.Execute(context.Background(), AddItemInput{
		SessionID:  uuid.New(),
		MenuItemID: uuid.New(),
		Quantity:   1,
	})

	assert.True(t, errors.Is(err, domainerror.ErrMenuItemNotFound))
}

func TestAddItemSnapshotsCurrentPrice(t *testing.T) {
	vada := testMenuItem("Vada", "20.00", true)
	menuRepo := newMemoryMenuRepository(vada)
	store := newMemoryCartStore()
	useCase := NewAddItemUseCase(menuRepo, store)
	sessionID := uuid.New()

	_, err := useCase.Execute(context.Background(), AddItemInput{
		SessionID:  sessionID,
		MenuItemID: vada.ID,
		Quantity:   2,
	})
	require.NoError(t, err)

	// Price change after the first add must not reprice the existing line.
	vada.Price = decimal.NewFromInt(50)
	output, err := useCase.Execute(context.Background(), AddItemInput{
		SessionID:  sessionID,
		MenuItemID: vada.ID,
		Quantity:   1,
	})
	require.NoError(t, err)

	assert.Equal(t, 3, output.CartCount)
	assert.Equal(t, "60.00", output.Total.StringFixed(2))
}

func TestUpdateItemQuantity(t *testing.T) {
	poori := testMenuItem("Poori", "30.00", true)
	store := newMemoryCartStore()
	sessionID := uuid.New()
	cart := entity.NewCart()
	cart.AddItem(poori, 1)
	require.NoError(t, store.Save(context.Background(), sessionID, cart))

	useCase := NewUpdateItemUseCase(store)
	output, err := useCase.Execute(context.Background(), UpdateItemInput{
		SessionID:  sessionID,
		MenuItemID: poori.ID,
		Quantity:   4,
	})
	require.NoError(t, err)

	assert.Equal(t, 4, output.CartCount)
	assert.Equal(t, "120.00", output.Total.StringFixed(2))
}

func TestUpdateItemZeroQuantityRemovesLine(t *testing.T) {
	poori := testMenuItem("Poori", "30.00", true)
	store := newMemoryCartStore()
	sessionID := uuid.New()
	cart := entity.NewCart()
	cart.AddItem(poori, 2)
	require.NoError(t, store.Save(context.Background(), sessionID, cart))

	useCase := NewUpdateItemUseCase(store)
	output, err := useCase.Execute(context.Background(), UpdateItemInput{
		SessionID:  sessionID,
		MenuItemID: poori.ID,
		Quantity:   0,
	})
	require.NoError(t, err)

	assert.Equal(t, 0, output.CartCount)
	assert.Equal(t, "0.00", output.Total.StringFixed(2))
}

func TestUpdateItemNotInCart(t *testing.T) {
	useCase := NewUpdateItemUseCase(newMemoryCartStore())

	_, err := useCase.Execute(context.Background(), UpdateItemInput{
		SessionID:  uuid.New(),
		MenuItemID: uuid.New(),
		Quantity:   2,
	})

	assert.True(t, errors.Is(err, domainerror.ErrCartItemNotFound))
}

func TestRemoveItem(t *testing.T) {
	idly := testMenuItem("Idly", "15.00", true)
	vada := testMenuItem("Vada", "20.00", true)
	store := newMemoryCartStore()
	sessionID := uuid.New()
	cart := entity.NewCart()
	cart.AddItem(idly, 1)
	cart.AddItem(vada, 1)
	require.NoError(t, store.Save(context.Background(), sessionID, cart))

	useCase := NewRemoveItemUseCase(store)
	output, err := useCase.Execute(context.Background(), RemoveItemInput{
		SessionID:  sessionID,
		MenuItemID: idly.ID,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, output.CartCount)
	assert.Equal(t, "20.00", output.Total.StringFixed(2))

	_, err = useCase.Execute(context.Background(), RemoveItemInput{
		SessionID:  sessionID,
		MenuItemID: idly.ID,
	})
	assert.True(t, errors.Is(err, domainerror.ErrCartItemNotFound))
}

func TestGetCartSortsLinesByName(t *testing.T) {
	idly := testMenuItem("Idly", "15.00", true)
	dosai := testMenuItem("Dosai", "40.00", true)
	store := newMemoryCartStore()
	sessionID := uuid.New()
	cart := entity.NewCart()
	cart.AddItem(idly, 2)
	cart.AddItem(dosai, 1)
	require.NoError(t, store.Save(context.Background(), sessionID, cart))

	useCase := NewGetCartUseCase(store)
	output, err := useCase.Execute(context.Background(), GetCartInput{SessionID: sessionID})
	require.NoError(t, err)

	require.Len(t, output.Lines, 2)
	assert.Equal(t, "Dosai", output.Lines[0].Name)
	assert.Equal(t, "Idly", output.Lines[1].Name)
	assert.Equal(t, 3, output.CartCount)
	assert.Equal(t, "70.00", output.Total.StringFixed(2))
}

func TestGetCartMissingSessionReadsEmpty(t *testing.T) {
	useCase := NewGetCartUseCase(newMemoryCartStore())

	output, err := useCase.Execute(context.Background(), GetCartInput{SessionID: uuid.New()})
	require.NoError(t, err)

	assert.Empty(t, output.Lines)
	assert.Equal(t, 0, output.CartCount)
}

func TestClearCartIsIdempotent(t *testing.T) {
	store := newMemoryCartStore()
	useCase := NewClearCartUseCase(store)
	sessionID := uuid.New()

	require.NoError(t, useCase.Execute(context.Background(), ClearCartInput{SessionID: sessionID}))
	require.NoError(t, useCase.Execute(context.Background(), ClearCartInput{SessionID: sessionID}))
}
