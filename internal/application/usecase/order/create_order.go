package order

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/restobill/backend/internal/application/adapter"
	"github.com/restobill/backend/internal/domain/entity"
	domainerror "github.com/restobill/backend/internal/domain/error"
)

// CreateOrderInput represents the input for order creation.
type CreateOrderInput struct {
	SessionID uuid.UUID
}

// CreateOrderOutput represents the output of order creation.
type CreateOrderOutput struct {
	Order *entity.Order
}

// CreateOrderUseCase turns the session cart into a persisted order with its
// items. The order and items are written in one transaction; the cart is
// cleared only after the write succeeds, so a failed call leaves the cart
// exactly as it was. A clear failure after the commit is logged, not
// returned: the order exists, and surfacing an error would invite a retry
// that creates a second order from the same cart.
type CreateOrderUseCase struct {
	orderRepo adapter.OrderRepository
	menuRepo  adapter.MenuRepository
	cartStore adapter.CartStore
}

// NewCreateOrderUseCase creates a new CreateOrderUseCase instance.
func NewCreateOrderUseCase(
	orderRepo adapter.OrderRepository,
	menuRepo adapter.MenuRepository,
	cartStore adapter.CartStore,
) *CreateOrderUseCase {
	return &CreateOrderUseCase{
		orderRepo: orderRepo,
		menuRepo:  menuRepo,
		cartStore: cartStore,
	}
}

// Execute performs the order creation.
func (uc *CreateOrderUseCase) Execute(ctx context.Context, input CreateOrderInput) (*CreateOrderOutput, error) {
	cart, err := uc.cartStore.Get(ctx, input.SessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	if cart.IsEmpty() {
		return nil, domainerror.NewCartError(
			domainerror.ErrCodeCartEmpty,
			"cart is empty",
			domainerror.ErrCartEmpty,
		)
	}

	// Every cart line must still reference an existing menu item.
	ids := make([]uuid.UUID, 0, len(cart.Lines))
	for _, line := range cart.Lines {
		ids = append(ids, line.MenuItemID)
	}
	found, err := uc.menuRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to look up menu items: %w", err)
	}
	known := make(map[uuid.UUID]bool, len(found))
	for _, item := range found {
		known[item.ID] = true
	}
	for _, line := range cart.Lines {
		if !known[line.MenuItemID] {
			return nil, domainerror.NewMenuError(
				domainerror.ErrCodeMenuItemNotFound,
				fmt.Sprintf("%s is no longer on the menu", line.Name),
				domainerror.ErrMenuItemNotFound,
			)
		}
	}

	// Build items in a stable order so the bill reads the same every time.
	lines := make([]*entity.CartLine, 0, len(cart.Lines))
	for _, line := range cart.Lines {
		lines = append(lines, line)
	}
	sort.Slice(lines, func(i, j int) bool {
		return lines[i].Name < lines[j].Name
	})

	items := make([]*entity.OrderItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, entity.NewOrderItem(line.MenuItemID, line.Name, line.Quantity, line.UnitPrice))
	}

	orderNumber, err := uc.uniqueOrderNumber(ctx)
	if err != nil {
		return nil, err
	}

	order := entity.NewOrder(orderNumber, cart.Total(), items)
	if err := uc.orderRepo.CreateWithItems(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	// The order is committed at this point. Report a clear failure in the
	// logs only; the stale cart expires with the session.
	if err := uc.cartStore.Clear(ctx, input.SessionID); err != nil {
		slog.WarnContext(ctx, "cart not cleared after order creation",
			"order_number", order.OrderNumber,
			"session_id", input.SessionID.String(),
			"error", err,
		)
	}

	return &CreateOrderOutput{Order: order}, nil
}

// uniqueOrderNumber generates an order number, regenerating once on
// collision before giving up.
func (uc *CreateOrderUseCase) uniqueOrderNumber(ctx context.Context) (string, error) {
	now := time.Now().UTC()

	for attempt := 0; attempt < 2; attempt++ {
		number := GenerateOrderNumber(now)
		exists, err := uc.orderRepo.ExistsByOrderNumber(ctx, number)
		if err != nil {
			return "", fmt.Errorf("failed to check order number: %w", err)
		}
		if !exists {
			return number, nil
		}
	}

	return "", domainerror.NewOrderError(
		domainerror.ErrCodeOrderNumberCollision,
		"could not generate a unique order number",
		domainerror.ErrOrderNumberCollision,
	)
}
