package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/serikkalibeknur/project-clothesstore/internal/domain"
	"github.com/serikkalibeknur/project-clothesstore/internal/repository"
	apperrors "github.com/serikkalibeknur/project-clothesstore/pkg/errors"
	"github.com/serikkalibeknur/project-clothesstore/pkg/validator"
)

// AddItemInput holds the parameters for adding a product to the cart.
type AddItemInput struct {
	Product  domain.Product
	Quantity int    `validate:"required,gte=1"`
	Size     string `validate:"required"`
	Color    string `validate:"required"`
}

// CartService implements the business logic for cart operations.
type CartService struct {
	carts    repository.CartRepository
	sessions repository.SessionRepository
	backend  Backend
	logger   *slog.Logger
}

// NewCartService creates a new cart service.
func NewCartService(carts repository.CartRepository, sessions repository.SessionRepository, backend Backend, logger *slog.Logger) *CartService {
	return &CartService{
		carts:    carts,
		sessions: sessions,
		backend:  backend,
		logger:   logger,
	}
}

// Get returns the current cart. A missing cart is an empty cart.
func (s *CartService) Get(ctx context.Context) (domain.Cart, error) {
	cart, err := s.carts.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("get cart: %w", err)
	}
	return cart, nil
}

// Add puts a product into the cart. A line with the same product, size and
// color has its quantity incremented; anything else appends a new line.
// The returned flag reports whether an existing line was merged.
func (s *CartService) Add(ctx context.Context, input AddItemInput) (domain.Cart, bool, error) {
	if input.Product.ID == "" {
		return nil, false, apperrors.InvalidInput("product is required")
	}
	if err := validator.Validate(input); err != nil {
		return nil, false, apperrors.InvalidInput(err.Error())
	}

	cart, err := s.carts.Get(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("get cart: %w", err)
	}

	line := input.Product.CartLine(input.Quantity, input.Size, input.Color)

	merged := false
	if i := cart.FindIndex(line.Key()); i >= 0 {
		cart[i].Quantity += input.Quantity
		merged = true
	} else {
		cart = append(cart, line)
	}

	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, false, fmt.Errorf("save cart: %w", err)
	}

	s.logger.InfoContext(ctx, "item added to cart",
		slog.String("product_id", line.ProductID),
		slog.String("size", line.Size),
		slog.String("color", line.Color),
		slog.Int("quantity", input.Quantity),
		slog.Bool("merged", merged),
	)

	return cart, merged, nil
}

// QuickAdd adds one unit of a product in the default variant. An existing
// line is matched by product id alone, whatever its size and color.
func (s *CartService) QuickAdd(ctx context.Context, product domain.Product) (domain.Cart, error) {
	if product.ID == "" {
		return nil, apperrors.InvalidInput("product is required")
	}

	cart, err := s.carts.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("get cart: %w", err)
	}

	if i := cart.FindProductIndex(product.ID); i >= 0 {
		cart[i].Quantity++
	} else {
		cart = append(cart, product.CartLine(1, domain.DefaultSize, domain.DefaultColor))
	}

	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, fmt.Errorf("save cart: %w", err)
	}

	s.logger.InfoContext(ctx, "item quick-added to cart",
		slog.String("product_id", product.ID),
	)

	return cart, nil
}

// UpdateQuantity overwrites the quantity of the line matching key. A quantity
// below one leaves the cart untouched.
func (s *CartService) UpdateQuantity(ctx context.Context, key domain.ItemKey, quantity int) (domain.Cart, error) {
	cart, err := s.carts.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("get cart: %w", err)
	}

	if quantity < 1 {
		return cart, nil
	}

	i := cart.FindIndex(key)
	if i < 0 {
		return nil, apperrors.NotFound("cart item", key.ProductID)
	}

	cart[i].Quantity = quantity

	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, fmt.Errorf("save cart: %w", err)
	}

	s.logger.InfoContext(ctx, "cart quantity updated",
		slog.String("product_id", key.ProductID),
		slog.Int("quantity", quantity),
	)

	return cart, nil
}

// Remove deletes the line matching key and returns the removed item's name
// for the confirmation message.
func (s *CartService) Remove(ctx context.Context, key domain.ItemKey) (domain.Cart, string, error) {
	cart, err := s.carts.Get(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("get cart: %w", err)
	}

	i := cart.FindIndex(key)
	if i < 0 {
		return nil, "", apperrors.NotFound("cart item", key.ProductID)
	}

	name := cart[i].Name
	cart = append(cart[:i], cart[i+1:]...)

	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, "", fmt.Errorf("save cart: %w", err)
	}

	s.logger.InfoContext(ctx, "item removed from cart",
		slog.String("product_id", key.ProductID),
	)

	return cart, name, nil
}

// Clear removes every line from the cart.
func (s *CartService) Clear(ctx context.Context) error {
	if err := s.carts.Clear(ctx); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	s.logger.InfoContext(ctx, "cart cleared")
	return nil
}

// Count returns the total number of units in the cart.
func (s *CartService) Count(ctx context.Context) (int, error) {
	cart, err := s.carts.Get(ctx)
	if err != nil {
		return 0, fmt.Errorf("get cart: %w", err)
	}
	return cart.ItemCount(), nil
}

// Totals loads the cart and derives its totals.
func (s *CartService) Totals(ctx context.Context) (domain.Totals, error) {
	cart, err := s.carts.Get(ctx)
	if err != nil {
		return domain.Totals{}, fmt.Errorf("get cart: %w", err)
	}
	return domain.ComputeTotals(cart), nil
}

// ApplyCoupon checks a coupon code and returns its discount fraction. The
// discount is reported, never folded into the totals.
func (s *CartService) ApplyCoupon(code string) (decimal.Decimal, error) {
	if code == "" {
		return decimal.Decimal{}, apperrors.InvalidInput("please enter a coupon code")
	}
	pct, ok := domain.LookupCoupon(code)
	if !ok {
		return decimal.Decimal{}, apperrors.InvalidInput("invalid coupon code")
	}
	return pct, nil
}

// Checkout submits the cart to the order-creation endpoint. The cart is
// cleared only after the backend reports success; any failure leaves it
// intact. An empty cart never reaches the network.
func (s *CartService) Checkout(ctx context.Context) (domain.Order, error) {
	cart, err := s.carts.Get(ctx)
	if err != nil {
		return domain.Order{}, fmt.Errorf("get cart: %w", err)
	}
	if len(cart) == 0 {
		return domain.Order{}, apperrors.EmptyCart()
	}

	session, err := s.sessions.Get(ctx)
	if err != nil {
		return domain.Order{}, fmt.Errorf("get session: %w", err)
	}
	if !session.IsLoggedIn() {
		return domain.Order{}, apperrors.NotAuthenticated("please login to continue")
	}

	env, err := s.backend.Post(ctx, "/orders", domain.NewOrderRequest(cart))
	if err != nil {
		return domain.Order{}, fmt.Errorf("create order: %w", err)
	}
	if err := env.Err(); err != nil {
		return domain.Order{}, err
	}

	var order domain.Order
	if len(env.Data) > 0 {
		if err := env.Decode(&order); err != nil {
			s.logger.WarnContext(ctx, "order created but response not decodable",
				slog.String("error", err.Error()),
			)
		}
	}

	if err := s.carts.Clear(ctx); err != nil {
		return order, fmt.Errorf("clear cart after checkout: %w", err)
	}

	s.logger.InfoContext(ctx, "order placed",
		slog.String("order_id", order.ID),
		slog.Int("lines", len(cart)),
	)

	return order, nil
}
