package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/serikkalibeknur/project-clothesstore/internal/domain"
	"github.com/serikkalibeknur/project-clothesstore/internal/repository"
	apperrors "github.com/serikkalibeknur/project-clothesstore/pkg/errors"
	"github.com/serikkalibeknur/project-clothesstore/pkg/validator"
)

// recentOrderWindow is the number of newest orders the dashboard summarizes.
// Revenue is computed over this window only, not over all orders.
const recentOrderWindow = 5

// CreateProductInput holds the create-product form fields.
type CreateProductInput struct {
	Name        string          `json:"name" validate:"required"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category" validate:"required"`
	Stock       int             `json:"stock" validate:"gte=0"`
	ImageURL    string          `json:"imageURL"`
	Description string          `json:"description"`
}

// DashboardSummary aggregates the three admin list fetches. A section whose
// fetch failed reports zero values and is recorded in Skipped.
type DashboardSummary struct {
	TotalProducts int
	TotalUsers    int
	TotalOrders   int
	RecentOrders  []domain.Order
	RecentRevenue decimal.Decimal
	Skipped       []string
}

// AdminService implements the admin surface: dashboard aggregation, list
// views, product creation and deletions, and the locally-kept settings.
type AdminService struct {
	backend  Backend
	sessions repository.SessionRepository
	settings repository.SettingsRepository
	logger   *slog.Logger
}

// NewAdminService creates a new admin service.
func NewAdminService(backend Backend, sessions repository.SessionRepository, settings repository.SettingsRepository, logger *slog.Logger) *AdminService {
	return &AdminService{
		backend:  backend,
		sessions: sessions,
		settings: settings,
		logger:   logger,
	}
}

// requireAdmin gates every admin operation on a logged-in admin session.
func (s *AdminService) requireAdmin(ctx context.Context) error {
	session, err := s.sessions.Get(ctx)
	if err != nil {
		return fmt.Errorf("get session: %w", err)
	}
	if !session.IsLoggedIn() {
		return apperrors.NotAuthenticated("please login to continue")
	}
	if !session.IsAdmin() {
		return apperrors.Forbidden("admin access required")
	}
	return nil
}

// Dashboard fetches products, orders and users in parallel and aggregates
// them. A failed section is skipped and zeroed; the others still render.
func (s *AdminService) Dashboard(ctx context.Context) (DashboardSummary, error) {
	if err := s.requireAdmin(ctx); err != nil {
		return DashboardSummary{}, err
	}

	var (
		products []domain.Product
		orders   []domain.Order
		users    []domain.User

		productsSkipped, ordersSkipped, usersSkipped bool
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if products, err = s.fetchProducts(gctx); err != nil {
			s.logSkip(gctx, "products", err)
			productsSkipped = true
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if orders, err = s.fetchOrders(gctx); err != nil {
			s.logSkip(gctx, "orders", err)
			ordersSkipped = true
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if users, err = s.fetchUsers(gctx); err != nil {
			s.logSkip(gctx, "users", err)
			usersSkipped = true
		}
		return nil
	})
	_ = g.Wait()

	skipped := make([]string, 0, 3)
	if productsSkipped {
		skipped = append(skipped, "products")
	}
	if ordersSkipped {
		skipped = append(skipped, "orders")
	}
	if usersSkipped {
		skipped = append(skipped, "users")
	}

	recent := orders
	if len(recent) > recentOrderWindow {
		recent = recent[:recentOrderWindow]
	}

	revenue := decimal.Zero
	for _, o := range recent {
		revenue = revenue.Add(o.Total)
	}

	return DashboardSummary{
		TotalProducts: len(products),
		TotalUsers:    len(users),
		TotalOrders:   len(orders),
		RecentOrders:  recent,
		RecentRevenue: revenue,
		Skipped:       skipped,
	}, nil
}

// ListProducts returns all products for the admin table.
func (s *AdminService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	if err := s.requireAdmin(ctx); err != nil {
		return nil, err
	}
	return s.fetchProducts(ctx)
}

// ListOrders returns all orders for the admin table.
func (s *AdminService) ListOrders(ctx context.Context) ([]domain.Order, error) {
	if err := s.requireAdmin(ctx); err != nil {
		return nil, err
	}
	return s.fetchOrders(ctx)
}

// ListUsers returns all users for the admin table.
func (s *AdminService) ListUsers(ctx context.Context) ([]domain.User, error) {
	if err := s.requireAdmin(ctx); err != nil {
		return nil, err
	}
	return s.fetchUsers(ctx)
}

// CreateProduct validates the form and posts the new product.
func (s *AdminService) CreateProduct(ctx context.Context, input CreateProductInput) (domain.Product, error) {
	if err := s.requireAdmin(ctx); err != nil {
		return domain.Product{}, err
	}
	if err := validator.Validate(input); err != nil {
		return domain.Product{}, apperrors.InvalidInput(err.Error())
	}
	if !input.Price.IsPositive() {
		return domain.Product{}, apperrors.InvalidInput("price must be greater than zero")
	}

	env, err := s.backend.Post(ctx, "/products", input)
	if err != nil {
		return domain.Product{}, fmt.Errorf("create product: %w", err)
	}
	if err := env.Err(); err != nil {
		return domain.Product{}, err
	}

	var product domain.Product
	if len(env.Data) > 0 {
		if err := env.Decode(&product); err != nil {
			return domain.Product{}, fmt.Errorf("create product: %w", err)
		}
	}

	s.logger.InfoContext(ctx, "product created",
		slog.String("product_id", product.ID),
		slog.String("name", input.Name),
	)

	return product, nil
}

// DeleteProduct removes a product.
func (s *AdminService) DeleteProduct(ctx context.Context, id string) error {
	return s.deleteResource(ctx, "product", "/products/", id)
}

// DeleteOrder removes an order.
func (s *AdminService) DeleteOrder(ctx context.Context, id string) error {
	return s.deleteResource(ctx, "order", "/orders/", id)
}

// DeleteUser removes a user account.
func (s *AdminService) DeleteUser(ctx context.Context, id string) error {
	return s.deleteResource(ctx, "user", "/users/", id)
}

// Settings returns the locally persisted store settings.
func (s *AdminService) Settings(ctx context.Context) (domain.StoreSettings, error) {
	if err := s.requireAdmin(ctx); err != nil {
		return domain.StoreSettings{}, err
	}
	return s.settings.Get(ctx)
}

// SaveSettings persists the store settings locally. Nothing is sent to the
// backend.
func (s *AdminService) SaveSettings(ctx context.Context, settings domain.StoreSettings) error {
	if err := s.requireAdmin(ctx); err != nil {
		return err
	}
	if err := s.settings.Save(ctx, settings); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	s.logger.InfoContext(ctx, "store settings saved")
	return nil
}

func (s *AdminService) deleteResource(ctx context.Context, resource, prefix, id string) error {
	if err := s.requireAdmin(ctx); err != nil {
		return err
	}
	if id == "" {
		return apperrors.InvalidInput(resource + " id is required")
	}

	env, err := s.backend.Delete(ctx, prefix+url.PathEscape(id))
	if err != nil {
		return fmt.Errorf("delete %s: %w", resource, err)
	}
	if err := env.Err(); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "resource deleted",
		slog.String("resource", resource),
		slog.String("id", id),
	)
	return nil
}

func (s *AdminService) fetchProducts(ctx context.Context) ([]domain.Product, error) {
	env, err := s.backend.Get(ctx, "/products")
	if err != nil {
		return nil, err
	}
	if err := env.Err(); err != nil {
		return nil, err
	}
	var products []domain.Product
	if err := env.Decode(&products); err != nil {
		return nil, err
	}
	return products, nil
}

func (s *AdminService) fetchOrders(ctx context.Context) ([]domain.Order, error) {
	env, err := s.backend.Get(ctx, "/orders")
	if err != nil {
		return nil, err
	}
	if err := env.Err(); err != nil {
		return nil, err
	}
	var orders []domain.Order
	if err := env.Decode(&orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *AdminService) fetchUsers(ctx context.Context) ([]domain.User, error) {
	env, err := s.backend.Get(ctx, "/users")
	if err != nil {
		return nil, err
	}
	if err := env.Err(); err != nil {
		return nil, err
	}
	var users []domain.User
	if err := env.Decode(&users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *AdminService) logSkip(ctx context.Context, section string, err error) {
	s.logger.WarnContext(ctx, "dashboard section skipped",
		slog.String("section", section),
		slog.String("error", err.Error()),
	)
}
