package cli

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/serikkalibeknur/project-clothesstore/internal/app"
	"github.com/serikkalibeknur/project-clothesstore/internal/domain"
	"github.com/serikkalibeknur/project-clothesstore/internal/service"
	apperrors "github.com/serikkalibeknur/project-clothesstore/pkg/errors"
)

func newAdminCmd(a *app.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Store administration (admin role required)",
	}
	cmd.AddCommand(
		newAdminDashboardCmd(a),
		newAdminProductsCmd(a),
		newAdminOrdersCmd(a),
		newAdminUsersCmd(a),
		newAdminAddProductCmd(a),
		newAdminEditProductCmd(a),
		newAdminEditOrderCmd(a),
		newAdminEditUserCmd(a),
		newAdminDeleteCmd(a, "delete-product", "product", a.Admin.DeleteProduct),
		newAdminDeleteCmd(a, "delete-order", "order", a.Admin.DeleteOrder),
		newAdminDeleteCmd(a, "delete-user", "user", a.Admin.DeleteUser),
		newAdminSettingsCmd(a),
	)
	return cmd
}

func newAdminDashboardCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show the store summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			summary, err := a.Admin.Dashboard(cmd.Context())
			if err != nil {
				return err
			}

			notify(out, "Products: %d", summary.TotalProducts)
			notify(out, "Orders:   %d", summary.TotalOrders)
			notify(out, "Users:    %d", summary.TotalUsers)
			notify(out, "Revenue (recent orders): %s", formatCurrency(summary.RecentRevenue))

			for _, section := range summary.Skipped {
				notify(out, "Note: %s could not be loaded", section)
			}

			if len(summary.RecentOrders) > 0 {
				notify(out, "\nRecent orders:")
				renderOrders(cmd, summary.RecentOrders)
			}
			return nil
		},
	}
}

func newAdminProductsCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "products",
		Short: "List all products",
		RunE: func(cmd *cobra.Command, args []string) error {
			products, err := a.Admin.ListProducts(cmd.Context())
			if err != nil {
				return err
			}
			renderProducts(cmd, products)
			return nil
		},
	}
}

func newAdminOrdersCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "orders",
		Short: "List all orders",
		RunE: func(cmd *cobra.Command, args []string) error {
			orders, err := a.Admin.ListOrders(cmd.Context())
			if err != nil {
				return err
			}
			renderOrders(cmd, orders)
			return nil
		},
	}
}

func newAdminUsersCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "users",
		Short: "List all users",
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := a.Admin.ListUsers(cmd.Context())
			if err != nil {
				return err
			}

			table := newTable(cmd.OutOrStdout())
			defer table.Flush()

			notify(table, "ID\tNAME\tEMAIL\tROLE")
			for _, u := range users {
				notify(table, "%s\t%s\t%s\t%s", shortID(u.ID), u.Name, u.Email, u.Role)
			}
			return nil
		},
	}
}

func addProductFlags(cmd *cobra.Command, input *service.CreateProductInput, price *string) {
	cmd.Flags().StringVar(&input.Name, "name", "", "product name")
	cmd.Flags().StringVar(price, "price", "", "unit price, e.g. 19.99")
	cmd.Flags().StringVar(&input.Category, "category", "", "category")
	cmd.Flags().IntVar(&input.Stock, "stock", 0, "units in stock")
	cmd.Flags().StringVar(&input.ImageURL, "image", "", "image URL")
	cmd.Flags().StringVar(&input.Description, "description", "", "description")
}

func runCreateProduct(a *app.App, cmd *cobra.Command, input service.CreateProductInput, price string) error {
	if price != "" {
		parsed, err := decimal.NewFromString(price)
		if err != nil {
			return apperrors.InvalidInput("price must be a number")
		}
		input.Price = parsed
	}

	if _, err := a.Admin.CreateProduct(cmd.Context(), input); err != nil {
		return err
	}
	notify(cmd.OutOrStdout(), "Product saved successfully")
	return nil
}

func newAdminAddProductCmd(a *app.App) *cobra.Command {
	var (
		input service.CreateProductInput
		price string
	)

	cmd := &cobra.Command{
		Use:   "add-product",
		Short: "Create a product",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreateProduct(a, cmd, input, price)
		},
	}
	addProductFlags(cmd, &input, &price)
	return cmd
}

func newAdminEditProductCmd(a *app.App) *cobra.Command {
	var (
		input service.CreateProductInput
		price string
	)

	// Editing reopens the blank create flow; nothing is pre-filled from the
	// existing product.
	cmd := &cobra.Command{
		Use:   "edit-product <product-id>",
		Short: "Edit a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreateProduct(a, cmd, input, price)
		},
	}
	addProductFlags(cmd, &input, &price)
	return cmd
}

func newAdminEditOrderCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "edit-order <order-id>",
		Short: "Edit an order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			notify(cmd.OutOrStdout(), "Edit functionality coming soon")
			return nil
		},
	}
}

func newAdminEditUserCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "edit-user <user-id>",
		Short: "Edit a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			notify(cmd.OutOrStdout(), "Edit functionality coming soon")
			return nil
		},
	}
}

func newAdminDeleteCmd(a *app.App, use, resource string, del func(ctx context.Context, id string) error) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use + " <" + resource + "-id>",
		Short: "Delete a " + resource,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ok, err := confirm(cmd, "Are you sure you want to delete this "+resource+"?")
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}

			if err := del(cmd.Context(), args[0]); err != nil {
				return err
			}
			notify(cmd.OutOrStdout(), "%s deleted successfully", resource)
			return nil
		},
	}
	cmd.Flags().Bool("yes", false, "skip the confirmation prompt")
	return cmd
}

func newAdminSettingsCmd(a *app.App) *cobra.Command {
	var settings domain.StoreSettings

	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or update the store settings (kept locally)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			if !cmd.Flags().Changed("name") && !cmd.Flags().Changed("email") && !cmd.Flags().Changed("phone") {
				current, err := a.Admin.Settings(ctx)
				if err != nil {
					return err
				}
				notify(out, "Store name:  %s", current.Name)
				notify(out, "Store email: %s", current.Email)
				notify(out, "Store phone: %s", current.Phone)
				return nil
			}

			if err := a.Admin.SaveSettings(ctx, settings); err != nil {
				return err
			}
			notify(out, "Settings saved successfully")
			return nil
		},
	}

	cmd.Flags().StringVar(&settings.Name, "name", "", "store name")
	cmd.Flags().StringVar(&settings.Email, "email", "", "store contact email")
	cmd.Flags().StringVar(&settings.Phone, "phone", "", "store contact phone")
	return cmd
}

func renderOrders(cmd *cobra.Command, orders []domain.Order) {
	table := newTable(cmd.OutOrStdout())
	defer table.Flush()

	notify(table, "ID\tCUSTOMER\tTOTAL\tITEMS\tSTATUS\tDATE")
	for _, o := range orders {
		customer := o.UserName
		if customer == "" {
			customer = "N/A"
		}
		notify(table, "%s\t%s\t%s\t%d\t%s\t%s",
			shortID(o.ID), customer, formatCurrency(o.Total), len(o.Items),
			o.Status, formatDate(o.CreatedAt))
	}
}
