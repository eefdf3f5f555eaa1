package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/serikkalibeknur/project-clothesstore/internal/app"
	"github.com/serikkalibeknur/project-clothesstore/internal/domain"
	"github.com/serikkalibeknur/project-clothesstore/internal/service"
)

func newCartCmd(a *app.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Manage your cart and check out",
	}
	cmd.AddCommand(
		newCartShowCmd(a),
		newCartAddCmd(a),
		newCartQuickAddCmd(a),
		newCartUpdateCmd(a),
		newCartRemoveCmd(a),
		newCartClearCmd(a),
		newCartCouponCmd(a),
		newCartCheckoutCmd(a),
	)
	return cmd
}

func newCartShowCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the cart with its totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			cart, err := a.Cart.Get(cmd.Context())
			if err != nil {
				return err
			}
			renderCart(cmd.OutOrStdout(), cart)
			return nil
		},
	}
}

// renderCart prints the cart table and its totals, or the empty notice.
func renderCart(out io.Writer, cart domain.Cart) {
	if len(cart) == 0 {
		notify(out, "Your cart is empty")
		return
	}

	table := newTable(out)
	notify(table, "PRODUCT\tSIZE\tCOLOR\tPRICE\tQTY\tTOTAL")
	for _, item := range cart {
		notify(table, "%s\t%s\t%s\t%s\t%d\t%s",
			item.Name, item.Size, item.Color,
			formatCurrency(item.UnitPrice), item.Quantity,
			formatCurrency(item.LineTotal()))
	}
	table.Flush()

	totals := domain.ComputeTotals(cart)
	shipping := formatCurrency(totals.Shipping)
	if totals.FreeShipping() {
		shipping = "FREE"
	}
	notify(out, "\nSubtotal: %s", formatCurrency(totals.Subtotal))
	notify(out, "Shipping: %s", shipping)
	notify(out, "Tax:      %s", formatCurrency(totals.Tax))
	notify(out, "Total:    %s", formatCurrency(totals.Total))
}

func newCartAddCmd(a *app.App) *cobra.Command {
	var (
		qty   int
		size  string
		color string
	)

	cmd := &cobra.Command{
		Use:   "add <product-id>",
		Short: "Add a product to the cart in a chosen size and color",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if err := checkQuantity(qty); err != nil {
				return err
			}
			if size == "" {
				notify(cmd.OutOrStdout(), "Please select a size")
				return nil
			}
			if color == "" {
				notify(cmd.OutOrStdout(), "Please select a color")
				return nil
			}

			product, err := a.Catalog.Get(ctx, args[0])
			if err != nil {
				return err
			}

			_, merged, err := a.Cart.Add(ctx, service.AddItemInput{
				Product:  product,
				Quantity: qty,
				Size:     size,
				Color:    color,
			})
			if err != nil {
				return err
			}

			if merged {
				notify(cmd.OutOrStdout(), "%s quantity updated!", product.Name)
			} else {
				notify(cmd.OutOrStdout(), "%s added to cart!", product.Name)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&qty, "qty", 1, "quantity (1-10)")
	cmd.Flags().StringVar(&size, "size", "", "size")
	cmd.Flags().StringVar(&color, "color", "", "color")
	return cmd
}

func newCartQuickAddCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "quick-add <product-id>",
		Short: "Add one unit of a product in the default size and color",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			product, err := a.Catalog.Get(ctx, args[0])
			if err != nil {
				return err
			}
			if _, err := a.Cart.QuickAdd(ctx, product); err != nil {
				return err
			}

			notify(cmd.OutOrStdout(), "%s added to cart!", product.Name)
			return nil
		},
	}
}

func newCartUpdateCmd(a *app.App) *cobra.Command {
	var (
		qty   int
		size  string
		color string
	)

	cmd := &cobra.Command{
		Use:   "update <product-id>",
		Short: "Change the quantity of a cart line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if qty > maxQuantityPerLine {
				return checkQuantity(qty)
			}

			// A quantity below one leaves the line untouched, like the
			// number input it replaces; the cart is re-rendered either way.
			cart, err := a.Cart.UpdateQuantity(cmd.Context(), domain.ItemKey{
				ProductID: args[0],
				Size:      size,
				Color:     color,
			}, qty)
			if err != nil {
				return err
			}

			renderCart(cmd.OutOrStdout(), cart)
			return nil
		},
	}

	cmd.Flags().IntVar(&qty, "qty", 1, "new quantity (1-10)")
	cmd.Flags().StringVar(&size, "size", domain.DefaultSize, "size of the line to update")
	cmd.Flags().StringVar(&color, "color", domain.DefaultColor, "color of the line to update")
	return cmd
}

func newCartRemoveCmd(a *app.App) *cobra.Command {
	var size, color string

	cmd := &cobra.Command{
		Use:   "remove <product-id>",
		Short: "Remove a cart line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, name, err := a.Cart.Remove(cmd.Context(), domain.ItemKey{
				ProductID: args[0],
				Size:      size,
				Color:     color,
			})
			if err != nil {
				return err
			}
			notify(cmd.OutOrStdout(), "%s removed from cart", name)
			return nil
		},
	}

	cmd.Flags().StringVar(&size, "size", domain.DefaultSize, "size of the line to remove")
	cmd.Flags().StringVar(&color, "color", domain.DefaultColor, "color of the line to remove")
	return cmd
}

func newCartClearCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove everything from the cart",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.Cart.Clear(cmd.Context()); err != nil {
				return err
			}
			notify(cmd.OutOrStdout(), "Cart cleared")
			return nil
		},
	}
}

func newCartCouponCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "coupon <code>",
		Short: "Apply a coupon code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.Cart.ApplyCoupon(args[0]); err != nil {
				return err
			}
			notify(cmd.OutOrStdout(), "Coupon %s applied!", args[0])
			return nil
		},
	}
}

func newCartCheckoutCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "checkout",
		Short: "Submit the cart as an order",
		RunE: func(cmd *cobra.Command, args []string) error {
			order, err := a.Cart.Checkout(cmd.Context())
			if err != nil {
				return err
			}

			notify(cmd.OutOrStdout(), "Order placed successfully!")
			if order.ID != "" {
				notify(cmd.OutOrStdout(), "Order id: %s", order.ID)
			}
			return nil
		},
	}
}
