package cli

import (
	"github.com/spf13/cobra"

	"github.com/serikkalibeknur/project-clothesstore/internal/app"
)

func newWishlistCmd(a *app.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wishlist",
		Short: "Manage your saved products",
	}
	cmd.AddCommand(
		newWishlistShowCmd(a),
		newWishlistToggleCmd(a),
		newWishlistRemoveCmd(a),
		newWishlistMoveCmd(a),
	)
	return cmd
}

func newWishlistShowCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the wishlist",
		RunE: func(cmd *cobra.Command, args []string) error {
			wishlist, err := a.Wishlist.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(wishlist) == 0 {
				notify(cmd.OutOrStdout(), "Your wishlist is empty")
				return nil
			}

			table := newTable(cmd.OutOrStdout())
			defer table.Flush()

			notify(table, "ID\tNAME\tPRICE")
			for _, item := range wishlist {
				notify(table, "%s\t%s\t%s",
					shortID(item.ProductID), item.Name, formatCurrency(item.UnitPrice))
			}
			return nil
		},
	}
}

func newWishlistToggleCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <product-id>",
		Short: "Add a product to the wishlist, or remove it when already saved",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			product, err := a.Catalog.Get(ctx, args[0])
			if err != nil {
				return err
			}

			added, err := a.Wishlist.Toggle(ctx, product)
			if err != nil {
				return err
			}

			if added {
				notify(cmd.OutOrStdout(), "%s added to favorites!", product.Name)
			} else {
				notify(cmd.OutOrStdout(), "%s removed from favorites", product.Name)
			}
			return nil
		},
	}
}

func newWishlistRemoveCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <product-id>",
		Short: "Remove a product from the wishlist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := a.Wishlist.Remove(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			notify(cmd.OutOrStdout(), "%s removed from wishlist", name)
			return nil
		},
	}
}

func newWishlistMoveCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "move <product-id>",
		Short: "Move a saved product into the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := a.Wishlist.MoveToCart(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			notify(cmd.OutOrStdout(), "%s added to cart!", name)
			return nil
		},
	}
}
