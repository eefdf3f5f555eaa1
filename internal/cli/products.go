package cli

import (
	"github.com/spf13/cobra"

	"github.com/serikkalibeknur/project-clothesstore/internal/app"
	"github.com/serikkalibeknur/project-clothesstore/internal/domain"
)

func newProductsCmd(a *app.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "products",
		Short: "Browse the catalog",
	}
	cmd.AddCommand(newProductsListCmd(a), newProductsShowCmd(a), newProductsRelatedCmd(a))
	return cmd
}

func newProductsListCmd(a *app.App) *cobra.Command {
	var category, search string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List products, optionally filtered by category and search text",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			// The full list is fetched once; category and search narrow the
			// in-memory snapshot, not the backend query.
			products, err := a.Catalog.List(ctx, "")
			if err != nil {
				return err
			}
			products = a.Catalog.Filter(products, category, search)

			if len(products) == 0 {
				notify(cmd.OutOrStdout(), "No products found")
				return nil
			}

			renderProducts(cmd, products)
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "exact category to filter by")
	cmd.Flags().StringVar(&search, "search", "", "case-insensitive text to match in name or description")
	return cmd
}

func newProductsShowCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <product-id>",
		Short: "Show a product and related items from its category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			product, err := a.Catalog.Get(ctx, args[0])
			if err != nil {
				return err
			}

			notify(out, "%s", product.Name)
			notify(out, "  Price:    %s", formatCurrency(product.Price))
			notify(out, "  Category: %s", product.Category)
			notify(out, "  Stock:    %d", product.Stock)
			if product.Description != "" {
				notify(out, "  %s", product.Description)
			}

			related, err := a.Catalog.Related(ctx, product.Category, product.ID)
			if err != nil {
				return err
			}
			if len(related) > 0 {
				notify(out, "\nRelated products:")
				renderProducts(cmd, related)
			}
			return nil
		},
	}
}

func newProductsRelatedCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "related <product-id>",
		Short: "Show other products from the same category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			product, err := a.Catalog.Get(ctx, args[0])
			if err != nil {
				return err
			}

			related, err := a.Catalog.Related(ctx, product.Category, product.ID)
			if err != nil {
				return err
			}
			if len(related) == 0 {
				notify(cmd.OutOrStdout(), "No related products found")
				return nil
			}

			renderProducts(cmd, related)
			return nil
		},
	}
}

func renderProducts(cmd *cobra.Command, products []domain.Product) {
	table := newTable(cmd.OutOrStdout())
	defer table.Flush()

	notify(table, "ID\tNAME\tPRICE\tCATEGORY\tSTOCK")
	for _, p := range products {
		notify(table, "%s\t%s\t%s\t%s\t%d",
			shortID(p.ID), p.Name, formatCurrency(p.Price), p.Category, p.Stock)
	}
}
