// Package cli is the command surface of the storefront client. Commands
// validate input, call a service or the backend, and render a text fragment,
// mirroring the event-handler flow of the storefront this replaces.
package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/serikkalibeknur/project-clothesstore/internal/app"
)

// maxQuantityPerLine is the cap the UI enforces on a single line's quantity.
// The store itself never enforces it.
const maxQuantityPerLine = 10

// NewRootCmd builds the storefront command tree.
func NewRootCmd(a *app.App) *cobra.Command {
	root := &cobra.Command{
		Use:           "storefront",
		Short:         "Clothes-store client: browse products, manage your cart and wishlist, check out",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newProductsCmd(a),
		newCartCmd(a),
		newWishlistCmd(a),
		newLoginCmd(a),
		newRegisterCmd(a),
		newLogoutCmd(a),
		newWhoamiCmd(a),
		newAdminCmd(a),
	)

	return root
}

// confirm asks the user to confirm a destructive action. The --yes flag
// answers for them.
func confirm(cmd *cobra.Command, prompt string) (bool, error) {
	if yes, _ := cmd.Flags().GetBool("yes"); yes {
		return true, nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N]: ", prompt)
	reader := bufio.NewReader(cmd.InOrStdin())
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false, fmt.Errorf("read confirmation: %w", err)
	}

	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes", nil
}

// checkQuantity applies the UI-layer quantity bounds.
func checkQuantity(qty int) error {
	if qty < 1 || qty > maxQuantityPerLine {
		return fmt.Errorf("quantity must be between 1 and %d", maxQuantityPerLine)
	}
	return nil
}
