package cli

import (
	"fmt"

	"github.com/hvtran/shopfront/internal/client/cart"
)

// notifyCart maps a cart operation outcome to the message the user sees.
// The cart store itself never prints; this adapter is the single place where
// outcomes become words.
func notifyCart(res cart.Result) {
	switch res.Outcome {
	case cart.OutcomeAdded:
		printlnFn("Added to cart.")
	case cart.OutcomeQuantityUpdated:
		printlnFn("Cart quantity updated.")
	case cart.OutcomeRemoved:
		printlnFn("Removed from cart.")
	case cart.OutcomeCleared:
		printlnFn("Cart cleared.")
	case cart.OutcomeRejectedStock:
		printlnFn(fmt.Sprintf("Only %d left in stock!", res.Remaining))
	case cart.OutcomeRejectedQuantity:
		printlnFn("Quantity must be greater than 0!")
	case cart.OutcomeNoop:
		printlnFn("That product is not in the cart.")
	}
}
