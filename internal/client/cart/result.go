package cart

// Outcome tags the result of a cart mutation. The store never prints or
// toasts anything itself; callers map outcomes to user-facing messages.
type Outcome int

const (
	// OutcomeAdded: a new line was created for the product.
	OutcomeAdded Outcome = iota
	// OutcomeQuantityUpdated: the product was already in the cart and its
	// quantity was increased (AddItem) or set (UpdateQuantity).
	OutcomeQuantityUpdated
	// OutcomeRemoved: the line for the product was removed (or was absent).
	OutcomeRemoved
	// OutcomeCleared: the whole cart was emptied and its slot deleted.
	OutcomeCleared
	// OutcomeRejectedStock: the requested quantity exceeds the product's
	// stock snapshot; nothing was mutated. Remaining carries the stock.
	OutcomeRejectedStock
	// OutcomeRejectedQuantity: the requested quantity was not positive;
	// nothing was mutated.
	OutcomeRejectedQuantity
	// OutcomeNoop: the target line does not exist; nothing was mutated.
	OutcomeNoop
)

// Result is the tagged outcome of a single cart operation.
type Result struct {
	Outcome   Outcome
	Remaining int // units available, set for OutcomeRejectedStock
}

// Rejected reports whether the operation declined to mutate the cart.
func (r Result) Rejected() bool {
	return r.Outcome == OutcomeRejectedStock || r.Outcome == OutcomeRejectedQuantity
}
