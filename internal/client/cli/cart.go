package cli

import (
	"context"
	"fmt"
	"os"
)

// ShowCart prints the current cart with derived totals.
func (a *App) ShowCart(ctx context.Context) error {
	items := a.cart.Items()
	if len(items) == 0 {
		printlnFn("Your cart is empty.")
		return nil
	}

	for _, item := range items {
		fmt.Printf("%5d  %-32s  %3d x %10.0f = %12.0f\n",
			item.Product.ID, item.Product.Name, item.Quantity, item.Product.Price, item.Subtotal())
	}
	fmt.Printf("Items: %d, total: %.0f\n", a.cart.TotalItems(), a.cart.TotalPrice())
	return nil
}

// AddToCart fetches a fresh product snapshot (price and stock as of now) and
// adds the requested quantity to the cart.
func (a *App) AddToCart(ctx context.Context) error {
	id, err := GetInt(a.reader, "Enter product id", os.Stdout)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	product, err := a.catalog.Product(ctx, id)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	qty, err := GetInt(a.reader, "Quantity", os.Stdout)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	notifyCart(a.cart.AddItem(ctx, *product, int(qty), a.identity()))
	return nil
}

func (a *App) RemoveFromCart(ctx context.Context) error {
	id, err := GetInt(a.reader, "Enter product id", os.Stdout)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	notifyCart(a.cart.RemoveItem(ctx, id, a.identity()))
	return nil
}

func (a *App) UpdateCartQuantity(ctx context.Context) error {
	id, err := GetInt(a.reader, "Enter product id", os.Stdout)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	qty, err := GetInt(a.reader, "New quantity", os.Stdout)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	notifyCart(a.cart.UpdateQuantity(ctx, id, int(qty), a.identity()))
	return nil
}

func (a *App) ClearCart(ctx context.Context) error {
	notifyCart(a.cart.Clear(ctx, a.identity()))
	return nil
}
