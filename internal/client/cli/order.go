package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/hvtran/shopfront/internal/client/models"
	"github.com/hvtran/shopfront/internal/client/services"
)

func printOrder(o models.Order) {
	fmt.Printf("Order #%d  %-10s  total %.0f  %s\n", o.ID, o.Status, o.TotalPrice, o.CreatedAt)
}

func printOrderDetail(o *models.Order) {
	printOrder(*o)
	for _, item := range o.Items {
		fmt.Printf("  %-32s  %3d x %10.0f = %12.0f\n", item.ProductName, item.Quantity, item.Price, item.Subtotal)
	}
	fmt.Printf("Ship to: %s, %s (%s)\n", o.RecipientName, o.ShippingAddress, o.RecipientPhone)
	if o.Notes != "" {
		fmt.Println("Notes:", o.Notes)
	}
}

// Checkout submits the cart as a cash-on-delivery order and, on success,
// clears the cart slot.
func (a *App) Checkout(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Please log in to checkout.")
		return nil
	}
	items := a.cart.Items()
	if len(items) == 0 {
		printlnFn("Your cart is empty.")
		return nil
	}

	address, err := getSimpleText(a.reader, "Shipping address", os.Stdout)
	if err != nil {
		return err
	}
	name, err := getSimpleText(a.reader, "Recipient name", os.Stdout)
	if err != nil {
		return err
	}
	phone, err := getSimpleText(a.reader, "Recipient phone", os.Stdout)
	if err != nil {
		return err
	}
	notes, err := getSimpleText(a.reader, "Notes (optional)", os.Stdout)
	if err != nil {
		return err
	}

	order, err := a.orders.Checkout(ctx, items, services.ShippingDetails{
		Address:        address,
		RecipientName:  name,
		RecipientPhone: phone,
		Notes:          notes,
	})
	if err != nil {
		printlnFn("Checkout failed:", err.Error())
		return err
	}

	notifyCart(a.cart.Clear(ctx, a.identity()))
	printlnFn(fmt.Sprintf("Order #%d placed, total %.0f. Payment: %s.", order.ID, order.TotalPrice, order.PaymentMethod))
	return nil
}

// MyOrders lists the logged-in user's order history.
func (a *App) MyOrders(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Please log in to see your orders.")
		return nil
	}

	page, err := a.orders.MyOrders(ctx, models.PageQuery{Page: a.promptPage()})
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	if len(page.Content) == 0 {
		printlnFn("No orders yet.")
		return nil
	}
	for _, o := range page.Content {
		printOrder(o)
	}
	printPageFooter(page.PageNumber, page.TotalPages, page.TotalElements)
	return nil
}

// TrackOrder shows one order with its lines.
func (a *App) TrackOrder(ctx context.Context) error {
	id, err := GetInt(a.reader, "Enter order id", os.Stdout)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	order, err := a.orders.Get(ctx, id)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	printOrderDetail(order)
	return nil
}

// CancelOrder cancels a pending order.
func (a *App) CancelOrder(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Please log in first.")
		return nil
	}

	id, err := GetInt(a.reader, "Enter order id to cancel", os.Stdout)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	order, err := a.orders.Cancel(ctx, id)
	if err != nil {
		printlnFn("Cancel failed:", err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Order #%d is now %s.", order.ID, order.Status))
	return nil
}
