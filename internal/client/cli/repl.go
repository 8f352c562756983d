package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	isAdmin() bool

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error

	Products(ctx context.Context) error
	ProductDetail(ctx context.Context) error
	Categories(ctx context.Context) error

	ShowCart(ctx context.Context) error
	AddToCart(ctx context.Context) error
	RemoveFromCart(ctx context.Context) error
	UpdateCartQuantity(ctx context.Context) error
	ClearCart(ctx context.Context) error

	Checkout(ctx context.Context) error
	MyOrders(ctx context.Context) error
	TrackOrder(ctx context.Context) error
	CancelOrder(ctx context.Context) error

	AdminUsers(ctx context.Context) error
	AdminProducts(ctx context.Context) error
	AdminCategories(ctx context.Context) error
	AdminOrders(ctx context.Context) error
	Stats(ctx context.Context) error
}

const (
	helpGuest    = "Available commands: products, product, categories, cart, add, remove, qty, clear, track, login, register, exit"
	helpCustomer = "Available commands: products, product, categories, cart, add, remove, qty, clear, checkout, orders, track, cancel, logout, exit"
	helpAdmin    = "Admin commands: admin-users, admin-products, admin-categories, admin-orders, stats"
)

// runREPL starts a simple read–eval–print loop for the shopfront CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers print
// their own messages. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("shop %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpCustomer)
				if a.isAdmin() {
					printlnFn(helpAdmin)
				}
			} else {
				printlnFn(helpGuest)
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "p", "products":
			_ = a.Products(ctx)

		case "product":
			_ = a.ProductDetail(ctx)

		case "categories":
			_ = a.Categories(ctx)

		case "cart":
			_ = a.ShowCart(ctx)

		case "add":
			_ = a.AddToCart(ctx)

		case "remove":
			_ = a.RemoveFromCart(ctx)

		case "qty":
			_ = a.UpdateCartQuantity(ctx)

		case "clear":
			_ = a.ClearCart(ctx)

		case "checkout":
			_ = a.Checkout(ctx)

		case "orders":
			_ = a.MyOrders(ctx)

		case "track":
			_ = a.TrackOrder(ctx)

		case "cancel":
			_ = a.CancelOrder(ctx)

		case "admin-users":
			_ = adminOnly(ctx, a, a.AdminUsers)

		case "admin-products":
			_ = adminOnly(ctx, a, a.AdminProducts)

		case "admin-categories":
			_ = adminOnly(ctx, a, a.AdminCategories)

		case "admin-orders":
			_ = adminOnly(ctx, a, a.AdminOrders)

		case "stats":
			_ = adminOnly(ctx, a, a.Stats)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

// adminOnly gates back-office commands on the admin role.
func adminOnly(ctx context.Context, a execIface, fn func(context.Context) error) error {
	if !a.isAdmin() {
		printlnFn("Admin access required.")
		return nil
	}
	return fn(ctx)
}
