// Package cli provides the interactive shopfront command-line client.
//
// It wires configuration, the local SQLite store, the REST API client, the
// cart store and the session manager into an interactive REPL. Typical flow:
// restore a persisted session, announce the resulting identity (which loads
// the matching cart slot), and execute user commands.
//
// Key features:
//   - Browse products and categories, view product details
//   - Manage the cart: add, remove, change quantity, clear
//   - Checkout (cash on delivery), track and cancel orders
//   - Login / Register / Logout with locally persisted sessions
//   - Back-office commands for admins: users, products, categories, orders,
//     statistics
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
