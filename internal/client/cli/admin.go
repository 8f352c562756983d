package cli

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/hvtran/shopfront/internal/client/models"
)

// promptAction reads one of the allowed action words; empty input selects
// the first one.
func (a *App) promptAction(actions ...string) (string, error) {
	prompt := "Action ["
	for i, act := range actions {
		if i > 0 {
			prompt += "/"
		}
		prompt += act
	}
	prompt += "]"

	text, err := getSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		return "", err
	}
	if text == "" {
		return actions[0], nil
	}
	for _, act := range actions {
		if text == act {
			return act, nil
		}
	}
	printlnFn("Unknown action:", text)
	return "", nil
}

func printUser(u models.User) {
	fmt.Printf("%5d  %-20s  %-28s  %-9s  %s\n", u.ID, u.Username, u.Email, u.Role, u.Status)
}

// AdminUsers manages customer accounts.
func (a *App) AdminUsers(ctx context.Context) error {
	action, err := a.promptAction("list", "search", "create", "status", "delete")
	if err != nil || action == "" {
		return err
	}

	switch action {
	case "list", "search":
		q := models.PageQuery{Page: a.promptPage()}
		var page *models.Page[models.User]
		if action == "search" {
			q.Keyword, err = getSimpleText(a.reader, "Keyword", os.Stdout)
			if err != nil {
				return err
			}
			page, err = a.admin.SearchUsers(ctx, q)
		} else {
			page, err = a.admin.Users(ctx, q)
		}
		if err != nil {
			printlnFn("Error:", err.Error())
			return err
		}
		for _, u := range page.Content {
			printUser(u)
		}
		printPageFooter(page.PageNumber, page.TotalPages, page.TotalElements)

	case "create":
		var req models.UserRequest
		if req.Username, err = getSimpleText(a.reader, "Username", os.Stdout); err != nil {
			return err
		}
		if req.Email, err = getSimpleText(a.reader, "Email", os.Stdout); err != nil {
			return err
		}
		if req.FullName, err = getSimpleText(a.reader, "Full name", os.Stdout); err != nil {
			return err
		}
		if req.Phone, err = getSimpleText(a.reader, "Phone", os.Stdout); err != nil {
			return err
		}
		if req.Role, err = a.promptAction(models.RoleCustomer, models.RoleAdmin); err != nil || req.Role == "" {
			return err
		}
		pw, err := getPassword(os.Stdout)
		if err != nil {
			return err
		}
		req.Password = string(pw)

		user, err := a.admin.CreateUser(ctx, req)
		if err != nil {
			printlnFn("Error:", err.Error())
			return err
		}
		printlnFn(fmt.Sprintf("Created user #%d.", user.ID))

	case "status":
		id, err := GetInt(a.reader, "User id", os.Stdout)
		if err != nil {
			printlnFn("Error:", err.Error())
			return err
		}
		status, err := a.promptAction(models.UserStatusActive, models.UserStatusInactive, models.UserStatusBanned)
		if err != nil || status == "" {
			return err
		}
		user, err := a.admin.SetUserStatus(ctx, id, status)
		if err != nil {
			printlnFn("Error:", err.Error())
			return err
		}
		printlnFn(fmt.Sprintf("User #%d is now %s.", user.ID, user.Status))

	case "delete":
		id, err := GetInt(a.reader, "User id", os.Stdout)
		if err != nil {
			printlnFn("Error:", err.Error())
			return err
		}
		if err := a.admin.DeleteUser(ctx, id); err != nil {
			printlnFn("Error:", err.Error())
			return err
		}
		printlnFn("Deleted.")
	}
	return nil
}

// AdminProducts manages the catalog.
func (a *App) AdminProducts(ctx context.Context) error {
	action, err := a.promptAction("create", "update", "delete")
	if err != nil || action == "" {
		return err
	}

	if action == "delete" {
		id, err := GetInt(a.reader, "Product id", os.Stdout)
		if err != nil {
			printlnFn("Error:", err.Error())
			return err
		}
		if err := a.admin.DeleteProduct(ctx, id); err != nil {
			printlnFn("Error:", err.Error())
			return err
		}
		printlnFn("Deleted.")
		return nil
	}

	var id int64
	if action == "update" {
		if id, err = GetInt(a.reader, "Product id", os.Stdout); err != nil {
			printlnFn("Error:", err.Error())
			return err
		}
	}

	var req models.ProductRequest
	if req.Name, err = getSimpleText(a.reader, "Name", os.Stdout); err != nil {
		return err
	}
	if req.Description, err = getSimpleText(a.reader, "Description", os.Stdout); err != nil {
		return err
	}
	priceText, err := getSimpleText(a.reader, "Price", os.Stdout)
	if err != nil {
		return err
	}
	if req.Price, err = strconv.ParseFloat(priceText, 64); err != nil {
		printlnFn("Not a number:", priceText)
		return err
	}
	stock, err := GetInt(a.reader, "Stock", os.Stdout)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	req.Stock = int(stock)
	if req.CategoryID, err = GetInt(a.reader, "Category id", os.Stdout); err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	var p *models.Product
	if action == "create" {
		p, err = a.admin.CreateProduct(ctx, req)
	} else {
		p, err = a.admin.UpdateProduct(ctx, id, req)
	}
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	printlnFn(fmt.Sprintf("Saved product #%d.", p.ID))
	return nil
}

// AdminCategories manages categories.
func (a *App) AdminCategories(ctx context.Context) error {
	action, err := a.promptAction("list", "create", "update", "delete")
	if err != nil || action == "" {
		return err
	}

	switch action {
	case "list":
		return a.Categories(ctx)

	case "create", "update":
		var id int64
		if action == "update" {
			if id, err = GetInt(a.reader, "Category id", os.Stdout); err != nil {
				printlnFn("Error:", err.Error())
				return err
			}
		}
		var req models.CategoryRequest
		if req.Name, err = getSimpleText(a.reader, "Name", os.Stdout); err != nil {
			return err
		}
		if req.Description, err = getSimpleText(a.reader, "Description", os.Stdout); err != nil {
			return err
		}

		var c *models.Category
		if action == "create" {
			c, err = a.admin.CreateCategory(ctx, req)
		} else {
			c, err = a.admin.UpdateCategory(ctx, id, req)
		}
		if err != nil {
			printlnFn("Error:", err.Error())
			return err
		}
		printlnFn(fmt.Sprintf("Saved category #%d.", c.ID))

	case "delete":
		id, err := GetInt(a.reader, "Category id", os.Stdout)
		if err != nil {
			printlnFn("Error:", err.Error())
			return err
		}
		if err := a.admin.DeleteCategory(ctx, id); err != nil {
			printlnFn("Error:", err.Error())
			return err
		}
		printlnFn("Deleted.")
	}
	return nil
}

// AdminOrders manages order fulfilment.
func (a *App) AdminOrders(ctx context.Context) error {
	action, err := a.promptAction("list", "by-status", "search", "set-status")
	if err != nil || action == "" {
		return err
	}

	switch action {
	case "list", "by-status", "search":
		q := models.PageQuery{Page: a.promptPage()}
		var page *models.Page[models.Order]
		switch action {
		case "by-status":
			status, err := a.promptAction(models.OrderStatusPending, models.OrderStatusShipping,
				models.OrderStatusCompleted, models.OrderStatusCancelled)
			if err != nil || status == "" {
				return err
			}
			page, err = a.admin.OrdersByStatus(ctx, status, q)
			if err != nil {
				printlnFn("Error:", err.Error())
				return err
			}
		case "search":
			q.Keyword, err = getSimpleText(a.reader, "Keyword", os.Stdout)
			if err != nil {
				return err
			}
			page, err = a.admin.SearchOrders(ctx, q)
			if err != nil {
				printlnFn("Error:", err.Error())
				return err
			}
		default:
			page, err = a.admin.Orders(ctx, q)
			if err != nil {
				printlnFn("Error:", err.Error())
				return err
			}
		}
		for _, o := range page.Content {
			printOrder(o)
		}
		printPageFooter(page.PageNumber, page.TotalPages, page.TotalElements)

	case "set-status":
		id, err := GetInt(a.reader, "Order id", os.Stdout)
		if err != nil {
			printlnFn("Error:", err.Error())
			return err
		}
		status, err := a.promptAction(models.OrderStatusPending, models.OrderStatusShipping,
			models.OrderStatusCompleted, models.OrderStatusCancelled)
		if err != nil || status == "" {
			return err
		}
		order, err := a.admin.UpdateOrderStatus(ctx, id, status)
		if err != nil {
			printlnFn("Error:", err.Error())
			return err
		}
		printlnFn(fmt.Sprintf("Order #%d is now %s.", order.ID, order.Status))
	}
	return nil
}

// Stats prints the dashboard, or a date-range report when asked for one.
func (a *App) Stats(ctx context.Context) error {
	action, err := a.promptAction("dashboard", "range")
	if err != nil || action == "" {
		return err
	}

	var stats *models.Statistics
	if action == "range" {
		startText, err := getSimpleText(a.reader, "Start date (YYYY-MM-DD)", os.Stdout)
		if err != nil {
			return err
		}
		endText, err := getSimpleText(a.reader, "End date (YYYY-MM-DD)", os.Stdout)
		if err != nil {
			return err
		}
		start, err := time.Parse("2006-01-02", startText)
		if err != nil {
			printlnFn("Bad date:", startText)
			return err
		}
		end, err := time.Parse("2006-01-02", endText)
		if err != nil {
			printlnFn("Bad date:", endText)
			return err
		}
		stats, err = a.admin.StatisticsRange(ctx, start, end)
		if err != nil {
			printlnFn("Error:", err.Error())
			return err
		}
	} else {
		stats, err = a.admin.Dashboard(ctx)
		if err != nil {
			printlnFn("Error:", err.Error())
			return err
		}
	}

	fmt.Printf("Revenue: %.0f over %d orders\n", stats.TotalRevenue, stats.TotalOrders)
	fmt.Printf("Customers: %d, products: %d\n", stats.TotalCustomers, stats.TotalProducts)
	fmt.Printf("Orders: %d pending, %d shipping, %d completed, %d cancelled\n",
		stats.PendingOrders, stats.ShippingOrders, stats.CompletedOrders, stats.CancelledOrders)

	if len(stats.TopSellingProducts) > 0 {
		fmt.Println("Top sellers:")
		for _, p := range stats.TopSellingProducts {
			fmt.Printf("  %-32s  sold %5d  revenue %12.0f\n", p.ProductName, p.TotalQuantitySold, p.TotalRevenue)
		}
	}
	if len(stats.RevenueByDate) > 0 {
		dates := make([]string, 0, len(stats.RevenueByDate))
		for d := range stats.RevenueByDate {
			dates = append(dates, d)
		}
		sort.Strings(dates)
		fmt.Println("Revenue by date:")
		for _, d := range dates {
			fmt.Printf("  %s  %12.0f\n", d, stats.RevenueByDate[d])
		}
	}
	return nil
}
