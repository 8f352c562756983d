package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/hvtran/shopfront/internal/client/models"
)

// promptPage reads a 1-based page number, returning the API's 0-based index.
// Empty or malformed input means the first page.
func (a *App) promptPage() int {
	text, err := getSimpleText(a.reader, "Page (empty for first)", os.Stdout)
	if err != nil || text == "" {
		return 0
	}
	n, err := strconv.Atoi(text)
	if err != nil || n < 1 {
		return 0
	}
	return n - 1
}

func printProduct(p models.Product) {
	fmt.Printf("%5d  %-32s  %12.0f  stock %4d  %s\n", p.ID, p.Name, p.Price, p.Stock, p.Status)
}

func printPageFooter(pageNumber, totalPages int, totalElements int64) {
	fmt.Printf("-- page %d/%d, %d total --\n", pageNumber+1, totalPages, totalElements)
}

// Products lists the catalog with optional keyword search.
func (a *App) Products(ctx context.Context) error {
	keyword, err := getSimpleText(a.reader, "Search keyword (empty for all)", os.Stdout)
	if err != nil {
		return err
	}
	page := a.promptPage()

	result, err := a.catalog.Products(ctx, models.ProductQuery{Page: page, Keyword: keyword})
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	if len(result.Content) == 0 {
		printlnFn("No products found.")
		return nil
	}
	for _, p := range result.Content {
		printProduct(p)
	}
	printPageFooter(result.PageNumber, result.TotalPages, result.TotalElements)
	return nil
}

// ProductDetail shows a single product.
func (a *App) ProductDetail(ctx context.Context) error {
	id, err := GetInt(a.reader, "Enter product id", os.Stdout)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	p, err := a.catalog.Product(ctx, id)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	fmt.Printf("#%d %s\n", p.ID, p.Name)
	if p.Description != "" {
		fmt.Println(p.Description)
	}
	fmt.Printf("Price: %.0f\n", p.Price)
	fmt.Printf("Stock: %d\n", p.Stock)
	if p.CategoryName != "" {
		fmt.Printf("Category: %s\n", p.CategoryName)
	}
	if q := a.cart.Quantity(p.ID); q > 0 {
		fmt.Printf("In your cart: %d\n", q)
	}
	return nil
}

// Categories lists all categories.
func (a *App) Categories(ctx context.Context) error {
	categories, err := a.catalog.Categories(ctx)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	if len(categories) == 0 {
		printlnFn("No categories.")
		return nil
	}
	for _, c := range categories {
		fmt.Printf("%5d  %s\n", c.ID, c.Name)
	}
	return nil
}
