package sqlite_test

import (
	"context"
	"testing"

	"github.com/example/shopsight/internal/adapters/sqlite"
	"github.com/example/shopsight/internal/models"
)

func TestCatalogRepository_ReplaceAndCounts(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewCatalogRepository(db)
	ctx := context.Background()

	customers := []models.Customer{
		{CustomerID: 1, SignupDate: testDate(2023, 5, 1), Location: "Boston", AgeGroup: "26-35"},
		{CustomerID: 2, SignupDate: testDate(2024, 1, 15), Location: "Seattle", AgeGroup: "18-25"},
	}
	products := []models.Product{
		{ProductID: 1, Name: "Product_0001", Category: "Books", CostPrice: 10, RetailPrice: 25, CurrentStock: 40},
	}
	items := []models.OrderItem{
		{ItemID: 1, OrderID: 1, ProductID: 1, Quantity: 2, UnitPrice: 25, DiscountAmount: 5},
		{ItemID: 2, OrderID: 2, ProductID: 1, Quantity: 1, UnitPrice: 25, DiscountAmount: 0},
		{ItemID: 3, OrderID: 3, ProductID: 1, Quantity: 1, UnitPrice: 25, DiscountAmount: 0},
	}

	if err := repo.ReplaceCustomers(ctx, customers); err != nil {
		t.Fatalf("ReplaceCustomers failed: %v", err)
	}
	if err := repo.ReplaceProducts(ctx, products); err != nil {
		t.Fatalf("ReplaceProducts failed: %v", err)
	}
	if err := repo.ReplaceOrderItems(ctx, items); err != nil {
		t.Fatalf("ReplaceOrderItems failed: %v", err)
	}

	nCustomers, nProducts, nItems, err := repo.Counts(ctx)
	if err != nil {
		t.Fatalf("Counts failed: %v", err)
	}
	if nCustomers != 2 || nProducts != 1 || nItems != 3 {
		t.Errorf("counts = %d/%d/%d, want 2/1/3", nCustomers, nProducts, nItems)
	}

	// Replacing again must not accumulate rows.
	if err := repo.ReplaceCustomers(ctx, customers[:1]); err != nil {
		t.Fatalf("second ReplaceCustomers failed: %v", err)
	}
	nCustomers, _, _, err = repo.Counts(ctx)
	if err != nil {
		t.Fatalf("Counts failed: %v", err)
	}
	if nCustomers != 1 {
		t.Errorf("customers = %d, want 1 after replace", nCustomers)
	}
}
