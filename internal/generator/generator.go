// Package generator produces a deterministic synthetic order ledger for
// development and demos. Given the same settings and seed it always emits
// the same rows.
package generator

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/example/shopsight/internal/models"
)

// Settings control the size and shape of the generated ledger.
type Settings struct {
	Seed      int64
	Customers int
	Orders    int
	Products  int
	StartDate time.Time
	EndDate   time.Time
}

// Ledger is the full set of generated tables.
type Ledger struct {
	Customers  []models.Customer
	Orders     []models.Order
	Products   []models.Product
	OrderItems []models.OrderItem
}

var locations = []string{"New York", "Los Angeles", "Chicago", "Houston", "Phoenix", "Boston", "Seattle"}

var ageGroups = []weighted[string]{
	{"18-25", 0.20}, {"26-35", 0.30}, {"36-45", 0.25}, {"46-55", 0.15}, {"55+", 0.10},
}

var statuses = []weighted[string]{
	{models.StatusCompleted, 0.85}, {models.StatusPending, 0.10}, {models.StatusCancelled, 0.05},
}

var quantities = []weighted[int]{
	{1, 0.70}, {2, 0.20}, {3, 0.10},
}

var discounts = []weighted[float64]{
	{0, 0.50}, {5, 0.20}, {10, 0.15}, {15, 0.10}, {20, 0.05},
}

var categories = []string{
	"Electronics", "Clothing", "Home & Kitchen", "Beauty & Personal Care",
	"Sports & Outdoors", "Books", "Toys & Games",
}

type weighted[T any] struct {
	value  T
	weight float64
}

func pick[T any](r *rand.Rand, choices []weighted[T]) T {
	roll := r.Float64()
	for _, c := range choices {
		if roll < c.weight {
			return c.value
		}
		roll -= c.weight
	}
	return choices[len(choices)-1].value
}

// Generate builds the synthetic ledger. Returns an error for settings that
// cannot produce a usable ledger.
func Generate(s Settings) (*Ledger, error) {
	if s.Customers <= 0 || s.Orders <= 0 || s.Products <= 0 {
		return nil, fmt.Errorf("generator settings must be positive (customers=%d orders=%d products=%d)",
			s.Customers, s.Orders, s.Products)
	}
	if !s.EndDate.After(s.StartDate) {
		return nil, fmt.Errorf("end date %s is not after start date %s",
			s.EndDate.Format("2006-01-02"), s.StartDate.Format("2006-01-02"))
	}

	r := rand.New(rand.NewSource(s.Seed))
	rangeDays := int(s.EndDate.Sub(s.StartDate).Hours() / 24)

	l := &Ledger{
		Customers:  make([]models.Customer, 0, s.Customers),
		Orders:     make([]models.Order, 0, s.Orders),
		Products:   make([]models.Product, 0, s.Products),
		OrderItems: make([]models.OrderItem, 0, s.Orders),
	}

	for id := 1; id <= s.Customers; id++ {
		l.Customers = append(l.Customers, models.Customer{
			CustomerID: id,
			SignupDate: s.StartDate.AddDate(0, 0, r.Intn(rangeDays+1)),
			Location:   locations[r.Intn(len(locations))],
			AgeGroup:   pick(r, ageGroups),
		})
	}

	// Repeat-buyer skew: most order volume concentrates on a small pool of
	// customers, the rest spreads uniformly.
	repeatPool := s.Customers / 5
	if repeatPool < 1 {
		repeatPool = 1
	}
	repeatOrders := int(float64(s.Orders) * 0.6)

	for id := 1; id <= s.Orders; id++ {
		var customerID int
		if id <= repeatOrders {
			customerID = 1 + r.Intn(repeatPool)
		} else {
			customerID = 1 + r.Intn(s.Customers)
		}

		offset := int(r.ExpFloat64() * float64(rangeDays) / 2)
		if offset > rangeDays {
			offset = rangeDays
		}

		l.Orders = append(l.Orders, models.Order{
			OrderID:     id,
			CustomerID:  customerID,
			OrderDate:   s.StartDate.AddDate(0, 0, offset),
			TotalAmount: roundCents(gamma2(r, 50)),
			Status:      pick(r, statuses),
		})
	}

	for id := 1; id <= s.Products; id++ {
		cost := roundCents(10 + r.Float64()*90)
		retail := roundCents(20 + r.Float64()*180)
		if retail < cost*1.3 {
			retail = roundCents(cost * 1.3)
		}
		l.Products = append(l.Products, models.Product{
			ProductID:    id,
			Name:         fmt.Sprintf("Product_%04d", id),
			Category:     categories[r.Intn(len(categories))],
			CostPrice:    cost,
			RetailPrice:  retail,
			CurrentStock: r.Intn(500),
		})
	}

	for id := 1; id <= s.Orders; id++ {
		l.OrderItems = append(l.OrderItems, models.OrderItem{
			ItemID:         id,
			OrderID:        id,
			ProductID:      1 + r.Intn(s.Products),
			Quantity:       pick(r, quantities),
			UnitPrice:      roundCents(20 + r.Float64()*180),
			DiscountAmount: pick(r, discounts),
		})
	}

	return l, nil
}

// gamma2 samples Gamma(shape=2, scale) as the sum of two exponentials,
// matching the skewed order-amount distribution of real baskets.
func gamma2(r *rand.Rand, scale float64) float64 {
	return scale * (r.ExpFloat64() + r.ExpFloat64())
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
