package revenue

import (
	"testing"
	"time"

	"github.com/example/shopsight/internal/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDailySeries(t *testing.T) {
	orders := []models.Order{
		{OrderID: 1, CustomerID: 1, OrderDate: date(2025, 3, 2), TotalAmount: 100, Status: models.StatusCompleted},
		{OrderID: 2, CustomerID: 2, OrderDate: date(2025, 3, 1), TotalAmount: 50, Status: models.StatusCompleted},
		{OrderID: 3, CustomerID: 3, OrderDate: date(2025, 3, 2), TotalAmount: 25, Status: models.StatusCompleted},
		{OrderID: 4, CustomerID: 4, OrderDate: date(2025, 3, 2), TotalAmount: 999, Status: models.StatusPending},
	}

	series := DailySeries(orders)
	if len(series) != 2 {
		t.Fatalf("expected 2 days, got %d", len(series))
	}
	if !series[0].Date.Equal(date(2025, 3, 1)) || series[0].Revenue != 50 {
		t.Errorf("day 1 = %v/%v, want 2025-03-01/50", series[0].Date, series[0].Revenue)
	}
	if !series[1].Date.Equal(date(2025, 3, 2)) || series[1].Revenue != 125 {
		t.Errorf("day 2 = %v/%v, want 2025-03-02/125 (pending order excluded)", series[1].Date, series[1].Revenue)
	}
}

func TestDailySeries_Empty(t *testing.T) {
	if got := DailySeries(nil); len(got) != 0 {
		t.Errorf("expected empty series, got %d rows", len(got))
	}
}

func TestSummarizeForecast(t *testing.T) {
	points := []models.ForecastPoint{
		{Date: date(2025, 6, 1), Predicted: 100, Lower: 80, Upper: 120},
		{Date: date(2025, 6, 2), Predicted: 200, Lower: 150, Upper: 250},
		{Date: date(2025, 6, 3), Predicted: 300, Lower: 250, Upper: 350},
	}

	s := SummarizeForecast(points, date(2025, 6, 1))
	if s.Days != 2 {
		t.Fatalf("days = %d, want 2 (cutoff is exclusive)", s.Days)
	}
	if s.Predicted != 500 {
		t.Errorf("predicted = %v, want 500", s.Predicted)
	}
	if s.AvgDaily != 250 {
		t.Errorf("avg daily = %v, want 250", s.AvgDaily)
	}
	if s.LowerBound != 400 || s.UpperBound != 600 {
		t.Errorf("bounds = %v/%v, want 400/600", s.LowerBound, s.UpperBound)
	}

	whole := SummarizeForecast(points, time.Time{})
	if whole.Days != 3 || whole.Predicted != 600 {
		t.Errorf("whole series = %d days/%v predicted, want 3/600", whole.Days, whole.Predicted)
	}
}
