package domain_test

import (
	"errors"
	"testing"
	"time"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

// helper для создания базового заказа с двумя единицами.
func makeOrder() domain.Order {
	now := time.Now().UTC()
	return domain.Order{
		Number:     "K7M2QX9P",
		CustomerID: "customer-1",
		Status:     domain.OrderStatusCreated,
		Recipient:  domain.Recipient{Name: "Ivan", Address: "Lenina 1", Phone: "+70000000000"},
		Details: []domain.OrderDetail{
			{ProductID: 1, Name: "Sneaker", PriceMinor: 500, Size: 42},
			{ProductID: 1, Name: "Sneaker", PriceMinor: 500, Size: 42},
		},
		SubtotalMinor: 1000,
		DiscountMinor: 100,
		TotalMinor:    900,
		StockState:    domain.StockStatePending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func TestOrderValidateInvariants_Ok(t *testing.T) {
	order := makeOrder()
	if errs := order.ValidateInvariants(); len(errs) != 0 {
		t.Fatalf("expected no validation errors, got %v", errs)
	}
}

func TestOrderValidateInvariants_Errors(t *testing.T) {
	cases := []struct {
		name string
		mut  func(o *domain.Order)
	}{
		{name: "no number", mut: func(o *domain.Order) { o.Number = "" }},
		{name: "no details", mut: func(o *domain.Order) { o.Details = nil }},
		{name: "no recipient", mut: func(o *domain.Order) { o.Recipient.Name = " " }},
		{name: "bad size", mut: func(o *domain.Order) { o.Details[0].Size = 0 }},
		{name: "subtotal mismatch", mut: func(o *domain.Order) { o.SubtotalMinor = 999 }},
		{name: "discount too big", mut: func(o *domain.Order) { o.DiscountMinor = 2000 }},
		{name: "total mismatch", mut: func(o *domain.Order) { o.TotalMinor = 1000 }},
		{name: "unknown status", mut: func(o *domain.Order) { o.Status = "lost" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			order := makeOrder()
			tc.mut(&order)
			if len(order.ValidateInvariants()) == 0 {
				t.Fatalf("expected validation errors for case %s", tc.name)
			}
		})
	}
}

func TestOrderApplyStatus_PaymentDateStampedOnce(t *testing.T) {
	order := makeOrder()
	first := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	if err := order.ApplyStatus(domain.OrderStatusPaid, first); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.PaymentDate == nil || !order.PaymentDate.Equal(first) {
		t.Fatalf("payment date = %v, want %v", order.PaymentDate, first)
	}

	// Повторный переход в Paid не сдвигает дату оплаты.
	if err := order.ApplyStatus(domain.OrderStatusProcessing, first.Add(time.Hour)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := order.ApplyStatus(domain.OrderStatusPaid, first.Add(2*time.Hour)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !order.PaymentDate.Equal(first) {
		t.Fatalf("payment date moved to %v", order.PaymentDate)
	}
}

func TestOrderApplyStatus_ArbitraryJumpAndInvalid(t *testing.T) {
	order := makeOrder()
	if err := order.ApplyStatus(domain.OrderStatusCompleted, time.Now()); err != nil {
		t.Fatalf("jump to completed must be allowed: %v", err)
	}
	if order.PaymentDate != nil {
		t.Fatal("payment date must stay empty without Paid transition")
	}
	if err := order.ApplyStatus("teleported", time.Now()); !errors.Is(err, domain.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
	if order.Status != domain.OrderStatusCompleted {
		t.Fatalf("invalid status must not change the order, got %s", order.Status)
	}
}

func TestOrderStatusTerminal(t *testing.T) {
	terminal := map[domain.OrderStatus]bool{
		domain.OrderStatusCompleted: true,
		domain.OrderStatusCanceled:  true,
		domain.OrderStatusReturned:  true,
	}
	for _, st := range domain.OrderStatuses() {
		if st.Terminal() != terminal[st] {
			t.Fatalf("status %s terminal=%v", st, st.Terminal())
		}
	}
}

func TestParseOrderStatus(t *testing.T) {
	st, err := domain.ParseOrderStatus(" Ready_For_Pickup ")
	if err != nil || st != domain.OrderStatusReadyForPickup {
		t.Fatalf("ParseOrderStatus() = %q, %v", st, err)
	}
	if _, err := domain.ParseOrderStatus("nope"); !errors.Is(err, domain.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestOrderCloneIsDeep(t *testing.T) {
	order := makeOrder()
	paid := time.Now()
	order.PaymentDate = &paid
	order.Comments = []domain.OrderComment{{Author: "admin", Text: "hi"}}

	clone := order.Clone()
	clone.Details[0].PriceMinor = 1
	clone.Comments[0].Text = "changed"
	*clone.PaymentDate = paid.Add(time.Hour)

	if order.Details[0].PriceMinor != 500 || order.Comments[0].Text != "hi" || !order.PaymentDate.Equal(paid) {
		t.Fatal("clone shares memory with the original order")
	}
}
