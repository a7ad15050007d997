package storefrontv1

import (
	"reflect"
	"strings"
	"testing"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/timestamppb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

func TestOrderStatusGeneratedHelpers(t *testing.T) {
	s := OrderStatus_ORDER_STATUS_READY_FOR_PICKUP
	if got := s.Enum(); got == nil || *got != s {
		t.Fatalf("Enum() mismatch: got %v want %v", got, s)
	}
	if got, want := s.String(), "ORDER_STATUS_READY_FOR_PICKUP"; got != want {
		t.Fatalf("String() mismatch: got %s want %s", got, want)
	}
	if s.Type() == nil {
		t.Fatalf("Type() must not be nil")
	}
	if s.Descriptor() == nil {
		t.Fatalf("Descriptor() must not be nil")
	}
	if got := OrderStatus_value["ORDER_STATUS_RETURNED"]; got != 11 {
		t.Fatalf("unexpected RETURNED number: %d", got)
	}
	_ = s.Number()
	_, _ = s.EnumDescriptor()

	unknown := OrderStatus(999)
	if unknown.String() == "" {
		t.Fatalf("unknown enum string must not be empty")
	}
}

func TestGeneratedMessageHelpers(t *testing.T) {
	now := timestamppb.Now()
	messages := []any{
		&Order{Number: "N1", CustomerId: "c1", Status: OrderStatus_ORDER_STATUS_PAID, Recipient: &Recipient{Name: "Anna"}, Details: []*OrderDetail{{ProductId: 1, Size: 40, PriceMinor: 1000}}, PaymentDate: now, CreatedAt: now},
		&Recipient{Name: "Anna", Address: "Main st. 1", Phone: "+100"},
		&OrderDetail{ProductId: 1, Name: "Sneaker", PriceMinor: 1000, Size: 40},
		&OrderComment{Id: "c1", Author: "ops", Text: "call", CreatedAt: now},
		&TimelineEvent{Type: "status_changed", Status: OrderStatus_ORDER_STATUS_SHIPPED, OccurredAt: now},
		&PromoCode{Code: "SPRING10", DiscountPercent: "10", MaxDiscountMinor: wrapperspb.Int64(500), UsageLimit: wrapperspb.Int32(3), ExpiresAt: now},
		&GetOrderRequest{Number: "N1"},
		&GetOrderResponse{Order: &Order{Number: "N1"}, Timeline: []*TimelineEvent{{Type: "order_created"}}},
		&ListOrdersRequest{Filter: "active", Sort: "oldest", PageIndex: 1, PageSize: 10},
		&ListOrdersResponse{Orders: []*Order{{Number: "N1"}}, Total: 1},
		&OrderStatsRequest{},
		&StatusCount{Status: OrderStatus_ORDER_STATUS_CREATED, Count: 2},
		&OrderStatsResponse{Active: 1, Total: 2, ByStatus: []*StatusCount{{Status: OrderStatus_ORDER_STATUS_CREATED, Count: 2}}},
		&SetOrderStatusRequest{Number: "N1", Status: OrderStatus_ORDER_STATUS_CANCELED},
		&SetOrderStatusResponse{Order: &Order{Number: "N1"}},
		&AddOrderCommentRequest{Number: "N1", Author: "ops", Text: "call"},
		&AddOrderCommentResponse{Comment: &OrderComment{Id: "c1"}},
		&PurgeOrderRequest{Number: "N1", Reason: "test"},
		&PurgeOrderResponse{},
		&StockRequest{ProductId: 1, Size: 40, Quantity: 2, PurchasePriceMinor: 400},
		&StockResponse{ProductId: 1, Size: 40, Quantity: 2},
		&CreatePromoCodeRequest{Code: "SPRING10", DiscountPercent: "10", UsageLimit: wrapperspb.Int32(3)},
		&DeactivatePromoCodeRequest{Code: "SPRING10"},
		&PromoCodeResponse{Promo: &PromoCode{Code: "SPRING10"}},
	}

	for _, msg := range messages {
		t.Run(reflect.TypeOf(msg).Elem().Name(), func(t *testing.T) {
			exerciseGeneratedMessage(t, msg)
		})
	}
}

func TestWireRoundTrip(t *testing.T) {
	in := &CreatePromoCodeRequest{
		Code:             "SPRING10",
		DiscountPercent:  "12.5",
		MaxDiscountMinor: wrapperspb.Int64(1500),
		UsageLimit:       wrapperspb.Int32(0),
		ExpiresAt:        timestamppb.Now(),
	}
	data, err := proto.Marshal(in)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var out CreatePromoCodeRequest
	if err := proto.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if !proto.Equal(in, &out) {
		t.Fatalf("round trip mismatch: got %v want %v", &out, in)
	}
	if out.GetUsageLimit() == nil {
		t.Fatalf("zero usage limit must survive as a set wrapper")
	}
}

func TestFileDescriptorMetadata(t *testing.T) {
	fd := File_proto_storefront_v1_admin_service_proto
	if got, want := fd.Path(), "proto/storefront/v1/admin_service.proto"; got != want {
		t.Fatalf("unexpected descriptor path: got %s want %s", got, want)
	}
	if got, want := string(fd.Package()), "storefront.v1"; got != want {
		t.Fatalf("unexpected package: got %s want %s", got, want)
	}
	if fd.Messages().Len() != 24 {
		t.Fatalf("expected 24 message descriptors, got %d", fd.Messages().Len())
	}
	if fd.Enums().Len() != 1 {
		t.Fatalf("expected 1 enum descriptor, got %d", fd.Enums().Len())
	}
	if fd.Services().Len() != 1 {
		t.Fatalf("expected 1 service descriptor, got %d", fd.Services().Len())
	}
	svc := fd.Services().Get(0)
	if got := svc.Name(); got != "AdminService" {
		t.Fatalf("unexpected service name: %s", got)
	}
	if svc.Methods().Len() != 10 {
		t.Fatalf("expected 10 methods, got %d", svc.Methods().Len())
	}
}

func exerciseGeneratedMessage(t *testing.T, msg any) {
	t.Helper()

	v := reflect.ValueOf(msg)

	callNoArg(t, v, "String")
	callNoArg(t, v, "ProtoReflect")
	callNoArg(t, v, "Descriptor")
	callNoArg(t, v, "Reset")
	callGetterMethods(t, v)

	nilReceiver := reflect.Zero(v.Type())
	callNoArg(t, nilReceiver, "ProtoReflect")
	callNoArg(t, nilReceiver, "Descriptor")
	callGetterMethods(t, nilReceiver)
}

func callGetterMethods(t *testing.T, v reflect.Value) {
	t.Helper()

	typ := v.Type()
	for i := 0; i < typ.NumMethod(); i++ {
		m := typ.Method(i)
		if !strings.HasPrefix(m.Name, "Get") {
			continue
		}
		if m.Type.NumIn() != 1 || m.Type.NumOut() != 1 {
			continue
		}
		callNoArg(t, v, m.Name)
	}
}

func callNoArg(t *testing.T, v reflect.Value, method string) {
	t.Helper()

	mv := v.MethodByName(method)
	if !mv.IsValid() {
		return
	}
	if mv.Type().NumIn() != 0 {
		return
	}

	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("method %s panicked: %v", method, r)
		}
	}()

	_ = mv.Call(nil)
}
