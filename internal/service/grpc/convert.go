package grpcsvc

import (
	"fmt"
	"strings"
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
	storefrontv1 "github.com/vladislavdragonenkov/storefront/proto/storefront/v1"
)

const protoStatusPrefix = "ORDER_STATUS_"

func toProtoOrder(order domain.Order) *storefrontv1.Order {
	details := make([]*storefrontv1.OrderDetail, 0, len(order.Details))
	for _, d := range order.Details {
		details = append(details, &storefrontv1.OrderDetail{
			ProductId:  d.ProductID,
			Name:       d.Name,
			ImagePath:  d.ImagePath,
			PriceMinor: d.PriceMinor,
			Size:       int32(d.Size),
		})
	}
	comments := make([]*storefrontv1.OrderComment, 0, len(order.Comments))
	for _, c := range order.Comments {
		comments = append(comments, toProtoComment(c))
	}

	return &storefrontv1.Order{
		Number:     order.Number,
		CustomerId: order.CustomerID,
		Status:     toProtoStatus(order.Status),
		Comment:    order.Comment,
		Recipient: &storefrontv1.Recipient{
			Name:    order.Recipient.Name,
			Address: order.Recipient.Address,
			Phone:   order.Recipient.Phone,
		},
		Details:        details,
		PaymentType:    order.PaymentType,
		PaymentDate:    optionalTimestamp(order.PaymentDate),
		DeliveryType:   order.DeliveryType,
		Source:         string(order.Source),
		ExternalUserId: order.ExternalUserID,
		Comments:       comments,
		PromoCode:      order.PromoCode,
		SubtotalMinor:  order.SubtotalMinor,
		DiscountMinor:  order.DiscountMinor,
		TotalMinor:     order.TotalMinor,
		StockState:     string(order.StockState),
		Version:        order.Version,
		CreatedAt:      timestamppb.New(order.CreatedAt),
		UpdatedAt:      timestamppb.New(order.UpdatedAt),
	}
}

func toProtoComment(c domain.OrderComment) *storefrontv1.OrderComment {
	return &storefrontv1.OrderComment{
		Id:        c.ID,
		Author:    c.Author,
		Text:      c.Text,
		CreatedAt: timestamppb.New(c.CreatedAt),
	}
}

func toProtoTimeline(events []domain.TimelineEvent) []*storefrontv1.TimelineEvent {
	out := make([]*storefrontv1.TimelineEvent, 0, len(events))
	for _, event := range events {
		out = append(out, &storefrontv1.TimelineEvent{
			Type:       event.Type,
			Status:     toProtoStatus(event.Status),
			Reason:     event.Reason,
			OccurredAt: timestamppb.New(event.Occurred),
		})
	}
	return out
}

// toProtoStats отдаёт счётчики в порядке жизненного цикла, включая нулевые.
func toProtoStats(stats domain.OrderStats) *storefrontv1.OrderStatsResponse {
	resp := &storefrontv1.OrderStatsResponse{
		Active: int32(stats.Active),
		Total:  int32(stats.Total),
	}
	for _, st := range domain.OrderStatuses() {
		resp.ByStatus = append(resp.ByStatus, &storefrontv1.StatusCount{
			Status: toProtoStatus(st),
			Count:  int32(stats.ByStatus[st]),
		})
	}
	return resp
}

func toProtoPromo(p domain.PromoCode) *storefrontv1.PromoCode {
	promo := &storefrontv1.PromoCode{
		Code:            p.Code,
		DiscountPercent: p.DiscountPercent.String(),
		Active:          p.Active,
		ExpiresAt:       optionalTimestamp(p.ExpiresAt),
		UsageCount:      int32(p.UsageCount),
		CreatedAt:       timestamppb.New(p.CreatedAt),
	}
	if p.MaxDiscountMinor != nil {
		promo.MaxDiscountMinor = wrapperspb.Int64(*p.MaxDiscountMinor)
	}
	if p.UsageLimit != nil {
		promo.UsageLimit = wrapperspb.Int32(int32(*p.UsageLimit))
	}
	return promo
}

// toProtoStatus опирается на соглашение об именах: paid -> ORDER_STATUS_PAID.
func toProtoStatus(status domain.OrderStatus) storefrontv1.OrderStatus {
	if v, ok := storefrontv1.OrderStatus_value[protoStatusPrefix+strings.ToUpper(string(status))]; ok {
		return storefrontv1.OrderStatus(v)
	}
	return storefrontv1.OrderStatus_ORDER_STATUS_UNSPECIFIED
}

func fromProtoStatus(status storefrontv1.OrderStatus) (domain.OrderStatus, error) {
	name, ok := storefrontv1.OrderStatus_name[int32(status)]
	if !ok || status == storefrontv1.OrderStatus_ORDER_STATUS_UNSPECIFIED {
		return "", fmt.Errorf("%w: %v", domain.ErrInvalidStatus, status)
	}
	return domain.ParseOrderStatus(strings.TrimPrefix(name, protoStatusPrefix))
}

func optionalTimestamp(t *time.Time) *timestamppb.Timestamp {
	if t == nil {
		return nil
	}
	return timestamppb.New(*t)
}

func fromOptionalTimestamp(ts *timestamppb.Timestamp) (*time.Time, error) {
	if ts == nil {
		return nil, nil
	}
	if err := ts.CheckValid(); err != nil {
		return nil, err
	}
	t := ts.AsTime().UTC()
	return &t, nil
}
