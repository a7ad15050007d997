package grpcsvc

import (
	"context"
	"errors"
	"strings"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
	storefrontv1 "github.com/vladislavdragonenkov/storefront/proto/storefront/v1"
)

const defaultPurgeReason = "purged by administrator"

// OrderAdmin — операции жизненного цикла заказа, доступные администратору.
type OrderAdmin interface {
	Get(ctx context.Context, number string) (domain.Order, error)
	List(ctx context.Context, query domain.OrderQuery) (domain.OrderPage, error)
	Stats(ctx context.Context) (domain.OrderStats, error)
	Timeline(ctx context.Context, number string) ([]domain.TimelineEvent, error)
	SetStatus(ctx context.Context, number string, status domain.OrderStatus) (domain.Order, error)
	AddComment(ctx context.Context, number, author, text string) (domain.OrderComment, error)
	Purge(ctx context.Context, number, reason string) error
}

// StockAdmin — складские операции администратора.
type StockAdmin interface {
	ReceiveStock(ctx context.Context, productID int64, size, quantity int, purchasePriceMinor int64) error
	SetStock(ctx context.Context, productID int64, size, quantity int, purchasePriceMinor int64) error
	CheckStock(ctx context.Context, productID int64, size int) (int, error)
}

// PromoAdmin — управление промокодами.
type PromoAdmin interface {
	Create(ctx context.Context, promo domain.PromoCode) error
	Get(ctx context.Context, code string) (domain.PromoCode, error)
	Deactivate(ctx context.Context, code string) error
}

// AdminService реализует storefront.v1.AdminService поверх сервисов домена.
type AdminService struct {
	storefrontv1.UnimplementedAdminServiceServer

	orders OrderAdmin
	stock  StockAdmin
	promos PromoAdmin
	logger *log.Entry
}

// NewAdminService конструирует сервис с зависимостями.
func NewAdminService(orders OrderAdmin, stock StockAdmin, promos PromoAdmin, logger *log.Entry) *AdminService {
	if logger == nil {
		logger = log.WithField("component", "admin-service")
	}
	return &AdminService{
		orders: orders,
		stock:  stock,
		promos: promos,
		logger: logger,
	}
}

func (s *AdminService) GetOrder(ctx context.Context, req *storefrontv1.GetOrderRequest) (*storefrontv1.GetOrderResponse, error) {
	number := strings.TrimSpace(req.GetNumber())
	if number == "" {
		return nil, status.Error(codes.InvalidArgument, "number is required")
	}

	order, err := s.orders.Get(ctx, number)
	if err != nil {
		return nil, s.toStatus(err, "GetOrder")
	}

	resp := &storefrontv1.GetOrderResponse{Order: toProtoOrder(order)}
	events, err := s.orders.Timeline(ctx, number)
	if err != nil {
		// История вспомогательная: заказ отдаём и без неё.
		s.logger.WithError(err).WithField("order_number", number).Warn("failed to list timeline events")
		return resp, nil
	}
	resp.Timeline = toProtoTimeline(events)
	return resp, nil
}

func (s *AdminService) ListOrders(ctx context.Context, req *storefrontv1.ListOrdersRequest) (*storefrontv1.ListOrdersResponse, error) {
	filter, err := domain.ParseStatusFilter(req.GetFilter())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	sort, err := domain.ParseSortOrder(req.GetSort())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	if req.GetPageIndex() < 0 || req.GetPageSize() < 0 {
		return nil, status.Error(codes.InvalidArgument, "page_index and page_size must be >= 0")
	}

	page, err := s.orders.List(ctx, domain.OrderQuery{
		Filter:     filter,
		Sort:       sort,
		PageIndex:  int(req.GetPageIndex()),
		PageSize:   int(req.GetPageSize()),
		CustomerID: strings.TrimSpace(req.GetCustomerId()),
	})
	if err != nil {
		return nil, s.toStatus(err, "ListOrders")
	}

	resp := &storefrontv1.ListOrdersResponse{
		Orders: make([]*storefrontv1.Order, 0, len(page.Orders)),
		Total:  int32(page.Total),
	}
	for _, order := range page.Orders {
		resp.Orders = append(resp.Orders, toProtoOrder(order))
	}
	return resp, nil
}

func (s *AdminService) OrderStats(ctx context.Context, _ *storefrontv1.OrderStatsRequest) (*storefrontv1.OrderStatsResponse, error) {
	stats, err := s.orders.Stats(ctx)
	if err != nil {
		return nil, s.toStatus(err, "OrderStats")
	}
	return toProtoStats(stats), nil
}

func (s *AdminService) SetOrderStatus(ctx context.Context, req *storefrontv1.SetOrderStatusRequest) (*storefrontv1.SetOrderStatusResponse, error) {
	number := strings.TrimSpace(req.GetNumber())
	if number == "" {
		return nil, status.Error(codes.InvalidArgument, "number is required")
	}
	st, err := fromProtoStatus(req.GetStatus())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	order, err := s.orders.SetStatus(ctx, number, st)
	if err != nil {
		return nil, s.toStatus(err, "SetOrderStatus")
	}
	return &storefrontv1.SetOrderStatusResponse{Order: toProtoOrder(order)}, nil
}

func (s *AdminService) AddOrderComment(ctx context.Context, req *storefrontv1.AddOrderCommentRequest) (*storefrontv1.AddOrderCommentResponse, error) {
	number := strings.TrimSpace(req.GetNumber())
	if number == "" {
		return nil, status.Error(codes.InvalidArgument, "number is required")
	}

	comment, err := s.orders.AddComment(ctx, number, req.GetAuthor(), req.GetText())
	if err != nil {
		return nil, s.toStatus(err, "AddOrderComment")
	}
	return &storefrontv1.AddOrderCommentResponse{Comment: toProtoComment(comment)}, nil
}

func (s *AdminService) PurgeOrder(ctx context.Context, req *storefrontv1.PurgeOrderRequest) (*storefrontv1.PurgeOrderResponse, error) {
	number := strings.TrimSpace(req.GetNumber())
	if number == "" {
		return nil, status.Error(codes.InvalidArgument, "number is required")
	}
	reason := strings.TrimSpace(req.GetReason())
	if reason == "" {
		reason = defaultPurgeReason
	}

	if err := s.orders.Purge(ctx, number, reason); err != nil {
		return nil, s.toStatus(err, "PurgeOrder")
	}
	return &storefrontv1.PurgeOrderResponse{}, nil
}

func (s *AdminService) ReceiveStock(ctx context.Context, req *storefrontv1.StockRequest) (*storefrontv1.StockResponse, error) {
	err := s.stock.ReceiveStock(ctx, req.GetProductId(), int(req.GetSize()), int(req.GetQuantity()), req.GetPurchasePriceMinor())
	if err != nil {
		return nil, s.toStatus(err, "ReceiveStock")
	}
	return s.stockResponse(ctx, req, "ReceiveStock")
}

func (s *AdminService) SetStock(ctx context.Context, req *storefrontv1.StockRequest) (*storefrontv1.StockResponse, error) {
	err := s.stock.SetStock(ctx, req.GetProductId(), int(req.GetSize()), int(req.GetQuantity()), req.GetPurchasePriceMinor())
	if err != nil {
		return nil, s.toStatus(err, "SetStock")
	}
	return s.stockResponse(ctx, req, "SetStock")
}

func (s *AdminService) stockResponse(ctx context.Context, req *storefrontv1.StockRequest, method string) (*storefrontv1.StockResponse, error) {
	qty, err := s.stock.CheckStock(ctx, req.GetProductId(), int(req.GetSize()))
	if err != nil {
		return nil, s.toStatus(err, method)
	}
	return &storefrontv1.StockResponse{
		ProductId: req.GetProductId(),
		Size:      req.GetSize(),
		Quantity:  int32(qty),
	}, nil
}

func (s *AdminService) CreatePromoCode(ctx context.Context, req *storefrontv1.CreatePromoCodeRequest) (*storefrontv1.PromoCodeResponse, error) {
	percent, err := decimal.NewFromString(strings.TrimSpace(req.GetDiscountPercent()))
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "discount_percent: %v", err)
	}
	expiresAt, err := fromOptionalTimestamp(req.GetExpiresAt())
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "expires_at: %v", err)
	}

	promo := domain.PromoCode{
		Code:            req.GetCode(),
		DiscountPercent: percent,
		Active:          true,
		ExpiresAt:       expiresAt,
	}
	if v := req.GetMaxDiscountMinor(); v != nil {
		limit := v.GetValue()
		promo.MaxDiscountMinor = &limit
	}
	if v := req.GetUsageLimit(); v != nil {
		limit := int(v.GetValue())
		promo.UsageLimit = &limit
	}
	if err := s.promos.Create(ctx, promo); err != nil {
		return nil, s.toStatus(err, "CreatePromoCode")
	}
	return s.promoResponse(ctx, promo.Code, "CreatePromoCode")
}

func (s *AdminService) DeactivatePromoCode(ctx context.Context, req *storefrontv1.DeactivatePromoCodeRequest) (*storefrontv1.PromoCodeResponse, error) {
	if req.GetCode() == "" {
		return nil, status.Error(codes.InvalidArgument, "code is required")
	}
	if err := s.promos.Deactivate(ctx, req.GetCode()); err != nil {
		return nil, s.toStatus(err, "DeactivatePromoCode")
	}
	return s.promoResponse(ctx, req.GetCode(), "DeactivatePromoCode")
}

func (s *AdminService) promoResponse(ctx context.Context, code, method string) (*storefrontv1.PromoCodeResponse, error) {
	promo, err := s.promos.Get(ctx, code)
	if err != nil {
		return nil, s.toStatus(err, method)
	}
	return &storefrontv1.PromoCodeResponse{Promo: toProtoPromo(promo)}, nil
}

// toStatus переводит ошибку домена в gRPC-статус. Всё неизвестное считается
// сбоем инфраструктуры и отдаётся как Unavailable, чтобы клиент мог повторить.
func (s *AdminService) toStatus(err error, method string) error {
	code := codeOf(err)
	entry := s.logger.WithError(err).WithField("method", method)
	if code == codes.Unavailable {
		entry.Error("admin call failed")
		return status.Error(codes.Unavailable, "storage unavailable, retry later")
	}
	entry.WithField("code", code.String()).Debug("admin call rejected")
	return status.Error(code, err.Error())
}

func codeOf(err error) codes.Code {
	switch {
	case errors.Is(err, context.Canceled):
		return codes.Canceled
	case errors.Is(err, context.DeadlineExceeded):
		return codes.DeadlineExceeded
	case errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInvalidSize),
		errors.Is(err, domain.ErrInvalidStatus),
		errors.Is(err, domain.ErrInvalidQuery),
		errors.Is(err, domain.ErrInvalidPromo),
		errors.Is(err, domain.ErrCommentRequired):
		return codes.InvalidArgument
	case errors.Is(err, domain.ErrOrderNotFound),
		errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrPromoNotFound):
		return codes.NotFound
	case errors.Is(err, domain.ErrPromoAlreadyExists),
		errors.Is(err, domain.ErrOrderAlreadyExists):
		return codes.AlreadyExists
	case errors.Is(err, domain.ErrOrderVersionConflict):
		return codes.Aborted
	case errors.Is(err, domain.ErrInsufficientStock),
		domain.IsPromoRejection(err):
		return codes.FailedPrecondition
	default:
		return codes.Unavailable
	}
}

var _ storefrontv1.AdminServiceServer = (*AdminService)(nil)
