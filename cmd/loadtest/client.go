package main

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/vladislavdragonenkov/storefront/internal/service/httpapi"
	"github.com/vladislavdragonenkov/storefront/internal/version"
)

// storefrontAPI — вызовы публичного HTTP API, которые нагружает утилита.
type storefrontAPI interface {
	Checkout(ctx context.Context, key string, body checkoutBody) (checkoutOutcome, error)
	GetOrder(ctx context.Context, number string) (int, error)
	Stock(ctx context.Context, productID int64, size int) (int, error)
}

type recipient struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

type checkoutLine struct {
	ProductID int64 `json:"product_id"`
	Size      int   `json:"size"`
	Quantity  int   `json:"quantity"`
}

type checkoutBody struct {
	CustomerID string         `json:"customer_id"`
	Recipient  recipient      `json:"recipient"`
	PromoCode  string         `json:"promo_code,omitempty"`
	Source     string         `json:"source,omitempty"`
	Lines      []checkoutLine `json:"lines"`
}

type checkoutResult struct {
	OrderNumber string `json:"order_number"`
	Status      string `json:"status"`
	Units       int    `json:"units"`
	TotalMinor  int64  `json:"total_minor"`
}

type apiError struct {
	Error string `json:"error"`
}

type apiClient struct {
	http *resty.Client
}

func newAPIClient(baseURL string, timeout time.Duration) *apiClient {
	return &apiClient{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(timeout).
			SetHeader("Accept", "application/json").
			SetHeader("User-Agent", version.UserAgent("storefront-loadtest")),
	}
}

// Checkout возвращает ошибку только при сетевом сбое; HTTP-статус разбирает вызывающий.
func (c *apiClient) Checkout(ctx context.Context, key string, body checkoutBody) (checkoutOutcome, error) {
	var (
		result  checkoutResult
		failure apiError
	)
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader(httpapi.IdempotencyHeader, key).
		SetBody(body).
		SetResult(&result).
		SetError(&failure).
		Post("/api/v1/checkout")
	if err != nil {
		return checkoutOutcome{}, fmt.Errorf("checkout request: %w", err)
	}
	return checkoutOutcome{Status: resp.StatusCode(), Result: result, Error: failure.Error}, nil
}

func (c *apiClient) GetOrder(ctx context.Context, number string) (int, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("number", number).
		Get("/api/v1/orders/{number}")
	if err != nil {
		return 0, fmt.Errorf("get order request: %w", err)
	}
	return resp.StatusCode(), nil
}

func (c *apiClient) Stock(ctx context.Context, productID int64, size int) (int, error) {
	var body struct {
		Quantity int `json:"quantity"`
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParams(map[string]string{
			"product_id": strconv.FormatInt(productID, 10),
			"size":       strconv.Itoa(size),
		}).
		SetResult(&body).
		Get("/api/v1/stock/{product_id}/{size}")
	if err != nil {
		return 0, fmt.Errorf("stock request: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return 0, fmt.Errorf("stock request: unexpected status %d", resp.StatusCode())
	}
	return body.Quantity, nil
}

var _ storefrontAPI = (*apiClient)(nil)
