// Package httpcatalog читает карточки товаров из внешнего HTTP-каталога.
package httpcatalog

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

const (
	defaultTimeout    = 3 * time.Second
	defaultRetryCount = 2
)

// productDTO — формат ответа каталога.
type productDTO struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	PriceMinor int64  `json:"price_minor"`
	ImagePath  string `json:"image_path"`
	Sizes      []int  `json:"sizes"`
}

// Option настраивает Client.
type Option func(*resty.Client)

// WithTimeout задаёт таймаут одного запроса.
func WithTimeout(d time.Duration) Option {
	return func(c *resty.Client) {
		if d > 0 {
			c.SetTimeout(d)
		}
	}
}

// WithRetryCount задаёт число повторов при сетевых ошибках и 5xx.
func WithRetryCount(n int) Option {
	return func(c *resty.Client) {
		if n >= 0 {
			c.SetRetryCount(n)
		}
	}
}

// WithUserAgent подписывает запросы к каталогу.
func WithUserAgent(ua string) Option {
	return func(c *resty.Client) {
		if ua != "" {
			c.SetHeader("User-Agent", ua)
		}
	}
}

// Client — domain.Catalog поверх REST API каталога.
type Client struct {
	http *resty.Client
}

// New создаёт клиента каталога с базовым адресом baseURL.
func New(baseURL string, opts ...Option) *Client {
	rc := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(defaultTimeout).
		SetRetryCount(defaultRetryCount).
		SetRetryWaitTime(50 * time.Millisecond).
		SetRetryMaxWaitTime(500 * time.Millisecond).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err != nil || r.StatusCode() >= http.StatusInternalServerError
		}).
		SetHeader("Accept", "application/json")
	for _, opt := range opts {
		opt(rc)
	}
	return &Client{http: rc}
}

// Product возвращает карточку или ErrProductNotFound.
func (c *Client) Product(ctx context.Context, id int64) (domain.Product, error) {
	var dto productDTO
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetResult(&dto).
		Get("/products/{id}")
	if err != nil {
		return domain.Product{}, fmt.Errorf("catalog request product %d: %w", id, err)
	}

	switch {
	case resp.StatusCode() == http.StatusNotFound:
		return domain.Product{}, domain.ErrProductNotFound
	case resp.IsError():
		return domain.Product{}, fmt.Errorf("catalog product %d: unexpected status %d", id, resp.StatusCode())
	}

	sizes, err := domain.NewSizeSet(dto.Sizes...)
	if err != nil {
		return domain.Product{}, fmt.Errorf("catalog product %d: %w", id, err)
	}
	return domain.Product{
		ID:         dto.ID,
		Name:       dto.Name,
		PriceMinor: dto.PriceMinor,
		ImagePath:  dto.ImagePath,
		Sizes:      sizes,
	}, nil
}

var _ domain.Catalog = (*Client)(nil)
