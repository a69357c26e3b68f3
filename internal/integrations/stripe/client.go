package stripe

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const defaultAPIBaseURL = "https://api.stripe.com/v1"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент платежного шлюза Stripe
// Реализует минимальный набор операций: создание checkout-сессии,
// разбор webhook-события и получение email клиента
type Client struct {
	apiBaseURL  string
	secretKey   string
	redirectURL string
	httpClient  *http.Client
	log         Logger
}

// NewClient создает новый экземпляр клиента Stripe
func NewClient(secretKey, redirectURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		apiBaseURL:  defaultAPIBaseURL,
		secretKey:   secretKey,
		redirectURL: redirectURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// CreateCheckoutSession создает checkout-сессию и возвращает её ID
// Цена передается в евро, Stripe принимает сумму в центах
func (c *Client) CreateCheckoutSession(ctx context.Context, name, description string, price decimal.Decimal) (string, error) {
	form := url.Values{}
	form.Set("payment_method_types[0]", "card")
	form.Set("line_items[0][name]", name)
	form.Set("line_items[0][description]", description)
	form.Set("line_items[0][amount]", formatPriceCents(price))
	form.Set("line_items[0][currency]", "eur")
	form.Set("line_items[0][quantity]", "1")
	form.Set("success_url", c.redirectURL+"?session_id={CHECKOUT_SESSION_ID}")
	form.Set("cancel_url", c.redirectURL)

	body, err := c.postForm(ctx, "/checkout/sessions", form)
	if err != nil {
		return "", err
	}

	var session checkoutSessionResponse
	if err := json.Unmarshal(body, &session); err != nil {
		return "", fmt.Errorf("%w: failed to decode session response: %v", ErrInvalidResponse, err)
	}
	if session.ID == "" {
		return "", fmt.Errorf("%w: empty session id", ErrInvalidResponse)
	}

	return session.ID, nil
}

// ParseEvent разбирает тело webhook-события
func (c *Client) ParseEvent(body []byte) (*Event, error) {
	var event Event
	if err := json.Unmarshal(body, &event); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEvent, err)
	}
	if event.Data.Object.ID == "" {
		return nil, fmt.Errorf("%w: event has no session id", ErrInvalidEvent)
	}
	return &event, nil
}

// SessionIDFromEvent возвращает ID checkout-сессии из события
func (c *Client) SessionIDFromEvent(event *Event) string {
	return event.Data.Object.ID
}

// CustomerEmailFromEvent получает email клиента по ID из события
// Требует обращения к Stripe API: в самом событии email отсутствует
func (c *Client) CustomerEmailFromEvent(ctx context.Context, event *Event) (string, error) {
	customerID := event.Data.Object.Customer
	if customerID == "" {
		return "", fmt.Errorf("%w: event has no customer id", ErrInvalidEvent)
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodGet, c.apiBaseURL+"/customers/"+customerID, nil,
	)
	if err != nil {
		return "", fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return "", ErrCustomerNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var customer customerResponse
	if err := json.NewDecoder(resp.Body).Decode(&customer); err != nil {
		return "", fmt.Errorf("%w: failed to decode customer response: %v", ErrInvalidResponse, err)
	}

	return customer.Email, nil
}

func (c *Client) postForm(ctx context.Context, path string, form url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.apiBaseURL+path, strings.NewReader(form.Encode()),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", ErrInternal, err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr errorResponse
		if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error.Message != "" {
			c.log.Warn("Stripe API error: %s (%s)", apiErr.Error.Message, apiErr.Error.Type)
			return nil, fmt.Errorf("%w: %s", ErrCheckoutFailed, apiErr.Error.Message)
		}
		return nil, fmt.Errorf("%w: unexpected status code %d", ErrCheckoutFailed, resp.StatusCode)
	}

	return body, nil
}

// formatPriceCents конвертирует цену в евро в строку с центами
func formatPriceCents(price decimal.Decimal) string {
	return price.Mul(decimal.NewFromInt(100)).Round(0).String()
}
