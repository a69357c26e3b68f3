package mailservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент сервиса доставки почты
// Сама доставка (SMTP, провайдер) выполняется внешним сервисом,
// клиент только отправляет ему задание на письмо
type Client struct {
	baseURL    string
	from       string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента почтового сервиса
func NewClient(baseURL, from string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		from:    from,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

type sendRequest struct {
	From      string                 `json:"from"`
	To        string                 `json:"to"`
	Subject   string                 `json:"subject"`
	Template  string                 `json:"template"`
	Variables map[string]interface{} `json:"variables"`
}

// SendEmail отправляет письмо по шаблону
// template задает имя шаблона на стороне почтового сервиса,
// variables подставляются в шаблон
func (c *Client) SendEmail(ctx context.Context, subject, recipient, template string, variables map[string]interface{}) error {
	payload, err := json.Marshal(sendRequest{
		From:      c.from,
		To:        recipient,
		Subject:   subject,
		Template:  template,
		Variables: variables,
	})
	if err != nil {
		return fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.baseURL+"/v1/emails", bytes.NewReader(payload),
	)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrSendFailed, resp.StatusCode, string(body))
	}

	return nil
}
