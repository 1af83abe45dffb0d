package payment

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/railway-booking/internal/config"
	"github.com/railway-booking/internal/domain"
	"github.com/railway-booking/internal/domain/repository"
	"github.com/railway-booking/internal/pkg/errors"
)

type client struct {
	httpClient *http.Client
	baseURL    string
	secretKey  string
	logger     *zap.Logger
}

// NewClient создает клиент платёжного провайдера (Stripe-совместимый
// API платёжных намерений). Отказы провайдера конвертируются в
// ErrPaymentProvider, состояние заказа при этом не меняется.
func NewClient(cfg *config.PaymentConfig, logger *zap.Logger) repository.PaymentRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeout) * time.Second,
		},
		baseURL:   cfg.BaseURL,
		secretKey: cfg.SecretKey,
		logger:    logger,
	}
}

type intentResponse struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
	Status       string `json:"status"`
}

func (c *client) CreatePaymentIntent(ctx context.Context, amountMinorUnits int64, currency string) (*domain.PaymentIntent, error) {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amountMinorUnits, 10))
	form.Set("currency", currency)

	endpoint := c.baseURL + "/v1/payment_intents"

	c.logger.Debug("Calling payment provider",
		zap.String("endpoint", endpoint),
		zap.Int64("amount", amountMinorUnits),
		zap.String("currency", currency))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		c.logger.Error("Failed to create payment request", zap.Error(err))
		return nil, errors.ErrPaymentProvider
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	// Провайдер дедуплицирует повторы по этому ключу (at-most-once)
	req.Header.Set("Idempotency-Key", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute payment request", zap.Error(err))
		return nil, errors.ErrPaymentProvider
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("Payment provider returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, errors.ErrPaymentProvider
	}

	var intent intentResponse
	if err := json.NewDecoder(resp.Body).Decode(&intent); err != nil {
		c.logger.Error("Failed to decode payment response", zap.Error(err))
		return nil, errors.ErrPaymentProvider
	}

	return &domain.PaymentIntent{
		ID:           intent.ID,
		ClientSecret: intent.ClientSecret,
		Amount:       intent.Amount,
		Currency:     intent.Currency,
		Status:       intent.Status,
	}, nil
}
