package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/turnosya/booking-service/internal/domain"
	"github.com/turnosya/booking-service/pkg/types"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент WhatsApp-шлюза
//
// Уведомления отправляются по принципу fire-and-forget: гарантий доставки
// нет, ошибки отправки логируются и никогда не влияют на результат
// операции бронирования
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента WhatsApp-шлюза
func NewClient(baseURL, apiKey string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Send отправляет уведомление через шлюз
func (c *Client) Send(ctx context.Context, notification *Notification) error {
	payload, err := json.Marshal(notification)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal notification: %v", ErrInternal, err)
	}

	url := fmt.Sprintf("%s/messages", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Api-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	return nil
}

// NotifyBookingCreated отправляет клиенту подтверждение созданной записи
// Ошибки отправки логируются и не пробрасываются
func (c *Client) NotifyBookingCreated(ctx context.Context, booking *domain.Booking, businessName string, display24h bool) {
	message := formatBookingMessage(booking, businessName, display24h)

	err := c.Send(ctx, &Notification{
		To:      booking.ClientWhatsApp,
		Message: message,
	})
	if err != nil {
		c.log.Warn("NotifyBookingCreated: failed to notify booking id=%d: %v", booking.ID, err)
		return
	}

	c.log.Info("NotifyBookingCreated: notification sent for booking id=%d", booking.ID)
}

// formatBookingMessage форматирует текст подтверждения
// Время отображается в 12-часовом формате, если тенант не включил modo_24h
func formatBookingMessage(booking *domain.Booking, businessName string, display24h bool) string {
	startDisplay := displayTime(booking.StartTime, display24h)
	date := types.FormatLocalDate(booking.BookingDate)

	return fmt.Sprintf(
		"Hola %s! Tu reserva en %s fue registrada: %s con %s el %s a las %s. Estado: %s.",
		booking.ClientName,
		businessName,
		booking.ServiceName,
		booking.ProfessionalName,
		date,
		startDisplay,
		booking.Status,
	)
}

func displayTime(t types.TimeString, display24h bool) string {
	if display24h {
		return t.String()
	}
	if formatted, err := t.Format12Hour(); err == nil {
		return formatted
	}
	return t.String()
}
