package notifications

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"shop_orders/internal/domain/entities"
	"shop_orders/internal/usecase/interfaces"

	"github.com/go-resty/resty/v2"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const fcmScope = "https://www.googleapis.com/auth/firebase.messaging"

var (
	ErrMissingFCMProjectID     = errors.New("missing FCM_PROJECT_ID")
	ErrFCMGatewayNotConfigured = errors.New("fcm gateway not configured")
	ErrUnregisteredDeviceToken = errors.New("device token is no longer registered")
)

type FCMConfig struct {
	ProjectID string
	// AccessToken skips Google default credentials when set.
	AccessToken string
	BaseURL     string
	Timeout     time.Duration
	Mock        bool
}

// FCMGateway sends push notifications through the Firebase Cloud Messaging
// HTTP v1 API.
type FCMGateway struct {
	client    *resty.Client
	tokens    oauth2.TokenSource
	projectID string
	mockMode  bool
}

var _ interfaces.IPushGateway = (*FCMGateway)(nil)

type fcmSendRequest struct {
	Message fcmMessage `json:"message"`
}

type fcmMessage struct {
	Token        string            `json:"token"`
	Notification fcmNotification   `json:"notification"`
	Data         map[string]string `json:"data,omitempty"`
	Android      *fcmAndroidConfig `json:"android,omitempty"`
}

type fcmNotification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type fcmAndroidConfig struct {
	Priority string `json:"priority"`
}

type fcmSendResponse struct {
	Name string `json:"name"`
}

type fcmErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

func NewFCMGateway(ctx context.Context, cfg FCMConfig) (*FCMGateway, error) {
	if cfg.Mock {
		log.Printf("[push][gateway] mock mode enabled")
		return &FCMGateway{mockMode: true}, nil
	}
	if cfg.ProjectID == "" {
		log.Printf("[push][gateway] missing FCM_PROJECT_ID")
		return nil, ErrMissingFCMProjectID
	}

	var ts oauth2.TokenSource
	if cfg.AccessToken != "" {
		ts = oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.AccessToken, TokenType: "Bearer"})
	} else {
		var err error
		ts, err = google.DefaultTokenSource(ctx, fcmScope)
		if err != nil {
			log.Printf("[push][gateway] default credentials unavailable err=%v", err)
			return nil, err
		}
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json")

	log.Printf("[push][gateway] FCM client initialized project_id=%s", cfg.ProjectID)
	return &FCMGateway{
		client:    client,
		tokens:    oauth2.ReuseTokenSource(nil, ts),
		projectID: cfg.ProjectID,
	}, nil
}

func (g *FCMGateway) Send(ctx context.Context, deviceToken string, n entities.PushNotification) error {
	if g != nil && g.mockMode {
		log.Printf("[push][gateway] mock send token_len=%d title=%q data=%v", len(deviceToken), n.Title, n.Data)
		return nil
	}
	if g == nil || g.client == nil || g.tokens == nil {
		log.Printf("[push][gateway] gateway not configured")
		return ErrFCMGatewayNotConfigured
	}

	tok, err := g.tokens.Token()
	if err != nil {
		log.Printf("[push][gateway] access token failed err=%v", err)
		return fmt.Errorf("fcm access token: %w", err)
	}

	body := fcmSendRequest{Message: fcmMessage{
		Token:        deviceToken,
		Notification: fcmNotification{Title: n.Title, Body: n.Body},
		Data:         n.Data,
		Android:      &fcmAndroidConfig{Priority: "high"},
	}}

	var (
		result  fcmSendResponse
		failure fcmErrorResponse
	)
	resp, err := g.client.R().
		SetContext(ctx).
		SetAuthToken(tok.AccessToken).
		SetBody(body).
		SetResult(&result).
		SetError(&failure).
		Post(fmt.Sprintf("/v1/projects/%s/messages:send", g.projectID))
	if err != nil {
		log.Printf("[push][gateway] send request failed err=%v", err)
		return err
	}

	if resp.IsError() {
		log.Printf("[push][gateway] send rejected http_status=%d status=%s message=%q", resp.StatusCode(), failure.Error.Status, failure.Error.Message)
		if failure.Error.Status == "UNREGISTERED" || failure.Error.Status == "NOT_FOUND" {
			return ErrUnregisteredDeviceToken
		}
		return fmt.Errorf("fcm send failed (status %d): %s", resp.StatusCode(), failure.Error.Message)
	}

	log.Printf("[push][gateway] send success message=%s", result.Name)
	return nil
}
