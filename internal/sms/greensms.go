package sms

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"axas_backend/internal/auth"
	"axas_backend/internal/logger"
)

// Client - клиент GreenSMS: звонок-подтверждение, код - последние цифры номера звонящего
type Client struct {
	BaseURL    string
	User       string
	Password   string
	DryRun     bool
	HTTPClient *http.Client
}

type sendResponse struct {
	RequestID string `json:"request_id"`
	Code      string `json:"code"`
	Error     string `json:"error"`
	ErrorCode int    `json:"code_error"`
}

func NewClient(baseURL, user, password string, dryRun bool, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		User:       user,
		Password:   password,
		DryRun:     dryRun,
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) Send(ctx context.Context, to string) (string, error) {
	// DRY-RUN: код генерируется локально, HTTP-запрос не выполняется
	if c.DryRun || c.User == "" {
		code, err := auth.RandomDigits(4)
		if err != nil {
			return "", err
		}
		logger.CtxInfo(ctx, "[greensms][dry-run] call not placed", "to", to)
		return code, nil
	}

	form := url.Values{"to": {to}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/call/send", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("build greensms request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(c.User, c.Password)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("greensms request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return "", fmt.Errorf("read greensms response: %w", err)
	}

	var result sendResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("parse greensms response (status %d): %w", resp.StatusCode, err)
	}
	if resp.StatusCode >= 400 || result.Error != "" {
		return "", fmt.Errorf("greensms returned status %d (code_error %d): %s", resp.StatusCode, result.ErrorCode, result.Error)
	}
	if result.Code == "" {
		return "", fmt.Errorf("greensms response has no code")
	}

	logger.CtxInfo(ctx, "greensms call placed", "to", to, "request_id", result.RequestID)
	return result.Code, nil
}
