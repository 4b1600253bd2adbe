package handler

import (
	"context"
	"encoding/json"
	"fmt"

	"rental-notification-service/internal/domain"
	"rental-notification-service/internal/readiness"
	"rental-notification-service/internal/validator"

	log "github.com/sirupsen/logrus"
)

// QuickConnectService defines the interface for tenant communication logic
type QuickConnectService interface {
	HandleQuickConnectAction(ctx context.Context, req domain.QuickConnectRequest) error
}

type quickConnectHandler struct {
	service QuickConnectService
}

type accountHandler struct{}

func NewQuickConnectHandler(service QuickConnectService) *quickConnectHandler {
	return &quickConnectHandler{service: service}
}

func NewAccountHandler() *accountHandler {
	return &accountHandler{}
}

func (h *quickConnectHandler) HandleMessage(ctx context.Context, message []byte) error {
	var req domain.QuickConnectRequest
	if err := json.Unmarshal(message, &req); err != nil {
		return err
	}
	if err := validator.ValidateQuickConnectRequest(req); err != nil {
		log.WithFields(log.Fields{
			"error":       err,
			"action":      req.Action,
			"property_id": req.Property.ID,
		}).Error("Quick connect request validation failed")
		return fmt.Errorf("validation error: %w", err)
	}
	return h.service.HandleQuickConnectAction(ctx, req)
}

// HandleMessage classifies a Stripe account update and logs why the account
// cannot take payments yet.
func (h *accountHandler) HandleMessage(_ context.Context, message []byte) error {
	var account domain.AccountVerificationStatus
	if err := json.Unmarshal(message, &account); err != nil {
		return err
	}
	if err := validator.ValidateAccount(account); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	reasons := readiness.FailureReasons(account)
	logCtx := log.WithField("account_id", account.ID)
	if len(reasons) == 0 {
		logCtx.Info("Stripe account is ready for payments")
		return nil
	}
	logCtx.WithField("reasons", reasons).Warn("Stripe account is not ready for payments")
	return nil
}
