package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"

	"github.com/reufer-studio/marketplace-api/internal/config"
	"github.com/reufer-studio/marketplace-api/internal/lib/email"
)

// InitHandlers initializes dependencies required by job handlers.
// Must be called before Start.
func (j *JobService) InitHandlers(cfg *config.Config, logger *zerolog.Logger) {
	j.emailClient = email.NewClient(cfg, logger)
}

// handleWelcomeEmailTask processes TaskWelcome.
func (j *JobService) handleWelcomeEmailTask(ctx context.Context, t *asynq.Task) error {
	var p WelcomeEmailPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal welcome email payload: %w", err)
	}

	j.logger.Info().
		Str("type", "welcome").
		Str("to", p.To).
		Msg("processing welcome email task")

	if err := j.emailClient.SendWelcomeEmail(p.To, p.Name); err != nil {
		j.logger.Error().
			Str("type", "welcome").
			Str("to", p.To).
			Err(err).
			Msg("failed to send welcome email")
		// Returning the error makes asynq schedule a retry.
		return err
	}

	return nil
}

// handleOrderConfirmationTask processes TaskOrderConfirmation.
func (j *JobService) handleOrderConfirmationTask(ctx context.Context, t *asynq.Task) error {
	var p OrderConfirmationPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal order confirmation payload: %w", err)
	}

	j.logger.Info().
		Str("type", "order_confirmation").
		Str("to", p.To).
		Str("order_number", p.OrderNumber).
		Msg("processing order confirmation task")

	if err := j.emailClient.SendOrderConfirmationEmail(p.To, p.ClientName, p.OrderNumber); err != nil {
		j.logger.Error().
			Str("type", "order_confirmation").
			Str("to", p.To).
			Err(err).
			Msg("failed to send order confirmation email")
		return err
	}

	return nil
}
