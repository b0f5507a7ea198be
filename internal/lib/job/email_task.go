package job

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const (
	// TaskWelcome is the task type for the post-registration email.
	TaskWelcome = "email:welcome"

	// TaskOrderConfirmation is the task type for the post-checkout email.
	TaskOrderConfirmation = "email:order_confirmation"
)

// WelcomeEmailPayload is the payload for TaskWelcome.
type WelcomeEmailPayload struct {
	To   string `json:"to"`
	Name string `json:"name"`
}

// OrderConfirmationPayload is the payload for TaskOrderConfirmation.
type OrderConfirmationPayload struct {
	To          string `json:"to"`
	ClientName  string `json:"client_name"`
	OrderNumber string `json:"order_number"`
}

// NewWelcomeEmailTask constructs the welcome email task.
func NewWelcomeEmailTask(to, name string) (*asynq.Task, error) {
	payload, err := json.Marshal(WelcomeEmailPayload{
		To:   to,
		Name: name,
	})
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskWelcome,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue("default"),
		asynq.Timeout(30*time.Second),
	), nil
}

// NewOrderConfirmationTask constructs the order confirmation email task.
// Confirmation emails go into the critical queue so they get worker
// priority over everything else.
func NewOrderConfirmationTask(to, clientName, orderNumber string) (*asynq.Task, error) {
	payload, err := json.Marshal(OrderConfirmationPayload{
		To:          to,
		ClientName:  clientName,
		OrderNumber: orderNumber,
	})
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskOrderConfirmation,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue("critical"),
		asynq.Timeout(30*time.Second),
	), nil
}
