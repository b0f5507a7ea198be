// Package job provides background job processing using Asynq.
//
// Asynq is a Redis-backed job queue: handlers enqueue tasks via the
// asynq.Client and a worker server pulls and executes them. Email
// delivery for registrations and new orders runs here so request
// handlers never block on a third-party API.
package job

import (
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"

	"github.com/reufer-studio/marketplace-api/internal/config"
	"github.com/reufer-studio/marketplace-api/internal/lib/email"
)

// JobService holds the Asynq client (enqueue) and server (workers).
type JobService struct {
	Client *asynq.Client

	server *asynq.Server

	logger *zerolog.Logger

	emailClient *email.Client
}

// NewJobService creates a JobService backed by Redis from cfg.
func NewJobService(logger *zerolog.Logger, cfg *config.Config) *JobService {
	redisAddr := cfg.Redis.Address

	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr: redisAddr,
	})

	// Queue weights give order confirmations priority over the rest.
	server := asynq.NewServer(
		asynq.RedisClientOpt{Addr: redisAddr},
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"critical": 6,
				"default":  3,
				"low":      1,
			},
		},
	)

	return &JobService{
		Client: client,
		server: server,
		logger: logger,
	}
}

// Start registers task handlers and starts the worker server.
func (j *JobService) Start() error {
	mux := asynq.NewServeMux()

	mux.HandleFunc(TaskWelcome, j.handleWelcomeEmailTask)
	mux.HandleFunc(TaskOrderConfirmation, j.handleOrderConfirmationTask)

	j.logger.Info().Msg("starting background job server")

	if err := j.server.Start(mux); err != nil {
		return err
	}

	return nil
}

// EnqueueWelcomeEmail schedules the post-registration email.
func (j *JobService) EnqueueWelcomeEmail(to, name string) error {
	task, err := NewWelcomeEmailTask(to, name)
	if err != nil {
		return err
	}
	_, err = j.Client.Enqueue(task)
	return err
}

// EnqueueOrderConfirmation schedules the post-checkout email.
func (j *JobService) EnqueueOrderConfirmation(to, clientName, orderNumber string) error {
	task, err := NewOrderConfirmationTask(to, clientName, orderNumber)
	if err != nil {
		return err
	}
	_, err = j.Client.Enqueue(task)
	return err
}

// Stop gracefully stops the job server and closes client resources.
func (j *JobService) Stop() {
	j.logger.Info().Msg("stopping background job server")
	j.server.Shutdown()
	j.Client.Close()
}
