package worker

import (
	"context"
	"errors"
	"time"

	"github.com/forgehall/forgehall/internal/config"
	"github.com/forgehall/forgehall/internal/logger"
	"github.com/forgehall/forgehall/internal/queue"

	"github.com/hibiken/asynq"
)

const (
	orphanSweepInterval = 10 * time.Minute
)

// Service runs the asynq server and the periodic cart housekeeping loop.
type Service struct {
	name     string
	server   *asynq.Server
	mux      *asynq.ServeMux
	consumer *Consumer
}

// NewService creates the worker service.
func NewService(cfg *config.QueueConfig, consumer *Consumer) (*Service, error) {
	if cfg == nil || !cfg.Enabled {
		return nil, errors.New("queue disabled")
	}
	if consumer == nil {
		return nil, errors.New("consumer is nil")
	}
	opt, serverCfg := queue.BuildServerConfig(cfg)
	server := asynq.NewServer(opt, serverCfg)
	mux := asynq.NewServeMux()
	consumer.Register(mux)
	return &Service{
		name:     "worker",
		server:   server,
		mux:      mux,
		consumer: consumer,
	}, nil
}

// Name reports the service name.
func (s *Service) Name() string {
	if s == nil || s.name == "" {
		return "worker"
	}
	return s.name
}

// Start runs the server. Blocks until shutdown.
func (s *Service) Start(ctx context.Context) error {
	if s == nil || s.server == nil || s.mux == nil {
		return errors.New("worker not initialized")
	}
	if s.consumer != nil && s.consumer.CartRepo != nil {
		go s.runOrphanSweepLoop(ctx)
	}
	return s.server.Run(s.mux)
}

// Stop shuts the server down.
func (s *Service) Stop(ctx context.Context) error {
	if s == nil || s.server == nil {
		return nil
	}
	_ = ctx
	s.server.Shutdown()
	return nil
}

// runOrphanSweepLoop removes cart lines whose product is gone. The purge
// task covers the common case; the sweep catches enqueues that were lost.
func (s *Service) runOrphanSweepLoop(ctx context.Context) {
	if s == nil || s.consumer == nil || s.consumer.CartRepo == nil {
		return
	}
	runOnce := func() {
		removed, err := s.consumer.CartRepo.DeleteOrphanItems()
		if err != nil {
			logger.Warnw("worker_orphan_sweep_failed", "error", err)
			return
		}
		if removed > 0 {
			logger.Infow("worker_orphan_sweep_done", "removed", removed)
		}
	}
	runOnce()

	ticker := time.NewTicker(orphanSweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			runOnce()
		}
	}
}
