package reconciler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/donyelqt/tarana-rewards/internal/config"
	"github.com/donyelqt/tarana-rewards/internal/service/reconcileservice"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/donyelqt/tarana-rewards/pkg/clients"
)

const (
	maxRetries    = 3
	retryInterval = time.Second * 1
)

var reconcilingUsers sync.Map

type ReconcileService interface {
	Reconcile(ctx context.Context, userID int) (*reconcileservice.Report, error)
}

type ProfileRepo interface {
	FindForReconcile(ctx context.Context, limit uint32) ([]int, error)
}

// TierUpNotification is the webhook payload sent when a sweep promotes a
// user to a new tier.
type TierUpNotification struct {
	UserID   int    `json:"userId"`
	OldTier  string `json:"oldTier"`
	NewTier  string `json:"newTier"`
	Occurred string `json:"occurred"`
}

type Service struct {
	webhookURL       string
	reconcileService ReconcileService
	profileRepo      ProfileRepo
	client           clients.HTTPClientI
	limit            uint32
	workerPool       WorkerPoolI
	sweepInterval    time.Duration
}

func New(cfg *config.Config, reconcileService ReconcileService, profileRepo ProfileRepo, client clients.HTTPClientI) *Service {
	return &Service{
		webhookURL:       cfg.TierWebhookURL,
		reconcileService: reconcileService,
		profileRepo:      profileRepo,
		client:           client,
		limit:            1000,
		workerPool:       NewWorkerPool(10),
		sweepInterval:    cfg.ReconcileInterval,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Reconciler service started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping reconciler")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Service) sweep(ctx context.Context) {
	userIDs, err := s.profileRepo.FindForReconcile(ctx, atomic.LoadUint32(&s.limit))
	if err != nil {
		zap.L().Error("Failed to fetch profiles for reconcile sweep", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, userID := range userIDs {
		userID := userID

		if _, loaded := reconcilingUsers.LoadOrStore(userID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer reconcilingUsers.Delete(userID)
				return s.handleUser(ctx, userID)
			})
			if err != nil {
				reconcilingUsers.Delete(userID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error during reconcile sweep", zap.Error(err))
	}
}

func (s *Service) handleUser(ctx context.Context, userID int) error {
	report, err := s.reconcileService.Reconcile(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to reconcile user %d: %w", userID, err)
	}

	if report.TierChanged() && s.webhookURL != "" {
		return s.notifyTierUp(ctx, report)
	}
	return nil
}

func (s *Service) notifyTierUp(ctx context.Context, report *reconcileservice.Report) error {
	payload, err := json.Marshal(TierUpNotification{
		UserID:   report.UserID,
		OldTier:  report.OldTier,
		NewTier:  report.NewTier,
		Occurred: time.Now().Format(time.RFC3339),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal tier-up notification: %w", err)
	}

	for attempt := 1; attempt <= maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			statusCode, _, err := s.client.Post(s.webhookURL, nil, payload)
			if err == nil && statusCode < http.StatusInternalServerError {
				if statusCode >= http.StatusMultipleChoices {
					zap.L().Warn("Tier-up webhook rejected",
						zap.Int("status", statusCode), zap.Int("userID", report.UserID))
				}
				return nil
			}
			if err == nil {
				err = fmt.Errorf("unexpected status code %d", statusCode)
			}

			if attempt < maxRetries {
				time.Sleep(retryInterval * time.Duration(attempt))
				continue
			}
			return fmt.Errorf("tier-up webhook for user %d failed after %d retries: %w", report.UserID, maxRetries, err)
		}
	}
	return nil
}
