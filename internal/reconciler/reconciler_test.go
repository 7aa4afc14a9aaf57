package reconciler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/donyelqt/tarana-rewards/internal/config"
	"github.com/donyelqt/tarana-rewards/internal/service/reconcileservice"
	"github.com/donyelqt/tarana-rewards/pkg/clients"
)

func NewMock(t *testing.T) (*Service, *MockReconcileService, *MockProfileRepo, *clients.MockHTTPClientI) {
	cfg := &config.Config{
		TierWebhookURL:    "http://localhost:9090/hooks/tier-up",
		ReconcileInterval: time.Minute,
	}
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reconcileService := NewMockReconcileService(ctrl)
	profileRepo := NewMockProfileRepo(ctrl)
	client := clients.NewMockHTTPClientI(ctrl)
	service := New(cfg, reconcileService, profileRepo, client)
	return service, reconcileService, profileRepo, client
}

func TestService_Start(t *testing.T) {
	service, _, _, _ := NewMock(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go service.Start(ctx)
	time.Sleep(20 * time.Millisecond)
	cancel()
}

func TestService_sweep(t *testing.T) {
	tests := []struct {
		name             string
		userIDs          []int
		mockFindProfiles func(ctx context.Context, limit uint32) ([]int, error)
		runTasks         bool
		addTaskErr       error
	}{
		{
			name:    "successfully sweeps profiles",
			userIDs: []int{1, 2},
			mockFindProfiles: func(ctx context.Context, limit uint32) ([]int, error) {
				return []int{1, 2}, nil
			},
			runTasks: true,
		},
		{
			name: "fails when fetching profiles",
			mockFindProfiles: func(ctx context.Context, limit uint32) ([]int, error) {
				return nil, fmt.Errorf("failed to fetch profiles")
			},
		},
		{
			name:    "worker pool rejects the task",
			userIDs: []int{3},
			mockFindProfiles: func(ctx context.Context, limit uint32) ([]int, error) {
				return []int{3}, nil
			},
			addTaskErr: fmt.Errorf("failed to add task to worker pool"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			reconcileService := NewMockReconcileService(ctrl)
			profileRepo := NewMockProfileRepo(ctrl)
			workerPool := NewMockWorkerPoolI(ctrl)

			profileRepo.EXPECT().
				FindForReconcile(gomock.Any(), gomock.Any()).
				DoAndReturn(tt.mockFindProfiles).
				Times(1)

			for _, userID := range tt.userIDs {
				userID := userID
				workerPool.EXPECT().
					AddTask(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, task Task) error {
						if tt.addTaskErr != nil {
							return tt.addTaskErr
						}
						if tt.runTasks {
							return task()
						}
						return nil
					}).
					Times(1)
				if tt.runTasks {
					reconcileService.EXPECT().
						Reconcile(gomock.Any(), userID).
						Return(&reconcileservice.Report{UserID: userID}, nil).
						Times(1)
				}
			}

			service := &Service{
				reconcileService: reconcileService,
				profileRepo:      profileRepo,
				workerPool:       workerPool,
				limit:            10,
			}

			logger := zap.NewExample()
			zap.ReplaceGlobals(logger)

			service.sweep(context.Background())
		})
	}
}

func TestService_sweep_SkipsUserAlreadyInFlight(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reconcileService := NewMockReconcileService(ctrl)
	profileRepo := NewMockProfileRepo(ctrl)
	workerPool := NewMockWorkerPoolI(ctrl)

	reconcilingUsers.Store(42, struct{}{})
	defer reconcilingUsers.Delete(42)

	profileRepo.EXPECT().
		FindForReconcile(gomock.Any(), gomock.Any()).
		Return([]int{42}, nil).
		Times(1)
	workerPool.EXPECT().AddTask(gomock.Any(), gomock.Any()).Times(0)

	service := &Service{
		reconcileService: reconcileService,
		profileRepo:      profileRepo,
		workerPool:       workerPool,
		limit:            10,
	}

	service.sweep(context.Background())
}

func TestService_handleUser(t *testing.T) {
	tierUp := &reconcileservice.Report{
		UserID:  1,
		OldTier: "Explorer",
		NewTier: "Smart Traveler",
	}

	tests := []struct {
		name          string
		webhookURL    string
		prepareMock   func(*MockReconcileService, *clients.MockHTTPClientI)
		expectedError string
	}{
		{
			name:       "tier unchanged sends no webhook",
			webhookURL: "http://localhost:9090/hooks/tier-up",
			prepareMock: func(reconcileService *MockReconcileService, _ *clients.MockHTTPClientI) {
				reconcileService.EXPECT().Reconcile(gomock.Any(), 1).
					Return(&reconcileservice.Report{UserID: 1, OldTier: "Explorer", NewTier: "Explorer"}, nil)
			},
		},
		{
			name:       "tier change notifies the webhook",
			webhookURL: "http://localhost:9090/hooks/tier-up",
			prepareMock: func(reconcileService *MockReconcileService, client *clients.MockHTTPClientI) {
				reconcileService.EXPECT().Reconcile(gomock.Any(), 1).Return(tierUp, nil)
				client.EXPECT().Post("http://localhost:9090/hooks/tier-up", nil, gomock.Any()).
					Return(http.StatusOK, nil, nil).
					Times(1)
			},
		},
		{
			name:       "tier change without webhook configured",
			webhookURL: "",
			prepareMock: func(reconcileService *MockReconcileService, _ *clients.MockHTTPClientI) {
				reconcileService.EXPECT().Reconcile(gomock.Any(), 1).Return(tierUp, nil)
			},
		},
		{
			name:       "rejected webhook is not retried",
			webhookURL: "http://localhost:9090/hooks/tier-up",
			prepareMock: func(reconcileService *MockReconcileService, client *clients.MockHTTPClientI) {
				reconcileService.EXPECT().Reconcile(gomock.Any(), 1).Return(tierUp, nil)
				client.EXPECT().Post(gomock.Any(), nil, gomock.Any()).
					Return(http.StatusBadRequest, nil, nil).
					Times(1)
			},
		},
		{
			name:       "webhook failure is retried and surfaces",
			webhookURL: "http://localhost:9090/hooks/tier-up",
			prepareMock: func(reconcileService *MockReconcileService, client *clients.MockHTTPClientI) {
				reconcileService.EXPECT().Reconcile(gomock.Any(), 1).Return(tierUp, nil)
				client.EXPECT().Post(gomock.Any(), nil, gomock.Any()).
					Return(0, nil, errors.New("connection refused")).
					Times(3)
			},
			expectedError: "tier-up webhook for user 1 failed after 3 retries: connection refused",
		},
		{
			name:       "reconcile failure surfaces",
			webhookURL: "http://localhost:9090/hooks/tier-up",
			prepareMock: func(reconcileService *MockReconcileService, _ *clients.MockHTTPClientI) {
				reconcileService.EXPECT().Reconcile(gomock.Any(), 1).
					Return(nil, errors.New("db error"))
			},
			expectedError: "failed to reconcile user 1: db error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			reconcileService := NewMockReconcileService(ctrl)
			client := clients.NewMockHTTPClientI(ctrl)
			tt.prepareMock(reconcileService, client)

			service := &Service{
				webhookURL:       tt.webhookURL,
				reconcileService: reconcileService,
				client:           client,
			}

			err := service.handleUser(context.Background(), 1)

			if tt.expectedError != "" {
				assert.EqualError(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
