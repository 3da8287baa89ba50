package app

import (
	"context"

	"github.com/TikhonFedorov/couple-app/internal/domain/accounts"
	"github.com/TikhonFedorov/couple-app/internal/pkg/logger"
)

// maintenanceService implements the MaintenanceService interface
type maintenanceService struct {
	coupleRepo accounts.CoupleRepository
	logger     logger.Logger
}

// NewMaintenanceService creates a new maintenanceService instance
func NewMaintenanceService(coupleRepo accounts.CoupleRepository, logger logger.Logger) (accounts.MaintenanceService, error) {
	return &maintenanceService{
		coupleRepo: coupleRepo,
		logger:     logger,
	}, nil
}

// RemoveOrphanCouples deletes every couple with zero users. Registration
// creates the couple row before the user row, so a crash in between can
// leave orphans; the sweep runs at startup and is safe to repeat.
func (s *maintenanceService) RemoveOrphanCouples(ctx context.Context) (int64, error) {
	count, err := s.coupleRepo.DeleteOrphans(ctx)
	if err != nil {
		return 0, err
	}

	s.logger.Info("Removed ", count, " orphan couple(s) from database")
	return count, nil
}
