package license

import (
	"context"
	"fmt"

	"github.com/lanternworks/nightmarket/internal/concurrency"
	"github.com/lanternworks/nightmarket/internal/domain"
	"github.com/lanternworks/nightmarket/internal/event"
	"github.com/lanternworks/nightmarket/internal/logger"
	"github.com/lanternworks/nightmarket/internal/repository"
)

// UpgradeResult contains the result of a license upgrade
type UpgradeResult struct {
	Tier        int `json:"tier"`
	Capacity    int `json:"capacity"`
	MoneySpent  int `json:"money_spent"`
	Money       int `json:"money"`
	TrustPoints int `json:"trust_points"`
}

// Service defines the interface for license operations
type Service interface {
	UpgradeLicense(ctx context.Context, playerID string) (*UpgradeResult, error)
}

type service struct {
	repo       repository.Player
	locks      *concurrency.LockManager
	publisher  event.Publisher
	trustBonus int
}

// NewService creates a new license service. trustBonus is the trust awarded
// alongside each successful upgrade.
func NewService(repo repository.Player, locks *concurrency.LockManager, publisher event.Publisher, trustBonus int) Service {
	return &service{
		repo:       repo,
		locks:      locks,
		publisher:  publisher,
		trustBonus: trustBonus,
	}
}

func (s *service) UpgradeLicense(ctx context.Context, playerID string) (*UpgradeResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgUpgradeLicenseCalled, "player_id", playerID)

	defer s.locks.LockPlayer(playerID)()

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		log.Error("Failed to begin transaction", "error", err)
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	player, err := tx.GetPlayerForUpdate(ctx, playerID)
	if err != nil {
		log.Error("Failed to get player", "error", err)
		return nil, fmt.Errorf(ErrMsgGetPlayerFailed, err)
	}
	if player == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrPlayerNotFound, playerID)
	}

	if player.LicenseTier >= MaxTier {
		return nil, domain.ErrMaxLicenseTier
	}

	targetTier := player.LicenseTier + 1
	cost, _ := UpgradeCost(targetTier)
	requiredTrust, _ := TrustRequirement(targetTier)

	// The funds shortfall is reported before the trust shortfall
	if player.Money < cost {
		return nil, fmt.Errorf("%w: tier %d costs %d, have %d", domain.ErrInsufficientFunds, targetTier, cost, player.Money)
	}
	if player.TrustPoints < requiredTrust {
		return nil, fmt.Errorf("%w: tier %d requires %d, have %d", domain.ErrInsufficientTrust, targetTier, requiredTrust, player.TrustPoints)
	}

	oldTier := player.LicenseTier
	player.Money -= cost
	player.LicenseTier = targetTier
	player.TrustPoints += s.trustBonus

	if err := tx.UpdatePlayer(ctx, player); err != nil {
		log.Error("Failed to update player", "error", err)
		return nil, fmt.Errorf(ErrMsgUpdatePlayerFailed, err)
	}

	if err := tx.Commit(ctx); err != nil {
		log.Error("Failed to commit transaction", "error", err)
		return nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	if s.publisher != nil {
		s.publisher.PublishWithRetry(ctx, event.NewLicenseUpgradedEvent(
			player.ID, player.Username, oldTier, targetTier, Capacity(targetTier), cost))
	}

	log.Info(LogMsgLicenseUpgraded,
		"player_id", playerID,
		"tier", targetTier,
		"cost", cost,
		"capacity", Capacity(targetTier))

	return &UpgradeResult{
		Tier:        targetTier,
		Capacity:    Capacity(targetTier),
		MoneySpent:  cost,
		Money:       player.Money,
		TrustPoints: player.TrustPoints,
	}, nil
}
