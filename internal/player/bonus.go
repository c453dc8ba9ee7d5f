package player

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/lanternworks/nightmarket/internal/domain"
	"github.com/lanternworks/nightmarket/internal/event"
	"github.com/lanternworks/nightmarket/internal/logger"
	"github.com/lanternworks/nightmarket/internal/repository"
)

// BonusResult contains the result of a daily bonus claim
type BonusResult struct {
	Amount      int `json:"amount"`
	Money       int `json:"money"`
	TrustPoints int `json:"trust_points"`
	LicenseTier int `json:"license_tier"`
}

// BonusNotReadyError reports an early claim and carries the wait until the
// window reopens.
type BonusNotReadyError struct {
	Remaining time.Duration
}

// RemainingHours is the wait rounded up to whole hours
func (e BonusNotReadyError) RemainingHours() int {
	return int(math.Ceil(e.Remaining.Hours()))
}

func (e BonusNotReadyError) Error() string {
	return fmt.Sprintf("%s: try again in %dh", domain.ErrMsgBonusNotReady, e.RemainingHours())
}

// Is allows errors.Is() to match both the sentinel and other instances
func (e BonusNotReadyError) Is(target error) bool {
	if target == domain.ErrBonusNotReady {
		return true
	}
	_, ok := target.(BonusNotReadyError)
	return ok
}

// ClaimDailyBonus pays tier x DailyBonusPerTier once per rolling 24-hour
// window and awards the trust increment. A never-claimed player (nil
// last_bonus_at) is always eligible.
func (s *service) ClaimDailyBonus(ctx context.Context, playerID string) (*BonusResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgClaimBonusCalled, "player_id", playerID)

	defer s.locks.LockPlayer(playerID)()

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	player, err := tx.GetPlayerForUpdate(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetPlayerFailed, err)
	}
	if player == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrPlayerNotFound, playerID)
	}

	now := s.now()
	if player.LastBonusAt != nil {
		elapsed := now.Sub(*player.LastBonusAt)
		if elapsed < BonusWindow {
			return nil, BonusNotReadyError{Remaining: BonusWindow - elapsed}
		}
	}

	amount := DailyBonusPerTier * player.LicenseTier
	player.Money += amount
	player.TrustPoints += BonusTrustIncrement
	player.LastBonusAt = &now

	if err := tx.UpdatePlayer(ctx, player); err != nil {
		return nil, fmt.Errorf(ErrMsgUpdatePlayerFailed, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	if s.publisher != nil {
		s.publisher.PublishWithRetry(ctx, event.NewBonusClaimedEvent(player.ID, player.Username, amount, player.LicenseTier, player.TrustPoints))
	}

	log.Info(LogMsgBonusClaimed, "player_id", player.ID, "amount", amount, "tier", player.LicenseTier)

	return &BonusResult{
		Amount:      amount,
		Money:       player.Money,
		TrustPoints: player.TrustPoints,
		LicenseTier: player.LicenseTier,
	}, nil
}
