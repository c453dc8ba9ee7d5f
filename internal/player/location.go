package player

import (
	"context"
	"fmt"

	"github.com/lanternworks/nightmarket/internal/domain"
	"github.com/lanternworks/nightmarket/internal/event"
	"github.com/lanternworks/nightmarket/internal/logger"
)

// LocationSink absorbs high-frequency position pings for batched
// persistence. A nil sink makes UpdateLocation write through directly.
type LocationSink interface {
	Record(playerID string, pos domain.Position)
}

func validatePosition(pos domain.Position) error {
	if !pos.Valid() {
		return fmt.Errorf(ErrMsgPositionBoundsFmt, pos.Lat, pos.Lng, domain.ErrInvalidInput)
	}
	return nil
}

func (s *service) UpdateLocation(ctx context.Context, playerID string, pos domain.Position) error {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgUpdateLocationCalled, "player_id", playerID, "lat", pos.Lat, "lng", pos.Lng)

	if err := validatePosition(pos); err != nil {
		return err
	}

	if s.locations != nil {
		s.locations.Record(playerID, pos)
	} else if err := s.repo.UpdatePlayerPosition(ctx, playerID, pos); err != nil {
		return fmt.Errorf(ErrMsgUpdatePlayerFailed, err)
	}

	if s.publisher != nil {
		s.publisher.PublishWithRetry(ctx, event.NewPlayerMovedEvent(playerID, pos))
	}
	return nil
}
