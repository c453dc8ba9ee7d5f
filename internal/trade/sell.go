package trade

import (
	"context"
	"fmt"
	"math"

	"github.com/lanternworks/nightmarket/internal/domain"
	"github.com/lanternworks/nightmarket/internal/event"
	"github.com/lanternworks/nightmarket/internal/logger"
	"github.com/lanternworks/nightmarket/internal/repository"
)

// sellUnitPrice applies the merchant spread to the price the stack was
// acquired at. Floored per unit, so proceeds never exceed what was paid.
func sellUnitPrice(acquisitionPrice int) int {
	return int(math.Floor(float64(acquisitionPrice) * SellPriceMultiplier))
}

// Sell liquidates part or all of an owned inventory stack. The payout is
// computed from the price stored on the stack at acquisition, not the live
// quote.
func (s *service) Sell(ctx context.Context, playerID, inventoryItemID, merchantID string, quantity int) (*SellResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgSellCalled, "player_id", playerID, "inventory_item_id", inventoryItemID,
		"merchant_id", merchantID, "quantity", quantity)

	// 1. Validate request
	if err := validateQuantity(quantity); err != nil {
		return nil, err
	}

	defer s.locks.LockPlayer(playerID)()

	// 2. Begin transaction and lock the player row
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

	// 3. The stack must belong to this player
	item, err := tx.GetInventoryItemByID(ctx, inventoryItemID, playerID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetInventoryItemFailed, err)
	}
	if item == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrItemNotOwned, inventoryItemID)
	}

	// 4. And hold enough units
	if item.Quantity < quantity {
		return nil, fmt.Errorf("%w: have %d, asked to sell %d",
			domain.ErrInsufficientQuantity, item.Quantity, quantity)
	}

	// 5. The counterparty must exist
	merchant, err := s.repo.GetMerchantByID(ctx, merchantID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetMerchantFailed, err)
	}
	if merchant == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrMerchantNotFound, merchantID)
	}

	// 6. Apply effects
	proceeds := sellUnitPrice(item.CurrentPrice) * quantity

	player.Money += proceeds
	if err := tx.UpdatePlayer(ctx, player); err != nil {
		return nil, fmt.Errorf(ErrMsgUpdatePlayerFailed, err)
	}

	if err := tx.DecrementInventoryItem(ctx, item.ID, quantity); err != nil {
		return nil, fmt.Errorf(ErrMsgDecrementInventoryFailed, err)
	}

	record := &domain.TradeRecord{
		SellerID:   &player.ID,
		MerchantID: merchant.ID,
		ItemName:   item.ItemName,
		Category:   item.Category,
		TotalPrice: proceeds,
		Quantity:   quantity,
		Type:       domain.TradeTypeSell,
		Location:   player.Position,
	}
	if err := tx.InsertTradeRecord(ctx, record); err != nil {
		return nil, fmt.Errorf(ErrMsgInsertTradeRecordFailed, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	if s.publisher != nil {
		s.publisher.PublishWithRetry(ctx, event.NewTradeExecutedEvent(*record, player.Username))
	}

	log.Info(LogMsgItemSold, "player_id", player.ID, "item", item.ItemName, "quantity", quantity,
		"proceeds", proceeds, "balance", player.Money)

	return &SellResult{
		ItemName:   item.ItemName,
		Quantity:   quantity,
		TotalPrice: proceeds,
		Money:      player.Money,
	}, nil
}
