package trade

import (
	"context"
	"fmt"

	"github.com/lanternworks/nightmarket/internal/domain"
	"github.com/lanternworks/nightmarket/internal/event"
	"github.com/lanternworks/nightmarket/internal/license"
	"github.com/lanternworks/nightmarket/internal/logger"
	"github.com/lanternworks/nightmarket/internal/repository"
)

// Buy runs the full purchase protocol. Preconditions are checked in a fixed
// order and the first failure wins; every mutation happens inside one
// transaction so a late failure leaves no trace.
func (s *service) Buy(ctx context.Context, playerID, merchantID, itemName string, quantity int) (*BuyResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgBuyCalled, "player_id", playerID, "merchant_id", merchantID, "item", itemName, "quantity", quantity)

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

	// 3. Resolve the merchant and gate on its license tier
	merchant, err := s.repo.GetMerchantByID(ctx, merchantID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetMerchantFailed, err)
	}
	if merchant == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrMerchantNotFound, merchantID)
	}
	if player.LicenseTier < merchant.RequiredLicense {
		return nil, fmt.Errorf("%w: merchant requires tier %d, player holds %d",
			domain.ErrLicenseInsufficient, merchant.RequiredLicense, player.LicenseTier)
	}

	// 4. The merchant must actually stock the item
	if !merchant.Offers(itemName) {
		return nil, fmt.Errorf("%w: %s", domain.ErrItemNotOffered, itemName)
	}

	// 5. Resolve the live quote
	price, err := s.repo.GetPrice(ctx, itemName)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetPriceFailed, err)
	}
	if price == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrPriceNotFound, itemName)
	}

	// Classify and gate on the item's own license tier
	entry, err := s.repo.GetCatalogEntry(ctx, itemName)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetCatalogFailed, err)
	}
	grade, requiredTier, category := classify(entry, itemName)
	if player.LicenseTier < requiredTier {
		return nil, fmt.Errorf("%w: item requires tier %d, player holds %d",
			domain.ErrLicenseInsufficient, requiredTier, player.LicenseTier)
	}

	// 6. Funds
	totalPrice := price.CurrentPrice * quantity
	if player.Money < totalPrice {
		return nil, fmt.Errorf("%w: need %d, have %d", domain.ErrInsufficientFunds, totalPrice, player.Money)
	}

	// 7. Capacity: occupancy counts units, not stacks
	occupancy, err := tx.GetInventoryOccupancy(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetOccupancyFailed, err)
	}
	capacity := license.Capacity(player.LicenseTier)
	if occupancy+quantity > capacity {
		return nil, fmt.Errorf("%w: %d/%d slots used, %d more requested",
			domain.ErrInventoryFull, occupancy, capacity, quantity)
	}

	// 8. Apply effects
	player.Money -= totalPrice
	if err := tx.UpdatePlayer(ctx, player); err != nil {
		return nil, fmt.Errorf(ErrMsgUpdatePlayerFailed, err)
	}

	item := &domain.InventoryItem{
		PlayerID:        player.ID,
		ItemName:        itemName,
		Category:        category,
		BasePrice:       price.BasePrice,
		CurrentPrice:    price.CurrentPrice,
		Grade:           grade,
		RequiredLicense: requiredTier,
		Quantity:        quantity,
	}
	if err := tx.UpsertInventoryItem(ctx, item); err != nil {
		return nil, fmt.Errorf(ErrMsgUpsertInventoryFailed, err)
	}

	record := &domain.TradeRecord{
		BuyerID:    &player.ID,
		MerchantID: merchant.ID,
		ItemName:   itemName,
		Category:   category,
		TotalPrice: totalPrice,
		Quantity:   quantity,
		Type:       domain.TradeTypeBuy,
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

	log.Info(LogMsgItemBought, "player_id", player.ID, "item", itemName, "quantity", quantity,
		"total_price", totalPrice, "balance", player.Money)

	return &BuyResult{
		ItemName:   itemName,
		Quantity:   quantity,
		TotalPrice: totalPrice,
		Money:      player.Money,
	}, nil
}
