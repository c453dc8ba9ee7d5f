package player

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/lanternworks/nightmarket/internal/concurrency"
	"github.com/lanternworks/nightmarket/internal/domain"
	"github.com/lanternworks/nightmarket/internal/event"
	"github.com/lanternworks/nightmarket/internal/license"
	"github.com/lanternworks/nightmarket/internal/logger"
	"github.com/lanternworks/nightmarket/internal/repository"
	"github.com/lanternworks/nightmarket/internal/utils"
)

// Service defines player account and progression operations
type Service interface {
	// Register creates a new player and returns it with the issued player key
	Register(ctx context.Context, username, displayName string) (*domain.Player, error)
	// Login verifies a username/player-key pair
	Login(ctx context.Context, username, playerKey string) (*domain.Player, error)
	// GetProfile returns the player enriched with capacity and occupancy
	GetProfile(ctx context.Context, playerID string) (*domain.Profile, error)
	// GetPlayerByID returns the bare player row
	GetPlayerByID(ctx context.Context, playerID string) (*domain.Player, error)
	// ListInventory returns the player's stacks, newest acquisitions first
	ListInventory(ctx context.Context, playerID string) ([]domain.InventoryItem, error)
	// UpdateLocation records a position ping
	UpdateLocation(ctx context.Context, playerID string, pos domain.Position) error
	// ClaimDailyBonus pays the once-per-day tier bonus
	ClaimDailyBonus(ctx context.Context, playerID string) (*BonusResult, error)
}

type service struct {
	repo          repository.Player
	locks         *concurrency.LockManager
	publisher     event.Publisher
	locations     LocationSink
	startingMoney int
	now           func() time.Time // For the bonus window
	rnd           func() float64   // For spawn placement
}

// NewService creates a new player service
func NewService(repo repository.Player, locks *concurrency.LockManager, publisher event.Publisher, locations LocationSink, startingMoney int) Service {
	return &service{
		repo:          repo,
		locks:         locks,
		publisher:     publisher,
		locations:     locations,
		startingMoney: startingMoney,
		now:           time.Now,
		rnd:           utils.RandomFloat,
	}
}

var usernamePattern = regexp.MustCompile(`^[a-z0-9_]+$`)

// spawnPosition picks a uniform random point inside the city spawn box,
// so fresh accounts start within walking range of the seeded districts.
func (s *service) spawnPosition() domain.Position {
	return domain.Position{
		Lat: SpawnLatMin + s.rnd()*(SpawnLatMax-SpawnLatMin),
		Lng: SpawnLngMin + s.rnd()*(SpawnLngMax-SpawnLngMin),
	}
}

func validateUsername(username string) error {
	if len(username) < UsernameMinLength || len(username) > UsernameMaxLength {
		return fmt.Errorf(ErrMsgUsernameLengthFmt, UsernameMinLength, UsernameMaxLength, domain.ErrInvalidInput)
	}
	if !usernamePattern.MatchString(username) {
		return fmt.Errorf(ErrMsgUsernameCharsFmt, domain.ErrInvalidInput)
	}
	return nil
}

// Register creates a player with the starting balance at license tier 1.
// The returned player carries the freshly issued player key; this is the
// only time the key leaves the backend.
func (s *service) Register(ctx context.Context, username, displayName string) (*domain.Player, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgRegisterCalled, "username", username)

	username = strings.ToLower(strings.TrimSpace(username))
	if err := validateUsername(username); err != nil {
		return nil, err
	}

	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		displayName = cases.Title(language.English).String(username)
	}

	player := &domain.Player{
		Username:    username,
		DisplayName: displayName,
		Money:       s.startingMoney,
		LicenseTier: license.MinTier,
		PlayerKey:   uuid.NewString(),
		Position:    s.spawnPosition(),
	}

	if err := s.repo.CreatePlayer(ctx, player); err != nil {
		log.Error("Failed to create player", "error", err, "username", username)
		return nil, fmt.Errorf(ErrMsgCreatePlayerFailed, err)
	}

	log.Info(LogMsgPlayerRegistered, "player_id", player.ID, "username", username)
	return player, nil
}

// Login verifies the credential pair. A missing username and a wrong key
// fail identically so usernames cannot be probed.
func (s *service) Login(ctx context.Context, username, playerKey string) (*domain.Player, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgLoginCalled, "username", username)

	username = strings.ToLower(strings.TrimSpace(username))
	player, err := s.repo.GetPlayerByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetPlayerFailed, err)
	}
	if player == nil || player.PlayerKey != playerKey {
		return nil, fmt.Errorf(ErrMsgWrongPlayerKeyFmt, domain.ErrUnauthorized)
	}

	return player, nil
}

func (s *service) GetPlayerByID(ctx context.Context, playerID string) (*domain.Player, error) {
	player, err := s.repo.GetPlayerByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetPlayerFailed, err)
	}
	if player == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrPlayerNotFound, playerID)
	}
	return player, nil
}

func (s *service) GetProfile(ctx context.Context, playerID string) (*domain.Profile, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgGetProfileCalled, "player_id", playerID)

	player, err := s.GetPlayerByID(ctx, playerID)
	if err != nil {
		return nil, err
	}

	occupancy, err := s.repo.GetInventoryOccupancy(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetOccupancyFailed, err)
	}

	return &domain.Profile{
		Player:    *player,
		Capacity:  license.Capacity(player.LicenseTier),
		Occupancy: occupancy,
	}, nil
}

func (s *service) ListInventory(ctx context.Context, playerID string) ([]domain.InventoryItem, error) {
	if _, err := s.GetPlayerByID(ctx, playerID); err != nil {
		return nil, err
	}

	items, err := s.repo.GetInventory(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetInventoryFailed, err)
	}
	return items, nil
}
