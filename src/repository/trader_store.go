package repository

import (
	"context"
	"errors"
	"strings"

	logger "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"polydash/src/externalmodel"
)

// Logical partition prefixes used by the bot's writer process.
const (
	PositionsPrefix  = "user_positions"
	ActivitiesPrefix = "user_activities"
)

// CollectionName resolves a trader address to its backing partition.
// Addresses are lowercased first so differently-cased configuration input
// resolves to the same partition. No address validation happens here.
func CollectionName(prefix, address string) string {
	return prefix + "_" + strings.ToLower(address)
}

// TraderStore issues the bounded, sorted reads against the bot's store:
// the heartbeat singleton plus the per-trader positions and activities
// partitions.
type TraderStore struct {
	db *gorm.DB
}

// NewTraderStore creates a store accessor on top of the given handle.
func NewTraderStore(db *gorm.DB) *TraderStore {
	logger.WithField("component", "TraderStore").
		Debug("Creating new TraderStore")

	return &TraderStore{db: db}
}

// WithDB allows overriding the underlying *gorm.DB instance.
// Useful for tests or when using a specific session.
func (s *TraderStore) WithDB(db *gorm.DB) *TraderStore {
	return &TraderStore{db: db}
}

// Heartbeat fetches the bot_status singleton.
// Returns (nil, nil) when the row does not exist.
func (s *TraderStore) Heartbeat(ctx context.Context) (*externalmodel.BotHeartbeat, error) {
	var heartbeat externalmodel.BotHeartbeat

	err := s.db.WithContext(ctx).
		Where("id = ?", externalmodel.HeartbeatKey).
		First(&heartbeat).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.WithFields(map[string]interface{}{
				"repo": "TraderStore",
				"op":   "Heartbeat",
			}).Info("Heartbeat row not found")

			return nil, nil
		}

		logger.WithFields(map[string]interface{}{
			"repo": "TraderStore",
			"op":   "Heartbeat",
		}).WithError(err).Error("Failed to fetch heartbeat")

		return nil, err
	}

	return &heartbeat, nil
}

// LatestTrades returns up to limit TRADE rows for a trader, newest first.
func (s *TraderStore) LatestTrades(
	ctx context.Context,
	trader string,
	limit int,
) ([]externalmodel.ActivityRecord, error) {

	table := CollectionName(ActivitiesPrefix, trader)

	var rows []externalmodel.ActivityRecord

	err := s.db.WithContext(ctx).
		Table(table).
		Where("type = ?", externalmodel.ActivityTypeTrade).
		Order("timestamp DESC").
		Limit(limit).
		Find(&rows).Error

	if err != nil {
		logger.WithFields(map[string]interface{}{
			"repo":   "TraderStore",
			"op":     "LatestTrades",
			"trader": trader,
			"limit":  limit,
		}).WithError(err).Error("Failed to fetch latest trades")

		return nil, err
	}

	logger.WithFields(map[string]interface{}{
		"repo":        "TraderStore",
		"op":          "LatestTrades",
		"trader":      trader,
		"rows_return": len(rows),
	}).Debug("Latest trades fetched")

	return rows, nil
}

// CountTradesSince counts TRADE rows with timestamp >= sinceMillis.
func (s *TraderStore) CountTradesSince(
	ctx context.Context,
	trader string,
	sinceMillis int64,
) (int64, error) {

	table := CollectionName(ActivitiesPrefix, trader)

	var count int64

	err := s.db.WithContext(ctx).
		Table(table).
		Where("type = ? AND timestamp >= ?", externalmodel.ActivityTypeTrade, sinceMillis).
		Count(&count).Error

	if err != nil {
		logger.WithFields(map[string]interface{}{
			"repo":   "TraderStore",
			"op":     "CountTradesSince",
			"trader": trader,
			"since":  sinceMillis,
		}).WithError(err).Error("Failed to count trades")

		return 0, err
	}

	return count, nil
}

// TopPositions returns up to limit position rows for a trader, largest
// current value first.
func (s *TraderStore) TopPositions(
	ctx context.Context,
	trader string,
	limit int,
) ([]externalmodel.PositionRecord, error) {

	table := CollectionName(PositionsPrefix, trader)

	var rows []externalmodel.PositionRecord

	err := s.db.WithContext(ctx).
		Table(table).
		Order("current_value DESC").
		Limit(limit).
		Find(&rows).Error

	if err != nil {
		logger.WithFields(map[string]interface{}{
			"repo":   "TraderStore",
			"op":     "TopPositions",
			"trader": trader,
			"limit":  limit,
		}).WithError(err).Error("Failed to fetch positions")

		return nil, err
	}

	logger.WithFields(map[string]interface{}{
		"repo":        "TraderStore",
		"op":          "TopPositions",
		"trader":      trader,
		"rows_return": len(rows),
	}).Debug("Positions fetched")

	return rows, nil
}
