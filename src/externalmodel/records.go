package externalmodel

// Row types for tables owned by the bot process. This side never writes
// them; nullable columns stay pointers and get their defaults applied in
// the aggregation layer.

// HeartbeatKey is the fixed primary key of the bot_status singleton row.
const HeartbeatKey = "singleton"

// ActivityTypeTrade marks the activity rows relevant to the dashboard.
// Other discriminator values (redemptions, merges) are ignored.
const ActivityTypeTrade = "TRADE"

// BotHeartbeat is the singleton row the bot touches every few seconds.
// LastSeenAt is a millisecond epoch.
type BotHeartbeat struct {
	ID          string `gorm:"primaryKey;column:id" json:"id"`
	LastSeenAt  int64  `gorm:"column:last_seen_at" json:"last_seen_at"`
	PreviewMode *bool  `gorm:"column:preview_mode" json:"preview_mode,omitempty"`
}

// TableName Ensures that GORM uses the exact table name from the database.
func (BotHeartbeat) TableName() string {
	return "bot_status"
}

// ActivityRecord is one row of a per-trader user_activities partition.
// Timestamp may be a second or millisecond epoch depending on which writer
// produced the row.
type ActivityRecord struct {
	ID              string   `gorm:"primaryKey;column:id" json:"id"`
	Type            string   `gorm:"column:type" json:"type"`
	Timestamp       *int64   `gorm:"column:timestamp" json:"timestamp,omitempty"`
	Side            *string  `gorm:"column:side" json:"side,omitempty"`
	UsdcSize        *float64 `gorm:"column:usdc_size" json:"usdc_size,omitempty"`
	Price           *float64 `gorm:"column:price" json:"price,omitempty"`
	Slug            *string  `gorm:"column:slug" json:"slug,omitempty"`
	EventSlug       *string  `gorm:"column:event_slug" json:"event_slug,omitempty"`
	TransactionHash *string  `gorm:"column:transaction_hash" json:"transaction_hash,omitempty"`
	Bot             *bool    `gorm:"column:bot" json:"bot,omitempty"`
}

// PositionRecord is one row of a per-trader user_positions partition.
type PositionRecord struct {
	Asset        *string  `gorm:"column:asset" json:"asset,omitempty"`
	ConditionID  *string  `gorm:"column:condition_id" json:"condition_id,omitempty"`
	Title        *string  `gorm:"column:title" json:"title,omitempty"`
	Outcome      *string  `gorm:"column:outcome" json:"outcome,omitempty"`
	CurrentValue *float64 `gorm:"column:current_value" json:"current_value,omitempty"`
	PercentPnl   *float64 `gorm:"column:percent_pnl" json:"percent_pnl,omitempty"`
}
