package model

// Wire shapes served by the aggregation endpoints and decoded by the
// dashboard poller. Trade-side numerics stay pointers (null on the wire
// when the source row lacks them); position-side numerics are zero-coerced
// before they get here.

const (
	ActionBuy  = "BUY"
	ActionSell = "SELL"
)

type BotInfo struct {
	IsRunning   bool   `json:"isRunning"`
	LastSeenAt  *int64 `json:"lastSeenAt"`
	PreviewMode *bool  `json:"previewMode"`
}

type TrackingInfo struct {
	TradersTracked int   `json:"tradersTracked"`
	TradeCount24h  int64 `json:"tradeCount24h"`
}

type StatusConfig struct {
	ProxyWallet string `json:"proxyWallet"`
}

type StatusResponse struct {
	OK       bool         `json:"ok"`
	Bot      BotInfo      `json:"bot"`
	Tracking TrackingInfo `json:"tracking"`
	Config   StatusConfig `json:"config"`
}

type TradeEntry struct {
	ID        string   `json:"id"`
	Timestamp *int64   `json:"timestamp"`
	Trader    string   `json:"trader"`
	Action    string   `json:"action"`
	AmountUsd *float64 `json:"amountUsd"`
	Price     *float64 `json:"price"`
	Market    *string  `json:"market"`
	TxHash    *string  `json:"txHash"`
	IsBot     bool     `json:"isBot"`
}

type TradesResponse struct {
	OK     bool         `json:"ok"`
	Trades []TradeEntry `json:"trades"`
}

type PositionEntry struct {
	Asset        *string `json:"asset"`
	ConditionID  *string `json:"conditionId"`
	Title        *string `json:"title"`
	Outcome      *string `json:"outcome"`
	CurrentValue float64 `json:"currentValue"`
	PercentPnl   float64 `json:"percentPnl"`
}

type TraderPositions struct {
	Trader     string          `json:"trader"`
	TotalValue float64         `json:"totalValue"`
	OverallPnl float64         `json:"overallPnl"`
	Positions  []PositionEntry `json:"positions"`
}

type PositionsResponse struct {
	OK                bool              `json:"ok"`
	PositionsByTrader []TraderPositions `json:"positionsByTrader"`
}

// ErrorResponse is the uniform failure envelope: endpoints never raise past
// their boundary, they answer with ok=false instead.
type ErrorResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

// Snapshot is one frame of the /ws stream: the three endpoint payloads
// assembled at the same instant.
type Snapshot struct {
	Status    StatusResponse    `json:"status"`
	Trades    TradesResponse    `json:"trades"`
	Positions PositionsResponse `json:"positions"`
}
