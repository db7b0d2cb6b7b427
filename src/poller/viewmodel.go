package poller

import (
	"polydash/src/model"
	"polydash/src/utils"
)

// UnknownMarketLabel is the display fallback when a trade carries neither
// a market slug nor an event slug.
const UnknownMarketLabel = "(unknown market)"

// RosterEntry is one row of the trader roster pane.
type RosterEntry struct {
	Address  string
	Pnl      float64
	IsActive bool
}

// FeedEntry is one row of the trade feed, timestamps normalized to
// millisecond epochs and display fallbacks applied.
type FeedEntry struct {
	ID        string
	Timestamp int64
	Trader    string
	Action    string
	AmountUsd *float64
	Price     *float64
	Market    string
	TxHash    string
}

// TraderRoster derives the roster from the position summaries,
// re-deriving absolute P&L from the weighted ratio. The active flag is a
// constant; the feed carries no per-trader activity signal.
func TraderRoster(byTrader []model.TraderPositions) []RosterEntry {
	roster := make([]RosterEntry, 0, len(byTrader))
	for _, summary := range byTrader {
		roster = append(roster, RosterEntry{
			Address:  summary.Trader,
			Pnl:      summary.TotalValue * summary.OverallPnl,
			IsActive: true,
		})
	}
	return roster
}

// TradeFeed drops entries without a timestamp and normalizes the rest.
func TradeFeed(trades []model.TradeEntry) []FeedEntry {
	feed := make([]FeedEntry, 0, len(trades))
	for _, trade := range trades {
		if trade.Timestamp == nil || *trade.Timestamp == 0 {
			continue
		}

		market := UnknownMarketLabel
		if trade.Market != nil {
			market = *trade.Market
		}
		txHash := ""
		if trade.TxHash != nil {
			txHash = *trade.TxHash
		}

		feed = append(feed, FeedEntry{
			ID:        trade.ID,
			Timestamp: utils.ToEpochMillis(*trade.Timestamp),
			Trader:    trade.Trader,
			Action:    trade.Action,
			AmountUsd: trade.AmountUsd,
			Price:     trade.Price,
			Market:    market,
			TxHash:    txHash,
		})
	}
	return feed
}
