package server

import (
	logger "github.com/sirupsen/logrus"

	"polydash/src/aggregator"
	"polydash/src/database"
	"polydash/src/handler"
	"polydash/src/repository"
)

// Run connects to the bot's store, wires the aggregation endpoints and
// serves until shutdown.
func Run() error {
	db, err := database.Get()
	if err != nil {
		return err
	}

	tracking := aggregator.GetConfig()
	traders := tracking.Traders()
	logger.WithField("traders", len(traders)).Info("[server] tracking configured traders")

	store := repository.NewTraderStore(db)

	statusAgg := aggregator.NewStatusAggregator(store, traders, tracking.ProxyWallet)
	tradeAgg := aggregator.NewTradeAggregator(store, traders)
	positionAgg := aggregator.NewPositionAggregator(store, traders)

	config := GetConfig()
	StartServer(config.Port, Dependencies{
		Status:    handler.StatusHandler(statusAgg),
		Trades:    handler.TradesHandler(tradeAgg),
		Positions: handler.PositionsHandler(positionAgg),
		Stream:    handler.StreamHandler(statusAgg, tradeAgg, positionAgg, config.StreamInterval),
	})

	return nil
}
