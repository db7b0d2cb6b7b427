package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"polydash/src/externalmodel"
)

func TestCollectionName(t *testing.T) {
	if got := CollectionName(PositionsPrefix, "0xAbCdEf"); got != "user_positions_0xabcdef" {
		t.Fatalf("unexpected partition name: %s", got)
	}

	upper := CollectionName(ActivitiesPrefix, "0xABC")
	lower := CollectionName(ActivitiesPrefix, "0xabc")
	if upper != lower {
		t.Fatalf("partition name is case-sensitive: %s vs %s", upper, lower)
	}
}

func TestTraderStoreHeartbeat(t *testing.T) {
	t.Run("returns row when present", func(t *testing.T) {
		mockDB, mock := newMockDB(t)
		store := &TraderStore{db: mockDB}

		preview := true
		rows := sqlmock.NewRows([]string{"id", "last_seen_at", "preview_mode"}).
			AddRow("singleton", int64(1700000000000), preview)
		mock.ExpectQuery(`SELECT (.+) FROM "bot_status" WHERE id = \$1`).
			WithArgs(externalmodel.HeartbeatKey, 1).
			WillReturnRows(rows)

		heartbeat, err := store.Heartbeat(context.Background())
		if err != nil {
			t.Fatalf("unexpected error fetching heartbeat: %v", err)
		}
		if heartbeat == nil {
			t.Fatal("expected heartbeat row, got nil")
		}
		if heartbeat.LastSeenAt != 1700000000000 {
			t.Fatalf("unexpected last_seen_at: %d", heartbeat.LastSeenAt)
		}
		if heartbeat.PreviewMode == nil || !*heartbeat.PreviewMode {
			t.Fatalf("unexpected preview_mode: %v", heartbeat.PreviewMode)
		}

		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("unmet sqlmock expectations: %v", err)
		}
	})

	t.Run("returns nil when absent", func(t *testing.T) {
		mockDB, mock := newMockDB(t)
		store := &TraderStore{db: mockDB}

		mock.ExpectQuery(`SELECT (.+) FROM "bot_status" WHERE id = \$1`).
			WithArgs(externalmodel.HeartbeatKey, 1).
			WillReturnRows(sqlmock.NewRows([]string{"id", "last_seen_at", "preview_mode"}))

		heartbeat, err := store.Heartbeat(context.Background())
		if err != nil {
			t.Fatalf("unexpected error for missing heartbeat: %v", err)
		}
		if heartbeat != nil {
			t.Fatalf("expected nil heartbeat, got %+v", heartbeat)
		}
	})
}

func TestTraderStoreLatestTrades(t *testing.T) {
	mockDB, mock := newMockDB(t)
	store := &TraderStore{db: mockDB}

	side := "buy"
	rows := sqlmock.NewRows([]string{"id", "type", "timestamp", "side"}).
		AddRow("t2", "TRADE", int64(1700000100000), side).
		AddRow("t1", "TRADE", int64(1700000000000), side)

	mock.ExpectQuery(`SELECT (.+) FROM "user_activities_0xabc" WHERE type = \$1 ORDER BY timestamp DESC LIMIT \$2`).
		WithArgs(externalmodel.ActivityTypeTrade, 25).
		WillReturnRows(rows)

	trades, err := store.LatestTrades(context.Background(), "0xABC", 25)
	if err != nil {
		t.Fatalf("unexpected error fetching trades: %v", err)
	}

	if len(trades) != 2 {
		t.Fatalf("expected 2 trades, got %d", len(trades))
	}
	if trades[0].ID != "t2" || trades[1].ID != "t1" {
		t.Fatalf("trades not returned in expected order: %+v", trades)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet sqlmock expectations: %v", err)
	}
}

func TestTraderStoreCountTradesSince(t *testing.T) {
	mockDB, mock := newMockDB(t)
	store := &TraderStore{db: mockDB}

	mock.ExpectQuery(`SELECT count\(\*\) FROM "user_activities_0xabc" WHERE type = \$1 AND timestamp >= \$2`).
		WithArgs(externalmodel.ActivityTypeTrade, int64(1700000000000)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(7)))

	count, err := store.CountTradesSince(context.Background(), "0xabc", 1700000000000)
	if err != nil {
		t.Fatalf("unexpected error counting trades: %v", err)
	}
	if count != 7 {
		t.Fatalf("expected count 7, got %d", count)
	}
}

func TestTraderStoreTopPositions(t *testing.T) {
	mockDB, mock := newMockDB(t)
	store := &TraderStore{db: mockDB}

	rows := sqlmock.NewRows([]string{"asset", "title", "current_value", "percent_pnl"}).
		AddRow("a1", "Market A", 100.0, 0.1).
		AddRow("a2", "Market B", 50.0, -0.2)

	mock.ExpectQuery(`SELECT (.+) FROM "user_positions_0xabc" ORDER BY current_value DESC LIMIT \$1`).
		WithArgs(50).
		WillReturnRows(rows)

	positions, err := store.TopPositions(context.Background(), "0xAbC", 50)
	if err != nil {
		t.Fatalf("unexpected error fetching positions: %v", err)
	}

	if len(positions) != 2 {
		t.Fatalf("expected 2 positions, got %d", len(positions))
	}
	if positions[0].CurrentValue == nil || *positions[0].CurrentValue != 100.0 {
		t.Fatalf("unexpected first position: %+v", positions[0])
	}
}

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	dialector := postgres.New(postgres.Config{
		DSN:                  "sqlmock_db_0",
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	})

	gdb, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		sqlDB.Close()
		t.Fatalf("failed to open gorm DB with sqlmock: %v", err)
	}

	return gdb, mock
}
