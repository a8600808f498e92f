package services

import (
	"testing"
	"time"

	"github.com/ARQAP/mesa-de-ayuda/src/db"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	conn, err := db.Connect(":memory:", zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, db.Initialize(conn))
	t.Cleanup(func() {
		if sqlDB, err := conn.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return conn
}

func newTestTicketService(t *testing.T) *TicketService {
	t.Helper()
	s := NewTicketService(newTestDB(t))
	s.now = func() time.Time { return time.Date(2024, 5, 1, 9, 30, 15, 0, time.Local) }
	return s
}
