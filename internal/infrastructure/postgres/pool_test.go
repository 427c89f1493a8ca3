package postgres

import (
	"context"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cfdi-conciliador/pkg/config"
)

func TestNewPoolConfig_SocketUnix(t *testing.T) {
	for name, cfg := range map[string]config.DBConfig{
		"database_url": {DatabaseURL: "postgres://u:p@/cfdi?host=/var/run/postgresql"},
		"db_host":      {Host: "/var/run/postgresql", Port: 5432, User: "u", DBName: "cfdi", SSLMode: "disable"},
	} {
		t.Run(name, func(t *testing.T) {
			pc, err := newPoolConfig(cfg)
			require.NoError(t, err)
			assert.Equal(t, "/var/run/postgresql", pc.ConnConfig.Host)
			assert.Equal(t, uint16(5432), pc.ConnConfig.Port)
			assert.Equal(t, int32(10), pc.MaxConns)
			assert.NotNil(t, pc.AfterConnect)
		})
	}
}

// El pool debe llegar al socket unix; el servidor falso cierra la conexión y el ping falla.
func TestNewPool_ConectaPorSocketUnix(t *testing.T) {
	dir, err := os.MkdirTemp("", "pg")
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.RemoveAll(dir) })

	ln, err := net.Listen("unix", filepath.Join(dir, ".s.PGSQL.5432"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = ln.Close() })

	accepted := make(chan struct{}, 1)
	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			select {
			case accepted <- struct{}{}:
			default:
			}
			_ = conn.Close()
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	pool, err := NewPool(ctx, config.DBConfig{DatabaseURL: "postgres://u:p@/cfdi?host=" + dir + "&sslmode=disable"})
	require.Error(t, err)
	assert.Nil(t, pool)

	select {
	case <-accepted:
	case <-time.After(time.Second):
		t.Fatal("no se recibió ninguna conexión en el socket unix")
	}
}
