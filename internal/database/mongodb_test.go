package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestConnectMongo_BadURI(t *testing.T) {
	_, err := ConnectMongo(context.Background(), "not-a-mongo-uri", time.Second)
	require.Error(t, err)
	require.Contains(t, err.Error(), "mongo connect")
}

func TestOpen_PropagatesConnectError(t *testing.T) {
	s, err := Open(context.Background(), "postgres://localhost", "blogai", "blogs", time.Second)
	require.Error(t, err)
	require.Nil(t, s)
}
