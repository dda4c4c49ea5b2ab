package web_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"calcpad/internal/web"
)

func TestJanitor_ExpiresIdleSessions(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	srv, sessions := newServer(t, web.Options{
		SessionTTL:    20 * time.Millisecond,
		SweepInterval: 5 * time.Millisecond,
	})
	require.NoError(t, sessions.CreateSession("idle", newCalc()))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		srv.Janitor(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool { return sessions.Len() == 0 }, 2*time.Second, 5*time.Millisecond)

	cancel()
	<-done
}

func TestRun_ShutsDownOnCancel(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	srv, _ := newServer(t, web.Options{})
	hs := &http.Server{Addr: "127.0.0.1:0"}

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- srv.Run(ctx, hs) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-errc:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
