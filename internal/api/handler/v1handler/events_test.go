package v1handler_test

import (
	"bufio"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"backoffice/internal/events"
	"backoffice/pkg/domain"

	"github.com/stretchr/testify/require"
)

func TestStreamAdminEvents(t *testing.T) {
	api := newTestAPI(t)
	customer := domain.AccountID(3)
	srv := httptest.NewServer(api.router)
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/v1/events/admin", nil)
	require.NoError(t, err)
	res, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Equal(t, "text/event-stream", res.Header.Get("Content-Type"))

	reader := bufio.NewReader(res.Body)
	line, err := reader.ReadString('\n')
	require.NoError(t, err)
	require.Equal(t, ": connected\n", line)

	require.Eventually(t, func() bool {
		return api.hub.Subscribers(events.AdminChannel) == 1
	}, time.Second, 10*time.Millisecond)

	api.hub.Broadcast(ctx, events.NewOrderMessage(domain.NewOrderEvent{
		OrderID:    5,
		CustomerID: &customer,
		Total:      "29.99",
		CreatedAt:  fixtureTime,
	}))

	for {
		line, err := reader.ReadString('\n')
		require.NoError(t, err)
		if line == "event: new_order\n" {
			break
		}
	}
	line, err = reader.ReadString('\n')
	require.NoError(t, err)
	require.Equal(t,
		`data: {"orderId":5,"customerId":3,"total":"29.99","createdAt":"2026-01-02T03:04:05.000Z"}`+"\n",
		line)
}
