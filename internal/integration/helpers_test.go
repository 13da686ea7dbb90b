package integration_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/metinatakli/cinema-ticket-service/internal/payment"
	"github.com/stretchr/testify/require"
)

var keysToIgnore = map[string]struct{}{
	"timestamp":  {},
	"requestId":  {},
	"purchaseId": {},
}

func prepareRequest(method, path string, body io.Reader, headers map[string]string) (*http.Request, error) {
	req := httptest.NewRequest(method, path, body)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req, nil
}

func compareResponse(t *testing.T, body io.Reader, expectedResponse string) {
	var actual map[string]any
	require.NoError(t, json.NewDecoder(body).Decode(&actual))

	cleanMap(actual)

	var expected map[string]any
	require.NoError(t, json.Unmarshal([]byte(expectedResponse), &expected))

	// ignore nondeterministic fields while comparing
	opts := cmpopts.IgnoreMapEntries(func(k string, _ any) bool {
		_, ok := keysToIgnore[k]
		return ok
	})

	if diff := cmp.Diff(expected, actual, opts); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}

func cleanMap(m map[string]any) {
	for k := range m {
		if _, ok := keysToIgnore[k]; ok {
			delete(m, k)
			continue
		}
		if nested, ok := m[k].(map[string]any); ok {
			cleanMap(nested)
		}
	}
}

func reserveSeats(t testing.TB, app *TestApp, accountID int64, seats int) {
	t.Helper()
	require.NoError(t, app.SeatReservations.ReserveSeats(context.Background(), accountID, seats))
}

func assertReservedSeats(t testing.TB, app *TestApp, accountID int64, want int) {
	t.Helper()

	got, err := app.SeatReservations.ReservedSeats(context.Background(), accountID)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func assertPayments(t testing.TB, app *TestApp, want []payment.Payment) {
	t.Helper()

	if diff := cmp.Diff(want, app.Payments.Payments(), cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("payments mismatch (-want +got):\n%s", diff)
	}
}

// resetState clears every reservation and recorded payment so a scenario
// starts from an empty venue.
func resetState(t testing.TB, app *TestApp) {
	t.Helper()

	ctx := context.Background()

	_, err := app.DB.Exec(ctx, "TRUNCATE seat_reservations")
	require.NoError(t, err)

	_, err = app.DB.Exec(ctx, "UPDATE seat_inventory SET reserved = 0 WHERE id = 1")
	require.NoError(t, err)

	require.NoError(t, app.RedisClient.FlushAll(ctx).Err())

	app.Payments.Reset()
}
