package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postShipment(t *testing.T, server *Server, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/shipments", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, server.CreateShipment(e.NewContext(req, rec)))
	return rec
}

func TestCreateShipment_InitialStateMustBePending(t *testing.T) {
	server := NewServer(ServerDeps{})

	t.Run("should reject a shipment created in transit", func(t *testing.T) {
		rec := postShipment(t, server, `{
			"customerId": "5f4e7b1a-93a1-4a0a-9c3f-2c3a6f1b9d10",
			"routeId": "9d2c4f6e-1b3a-4c5d-8e7f-0a1b2c3d4e5f",
			"trackingNumber": "TRK-2026-0042",
			"state": "In transit",
			"totalCost": 150
		}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var body errorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Contains(t, body.Message, "Pending")
	})

	t.Run("should reject an unknown state value", func(t *testing.T) {
		rec := postShipment(t, server, `{
			"customerId": "5f4e7b1a-93a1-4a0a-9c3f-2c3a6f1b9d10",
			"routeId": "9d2c4f6e-1b3a-4c5d-8e7f-0a1b2c3d4e5f",
			"trackingNumber": "TRK-2026-0042",
			"state": "Archived",
			"totalCost": 150
		}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
