package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/propaint/estimate-api/internal/domain"
)

func TestSettingsHandler_Defaults(t *testing.T) {
	env := newHandlerEnv(t)

	t.Run("first read returns factory defaults", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/settings", nil)
		rr := httptest.NewRecorder()

		env.settingsH.GetDefaults(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var resp domain.ProjectSettingsDTO
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, 50.0, resp.LaborRatePerHour)
		assert.Equal(t, 0.10, resp.OverheadPct)
		assert.Equal(t, 0.20, resp.ProfitPct)
	})

	t.Run("update replaces defaults", func(t *testing.T) {
		body, _ := json.Marshal(domain.UpdateProjectSettingsRequest{
			LaborRatePerHour: 65,
			OverheadPct:      0.12,
			ProfitPct:        0.25,
			TaxRate:          0.08,
		})
		req := httptest.NewRequest(http.MethodPut, "/api/v1/settings", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		env.settingsH.UpdateDefaults(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var resp domain.ProjectSettingsDTO
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, 65.0, resp.LaborRatePerHour)
		assert.Equal(t, 0.08, resp.TaxRate)
	})

	t.Run("rejects negative labor rate", func(t *testing.T) {
		body, _ := json.Marshal(domain.UpdateProjectSettingsRequest{LaborRatePerHour: -1})
		req := httptest.NewRequest(http.MethodPut, "/api/v1/settings", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		env.settingsH.UpdateDefaults(rr, req)

		require.Equal(t, http.StatusBadRequest, rr.Code)

		var resp domain.APIError
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Contains(t, resp.Errors, "laborRatePerHour")
	})
}
