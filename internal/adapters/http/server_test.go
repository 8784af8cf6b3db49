package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpadapter "github.com/dvstudio/nodewire/internal/adapters/http"
	"github.com/dvstudio/nodewire/pkg/adapters/memory"
	"github.com/dvstudio/nodewire/pkg/domain"
	"github.com/dvstudio/nodewire/pkg/formatstring"
)

func newTestHandler() (http.Handler, *formatstring.Service) {
	svc := formatstring.NewService(memory.NewConfigStore(), memory.NewStateStore())
	return httpadapter.NewHandler(svc), svc
}

func postJSON(t *testing.T, handler http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestUpdateNodeEndpoint(t *testing.T) {
	handler, _ := newTestHandler()

	rec := postJSON(t, handler, "/update_format_string_node",
		`{"nodeId":"12","template_type":"Simple","template":"Hello {name}"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var cfg domain.NodeConfig
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cfg))
	assert.Contains(t, cfg.Inputs, "name")
	assert.Contains(t, cfg.Inputs, domain.WidgetTemplate)
	require.NotEmpty(t, cfg.Outputs)
	assert.Equal(t, "name", cfg.Outputs[0].Name)
}

func TestUpdateNodeEndpointRejectsBadRequests(t *testing.T) {
	handler, _ := newTestHandler()

	t.Run("malformed body", func(t *testing.T) {
		rec := postJSON(t, handler, "/update_format_string_node", `{not json`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing node id", func(t *testing.T) {
		rec := postJSON(t, handler, "/update_format_string_node", `{"template":"{x}"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Contains(t, body, "error")
	})
}

func TestGetNodeConfigEndpoint(t *testing.T) {
	handler, svc := newTestHandler()

	_, err := svc.UpdateNodeConfig(context.Background(), domain.UpdateRequest{
		NodeID:   "9",
		Template: "{key}",
	})
	require.NoError(t, err)

	t.Run("known node", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/get_format_string_node_config/9", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var cfg domain.NodeConfig
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cfg))
		assert.Contains(t, cfg.Inputs, "key")
	})

	t.Run("unknown node answers empty object", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/get_format_string_node_config/404", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{}`, rec.Body.String())
	})
}

func TestLoadNodeEndpoint(t *testing.T) {
	handler, svc := newTestHandler()

	require.NoError(t, svc.SaveState(context.Background(), "prompts/demo", domain.SavedState{
		TemplateType: domain.TemplateSimple,
		Template:     "{name}",
		Inputs:       map[string]string{"name": "world"},
	}))

	t.Run("saved state", func(t *testing.T) {
		rec := postJSON(t, handler, "/load_format_string_node", `{"file_path":"prompts/demo"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		var st domain.SavedState
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &st))
		assert.Equal(t, "{name}", st.Template)
		assert.Equal(t, "world", st.Inputs["name"])
	})

	t.Run("nothing saved answers empty object", func(t *testing.T) {
		rec := postJSON(t, handler, "/load_format_string_node", `{"file_path":"prompts/none"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{}`, rec.Body.String())
	})

	t.Run("missing path", func(t *testing.T) {
		rec := postJSON(t, handler, "/load_format_string_node", `{"file_path":""}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		rec := postJSON(t, handler, "/load_format_string_node", `nope`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
