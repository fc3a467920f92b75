package mcp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/R3Claimers/InsiderJobs/tools"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	registry := tools.NewToolRegistry()
	registry.Register(tools.NewMatchResumeSkillsTool())

	r := gin.New()
	NewServer(registry, "test").RegisterRoutes(r.Group("/api"))
	return r
}

func post(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandleMCPInitialize(t *testing.T) {
	w := post(t, newTestRouter(), "/api/mcp", `{"jsonrpc":"2.0","id":1,"method":"initialize"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Result InitializeResult `json:"result"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, ProtocolVersion, resp.Result.ProtocolVersion)
	assert.Equal(t, "insiderjobs", resp.Result.ServerInfo["name"])
}

func TestHandleMCPToolsList(t *testing.T) {
	w := post(t, newTestRouter(), "/api/mcp", `{"jsonrpc":"2.0","id":"a","method":"tools/list"}`)

	var resp struct {
		ID     string          `json:"id"`
		Result ToolsListResult `json:"result"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "a", resp.ID)
	require.Len(t, resp.Result.Tools, 1)
	assert.Equal(t, "match_resume_skills", resp.Result.Tools[0].Name)
}

func TestHandleMCPToolsCall(t *testing.T) {
	w := post(t, newTestRouter(), "/api/mcp",
		`{"jsonrpc":"2.0","id":2,"method":"tools/call","params":{"name":"match_resume_skills","arguments":{"text":"react and css"}}}`)

	var resp struct {
		Result ToolCallResult `json:"result"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Result.Content, 1)
	assert.False(t, resp.Result.IsError)
	assert.Contains(t, resp.Result.Content[0].Text, `"skills":["React","CSS"]`)
}

func TestHandleMCPErrors(t *testing.T) {
	r := newTestRouter()

	tests := []struct {
		name string
		body string
		code int
	}{
		{"parse error", `{`, -32700},
		{"unknown method", `{"jsonrpc":"2.0","id":3,"method":"resources/list"}`, -32601},
		{"bad params", `{"jsonrpc":"2.0","id":4,"method":"tools/call","params":"nope"}`, -32602},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := post(t, r, "/api/mcp", tt.body)
			var resp MCPResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.code, resp.Error.Code)
		})
	}
}

func TestHandleToolsCallDirect(t *testing.T) {
	r := newTestRouter()

	w := post(t, r, "/api/mcp/tools/call", `{"name":"missing","arguments":{}}`)
	var result ToolCallResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.True(t, result.IsError)
	assert.Contains(t, result.Content[0].Text, "tool not found")

	w = post(t, r, "/api/mcp/tools/call", `not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = post(t, r, "/api/mcp/tools/list", `{}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "match_resume_skills")
}
