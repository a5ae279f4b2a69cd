package mcp

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ziadkadry99/devlog-hub/internal/content"
)

func testFetcher(t *testing.T, upstream http.HandlerFunc) *content.Fetcher {
	t.Helper()
	ts := httptest.NewServer(upstream)
	t.Cleanup(ts.Close)
	return content.NewFetcher(content.Source{
		RawBase:   ts.URL,
		ForgeBase: ts.URL,
		Owner:     "ziadkadry99",
		Repo:      "dev-logs",
		Prefix:    "DEV LOGS - ",
	})
}

func TestToolDefinitions(t *testing.T) {
	tests := []struct {
		tool     mcp.Tool
		wantName string
	}{
		{listModulesTool, "list_modules"},
		{getModuleContentTool, "get_module_content"},
	}
	for _, tt := range tests {
		if tt.tool.Name != tt.wantName {
			t.Errorf("tool name = %q, want %q", tt.tool.Name, tt.wantName)
		}
	}
}

func TestHandleListModules(t *testing.T) {
	srv := NewServer(testFetcher(t, func(w http.ResponseWriter, r *http.Request) {}))

	result, err := srv.handleListModules(context.Background(), mcp.CallToolRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	text := extractText(result)
	for _, want := range []string{"sql", "SQL", "networking-linux", "Networking-Linux"} {
		if !strings.Contains(text, want) {
			t.Errorf("listing missing %q:\n%s", want, text)
		}
	}
}

func TestHandleGetModuleContent(t *testing.T) {
	srv := NewServer(testFetcher(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("select is not a loop"))
	}))

	req := mcp.CallToolRequest{}
	req.Params.Arguments = map[string]any{"module": "sql"}

	result, err := srv.handleGetModuleContent(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected tool error: %s", extractText(result))
	}
	text := extractText(result)
	if !strings.Contains(text, "select is not a loop") {
		t.Errorf("result missing document body:\n%s", text)
	}
	if !strings.Contains(text, "/SQL/DEV LOGS - SQL.pdf") {
		t.Errorf("result missing companion link:\n%s", text)
	}
}

func TestHandleGetModuleContentMissingParam(t *testing.T) {
	srv := NewServer(testFetcher(t, func(w http.ResponseWriter, r *http.Request) {}))

	req := mcp.CallToolRequest{}
	req.Params.Arguments = map[string]any{}

	result, err := srv.handleGetModuleContent(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsError {
		t.Error("expected tool error when module parameter is absent")
	}
}

func TestHandleGetModuleContentPlaceholder(t *testing.T) {
	srv := NewServer(testFetcher(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))

	req := mcp.CallToolRequest{}
	req.Params.Arguments = map[string]any{"module": "react"}

	result, err := srv.handleGetModuleContent(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatal("missing document must degrade to placeholder, not a tool error")
	}
	if !strings.Contains(extractText(result), content.Placeholder) {
		t.Errorf("result should carry placeholder %q", content.Placeholder)
	}
}

func TestHandleGetModuleContentTransportFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close()
	fetcher := content.NewFetcher(content.Source{
		RawBase: ts.URL, ForgeBase: ts.URL, Owner: "o", Repo: "r", Prefix: "DEV LOGS - ",
	})
	srv := NewServer(fetcher)

	req := mcp.CallToolRequest{}
	req.Params.Arguments = map[string]any{"module": "sql"}

	result, err := srv.handleGetModuleContent(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected tool error for transport failure")
	}
	if extractText(result) != content.ErrorMessage {
		t.Errorf("tool error = %q, want %q", extractText(result), content.ErrorMessage)
	}
}

// extractText gets the text content from a CallToolResult.
func extractText(result *mcp.CallToolResult) string {
	if result == nil || len(result.Content) == 0 {
		return ""
	}
	for _, c := range result.Content {
		if tc, ok := c.(mcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}
