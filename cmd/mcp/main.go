package main

import (
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/regtechlab/adgm-corporate-agent/internal/config"
	"github.com/regtechlab/adgm-corporate-agent/internal/core/analysis"
	"github.com/regtechlab/adgm-corporate-agent/internal/core/usecase"
	"github.com/regtechlab/adgm-corporate-agent/internal/infrastructure/catalog"
)

// The MCP server exposes the rule-based analysis core over stdio so agent
// clients can classify text, scan for red flags and query ADGM guidance
// without going through the HTTP API. It needs no database or queue: the
// whole core runs off the embedded catalog.
func main() {
	cfg := config.Load()

	ruleCatalog, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load rule catalog: %v\n", err)
		os.Exit(1)
	}

	classifier := analysis.NewClassifier(ruleCatalog)
	scanner, err := analysis.NewScanner(ruleCatalog)
	if err != nil {
		fmt.Fprintf(os.Stderr, "compile red-flag rules: %v\n", err)
		os.Exit(1)
	}
	evaluator := analysis.NewEvaluator(ruleCatalog)
	askUC := usecase.NewAskUseCase(ruleCatalog.Knowledge)

	mcpServer := server.NewMCPServer(
		"adgm-corporate-agent",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(createClassifyDocumentTool(), handleClassifyDocument(classifier, ruleCatalog))
	mcpServer.AddTool(createScanRedFlagsTool(), handleScanRedFlags(scanner))
	mcpServer.AddTool(createCheckCompletenessTool(), handleCheckCompleteness(evaluator, ruleCatalog))
	mcpServer.AddTool(createAskADGMTool(), handleAskADGM(askUC))

	if err := server.ServeStdio(mcpServer); err != nil {
		fmt.Fprintf(os.Stderr, "mcp server: %v\n", err)
		os.Exit(1)
	}
}
