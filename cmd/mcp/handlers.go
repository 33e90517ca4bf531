package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/regtechlab/adgm-corporate-agent/internal/core/analysis"
	"github.com/regtechlab/adgm-corporate-agent/internal/core/domain"
	"github.com/regtechlab/adgm-corporate-agent/internal/core/usecase"
)

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(text),
		},
	}
}

func handleClassifyDocument(classifier *analysis.Classifier, catalog *analysis.Catalog) server.ToolHandlerFunc {
	return func(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		text, err := request.RequireString("text")
		if err != nil || strings.TrimSpace(text) == "" {
			return textResult("Error: text parameter is required"), nil
		}

		docType := classifier.Classify(text)
		if docType == domain.TypeUnknown {
			return textResult("No known ADGM document category matched this text."), nil
		}
		return textResult(fmt.Sprintf("Document type: %s (%s)", catalog.DisplayName(docType), docType)), nil
	}
}

func handleScanRedFlags(scanner *analysis.Scanner) server.ToolHandlerFunc {
	return func(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		text, err := request.RequireString("text")
		if err != nil || strings.TrimSpace(text) == "" {
			return textResult("Error: text parameter is required"), nil
		}

		flags := scanner.Scan(text)
		if len(flags) == 0 {
			return textResult("No red flags found."), nil
		}

		var b strings.Builder
		fmt.Fprintf(&b, "Found %d red flag(s):\n\n", len(flags))
		for _, flag := range flags {
			fmt.Fprintf(&b, "- [%s] %s: %s\n", flag.Severity, flag.Category, flag.Message)
			if flag.Suggestion != "" {
				fmt.Fprintf(&b, "  Suggestion: %s\n", flag.Suggestion)
			}
		}
		return textResult(b.String()), nil
	}
}

func handleCheckCompleteness(evaluator *analysis.Evaluator, catalog *analysis.Catalog) server.ToolHandlerFunc {
	return func(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		typeIDs := request.GetStringSlice("document_types", nil)
		if typeIDs == nil {
			return textResult("Error: document_types parameter is required"), nil
		}

		observed := make([]domain.DocumentType, 0, len(typeIDs))
		for _, id := range typeIDs {
			observed = append(observed, domain.DocumentType(id))
		}

		eval := evaluator.Evaluate(observed)

		var b strings.Builder
		fmt.Fprintf(&b, "Process: %s\n", eval.Process.Name)
		fmt.Fprintf(&b, "Completion: %.1f%% (%d of %d required documents)\n",
			eval.CompletionPct, len(eval.Present), len(eval.Process.Required))
		if len(eval.Missing) > 0 {
			b.WriteString("Missing:\n")
			for _, id := range eval.Missing {
				fmt.Fprintf(&b, "- %s\n", catalog.DisplayName(id))
			}
		}
		return textResult(b.String()), nil
	}
}

func handleAskADGM(askUC *usecase.AskUseCase) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		question, err := request.RequireString("question")
		if err != nil || strings.TrimSpace(question) == "" {
			return textResult("Error: question parameter is required"), nil
		}

		answer, err := askUC.Ask(ctx, question)
		if err != nil {
			return textResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return textResult(answer.Text), nil
	}
}
