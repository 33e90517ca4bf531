package main

import (
	"github.com/mark3labs/mcp-go/mcp"
)

func createClassifyDocumentTool() mcp.Tool {
	return mcp.NewTool("classify_document",
		mcp.WithDescription("Classify extracted document text into an ADGM document category"),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("Plain text of the document to classify"),
		),
	)
}

func createScanRedFlagsTool() mcp.Tool {
	return mcp.NewTool("scan_red_flags",
		mcp.WithDescription("Scan document text for ADGM compliance red flags"),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("Plain text of the document to scan"),
		),
	)
}

func createCheckCompletenessTool() mcp.Tool {
	return mcp.NewTool("check_completeness",
		mcp.WithDescription("Check a set of document types against the matching ADGM process checklist"),
		mcp.WithArray("document_types",
			mcp.Required(),
			mcp.WithStringItems(),
			mcp.Description("Document type ids already identified in the batch, e.g. articles_of_association"),
		),
	)
}

func createAskADGMTool() mcp.Tool {
	return mcp.NewTool("ask_adgm",
		mcp.WithDescription("Answer a question about ADGM incorporation and compliance requirements"),
		mcp.WithString("question",
			mcp.Required(),
			mcp.Description("Question about ADGM rules or procedures"),
		),
	)
}
