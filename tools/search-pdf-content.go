package tools

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/docstrata/strata-mcp/internal/logger"
	"github.com/docstrata/strata-mcp/internal/operations"
)

// maxMatchesPerFile bounds the matches reported per file; the total match
// count is still reported in full.
const maxMatchesPerFile = 10

type SearchPDFContentQuery struct {
	Query         string `json:"query"`                    // Text to search for
	FilePath      string `json:"file_path,omitempty"`      // Search one PDF instead of every PDF in the data directory
	CaseSensitive bool   `json:"case_sensitive,omitempty"` // Match case exactly (default false)
}

// FileSearchResult reports every hit inside one file.
type FileSearchResult struct {
	FilePath     string        `json:"file_path"`
	FileName     string        `json:"file_name"`
	TotalMatches int           `json:"total_matches"`
	Matches      []SearchMatch `json:"matches"`
}

type SearchPDFContentResponse struct {
	Success            bool               `json:"success"`
	Query              string             `json:"query"`
	CaseSensitive      bool               `json:"case_sensitive"`
	TotalFilesSearched int                `json:"total_files_searched"`
	FilesWithMatches   int                `json:"files_with_matches"`
	Results            []FileSearchResult `json:"results"`
	Error              string             `json:"error,omitempty"`
}

func SearchPDFContentTool() *mcp.Tool {
	inputschema, err := jsonschema.For[SearchPDFContentQuery](nil)
	if err != nil {
		panic(err)
	}
	return &mcp.Tool{
		Name:        "search_pdf_content",
		Description: "Search for text across one PDF or every PDF in the data directory. Each hit reports its character position, surrounding context, and an estimated page number. Files that cannot be read are skipped so one bad document never sinks the search.",
		InputSchema: inputschema,
	}
}

func SearchPDFContentToolHandler(ctx context.Context, req *mcp.CallToolRequest, query SearchPDFContentQuery, ops *operations.Context, log logger.Logger) (*mcp.CallToolResult, *SearchPDFContentResponse, error) {
	log.Info("search_pdf_content tool called")

	if query.Query == "" {
		return nil, &SearchPDFContentResponse{
			Query:   query.Query,
			Results: []FileSearchResult{},
			Error:   "query is required",
		}, nil
	}

	var paths []string
	if query.FilePath != "" {
		resolved, err := ops.ResolveExisting(query.FilePath)
		if err != nil {
			return nil, &SearchPDFContentResponse{
				Query:   query.Query,
				Results: []FileSearchResult{},
				Error:   fmt.Sprintf("File not found: %s", query.FilePath),
			}, nil
		}
		paths = []string{resolved}
	} else {
		names, err := ops.ListPDFs()
		if err != nil {
			log.Error("search_pdf_content failed: %v", err)
			return nil, &SearchPDFContentResponse{
				Query:   query.Query,
				Results: []FileSearchResult{},
				Error:   fmt.Sprintf("Failed to list documents: %v", err),
			}, nil
		}
		for _, name := range names {
			paths = append(paths, filepath.Join(ops.DataDir, name))
		}
	}

	results := make([]FileSearchResult, 0, len(paths))
	for _, path := range paths {
		content, err := ops.Proc.ExtractContent(path, 1, 0)
		if err != nil {
			log.Error("Error searching in %s: %v", path, err)
			continue
		}

		searchText := content.Text
		searchQuery := query.Query
		if !query.CaseSensitive {
			searchText = strings.ToLower(searchText)
			searchQuery = strings.ToLower(searchQuery)
		}

		// Context comes from the original text; positions are computed on
		// the lowered text, so fall back to it if lowering changed lengths.
		contextSrc := content.Text
		if len(searchText) != len(contextSrc) {
			contextSrc = searchText
		}

		var matches []SearchMatch
		startPos := 0
		for {
			pos := strings.Index(searchText[startPos:], searchQuery)
			if pos == -1 {
				break
			}
			pos += startPos

			contextStart := pos - 100
			if contextStart < 0 {
				contextStart = 0
			}
			contextEnd := pos + len(searchQuery) + 100
			if contextEnd > len(contextSrc) {
				contextEnd = len(contextSrc)
			}

			matches = append(matches, SearchMatch{
				Position:     pos,
				Context:      contextSrc[contextStart:contextEnd],
				PageEstimate: pageEstimate(pos, content.Pages, content.Metadata.PageCount),
			})

			startPos = pos + 1
		}

		if len(matches) > 0 {
			total := len(matches)
			if len(matches) > maxMatchesPerFile {
				matches = matches[:maxMatchesPerFile]
			}
			results = append(results, FileSearchResult{
				FilePath:     path,
				FileName:     filepath.Base(path),
				TotalMatches: total,
				Matches:      matches,
			})
		}
	}

	return nil, &SearchPDFContentResponse{
		Success:            true,
		Query:              query.Query,
		CaseSensitive:      query.CaseSensitive,
		TotalFilesSearched: len(paths),
		FilesWithMatches:   len(results),
		Results:            results,
	}, nil
}
