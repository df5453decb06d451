package tools

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/docstrata/strata-mcp/internal/logger"
	"github.com/docstrata/strata-mcp/internal/operations"
)

const (
	defaultMaxResults    = 10
	maxMatchesPerDoc     = 5
	filenameMatchBonus   = 10
	documentContextWidth = 150
)

type SearchDocumentsQuery struct {
	Query      string `json:"query"`                 // Text to search for (case-insensitive)
	DocFilter  string `json:"doc_filter,omitempty"`  // Only search files whose name contains this text
	MaxResults int    `json:"max_results,omitempty"` // Max documents returned (default 10)
}

// DocumentSearchResult is one matching document with its relevance score.
// Relevance is the match count plus a bonus when the query appears in the
// filename itself.
type DocumentSearchResult struct {
	FilePath       string        `json:"file_path"`
	FileName       string        `json:"file_name"`
	RelevanceScore int           `json:"relevance_score"`
	TotalMatches   int           `json:"total_matches"`
	Matches        []SearchMatch `json:"matches"`
}

type SearchDocumentsResponse struct {
	Success            bool                   `json:"success"`
	Query              string                 `json:"query"`
	DocFilter          string                 `json:"doc_filter,omitempty"`
	TotalFilesSearched int                    `json:"total_files_searched"`
	FilesWithMatches   int                    `json:"files_with_matches"`
	Results            []DocumentSearchResult `json:"results"`
	Error              string                 `json:"error,omitempty"`
}

func SearchDocumentsTool() *mcp.Tool {
	inputschema, err := jsonschema.For[SearchDocumentsQuery](nil)
	if err != nil {
		panic(err)
	}
	return &mcp.Tool{
		Name:        "search_documents",
		Description: "Search the document set with relevance ranking. Results are scored by match count with a bonus when the query appears in the filename, sorted highest first, and capped at max_results. An optional doc_filter narrows the search to files whose name contains the given text.",
		InputSchema: inputschema,
	}
}

func SearchDocumentsToolHandler(ctx context.Context, req *mcp.CallToolRequest, query SearchDocumentsQuery, ops *operations.Context, log logger.Logger) (*mcp.CallToolResult, *SearchDocumentsResponse, error) {
	log.Info("search_documents tool called")

	if query.Query == "" {
		return nil, &SearchDocumentsResponse{
			Query:   query.Query,
			Results: []DocumentSearchResult{},
			Error:   "query is required",
		}, nil
	}

	maxResults := query.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	names, err := ops.ListPDFs()
	if err != nil {
		log.Error("search_documents failed: %v", err)
		return nil, &SearchDocumentsResponse{
			Query:   query.Query,
			Results: []DocumentSearchResult{},
			Error:   fmt.Sprintf("Failed to list documents: %v", err),
		}, nil
	}

	if query.DocFilter != "" {
		filter := strings.ToLower(query.DocFilter)
		filtered := names[:0]
		for _, name := range names {
			if strings.Contains(strings.ToLower(name), filter) {
				filtered = append(filtered, name)
			}
		}
		names = filtered
	}

	queryLower := strings.ToLower(query.Query)
	results := make([]DocumentSearchResult, 0, len(names))
	for _, name := range names {
		path := filepath.Join(ops.DataDir, name)
		content, err := ops.Proc.ExtractContent(path, 1, 0)
		if err != nil {
			log.Error("Error searching in %s: %v", name, err)
			continue
		}

		textLower := strings.ToLower(content.Text)

		// Context comes from the original text; positions are computed on
		// the lowered text, so fall back to it if lowering changed lengths.
		contextSrc := content.Text
		if len(textLower) != len(contextSrc) {
			contextSrc = textLower
		}

		var matches []SearchMatch
		startPos := 0
		for len(matches) < maxResults {
			pos := strings.Index(textLower[startPos:], queryLower)
			if pos == -1 {
				break
			}
			pos += startPos

			contextStart := pos - documentContextWidth
			if contextStart < 0 {
				contextStart = 0
			}
			contextEnd := pos + len(query.Query) + documentContextWidth
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
			relevance := len(matches)
			if strings.Contains(strings.ToLower(name), queryLower) {
				relevance += filenameMatchBonus
			}

			total := len(matches)
			if len(matches) > maxMatchesPerDoc {
				matches = matches[:maxMatchesPerDoc]
			}
			results = append(results, DocumentSearchResult{
				FilePath:       path,
				FileName:       name,
				RelevanceScore: relevance,
				TotalMatches:   total,
				Matches:        matches,
			})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].RelevanceScore > results[j].RelevanceScore
	})

	filesWithMatches := len(results)
	if len(results) > maxResults {
		results = results[:maxResults]
	}

	return nil, &SearchDocumentsResponse{
		Success:            true,
		Query:              query.Query,
		DocFilter:          query.DocFilter,
		TotalFilesSearched: len(names),
		FilesWithMatches:   filesWithMatches,
		Results:            results,
	}, nil
}
