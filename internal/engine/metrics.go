package engine

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metrics tracks operational counters across the engine.
var metrics struct {
	RankRequests    atomic.Int64
	AnalyzeRequests atomic.Int64
	ExtractRequests atomic.Int64
	PDFDecodes      atomic.Int64
	DocxDecodes     atomic.Int64
	DecodeErrors    atomic.Int64
	NERCalls        atomic.Int64
	NERErrors       atomic.Int64
}

// GetMetrics returns a snapshot of all metrics including cache stats.
func GetMetrics() map[string]int64 {
	hits, misses := CacheStats()
	return map[string]int64{
		"rank_requests":    metrics.RankRequests.Load(),
		"analyze_requests": metrics.AnalyzeRequests.Load(),
		"extract_requests": metrics.ExtractRequests.Load(),
		"pdf_decodes":      metrics.PDFDecodes.Load(),
		"docx_decodes":     metrics.DocxDecodes.Load(),
		"decode_errors":    metrics.DecodeErrors.Load(),
		"ner_calls":        metrics.NERCalls.Load(),
		"ner_errors":       metrics.NERErrors.Load(),
		"cache_hits":       hits,
		"cache_misses":     misses,
	}
}

// FormatMetrics returns metrics as a simple text format for the HTTP endpoint.
func FormatMetrics() string {
	m := GetMetrics()
	var sb strings.Builder
	keys := []string{
		"rank_requests", "analyze_requests", "extract_requests",
		"pdf_decodes", "docx_decodes", "decode_errors",
		"ner_calls", "ner_errors",
		"cache_hits", "cache_misses",
	}
	for _, k := range keys {
		fmt.Fprintf(&sb, "%s %d\n", k, m[k])
	}
	return sb.String()
}

// Incrementors for the tool layer.
func IncrRankRequests()    { metrics.RankRequests.Add(1) }
func IncrAnalyzeRequests() { metrics.AnalyzeRequests.Add(1) }
func IncrExtractRequests() { metrics.ExtractRequests.Add(1) }

// Incrementors for the extract/ sub-package.
func IncrPDFDecodes()   { metrics.PDFDecodes.Add(1) }
func IncrDocxDecodes()  { metrics.DocxDecodes.Add(1) }
func IncrDecodeErrors() { metrics.DecodeErrors.Add(1) }

// Incrementors for the ner/ package.
func IncrNERCalls()  { metrics.NERCalls.Add(1) }
func IncrNERErrors() { metrics.NERErrors.Add(1) }
