package core

import (
	analyzer "keyword-service/analyzer/core"
	"keyword-service/words/words"
)

type ContextKey string

const JwtTokenContextKey ContextKey = "jwt_token"

// Wire types of the analyzer API.
type (
	Keyword         = words.Keyword
	Report          = analyzer.Report
	Proofread       = analyzer.Proofread
	Comparison      = analyzer.Comparison
	DocumentSummary = analyzer.DocumentSummary
	Source          = analyzer.Source
	AnalyzeRequest  = analyzer.AnalyzeRequest
	CompareRequest  = analyzer.CompareRequest
	PingResponse    = analyzer.PingResponse
	PingStatus      = analyzer.PingStatus
)

const (
	DefaultMinOccurrences = analyzer.DefaultMinOccurrences
	DefaultMinDocuments   = analyzer.DefaultMinDocuments

	// Bounds of the minimum occurrences slider.
	SliderMin = 2
	SliderMax = 10
)

var Threshold = analyzer.Threshold
