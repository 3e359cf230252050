package core

import (
	"keyword-service/words/words"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	UnknownTitle        = "Unknown Video"
	MsgTranscriptFailed = "Failed to retrieve transcript"

	DefaultMinOccurrences = 3
	DefaultMinDocuments   = 2
)

type EventType string

const (
	EventAnalyzed     EventType = "analysis.completed"
	EventCompared     EventType = "comparison.completed"
	EventCacheDropped EventType = "cache.dropped"
)

type PingStatus string

const (
	StatusPingOK          PingStatus = "ok"
	StatusPingUnavailable PingStatus = "unavailable"
)

// Transcript is a fetched caption track of one video, segments in playback order.
type Transcript struct {
	VideoID   string
	Title     string
	Segments  []string
	FetchedAt time.Time
}

func (t Transcript) Text() string {
	return strings.Join(t.Segments, " ")
}

// Document is a labelled text ready for keyword counting.
type Document struct {
	Label string
	URL   string
	Text  string
}

type Proofread struct {
	Original        string `json:"original"`
	Corrected       string `json:"corrected"`
	CorrectionCount int    `json:"correction_count"`
}

// Report is the outcome of analyzing one document. A failed report only
// carries Message and the requested URL.
type Report struct {
	ID             string          `json:"id"`
	Success        bool            `json:"success"`
	Message        string          `json:"message,omitempty"`
	Title          string          `json:"video_title,omitempty"`
	URL            string          `json:"video_url,omitempty"`
	Transcript     *Proofread      `json:"transcript,omitempty"`
	Keywords       []words.Keyword `json:"keywords"`
	TotalWords     int             `json:"total_words"`
	MinOccurrences int             `json:"min_occurrences"`
}

// Source references one document of a comparison: a video URL or pasted text.
type Source struct {
	URL   string `json:"url,omitempty" validate:"omitempty,url,excluded_with=Text"`
	Text  string `json:"text,omitempty" validate:"required_without=URL"`
	Label string `json:"label,omitempty" validate:"max=200"`
}

type DocumentSummary struct {
	Label      string          `json:"label"`
	URL        string          `json:"url,omitempty"`
	Success    bool            `json:"success"`
	Message    string          `json:"message,omitempty"`
	TotalWords int             `json:"total_words"`
	Keywords   []words.Keyword `json:"keywords"`
}

type Comparison struct {
	ID             string            `json:"id"`
	Documents      []DocumentSummary `json:"documents"`
	Common         []words.Keyword   `json:"common"`
	MinOccurrences int               `json:"min_occurrences"`
	MinDocuments   int               `json:"min_documents"`
}

// Analyzed returns how many documents were analyzed successfully.
func (c Comparison) Analyzed() int {
	var n int
	for _, doc := range c.Documents {
		if doc.Success {
			n++
		}
	}
	return n
}

type Event struct {
	ID       string    `json:"id"`
	Type     EventType `json:"type"`
	ReportID string    `json:"report_id,omitempty"`
	Keywords int       `json:"keywords"`
	Time     time.Time `json:"time"`
}

type PingResponse struct {
	Replies map[string]PingStatus `json:"replies"`
}

type LoginRequest struct {
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AnalyzeRequest struct {
	URL            string `json:"url,omitempty" validate:"omitempty,url,excluded_with=Text"`
	Text           string `json:"text,omitempty" validate:"required_without=URL"`
	Label          string `json:"label,omitempty" validate:"max=200"`
	MinOccurrences *int   `json:"min_occurrences,omitempty" validate:"omitempty,gte=1"`
}

type CompareRequest struct {
	Sources        []Source `json:"sources" validate:"required,min=1,max=20,dive"`
	MinOccurrences *int     `json:"min_occurrences,omitempty" validate:"omitempty,gte=1"`
	MinDocuments   *int     `json:"min_documents,omitempty" validate:"omitempty,gte=1"`
}

var validate = validator.New()

func (r *LoginRequest) Validate() error {
	return validate.Struct(r)
}

// Validate checks the request and fills in default thresholds for the
// ones left out. An explicit threshold below one is rejected.
func (r *AnalyzeRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return err
	}
	if r.MinOccurrences == nil {
		r.MinOccurrences = Threshold(DefaultMinOccurrences)
	}
	return nil
}

// Validate checks the request and fills in default thresholds for the
// ones left out. An explicit threshold below one is rejected.
func (r *CompareRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return err
	}
	if r.MinOccurrences == nil {
		r.MinOccurrences = Threshold(DefaultMinOccurrences)
	}
	if r.MinDocuments == nil {
		r.MinDocuments = Threshold(DefaultMinDocuments)
	}
	return nil
}

// Threshold returns a request threshold set to n.
func Threshold(n int) *int {
	return &n
}
