package youtube

import (
	"bytes"
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"html"
	"io"
	"keyword-service/analyzer/core"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	watchEndpoint  = "watch"
	oembedEndpoint = "oembed"
	captionsMarker = `"captionTracks":`
	maxBodySize    = 10 << 20
)

type Client struct {
	log      *slog.Logger
	client   http.Client
	url      string
	language string
}

func NewClient(url, language string, timeout time.Duration, log *slog.Logger) (*Client, error) {
	if url == "" {
		return nil, fmt.Errorf("empty base url specified")
	}
	if language == "" {
		language = "en"
	}
	return &Client{
		client:   http.Client{Timeout: timeout},
		log:      log,
		url:      url,
		language: language,
	}, nil
}

type oembedReply struct {
	Title string `json:"title"`
}

type captionTrack struct {
	BaseURL      string `json:"baseUrl"`
	LanguageCode string `json:"languageCode"`
	Kind         string `json:"kind"`
}

type timedText struct {
	Texts []string `xml:"text"`
}

func (c *Client) Title(ctx context.Context, videoID string) (string, error) {
	endpoint, err := url.JoinPath(c.url, oembedEndpoint)
	if err != nil {
		return "", fmt.Errorf("cannot join url path: %w", err)
	}
	query := url.Values{}
	query.Set("url", core.WatchURL(videoID))
	query.Set("format", "json")

	body, err := c.get(ctx, endpoint+"?"+query.Encode())
	if err != nil {
		return "", fmt.Errorf("cannot get title of video %s: %w", videoID, err)
	}

	var reply oembedReply
	if err := json.Unmarshal(body, &reply); err != nil {
		return "", fmt.Errorf("cannot decode reply: %w", err)
	}
	return reply.Title, nil
}

// Transcript returns the caption segments of a video in playback order.
// Tracks in the configured language are preferred over the others.
func (c *Client) Transcript(ctx context.Context, videoID string) ([]string, error) {
	page, err := c.get(ctx, c.watchURL(videoID))
	if err != nil {
		return nil, fmt.Errorf("cannot get watch page of video %s: %w", videoID, err)
	}
	tracks, err := parseCaptionTracks(page)
	if err != nil {
		return nil, fmt.Errorf("video %s: %w", videoID, err)
	}
	track := c.pickTrack(tracks)
	c.log.Debug("caption track selected",
		"video_id", videoID, "language", track.LanguageCode, "kind", track.Kind)

	body, err := c.get(ctx, track.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("cannot get captions of video %s: %w", videoID, err)
	}
	var captions timedText
	if err := xml.Unmarshal(body, &captions); err != nil {
		return nil, fmt.Errorf("cannot decode captions: %w", err)
	}

	segments := make([]string, 0, len(captions.Texts))
	for _, text := range captions.Texts {
		text = strings.TrimSpace(html.UnescapeString(text))
		if text != "" {
			segments = append(segments, text)
		}
	}
	if len(segments) == 0 {
		return nil, fmt.Errorf("video %s has empty captions: %w", videoID, core.ErrNotFound)
	}
	return segments, nil
}

func (c *Client) watchURL(videoID string) string {
	endpoint, err := url.JoinPath(c.url, watchEndpoint)
	if err != nil {
		return core.WatchURL(videoID)
	}
	return endpoint + "?v=" + url.QueryEscape(videoID)
}

func (c *Client) pickTrack(tracks []captionTrack) captionTrack {
	for _, track := range tracks {
		if track.LanguageCode == c.language {
			return track
		}
	}
	for _, track := range tracks {
		if strings.HasPrefix(track.LanguageCode, c.language+"-") {
			return track
		}
	}
	return tracks[0]
}

// parseCaptionTracks extracts the caption track list embedded in a watch page.
func parseCaptionTracks(page []byte) ([]captionTrack, error) {
	i := bytes.Index(page, []byte(captionsMarker))
	if i < 0 {
		return nil, fmt.Errorf("no captions: %w", core.ErrNotFound)
	}
	var tracks []captionTrack
	decoder := json.NewDecoder(bytes.NewReader(page[i+len(captionsMarker):]))
	if err := decoder.Decode(&tracks); err != nil {
		return nil, fmt.Errorf("cannot decode caption tracks: %w", err)
	}
	valid := tracks[:0]
	for _, track := range tracks {
		if track.BaseURL != "" {
			valid = append(valid, track)
		}
	}
	if len(valid) == 0 {
		return nil, fmt.Errorf("no caption tracks: %w", core.ErrNotFound)
	}
	return valid, nil
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("cannot create request: %w", err)
	}
	req.Header.Set("Accept-Language", c.language)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cannot get response: %w", err)
	}
	defer c.closeBody(resp.Body)

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound, http.StatusUnauthorized, http.StatusForbidden:
		return nil, core.ErrNotFound
	default:
		return nil, fmt.Errorf("unexpected status code %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("cannot read reply: %w", err)
	}
	return body, nil
}

func (c *Client) closeBody(body io.Closer) {
	if err := body.Close(); err != nil {
		c.log.Warn("failed to close response body", "error", err)
	}
}
