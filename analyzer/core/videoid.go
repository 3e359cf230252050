package core

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

var videoIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// ExtractVideoID returns the video id referenced by a YouTube URL.
// Supported forms are youtu.be/<id> and youtube.com /watch?v=<id>,
// /embed/<id>, /v/<id> and /shorts/<id>, with or without the www or m host.
func ExtractVideoID(rawURL string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return "", fmt.Errorf("%w: cannot parse url %q: %v", ErrBadArguments, rawURL, err)
	}

	var id string
	switch strings.ToLower(u.Hostname()) {
	case "youtu.be", "www.youtu.be":
		id = pathSegment(u.Path, 1)
	case "youtube.com", "www.youtube.com", "m.youtube.com":
		switch {
		case strings.TrimSuffix(u.Path, "/") == "/watch":
			id = u.Query().Get("v")
		case strings.HasPrefix(u.Path, "/embed/"),
			strings.HasPrefix(u.Path, "/v/"),
			strings.HasPrefix(u.Path, "/shorts/"):
			id = pathSegment(u.Path, 2)
		}
	}

	if !videoIDPattern.MatchString(id) {
		return "", fmt.Errorf("%w: cannot extract video id from url %q", ErrBadArguments, rawURL)
	}
	return id, nil
}

func pathSegment(path string, i int) string {
	segments := strings.Split(path, "/")
	if i >= len(segments) {
		return ""
	}
	return segments[i]
}

// WatchURL returns the canonical watch page of a video.
func WatchURL(videoID string) string {
	return "https://www.youtube.com/watch?v=" + url.QueryEscape(videoID)
}
