// Package content renders locally sourced storefront copy: the optional
// announcement notice and sanitized gateway-provided rich text.
package content

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"gopkg.in/yaml.v3"
)

var (
	md        = goldmark.New()
	sanitizer = bluemonday.UGCPolicy()
)

// Announcement is an optional storefront notice sourced from a local YAML
// file with a markdown body, shown above the product grid.
type Announcement struct {
	Title    string
	Tone     string
	Body     template.HTML
	LinkText string
	LinkURL  string
}

type announcementFile struct {
	Title    string `yaml:"title"`
	Tone     string `yaml:"tone"`
	Body     string `yaml:"body"`
	LinkText string `yaml:"link_text"`
	LinkURL  string `yaml:"link_url"`
}

// LoadAnnouncement reads the notice file. An empty path or a missing file
// yields nil without error; the announcement is strictly optional.
func LoadAnnouncement(path string) (*Announcement, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, nil
	}
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("content: read %s: %w", path, err)
	}

	var af announcementFile
	if err := yaml.Unmarshal(raw, &af); err != nil {
		return nil, fmt.Errorf("content: parse %s: %w", path, err)
	}
	if strings.TrimSpace(af.Body) == "" && strings.TrimSpace(af.Title) == "" {
		return nil, nil
	}

	var buf bytes.Buffer
	if err := md.Convert([]byte(af.Body), &buf); err != nil {
		return nil, fmt.Errorf("content: render %s: %w", path, err)
	}

	tone := strings.TrimSpace(af.Tone)
	if tone == "" {
		tone = "info"
	}
	return &Announcement{
		Title:    strings.TrimSpace(af.Title),
		Tone:     tone,
		Body:     template.HTML(sanitizer.SanitizeBytes(buf.Bytes())),
		LinkText: strings.TrimSpace(af.LinkText),
		LinkURL:  strings.TrimSpace(af.LinkURL),
	}, nil
}

// SanitizeHTML makes gateway-provided rich text (product descriptionHtml)
// safe for template injection.
func SanitizeHTML(s string) template.HTML {
	return template.HTML(sanitizer.Sanitize(s))
}
