package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAnnouncementMissingFileIsNotAnError(t *testing.T) {
	a, err := LoadAnnouncement("")
	require.NoError(t, err)
	assert.Nil(t, a)

	a, err = LoadAnnouncement(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Nil(t, a)
}

func TestLoadAnnouncementRendersMarkdown(t *testing.T) {
	path := filepath.Join(t.TempDir(), "announcement.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
title: Summer sale
tone: promo
body: "Save **20%** on everything."
link_text: Shop the sale
link_url: /shop/collections/summer-sale
`), 0o644))

	a, err := LoadAnnouncement(path)
	require.NoError(t, err)
	require.NotNil(t, a)
	assert.Equal(t, "Summer sale", a.Title)
	assert.Equal(t, "promo", a.Tone)
	assert.Contains(t, string(a.Body), "<strong>20%</strong>")
	assert.Equal(t, "Shop the sale", a.LinkText)
	assert.Equal(t, "/shop/collections/summer-sale", a.LinkURL)
}

func TestLoadAnnouncementStripsScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "announcement.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
body: "Hello <script>alert(1)</script> world"
`), 0o644))

	a, err := LoadAnnouncement(path)
	require.NoError(t, err)
	require.NotNil(t, a)
	assert.NotContains(t, string(a.Body), "<script>")
	assert.Contains(t, string(a.Body), "Hello")
}

func TestSanitizeHTML(t *testing.T) {
	got := SanitizeHTML(`<p>Solid oak.</p><script>alert(1)</script><img src=x onerror=alert(1)>`)
	assert.Contains(t, string(got), "<p>Solid oak.</p>")
	assert.NotContains(t, string(got), "script")
	assert.NotContains(t, string(got), "onerror")
}
