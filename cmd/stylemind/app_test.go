package main

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/openny/stylemind/internal/config"
	"github.com/openny/stylemind/internal/crawling"
	"github.com/openny/stylemind/internal/types"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCommand() *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().StringVar(&rootRenderer, "renderer", "", "")
	return cmd
}

func TestResolveConfig_Defaults(t *testing.T) {
	resetRootFlags(t)
	t.Setenv("GEMINI_API_KEY", "env-key")

	cfg, err := resolveConfig(testCommand())
	require.NoError(t, err)
	assert.Equal(t, config.RendererBrowser, cfg.Renderer)
	assert.Equal(t, 30, cfg.NavigationTimeoutSeconds)
	assert.Equal(t, "env-key", cfg.APIKey)
}

func TestResolveConfig_FileThenFlags(t *testing.T) {
	resetRootFlags(t)
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"renderer": "http", "max_concurrency": 4, "api_key": "file-key"}`), 0o644))
	t.Setenv("GEMINI_API_KEY", "env-key")

	rootConfigPath = path
	cmd := testCommand()
	cfg, err := resolveConfig(cmd)
	require.NoError(t, err)
	assert.Equal(t, config.RendererHTTP, cfg.Renderer)
	assert.Equal(t, 4, cfg.MaxConcurrency)
	assert.Equal(t, "file-key", cfg.APIKey)

	require.NoError(t, cmd.Flags().Set("renderer", "browser"))
	rootVerbose = true
	cfg, err = resolveConfig(cmd)
	require.NoError(t, err)
	assert.Equal(t, config.RendererBrowser, cfg.Renderer)
	assert.True(t, cfg.Verbose)
}

func TestResolveConfig_InvalidRenderer(t *testing.T) {
	resetRootFlags(t)
	cmd := testCommand()
	require.NoError(t, cmd.Flags().Set("renderer", "lynx"))

	_, err := resolveConfig(cmd)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "renderer")
}

func TestAnalyzeText(t *testing.T) {
	profile, err := analyzeText("오늘 날씨가 좋네요. 정말 즐거운 하루였어요.")
	require.NoError(t, err)
	assert.Equal(t, 12.0, profile.AverageSentenceLength)
	assert.True(t, profile.IsPolite)
	assert.NotEmpty(t, profile.StyleDirective)
}

func TestAnalyzeText_Empty(t *testing.T) {
	_, err := analyzeText("  \n ")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no analyzable text")
}

func TestWriteCorpus(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	corpus := crawling.NewCoordinator(staticExtractor{
		"https://blog.naver.com/a/1": "첫 글이에요.",
	}, 0, nil).BuildCorpus(t.Context(), []string{"https://blog.naver.com/a/1", "https://x.tistory.com/2"})

	corpusPath, sourcesPath, err := writeCorpus(dir, corpus)
	require.NoError(t, err)

	text, err := os.ReadFile(corpusPath)
	require.NoError(t, err)
	assert.Equal(t, "첫 글이에요.", string(text))

	data, err := os.ReadFile(sourcesPath)
	require.NoError(t, err)
	var got corpusSources
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, corpus.ID, got.ID)
	assert.Equal(t, 1, got.SuccessCount)
	require.Len(t, got.Sources, 2)
	assert.False(t, got.Sources[1].Success)
}

func TestLoadStyleProfile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profile.json")
	want := &types.StyleProfile{
		AverageSentenceLength: 21.5,
		TopEndings:            []string{"다"},
		StyleDirective:        "[작성 가이드]",
		SentenceCount:         4,
	}
	require.NoError(t, writeJSON(path, want))

	got, err := loadStyleProfile(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"top_endings": "다"}`), 0o644))
	_, err = loadStyleProfile(bad)
	assert.ErrorContains(t, err, "invalid style profile")
}

// staticExtractor serves canned text per URL.
type staticExtractor map[string]string

func (s staticExtractor) Extract(_ context.Context, url string) string { return s[url] }
