package cache_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/az-ai-labs/timenlp/cache"
	"github.com/az-ai-labs/timenlp/grammar"
)

func TestLoad_NoCacheDirSkipsArtifact(t *testing.T) {
	g, err := cache.Load(grammar.Chinese, "", false)
	require.NoError(t, err)
	require.NotNil(t, g)
}

func TestLoad_WritesArtifactOnFirstLoad(t *testing.T) {
	dir := t.TempDir()
	_, err := cache.Load(grammar.English, dir, false)
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "grammar_en.cache", entries[0].Name())
}

func TestLoad_ReusesArtifactWhenHashMatches(t *testing.T) {
	dir := t.TempDir()
	_, err := cache.Load(grammar.Chinese, dir, false)
	require.NoError(t, err)

	path := filepath.Join(dir, "grammar_zh.cache")
	before, err := os.Stat(path)
	require.NoError(t, err)

	_, err = cache.Load(grammar.Chinese, dir, false)
	require.NoError(t, err)

	after, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, before.ModTime(), after.ModTime())
}

func TestLoad_OverwriteForcesRewrite(t *testing.T) {
	dir := t.TempDir()
	_, err := cache.Load(grammar.Chinese, dir, false)
	require.NoError(t, err)

	_, err = cache.Load(grammar.Chinese, dir, true)
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestContentHash_StableAcrossCalls(t *testing.T) {
	g := grammar.Build(grammar.Chinese)
	require.Equal(t, cache.ContentHash(g), cache.ContentHash(g))
}
