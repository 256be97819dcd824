package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yuyalush/agent-instructions-research/database"
	"github.com/yuyalush/agent-instructions-research/dbpool"
	"github.com/yuyalush/agent-instructions-research/export"
	"github.com/yuyalush/agent-instructions-research/slides"
)

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRunDefaultOutput(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	code, stdout, stderr := runCLI(t)
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, slides.OutputFile)

	data, err := os.ReadFile(filepath.Join(dir, slides.OutputFile))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("PK")))
}

func TestRunAllDocumentExports(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	code, _, stderr := runCLI(t,
		"-out", "out/deck.pptx",
		"-outline", "out/outline.xlsx",
		"-handout", "out/handout.docx",
		"-history", "history",
		"-verify",
	)
	require.Equal(t, 0, code, stderr)

	for _, name := range []string{"out/deck.pptx", "out/outline.xlsx", "out/handout.docx"} {
		info, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err, name)
		assert.Positive(t, info.Size(), name)
	}

	db, err := database.InitDB(context.Background(), dbpool.New(nil), filepath.Join(dir, "history"))
	require.NoError(t, err)
	defer db.Close()
	runs, err := database.NewHistoryService(db).List(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, database.StatusOK, runs[0].Status)
	assert.Equal(t, slides.TotalPages, runs[0].Slides)
	assert.Equal(t, "out/deck.pptx", runs[0].Output)
}

func TestRunImagesAndPDFFromConfig(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	cfg := `{"images_dir": "slides", "pdf": "handout.pdf", "image_width": 320}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "deckgen.json"), []byte(cfg), 0644))

	code, _, stderr := runCLI(t, "-out", "deck.pptx")
	require.Equal(t, 0, code, stderr)

	for i := 1; i <= slides.TotalPages; i++ {
		assert.FileExists(t, filepath.Join(dir, "slides", export.SlideImageName(i)))
	}
	pdf, err := os.ReadFile(filepath.Join(dir, "handout.pdf"))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))
}

func TestRunWriteFailureExitsNonZero(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	// the output path is an existing directory
	require.NoError(t, os.Mkdir(filepath.Join(dir, "deck.pptx"), 0755))

	code, _, stderr := runCLI(t, "-out", "deck.pptx", "-history", "history")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "[Deck.Write]")

	db, err := database.InitDB(context.Background(), dbpool.New(nil), filepath.Join(dir, "history"))
	require.NoError(t, err)
	defer db.Close()
	runs, err := database.NewHistoryService(db).List(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, database.StatusFailed, runs[0].Status)
	assert.Zero(t, runs[0].Bytes)
}

func TestRunMissingConfigFile(t *testing.T) {
	t.Chdir(t.TempDir())
	code, _, stderr := runCLI(t, "-config", "missing.json")
	assert.Equal(t, 1, code)
	assert.NotEmpty(t, stderr)
}

func TestRunBadFlag(t *testing.T) {
	code, _, stderr := runCLI(t, "-nope")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "flag provided but not defined")
}

func TestRunCancelled(t *testing.T) {
	t.Chdir(t.TempDir())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var stdout, stderr bytes.Buffer
	code := run(ctx, []string{"-out", "deck.pptx", "-history", "history"}, &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.NoFileExists(t, "deck.pptx")

	// the history write outlives the cancelled build
	db, err := database.OpenHistory(context.Background(), dbpool.New(nil), "history")
	require.NoError(t, err)
	defer db.Close()
	runs, err := database.NewHistoryService(db).List(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, database.StatusFailed, runs[0].Status)
	assert.Contains(t, runs[0].Error, context.Canceled.Error())
}

func TestRunListHistory(t *testing.T) {
	t.Chdir(t.TempDir())

	for i := 0; i < 2; i++ {
		code, _, stderr := runCLI(t, "-out", "deck.pptx", "-history", "history")
		require.Equal(t, 0, code, stderr)
	}

	code, stdout, stderr := runCLI(t, "-history", "history", "-list-history", "1")
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, 1, strings.Count(stdout, "deck.pptx"))
	assert.Contains(t, stdout, fmt.Sprintf("%d slides", slides.TotalPages))
	assert.Contains(t, stdout, database.StatusOK)
}

func TestRunListHistoryWithoutDatabase(t *testing.T) {
	t.Chdir(t.TempDir())

	code, _, stderr := runCLI(t, "-list-history", "5")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, ErrNoHistoryDir.Error())

	code, _, stderr = runCLI(t, "-history", "empty", "-list-history", "5")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "[History.List]")
	assert.NoDirExists(t, "empty", "listing must not create the history directory")
}

func TestRunWritesLogFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("DECKGEN_LOG_DIR", "logs")
	t.Setenv("DECKGEN_LANGUAGE", "日本語")

	code, stdout, stderr := runCLI(t, "-out", "deck.pptx")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "作成完了")

	matches, err := filepath.Glob(filepath.Join(dir, "logs", "deckgen_*.log"))
	require.NoError(t, err)
	require.Len(t, matches, 1)
	data, err := os.ReadFile(matches[0])
	require.NoError(t, err)
	assert.Contains(t, string(data), "作成完了: deck.pptx")
}

func TestStyledWriterKeepsLines(t *testing.T) {
	var buf bytes.Buffer
	w := styledWriter{w: &buf, style: okStyle}
	n, err := w.Write([]byte("one\ntwo\n"))
	require.NoError(t, err)
	assert.Equal(t, 8, n)
	assert.Contains(t, buf.String(), "one")
	assert.Contains(t, buf.String(), "two")
	assert.Equal(t, 2, bytes.Count(buf.Bytes(), []byte("\n")))
}
