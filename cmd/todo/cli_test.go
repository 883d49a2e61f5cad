package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/todo"
)

// syncBuffer is a bytes.Buffer safe for one writer and one reader.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// setupEnv points the data and config directories at a temp dir and returns
// the notes directory.
func setupEnv(t *testing.T) string {
	t.Helper()
	base := t.TempDir()
	t.Setenv("XDG_DATA_HOME", filepath.Join(base, "data"))
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(base, "config"))
	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", "")
	return filepath.Join(base, "data", "todo")
}

func resetFlags() {
	verbose = false
	notebook = ""
	noteFile = ""
	noteDir = ""
	configPath = ""
	strictDelete = false
	editor = nil
}

func executeCtx(ctx context.Context, stdout, stderr *syncBuffer, args ...string) int {
	resetFlags()
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetArgs(args)
	return run(ctx)
}

func execute(t *testing.T, args ...string) (string, string, int) {
	t.Helper()
	var stdout, stderr syncBuffer
	code := executeCtx(context.Background(), &stdout, &stderr, args...)
	return stdout.String(), stderr.String(), code
}

func readNote(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestScenario(t *testing.T) {
	dir := setupEnv(t)
	path := filepath.Join(dir, "default")

	out, _, code := execute(t)
	assert.Equal(t, ExitSuccess, code)
	assert.Equal(t, "you don't have any notes\n", out)

	out, _, code = execute(t, "i", "buy milk")
	assert.Equal(t, ExitSuccess, code)
	assert.Equal(t, "1: buy milk\n", out)

	out, _, code = execute(t, "i", "call mom", "1")
	assert.Equal(t, ExitSuccess, code)
	assert.Equal(t, "1: call mom\n2: buy milk\n", out)

	out, _, code = execute(t, "c", "call dad", "1")
	assert.Equal(t, ExitSuccess, code)
	assert.Equal(t, "1: call dad\n2: buy milk\n", out)
	assert.Equal(t, "call dad\nbuy milk\n", readNote(t, path))

	out, _, code = execute(t, "d", "2")
	assert.Equal(t, ExitSuccess, code)
	assert.Equal(t, "1: call dad\n", out)

	out, _, code = execute(t, "d")
	assert.Equal(t, ExitSuccess, code)
	assert.Equal(t, "you don't have any notes\n", out)
	assert.Equal(t, "", readNote(t, path))
}

func TestErrors(t *testing.T) {
	dir := setupEnv(t)
	path := filepath.Join(dir, "default")

	_, stderr, code := execute(t, "i")
	assert.Equal(t, ExitUsage, code)
	assert.Contains(t, stderr, "you didn't provide a value")

	_, _, code = execute(t, "c", "x")
	assert.Equal(t, ExitDataError, code)

	_, _, code = execute(t, "d")
	assert.Equal(t, ExitDataError, code)

	_, _, code = execute(t, "i", "a")
	require.Equal(t, ExitSuccess, code)
	_, _, code = execute(t, "i", "b")
	require.Equal(t, ExitSuccess, code)

	_, stderr, code = execute(t, "i", "x", "5")
	assert.Equal(t, ExitUsage, code)
	assert.Contains(t, stderr, "invalid index: 5")
	assert.Equal(t, "a\nb\n", readNote(t, path))

	_, stderr, code = execute(t, "c", "x", "two")
	assert.Equal(t, ExitUsage, code)
	assert.Contains(t, stderr, "'two' is not a valid index")

	_, _, code = execute(t, "-n", "my.notes", "i", "x")
	assert.Equal(t, ExitUsage, code)

	_, _, code = execute(t, "-n", "absent", "D")
	assert.Equal(t, ExitDataError, code)

	_, _, code = execute(t, "bogus")
	assert.NotEqual(t, ExitSuccess, code)
}

func TestDeleteMany(t *testing.T) {
	dir := setupEnv(t)

	for _, v := range []string{"a", "b", "c", "d"} {
		_, _, code := execute(t, "-n", "work", "i", v)
		require.Equal(t, ExitSuccess, code)
	}

	out, stderr, code := execute(t, "-n", "work", "d", "4", "2", "9", "2")
	assert.Equal(t, ExitSuccess, code)
	assert.Equal(t, "1: a\n2: c\n", out)
	assert.Contains(t, stderr, "index 9 is out of range, skipped")
	assert.Equal(t, "a\nc\n", readNote(t, filepath.Join(dir, "work")))

	_, stderr, code = execute(t, "-n", "work", "d", "--strict", "1", "9")
	assert.Equal(t, ExitUsage, code)
	assert.Contains(t, stderr, "invalid index: 9")
	assert.Equal(t, "a\nc\n", readNote(t, filepath.Join(dir, "work")))
}

func TestNotebooksAndList(t *testing.T) {
	dir := setupEnv(t)

	for _, name := range []string{"home", "work", "workout"} {
		_, _, code := execute(t, "-n", name, "i", "x")
		require.Equal(t, ExitSuccess, code)
	}

	out, _, code := execute(t, "l")
	assert.Equal(t, ExitSuccess, code)
	assert.Equal(t, "1: home\n2: work\n3: workout\n", out)

	out, _, code = execute(t, "l", "work*")
	assert.Equal(t, ExitSuccess, code)
	assert.Equal(t, "1: work\n2: workout\n", out)

	_, _, code = execute(t, "-n", "home", "D")
	assert.Equal(t, ExitSuccess, code)
	assert.NoFileExists(t, filepath.Join(dir, "home"))
}

func TestFileAndConfig(t *testing.T) {
	setupEnv(t)
	base := t.TempDir()
	file := filepath.Join(base, ".todo")

	_, _, code := execute(t, "--file", file, "i", "pinned")
	require.Equal(t, ExitSuccess, code)
	assert.Equal(t, "pinned\n", readNote(t, file))

	notesDir := filepath.Join(base, "notes")
	cfg := filepath.Join(base, "config.yml")
	require.NoError(t, os.WriteFile(cfg, []byte("dir: "+notesDir+"\nnotebook: inbox\nstrict_delete: true\n"), 0644))

	_, _, code = execute(t, "--config", cfg, "i", "from config")
	require.Equal(t, ExitSuccess, code)
	assert.Equal(t, "from config\n", readNote(t, filepath.Join(notesDir, "inbox")))

	_, _, code = execute(t, "--config", cfg, "d", "1", "5")
	assert.Equal(t, ExitUsage, code)
}

func TestHelpAndVersion(t *testing.T) {
	dir := setupEnv(t)

	out, stderr, code := execute(t, "h")
	assert.Equal(t, ExitSuccess, code)
	assert.Empty(t, out)
	assert.Contains(t, stderr, "i <value> [index]")
	assert.NoDirExists(t, dir)

	out, _, code = execute(t, "version")
	assert.Equal(t, ExitSuccess, code)
	assert.Equal(t, "todo version "+strings.TrimSpace(todo.Version)+"\n", out)
}

func TestEdit(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts not supported")
	}
	dir := setupEnv(t)

	script := filepath.Join(t.TempDir(), "fake-editor")
	require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\necho \"edited\" >> \"$1\"\n"), 0755))
	t.Setenv("VISUAL", script)

	_, _, code := execute(t, "-n", "work", "e")
	assert.Equal(t, ExitSuccess, code)
	assert.Equal(t, "edited\n", readNote(t, filepath.Join(dir, "work")))

	t.Setenv("VISUAL", filepath.Join(t.TempDir(), "missing-editor"))
	_, stderr, code := execute(t, "e")
	assert.Equal(t, ExitIOError, code)
	assert.Contains(t, stderr, "failed to open editor")
}

func TestWatch(t *testing.T) {
	dir := setupEnv(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var stdout, stderr syncBuffer
	done := make(chan int, 1)
	go func() {
		done <- executeCtx(ctx, &stdout, &stderr, "w")
	}()

	require.Eventually(t, func() bool {
		return strings.Contains(stdout.String(), "you don't have any notes")
	}, 3*time.Second, 10*time.Millisecond)

	other, err := todo.New(context.Background(), todo.WithDir(dir))
	require.NoError(t, err)
	_, err = other.Insert(context.Background(), "", "from another terminal", nil)
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		return strings.Contains(stdout.String(), "1: from another terminal")
	}, 3*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case code := <-done:
		assert.Equal(t, ExitSuccess, code)
	case <-time.After(3 * time.Second):
		t.Fatal("watch did not stop")
	}
}
