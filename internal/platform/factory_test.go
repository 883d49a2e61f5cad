package platform_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/todo/internal/platform"
	"github.com/aretw0/todo/pkg/adapters/fs"
	"github.com/aretw0/todo/pkg/core"
)

type stubLauncher struct {
	paths []string
}

func (l *stubLauncher) Launch(ctx context.Context, path string) error {
	l.paths = append(l.paths, path)
	return nil
}

func TestNew(t *testing.T) {
	ctx := context.Background()

	t.Run("Default Dir From XDG", func(t *testing.T) {
		dataHome := t.TempDir()
		t.Setenv("XDG_DATA_HOME", dataHome)

		editor, err := platform.New(ctx)
		require.NoError(t, err)

		_, err = editor.Insert(ctx, "", "buy milk", nil)
		require.NoError(t, err)

		data, err := os.ReadFile(filepath.Join(dataHome, "todo", "default"))
		require.NoError(t, err)
		assert.Equal(t, "buy milk\n", string(data))
	})

	t.Run("Fixed File And Named Notes", func(t *testing.T) {
		dir := t.TempDir()
		file := filepath.Join(t.TempDir(), ".todo")

		editor, err := platform.New(ctx, platform.WithDir(dir), platform.WithFile(file))
		require.NoError(t, err)

		_, err = editor.Insert(ctx, "", "single", nil)
		require.NoError(t, err)
		_, err = editor.Insert(ctx, "work", "named", nil)
		require.NoError(t, err)

		assert.FileExists(t, file)
		assert.FileExists(t, filepath.Join(dir, "work"))
		assert.NoFileExists(t, filepath.Join(dir, "default"))
	})

	t.Run("Default Notebook", func(t *testing.T) {
		dir := t.TempDir()
		editor, err := platform.New(ctx, platform.WithDir(dir), platform.WithDefaultNotebook("inbox"))
		require.NoError(t, err)

		_, err = editor.Insert(ctx, "", "x", nil)
		require.NoError(t, err)
		assert.FileExists(t, filepath.Join(dir, "inbox"))
	})

	t.Run("Strict Delete", func(t *testing.T) {
		editor, err := platform.New(ctx, platform.WithDir(t.TempDir()), platform.WithStrictDelete(true))
		require.NoError(t, err)

		_, err = editor.Insert(ctx, "", "a", nil)
		require.NoError(t, err)
		_, err = editor.Delete(ctx, "", []int{1, 9})
		assert.ErrorIs(t, err, core.ErrInvalidIndex)

		notes, err := editor.Notes(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, core.NoteList{"a"}, notes)
	})

	t.Run("Launcher And State", func(t *testing.T) {
		dir := t.TempDir()
		launcher := &stubLauncher{}
		editor, err := platform.New(ctx, platform.WithDir(dir), platform.WithLauncher(launcher))
		require.NoError(t, err)

		require.NoError(t, editor.Edit(ctx, "work"))
		assert.Equal(t, []string{filepath.Join(dir, "work")}, launcher.paths)

		state := editor.State().(core.EditorState)
		assert.Equal(t, "fs-store", state.StoreType)
		assert.True(t, state.CanEdit)
		assert.True(t, state.CanWatch)
		assert.IsType(t, fs.StoreState{}, state.Store)
	})

	t.Run("Invalid Default Notebook", func(t *testing.T) {
		_, err := platform.New(ctx, platform.WithDir(t.TempDir()), platform.WithDefaultNotebook("a/b"))
		assert.ErrorIs(t, err, core.ErrInvalidName)
	})
}
