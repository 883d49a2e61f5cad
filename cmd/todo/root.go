package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/todo"
	"github.com/aretw0/todo/pkg/core"
)

// skipEditorAnnotation marks commands that run without building the editor.
const skipEditorAnnotation = "todo.skip-editor"

var (
	verbose      bool
	notebook     string
	noteFile     string
	noteDir      string
	configPath   string
	strictDelete bool

	logger *slog.Logger
	editor *core.Editor
)

// rootCmd prints the selected note when called without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "todo",
	Short: "Quick reminders and notes, one line at a time",
	Long: `todo keeps small ordered lists of text lines in plain files.

Without a subcommand the selected note is printed. Notes live in
$XDG_DATA_HOME/todo; use -n to pick a named note instead of the default one.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
			Level: level,
		}))
		slog.SetDefault(logger)

		if cmd.Annotations[skipEditorAnnotation] == "true" {
			return nil
		}
		return setupEditor(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		notes, err := editor.Notes(cmd.Context(), notebook)
		if err != nil {
			return err
		}
		printNotes(cmd.OutOrStdout(), notes)
		return nil
	},
}

func setupEditor(cmd *cobra.Command) error {
	path := configPath
	if path == "" {
		path = todo.ConfigPath()
	}
	cfg, err := todo.LoadConfig(path)
	if err != nil {
		return err
	}

	opts := cfg.Options()
	if noteDir != "" {
		opts = append(opts, todo.WithDir(noteDir))
	}
	if noteFile != "" {
		opts = append(opts, todo.WithFile(noteFile))
	}
	if strictDelete {
		opts = append(opts, todo.WithStrictDelete(true))
	}
	opts = append(opts, todo.WithLogger(logger))

	editor, err = todo.New(cmd.Context(), opts...)
	if err != nil {
		return err
	}
	logger.Debug("editor ready", "config", path, "state", fmt.Sprintf("%+v", editor.State()))
	return nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&notebook, "notebook", "n", "", "Name of the note to use instead of the default one")
	rootCmd.PersistentFlags().StringVar(&noteFile, "file", "", "Fixed file for the default note (e.g. ~/.todo)")
	rootCmd.PersistentFlags().StringVar(&noteDir, "dir", "", "Directory holding named notes")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/todo/config.yml)")
	rootCmd.SetOut(os.Stdout)
	rootCmd.SetErr(os.Stderr)
}
