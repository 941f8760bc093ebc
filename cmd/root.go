package cmd

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/samdyer/revoir/internal/store"
	"github.com/samdyer/revoir/internal/tutor"
)

var rootCmd = &cobra.Command{
	Use:   "revoir",
	Short: "Spaced-repetition French trainer",
	Long:  "Revoir — terminal French tutor: Leitner vocabulary quizzes and pronunciation scoring.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides REVOIR_DB env var)")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(dueCmd)
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(pronounceCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then REVOIR_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore opens the SQLite store for the command's database path.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

// loadTutor loads the collection and settings and builds a tutor with every
// capability enabled.
func loadTutor(ctx context.Context, st *store.Store) (*tutor.Tutor, error) {
	col, err := st.LoadCollection(ctx)
	if err != nil {
		return nil, fmt.Errorf("load vocabulary: %w", err)
	}
	settings, err := st.LoadSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return tutor.New(col, settings, nil, rng), nil
}

// saveFunc returns a closure persisting the tutor's collection and settings.
func saveFunc(ctx context.Context, st *store.Store, tut *tutor.Tutor) func() error {
	return func() error {
		if err := st.SaveCollection(ctx, tut.Collection); err != nil {
			return err
		}
		return st.SaveSettings(ctx, tut.Settings)
	}
}
