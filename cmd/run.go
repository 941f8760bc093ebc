package cmd

import (
	"github.com/spf13/cobra"

	"github.com/samdyer/revoir/internal/app"
)

// runApp opens the store, builds the tutor, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	tut, err := loadTutor(ctx, st)
	if err != nil {
		return err
	}

	return app.Run(tut, saveFunc(ctx, st, tut))
}
