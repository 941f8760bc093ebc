package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/samdyer/revoir/internal/export"
)

var dueCmd = &cobra.Command{
	Use:   "due",
	Short: "Show the words waiting for review",
	RunE: func(cmd *cobra.Command, args []string) error {
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

		top, _ := cmd.Flags().GetInt("top")
		examples, _ := cmd.Flags().GetBool("examples")
		fmt.Println(tut.DueWords(top, examples, time.Now()))

		if snapshot, _ := cmd.Flags().GetBool("export"); snapshot {
			dir, err := export.DefaultDir()
			if err != nil {
				return err
			}
			paths, err := export.Write(dir, export.DefaultFormat(), tut.Collection, tut.Settings, "due report", time.Now())
			if err != nil {
				return fmt.Errorf("export snapshot: %w", err)
			}
			fmt.Println("Snapshot:", strings.Join(paths, ", "))
		}
		return nil
	},
}

func init() {
	dueCmd.Flags().Int("top", 5, "Maximum number of words to show")
	dueCmd.Flags().Bool("examples", false, "Include example sentences")
	dueCmd.Flags().Bool("export", false, "Also write a snapshot to the export directory")
}
