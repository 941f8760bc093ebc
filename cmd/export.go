package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/samdyer/revoir/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write a dated snapshot of the vocabulary collection",
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

		dir, _ := cmd.Flags().GetString("dir")
		if dir == "" {
			dir, err = export.DefaultDir()
			if err != nil {
				return err
			}
		}
		format := export.DefaultFormat()
		if f, _ := cmd.Flags().GetString("format"); f != "" {
			format = export.ParseFormat(f)
		}

		paths, err := export.Write(dir, format, tut.Collection, tut.Settings, "manual", time.Now())
		if err != nil {
			return fmt.Errorf("export snapshot: %w", err)
		}
		for _, p := range paths {
			fmt.Println(p)
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().String("dir", "", "Export directory (overrides REVOIR_EXPORT_DIR)")
	exportCmd.Flags().String("format", "", "Snapshot format: csv, json or both (overrides REVOIR_EXPORT_FORMAT)")
}
