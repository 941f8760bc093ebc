package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <word> <translation> [example]",
	Short: "Add a vocabulary word",
	Args:  cobra.RangeArgs(2, 3),
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

		example := ""
		if len(args) == 3 {
			example = args[2]
		}

		reply := tut.AddVocab(args[0], args[1], example, time.Now())
		if err := saveFunc(ctx, st, tut)(); err != nil {
			return fmt.Errorf("save vocabulary: %w", err)
		}
		fmt.Println(reply)
		return nil
	},
}
