package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List every saved word with its box and due date",
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

		fmt.Println(tut.ListVocab())
		return nil
	},
}
