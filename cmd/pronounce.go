package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/samdyer/revoir/internal/app"
	"github.com/samdyer/revoir/internal/pronounce"
	pronscreen "github.com/samdyer/revoir/internal/screens/pronounce"
)

var pronounceCmd = &cobra.Command{
	Use:   "pronounce",
	Short: "Practice pronunciation on phrasebank sentences",
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

		tut.SetMode("pronounce", "")
		if topic, _ := cmd.Flags().GetString("topic"); topic != "" {
			tp := strings.ToLower(strings.TrimSpace(topic))
			if !pronounce.KnownTopic(tp) {
				return fmt.Errorf("unknown topic %q, pick one of: %s", topic, strings.Join(pronounce.Topics(), ", "))
			}
			tut.Settings.Topic = tp
		}

		return app.Run(tut, saveFunc(ctx, st, tut), pronscreen.New(tut))
	},
}

func init() {
	pronounceCmd.Flags().String("topic", "", "Phrasebank topic (cafe, travel, hotel)")
}
