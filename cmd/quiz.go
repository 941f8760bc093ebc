package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/samdyer/revoir/internal/app"
	"github.com/samdyer/revoir/internal/screens/quizrun"
	"github.com/samdyer/revoir/internal/tutor"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Run a spaced-repetition vocabulary quiz",
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
		save := saveFunc(ctx, st, tut)

		if plain, _ := cmd.Flags().GetBool("plain"); plain {
			count, _ := cmd.Flags().GetInt("count")
			direction, _ := cmd.Flags().GetString("direction")
			return runPlainQuiz(tut, save, count, direction)
		}

		return app.Run(tut, save, quizrun.New(tut, save))
	},
}

func init() {
	quizCmd.Flags().Int("count", 5, "Number of questions")
	quizCmd.Flags().String("direction", "en2fr", "Quiz direction: en2fr or fr2en")
	quizCmd.Flags().Bool("plain", false, "Line-based quiz on stdin instead of the TUI")
}

// runPlainQuiz drives a quiz over stdin/stdout, one line per answer. An
// empty line or "stop" ends the quiz early; schedule updates made so far
// are kept.
func runPlainQuiz(tut *tutor.Tutor, save func() error, count int, direction string) error {
	fmt.Println(tut.StartQuiz(count, direction, time.Now()))

	s := tut.QuizSession()
	if !s.Active() {
		return nil
	}

	answered, correct := 0, 0
	scanner := bufio.NewScanner(os.Stdin)
	for s.Active() {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" || strings.EqualFold(raw, "stop") {
			break
		}

		r, ok := s.Answer(tut.Collection, raw, time.Now())
		if !ok {
			break
		}
		answered++
		if r.Correct {
			correct++
		}
		if err := save(); err != nil {
			fmt.Fprintln(os.Stderr, "Sauvegarde impossible:", err)
		}

		fmt.Println(r.Verdict)
		if !r.Done {
			fmt.Println("Prochaine:", r.Next)
		} else {
			fmt.Println(r.Next)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read answers: %w", err)
	}

	if answered > 0 {
		fmt.Printf("%d/%d bonnes réponses.\n", correct, answered)
	}
	return nil
}
