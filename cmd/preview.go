package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yigitturan/QuizBite/internal/llm"
	"github.com/yigitturan/QuizBite/internal/quizgen"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Generate one quiz session and print it as JSON (no server)",
	Long: `Run the generation pipeline once and print the resulting session.

This is a stateless developer tool: no HTTP server, no audit database.
Useful for evaluating question quality and prompt changes.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().Int("count", 10, "Number of questions to request")
	previewCmd.Flags().String("lang", "en", "Language tag for the generated text")
	previewCmd.Flags().StringSlice("topics", nil, "Topics to generate questions about")
	previewCmd.Flags().Bool("strict", false, "Fail instead of printing the fallback bank")
}

func runPreview(cmd *cobra.Command, args []string) error {
	count, _ := cmd.Flags().GetInt("count")
	lang, _ := cmd.Flags().GetString("lang")
	topics, _ := cmd.Flags().GetStringSlice("topics")
	strict, _ := cmd.Flags().GetBool("strict")

	log := logrus.New()
	log.SetOutput(os.Stderr)

	cfg := quizgen.DefaultConfig()
	cfg.Strict = strict

	provider := llm.NewProvider(llm.ConfigFromEnv(), nil)
	svc := quizgen.NewService(provider, cfg, log)

	session, err := svc.Generate(cmd.Context(), quizgen.Request{
		Count:  count,
		Lang:   lang,
		Topics: topics,
	})
	if err != nil {
		return fmt.Errorf("generate session: %w", err)
	}

	fmt.Fprintf(os.Stderr, "source: %s\n", session.Source)

	out, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
