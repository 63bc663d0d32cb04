package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yigitturan/QuizBite/internal/llm"
	"github.com/yigitturan/QuizBite/internal/quizgen"
	"github.com/yigitturan/QuizBite/internal/server"
	"github.com/yigitturan/QuizBite/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the quiz session HTTP server",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (default :8080, or QUIZBITE_ADDR)")
	serveCmd.Flags().Bool("strict", false, "Propagate generation failures as HTTP 500 instead of serving the fallback bank")
}

func runServe(cmd *cobra.Command, args []string) error {
	// A missing .env file is fine; real deployments use the environment.
	_ = godotenv.Load()

	log := newLogger()

	addr, _ := cmd.Flags().GetString("addr")
	if addr == "" {
		addr = os.Getenv("QUIZBITE_ADDR")
	}
	if addr == "" {
		addr = ":8080"
	}

	strict, _ := cmd.Flags().GetBool("strict")
	if !strict {
		strict, _ = strconv.ParseBool(os.Getenv("QUIZBITE_STRICT"))
	}

	var eventRepo store.EventRepo
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve database path: %w", err)
	}
	if dbPath != "" {
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open audit database: %w", err)
		}
		defer s.Close()
		eventRepo = s.EventRepo()
		log.WithField("db", dbPath).Info("LLM request auditing enabled")
	}

	llmCfg := llm.ConfigFromEnv()
	if llmCfg.APIKey == "" {
		log.Warn("no Gemini API key configured, every session will come from the fallback bank")
	}
	provider := llm.NewProvider(llmCfg, eventRepo)

	genCfg := quizgen.DefaultConfig()
	genCfg.Strict = strict
	svc := quizgen.NewService(provider, genCfg, log)

	handler := server.NewSessionHandler(svc, log)
	srv := server.New(server.Config{
		Addr:            addr,
		ShutdownTimeout: 10 * time.Second,
	}, server.NewRouter(handler), log)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return srv.Run(ctx)
}

// newLogger configures the process logger: JSON in production, level
// from QUIZBITE_LOG_LEVEL (default info).
func newLogger() *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	if lvl, err := logrus.ParseLevel(os.Getenv("QUIZBITE_LOG_LEVEL")); err == nil {
		log.SetLevel(lvl)
	}

	return log
}
