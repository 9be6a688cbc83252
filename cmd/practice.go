package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/revisely/revisely/internal/app"
	"github.com/revisely/revisely/internal/curriculum"
	"github.com/revisely/revisely/internal/grading"
	"github.com/revisely/revisely/internal/mastery"
	"github.com/revisely/revisely/internal/notify"
	"github.com/revisely/revisely/internal/oracle"
	"github.com/revisely/revisely/internal/pool"
	"github.com/revisely/revisely/internal/session"
)

var practiceCmd = &cobra.Command{
	Use:   "practice <subject> <topic>",
	Short: "Practice a topic's questions",
	Long: "Starts (or resumes) a practice session for one topic. Answers are marked\n" +
		"by the grading oracle; when it is unreachable a heuristic keeps the\n" +
		"session going. Run without arguments to list subjects and topics.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadCurriculum(); err != nil {
			return err
		}

		if len(args) < 2 {
			listTopics(cmd)
			return nil
		}

		subject, err := curriculum.GetSubject(args[0])
		if err != nil {
			return err
		}
		topic, err := curriculum.GetTopic(args[1])
		if err != nil {
			return err
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		logger := newLogger()

		oracleClient, err := oracle.NewClientFromEnv(st.EventRepo(), logger)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Grading oracle not configured:", err)
			fmt.Fprintln(os.Stderr, "Answers will be marked by the fallback heuristic only.")
			oracleClient = oracle.NewMockClient()
		}

		notifier, cleanup := buildNotifier(logger)
		defer cleanup()

		engine := session.NewEngine(
			pool.New(denylistFromEnv()),
			grading.NewAdapter(oracleClient, logger),
			st.SessionRepo(),
			st.EventRepo(),
			mastery.NewAggregator(st.ProgressRepo(), logger),
			notifier,
			logger,
		)

		return app.Run(cmd.Context(), app.Options{
			Engine:  engine,
			UserID:  resolveUserID(cmd),
			Subject: &subject,
			Topic:   topic,
			In:      os.Stdin,
			Out:     os.Stdout,
		})
	},
}

// denylistFromEnv returns the visual-question denylist, overridable as
// a comma-separated REVISELY_DENYLIST. Empty means the default list.
func denylistFromEnv() []string {
	raw := os.Getenv("REVISELY_DENYLIST")
	if raw == "" {
		return nil
	}
	var list []string
	for _, term := range strings.Split(raw, ",") {
		if term = strings.TrimSpace(term); term != "" {
			list = append(list, term)
		}
	}
	return list
}

// buildNotifier connects to the AMQP broker named by REVISELY_AMQP_URL,
// or returns a no-op notifier when no broker is configured.
func buildNotifier(logger *slog.Logger) (notify.Notifier, func()) {
	url := os.Getenv("REVISELY_AMQP_URL")
	if url == "" {
		return notify.Noop{}, func() {}
	}

	exchange := os.Getenv("REVISELY_AMQP_EXCHANGE")
	if exchange == "" {
		exchange = "revisely.events"
	}

	n, err := notify.NewAMQPNotifier(url, exchange)
	if err != nil {
		logger.Warn("broker unavailable, notifications disabled", "error", err)
		return notify.Noop{}, func() {}
	}
	return n, n.Close
}

func listTopics(cmd *cobra.Command) {
	out := cmd.OutOrStdout()
	for _, s := range curriculum.Subjects() {
		fmt.Fprintf(out, "%s (%s, %s)\n", s.ID, s.Name, s.ExamBoard)
		for _, t := range s.Topics {
			fmt.Fprintf(out, "  %-24s %s (%d questions)\n", t.ID, t.Name, len(t.Questions))
		}
	}
	fmt.Fprintln(out, "\nUsage: revisely practice <subject> <topic>")
}
