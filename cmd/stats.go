package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/revisely/revisely/internal/curriculum"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learner progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadCurriculum(); err != nil {
			return err
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		out := cmd.OutOrStdout()
		userID := resolveUserID(cmd)
		progress := st.ProgressRepo()

		weak, err := progress.WeakTopics(ctx, userID)
		if err != nil {
			return fmt.Errorf("load weak topics: %w", err)
		}
		weakSet := make(map[string]bool, len(weak))
		for _, id := range weak {
			weakSet[id] = true
		}

		for _, subject := range curriculum.Subjects() {
			sp, err := progress.SubjectPerformance(ctx, userID, subject.ID, subject.ExamBoard)
			if err != nil {
				return fmt.Errorf("load subject performance: %w", err)
			}
			topics, err := progress.TopicProgressBySubject(ctx, userID, subject.ID)
			if err != nil {
				return fmt.Errorf("load topic progress: %w", err)
			}
			if sp == nil && len(topics) == 0 {
				continue
			}

			fmt.Fprintf(out, "%s (%s)\n", subject.Name, subject.ExamBoard)
			if sp != nil {
				fmt.Fprintf(out, "  %d questions answered, %.0f%% accuracy, %.1f study hours\n",
					sp.TotalQuestionsAnswered, sp.AccuracyRate, sp.StudyHours)
			}
			for _, tp := range topics {
				marker := ""
				if weakSet[tp.TopicID] {
					marker = "  (needs practice)"
				}
				fmt.Fprintf(out, "  %-24s avg %3d%%, %d sessions%s\n",
					tp.TopicID, tp.AverageScore, tp.Attempts, marker)
			}

			records, err := progress.MasteryRecords(ctx, userID, subject.ID)
			if err != nil {
				return fmt.Errorf("load mastery records: %w", err)
			}
			if len(records) > 0 {
				var days []string
				for _, r := range records {
					days = append(days, fmt.Sprintf("%s %s %d%%", r.Day, r.TopicID, r.Score))
				}
				fmt.Fprintf(out, "  mastered: %s\n", strings.Join(days, ", "))
			}
			fmt.Fprintln(out)
		}

		return nil
	},
}
