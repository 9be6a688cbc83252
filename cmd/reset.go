package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all progress for the current learner",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			return fmt.Errorf("this deletes all progress for the learner; re-run with --yes to confirm")
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		userID := resolveUserID(cmd)
		if err := st.ProgressRepo().Reset(cmd.Context(), userID); err != nil {
			return fmt.Errorf("reset progress: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Progress for %q deleted.\n", userID)
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm the deletion")
}
