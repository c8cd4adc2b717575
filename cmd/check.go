package cmd

import (
	"encoding/json"
	"fmt"

	"storage-provider/feature/health"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check store, bucket and region access",
	Long: `Runs the store access, bucket access and bucket region checks against
the configured bucket and prints the report. Exits non-zero when any check fails.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, logg, err := openProvider()
		if err != nil {
			return err
		}
		defer logg.Sync()

		report := health.NewService(svc, logg).Check(cmd.Context())

		out, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))

		if !report.Healthy {
			return fmt.Errorf("storage %s/%s is not healthy", report.Region, report.Bucket)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(checkCmd)
}
