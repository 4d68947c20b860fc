package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"covlens.dev/pkg/covlens/internal/domain"
)

var uncoveredThresholdFlag float64
var uncoveredLimitFlag int

// uncoveredCmd represents the uncovered command.
var uncoveredCmd = newUncoveredCmd()

func newUncoveredCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "uncovered",
		Short: "List under-tested methods ranked most-urgent first",
		Long: `List methods whose line coverage falls strictly below the threshold,
ranked from lowest coverage upward. Methods at exactly the threshold are
considered adequately tested.`,
		Args: cobra.ExactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			return workflow.IdentifyUncovered(context.Background(), domain.UncoveredArgs{
				Report:    reportPath(),
				Threshold: viper.GetFloat64(thresholdConfigKey),
				Limit:     viper.GetInt(limitConfigKey),
			})
		},
	}

	configureUncoveredFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(uncoveredCmd)
}

func configureUncoveredFlags(cmd *cobra.Command) {
	cmd.Flags().Float64VarP(&uncoveredThresholdFlag, thresholdFlagName, "t", viper.GetFloat64(thresholdConfigKey), "coverage percent cutoff for listing a method")
	bindFlagToConfig(cmd.Flags().Lookup(thresholdFlagName), thresholdConfigKey)

	cmd.Flags().IntVarP(&uncoveredLimitFlag, limitFlagName, "n", viper.GetInt(limitConfigKey), "maximum number of methods to enumerate")
	bindFlagToConfig(cmd.Flags().Lookup(limitFlagName), limitConfigKey)
}
