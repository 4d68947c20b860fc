package cmd

import (
	"runtime/debug"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"covlens.dev/pkg/covlens/internal/dispatch"
)

// serveCmd represents the serve command.
var serveCmd = newServeCmd()

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the analysis tools over MCP on stdio",
		Long: `Expose every analysis operation as an MCP tool over stdin/stdout, for
use by agent clients. The server runs until the client disconnects.`,
		Args: cobra.ExactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			server := dispatch.New(buildVersion(), dispatch.Config{
				ProjectPath: viper.GetString(projectConfigKey),
				ReportPath:  viper.GetString(reportConfigKey),
				Threshold:   viper.GetFloat64(thresholdConfigKey),
				Limit:       viper.GetInt(limitConfigKey),
			})

			return dispatch.ServeStdio(server)
		},
	}
}

func buildVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok || info.Main.Version == "" {
		return "unknown"
	}

	return info.Main.Version
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
