// Package cmd provides the root command and CLI setup for covlens.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"covlens.dev/pkg/covlens/internal/adapter"
	"covlens.dev/pkg/covlens/internal/controller"
	"covlens.dev/pkg/covlens/internal/domain"
	m "covlens.dev/pkg/covlens/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var workflow domain.Workflow
var ui controller.UI

// projectFlag is a root-level flag pointing at the Maven project.
var projectFlag string

// reportFlag is a root-level flag overriding the JaCoCo report location.
var reportFlag string

// verboseFlag raises the log level to debug.
var verboseFlag bool

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	workflow = domain.NewWorkflow(fsAdapter, ui)
}

const rootLongDescription = `Covlens analyzes Java test coverage and synthesizes targeted test
specifications. It reads JaCoCo XML reports to summarize coverage and rank
under-tested methods, generates boundary-value and equivalence-class test
cases from declared input ranges, and flags common code smells in Java
sources.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "covlens",
		Short: "Java test coverage analysis and test specification toolkit",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger("", viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&projectFlag, projectFlagName, "P",
			viper.GetString(projectConfigKey),
			"path to the Maven project under analysis",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(projectFlagName), projectConfigKey)

	cmd.PersistentFlags().StringVarP(&reportFlag, reportFlagName, "r", viper.GetString(reportConfigKey), "path to the JaCoCo XML coverage report")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(reportFlagName), reportConfigKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", viper.GetBool(logVerboseKey), "enable debug logging")
	bindFlagToConfig(cmd.PersistentFlags().Lookup("verbose"), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// reportPath resolves the configured report location against the project
// path when it is relative.
func reportPath() m.Path {
	path := viper.GetString(reportConfigKey)
	if filepath.IsAbs(path) {
		return m.Path(path)
	}

	return m.Path(filepath.Join(viper.GetString(projectConfigKey), path))
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
