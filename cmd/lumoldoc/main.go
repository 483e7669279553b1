package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bodomartin/lumol/internal/app"
	"github.com/bodomartin/lumol/internal/config"
	"github.com/bodomartin/lumol/internal/site"
	"github.com/bodomartin/lumol/internal/utils"
	"github.com/bodomartin/lumol/pkg/version"
)

var (
	cfgFile string
	verbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "lumoldoc",
	Short: "Build configuration for the Lumol user manual",
	Long: `lumoldoc assembles the configuration the documentation host consumes
when building the Lumol user manual: project metadata, HTML/LaTeX renderer
options, and the (version, release) pair resolved from Cargo.toml.`,
	Version:       version.Short(),
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.lumoldoc/config.yaml)")
	rootCmd.PersistentFlags().StringP("manifest", "m", config.DefaultManifestPath, "Path to the build manifest")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	// Bind flags to viper
	_ = viper.BindPFlag("manifest.path", rootCmd.PersistentFlags().Lookup("manifest"))

	// Subcommand flags
	resolveCmd.Flags().String("format", "text", "Output format (text or json)")

	renderCmd.Flags().StringP("output", "o", "", "Write the context to a file instead of stdout")
	renderCmd.Flags().String("format", "yaml", "Output format (yaml or json)")
	renderCmd.Flags().Bool("force", false, "Overwrite an existing output file")
	renderCmd.Flags().Bool("dry-run", false, "Validate without writing files")

	// Add subcommands
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}
}

// newOrchestrator loads the configuration and wires the orchestrator for a
// subcommand invocation.
func newOrchestrator() (*app.Orchestrator, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logLevel := cfg.Logging.Level
	if verbose {
		logLevel = "debug"
	}
	logger := utils.NewLogger(utils.LoggerOptions{
		Level:   logLevel,
		Format:  cfg.Logging.Format,
		Verbose: verbose,
	})

	orch, err := app.NewOrchestrator(app.OrchestratorOptions{
		Config:  cfg,
		Verbose: verbose,
		Logger:  logger,
	})
	if err != nil {
		return nil, err
	}
	return orch, nil
}

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve the version pair from the build manifest",
	Long: `Reads package.version from the build manifest and prints the derived
(version, release) pair. The release is the manifest string unchanged; the
version is its major.minor truncation.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		orch, err := newOrchestrator()
		if err != nil {
			return err
		}

		v, err := orch.Resolve()
		if err != nil {
			return err
		}

		format, _ := cmd.Flags().GetString("format")
		if format == "json" {
			data, err := json.MarshalIndent(v, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		}

		fmt.Fprintf(cmd.OutOrStdout(), "version: %s\nrelease: %s\n", v.Version, v.Release)
		return nil
	},
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Assemble the full build context for the documentation host",
	RunE: func(cmd *cobra.Command, args []string) error {
		orch, err := newOrchestrator()
		if err != nil {
			return err
		}

		buildCtx, err := orch.BuildContext()
		if err != nil {
			return err
		}

		format, _ := cmd.Flags().GetString("format")
		force, _ := cmd.Flags().GetBool("force")
		dryRun, _ := cmd.Flags().GetBool("dry-run")
		output, _ := cmd.Flags().GetString("output")

		writer := site.NewWriter(site.WriterOptions{
			Format: format,
			Force:  force,
			DryRun: dryRun,
		})

		if output == "" {
			data, err := writer.Render(buildCtx)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), string(data))
			return nil
		}

		return writer.Write(output, buildCtx)
	},
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify that a documentation build would succeed",
	Long: `Verifies the build inputs: the manifest exists and parses, the version
field is present, the release string looks like a semantic version, and the
working directory is writable.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		orch, err := newOrchestrator()
		if err != nil {
			return err
		}

		failed := false
		for _, r := range orch.Check() {
			if r.Detail != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s: %s (%s)\n", r.Name, r.Status, r.Detail)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s: %s\n", r.Name, r.Status)
			}
			if r.Status == app.CheckFail {
				failed = true
			}
		}

		if failed {
			return fmt.Errorf("some checks failed")
		}
		fmt.Fprintln(cmd.OutOrStdout(), "All checks passed")
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.Full())
	},
}
