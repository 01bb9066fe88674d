// Package cli wires the readme-gen commands.
package cli

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	versionpkg "readme-gen/src/internal/version"
)

// CLI Constants
const (
	CmdAnalyze  = "analyze"
	CmdGenerate = "generate"
	CmdVersion  = "version"
	FlagConfig  = "config"
	FlagOut     = "out"
	FlagOutput  = "output"
	FlagSave    = "save"
	FlagMerge   = "merge"
	FlagSamples = "samples"
	FlagVerbose = "verbose"
)

// CLI Variables
var (
	configPath     string
	outPath        string
	outputName     string
	saveSidecar    bool
	mergePolicy    string
	includeSamples bool
	verbose        bool
)

// Root command
var rootCmd = &cobra.Command{
	Use:   "readme-gen",
	Short: "readme-gen - Analyze a project tree and generate its README",
	Long: `readme-gen scans a project directory, detects its languages, dependencies
and layout, infers README metadata from the files it finds, and renders a
complete README.md.

QUICK START:
  readme-gen analyze .                     # Inspect a project, print the analysis
  readme-gen generate .                    # Write README.md for the project

AVAILABLE COMMANDS:

  Core Operations:
    readme-gen analyze [path]              # Scan and print project analysis
    readme-gen generate [path]             # Render and write the README
    readme-gen version                     # Show version information

METADATA OVERRIDES:
  Inference results are stored next to the project as readme_info.json.
  Edit that file to correct a field, then re-run generate; the --merge flag
  controls how stored values combine with fresh inference (trust, ignore
  or defaults).

Use 'readme-gen <command> --help' for detailed command information.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		} else {
			logrus.SetLevel(logrus.InfoLevel)
		}
	},
}

// Command definitions
var (
	analyzeCmd = &cobra.Command{
		Use:   CmdAnalyze + " [path]",
		Short: "Scan a project and print its analysis",
		Long: `Scan a project directory and print what was detected: languages,
dependency manifests, configuration files, test files and the top-level
structure.

The inferred README metadata is saved to readme_info.json in the project
root unless --save=false is given. Use --out to additionally write the
full analysis as JSON to a file.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runAnalyzeCmd,
	}

	generateCmd = &cobra.Command{
		Use:   CmdGenerate + " [path]",
		Short: "Generate the README for a project",
		Long: `Analyze a project directory and write a complete README into its root.

An existing README is renamed to a timestamped backup before the new one
is written. Stored metadata from readme_info.json is merged with fresh
inference according to --merge:

  trust     stored values win wherever they are set (default)
  defaults  stored values fill only fields inference left empty
  ignore    stored values are discarded

Usage Examples:
  readme-gen generate .                    # README.md with code samples
  readme-gen generate . --samples=false   # Skip the code-examples section
  readme-gen generate . --merge ignore    # Fresh inference only`,
		Args: cobra.MaximumNArgs(1),
		RunE: runGenerateCmd,
	}

	versionCmd = &cobra.Command{
		Use:   CmdVersion,
		Short: "Show version information",
		RunE:  runVersionCmd,
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, FlagVerbose, "v", false, "Enable debug logging")

	// Analyze command flags
	analyzeCmd.Flags().StringVarP(&configPath, FlagConfig, "c", "", "Configuration file path (optional, will use defaults if not provided)")
	analyzeCmd.Flags().BoolVar(&saveSidecar, FlagSave, true, "Save inferred metadata to readme_info.json")
	analyzeCmd.Flags().StringVar(&outPath, FlagOut, "", "Write the full analysis as JSON to this file")

	// Generate command flags
	generateCmd.Flags().StringVarP(&configPath, FlagConfig, "c", "", "Configuration file path (optional)")
	generateCmd.Flags().StringVarP(&outputName, FlagOutput, "o", "", "Output filename (default from config, README.md)")
	generateCmd.Flags().StringVar(&mergePolicy, FlagMerge, "trust", "Sidecar merge policy: trust, ignore or defaults")
	generateCmd.Flags().BoolVar(&includeSamples, FlagSamples, true, "Include code samples in the README")

	// Add commands to root
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(versionCmd)
}

func runVersionCmd(cmd *cobra.Command, args []string) error {
	fmt.Println(versionpkg.GetFullVersionInfo())
	return nil
}

// projectRoot resolves the positional path argument, defaulting to the
// current directory.
func projectRoot(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "."
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
