package cli

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Nusiq/custom-project-filter-src/internal/version"
	"github.com/Nusiq/custom-project-filter-src/pkg/config"
	"github.com/Nusiq/custom-project-filter-src/pkg/copier"
	"github.com/Nusiq/custom-project-filter-src/pkg/filesystem"
	"github.com/Nusiq/custom-project-filter-src/pkg/logging"
	"github.com/Nusiq/custom-project-filter-src/pkg/rules"
	"github.com/Nusiq/custom-project-filter-src/pkg/style"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		verbosity int
		builtin   bool
		dataPath  string
	)

	rootCmd := &cobra.Command{
		Use:   "custom-project-filter [working-dir]",
		Short: "Copy staged project files into the RP and BP trees",
		Long: `custom-project-filter relocates staged asset files from the project data
directory into the resource pack (RP) and behavior pack (BP) of an add-on
project. Each file's destination is derived from its name using a
suffix-based naming convention, read from config.json or from the built-in
extension table.`,
		Version: version.Version,
		Args:    cobra.MaximumNArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			workingDir := ""
			if len(args) > 0 {
				workingDir = args[0]
			}
			return runFilter(workingDir, dataPath, builtin)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.Flags().BoolVar(&builtin, "builtin", false, "Use the built-in extension table instead of config.json")
	rootCmd.Flags().StringVar(&dataPath, "data-path", config.FilterDataPath, "Staging directory, relative to the working directory")

	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// runFilter loads the rule set, walks the configured roots and reports the
// result. A configuration problem is logged and swallowed: the filter must
// exit successfully without copying anything, so that a missing config does
// not fail the surrounding pipeline.
func runFilter(workingDir, dataPath string, builtin bool) error {
	logger := logging.GetLogger("cli")

	var cfg *config.Config
	var matcher rules.Matcher
	if builtin {
		cfg = config.Default()
		matcher = rules.NewExtensionTable(cfg.ExtensionsMap)
	} else {
		var err error
		cfg, err = config.Load(workingDir, dataPath)
		if err != nil {
			logger.Error().Err(err).Msg("Unable to load configuration, nothing copied")
			pterm.Error.Println(err.Error())
			return nil
		}
		matcher = rules.NewSuffixIndex(cfg.ExtensionsMap)
	}

	pterm.Info.Println("Copying files to packs...")

	c := copier.New(filesystem.NewOS(), matcher)
	res, err := c.CopyTreesByRoots(workingDir, dataPath, cfg.Roots)

	fmt.Println(style.RenderSummary(res))

	if err != nil {
		return err
	}
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including commit hash and build date`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("custom-project-filter version %s\n", version.Version)
			if version.Commit != "" {
				fmt.Printf("Commit: %s\n", version.Commit)
			}
			if version.Date != "" {
				fmt.Printf("Built:  %s\n", version.Date)
			}
		},
	}
}
