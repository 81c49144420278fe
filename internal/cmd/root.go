// Package cmd wires the command line onto the engine: flag parsing, stdin
// versus file input, and the grep exit-status convention.
package cmd

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/funkybooboo/bgrep/internal/logging"
	"github.com/funkybooboo/bgrep/internal/scanner"
	"github.com/funkybooboo/bgrep/regex"
)

// errNoMatch marks a clean run that simply found nothing, so main can map
// it to exit status 1 rather than 2.
var errNoMatch = errors.New("no match")

var (
	pattern   string
	recursive bool
	verbose   bool
	maxSteps  int
)

var rootCmd = &cobra.Command{
	Use:   "bgrep -E <pattern> [path...]",
	Short: "Match lines against a backtracking regular expression",
	Long: `bgrep matches each input line against a small regular-expression
dialect: literals, '.', '^'/'$' anchors, character classes, '\d'/'\w',
'?'/'+', capturing groups with alternation, and backreferences \1..\9.

With no paths it reads standard input; with -r it descends into
directories. Exit status is 0 when any line matched, 1 when none did,
and 2 on usage or read errors.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

func init() {
	rootCmd.Flags().StringVarP(&pattern, "extended-regexp", "E", "", "pattern to match (required)")
	rootCmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "scan directories recursively")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "debug logging to stderr")
	rootCmd.Flags().IntVar(&maxSteps, "max-steps", 0, "abort a match attempt after this many steps (0 = unlimited)")
	_ = rootCmd.MarkFlagRequired("extended-regexp")

	viper.SetEnvPrefix("bgrep")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	_ = viper.BindPFlag("max-steps", rootCmd.Flags().Lookup("max-steps"))
	_ = viper.BindPFlag("verbose", rootCmd.Flags().Lookup("verbose"))
}

func runRoot(cmd *cobra.Command, paths []string) error {
	log := logging.New(viper.GetBool("verbose"))
	defer log.Sync() //nolint:errcheck // stderr sync failure is unactionable

	pat, err := regex.Compile(pattern)
	if err != nil {
		return errors.Wrapf(err, "invalid pattern %q", pattern)
	}
	if steps := viper.GetInt("max-steps"); steps > 0 {
		pat.SetStepLimit(steps)
	}
	log.Debug("pattern compiled",
		zap.String("pattern", pattern),
		zap.Int("groups", pat.NumGroups()))

	s := scanner.New(afero.NewOsFs(), pat, cmd.OutOrStdout(), log)

	if len(paths) == 0 {
		found, err := s.ScanReader("stdin", cmd.InOrStdin(), false)
		if err != nil {
			return err
		}
		if !found {
			return errNoMatch
		}
		return nil
	}

	foundAny := false
	multi := recursive || len(paths) > 1
	for _, path := range paths {
		var found bool
		var err error
		if recursive {
			found, err = s.Walk(path)
		} else {
			found, err = s.ScanFile(path, multi)
		}
		if err != nil {
			return err
		}
		if found {
			foundAny = true
		}
	}
	if !foundAny {
		return errNoMatch
	}
	return nil
}

// Execute runs the root command and returns the process exit status:
// 0 match, 1 no match, 2 usage or read error.
func Execute() int {
	err := rootCmd.Execute()
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errNoMatch):
		return 1
	default:
		rootCmd.PrintErrln("bgrep:", err)
		return 2
	}
}

// resetFlags rewinds flag state between Execute calls in tests; pflag
// keeps values and Changed markers across runs.
func resetFlags() {
	rootCmd.Flags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
	rootCmd.SetArgs(nil)
	rootCmd.SetIn(os.Stdin)
	rootCmd.SetOut(os.Stdout)
	rootCmd.SetErr(os.Stderr)
}
