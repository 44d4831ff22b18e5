package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/taperoom/tap2tzx"
	"github.com/taperoom/tap2tzx/tapefile"
)

var (
	pause uint16
	quiet bool
)

// rootCmd represents the converter command
var rootCmd = &cobra.Command{
	Use:   "tap2tzx INPUT.TAP [OUTPUT.TZX]",
	Short: "Convert a TAP cassette image to TZX format",
	Long: `tap2tzx converts a ZX Spectrum TAP cassette image to the TZX container
format. Every TAP block is emitted as a TZX standard speed data block.

If no output path is given the input path with a .tzx extension is used.

Example:
  tap2tzx game.tap
  tap2tzx game.tap converted/game.tzx --pause 500`,
	Args:          cobra.RangeArgs(1, 2),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if quiet {
			logrus.SetLevel(logrus.ErrorLevel)
		}
	},
	RunE: run,
}

func run(cmd *cobra.Command, args []string) error {
	input := args[0]
	output := tapefile.Target(input)
	if len(args) == 2 {
		output = args[1]
	}

	same, err := tapefile.SameFile(input, output)
	if err != nil {
		return err
	}
	if same {
		logrus.WithField("input", input).Warn("not overwriting input file")
		return nil
	}

	logrus.WithFields(logrus.Fields{
		"input":  input,
		"output": output,
	}).Info("converting tape")

	raw, err := tapefile.Read(input)
	if err != nil {
		return err
	}

	tzx, blocks, err := tap2tzx.Convert(raw, tap2tzx.Options{Pause: pause})
	if err != nil {
		return err
	}

	if err := tapefile.Write(output, tzx); err != nil {
		return err
	}

	logrus.WithField("blocks", blocks).Info("converted tape")
	return nil
}

// Execute runs the root command. It is called once by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().Uint16Var(&pause, "pause", tap2tzx.DefaultPause, "pause after each block in milliseconds")
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "only log errors")
}
