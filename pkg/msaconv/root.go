package msaconv

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/andrew-torda/msaconv/pkg/common"
	"github.com/andrew-torda/msaconv/pkg/randseq"
)

const version = "0.1.0"

// usageError marks mistakes on the command line, as opposed to
// problems with the files.
type usageError struct{ error }

func nArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return usageError{err}
		}
		return nil
	}
}

// bind ties flags to config keys.
func bind(v *viper.Viper, flags *pflag.FlagSet, keys map[string]string) {
	for key, flag := range keys {
		v.BindPFlag(key, flags.Lookup(flag))
	}
}

// NewRootCmd builds the command tree around app.
func NewRootCmd(app *App) *cobra.Command {
	if app.logger == nil {
		app.logger = log.New(app.Stderr)
	}
	v := viper.New()
	setDefaults(v)
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "msaconv",
		Short: "Read, check and convert multiple sequence alignments",
		Long: `Read, check and convert multiple sequence alignments.

Formats are aligned fasta, Clustal, Stockholm and MSF. Input formats
are recognised from the contents. Output formats come from --to or
the file extension. "-" means standard input or output.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := readConfig(v, cfgFile); err != nil {
				return err
			}
			c, err := NewConfig(v)
			if err != nil {
				return err
			}
			app.setConfig(c)
			return nil
		},
	}
	rootCmd.SetIn(app.Stdin)
	rootCmd.SetOut(app.Stdout)
	rootCmd.SetErr(app.Stderr)
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageError{err}
	})

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default ./msaconv.yaml)")
	pf.BoolP("verbose", "v", false, "debug logging")
	pf.String("log-level", "info", "debug, info, warn or error")
	pf.IntP("width", "w", 0, "residues per line, 0 for the format's usual width")
	pf.Bool("desc", false, "write descriptions (fasta, Stockholm)")
	pf.Bool("consensus", false, "write conservation lines (Clustal)")
	pf.String("alphabet", "any", "allowed residues: any, dna, rna or protein")
	bind(v, pf, map[string]string{
		"verbose":      "verbose",
		"log-level":    "log-level",
		"wrap-width":   "width",
		"descriptions": "desc",
		"consensus":    "consensus",
		"alphabet":     "alphabet",
	})

	var from, to string
	fromFlag := func(cmd *cobra.Command) {
		cmd.Flags().StringVarP(&from, "from", "f", "", "input format, if it should not be detected")
	}
	toFlag := func(cmd *cobra.Command) {
		cmd.Flags().StringVarP(&to, "to", "t", "", "output format, if not from the file name")
	}

	detectCmd := &cobra.Command{
		Use:   "detect file...",
		Short: "Print the format of alignment files",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return usageError{errors.New("need at least one file")}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Detect(args)
		},
	}

	convertCmd := &cobra.Command{
		Use:   "convert in out",
		Short: "Convert an alignment from one format to another",
		Args:  nArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Convert(args[0], args[1], from, to)
		},
	}
	fromFlag(convertCmd)
	toFlag(convertCmd)

	infoCmd := &cobra.Command{
		Use:   "info in",
		Short: "Summarise an alignment",
		Args:  nArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Info(args[0], from)
		},
	}
	fromFlag(infoCmd)

	var ref string
	squashCmd := &cobra.Command{
		Use:   "squash in out",
		Short: "Remove the columns where a reference sequence has a gap",
		Long: `Remove the columns where a reference sequence has a gap.

The reference (--ref) is a sequence name, or its number, counting
from 1. Very often, the first sequence is the reference.`,
		Args: nArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Squash(args[0], args[1], ref, from, to)
		},
	}
	fromFlag(squashCmd)
	toFlag(squashCmd)
	squashCmd.Flags().StringVarP(&ref, "ref", "r", "1", "reference sequence")

	renderCmd := &cobra.Command{
		Use:   "render in out.png",
		Short: "Draw an alignment as a png",
		Args:  nArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Render(args[0], args[1], from)
		},
	}
	fromFlag(renderCmd)
	renderCmd.Flags().Int("cell", 12, "pixels per residue")
	renderCmd.Flags().Float64("font-size", 10, "size of names in points")
	bind(v, renderCmd.Flags(), map[string]string{
		"render.cell":      "cell",
		"render.font-size": "font-size",
	})

	var rargs randseq.RandSeqArgs
	randomCmd := &cobra.Command{
		Use:   "random out",
		Short: "Write a random alignment, for testing",
		Args:  nArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if rargs.Nseq < 0 || rargs.Len < 0 {
				return usageError{fmt.Errorf("negative size %d x %d", rargs.Nseq, rargs.Len)}
			}
			return app.Random(args[0], to, rargs)
		},
	}
	toFlag(randomCmd)
	rf := randomCmd.Flags()
	rf.IntVarP(&rargs.Nseq, "nseq", "n", 10, "number of sequences")
	rf.IntVarP(&rargs.Len, "len", "l", 60, "number of columns")
	rf.Int64VarP(&rargs.Iseed, "seed", "s", 1, "random number seed")
	rf.BoolVar(&rargs.NoGap, "nogap", false, "no gaps")
	rf.StringVar(&rargs.Prefix, "prefix", "s", "start of sequence names")

	rootCmd.AddCommand(detectCmd, convertCmd, infoCmd, squashCmd, renderCmd, randomCmd)
	return rootCmd
}

// Run runs the program with the given arguments and returns the
// exit code.
func Run(app *App, args []string) int {
	rootCmd := NewRootCmd(app)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	if err == nil {
		return common.ExitSuccess
	}
	var uerr usageError
	if errors.As(err, &uerr) {
		fmt.Fprintln(app.Stderr, "usage:", rootCmd.UseLine())
		app.logger.Error(uerr.error)
		return common.ExitUsageError
	}
	app.logger.Error(err)
	return common.ExitFailure
}
