package main

import (
	"log/slog"

	"github.com/katalvlaran/sqmatrix/internal/config"
	"github.com/katalvlaran/sqmatrix/internal/logging"
	"github.com/spf13/cobra"
)

// app carries the state shared by all subcommands of one invocation.
type app struct {
	cfgFile string
	verbose bool

	cfg    *config.Config
	logger *slog.Logger
}

// newRootCmd builds the command tree. Each call returns an independent tree,
// which keeps tests free of global flag state.
func newRootCmd() *cobra.Command {
	a := &app{logger: logging.Discard()}

	root := &cobra.Command{
		Use:   "sqmat",
		Short: "Square matrix arithmetic on text, YAML and JSON files",
		Long: `sqmat reads square matrices (and vectors) from files or standard input,
applies one operation and writes the result.

Input format is chosen by file extension: .yaml/.yml, .json, anything else
is whitespace-separated text in row-major order. Text matrices are sized with
--dim, or from the token count when --dim is 0.

Configuration is read from --config or .sqmat.yaml and may be overridden by
SQMAT_ELEMENT_TYPE, SQMAT_OUTPUT, SQMAT_DIM and SQMAT_LOG_LEVEL.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default is ./.sqmat.yaml)")
	pf.String("type", config.DefaultElementType, "element type: int or float")
	pf.StringP("output", "o", config.DefaultOutput, "output format: text, yaml or json")
	pf.IntP("dim", "n", config.DefaultDim, "dimension of text matrix inputs (0 infers it)")
	pf.String("log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		a.unaryCmd(opTranspose, "Transpose a matrix"),
		a.unaryCmd(opNeg, "Negate every element of a matrix"),
		a.unaryCmd(opDim, "Print the dimension of a matrix"),
		a.binaryCmd(opAdd, "Add two matrices"),
		a.binaryCmd(opSub, "Subtract the second matrix from the first"),
		a.binaryCmd(opMul, "Multiply two matrices"),
		a.scaleCmd(),
		a.mulVecCmd(),
	)

	return root
}

// setup resolves configuration and installs the logger before any
// subcommand runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	v, err := config.New(a.cfgFile)
	if err != nil {
		return err
	}
	if err := config.BindFlags(v, cmd.Flags()); err != nil {
		return err
	}
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	if a.verbose {
		level = slog.LevelDebug
	}

	a.cfg = cfg
	a.logger = logging.New(cmd.ErrOrStderr(), level, "sqmat")
	a.logger.Debug("configuration resolved",
		"config_file", v.ConfigFileUsed(),
		"element_type", cfg.ElementType,
		"output", cfg.Output,
		"dim", cfg.Dim,
	)

	return nil
}
