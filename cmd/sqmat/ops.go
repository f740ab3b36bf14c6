package main

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/sqmatrix/internal/codec"
	"github.com/katalvlaran/sqmatrix/internal/config"
	"github.com/katalvlaran/sqmatrix/matrix"
	"github.com/spf13/cobra"
)

// Operation names double as subcommand names.
const (
	opTranspose = "transpose"
	opNeg       = "neg"
	opDim       = "dim"
	opAdd       = "add"
	opSub       = "sub"
	opMul       = "mul"
	opScale     = "scale"
	opMulVec    = "mulvec"
)

func (a *app) unaryCmd(op, short string) *cobra.Command {
	return &cobra.Command{
		Use:   op + " MATRIX",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.dispatch(cmd, op, args)
		},
	}
}

func (a *app) binaryCmd(op, short string) *cobra.Command {
	return &cobra.Command{
		Use:   op + " A B",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.dispatch(cmd, op, args)
		},
	}
}

func (a *app) scaleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   opScale + " K MATRIX",
		Short: "Multiply every element of a matrix by the integer K",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.dispatch(cmd, opScale, args)
		},
	}
}

func (a *app) mulVecCmd() *cobra.Command {
	return &cobra.Command{
		Use:   opMulVec + " MATRIX VECTOR",
		Short: "Multiply a matrix by a vector",
		Long: `Multiply a matrix by a vector using the column convention:

  result[i] = sum over j of M[j][i] * V[j]

i.e. column i of the matrix is dotted with the vector.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.dispatch(cmd, opMulVec, args)
		},
	}
}

// dispatch instantiates the generic runner for the configured element type.
func (a *app) dispatch(cmd *cobra.Command, op string, args []string) error {
	a.logger.Debug("running operation", "op", op, "args", args)

	var err error
	switch a.cfg.ElementType {
	case config.ElementInt:
		err = run[int](a, cmd, op, args)
	default:
		err = run[float64](a, cmd, op, args)
	}
	if err != nil {
		a.logger.Error("operation failed", "op", op, "error", err)
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// run loads the operands, applies op and writes the result.
func run[T matrix.Number](a *app, cmd *cobra.Command, op string, args []string) error {
	ld := codec.Loader{Stdin: cmd.InOrStdin(), Dim: a.cfg.Dim}
	out := cmd.OutOrStdout()
	format := codec.Format(a.cfg.Output)

	switch op {
	case opTranspose, opNeg, opDim:
		m, err := codec.LoadMatrix[T](ld, args[0])
		if err != nil {
			return err
		}
		a.logger.Debug("loaded matrix", "path", args[0], "dim", m.Dimension())

		switch op {
		case opTranspose:
			return codec.WriteMatrix(out, m.Transpose(), format)
		case opNeg:
			return codec.WriteMatrix(out, m.Negate(), format)
		default:
			_, err := fmt.Fprintln(out, m.Dimension())
			return err
		}

	case opAdd, opSub, opMul:
		lhs, err := codec.LoadMatrix[T](ld, args[0])
		if err != nil {
			return err
		}
		rhs, err := codec.LoadMatrix[T](ld, args[1])
		if err != nil {
			return err
		}
		a.logger.Debug("loaded operands", "lhs_dim", lhs.Dimension(), "rhs_dim", rhs.Dimension())

		var res *matrix.Square[T]
		switch op {
		case opAdd:
			res, err = lhs.Add(rhs)
		case opSub:
			res, err = lhs.Sub(rhs)
		default:
			res, err = lhs.Mul(rhs)
		}
		if err != nil {
			return err
		}
		return codec.WriteMatrix(out, res, format)

	case opScale:
		k, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("scalar %q: %w", args[0], err)
		}
		m, err := codec.LoadMatrix[T](ld, args[1])
		if err != nil {
			return err
		}
		return codec.WriteMatrix(out, matrix.ScalarMul(k, m), format)

	case opMulVec:
		m, err := codec.LoadMatrix[T](ld, args[0])
		if err != nil {
			return err
		}
		v, err := codec.LoadVector[T](ld, args[1])
		if err != nil {
			return err
		}
		res, err := m.MulVec(v)
		if err != nil {
			return err
		}
		return codec.WriteVector(out, res, format)

	default:
		return fmt.Errorf("unknown operation %q", op)
	}
}
