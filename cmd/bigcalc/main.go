// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/s7core/bigint"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "bigcalc",
		Short: "Arbitrary-precision signed integer calculator",
	}

	rootCmd.AddCommand(
		addCmd(),
		subCmd(),
		mulCmd(),
		divCmd(),
		powCmd(),
		gcdCmd(),
		hexCmd(),
		randomCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func binaryCmd(use, short string, apply func(a, b bigint.Int) bigint.Int) *cobra.Command {
	return &cobra.Command{
		Use:   use + " a b",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b, err := parseTwo(args)
			if err != nil {
				return err
			}
			fmt.Println(apply(a, b).String())
			return nil
		},
	}
}

func addCmd() *cobra.Command {
	return binaryCmd("add", "Print a+b", bigint.Add)
}

func subCmd() *cobra.Command {
	return binaryCmd("sub", "Print a-b", bigint.Sub)
}

func mulCmd() *cobra.Command {
	return binaryCmd("mul", "Print a*b", bigint.Mul)
}

func divCmd() *cobra.Command {
	var mode string
	cmd := &cobra.Command{
		Use:   "div a b",
		Short: "Print the quotient and remainder of a/b",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b, err := parseTwo(args)
			if err != nil {
				return err
			}
			switch mode {
			case "trunc":
				q, r, err := bigint.QuoRem(a, b)
				if err != nil {
					return err
				}
				fmt.Printf("quotient: %s\nremainder: %s\n", q.String(), r.String())
			case "floor":
				q, err := bigint.MDiv(a, b)
				if err != nil {
					return err
				}
				m, err := bigint.Mod(a, b)
				if err != nil {
					return err
				}
				fmt.Printf("quotient: %s\nmod: %s\n", q.String(), m.String())
			default:
				return fmt.Errorf("unknown --mode %q: use trunc or floor", mode)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&mode, "mode", "trunc", "Division mode: trunc (QuoRem) or floor (MDiv/Mod)")
	return cmd
}

func powCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pow base exp",
		Short: "Print base^exp",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := bigint.ParseDecimal(args[0])
			if err != nil {
				return fmt.Errorf("invalid base %q: %w", args[0], err)
			}
			exp, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid exponent %q: %w", args[1], err)
			}
			result, err := bigint.Pow(base, exp)
			if err != nil {
				return err
			}
			fmt.Println(result.String())
			return nil
		},
	}
}

func gcdCmd() *cobra.Command {
	return binaryCmd("gcd", "Print gcd(a, b)", bigint.GCD)
}

func hexCmd() *cobra.Command {
	var asCLit bool
	cmd := &cobra.Command{
		Use:   "hex n",
		Short: "Print n as a hex literal (C-style digit string, or --clit for a byte array literal)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := bigint.ParseDecimal(args[0])
			if err != nil {
				return fmt.Errorf("invalid integer %q: %w", args[0], err)
			}
			if asCLit {
				fmt.Println(v.CLit())
			} else {
				fmt.Println(v.HexCLit())
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asCLit, "clit", false, "Print a {0x.., ...} byte-array literal instead of a hex digit string")
	return cmd
}

func randomCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "random lo hi",
		Short: "Print a uniformly-random integer in [lo, hi]",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			lo, hi, err := parseTwo(args)
			if err != nil {
				return err
			}
			v, err := bigint.Random(lo, hi)
			if err != nil {
				return err
			}
			fmt.Println(v.String())
			return nil
		},
	}
}

func parseTwo(args []string) (bigint.Int, bigint.Int, error) {
	a, err := bigint.ParseDecimal(args[0])
	if err != nil {
		return bigint.Int{}, bigint.Int{}, fmt.Errorf("invalid integer %q: %w", args[0], err)
	}
	b, err := bigint.ParseDecimal(args[1])
	if err != nil {
		return bigint.Int{}, bigint.Int{}, fmt.Errorf("invalid integer %q: %w", args[1], err)
	}
	return a, b, nil
}
