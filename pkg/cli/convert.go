/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/numeralia/romanos/pkg/numeral"
)

// Conversion is one CLI result record.
type Conversion struct {
	Input     string `json:"input" yaml:"input"`
	Roman     string `json:"roman,omitempty" yaml:"roman,omitempty"`
	Arabic    int    `json:"arabic,omitempty" yaml:"arabic,omitempty"`
	Canonical bool   `json:"canonical" yaml:"canonical"`
	Error     string `json:"error,omitempty" yaml:"error,omitempty"`
}

// errConversionFailed is returned after output is written when any input failed.
var errConversionFailed = errors.New("conversion failed")

func toRomanCmd() *cli.Command {
	return &cli.Command{
		Name:                  "to-roman",
		Aliases:               []string{"r"},
		EnableShellCompletion: true,
		Usage:                 "Convert Arabic integers to Roman numerals",
		ArgsUsage:             "<number>...",
		Description: `Converts each argument (an integer from 1 to 3999) to its canonical
Roman numeral. Integral decimals such as 12.0 are accepted.`,
		Flags: []cli.Flag{
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runConversions(ctx, cmd, toRoman)
		},
	}
}

func toArabicCmd() *cli.Command {
	return &cli.Command{
		Name:                  "to-arabic",
		Aliases:               []string{"a"},
		EnableShellCompletion: true,
		Usage:                 "Convert Roman numerals to Arabic integers",
		ArgsUsage:             "<numeral>...",
		Description: `Converts each canonical Roman numeral argument to its integer value.
Input is case-insensitive; non-canonical forms such as IIII or IC fail.`,
		Flags: []cli.Flag{
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runConversions(ctx, cmd, toArabic)
		},
	}
}

func checkCmd() *cli.Command {
	return &cli.Command{
		Name:                  "check",
		EnableShellCompletion: true,
		Usage:                 "Report whether Roman numerals are canonical",
		ArgsUsage:             "<numeral>...",
		Description: `Reports canonical: true or false for each argument and exits non-zero
when any argument is not canonical.`,
		Flags: []cli.Flag{
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runConversions(ctx, cmd, check)
		},
	}
}

// runConversions applies fn to every argument, writes all records, then
// reports failure if any record carries an error.
func runConversions(ctx context.Context, cmd *cli.Command, fn func(string) Conversion) error {
	format, err := parseOutputFormat(cmd)
	if err != nil {
		return err
	}

	args := cmd.Args().Slice()
	if len(args) == 0 {
		return fmt.Errorf("%s requires at least one argument: %s", cmd.Name, cmd.ArgsUsage)
	}

	results := make([]Conversion, 0, len(args))
	failed := 0
	for _, arg := range args {
		if err := ctx.Err(); err != nil {
			return err
		}
		c := fn(arg)
		if c.Error != "" {
			failed++
		}
		results = append(results, c)
	}

	if err := writeOutput(ctx, cmd, format, results); err != nil {
		return err
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d inputs", errConversionFailed, failed, len(args))
	}
	return nil
}

func toRoman(input string) Conversion {
	c := Conversion{Input: input}

	n, err := numeral.ParseArabic(input)
	if err == nil {
		c.Roman, err = numeral.ToRoman(n)
	}
	if err != nil {
		c.Error = err.Error()
		return c
	}

	c.Arabic = n
	c.Canonical = true
	return c
}

func toArabic(input string) Conversion {
	c := Conversion{Input: input}

	n, err := numeral.ToArabic(input)
	if err != nil {
		c.Error = err.Error()
		return c
	}

	c.Arabic = n
	c.Roman = numeral.Normalize(input)
	c.Canonical = true
	return c
}

func check(input string) Conversion {
	c := toArabic(input)
	c.Canonical = numeral.IsCanonical(input)
	return c
}

func symbolsCmd() *cli.Command {
	return &cli.Command{
		Name:  "symbols",
		Usage: "List the value/symbol table used for conversion",
		Flags: []cli.Flag{
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			format, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}
			return writeOutput(ctx, cmd, format, numeral.Denominations())
		},
	}
}
