// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gitlab.com/accumulatenetwork/vault-token/pkg/denom"
)

func init() {
	cmd.AddCommand(denomCmd)
	denomCmd.AddCommand(denomParseCmd, denomFormatCmd)
}

var denomCmd = &cobra.Command{
	Use:   "denom",
	Short: "Token factory denom utilities",
}

var denomParseCmd = &cobra.Command{
	Use:   "parse [denom]",
	Short: "Parse a factory denom into its owner and subdenom",
	Args:  cobra.ExactArgs(1),
	Run:   parseDenom,
}

var denomFormatCmd = &cobra.Command{
	Use:   "format [owner] [subdenom]",
	Short: "Format an owner and subdenom as a canonical factory denom",
	Args:  cobra.ExactArgs(2),
	Run:   formatDenom,
}

func parseDenom(_ *cobra.Command, args []string) {
	d, err := denom.Parse(args[0])
	checkf(err, "parse %q", args[0])

	fmt.Printf("%s %s\n", color.CyanString("Owner:"), d.Owner)
	fmt.Printf("%s %s\n", color.CyanString("Subdenom:"), d.Subdenom)
}

func formatDenom(_ *cobra.Command, args []string) {
	d := denom.New(args[0], args[1])

	// Round-trip through Parse so malformed segments are rejected
	_, err := denom.Parse(d.String())
	checkf(err, "format factory/%s/%s", args[0], args[1])

	fmt.Println(d)
}
