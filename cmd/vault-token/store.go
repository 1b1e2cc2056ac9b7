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
	"gitlab.com/accumulatenetwork/vault-token/pkg/errors"
	"gitlab.com/accumulatenetwork/vault-token/pkg/keyvalue/badger"
	"gitlab.com/accumulatenetwork/vault-token/vault"
)

func init() {
	cmd.AddCommand(storeCmd)
	storeCmd.AddCommand(storeShowCmd)
}

var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Token store utilities",
}

var storeShowCmd = &cobra.Command{
	Use:   "show [database]",
	Short: "Show the token state persisted in a store",
	Args:  cobra.ExactArgs(1),
	Run:   showStore,
}

func showStore(_ *cobra.Command, args []string) {
	kv, err := badger.New(args[0])
	checkf(err, "open %q", args[0])
	defer func() { check(kv.Close()) }()

	st := vault.NewState(kv, vault.WithLogger(logger))

	id, err := st.LoadIdentity()
	switch {
	case err == nil:
		fmt.Printf("%s %s (%v)\n", color.CyanString("Token:"), id, id.Kind())
	case errors.Is(err, errors.NotFound):
		fmt.Printf("%s %s\n", color.CyanString("Token:"), color.YellowString("(not set)"))
	default:
		check(err)
	}

	pending, err := st.LoadPending()
	switch {
	case err == nil:
		fmt.Printf("%s reply %d (%s)\n", color.CyanString("Pending:"), pending.ReplyID, pending.Kind)
	case errors.Is(err, errors.NotFound):
		// No pending instantiation
	default:
		check(err)
	}

	supply, err := st.LoadSupply()
	check(err)
	if !supply.IsZero() {
		fmt.Printf("%s %s\n", color.CyanString("Tracked supply:"), supply)
	}

	info, err := st.LoadLedgerInfo()
	switch {
	case err == nil:
		fmt.Printf("%s %s (%s), %d decimals\n", color.CyanString("Ledger:"), info.Name, info.Symbol, info.Decimals)
	case errors.Is(err, errors.NotFound):
		// Not a ledger token
	default:
		check(err)
	}
}
