// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gitlab.com/accumulatenetwork/vault-token/internal/logging"
	"gitlab.com/accumulatenetwork/vault-token/pkg/errors"
)

var cmd = &cobra.Command{
	Use:              "vault-token",
	Short:            "Vault token utilities",
	PersistentPreRun: initLogging,
}

var flags = struct {
	LogFormat string
	LogLevel  string
}{}

var logger zerolog.Logger

func init() {
	initLogFlags(cmd.PersistentFlags())
}

func initLogFlags(fs *pflag.FlagSet) {
	fs.StringVar(&flags.LogFormat, "log-format", logging.LogFormatPlain, "Log format, plain or json")
	fs.StringVar(&flags.LogLevel, "log-level", zerolog.LevelInfoValue, "Log level")
}

func initLogging(*cobra.Command, []string) {
	w, err := logging.NewConsoleWriter(flags.LogFormat)
	check(err)
	level, err := zerolog.ParseLevel(flags.LogLevel)
	check(err)
	logger = zerolog.New(w).Level(level).With().Timestamp().Logger()
}

func main() {
	_ = cmd.Execute()
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

func check(err error) {
	if err != nil {
		err = errors.UnknownError.Wrap(err)
		fatalf("%v", err)
	}
}

func checkf(err error, format string, otherArgs ...interface{}) {
	if err != nil {
		err = errors.UnknownError.Wrap(err)
		fatalf(format+": %v", append(otherArgs, err)...)
	}
}
