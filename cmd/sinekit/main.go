// SPDX-License-Identifier: EPL-2.0

// Command sinekit inspects and converts WAV and AIFF files.
//
//	sinekit info <file>
//	sinekit convert -in a.wav -out b.aiff [-depth 24] [-rate 88200] [-method sinc] [-window kaiser] [-taps 33]
//
// Resampling defaults come from the environment or a .env file in the
// working directory: SINEKIT_METHOD, SINEKIT_WINDOW and
// SINEKIT_WINDOW_SIZE.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/ossrs/go-oryx-lib/errors"
	"github.com/ossrs/go-oryx-lib/logger"
)

const usage = `usage:
  sinekit info <file>
  sinekit convert -in <file> -out <file> [-depth 16|24|32f|64f] [-rate hz] [-method linear|cubic|sinc] [-window name] [-taps n]`

func main() {
	ctx := logger.WithContext(context.Background())

	if err := doMain(ctx, os.Args[1:]); err != nil {
		logger.Ef(ctx, "run err %+v", err)
		os.Exit(1)
	}
}

func doMain(ctx context.Context, args []string) error {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			return errors.Wrapf(err, "load .env")
		}
		logger.Tf(ctx, "load .env as SINEKIT_METHOD=%v, SINEKIT_WINDOW=%v, SINEKIT_WINDOW_SIZE=%v",
			os.Getenv("SINEKIT_METHOD"), os.Getenv("SINEKIT_WINDOW"), os.Getenv("SINEKIT_WINDOW_SIZE"))
	}

	setEnvDefault("SINEKIT_METHOD", "linear")
	setEnvDefault("SINEKIT_WINDOW", "kaiser")
	setEnvDefault("SINEKIT_WINDOW_SIZE", "33")

	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, usage)
		return errors.New("no command")
	}

	switch strings.ToLower(args[0]) {
	case "info":
		if len(args) != 2 {
			fmt.Fprintln(os.Stderr, usage)
			return errors.New("info takes one file")
		}
		return doInfo(ctx, os.Stdout, args[1])
	case "convert":
		conf, err := parseConvert(args[1:])
		if err != nil {
			return errors.Wrapf(err, "parse convert flags")
		}
		return doConvert(ctx, conf)
	case "-h", "-help", "--help", "help":
		fmt.Println(usage)
		return nil
	}

	fmt.Fprintln(os.Stderr, usage)
	return errors.Errorf("unknown command %v", args[0])
}

func setEnvDefault(key, value string) {
	if os.Getenv(key) == "" {
		os.Setenv(key, value)
	}
}
