// Command krc decodes Kugou KRC karaoke lyrics files.
//
// Usage:
//
//	krc decode song.krc            # tags and timed lines
//	krc decode --json *.krc        # JSON documents
//	krc decode --pure --convert t2s song.krc
//	krc dump song.krc              # raw decompressed text
//	krc watch ~/Music/Lyrics       # decode files as they appear
//	krc version
//
// Settings are read from KRC_* environment variables and an optional
// .env file; flags take precedence.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
