// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/MKhiriev/vidsweep/internal/config"
	"github.com/MKhiriev/vidsweep/internal/finder"
	"github.com/MKhiriev/vidsweep/internal/logger"
	"github.com/MKhiriev/vidsweep/internal/progress"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "vidsweep: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// run loads the settings and lists the video files found in the source
// directory. The progress bar and the listing go to stdout; logs go to the
// configured log file, or to stderr.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	opts, err := config.GetOptions(args)
	if err != nil {
		return err
	}

	log := logger.New("vidsweep", stderr)
	if opts.LogFile != "" {
		fileLog, closeLog, err := logger.NewFileLogger("vidsweep", opts.LogFile)
		if err != nil {
			return err
		}
		defer closeLog()
		log = fileLog
	}

	settings, err := config.LoadFromOptions(opts)
	if err != nil {
		log.Error().Err(err).Str("config", opts.ConfigPath).Msg("error loading settings")
		return err
	}

	log = log.AtLevel(settings.LogLevel())
	log.Debug().Str("config", opts.ConfigPath).Msg("settings loaded\n" + settings.String())
	ctx = log.WithContext(ctx)

	f, err := finder.New(log).FindAll(ctx, settings.SourceDirectory())
	if err != nil {
		log.Error().Err(err).Msg("error listing source directory")
		return err
	}

	videos := f.FilesWithExtensions(settings.VideoExtensions())
	log.Info().Int("videos", len(videos)).Str("dir", settings.SourceDirectory()).Msg("video files found")

	bar := progress.New(len(videos), progress.WithOutput(stdout))
	for i, video := range videos {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := bar.Update(i).Print(); err != nil {
			return fmt.Errorf("error drawing progress: %w", err)
		}
		log.Info().Str("file", video).Msg("video file listed")
	}
	if err := bar.Done(); err != nil {
		return fmt.Errorf("error drawing progress: %w", err)
	}

	for _, video := range videos {
		fmt.Fprintln(stdout, video)
	}

	return nil
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
