// Command qc-audio-merge joins two or more call recordings into a single
// mono 16-bit PCM WAV file.
//
// Usage:
//
//	qc-audio-merge [flags] input1 input2 [input3 ...]
//
// Inputs may be WAV, MP3, Ogg Vorbis or AIFF files in any mix of sample
// rates and channel counts.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	qcaudio "github.com/Markl1n1/qc-audio"
	"github.com/Markl1n1/qc-audio/audio"
	"github.com/Markl1n1/qc-audio/internal/config"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML configuration file")
	outPath := flag.String("o", "merged.wav", "Output WAV file path")
	rate := flag.Int("rate", 0, "Output sample rate in Hz (overrides config)")
	preprocess := flag.Bool("preprocess", false, "Run the speech cleanup chain on each input")
	noNormalize := flag.Bool("no-normalize", false, "Skip peak normalization")
	fast := flag.Bool("fast", false, "Use nearest-neighbor resampling (lower quality, faster)")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	logger := initLogger(cfg.Logging)

	inputs := flag.Args()
	if len(inputs) < 2 {
		fmt.Fprintln(os.Stderr, "usage: qc-audio-merge [flags] input1 input2 [input3 ...]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	opts := qcaudio.DefaultOptions()
	opts.TargetSampleRate = cfg.Output.SampleRate
	opts.Preprocess = cfg.Output.Preprocess
	opts.NormalizePeak = cfg.Output.NormalizePeak
	if cfg.Output.Quality == "nearest" {
		opts.Quality = audio.QualityNearest
	}

	// Flags override the file.
	if *rate > 0 {
		opts.TargetSampleRate = *rate
	}
	if *preprocess {
		opts.Preprocess = true
	}
	if *noNormalize {
		opts.NormalizePeak = false
	}
	if *fast {
		opts.Quality = audio.QualityNearest
	}

	opts.OnProgress = func(stage qcaudio.Stage, index, total int) {
		if index >= 0 {
			logger.Debug("pipeline stage",
				slog.String("stage", string(stage)),
				slog.Int("file", index+1),
				slog.Int("of", total),
			)
			return
		}
		logger.Debug("pipeline stage", slog.String("stage", string(stage)))
	}

	files := make([]qcaudio.RawAudioFile, 0, len(inputs))
	for _, path := range inputs {
		data, err := os.ReadFile(path)
		if err != nil {
			logger.Error("Failed to read input", slog.String("file", path), slog.Any("error", err))
			os.Exit(1)
		}
		files = append(files, qcaudio.RawAudioFile{Name: path, Data: data})
	}

	logger.Info("Merging recordings",
		slog.Int("inputs", len(files)),
		slog.Int("sample_rate", opts.TargetSampleRate),
		slog.Bool("preprocess", opts.Preprocess),
		slog.Bool("normalize", opts.NormalizePeak),
	)

	start := time.Now()
	result, err := qcaudio.Merge(files, opts)
	if err != nil {
		var decErr *qcaudio.DecodeError
		if errors.As(err, &decErr) {
			logger.Error("Input could not be decoded",
				slog.String("file", decErr.File),
				slog.Any("error", decErr.Err),
			)
		} else {
			logger.Error("Merge failed", slog.Any("error", err))
		}
		os.Exit(1)
	}

	if err := os.WriteFile(*outPath, result.Encoded, 0644); err != nil {
		logger.Error("Failed to write output", slog.String("file", *outPath), slog.Any("error", err))
		os.Exit(1)
	}

	logger.Info("Wrote merged audio",
		slog.String("file", *outPath),
		slog.Float64("duration_seconds", result.DurationSeconds),
		slog.Int("frames", result.FrameCount),
		slog.Duration("elapsed", time.Since(start)),
	)
}

func initLogger(cfg config.LoggingConfig) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	return slog.New(handler)
}
