// wippi-server: WebSocket voice service for the Wippi companion device.
// One connection per device, multiplexed across conversation modes backed
// by the Gemini Live API.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sameersinha-collab/echoproj/internal/config"
	"github.com/sameersinha-collab/echoproj/internal/log"
	"github.com/sameersinha-collab/echoproj/pkg/agent"
	"github.com/sameersinha-collab/echoproj/pkg/gemini"
	"github.com/sameersinha-collab/echoproj/pkg/server"
	"github.com/sameersinha-collab/echoproj/pkg/session"
	"github.com/sameersinha-collab/echoproj/pkg/story"
	"github.com/sameersinha-collab/echoproj/pkg/trigger"
)

var (
	version  = "1.0.0"
	port     = flag.Int("port", 0, "HTTP server port (overrides PORT)")
	storyCSV = flag.String("stories", "", "extra story CSV file to load")
)

func main() {
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *port != 0 {
		cfg.Port = *port
	}

	log.Init(cfg.LogLevel)
	log.Info("wippi-server starting", "version", version, "port", cfg.Port)

	agents := agent.NewRegistry()
	if cfg.AgentsFile != "" {
		if err := agents.LoadFile(cfg.AgentsFile); err != nil {
			log.Error("agents file load failed", "error", err)
			os.Exit(1)
		}
	}

	stories := story.NewLibrary()
	if *storyCSV != "" {
		st, err := story.LoadCSV(*storyCSV, "custom", "Custom Story")
		if err != nil {
			log.Error("story CSV load failed", "error", err)
			os.Exit(1)
		}
		stories.Add(st)
	}

	tuning := session.DefaultTuning()
	if cfg.TuningFile != "" {
		tuning, err = session.LoadTuning(cfg.TuningFile)
		if err != nil {
			log.Error("tuning file load failed", "error", err)
			os.Exit(1)
		}
	}

	ctx := context.Background()

	classifier, err := gemini.NewClassifier(ctx, cfg.GoogleAPIKey, cfg.ClassifierModel)
	if err != nil {
		log.Error("classifier init failed", "error", err)
		os.Exit(1)
	}

	cache, err := trigger.OpenCache(cfg.CacheDir,
		func(ctx context.Context, profile agent.VoiceProfile, message string) ([]byte, error) {
			return gemini.RenderSpeech(ctx, gemini.Config{
				APIKey:       cfg.GoogleAPIKey,
				Model:        cfg.LiveModel,
				VoiceName:    profile.VoiceName,
				LanguageCode: profile.LanguageCode,
			}, message)
		})
	if err != nil {
		log.Error("trigger cache init failed", "error", err)
		os.Exit(1)
	}
	defer cache.Close()

	deps := session.Deps{
		Opener: func(ctx context.Context, c gemini.Config) (session.Backend, error) {
			return gemini.Open(ctx, c)
		},
		Agents:     agents,
		Stories:    stories,
		Triggers:   trigger.NewService(trigger.NewRegistry(), cache),
		Classifier: classifier,
		APIKey:     cfg.GoogleAPIKey,
		LiveModel:  cfg.LiveModel,
		Tuning:     tuning,
		Timeouts: session.Timeouts{
			Chat:             cfg.ChatTimeout,
			QA:               cfg.QATimeout,
			Intro:            cfg.IntroTimeout,
			StoppedPrompt:    cfg.StoppedPrompt,
			StoppedTerminate: cfg.StoppedTerminate,
			Grace:            session.DefaultTimeouts().Grace,
		},
	}

	srv := server.New(cfg.Port, deps)

	errC := make(chan error, 1)
	go func() { errC <- srv.Listen() }()

	sigC := make(chan os.Signal, 1)
	signal.Notify(sigC, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errC:
		log.Error("server failed", "error", err)
		os.Exit(1)
	case sig := <-sigC:
		log.Info("shutting down", "signal", sig.String())
	}

	if err := srv.Shutdown(10 * time.Second); err != nil {
		log.Error("shutdown error", "error", err)
	}
	log.Info("stopped")
}
