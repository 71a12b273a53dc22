package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kingpin/v2"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"

	"github.com/llehouerou/tinywave/internal/assets"
	"github.com/llehouerou/tinywave/internal/config"
	"github.com/llehouerou/tinywave/internal/host"
	"github.com/llehouerou/tinywave/internal/icons"
	"github.com/llehouerou/tinywave/internal/logging"
	"github.com/llehouerou/tinywave/internal/mpris"
	"github.com/llehouerou/tinywave/internal/notify"
	"github.com/llehouerou/tinywave/internal/playback"
	"github.com/llehouerou/tinywave/internal/player"
	"github.com/llehouerou/tinywave/internal/stderr"
	"github.com/llehouerou/tinywave/internal/ui"
	"github.com/llehouerou/tinywave/internal/ui/headerbar"
)

const appName = "tinywave"

var (
	app        = kingpin.New(appName, "Play a single track from the terminal.")
	configPath = app.Flag("config", "Path to config file (default: XDG config, then ./config.toml)").Short('c').String()
	trackPath  = app.Flag("track", "Audio file to play instead of the bundled track").Short('t').String()
	verbose    = app.Flag("verbose", "Enable debug logging").Short('v').Bool()
	noNotify   = app.Flag("no-notify", "Disable the desktop notification").Bool()
)

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	if err := run(); err != nil {
		stderr.WriteOriginal(fmt.Sprintf("Error: %v\n", err))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logPath, err := cfg.LogFile()
	if err != nil {
		return err
	}
	logger, err := logging.Open(logging.Config{Level: cfg.LogLevel(), File: logPath})
	if err != nil {
		return err
	}
	defer logger.Close()
	log := logger.Logger

	// Capture stderr before the audio device is opened.
	if err := stderr.Start(log); err != nil {
		log.Warn().Err(err).Msg("stderr capture unavailable")
	}
	defer stderr.Stop()

	icons.Init(cfg.Icons)

	res := assets.Track()
	if cfg.HasTrack() {
		if !player.IsSupported(cfg.Track) {
			return errors.Newf("unsupported track format: %s", cfg.Track)
		}
		res = player.FileResource(cfg.Track)
	}

	engine := player.New()
	engine.SetVolume(cfg.VolumeLevel())

	notifier := notificationBackend(cfg, log)
	defer func() {
		if err := notifier.Shutdown(); err != nil {
			log.Debug().Err(err).Msg("notifier shutdown")
		}
	}()

	presenter := notify.NewPresenter(notifier, notify.Options{
		Title: cfg.NotificationTitle(),
		Icon:  cfg.Notifications.Icon,
	}, log.With().Str("component", "notify").Logger())

	h := host.New(engine, res, host.Options{
		Session: playback.Options{
			PollInterval: cfg.PollInterval(),
			Surface:      presenter,
		},
		Logger: log,
	})
	defer h.Close()

	presenter.OnAction(func(action string) {
		h.Deliver(action)
	})

	binding, err := h.Bind()
	if err != nil {
		return errors.Wrap(err, "bind playback host")
	}
	defer binding.Unbind()

	if cfg.MPRISEnabled() {
		adapter, err := mpris.New(appName, headerbar.Title, binding)
		if err != nil {
			log.Warn().Err(err).Msg("MPRIS unavailable")
		} else {
			defer adapter.Close()
		}
	}

	model, err := tea.NewProgram(ui.New(binding), tea.WithAltScreen()).Run()
	if err != nil {
		return errors.Wrap(err, "run program")
	}
	if m, ok := model.(ui.Model); ok && m.Fatal() != nil {
		return m.Fatal()
	}
	return nil
}

func notificationBackend(cfg *config.Config, log zerolog.Logger) notify.Notifier {
	if !cfg.NotificationsEnabled() {
		return notify.Disabled()
	}
	n, err := notify.New(appName)
	if err != nil {
		log.Warn().Err(err).Msg("desktop notifications unavailable")
		return notify.Disabled()
	}
	return n
}

// loadConfig reads the config files and applies command-line overrides.
func loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if *configPath != "" {
		cfg, err = config.LoadPath(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	if *trackPath != "" {
		cfg.Track = *trackPath
	}
	if *verbose {
		cfg.Log.Level = "debug"
	}
	if *noNotify {
		disabled := false
		cfg.Notifications.Enabled = &disabled
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
