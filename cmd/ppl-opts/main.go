package main

import (
	"context"
	"fmt"
	stdlog "log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/alecthomas/kingpin/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Antonboom/ppl-compile-opts/configs"
	"github.com/Antonboom/ppl-compile-opts/internal/exporter"
	"github.com/Antonboom/ppl-compile-opts/options"
)

var (
	app = kingpin.New("ppl-opts", "Pulse-program compiler options tool")

	configPath = app.Flag("config", "Path to options file (default: $"+options.EnvVar+" or well-known locations)").
			Short('c').String()
	logLevel = app.Flag("log-level", "Log level").Default("info").String()

	showCmd    = app.Command("show", "Print loaded options")
	showFormat = showCmd.Flag("format", "Output format").Default(string(options.FormatTOML)).
			Enum(string(options.FormatTOML), string(options.FormatJSON), string(options.FormatYAML))

	checkCmd = app.Command("check", "Load and validate options")

	pathCmd = app.Command("path", "Print resolved options file location")

	initCmd   = app.Command("init", "Write example options file")
	initForce = initCmd.Flag("force", "Overwrite existing file").Bool()
	initDest  = initCmd.Arg("dest", "Destination path").Default(options.FileName).String()

	serveCmd  = app.Command("serve", "Expose loaded options as Prometheus metrics")
	serveAddr = serveCmd.Flag("addr", "Listen address").Default(":9464").String()
)

func main() {
	cmd := kingpin.MustParse(app.Parse(os.Args[1:]))

	lvl, err := zerolog.ParseLevel(strings.ToLower(*logLevel))
	mustNil(err)
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	switch cmd {
	case showCmd.FullCommand():
		_, opts := load()
		format, err := options.ParseFormat(*showFormat)
		mustNil(err)
		mustNil(options.Encode(os.Stdout, opts, format))

	case checkCmd.FullCommand():
		path, opts := load()
		mustNil(options.Validate(opts))
		log.Info().Str("path", path).Msg("options are valid")

	case pathCmd.FullCommand():
		fmt.Println(resolvePath())

	case initCmd.FullCommand():
		mustNil(configs.WriteExample(*initDest, *initForce))
		log.Info().Str("path", *initDest).Msg("example options written")

	case serveCmd.FullCommand():
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		path, opts := load()
		reg := prometheus.NewRegistry()
		mustNil(exporter.Register(reg, path, opts))
		mustNil(runMetrics(ctx, *serveAddr, reg))
		log.Info().Msg("shutdown")
	}
}

func resolvePath() string {
	if *configPath != "" {
		return *configPath
	}
	path, err := options.Locate()
	mustNil(err)
	return path
}

func load() (string, options.Options) {
	path := resolvePath()
	opts, err := options.LoadFromPath(path)
	mustNil(err)
	log.Debug().Str("path", path).Msg("options loaded")
	return path, opts
}

func mustNil(err error) {
	if err != nil {
		stdlog.Panic(err)
	}
}
