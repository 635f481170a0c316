package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/datakit/core/config"
	"github.com/msto63/datakit/core/log"
	"github.com/msto63/datakit/internal/cli/render"
)

// app carries the state shared by all commands of one invocation
type app struct {
	cfgFile string
	verbose bool
	json    bool

	in     io.Reader
	out    io.Writer
	errOut io.Writer

	config    *config.Config
	settings  Settings
	rebindErr error
	logger    *log.Logger
	render    *render.Renderer
	timer     *log.Timer
}

// Execute runs the datakit command line
func Execute() error {
	return run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

func run(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) error {
	a := &app{in: in, out: out, errOut: errOut}
	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	err := root.ExecuteContext(ctx)
	if err != nil {
		a.fail(err)
	}
	return err
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "datakit",
		Short: "datakit - Werkzeuge für Datenaufbereitung",
		Long: `datakit bündelt kleine Helfer für Texte, Listen, Objekte,
URLs, Pfade und Datumswerte.

Befehlsgruppen:
  strings      - Texte umformen (slug, title, snake, ...)
  collections  - Listen sortieren, gruppieren, mischen
  objects      - Eigenschaften prüfen, Objekte zusammenführen
  urls         - URLs und Pfade zerlegen
  dates        - Datumswerte formatieren
  types        - Werte klassifizieren
  play         - Interaktiver Playground`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.timer != nil {
				a.timer.Stop()
			}
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "Config-Datei (default: ./datakit.toml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Verbose Output")
	root.PersistentFlags().BoolVar(&a.json, "json", false, "Ausgabe als JSON")

	root.AddCommand(
		newStringsCmd(a),
		newCollectionsCmd(a),
		newObjectsCmd(a),
		newURLsCmd(a),
		newDatesCmd(a),
		newTypesCmd(a),
		newPlayCmd(a),
		newVersionCmd(a),
	)
	return root
}

// setup loads the configuration and builds logger and renderer
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(a.cfgFile)
	if err != nil {
		return err
	}
	settings, err := bindSettings(cfg)
	if err != nil {
		return err
	}

	level := settings.Log.Level
	if a.verbose {
		level = "debug"
	}
	logger, err := log.FromSettings(level, settings.Log.Format, a.errOut)
	if err != nil {
		return err
	}

	r, err := render.New(render.Options{
		Out:         a.out,
		Err:         a.errOut,
		JSON:        a.json,
		Breakpoints: settings.Breakpoints,
	})
	if err != nil {
		return err
	}

	a.config = cfg
	a.settings = settings
	cfg.OnChange(a.rebind)
	a.logger = logger.WithCommand(cmd.CommandPath())
	a.render = r
	a.timer = a.logger.StartTimer(cmd.Name())

	a.logger.Debug("Konfiguration geladen", log.Fields{
		"file":   cfg.FilePath(),
		"layout": r.Layout(),
	})
	return nil
}

// fail reports err through the renderer when it exists. Errors raised before
// setup finished go straight to the error output.
func (a *app) fail(err error) {
	if a.render == nil {
		fmt.Fprintf(a.errOut, "Fehler: %v\n", err)
		return
	}
	a.timer.Cancel()
	a.render.Failure(err)
	a.logger.LogError(err)
}
