// ============================================================================
// datakit - Werkzeuge für Datenaufbereitung
// ============================================================================
//
// Package:     cmd
// Description: CLI command for the datakit playground TUI
// Author:      Mike Stoffels
// Created:     2026-09-24
// License:     MIT
// ============================================================================

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/datakit/core/config"
	"github.com/msto63/datakit/core/log"
	"github.com/msto63/datakit/internal/tui/breakpoint"
	"github.com/msto63/datakit/internal/tui/playground"
)

func newPlayCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "play",
		Aliases: []string{"playground", "tui"},
		Short:   "Startet den interaktiven Playground",
		Long: `Startet den interaktiven datakit Playground.

Der Playground wendet String-Operationen live auf die Eingabe an.
Das Layout folgt den Breakpoints aus der Konfiguration.

Tastenkürzel:
  Tab / Shift+Tab   Fokus wechseln
  ↑ / ↓             Operation wählen
  Ctrl+R            Konfiguration neu laden
  F1                Hilfe
  Esc / Ctrl+C      Beenden`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return playground.Run(playground.Config{
				Breakpoints: a.settings.Breakpoints,
				Capitalize:  a.settings.CapitalizeMode(),
				Reload:      a.reloadBreakpoints,
				Logger:      a.logger,
			})
		},
	}
}

// reloadBreakpoints re-reads the configuration file and returns the bound
// breakpoints. An unchanged file returns the current ones.
func (a *app) reloadBreakpoints() ([]breakpoint.Breakpoint, error) {
	if _, err := a.config.Reload(); err != nil {
		return nil, err
	}
	if err := a.rebindErr; err != nil {
		a.rebindErr = nil
		return nil, err
	}
	return a.settings.Breakpoints, nil
}

// rebind is registered as change handler of the loaded configuration. A
// failed bind keeps the previous settings.
func (a *app) rebind(cfg *config.Config) {
	settings, err := bindSettings(cfg)
	if err != nil {
		a.rebindErr = err
		a.logger.WarnWithErr("Neu geladene Konfiguration verworfen", err, log.Fields{
			"file": cfg.FilePath(),
		})
		return
	}
	a.settings = settings
	a.logger.Info("Konfiguration neu geladen", log.Fields{
		"file":        cfg.FilePath(),
		"breakpoints": len(settings.Breakpoints),
	})
}
