// ============================================================================
// datakit - Werkzeuge für Datenaufbereitung
// ============================================================================
//
// Package:     cmd
// Description: URL, path and image path commands
// Author:      Mike Stoffels
// Created:     2026-09-24
// License:     MIT
// ============================================================================

package cmd

import (
	"net/url"

	"github.com/spf13/cobra"

	"github.com/msto63/datakit/core/result"
	"github.com/msto63/datakit/internal/cli/render"
	"github.com/msto63/datakit/utils/urlx"
)

func newURLsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "urls",
		Aliases: []string{"url", "u"},
		Short:   "URLs und Pfade zerlegen",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "check <wert>",
			Short: "Prüft, ob ein absoluter URL vorliegt",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.render.Value(urlx.IsURL(args[0]))
			},
		},
		&cobra.Command{
			Use:   "canonical <basis> [pfad]",
			Short: "Setzt Basis-URL und Pfad zusammen",
			Args:  cobra.RangeArgs(1, 2),
			RunE: func(cmd *cobra.Command, args []string) error {
				pathname := ""
				if len(args) == 2 {
					pathname = args[1]
				}
				res := urlx.CanonicalURL(args[0], pathname)
				return render.Print(a.render, result.Map(res, (*url.URL).String))
			},
		},
		newParentCmd(a),
		&cobra.Command{
			Use:   "segments <url|pfad>",
			Short: "Zerlegt den Pfad in Segmente",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return render.Print(a.render, urlx.PathSegments(args[0]))
			},
		},
		newImageCmd(a),
		&cobra.Command{
			Use:   "path <pfad>",
			Short: "Zeigt die Bestandteile eines Dateipfads",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				p := args[0]
				return a.render.Table([]render.Row{
					{Key: "dirname", Value: urlx.Dirname(p)},
					{Key: "filename", Value: urlx.Filename(p)},
					{Key: "lastSegment", Value: urlx.LastSegment(p)},
					{Key: "extension", Value: urlx.Extension(p)},
					{Key: "isFile", Value: urlx.IsFile(p)},
					{Key: "isDir", Value: urlx.IsDir(p)},
					{Key: "isImage", Value: urlx.IsImage(p)},
				})
			},
		},
	)
	return cmd
}

func newParentCmd(a *app) *cobra.Command {
	var pathname bool
	cmd := &cobra.Command{
		Use:   "parent <url>",
		Short: "Entfernt das letzte Pfadsegment",
		Long: `Entfernt das letzte Pfadsegment eines absoluten URL. Mit
--pathname wird nur der Pfad ausgegeben, dann sind auch relative
Pfade erlaubt.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if pathname {
				return render.Print(a.render, urlx.ParentPathname(args[0]))
			}
			return render.Print(a.render, urlx.ParentURL(args[0]))
		},
	}
	cmd.Flags().BoolVar(&pathname, "pathname", false, "Nur den Pfad ausgeben")
	return cmd
}

func newImageCmd(a *app) *cobra.Command {
	var folder string
	var social bool
	cmd := &cobra.Command{
		Use:   "image [datei]",
		Short: "Baut den Pfad eines Bildes",
		Long: `Baut den Pfad eines Bildes im Bildordner. Ohne Datei wird das
Standardbild geliefert, mit --social das Bild für soziale Medien.
Ordner und Dateinamen kommen aus dem Abschnitt [images].`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			images := a.settings.Images
			switch {
			case social:
				return a.render.Value(images.SocialDefault(folder))
			case len(args) == 0:
				return a.render.Value(images.Default(folder))
			}
			return a.render.Value(images.Path(folder, args[0]))
		},
	}
	cmd.Flags().StringVar(&folder, "folder", "", "Bildordner (default: images.folder)")
	cmd.Flags().BoolVar(&social, "social", false, "Bild für soziale Medien")
	return cmd
}
