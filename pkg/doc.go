// Package pkg provides the libraries behind sitegrid, a renderer for
// construction schedules.
//
// # Overview
//
// sitegrid turns a schedule (milestones, contractor tasks and daily manpower
// per trade) into two printable pages: a calendar grid with stacked task bars
// and milestone markers, and a stacked manpower histogram with summary
// metrics.
//
// # Architecture
//
//	Schedule file (json, toml, yaml)
//	         ↓
//	    [io] package (decode, count unusable records)
//	         ↓
//	    [calendar], [lanes], [shade], [manpower], [histogram] (geometry)
//	         ↓
//	    [compose] package (both pages onto a [render.Canvas])
//	         ↓
//	    [render] package (SVG pages, PDF/PNG via rsvg-convert)
//
// [pipeline] runs these stages for the CLI and reports them through
// [observability] hooks. [config] loads page geometry, palettes and titles.
//
// # Quick Start
//
//	in, _ := io.ImportSchedule("schedule.yaml")
//	rng, _ := in.Span()
//	canvas := render.NewSVG(compose.A3Width, compose.A3Height, fonts.Load("."))
//	_, err := compose.Render(canvas, compose.Document{
//	    Range:      rng,
//	    Milestones: in.Milestones,
//	    Tasks:      in.Tasks,
//	    Manpower:   in.Manpower,
//	}, compose.DefaultSettings())
//	pdf, err := render.ToPDF(ctx, canvas.Pages())
//
// [io]: github.com/matzehuels/sitegrid/pkg/io
// [calendar]: github.com/matzehuels/sitegrid/pkg/calendar
// [lanes]: github.com/matzehuels/sitegrid/pkg/lanes
// [shade]: github.com/matzehuels/sitegrid/pkg/shade
// [manpower]: github.com/matzehuels/sitegrid/pkg/manpower
// [histogram]: github.com/matzehuels/sitegrid/pkg/histogram
// [compose]: github.com/matzehuels/sitegrid/pkg/compose
// [render]: github.com/matzehuels/sitegrid/pkg/render
// [render.Canvas]: github.com/matzehuels/sitegrid/pkg/render#Canvas
// [pipeline]: github.com/matzehuels/sitegrid/pkg/pipeline
// [observability]: github.com/matzehuels/sitegrid/pkg/observability
// [config]: github.com/matzehuels/sitegrid/pkg/config
package pkg
