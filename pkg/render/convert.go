package render

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/matzehuels/sitegrid/pkg/errors"
)

// converter is the librsvg command line tool. Tests may replace it.
var converter = "rsvg-convert"

const installHint = "Install with:\n  macOS:  brew install librsvg\n  Linux:  apt install librsvg2-bin"

// ToPDF converts SVG pages to a single PDF with one page per input, in order.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func ToPDF(ctx context.Context, pages [][]byte) ([]byte, error) {
	if len(pages) == 0 {
		return nil, errors.New(errors.ErrCodeInternal, "no pages to convert")
	}
	if len(pages) == 1 {
		return rsvgConvert(ctx, pages[0], "pdf")
	}

	dir, err := os.MkdirTemp("", "sitegrid-pages-")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeOutputWrite, err, "create temp dir")
	}
	defer os.RemoveAll(dir)

	args := []string{"-f", "pdf"}
	for i, p := range pages {
		path := filepath.Join(dir, fmt.Sprintf("page-%03d.svg", i+1))
		if err := os.WriteFile(path, p, 0o600); err != nil {
			return nil, errors.Wrap(errors.ErrCodeOutputWrite, err, "write page %d", i+1)
		}
		args = append(args, path)
	}
	return run(ctx, nil, "pdf", args...)
}

// ToPNG converts one SVG page to PNG with the given scale factor.
// Scale of 2.0 produces a 2x resolution image.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func ToPNG(ctx context.Context, svg []byte, scale float64) ([]byte, error) {
	if scale <= 0 {
		scale = 1
	}
	return rsvgConvert(ctx, svg, "png", "-z", fmt.Sprintf("%.2f", scale))
}

// rsvgConvert pipes one SVG document through rsvg-convert.
func rsvgConvert(ctx context.Context, svg []byte, format string, extraArgs ...string) ([]byte, error) {
	args := append([]string{"-f", format}, extraArgs...)
	return run(ctx, bytes.NewReader(svg), format, args...)
}

func run(ctx context.Context, stdin *bytes.Reader, format string, args ...string) ([]byte, error) {
	if _, err := exec.LookPath(converter); err != nil {
		return nil, errors.Wrap(errors.ErrCodeUnsupported, err, "%s export requires librsvg. %s", format, installHint)
	}

	cmd := exec.CommandContext(ctx, converter, args...)
	if stdin != nil {
		cmd.Stdin = stdin
	}

	var out, errBuf bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errBuf

	if err := cmd.Run(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeOutputWrite, err, "rsvg-convert: %s", errBuf.String())
	}
	return out.Bytes(), nil
}
