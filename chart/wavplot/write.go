package wavplot

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Renderable is anything that can draw itself onto a canvas; a composed
// figure is the usual implementation.
type Renderable interface {
	Draw(dc draw.Canvas)
}

func WriteFigure(r Renderable, width, height vg.Length, output io.Writer, format string) error {
	c, err := draw.NewFormattedCanvas(width, height, format)
	if err != nil {
		return err
	}
	r.Draw(draw.New(c))
	_, err = c.WriteTo(output)
	return err
}

func combineErrors(errors ...error) (err error) {
	for _, e := range errors {
		switch {
		case e == nil:
			// ignore
		case err == nil:
			err = e
		default:
			err = multierror.Append(err, e)
		}
	}
	return err
}

func WriteCloseFigure(r Renderable, width, height vg.Length, output io.WriteCloser, format string) (err error) {
	defer func() {
		e := output.Close()
		err = combineErrors(err, e)
	}()
	return WriteFigure(r, width, height, output, format)
}

// SaveFigure renders to a file, deriving the format from the extension
// (png, svg, pdf, eps, ...).
func SaveFigure(r Renderable, width, height vg.Length, path string) error {
	format := strings.TrimPrefix(filepath.Ext(path), ".")
	if format == "" {
		return fmt.Errorf("cannot derive image format: %s has no extension", path)
	}
	output, err := os.Create(path)
	if err != nil {
		return err
	}
	return WriteCloseFigure(r, width, height, output, format)
}
