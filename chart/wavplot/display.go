package wavplot

import (
	"image"
	"image/png"
	"log"
	"os"

	"gioui.org/app"
	"gioui.org/io/key"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// FigureWidget shows a rendered figure in a window, re-rasterizing it off
// the UI goroutine whenever the window is resized.
type FigureWidget struct {
	Figure     Renderable
	DPI        int
	ExportPath string
	AdjWidth   vg.Length
	AdjHeight  vg.Length

	Busy  bool
	Ready chan image.Image
	Image image.Image
}

func (p *FigureWidget) GenImage(w, h vg.Length) image.Image {
	c := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(p.DPI))
	p.Figure.Draw(draw.New(c))
	return c.Image()
}

func (p *FigureWidget) OnReady(ready image.Image) {
	if !p.Busy {
		panic("should be busy")
	}
	p.Image = ready
	p.Busy = false
}

func (p *FigureWidget) GetImage(size image.Point) image.Image {
	wAdjusted := vg.Points(float64(size.X) * vg.Inch.Points() / float64(p.DPI))
	hAdjusted := vg.Points(float64(size.Y) * vg.Inch.Points() / float64(p.DPI))
	if p.Image == nil {
		p.Image = p.GenImage(wAdjusted, hAdjusted)
		p.AdjWidth = wAdjusted
		p.AdjHeight = hAdjusted
	} else if p.AdjWidth != wAdjusted || p.AdjHeight != hAdjusted {
		if !p.Busy {
			p.Busy = true
			go func() {
				p.Ready <- p.GenImage(wAdjusted, hAdjusted)
			}()
			p.AdjWidth = wAdjusted
			p.AdjHeight = hAdjusted
		}
	}

	return p.Image
}

func (p *FigureWidget) Layout(gtx layout.Context) layout.Dimensions {
	defer op.Save(gtx.Ops).Load()

	clip.Rect{
		Max: image.Point{
			X: gtx.Constraints.Max.X,
			Y: gtx.Constraints.Max.Y,
		},
	}.Add(gtx.Ops)
	paint.NewImageOp(p.GetImage(gtx.Constraints.Max)).Add(gtx.Ops)
	paint.PaintOp{}.Add(gtx.Ops)

	return layout.Dimensions{Size: gtx.Constraints.Max}
}

func (p *FigureWidget) Export() {
	if p.ExportPath != "" && p.Image != nil {
		f, err := os.Create(p.ExportPath)
		if err != nil {
			log.Fatal(err)
		}
		err = png.Encode(f, p.Image)
		if err != nil {
			log.Fatal(err)
		}
		err = f.Close()
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("Diagram exported to %s", p.ExportPath)
	}
}

// DisplayFigure opens a window showing the figure. Pressing E exports a
// PNG to exportPath (if non-empty); Q or Escape closes the window.
func DisplayFigure(f Renderable, exportPath string) error {
	widget := &FigureWidget{
		Figure:     f,
		DPI:        128,
		ExportPath: exportPath,
		Ready:      make(chan image.Image),
	}

	go func() {
		win := app.NewWindow(
			app.Title("Sequence Diagram"),
			app.Size(
				unit.Px(1024),
				unit.Px(768),
			),
		)
		defer win.Close()

		for {
			select {
			case ready := <-widget.Ready:
				widget.OnReady(ready)
				win.Invalidate()
			case e := <-win.Events():
				switch e := e.(type) {
				case system.FrameEvent:
					ops := new(op.Ops)
					gtx := layout.NewContext(ops, e)
					layout.UniformInset(unit.Dp(30)).Layout(gtx, widget.Layout)
					e.Frame(ops)
				case key.Event:
					switch e.Name {
					case "Q", key.NameEscape:
						win.Close()
					case "E":
						if e.State == key.Press {
							widget.Export()
						}
					}
				case system.DestroyEvent:
					os.Exit(0)
				}
			}
		}
	}()

	app.Main()
	return nil
}
