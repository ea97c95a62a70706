//go:build !af_no_graphics

package af

import (
	"runtime"
	"sync/atomic"

	"github.com/rs/zerolog/log"

	"github.com/23skdu/arrayfire-go/internal/native"
)

func init() { registerFeature("graphics") }

// Cell addresses one grid cell of a window. Draw calls with a nil cell
// render into the whole window.
type Cell struct {
	Row, Col int
	Title    string
	ColorMap ColorMap
}

func (c *Cell) native() *native.Cell {
	if c == nil {
		return nil
	}
	return &native.Cell{Row: c.Row, Col: c.Col, Title: c.Title, ColorMap: int(c.ColorMap)}
}

// Window is a Forge rendering window.
type Window struct {
	h atomic.Uintptr
}

func (w *Window) finalize() {
	if h := native.Handle(w.h.Swap(0)); h != 0 {
		if c := lib().DestroyWindow(h); c != native.Success {
			log.Debug().Int32("code", int32(c)).Msg("af: window finalizer destroy failed")
		}
	}
}

func (w *Window) handle() (native.Handle, error) {
	if w == nil {
		return 0, ErrReleased
	}
	h := native.Handle(w.h.Load())
	if h == 0 {
		return 0, ErrReleased
	}
	return h, nil
}

// NewWindow opens a window of the given size.
func NewWindow(width, height int, title string) (*Window, error) {
	h, c := lib().CreateWindow(width, height, title)
	if err := check("create_window", c); err != nil {
		return nil, err
	}
	w := &Window{}
	w.h.Store(uintptr(h))
	runtime.SetFinalizer(w, (*Window).finalize)
	return w, nil
}

// Destroy closes the window once; later calls return nil.
func (w *Window) Destroy() error {
	if w == nil {
		return nil
	}
	h := native.Handle(w.h.Swap(0))
	if h == 0 {
		return nil
	}
	runtime.SetFinalizer(w, nil)
	return check("destroy_window", lib().DestroyWindow(h))
}

func (w *Window) call(op string, f func(native.Handle) native.Code) error {
	h, err := w.handle()
	if err != nil {
		return err
	}
	defer runtime.KeepAlive(w)
	return check(op, f(h))
}

// draw resolves arrs and runs f with the window handle first.
func (w *Window) draw(op string, f func(win native.Handle, hs []native.Handle) native.Code, arrs ...*Array) error {
	hs, err := handles(arrs...)
	if err != nil {
		return err
	}
	defer runtime.KeepAlive(arrs)
	return w.call(op, func(h native.Handle) native.Code { return f(h, hs) })
}

func (w *Window) SetPosition(x, y uint32) error {
	return w.call("set_position", func(h native.Handle) native.Code { return lib().SetPosition(h, x, y) })
}

func (w *Window) SetTitle(title string) error {
	return w.call("set_title", func(h native.Handle) native.Code { return lib().SetTitle(h, title) })
}

func (w *Window) SetSize(width, height uint32) error {
	return w.call("set_size", func(h native.Handle) native.Code { return lib().SetSize(h, width, height) })
}

func (w *Window) SetVisibility(visible bool) error {
	return w.call("set_visibility", func(h native.Handle) native.Code { return lib().SetVisibility(h, visible) })
}

// Grid splits the window into rows x cols cells.
func (w *Window) Grid(rows, cols int) error {
	return w.call("grid", func(h native.Handle) native.Code { return lib().Grid(h, rows, cols) })
}

// Show swaps buffers after a round of draw calls on cells.
func (w *Window) Show() error { return w.call("show", lib().Show) }

func (w *Window) IsClosed() (bool, error) {
	var closed bool
	err := w.call("is_window_closed", func(h native.Handle) native.Code {
		var c native.Code
		closed, c = lib().IsWindowClosed(h)
		return c
	})
	return closed, err
}

func (w *Window) DrawImage(in *Array, cell *Cell) error {
	return w.draw("draw_image", func(h native.Handle, hs []native.Handle) native.Code {
		return lib().DrawImage(h, hs[0], cell.native())
	}, in)
}

func (w *Window) DrawPlot2(x, y *Array, cell *Cell) error {
	return w.draw("draw_plot_2d", func(h native.Handle, hs []native.Handle) native.Code {
		return lib().DrawPlot2(h, hs[0], hs[1], cell.native())
	}, x, y)
}

func (w *Window) DrawPlot3(x, y, z *Array, cell *Cell) error {
	return w.draw("draw_plot_3d", func(h native.Handle, hs []native.Handle) native.Code {
		return lib().DrawPlot3(h, hs[0], hs[1], hs[2], cell.native())
	}, x, y, z)
}

// DrawPlotN plots points given as an n x 2 or n x 3 array.
func (w *Window) DrawPlotN(points *Array, cell *Cell) error {
	return w.draw("draw_plot_nd", func(h native.Handle, hs []native.Handle) native.Code {
		return lib().DrawPlotN(h, hs[0], cell.native())
	}, points)
}

func (w *Window) DrawScatter2(x, y *Array, marker MarkerType, cell *Cell) error {
	return w.draw("draw_scatter_2d", func(h native.Handle, hs []native.Handle) native.Code {
		return lib().DrawScatter2(h, hs[0], hs[1], int(marker), cell.native())
	}, x, y)
}

func (w *Window) DrawScatter3(x, y, z *Array, marker MarkerType, cell *Cell) error {
	return w.draw("draw_scatter_3d", func(h native.Handle, hs []native.Handle) native.Code {
		return lib().DrawScatter3(h, hs[0], hs[1], hs[2], int(marker), cell.native())
	}, x, y, z)
}

func (w *Window) DrawScatterN(points *Array, marker MarkerType, cell *Cell) error {
	return w.draw("draw_scatter_nd", func(h native.Handle, hs []native.Handle) native.Code {
		return lib().DrawScatterN(h, hs[0], int(marker), cell.native())
	}, points)
}

// DrawHist draws the bin counts of Histogram spread over [min, max].
func (w *Window) DrawHist(x *Array, min, max float64, cell *Cell) error {
	return w.draw("draw_hist", func(h native.Handle, hs []native.Handle) native.Code {
		return lib().DrawHist(h, hs[0], min, max, cell.native())
	}, x)
}

func (w *Window) DrawSurface(xVals, yVals, s *Array, cell *Cell) error {
	return w.draw("draw_surface", func(h native.Handle, hs []native.Handle) native.Code {
		return lib().DrawSurface(h, hs[0], hs[1], hs[2], cell.native())
	}, xVals, yVals, s)
}

func (w *Window) DrawVectorField2(xPoints, yPoints, xDirs, yDirs *Array, cell *Cell) error {
	return w.draw("draw_vector_field_2d", func(h native.Handle, hs []native.Handle) native.Code {
		return lib().DrawVectorField2(h, hs[0], hs[1], hs[2], hs[3], cell.native())
	}, xPoints, yPoints, xDirs, yDirs)
}

func (w *Window) DrawVectorFieldN(points, dirs *Array, cell *Cell) error {
	return w.draw("draw_vector_field_nd", func(h native.Handle, hs []native.Handle) native.Code {
		return lib().DrawVectorFieldN(h, hs[0], hs[1], cell.native())
	}, points, dirs)
}

// SetAxesLimitsCompute fits the axes to the data in x, y and optionally z.
func (w *Window) SetAxesLimitsCompute(x, y, z *Array, exact bool, cell *Cell) error {
	arrs := []*Array{x, y}
	if z != nil {
		arrs = append(arrs, z)
	}
	return w.draw("set_axes_limits_compute", func(h native.Handle, hs []native.Handle) native.Code {
		var zh native.Handle
		if len(hs) == 3 {
			zh = hs[2]
		}
		return lib().SetAxesLimitsCompute(h, hs[0], hs[1], zh, exact, cell.native())
	}, arrs...)
}

func (w *Window) SetAxesLimits2(xmin, xmax, ymin, ymax float32, exact bool, cell *Cell) error {
	return w.call("set_axes_limits_2d", func(h native.Handle) native.Code {
		return lib().SetAxesLimits2(h, xmin, xmax, ymin, ymax, exact, cell.native())
	})
}

func (w *Window) SetAxesLimits3(xmin, xmax, ymin, ymax, zmin, zmax float32, exact bool, cell *Cell) error {
	return w.call("set_axes_limits_3d", func(h native.Handle) native.Code {
		return lib().SetAxesLimits3(h, xmin, xmax, ymin, ymax, zmin, zmax, exact, cell.native())
	})
}

func (w *Window) SetAxesTitles(x, y, z string, cell *Cell) error {
	return w.call("set_axes_titles", func(h native.Handle) native.Code {
		return lib().SetAxesTitles(h, x, y, z, cell.native())
	})
}

// SetAxesLabelFormat sets printf-style formats for the tick labels.
func (w *Window) SetAxesLabelFormat(x, y, z string, cell *Cell) error {
	return w.call("set_axes_label_format", func(h native.Handle) native.Code {
		return lib().SetAxesLabelFormat(h, x, y, z, cell.native())
	})
}
