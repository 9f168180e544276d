package drag

import (
	"math"

	"deedles.dev/wlr"
	"github.com/diamondburned/wayfire/geom"
)

// AdjustViewOnOutput settles a dropped view. Placement policies call
// it from their Done handler: it migrates the view to the drop output
// if needed, moves it so its grab anchor lands back under the drop
// point, and re-requests the view's tiled or fullscreen state at the
// workspace cell containing the drop point.
func AdjustViewOnOutput(ev DoneEvent) {
	out := ev.FocusedOutput
	if out == nil {
		return
	}
	view := ev.View

	if view.Output() != out {
		view.SetOutput(out)
	}

	size := view.Geometry().Size()
	target := geom.RectAround(size, ev.GrabPosition, ev.RelativeGrab)
	view.Move(target.Min)

	switch {
	case view.Fullscreen():
		view.RequestFullscreen(true, workspaceAt(out, ev.GrabPosition))
	case view.TiledEdges() != wlr.EdgeNone:
		view.RequestTile(view.TiledEdges(), workspaceAt(out, ev.GrabPosition))
	}
}

// AdjustViewOnSnapOff strips a view's tiled state when it is torn off
// its slot, so that it moves freely for the rest of the drag.
// Fullscreen is kept: unsetting it mid-drag breaks clients that pin
// their size to the fullscreen state.
func AdjustViewOnSnapOff(view View) {
	if view.Fullscreen() || view.TiledEdges() == wlr.EdgeNone {
		return
	}

	out := view.Output()
	if out == nil {
		return
	}
	view.RequestTile(wlr.EdgeNone, out.Workspace())
}

// workspaceAt returns the workspace cell of out containing the layout
// position p. Workspaces tile the layout in output-sized steps around
// the output's current cell.
func workspaceAt(out Output, p geom.Point[float64]) geom.Point[int] {
	og := out.LayoutGeometry()
	local := p.Sub(geom.PConv[float64](og.Min))
	return out.Workspace().Add(geom.Pt(
		int(math.Floor(local.X/float64(og.Dx()))),
		int(math.Floor(local.Y/float64(og.Dy()))),
	))
}
