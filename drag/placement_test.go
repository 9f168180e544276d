package drag_test

import (
	"testing"

	"deedles.dev/wlr"
	"github.com/diamondburned/wayfire/drag"
	"github.com/diamondburned/wayfire/geom"
)

func TestAdjustViewOnOutput(t *testing.T) {
	out := newFakeOutput("out-0", geom.Rt(0, 0, 1920, 1080))
	view := newFakeView(geom.Rt[float64](0, 0, 200, 100))
	view.output = out

	drag.AdjustViewOnOutput(drag.DoneEvent{
		FocusedOutput: out,
		View:          view,
		RelativeGrab:  geom.Pt(0.5, 0.5),
		GrabPosition:  geom.Pt[float64](500, 300),
	})

	// The anchor lands back under the drop point: 200x100 centered on
	// (500, 300) starts at (400, 250).
	if want := geom.Pt[float64](400, 250); view.geometry.Min != want {
		t.Errorf("view moved to %v, want %v", view.geometry.Min, want)
	}
	if len(view.tileRequests) != 0 || len(view.fullscreenRequests) != 0 {
		t.Errorf("floating view got a tile or fullscreen request")
	}
}

func TestAdjustViewOnOutputNoOutput(t *testing.T) {
	view := newFakeView(geom.Rt[float64](100, 100, 300, 200))
	before := view.geometry

	drag.AdjustViewOnOutput(drag.DoneEvent{
		View:         view,
		RelativeGrab: geom.Pt(0.5, 0.5),
		GrabPosition: geom.Pt[float64](500, 300),
	})

	if view.geometry != before {
		t.Errorf("view moved despite dropping over no output")
	}
}

func TestAdjustViewOnOutputMigrates(t *testing.T) {
	left := newFakeOutput("left", geom.Rt(0, 0, 1920, 1080))
	right := newFakeOutput("right", geom.Rt(1920, 0, 3840, 1080))
	view := newFakeView(geom.Rt[float64](0, 0, 200, 100))
	view.output = left

	drag.AdjustViewOnOutput(drag.DoneEvent{
		FocusedOutput: right,
		View:          view,
		RelativeGrab:  geom.Pt(0.5, 0.5),
		GrabPosition:  geom.Pt[float64](2500, 300),
	})

	if view.output != drag.Output(right) {
		t.Errorf("view not migrated to the drop output")
	}
}

func TestAdjustViewOnOutputRetiles(t *testing.T) {
	out := newFakeOutput("out-0", geom.Rt(0, 0, 1920, 1080))
	out.ws = geom.Pt(1, 0)
	view := newFakeView(geom.Rt[float64](0, 0, 200, 100))
	view.output = out
	view.tiled = wlr.EdgeLeft | wlr.EdgeTop

	// Dropped one workspace to the right of the visible one.
	drag.AdjustViewOnOutput(drag.DoneEvent{
		FocusedOutput: out,
		View:          view,
		RelativeGrab:  geom.Pt(0.5, 0.5),
		GrabPosition:  geom.Pt[float64](2000, 300),
	})

	if len(view.tileRequests) != 1 {
		t.Fatalf("got %d tile requests, want 1", len(view.tileRequests))
	}
	req := view.tileRequests[0]
	if req.edges != wlr.EdgeLeft|wlr.EdgeTop {
		t.Errorf("retiled with edges %v, want the original edges", req.edges)
	}
	if want := geom.Pt(2, 0); req.ws != want {
		t.Errorf("retiled on workspace %v, want %v", req.ws, want)
	}
}

func TestAdjustViewOnOutputFullscreen(t *testing.T) {
	out := newFakeOutput("out-0", geom.Rt(0, 0, 1920, 1080))
	view := newFakeView(geom.Rt[float64](0, 0, 1920, 1080))
	view.output = out
	view.fullscreen = true
	view.tiled = wlr.EdgeLeft

	drag.AdjustViewOnOutput(drag.DoneEvent{
		FocusedOutput: out,
		View:          view,
		RelativeGrab:  geom.Pt(0.5, 0.5),
		GrabPosition:  geom.Pt[float64](960, 540),
	})

	// Fullscreen wins over tiled.
	if len(view.fullscreenRequests) != 1 {
		t.Fatalf("got %d fullscreen requests, want 1", len(view.fullscreenRequests))
	}
	if !view.fullscreenRequests[0].fs {
		t.Errorf("fullscreen request unset the state")
	}
	if len(view.tileRequests) != 0 {
		t.Errorf("fullscreen view also got a tile request")
	}
}

func TestAdjustViewOnSnapOff(t *testing.T) {
	out := newFakeOutput("out-0", geom.Rt(0, 0, 1920, 1080))
	out.ws = geom.Pt(2, 1)

	tiled := newFakeView(geom.Rt[float64](0, 0, 960, 1080))
	tiled.output = out
	tiled.tiled = wlr.EdgeLeft
	drag.AdjustViewOnSnapOff(tiled)
	if len(tiled.tileRequests) != 1 {
		t.Fatalf("got %d tile requests, want 1", len(tiled.tileRequests))
	}
	if req := tiled.tileRequests[0]; req.edges != wlr.EdgeNone || req.ws != out.ws {
		t.Errorf("snap-off request = %+v, want EdgeNone on %v", req, out.ws)
	}

	fs := newFakeView(geom.Rt[float64](0, 0, 1920, 1080))
	fs.output = out
	fs.fullscreen = true
	fs.tiled = wlr.EdgeLeft
	drag.AdjustViewOnSnapOff(fs)
	if len(fs.tileRequests) != 0 {
		t.Errorf("fullscreen view lost its state on snap-off")
	}

	floating := newFakeView(geom.Rt[float64](100, 100, 300, 200))
	floating.output = out
	drag.AdjustViewOnSnapOff(floating)
	if len(floating.tileRequests) != 0 {
		t.Errorf("floating view got a tile request on snap-off")
	}
}
