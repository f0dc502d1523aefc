// Package paper is the rendering and input-dispatch core of a widget
// toolkit for e-paper displays.
//
// # Overview
//
// E-paper panels can only be refreshed in a few expensive ways: a slow
// full-screen flash that removes ghosting, a medium-cost greyscale region
// refresh, and a fast monochrome refresh suited to live pen strokes. paper
// lets an immediate-style widget tree be rendered every frame while only
// redrawing pixels whose content changed, tracking exactly which regions
// need a physical refresh and with which mode, and routing taps and ink to
// the widget that drew the region under them.
//
// # Architecture
//
// The module is organized into:
//   - geom: integer regions and cut sides
//   - ink: timestamped multi-stroke pen input
//   - display: the physical device (framebuffer, refresh modes), plus an
//     in-memory device and a terminal emulator (display/term)
//   - gesture: pointer event disambiguation into taps, strokes and ink
//   - ui: the content tree, render cursors (Frame), annotations, refresh
//     scheduling and hit-testing
//   - widgets: stacking, paging, text, images and ink areas
//   - dollar: $P point-cloud gesture matching
//   - app: the single-threaded event loop
//   - config: TOML configuration
//
// # Coordinate System
//
// All regions are in device pixel space:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// # Logging
//
// paper is silent by default. Call [SetLogger] to route diagnostics to a
// [log/slog] handler.
package paper
