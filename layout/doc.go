// Package layout turns computed analytic panels into a deterministic
// composition tree the rendering layer can consume.
//
// A Panel is one chart's worth of content, opaque to this package apart from
// its role: overlay panels are layered onto a host panel, standalone panels
// occupy their own slot. A Node is either a leaf holding one panel or a
// split holding ordered children with relative-size weights along a
// stacking axis. Trees are built fresh per composition call and never
// mutated afterwards.
//
// The Composer encodes the fixed business rules of each dashboard shape:
// which panels appear, under which data-availability thresholds, and how the
// slots are proportioned. Composition is pure: the same panels and rules
// always produce the same tree.
package layout
