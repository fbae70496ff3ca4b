// Package layout implements the per-frame box tree and its layout passes.
//
// A frame is built into a fixed-capacity [Store] through a [Builder]
// (Begin, Open, Text, Close). [Compute] then sizes every box bottom-up
// ([FitSizing]), distributes leftover space to grow boxes top-down
// ([GrowSizing]) and assigns absolute positions ([Position]), each pass run
// once per [Axis]. [Store.HitTest] searches the positioned tree.
//
// Types are re-exported through the root imui package for public consumption.
package layout
