// Package imui is an immediate-mode UI layout engine.
//
// Every frame the caller rebuilds a tree of boxes through nested calls on a
// [Context]:
//
//	ctx.Begin(width, height)
//	ctx.Open(imui.BoxConfig{Direction: imui.LeftToRight, SizingX: imui.SizingGrow})
//	ctx.Text("hello", style)
//	ctx.Close()
//	ctx.End()
//
// End sizes each box per axis (fixed, fit to children, or grow into the
// parent's leftover space), positions the tree, and walks it in depth-first
// order through a caller-supplied [Backend]. Boxes have no identity across
// frames; hover and active state belong to the caller, driven by
// [Context.HitTest] on the previous frame's tree.
//
// Measurement and drawing are delegated to the backend. The backend/raster
// and backend/term packages provide PNG and terminal implementations.
package imui
