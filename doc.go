// Package spriteframe is a sprite placement editor for [Ebitengine].
//
// An [Editor] holds a fixed-size [Frame] and an ordered list of [Sprite]
// values. Each sprite is an image stretched to a rectangle in frame units.
// New sprites are auto-fit into the frame, keeping their aspect ratio. The
// pointer moves a sprite by dragging its interior and resizes it by dragging
// an edge or corner within the handle margin.
//
// # Quick start
//
// The simplest way to get started is [Run], which opens a window and game
// loop for you:
//
//	ed := spriteframe.NewEditor(spriteframe.DefaultFrame)
//	ed.AddSprite(img)
//	if err := spriteframe.Run(ed, spriteframe.DefaultRunConfig()); err != nil {
//		log.Fatal(err)
//	}
//
// Image files dropped onto the window are decoded and added as sprites.
//
// # Driving the editor
//
// Hosts feed pointer transitions in frame units:
//
//	ed.PointerDown(p)
//	ed.PointerMove(delta, p)
//	ed.PointerUp()
//
// [PointerCapture] turns raw pointer samples into those calls and keeps the
// drag alive until the button is released, wherever the pointer is.
// [Editor.OnChange] reports every mutation so hosts can redraw lazily.
//
// # Drawing
//
// [Editor.Compose] records two [DrawList] passes. The background pass shows
// every sprite unclipped and is meant to be dimmed. The foreground pass shows
// the frame, the sprites clipped to it, and the selection overlay. A
// [Renderer] replays a list onto any [Surface]:
//
//   - [EbitenSurface] draws onto an *ebiten.Image on the GPU.
//   - [RasterSurface] rasterizes onto an *image.RGBA with golang.org/x/image.
//
// The renderer keeps a stack of clip and line-width state. Every primitive
// runs in its own scope, and clip scopes must balance.
//
// [Export] renders only what lies inside the frame to a PNG. A [Script]
// replays recorded pointer interactions, which makes headless rendering and
// tests repeatable.
//
// The term subpackage runs the same editor inside a terminal.
//
// [Ebitengine]: https://ebitengine.org
package spriteframe
