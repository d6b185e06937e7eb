// Package panorama is a data-driven engine for point-and-click slideshow
// adventures.
//
// A world is a set of [Slide] values (pictures) connected by [Hotspot]
// values (clickable regions that lead to another slide). Slides are grouped
// into stages that share an image folder and sounds. On top of that the
// engine provides collectible items with an inventory and closeups, on/off
// switches that rewire hotspots, text labels, movies and cutscenes, and a
// small set of transitions (plain cut, scrolls, fade).
//
// # Quick start
//
// The engine does not draw or play anything itself. It talks to a
// [Surface], a [Loader] and an [Input]; the ebitenbackend package provides
// all three on top of [Ebitengine]:
//
//	cfg := panorama.DefaultConfig()
//	e := panorama.New(cfg, loader, input)
//	hall := e.NewSlide("hall", "hall.png", panorama.SlideOptions{})
//	kitchen := e.NewSlide("kitchen", "kitchen.png", panorama.SlideOptions{})
//	hall.SetDirection(panorama.DirForward, kitchen)
//	e.Start("hall")
//
// Worlds are usually described in a YAML database instead (see the store
// package) and built with [Engine.Load].
//
// # Scene graph
//
// Everything on screen is a [Node]: a rectangle on a layer. Optional
// capabilities ([Drawer], [Highlighter], [Clicker], [Enterer], [Exiter],
// [Updater]) are discovered with type assertions, and the package helpers
// such as [DrawNode] treat a missing capability as a no-op. A [Panel] holds
// children sorted by layer; hit testing picks the topmost child containing
// the point.
//
// # Transitions and tasks
//
// Transitions never block. [Engine.Transition] and friends schedule a
// [Task] that [Engine.Update] steps once per frame. While a task runs,
// gameplay input is ignored; Escape can cancel cutscenes that allow it.
// [Engine.Settle] runs frames until the queue is empty, which is handy in
// tests together with [ScriptedInput] and [Runner].
//
// # Design mode
//
// With [Config.Design] set, right clicks go to the [Editor], every slide
// gets all five directional hotspots, Shift outlines hotspots, Ctrl+Z undoes
// the last transition, and Ctrl+S calls [Engine.OnSave].
//
// [Ebitengine]: https://ebitengine.org
package panorama
