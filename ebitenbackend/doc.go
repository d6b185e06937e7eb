// Package ebitenbackend runs a panorama engine on [Ebitengine]: it draws
// with ebiten images, text/v2 and vector, reads the mouse and keyboard
// through inpututil, and plays sounds through ebiten's audio package.
//
// Most programs only need [NewEngine] and [Run]:
//
//	e, loader, err := ebitenbackend.NewEngine(cfg, os.DirFS("assets"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	// ... build or load the world ...
//	if err := ebitenbackend.Run(e, loader, ebitenbackend.RunConfig{Title: "Hall"}); err != nil {
//		log.Fatal(err)
//	}
//
// [Ebitengine]: https://ebitengine.org
package ebitenbackend
