// ttfslots loads a small set of TrueType fonts at fixed sizes, renders
// a few lines of text into textures and draws them from an animated
// render loop, some of them rotating over time.
//
// The pieces live in subpackages:
//  - font: font files loaded at fixed pixel sizes, grouped in a collection.
//  - texture: a cache of uploaded textures indexed by slot id.
//  - scene: the render loop and a software canvas.
//  - platform: the Ebitengine window and canvas (or a headless runner
//    when building with the gtxt tag).
//
// [Setup] wires the first three together:
//   demo, err := ttfslots.Setup("assets", platform.NewCreator())
//   if err != nil { ... }
//   defer demo.Close()
//   err = platform.Run(platform.Config{}, demo)
package ttfslots
