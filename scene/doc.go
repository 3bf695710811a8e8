// The scene subpackage contains the render loop that draws cached
// textures every frame, rotating some of them by an angle that keeps
// growing from frame to frame.
//
// The loop doesn't know about windows or GPUs. It talks to a [Canvas]
// and polls events from an [EventSource]; the platform package provides
// the Ebitengine implementations and [ImageCanvas] provides a software
// one.
package scene
