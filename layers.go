package easel

import "fmt"

// LayerID identifies one of the stacked drawing layers of a canvas. Layers are rendered in increasing order, so later layers draw on top of earlier ones.
type LayerID int

const (
	LayerBackgroundFills LayerID = iota
	LayerBackgroundGlowing
	LayerBackground
	LayerBackgroundPoints
	LayerMidground
	LayerForegroundFills
	LayerForegroundGlowing
	LayerForeground
	LayerForegroundPoints
	LayerForegroundText

	NumLayers
)

var layerNames = [NumLayers]string{
	"backgroundFills",
	"backgroundGlowing",
	"background",
	"backgroundPoints",
	"midground",
	"foregroundFills",
	"foregroundGlowing",
	"foreground",
	"foregroundPoints",
	"foregroundText",
}

func (id LayerID) String() string {
	if id < 0 || NumLayers <= id {
		return fmt.Sprintf("LayerID(%d)", int(id))
	}
	return layerNames[id]
}

// LayerStack keeps the shapes of a canvas grouped by layer.
type LayerStack struct {
	layers [NumLayers][]*Shape
}

// Add places a shape on the given layer. Adding a shape that is already on the layer does nothing.
func (ls *LayerStack) Add(id LayerID, shape *Shape) {
	for _, s := range ls.layers[id] {
		if s == shape {
			return
		}
	}
	ls.layers[id] = append(ls.layers[id], shape)
}

// Remove takes a shape off the given layer. Removing a shape that is not on the layer does nothing.
func (ls *LayerStack) Remove(id LayerID, shape *Shape) {
	for i, s := range ls.layers[id] {
		if s == shape {
			ls.layers[id] = append(ls.layers[id][:i], ls.layers[id][i+1:]...)
			return
		}
	}
}

// Shapes returns the shapes on the given layer in drawing order.
func (ls *LayerStack) Shapes(id LayerID) []*Shape {
	return ls.layers[id]
}

// Clear removes all shapes from all layers.
func (ls *LayerStack) Clear() {
	for i := range ls.layers {
		ls.layers[i] = nil
	}
}
