// Package menu implements the right-click context menu: the menu tree bound
// to viewer actions and a popup that lays it out, tracks hover and
// dispatches clicks.
package menu

import (
	"github.com/Faultbox/sceneview/internal/engine/lighting"
	"github.com/Faultbox/sceneview/internal/interaction"
	"github.com/Faultbox/sceneview/internal/scene"
)

// Actions are the operations reachable from the menu.
// *interaction.Controller satisfies it.
type Actions interface {
	ToggleGlobalAmbient()
	ToggleLight(i int)
	SelectLight(i int)

	ToggleTexture()
	SetFloorTexture(i int)
	SetTextureFilter(i int)
	SetFloorMaterial(i int)

	SetShading(flat bool)
	SetInteractionMode(m interaction.Mode)

	ToggleAnimateModel()
	ToggleAnimateCamera()
	ToggleAnimateLight()

	SelectObject(o interaction.Object)
}

var _ Actions = (*interaction.Controller)(nil)

// Item is a leaf with an Action or a submenu.
type Item struct {
	Label  string
	Action func(Actions)
	Sub    *Menu
}

// Menu is an ordered list of items.
type Menu struct {
	Items []Item
}

func leaf(label string, fn func(Actions)) Item {
	return Item{Label: label, Action: fn}
}

func sub(label string, items ...Item) Item {
	return Item{Label: label, Sub: &Menu{Items: items}}
}

// Tree builds the context menu.
func Tree() *Menu {
	moveLight := sub("Move Light",
		leaf("None", func(a Actions) { a.SelectLight(interaction.NoLight) }),
		leaf("Point Light", func(a Actions) { a.SelectLight(lighting.PointIndex) }),
		leaf("Spotlight", func(a Actions) { a.SelectLight(lighting.SpotIndex) }),
	)

	filters := sub("Filters",
		leaf("Nearest, Nearest", func(a Actions) { a.SetTextureFilter(0) }),
		leaf("Linear, Nearest", func(a Actions) { a.SetTextureFilter(1) }),
		leaf("Nearest, Linear", func(a Actions) { a.SetTextureFilter(2) }),
		leaf("Linear, Linear", func(a Actions) { a.SetTextureFilter(3) }),
	)

	return &Menu{Items: []Item{
		sub("Lights",
			leaf("Toggle Global Ambient", Actions.ToggleGlobalAmbient),
			leaf("Toggle Point Light", func(a Actions) { a.ToggleLight(lighting.PointIndex) }),
			leaf("Toggle Directional Light", func(a Actions) { a.ToggleLight(lighting.DirectionalIndex) }),
			leaf("Toggle Spotlight", func(a Actions) { a.ToggleLight(lighting.SpotIndex) }),
			moveLight,
		),
		sub("Textures",
			leaf("Toggle Textures", Actions.ToggleTexture),
			leaf("Grid", func(a Actions) { a.SetFloorTexture(0) }),
			leaf("Water", func(a Actions) { a.SetFloorTexture(1) }),
			leaf("Bricks", func(a Actions) { a.SetFloorTexture(2) }),
			filters,
		),
		sub("Floor Material",
			leaf("Rubber", func(a Actions) { a.SetFloorMaterial(scene.MaterialRubber) }),
			leaf("Plastic", func(a Actions) { a.SetFloorMaterial(scene.MaterialPlastic) }),
			leaf("Metal", func(a Actions) { a.SetFloorMaterial(scene.MaterialMetal) }),
		),
		sub("Shading",
			leaf("Flat", func(a Actions) { a.SetShading(true) }),
			leaf("Smooth", func(a Actions) { a.SetShading(false) }),
		),
		sub("Interaction Mode",
			leaf("Keyboard", func(a Actions) { a.SetInteractionMode(interaction.KeyboardDOF) }),
			leaf("Mouse (Picking)", func(a Actions) { a.SetInteractionMode(interaction.MousePicking) }),
		),
		sub("Animation",
			leaf("Toggle Model Animation", Actions.ToggleAnimateModel),
			leaf("Toggle Camera Animation", Actions.ToggleAnimateCamera),
			leaf("Toggle Light Animation", Actions.ToggleAnimateLight),
		),
		leaf("Select Mesh", func(a Actions) { a.SelectObject(interaction.ObjectMesh) }),
		leaf("Select Model", func(a Actions) { a.SelectObject(interaction.ObjectArticulated) }),
	}}
}

// Find returns the item reached by following labels from m.
func (m *Menu) Find(path ...string) (Item, bool) {
	cur := m
	for i, label := range path {
		var found *Item
		for k := range cur.Items {
			if cur.Items[k].Label == label {
				found = &cur.Items[k]
				break
			}
		}
		if found == nil {
			return Item{}, false
		}
		if i == len(path)-1 {
			return *found, true
		}
		if found.Sub == nil {
			return Item{}, false
		}
		cur = found.Sub
	}
	return Item{}, false
}
