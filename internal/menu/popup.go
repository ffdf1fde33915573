package menu

import (
	"github.com/Faultbox/sceneview/internal/engine/ui2d"
)

const (
	textScale   = 1.0
	padX        = 10
	padY        = 4
	arrowWidth  = 14
	subOverlap  = 2
	borderWidth = 1
)

// Measurer measures rendered text.
type Measurer interface {
	MeasureText(text string, scale float32) (float32, float32)
}

// Canvas is what the popup draws on. *ui2d.Batch and *ui2d.Renderer satisfy it.
type Canvas interface {
	Measurer
	DrawPanel(r ui2d.Rect, bg, border ui2d.Color)
	DrawRect(r ui2d.Rect, c ui2d.Color)
	DrawText(x, y float32, text string, scale float32, c ui2d.Color)
}

// level is one open column of the popup.
type level struct {
	menu   *Menu
	rect   ui2d.Rect
	itemH  float32
	hover  int
	parent int // index in the previous level that opened this one
}

func (l *level) itemAt(x, y float32) int {
	if !l.rect.Contains(x, y) {
		return -1
	}
	i := int((y - l.rect.Y - borderWidth) / l.itemH)
	if i < 0 || i >= len(l.menu.Items) {
		return -1
	}
	return i
}

func (l *level) itemRect(i int) ui2d.Rect {
	return ui2d.Rect{
		X: l.rect.X + borderWidth,
		Y: l.rect.Y + borderWidth + float32(i)*l.itemH,
		W: l.rect.W - 2*borderWidth,
		H: l.itemH,
	}
}

// Popup is an open context menu with cascading submenus.
type Popup struct {
	root    *Menu
	measure Measurer
	screenW float32
	screenH float32
	levels  []*level
}

// NewPopup creates a closed popup for root.
func NewPopup(root *Menu, m Measurer) *Popup {
	return &Popup{root: root, measure: m}
}

// IsOpen reports whether the popup is showing.
func (p *Popup) IsOpen() bool {
	return len(p.levels) > 0
}

// Open shows the root menu at (x, y), kept inside a screen of the given size.
func (p *Popup) Open(x, y float32, screenW, screenH int) {
	p.screenW, p.screenH = float32(screenW), float32(screenH)
	p.levels = p.levels[:0]
	p.push(p.root, x, y, -1)
}

// Close hides the popup.
func (p *Popup) Close() {
	p.levels = p.levels[:0]
}

// Depth returns the number of open columns.
func (p *Popup) Depth() int {
	return len(p.levels)
}

func (p *Popup) push(m *Menu, x, y float32, parent int) {
	var w float32
	_, lineH := p.measure.MeasureText("M", textScale)
	for _, it := range m.Items {
		tw, _ := p.measure.MeasureText(it.Label, textScale)
		w = max(w, tw)
	}
	itemH := lineH + 2*padY
	r := ui2d.Rect{
		W: w + 2*padX + arrowWidth + 2*borderWidth,
		H: itemH*float32(len(m.Items)) + 2*borderWidth,
	}

	r.X, r.Y = x, y
	if p.screenW > 0 && r.X+r.W > p.screenW {
		r.X = max(0, p.screenW-r.W)
	}
	if p.screenH > 0 && r.Y+r.H > p.screenH {
		r.Y = max(0, p.screenH-r.H)
	}

	p.levels = append(p.levels, &level{menu: m, rect: r, itemH: itemH, hover: -1, parent: parent})
}

// hit returns the deepest level and item under (x, y).
func (p *Popup) hit(x, y float32) (depth, item int) {
	for d := len(p.levels) - 1; d >= 0; d-- {
		if i := p.levels[d].itemAt(x, y); i >= 0 {
			return d, i
		}
		if p.levels[d].rect.Contains(x, y) {
			return d, -1
		}
	}
	return -1, -1
}

// Hover updates the highlighted item and opens submenus under the pointer.
func (p *Popup) Hover(x, y float32) {
	if !p.IsOpen() {
		return
	}
	d, i := p.hit(x, y)
	if d < 0 {
		return
	}

	lv := p.levels[d]
	lv.hover = i
	if i < 0 {
		return
	}

	// Keep the column already open for this item.
	if d+1 < len(p.levels) && p.levels[d+1].parent == i {
		return
	}
	p.levels = p.levels[:d+1]
	if next := lv.menu.Items[i].Sub; next != nil {
		ir := lv.itemRect(i)
		p.push(next, lv.rect.X+lv.rect.W-subOverlap, ir.Y-borderWidth, i)
	}
}

// Click handles a button press at (x, y). Leaves run their action and close
// the popup, submenus open, and clicks outside close it. It reports whether
// the click was consumed by an open popup.
func (p *Popup) Click(x, y float32, a Actions) bool {
	if !p.IsOpen() {
		return false
	}
	d, i := p.hit(x, y)
	if d < 0 {
		p.Close()
		return true
	}
	if i < 0 {
		return true
	}

	it := p.levels[d].menu.Items[i]
	if it.Sub != nil {
		p.Hover(x, y)
		return true
	}
	p.Close()
	if it.Action != nil {
		it.Action(a)
	}
	return true
}

// Draw queues the open columns on c.
func (p *Popup) Draw(c Canvas) {
	for _, lv := range p.levels {
		c.DrawPanel(lv.rect, ui2d.ColorPanelBg, ui2d.ColorPanelBorder)
		for i, it := range lv.menu.Items {
			ir := lv.itemRect(i)
			if i == lv.hover {
				c.DrawRect(ir, ui2d.ColorHover.WithAlpha(0.6))
			}
			c.DrawText(ir.X+padX, ir.Y+padY, it.Label, textScale, ui2d.ColorText)
			if it.Sub != nil {
				c.DrawText(ir.X+ir.W-arrowWidth, ir.Y+padY, ">", textScale, ui2d.ColorTextDim)
			}
		}
	}
}
