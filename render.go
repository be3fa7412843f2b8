package collapsible

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
)

// collapsibleRenderer lays out the title row above the content region and
// sizes the region to the widget's animated visible height.
type collapsibleRenderer struct {
	c       *Collapsible
	objects []fyne.CanvasObject
}

func newRenderer(c *Collapsible) *collapsibleRenderer {
	return &collapsibleRenderer{
		c:       c,
		objects: []fyne.CanvasObject{c.button, c.titleLabel, c.contentHolder},
	}
}

// titleRowHeight is the title row's total height: the taller of the
// disclosure button and the title label, plus the vertical margins.
func (r *collapsibleRenderer) titleRowHeight() float32 {
	inner := r.c.ButtonHeight
	if h := r.c.titleLabel.MinSize().Height; h > inner {
		inner = h
	}
	return r.c.TitleTopMargin + inner + r.c.TitleBottomMargin
}

// Layout implements fyne.WidgetRenderer.
func (r *collapsibleRenderer) Layout(size fyne.Size) {
	c := r.c
	rowHeight := r.titleRowHeight()
	innerHeight := rowHeight - c.TitleTopMargin - c.TitleBottomMargin

	// Disclosure button: fixed size, vertically centered in the row.
	buttonY := c.TitleTopMargin + (innerHeight-c.ButtonHeight)/2
	c.button.Move(fyne.NewPos(c.TitleLeftMargin, buttonY))
	c.button.Resize(fyne.NewSize(c.ButtonWidth, c.ButtonHeight))

	// Title label: fills the rest of the row.
	labelX := c.TitleLeftMargin + c.ButtonWidth + c.ButtonMargin
	labelWidth := size.Width - labelX - c.TitleRightMargin
	if labelWidth < 0 {
		labelWidth = 0
	}
	c.titleLabel.Move(fyne.NewPos(labelX, c.TitleTopMargin))
	c.titleLabel.Resize(fyne.NewSize(labelWidth, innerHeight))

	// Content region: full width, directly below the title row, height
	// driven by the reveal animation.
	c.contentHolder.Move(fyne.NewPos(0, rowHeight))
	c.contentHolder.Resize(fyne.NewSize(size.Width, c.visibleHeight))
	if c.visibleHeight <= 0 {
		c.contentHolder.Hide()
	} else {
		c.contentHolder.Show()
	}
}

// MinSize implements fyne.WidgetRenderer.
func (r *collapsibleRenderer) MinSize() fyne.Size {
	c := r.c
	width := c.TitleLeftMargin + c.ButtonWidth + c.ButtonMargin +
		c.titleLabel.MinSize().Width + c.TitleRightMargin
	if c.content != nil {
		if w := c.content.MinSize().Width; w > width {
			width = w
		}
	}
	return fyne.NewSize(width, r.titleRowHeight()+c.visibleHeight)
}

// Refresh implements fyne.WidgetRenderer. It re-applies the title text and
// disclosure glyph, then re-lays-out so animation ticks take effect.
func (r *collapsibleRenderer) Refresh() {
	c := r.c
	if c.titleLabel.Text != c.Title {
		c.titleLabel.SetText(c.Title)
	}
	if glyph := glyphFor(c.Expanded); c.button.Text != glyph {
		c.button.SetText(glyph)
	}
	r.Layout(c.Size())
	canvas.Refresh(c)
}

// Objects implements fyne.WidgetRenderer.
func (r *collapsibleRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

// Destroy implements fyne.WidgetRenderer.
func (r *collapsibleRenderer) Destroy() {
	r.c.stopAnimation()
}
