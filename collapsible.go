// Package collapsible provides a collapsible panel widget for Fyne.
//
// The widget shows a title row with a disclosure button; activating the
// button animates a caller-supplied content region between its natural
// height and zero height. The content view stays owned by the caller —
// the widget only attaches and detaches it.
package collapsible

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// revealDuration is the fixed length of the expand/collapse animation.
const revealDuration = 250 * time.Millisecond

// Default layout parameters, applied by the constructors. Callers may
// override the exported fields before the widget is first shown.
const (
	defaultButtonWidth  float32 = 20
	defaultButtonHeight float32 = 20
	defaultButtonMargin float32 = 8
	defaultTitleVMargin float32 = 4
	defaultTitleHMargin float32 = 8
)

// DisclosureListener is notified whenever a Collapsible processes an
// expansion transition. Notification is synchronous with the transition
// request and fires even when the requested state equals the current one.
type DisclosureListener interface {
	ExpansionChanged(c *Collapsible, expanded bool)
}

// DisclosureListenerFunc adapts a plain function to DisclosureListener.
type DisclosureListenerFunc func(c *Collapsible, expanded bool)

// ExpansionChanged implements DisclosureListener.
func (f DisclosureListenerFunc) ExpansionChanged(c *Collapsible, expanded bool) {
	f(c, expanded)
}

// Collapsible is a panel with a title row and a collapsible content region.
//
// The exported layout fields mirror the knobs a visual editor would expose:
// the disclosure button's fixed size, the gap between button and title, and
// the margins around the title row. They are read on every layout pass, so
// they should be set before the widget is first shown.
type Collapsible struct {
	widget.BaseWidget

	// Title is the text shown in the title row.
	Title string

	// Expanded reports the current expansion state. Use SetExpanded or
	// Toggle to change it; writing the field directly skips the
	// animation, glyph update and listener notification.
	Expanded bool

	// ButtonWidth and ButtonHeight fix the disclosure button's size.
	ButtonWidth  float32
	ButtonHeight float32

	// ButtonMargin is the horizontal gap between the disclosure button
	// and the title label.
	ButtonMargin float32

	// Margins around the title row's contents.
	TitleTopMargin    float32
	TitleBottomMargin float32
	TitleLeftMargin   float32
	TitleRightMargin  float32

	button        *widget.Button
	titleLabel    *widget.Label
	contentHolder *fyne.Container
	content       fyne.CanvasObject

	// expansionHeight is the content's natural height, captured when the
	// content was last attached.
	expansionHeight float32
	// visibleHeight is the content region's current rendered height, the
	// value the reveal animation drives.
	visibleHeight float32
	// targetHeight is where the most recent transition is headed: always
	// expansionHeight when expanded, 0 when collapsed.
	targetHeight float32

	anim     *fyne.Animation
	listener DisclosureListener
}

// New creates a collapsible panel around content, starting collapsed.
// content must not be nil and must be able to resolve its own natural
// height (any CanvasObject qualifies — MinSize is read at attach time).
func New(title string, content fyne.CanvasObject) *Collapsible {
	return newCollapsible(title, content, false)
}

// NewExpanded creates a collapsible panel around content, starting expanded.
func NewExpanded(title string, content fyne.CanvasObject) *Collapsible {
	return newCollapsible(title, content, true)
}

func newCollapsible(title string, content fyne.CanvasObject, expanded bool) *Collapsible {
	c := &Collapsible{
		Title:             title,
		Expanded:          expanded,
		ButtonWidth:       defaultButtonWidth,
		ButtonHeight:      defaultButtonHeight,
		ButtonMargin:      defaultButtonMargin,
		TitleTopMargin:    defaultTitleVMargin,
		TitleBottomMargin: defaultTitleVMargin,
		TitleLeftMargin:   defaultTitleHMargin,
		TitleRightMargin:  defaultTitleHMargin,
	}

	// Child elements are created exactly once, here. CreateRenderer only
	// wires them up, so repeated renderer construction cannot duplicate
	// them.
	c.button = widget.NewButton(glyphFor(expanded), c.Toggle)
	c.titleLabel = widget.NewLabel(title)
	c.contentHolder = container.NewStack()

	c.ExtendBaseWidget(c)
	c.SetContent(content)
	return c
}

// SetContent replaces the attached content view. The previous view, if
// any, is detached and left to the caller; the new view is constrained to
// fill the content region and its natural height becomes the expansion
// height. Panics if content is nil.
func (c *Collapsible) SetContent(content fyne.CanvasObject) {
	if content == nil {
		panic("collapsible: content must not be nil")
	}

	c.content = content
	c.contentHolder.Objects = []fyne.CanvasObject{content}
	c.expansionHeight = content.MinSize().Height

	// Re-measure rather than animate: attachment snaps the region to the
	// new content's natural height when expanded.
	if c.Expanded {
		c.stopAnimation()
		c.targetHeight = c.expansionHeight
		c.visibleHeight = c.expansionHeight
	}

	c.contentHolder.Refresh()
	c.Refresh()
}

// Content returns the currently attached content view.
func (c *Collapsible) Content() fyne.CanvasObject {
	return c.content
}

// SetDisclosureListener sets the listener notified on every expansion
// transition. A nil listener disables notification.
func (c *Collapsible) SetDisclosureListener(l DisclosureListener) {
	c.listener = l
}

// SetExpanded requests a transition to the given expansion state.
//
// The content region's height animates toward its target with an
// ease-in/ease-out curve, but the Expanded flag, the disclosure glyph and
// the listener notification are all applied synchronously, before the
// animation completes. Requesting the current state is a legal no-op that
// still re-applies the target, the glyph and the notification.
func (c *Collapsible) SetExpanded(expand bool) {
	target := float32(0)
	if expand {
		target = c.expansionHeight
	}
	c.animateTo(target)

	c.Expanded = expand
	if c.button.Text != glyphFor(expand) {
		c.button.SetText(glyphFor(expand))
	}

	if c.listener != nil {
		c.listener.ExpansionChanged(c, expand)
	}
}

// Toggle flips the expansion state. It is bound to the disclosure button.
func (c *Collapsible) Toggle() {
	c.SetExpanded(!c.Expanded)
}

// animateTo drives visibleHeight toward target. A transition requested
// while an earlier animation is in flight restarts from the current
// visible height, so retargeting stays smooth.
func (c *Collapsible) animateTo(target float32) {
	c.targetHeight = target
	c.stopAnimation()

	start := c.visibleHeight
	if start == target {
		c.Refresh()
		return
	}

	anim := fyne.NewAnimation(revealDuration, func(progress float32) {
		c.visibleHeight = start + (target-start)*progress
		c.Refresh()
	})
	anim.Curve = fyne.AnimationEaseInOut
	c.anim = anim
	anim.Start()
}

func (c *Collapsible) stopAnimation() {
	if c.anim != nil {
		c.anim.Stop()
		c.anim = nil
	}
}

// CreateRenderer implements fyne.Widget.
func (c *Collapsible) CreateRenderer() fyne.WidgetRenderer {
	return newRenderer(c)
}
