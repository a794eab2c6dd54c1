package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

var (
	styleNormal   = tcell.StyleDefault
	styleTitle    = tcell.StyleDefault.Bold(true)
	styleSelected = tcell.StyleDefault.Reverse(true)
	styleEnabled  = tcell.StyleDefault.Bold(true)
	styleDisabled = tcell.StyleDefault.Dim(true)
	styleStatus   = tcell.StyleDefault.Foreground(tcell.ColorYellow)
)

// Draw renders the whole view and shows it.
func (v *View) Draw() {
	v.screen.Clear()
	width, height := v.screen.Size()
	if width <= 0 || height <= 0 {
		return
	}

	v.drawTitle(width)
	v.drawPages(width, height)
	if height >= 3 {
		v.drawText(0, height-2, width, v.status, styleStatus)
	}
	v.drawHints(width, height-1)

	v.screen.Show()
}

func (v *View) drawTitle(width int) {
	title := v.doc.Name()
	if v.doc.IsModified() {
		title += " [+]"
	}
	title += fmt.Sprintf(" - %d pages", v.doc.Len())
	v.drawText(0, 0, width, title, styleTitle)
}

// drawPages draws the page list between the title and the status lines,
// scrolling to keep the selection visible.
func (v *View) drawPages(width, height int) {
	rows := height - 3
	if rows <= 0 {
		return
	}

	if v.selected < v.top {
		v.top = v.selected
	}
	if v.selected >= v.top+rows {
		v.top = v.selected - rows + 1
	}
	v.top = max(0, min(v.top, v.doc.Len()-rows))

	for i := 0; i < rows; i++ {
		idx := v.top + i
		if idx >= v.doc.Len() {
			break
		}
		p, err := v.doc.Page(idx)
		if err != nil {
			continue
		}

		line := fmt.Sprintf("%4d  %-30s %3d°", idx+1, p.String(), p.Rotation)
		style := styleNormal
		if idx == v.selected {
			style = styleSelected
		}
		v.drawText(0, i+1, width, line, style)
	}
}

// drawHints shows the undo and redo keys, dimmed when unavailable.
func (v *View) drawHints(width, y int) {
	x := 0
	for _, id := range []string{ActionUndo, ActionRedo} {
		a, ok := v.actions.Get(id)
		if !ok {
			continue
		}

		text := a.Title
		var label string
		var has bool
		if id == ActionUndo {
			label, has = v.doc.History().UndoLabel()
		} else {
			label, has = v.doc.History().RedoLabel()
		}
		if has && label != "" {
			text += " " + label
		}
		if key, ok := v.actions.KeyFor(id); ok {
			text = "[" + key + "] " + text
		}

		style := styleDisabled
		if a.Enabled() {
			style = styleEnabled
		}
		x = v.drawText(x, y, width, text, style) + 2
	}
}

// drawText writes s at (x, y), clipped to width, and returns the column
// after the last rune written.
func (v *View) drawText(x, y, width int, s string, style tcell.Style) int {
	for _, r := range s {
		if x >= width {
			break
		}
		v.screen.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}
