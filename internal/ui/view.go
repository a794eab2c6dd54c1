// Package ui provides the terminal page-list view.
package ui

import (
	"context"
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/pagestack/internal/action"
	"github.com/dshills/pagestack/internal/config"
	"github.com/dshills/pagestack/internal/logging"
	"github.com/dshills/pagestack/internal/pages"
)

// Action IDs registered by the view.
const (
	ActionUndo        = "edit.undo"
	ActionRedo        = "edit.redo"
	ActionDelete      = "page.delete"
	ActionRotateRight = "page.rotateRight"
	ActionRotateLeft  = "page.rotateLeft"
	ActionDuplicate   = "page.duplicate"
	ActionMoveDown    = "page.moveDown"
	ActionMoveUp      = "page.moveUp"
	ActionReverse     = "page.reverse"
	ActionSave        = "file.save"
	ActionQuit        = "app.quit"
)

// View shows a document's pages and turns key presses into edits.
// All methods must be called from the goroutine running Run, except Post.
type View struct {
	screen  tcell.Screen
	doc     *pages.Document
	actions *action.Registry
	log     *logging.Logger

	selected int
	top      int
	status   string
	quit     bool
}

// Option configures a View.
type Option func(*View)

// WithLogger sets the view's logger.
func WithLogger(log *logging.Logger) Option {
	return func(v *View) {
		if log != nil {
			v.log = log.WithComponent("ui")
		}
	}
}

// New creates a view of doc drawn on screen. The screen must already be
// initialized.
func New(screen tcell.Screen, doc *pages.Document, opts ...Option) (*View, error) {
	v := &View{
		screen:  screen,
		doc:     doc,
		actions: action.NewRegistry(),
		log:     logging.Nop(),
	}
	for _, opt := range opts {
		opt(v)
	}

	undo := action.New(ActionUndo, "Undo", v.undo)
	redo := action.New(ActionRedo, "Redo", v.redo)
	err := v.actions.Register(
		undo,
		redo,
		action.New(ActionDelete, "Delete", v.onSelection(func(i int) error { return v.doc.Delete(i) })),
		action.New(ActionRotateRight, "Rotate right", v.onSelection(func(i int) error { return v.doc.Rotate(90, i) })),
		action.New(ActionRotateLeft, "Rotate left", v.onSelection(func(i int) error { return v.doc.Rotate(-90, i) })),
		action.New(ActionDuplicate, "Duplicate", v.onSelection(func(i int) error { return v.doc.Duplicate(i) })),
		action.New(ActionMoveDown, "Move down", v.moveBy(1)),
		action.New(ActionMoveUp, "Move up", v.moveBy(-1)),
		action.New(ActionReverse, "Reverse", v.doc.Reverse),
		action.New(ActionSave, "Save", v.save),
		action.New(ActionQuit, "Quit", func() error {
			v.quit = true
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}
	if err := v.actions.BindAll(config.DefaultKeys()); err != nil {
		return nil, err
	}

	doc.History().SetSinks(undo, redo)
	v.refreshActions()
	return v, nil
}

// Actions returns the view's action registry.
func (v *View) Actions() *action.Registry {
	return v.actions
}

// Selected returns the index of the selected page.
func (v *View) Selected() int {
	return v.selected
}

// Status returns the current status message.
func (v *View) Status() string {
	return v.status
}

// ApplyConfig rebinds keys and adjusts the log level.
func (v *View) ApplyConfig(cfg *config.Config) error {
	keys := make(map[string]string, len(cfg.Keys))
	for id, key := range cfg.Keys {
		keys[id] = config.NormalizeKey(key)
	}
	v.log.SetLevel(cfg.LogLevel())
	if err := v.actions.BindAll(keys); err != nil {
		v.log.Warn("key bindings: %v", err)
		return err
	}
	return nil
}

// Post schedules fn to run on the view's goroutine. It is safe to call
// from any goroutine.
func (v *View) Post(fn func()) {
	_ = v.screen.PostEvent(tcell.NewEventInterrupt(fn))
}

// SetStatus shows msg in the status line.
func (v *View) SetStatus(msg string) {
	v.status = msg
}

// Run processes events until quit is requested or ctx is done.
func (v *View) Run(ctx context.Context) error {
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			v.Post(nil)
		case <-stop:
		}
	}()

	v.Draw()
	for !v.quit {
		if err := ctx.Err(); err != nil {
			return err
		}
		ev := v.screen.PollEvent()
		if ev == nil {
			return nil
		}
		v.HandleEvent(ev)
		v.Draw()
	}
	return nil
}

// HandleEvent reacts to a single terminal event.
func (v *View) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		v.handleKey(ev)
	case *tcell.EventResize:
		v.screen.Sync()
	case *tcell.EventInterrupt:
		if fn, ok := ev.Data().(func()); ok && fn != nil {
			fn()
		}
	}
}

func (v *View) handleKey(ev *tcell.EventKey) {
	key := KeyName(ev)
	if key == "" {
		return
	}

	if a, ok := v.actions.ForKey(key); ok {
		v.status = ""
		if err := a.Run(); err != nil {
			v.fail(a, err)
		}
		v.refreshActions()
		return
	}

	switch key {
	case "up", "k":
		v.selectPage(v.selected - 1)
	case "down", "j":
		v.selectPage(v.selected + 1)
	case "home", "g":
		v.selectPage(0)
	case "end", "G":
		v.selectPage(v.doc.Len() - 1)
	case "ctrl+c":
		v.quit = true
	}
	v.refreshActions()
}

func (v *View) fail(a *action.Action, err error) {
	if errors.Is(err, action.ErrActionDisabled) {
		v.status = a.Title + " is not available"
		return
	}
	v.status = fmt.Sprintf("%s failed: %v", a.Title, err)
	v.log.WithField("action", a.ID).Error("%v", err)
}

func (v *View) undo() error {
	label, _ := v.doc.History().UndoLabel()
	if err := v.doc.Undo(); err != nil {
		return err
	}
	v.status = "Undid " + describe(label)
	v.selectPage(v.selected)
	return nil
}

func (v *View) redo() error {
	label, _ := v.doc.History().RedoLabel()
	if err := v.doc.Redo(); err != nil {
		return err
	}
	v.status = "Redid " + describe(label)
	v.selectPage(v.selected)
	return nil
}

func (v *View) save() error {
	if err := v.doc.Save(); err != nil {
		return err
	}
	v.status = "Saved " + v.doc.Name()
	return nil
}

func (v *View) onSelection(edit func(i int) error) action.Handler {
	return func() error {
		if err := edit(v.selected); err != nil {
			return err
		}
		v.selectPage(v.selected)
		return nil
	}
}

func (v *View) moveBy(delta int) action.Handler {
	return func() error {
		to := v.selected + delta
		if err := v.doc.Move(v.selected, to); err != nil {
			return err
		}
		v.selectPage(to)
		return nil
	}
}

func (v *View) selectPage(i int) {
	v.selected = max(0, min(i, v.doc.Len()-1))
}

// refreshActions enables page actions only when there is a page to act on.
// Undo and redo are driven by the history.
func (v *View) refreshActions() {
	hasPage := v.doc.Len() > 0
	for _, id := range []string{ActionDelete, ActionRotateRight, ActionRotateLeft, ActionDuplicate} {
		if a, ok := v.actions.Get(id); ok {
			a.SetEnabled(hasPage)
		}
	}
	if a, ok := v.actions.Get(ActionMoveUp); ok {
		a.SetEnabled(hasPage && v.selected > 0)
	}
	if a, ok := v.actions.Get(ActionMoveDown); ok {
		a.SetEnabled(hasPage && v.selected < v.doc.Len()-1)
	}
	if a, ok := v.actions.Get(ActionReverse); ok {
		a.SetEnabled(v.doc.Len() > 1)
	}
	if a, ok := v.actions.Get(ActionSave); ok {
		a.SetEnabled(v.doc.Path != "")
	}
}

func describe(label string) string {
	if label == "" {
		return "last change"
	}
	return label
}
