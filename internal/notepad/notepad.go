// Package notepad holds the document state of the notepad: the live text,
// its save state, the undo/redo history and the autosave rule.
//
// A Controller is driven from a single event loop and is not safe for
// concurrent use.
package notepad

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/log"

	"notepad/internal/history"
	"notepad/internal/stats"
	"notepad/internal/store"
)

// ErrConfirmationRequired is returned by New and ClearAll when the command
// would discard text and force was not set. Nothing has changed.
var ErrConfirmationRequired = errors.New("confirmation required")

// Ticket identifies one scheduled autosave. Only the most recent ticket
// issued by a Controller may write.
type Ticket uint64

// Clipboard receives copied and cut text.
type Clipboard interface {
	WriteAll(text string) error
}

// Printer renders the document for the host print facility.
type Printer interface {
	Print(ctx context.Context, text string) error
}

// Controller owns the document and applies every command to it.
type Controller struct {
	store   store.Store
	history *history.Stack
	clip    Clipboard
	printer Printer
	logger  *log.Logger

	exportDir string

	text  string
	saved bool

	ticket  Ticket // latest issued
	pending bool   // latest ticket has not written yet
}

// Option configures a Controller.
type Option func(*Controller)

func WithClipboard(c Clipboard) Option { return func(ctl *Controller) { ctl.clip = c } }
func WithPrinter(p Printer) Option     { return func(ctl *Controller) { ctl.printer = p } }
func WithExportDir(dir string) Option  { return func(ctl *Controller) { ctl.exportDir = dir } }

func WithLogger(l *log.Logger) Option {
	return func(ctl *Controller) {
		if l != nil {
			ctl.logger = l
		}
	}
}

// NewController returns a Controller with an empty, saved document.
func NewController(st store.Store, opts ...Option) *Controller {
	c := &Controller{
		store:     st,
		history:   history.New(),
		logger:    log.New(io.Discard),
		exportDir: ".",
		saved:     true,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Load replaces the document with the stored text. An absent slot leaves
// the document empty.
func (c *Controller) Load(ctx context.Context) error {
	v, ok, err := c.store.Get(ctx, store.Key)
	if err != nil {
		return fmt.Errorf("load document: %w", err)
	}
	if ok {
		c.text = v
	}
	c.saved = true
	c.logger.Debug("document loaded", "found", ok, "chars", utf8.RuneCountInString(v))
	return nil
}

func (c *Controller) Text() string        { return c.text }
func (c *Controller) Saved() bool         { return c.saved }
func (c *Controller) CanUndo() bool       { return c.history.CanUndo() }
func (c *Controller) CanRedo() bool       { return c.history.CanRedo() }
func (c *Controller) Stats() stats.Stats  { return stats.Compute(c.text) }
func (c *Controller) History() (int, int) { return c.history.Len() }

// Persisted returns the text currently in the store.
func (c *Controller) Persisted(ctx context.Context) (string, error) {
	v, _, err := c.store.Get(ctx, store.Key)
	if err != nil {
		return "", fmt.Errorf("read persisted text: %w", err)
	}
	return v, nil
}

// Pending reports whether the latest autosave has not written yet.
func (c *Controller) Pending() bool { return c.pending }

// Edit applies a change delivered by the input surface. The previous text is
// recorded for undo.
func (c *Controller) Edit(next string) Ticket {
	if next == c.text {
		return c.ticket
	}
	c.history.Record(c.text)
	return c.replace(next)
}

// Undo restores the previous snapshot. ok is false when there is none.
func (c *Controller) Undo() (Ticket, bool) {
	prev, ok := c.history.Undo(c.text)
	if !ok {
		return c.ticket, false
	}
	return c.replace(prev), true
}

// Redo re-applies the most recently undone snapshot.
func (c *Controller) Redo() (Ticket, bool) {
	next, ok := c.history.Redo(c.text)
	if !ok {
		return c.ticket, false
	}
	return c.replace(next), true
}

// New starts an empty document. Unsaved non-blank text needs force.
// The new document counts as saved and has no history.
func (c *Controller) New(force bool) (Ticket, error) {
	if !c.saved && strings.TrimSpace(c.text) != "" && !force {
		return c.ticket, ErrConfirmationRequired
	}
	t := c.replace("")
	c.saved = true
	c.history.Reset()
	return t, nil
}

// ClearAll empties non-blank text after confirmation. Unlike New it leaves
// the document unsaved and keeps history.
func (c *Controller) ClearAll(force bool) (Ticket, error) {
	if strings.TrimSpace(c.text) == "" {
		return c.ticket, nil
	}
	if !force {
		return c.ticket, ErrConfirmationRequired
	}
	return c.replace(""), nil
}

// Copy puts non-blank text on the clipboard.
func (c *Controller) Copy() bool {
	if strings.TrimSpace(c.text) == "" {
		return false
	}
	c.toClipboard()
	return true
}

// Cut copies non-blank text to the clipboard and empties the document.
func (c *Controller) Cut() (Ticket, bool) {
	if strings.TrimSpace(c.text) == "" {
		return c.ticket, false
	}
	c.toClipboard()
	return c.replace(""), true
}

// Save writes the document to the store, exports it as <filename>.txt and
// marks it saved. The pending autosave is left alone. Failures are returned
// for display but do not undo the saved mark.
func (c *Controller) Save(ctx context.Context, filename string) (string, error) {
	var errs []error
	if err := c.store.Set(ctx, store.Key, c.text); err != nil {
		c.logger.Error("store write failed", "err", err)
		errs = append(errs, err)
	}
	path, err := Export(c.exportDir, filename, c.text)
	if err != nil {
		c.logger.Error("export failed", "name", filename, "err", err)
		errs = append(errs, err)
	} else {
		c.logger.Info("exported", "path", path)
	}
	c.saved = true
	return path, errors.Join(errs...)
}

// Print hands the document to the printer.
func (c *Controller) Print(ctx context.Context) error {
	if c.printer == nil {
		return errors.New("no printer configured")
	}
	if err := c.printer.Print(ctx, c.text); err != nil {
		c.logger.Warn("print failed", "err", err)
		return err
	}
	return nil
}

// Autosave writes the document if t is still the latest ticket. Stale tickets
// are ignored so that only the last edit of a burst reaches the store.
func (c *Controller) Autosave(ctx context.Context, t Ticket) bool {
	if t != c.ticket || !c.pending {
		return false
	}
	return c.write(ctx)
}

// Flush writes a pending autosave immediately.
func (c *Controller) Flush(ctx context.Context) bool {
	if !c.pending {
		return false
	}
	return c.write(ctx)
}

func (c *Controller) write(ctx context.Context) bool {
	if err := c.store.Set(ctx, store.Key, c.text); err != nil {
		c.logger.Error("autosave failed", "err", err)
		return false
	}
	c.pending = false
	c.saved = true
	c.logger.Debug("autosaved", "ticket", c.ticket, "chars", utf8.RuneCountInString(c.text))
	return true
}

// replace swaps the document text, marks it unsaved and issues a new ticket.
func (c *Controller) replace(next string) Ticket {
	c.text = next
	c.saved = false
	c.ticket++
	c.pending = true
	return c.ticket
}

func (c *Controller) toClipboard() {
	if c.clip == nil {
		return
	}
	if err := c.clip.WriteAll(c.text); err != nil {
		c.logger.Warn("clipboard write failed", "err", err)
	}
}
