// Package compose turns a template kind into a created, opened document.
//
// A Composer reads the current settings and today's date, renders the
// document, asks the vault to create it exactly once and then reports the
// outcome through a notifier. Failures are never retried. When creation fails
// the notification text is the vault's error message, unchanged, and nothing
// is opened.
package compose

import (
	"context"
	"time"

	"github.com/gorewood/docket/internal/document"
	"github.com/gorewood/docket/internal/history"
	"github.com/gorewood/docket/internal/output"
	"github.com/gorewood/docket/internal/settings"
	"github.com/gorewood/docket/internal/vault"
)

// SettingsSource provides the settings snapshot used for a render.
type SettingsSource interface {
	Settings() settings.Settings
}

// Opener focuses a created document, e.g. by launching an editor.
type Opener interface {
	Open(ctx context.Context, h vault.Handle) error
}

// Notifier shows a short transient message to the user.
type Notifier interface {
	Notify(n output.Notification)
}

// Recorder keeps a history of generated documents.
type Recorder interface {
	Record(ctx context.Context, r history.Record) (history.Record, error)
}

// Result describes a created document.
type Result struct {
	Document document.Document `json:"document"`
	Handle   vault.Handle      `json:"handle"`
	Warnings []string          `json:"warnings,omitempty"`
}

// Composer creates documents. Only the settings source and creator are
// required; the other collaborators default to no-ops.
type Composer struct {
	source   SettingsSource
	creator  vault.Creator
	renderer document.Renderer
	opener   Opener
	notifier Notifier
	recorder Recorder
	now      func() time.Time
}

// New creates a Composer.
func New(source SettingsSource, creator vault.Creator) *Composer {
	return &Composer{
		source:  source,
		creator: creator,
		now:     time.Now,
	}
}

// WithRenderer sets the renderer (locale and template library).
func (c *Composer) WithRenderer(r document.Renderer) *Composer {
	c.renderer = r
	return c
}

// WithOpener sets the opener called after a successful create.
func (c *Composer) WithOpener(o Opener) *Composer {
	c.opener = o
	return c
}

// WithNotifier sets the notifier.
func (c *Composer) WithNotifier(n Notifier) *Composer {
	c.notifier = n
	return c
}

// WithRecorder sets the history recorder.
func (c *Composer) WithRecorder(r Recorder) *Composer {
	c.recorder = r
	return c
}

// WithClock sets the clock that supplies "today".
func (c *Composer) WithClock(now func() time.Time) *Composer {
	c.now = now
	return c
}

// Preview renders kind without creating anything.
func (c *Composer) Preview(kind document.Kind) (document.Document, error) {
	return c.renderer.Generate(kind, c.source.Settings(), c.now())
}

// CreateTemplate renders kind, creates it in the vault and opens it.
//
// On a create failure the error message is notified verbatim at error level,
// the opener is not called and the error is returned. Open and history
// failures after a successful create are reported as warnings; the document
// exists and the call succeeds.
func (c *Composer) CreateTemplate(ctx context.Context, kind document.Kind) (Result, error) {
	current := c.source.Settings()
	doc, err := c.renderer.Generate(kind, current, c.now())
	if err != nil {
		return Result{}, err
	}

	handle, err := c.creator.Create(ctx, doc.Filename, doc.Content)
	if err != nil {
		c.notify(output.LevelError, err.Error())
		return Result{}, err
	}

	result := Result{Document: doc, Handle: handle}

	if c.opener != nil {
		if err := c.opener.Open(ctx, handle); err != nil {
			result.Warnings = append(result.Warnings, "could not open "+doc.Filename+": "+err.Error())
		}
	}

	c.notify(output.LevelInfo, "Created "+string(kind)+" template: "+doc.Filename)

	if c.recorder != nil {
		_, err := c.recorder.Record(ctx, history.Record{
			Kind:         string(kind),
			Filename:     doc.Filename,
			Location:     handle.Location,
			Jurisdiction: current.DefaultJurisdiction,
		})
		if err != nil {
			result.Warnings = append(result.Warnings, "could not record history: "+err.Error())
		}
	}

	for _, warning := range result.Warnings {
		c.notify(output.LevelWarning, warning)
	}
	return result, nil
}

func (c *Composer) notify(level output.Level, message string) {
	if c.notifier == nil {
		return
	}
	c.notifier.Notify(output.Notification{Level: level, Message: message})
}
