package form

import (
	"context"

	"github.com/gorewood/docket/internal/settings"
)

// Updater persists one field change. *settings.Store satisfies it.
type Updater interface {
	Settings() settings.Settings
	Update(ctx context.Context, field settings.Field, value string) (settings.Settings, error)
}

// Edit runs the settings form against store and returns the final settings
// and the fields that changed. Unchanged answers are not saved. A save error
// stops the form and is returned; fields saved before it stay saved.
func Edit(ctx context.Context, store Updater, p Prompter) (settings.Settings, []settings.Field, error) {
	current := store.Settings()
	var changed []settings.Field

	apply := func(field settings.Field, value string) error {
		if value == current.Get(field) {
			return nil
		}
		updated, err := store.Update(ctx, field, value)
		if err != nil {
			return err
		}
		current = updated
		changed = append(changed, field)
		return nil
	}

	code, err := askJurisdiction(ctx, p, current.DefaultJurisdiction)
	if err != nil {
		return current, changed, err
	}
	if err := apply(settings.FieldJurisdiction, code); err != nil {
		return current, changed, err
	}

	for _, field := range []settings.Field{
		settings.FieldFirmName,
		settings.FieldAttorneyName,
		settings.FieldBarNumber,
	} {
		value, err := p.Input(ctx, InputConfig{
			Message: field.Label(),
			Default: current.Get(field),
			Help:    field.Description(),
		})
		if err != nil {
			return current, changed, err
		}
		if err := apply(field, value); err != nil {
			return current, changed, err
		}
	}

	return current, changed, nil
}

// askJurisdiction offers the enumerated jurisdictions by label. A stored code
// outside the set is appended verbatim and preselected so it can be kept.
func askJurisdiction(ctx context.Context, p Prompter, stored string) (string, error) {
	jurisdictions := settings.Jurisdictions()
	codes := make([]string, 0, len(jurisdictions)+1)
	labels := make([]string, 0, len(jurisdictions)+1)
	defaultIndex := -1
	for i, j := range jurisdictions {
		codes = append(codes, j.Code)
		labels = append(labels, j.Label)
		if j.Code == stored {
			defaultIndex = i
		}
	}
	if defaultIndex < 0 {
		codes = append(codes, stored)
		labels = append(labels, stored)
		defaultIndex = len(codes) - 1
	}

	idx, err := p.Select(ctx, SelectConfig{
		Message:      settings.FieldJurisdiction.Label(),
		Options:      labels,
		DefaultIndex: defaultIndex,
		Help:         settings.FieldJurisdiction.Description(),
	})
	if err != nil {
		return "", err
	}
	if idx < 0 || idx >= len(codes) {
		return stored, nil
	}
	return codes[idx], nil
}
