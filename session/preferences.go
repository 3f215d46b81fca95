package session

import (
	"errors"
	"fmt"

	"github.com/jrsteele09/go-admin-dashboard/catalog"
	apperrors "github.com/jrsteele09/go-admin-dashboard/internal/errors"
)

var ErrUnsupportedLanguage = errors.New("unsupported language")

// Preferences holds UI settings that outlive a session. Logging out does not
// reset them.
type Preferences struct {
	store Store
}

func NewPreferences(store Store) *Preferences {
	return &Preferences{store: store}
}

// Language returns the stored language, English if none or unrecognised.
func (p *Preferences) Language() catalog.Language {
	raw, err := p.store.Get(keyLanguage)
	if err != nil {
		return catalog.DefaultLanguage
	}
	lang, _ := catalog.ParseLanguage(raw)
	return lang
}

func (p *Preferences) SetLanguage(lang catalog.Language) error {
	parsed, ok := catalog.ParseLanguage(string(lang))
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedLanguage, lang)
	}
	if err := p.store.Put(map[string]string{keyLanguage: string(parsed)}); err != nil {
		return fmt.Errorf("%w: storing language: %w", apperrors.ErrStorage, err)
	}
	return nil
}

// ToggleLanguage flips between English and Arabic and returns the new value.
func (p *Preferences) ToggleLanguage() (catalog.Language, error) {
	next := p.Language().Toggle()
	return next, p.SetLanguage(next)
}
