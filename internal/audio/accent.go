package audio

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/pflag"
)

// Accent selects one of the two pronunciation renditions of a word.
type Accent int

const (
	// AccentPrimary is the American rendition.
	AccentPrimary Accent = iota
	// AccentAlternate is the British rendition.
	AccentAlternate
)

// DefaultVoiceURL serves pronunciations as audio=<word>&type=<0 for US, 1 for UK>.
const DefaultVoiceURL = "https://dict.youdao.com/dictvoice"

var (
	_          pflag.Value = (*Accent)(nil)
	allAccents             = []Accent{AccentPrimary, AccentAlternate}
)

func ParseAccent(val string) (Accent, error) {
	switch strings.ToLower(strings.TrimSpace(val)) {
	case "us", "primary":
		return AccentPrimary, nil
	case "uk", "alternate":
		return AccentAlternate, nil
	}
	return AccentPrimary, fmt.Errorf("invalid accent: %s. Possible values are %v", val, allAccents)
}

func (a *Accent) Set(val string) error {
	accent, err := ParseAccent(val)
	if err != nil {
		return err
	}
	*a = accent
	return nil
}

func (a Accent) String() string {
	if a == AccentAlternate {
		return "uk"
	}
	return "us"
}

func (a *Accent) Type() string {
	return "accent"
}

func (a Accent) voiceType() string {
	if a == AccentAlternate {
		return "1"
	}
	return "0"
}

// URL returns the address of the pronunciation of term in accent.
func URL(baseURL string, term string, accent Accent) (string, error) {
	if baseURL == "" {
		baseURL = DefaultVoiceURL
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("url.Parse(%s) > %w", baseURL, err)
	}

	query := u.Query()
	query.Set("audio", term)
	query.Set("type", accent.voiceType())
	u.RawQuery = query.Encode()
	return u.String(), nil
}
