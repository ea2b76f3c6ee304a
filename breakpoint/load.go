package breakpoint

import (
	"errors"
	"fmt"
	"io"

	"github.com/npillmayer/respstyle/attr"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// ErrInvalidSettings flags breakpoint settings which are inconsistent.
var ErrInvalidSettings = errors.New("invalid breakpoint settings")

// Load reads breakpoint settings in YAML format:
//
//	order: [desktop, tablet, phone]
//	base: desktop
//	bounds:
//	  tablet: { maxWidth: 980px }
//	  phone:  { maxWidth: 767px }
//	toggles:
//	  widescreen: "@media only screen and (min-width: 1441px)"
//
// Unknown keys are rejected. A missing order defaults to desktop, tablet,
// phone; a missing base defaults to desktop.
func Load(r io.Reader) (*Settings, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	s := &Settings{}
	if err := dec.Decode(s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding breakpoint settings: %w", err)
	}
	if len(s.Order) == 0 {
		s.Order = Default().Order
	}
	if s.Base == "" {
		s.Base = attr.Desktop
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks that base, bounds and toggles refer to breakpoints of the
// order, and that no breakpoint is listed twice. All problems are reported.
func (s *Settings) Validate() error {
	var err error
	seen := make(map[attr.Breakpoint]bool, len(s.Order))
	for _, bp := range s.Order {
		if seen[bp] {
			err = multierr.Append(err, fmt.Errorf("%w: breakpoint %q listed twice", ErrInvalidSettings, bp))
		}
		seen[bp] = true
	}
	if !seen[s.Base] {
		err = multierr.Append(err, fmt.Errorf("%w: base %q not in order", ErrInvalidSettings, s.Base))
	}
	for bp := range s.Bounds {
		if !seen[bp] {
			err = multierr.Append(err, fmt.Errorf("%w: bounds for unknown breakpoint %q", ErrInvalidSettings, bp))
		}
	}
	for bp := range s.Toggles {
		if !seen[bp] {
			err = multierr.Append(err, fmt.Errorf("%w: toggle for unknown breakpoint %q", ErrInvalidSettings, bp))
		}
	}
	return err
}
