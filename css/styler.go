package css

import (
	"strconv"

	"github.com/sirupsen/logrus"
)

// DefaultTransition is the transition timing used for entries that name a
// property but no duration or easing.
const DefaultTransition = "2s ease"

// Styler applies class, style, transition and geometry operations to host
// elements. A Styler is immutable once built and safe to share.
type Styler struct {
	defaultTransition string
	window            Window
	log               logrus.FieldLogger
}

// Option configures a Styler.
type Option func(*Styler)

// WithDefaultTransition overrides DefaultTransition. Empty params are ignored.
func WithDefaultTransition(params string) Option {
	return func(s *Styler) {
		if params != "" {
			s.defaultTransition = params
		}
	}
}

// WithWindow sets the viewport used by Top, Left and the viewport predicates.
func WithWindow(w Window) Option {
	return func(s *Styler) {
		s.window = w
	}
}

// WithLogger sets the logger. The default is logrus.StandardLogger().
func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Styler) {
		if l != nil {
			s.log = l
		}
	}
}

// New creates a Styler.
func New(opts ...Option) *Styler {
	s := &Styler{
		defaultTransition: DefaultTransition,
		log:               logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.WithField("component", "css")
	return s
}

// DefaultTransition returns the transition timing applied to bare property names.
func (s *Styler) DefaultTransition() string {
	return s.defaultTransition
}

// Number formats a numeric style value the way a browser stringifies it
// ("1", "0.5", "-12.25").
func Number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
