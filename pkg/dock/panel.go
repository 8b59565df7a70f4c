package dock

import (
	"github.com/google/uuid"
)

// Default component names attached to panels created by a Manager.
const (
	DefaultComponent    = "Panel"
	DefaultTabComponent = "Tab"
)

// Panel is a single content tab hosted within a group.
type Panel struct {
	ID           string `json:"id"`
	Component    string `json:"component"`
	TabComponent string `json:"tab_component"`
	Params       Params `json:"params,omitempty"`
}

// ParamsKind tags the concrete type behind a Params value.
type ParamsKind string

// KindDemo identifies DemoParams.
const KindDemo ParamsKind = "demo"

// Params carries panel-specific data. Each kind has one concrete type.
type Params interface {
	Kind() ParamsKind
}

// DemoParams is attached to every panel a Manager creates. Random is an
// independent token for the panel's own content; placement never reads it.
type DemoParams struct {
	Title  string `json:"title"`
	Random string `json:"random"`
}

// Kind implements Params.
func (DemoParams) Kind() ParamsKind { return KindDemo }

// ParamsAs returns p's params as T when the panel carries that kind.
func ParamsAs[T Params](p Panel) (T, bool) {
	t, ok := p.Params.(T)
	return t, ok
}

// IDSource generates panel identities and display tokens.
type IDSource interface {
	// PanelID returns a globally unique identifier.
	PanelID() string
	// Token returns a random URL-safe string of length n.
	Token(n int) string
}

const tokenAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz-_"

type uuidSource struct{}

// UUIDSource returns the default IDSource backed by random UUIDs.
func UUIDSource() IDSource { return uuidSource{} }

func (uuidSource) PanelID() string { return uuid.NewString() }

func (uuidSource) Token(n int) string {
	b := make([]byte, 0, n)
	for len(b) < n {
		u := uuid.New()
		for _, c := range u {
			if len(b) == n {
				break
			}
			b = append(b, tokenAlphabet[c&63])
		}
	}
	return string(b)
}
