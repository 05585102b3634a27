package entity

// DecorationType is the persisted decoration kind. Stored values are the
// integer constants below and must never be renumbered.
type DecorationType int16

const (
	DecorationTypeColor   DecorationType = 0
	DecorationTypePattern DecorationType = 1
	DecorationTypeTexture DecorationType = 2
)

func (t DecorationType) Valid() bool {
	switch t {
	case DecorationTypeColor, DecorationTypePattern, DecorationTypeTexture:
		return true
	}
	return false
}

type Decoration struct {
	Id    int64
	Type  DecorationType
	Value string
}
