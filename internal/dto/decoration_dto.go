package dto

// DecorationType is the wire name of a decoration kind. It is declared
// independently of entity.DecorationType; mapper.DecorationTypeToInternal
// and mapper.DecorationTypeToExternal translate between the two.
type DecorationType string

const (
	DecorationTypeColor   DecorationType = "Color"
	DecorationTypePattern DecorationType = "Pattern"
	DecorationTypeTexture DecorationType = "Texture"
)

// DecorationTypes lists every wire member.
var DecorationTypes = []DecorationType{
	DecorationTypeColor,
	DecorationTypePattern,
	DecorationTypeTexture,
}

type CreateDecorationRequest struct {
	Type  DecorationType `json:"type" validate:"required,oneof=Color Pattern Texture"`
	Value string         `json:"value" validate:"required,max=1024"`
}

type DecorationResponse struct {
	Id    int64          `json:"id"`
	Type  DecorationType `json:"type"`
	Value string         `json:"value"`
}
