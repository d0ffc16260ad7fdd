// Package nn describes and trains the sentiment classifier. The
// network shape is declared as a list of layer specs; the numeric
// work (forward pass, gradients, parameter updates) is entirely
// the training engine's library.
package nn

import (
	"fmt"

	"github.com/jixinwang95/mban-orientation/logging"
)

var log = logging.Get()

type LayerKind int

const (
	LAYER_EMBEDDING LayerKind = iota
	LAYER_GLOBAL_AVERAGE_POOLING
	LAYER_DENSE
)

const (
	ActivationReLU    = "relu"
	ActivationSigmoid = "sigmoid"
	ActivationLinear  = "linear"
)

type Layer struct {
	Kind LayerKind

	// embedding fields
	Vocab int
	Dim   int

	// dense fields
	Units      int
	Activation string
}

// Spec is a validated, immutable network description.
type Spec struct {
	MaxLen int
	Layers []Layer
}

// Builder accumulates layer specs; nothing external is touched
// until an engine materializes the Build result.
type Builder struct {
	maxLen int
	layers []Layer
}

func NewBuilder(maxLen int) *Builder {
	return &Builder{maxLen: maxLen}
}

func (b *Builder) Embedding(vocab, dim int) *Builder {
	b.layers = append(b.layers, Layer{Kind: LAYER_EMBEDDING, Vocab: vocab, Dim: dim})
	return b
}

func (b *Builder) GlobalAveragePooling() *Builder {
	b.layers = append(b.layers, Layer{Kind: LAYER_GLOBAL_AVERAGE_POOLING})
	return b
}

func (b *Builder) Dense(units int, activation string) *Builder {
	b.layers = append(b.layers, Layer{Kind: LAYER_DENSE, Units: units, Activation: activation})
	return b
}

// Build validates the accumulated stack: embedding, then pooling,
// then at least one dense layer, ending in a single sigmoid unit.
func (b *Builder) Build() (Spec, error) {
	if b.maxLen <= 0 {
		return Spec{}, fmt.Errorf("max length is %d, want positive", b.maxLen)
	}
	if len(b.layers) < 3 {
		return Spec{}, fmt.Errorf("network has %d layers, want embedding, pooling and dense layers", len(b.layers))
	}

	embed := b.layers[0]
	if embed.Kind != LAYER_EMBEDDING {
		return Spec{}, fmt.Errorf("first layer must be an embedding")
	}
	if embed.Vocab <= 0 || embed.Dim <= 0 {
		return Spec{}, fmt.Errorf("embedding has shape %dx%d, want positive dims", embed.Vocab, embed.Dim)
	}

	if b.layers[1].Kind != LAYER_GLOBAL_AVERAGE_POOLING {
		return Spec{}, fmt.Errorf("second layer must be global average pooling")
	}

	for i, layer := range b.layers[2:] {
		if layer.Kind != LAYER_DENSE {
			return Spec{}, fmt.Errorf("layer %d must be dense", i+2)
		}
		if layer.Units <= 0 {
			return Spec{}, fmt.Errorf("dense layer %d has %d units", i+2, layer.Units)
		}
		switch layer.Activation {
		case ActivationReLU, ActivationSigmoid, ActivationLinear:
		default:
			return Spec{}, fmt.Errorf("unknown activation %q on layer %d", layer.Activation, i+2)
		}
	}

	last := b.layers[len(b.layers)-1]
	if last.Units != 1 || last.Activation != ActivationSigmoid {
		return Spec{}, fmt.Errorf("output layer must be a single sigmoid unit")
	}

	return Spec{
		MaxLen: b.maxLen,
		Layers: append([]Layer(nil), b.layers...),
	}, nil
}
