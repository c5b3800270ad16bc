package uf23

import (
	"fmt"
	"strings"
)

// Model selects one of the eight UF23 coherent field variants
// (Tab. 2 of arXiv:2311.12120).
type Model int

const (
	ModelBase Model = iota
	ModelNeCL
	ModelExpX
	ModelSpur
	ModelCre10
	ModelSynCG
	ModelTwistX
	ModelNebCor
	numModels
)

var modelNames = [numModels]string{
	"base", "neCL", "expX", "spur", "cre10", "synCG", "twistX", "nebCor",
}

func (m Model) String() string {
	if m < 0 || m >= numModels {
		return fmt.Sprintf("Model(%d)", int(m))
	}
	return modelNames[m]
}

// ParseModel maps a model name like "base" or "twistX" to its Model.
func ParseModel(name string) (Model, error) {
	for i, n := range modelNames {
		if n == name {
			return Model(i), nil
		}
	}
	return 0, fmt.Errorf("unknown field model %q (available: %s)",
		name, strings.Join(modelNames[:], ", "))
}

// Models returns the names of all model variants in declaration order.
func Models() []string {
	names := make([]string, len(modelNames))
	copy(names, modelNames[:])
	return names
}
