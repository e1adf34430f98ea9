package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTextToVectorIsDeterministic(t *testing.T) {
	a := TextToVector("Gateway of India monument")
	b := TextToVector("Gateway of India monument")

	assert.Equal(t, a.Slice(), b.Slice())
}

func TestTextToVectorIsNormalized(t *testing.T) {
	v := TextToVector("Marine Drive promenade")

	var magnitude float64
	for _, val := range v.Slice() {
		magnitude += float64(val) * float64(val)
	}
	assert.InDelta(t, 1.0, math.Sqrt(magnitude), 0.001)
}

func TestTextToVectorDistinguishesTexts(t *testing.T) {
	a := TextToVector("Gateway of India monument")
	b := TextToVector("Juhu Beach seaside")

	assert.NotEqual(t, a.Slice(), b.Slice())
}

func TestTextToVectorEmptyInput(t *testing.T) {
	v := TextToVector("")
	assert.Len(t, v.Slice(), 1536)
}
