package glm

import (
	"golang.org/x/mobile/exp/f32"
)

func sqrt[T numeric](value T) float32 {
	return f32.Sqrt(float32(value))
}
