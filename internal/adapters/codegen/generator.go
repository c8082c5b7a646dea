package codegen

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"strconv"

	"ndjimba/internal/core/domain"
)

// Generator draws 6-digit access codes uniformly from [100000, 999999].
type Generator struct {
	random io.Reader
}

func NewGenerator() *Generator {
	return &Generator{random: rand.Reader}
}

// NewGeneratorFromReader uses r as the entropy source.
func NewGeneratorFromReader(r io.Reader) *Generator {
	return &Generator{random: r}
}

func (g *Generator) Generate() (string, error) {
	span := big.NewInt(domain.AccessCodeMax - domain.AccessCodeMin + 1)
	n, err := rand.Int(g.random, span)
	if err != nil {
		return "", fmt.Errorf("failed to generate access code: %w", err)
	}
	return strconv.FormatInt(n.Int64()+domain.AccessCodeMin, 10), nil
}
