package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	referenceAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	referenceLength   = 6
)

// GenerateReference gera o código curto exibido nos relatórios do plano
func GenerateReference() (string, error) {
	return gonanoid.Generate(referenceAlphabet, referenceLength)
}
