package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

const runIDSize = 12

func GenerateID(size int) (string, error) {
	return gonanoid.Generate(characters, size)
}

// NewRunID gera o identificador de uma execução do pipeline, usado nos logs e no resumo
func NewRunID() (string, error) {
	return GenerateID(runIDSize)
}
