package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

const sessionIDLength = 24

// GenerateID gera o identificador opaco de uma sessão
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, sessionIDLength)
}
