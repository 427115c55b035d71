package services

import (
	"crypto/rand"
	"math/big"
)

// passwordAlphabet exclui caracteres visualmente ambíguos (0/O, 1/l/I)
const passwordAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnpqrstuvwxyz23456789!@$%"

const defaultPasswordLength = 12

// GenerateTemporaryPassword gera uma senha temporária aleatória com
// fonte criptográfica. length <= 0 usa o tamanho padrão de 12.
func GenerateTemporaryPassword(length int) (string, error) {
	if length <= 0 {
		length = defaultPasswordLength
	}

	alphabetSize := big.NewInt(int64(len(passwordAlphabet)))
	out := make([]byte, length)

	for i := range out {
		n, err := rand.Int(rand.Reader, alphabetSize)
		if err != nil {
			return "", err
		}
		out[i] = passwordAlphabet[n.Int64()]
	}

	return string(out), nil
}
