package services

import (
	"strings"
	"testing"
)

func TestGenerateTemporaryPassword(t *testing.T) {
	t.Run("comprimento padrão de 12 caracteres", func(t *testing.T) {
		password, err := GenerateTemporaryPassword(0)
		if err != nil {
			t.Fatal(err)
		}
		if len(password) != 12 {
			t.Errorf("len = %d, esperava 12", len(password))
		}
	})

	t.Run("comprimento customizado", func(t *testing.T) {
		password, err := GenerateTemporaryPassword(20)
		if err != nil {
			t.Fatal(err)
		}
		if len(password) != 20 {
			t.Errorf("len = %d, esperava 20", len(password))
		}
	})

	t.Run("usa apenas caracteres do alfabeto sem ambiguidades", func(t *testing.T) {
		for i := 0; i < 50; i++ {
			password, err := GenerateTemporaryPassword(0)
			if err != nil {
				t.Fatal(err)
			}
			for _, r := range password {
				if !strings.ContainsRune(passwordAlphabet, r) {
					t.Fatalf("caractere %q fora do alfabeto", r)
				}
			}
		}
	})

	t.Run("senhas consecutivas diferem", func(t *testing.T) {
		first, err := GenerateTemporaryPassword(0)
		if err != nil {
			t.Fatal(err)
		}
		second, err := GenerateTemporaryPassword(0)
		if err != nil {
			t.Fatal(err)
		}
		if first == second {
			t.Error("duas senhas seguidas idênticas")
		}
	})
}
