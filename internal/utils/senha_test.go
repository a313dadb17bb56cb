package utils

import "testing"

func TestHashECheckSenha(t *testing.T) {
	hash, err := HashSenha("minha-senha-123")
	if err != nil {
		t.Fatal(err)
	}
	if hash == "minha-senha-123" {
		t.Fatal("hash não pode ser a senha em claro")
	}
	if !CheckSenha(hash, "minha-senha-123") {
		t.Fatal("senha correta deveria validar")
	}
	if CheckSenha(hash, "senha-errada") {
		t.Fatal("senha errada não deveria validar")
	}
}
