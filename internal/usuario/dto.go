// internal/usuario/dto.go
package usuario

type CriarUsuarioDTO struct {
	Nome  string `json:"nome"`
	Email string `json:"email"`
	Senha string `json:"senha"`
}

type LoginDTO struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

type ResumoUsuarioDTO struct {
	ID    uint   `json:"id"`
	Nome  string `json:"nome"`
	Email string `json:"email"`
}

type RespostaLoginDTO struct {
	Token   string           `json:"token"`
	Usuario ResumoUsuarioDTO `json:"usuario"`
}

func resumo(u *Usuario) ResumoUsuarioDTO {
	return ResumoUsuarioDTO{ID: u.ID, Nome: u.Nome, Email: u.Email}
}
