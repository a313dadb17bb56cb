// internal/simulacao/repository.go
package simulacao

import "gorm.io/gorm"

// Repository encapsula operações de banco para Simulacao. Não há Update:
// o histórico é só-acréscimo.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Create acrescenta uma simulação ao histórico
func (r *Repository) Create(s *Simulacao) error {
	return r.DB.Create(s).Error
}

// FindByUsuario devolve o histórico do usuário na ordem em que foi salvo
func (r *Repository) FindByUsuario(usuarioID uint) ([]Simulacao, error) {
	var list []Simulacao
	err := r.DB.Where("usuario_id = ?", usuarioID).Order("created_at").Find(&list).Error
	return list, err
}

// ClearByUsuario limpa o histórico do usuário (soft delete)
func (r *Repository) ClearByUsuario(usuarioID uint) error {
	return r.DB.Where("usuario_id = ?", usuarioID).Delete(&Simulacao{}).Error
}
