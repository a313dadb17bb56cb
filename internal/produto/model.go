// internal/produto/model.go
package produto

import "gorm.io/gorm"

// Produto é um item cadastrado pelo vendedor para servir de ponto de partida
// das simulações (custo, peso e categoria prontos para o formulário).
type Produto struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	UsuarioID  uint    `gorm:"not null;index" json:"usuarioId"`
	Nome       string  `gorm:"size:255;not null" json:"nome"`
	SKU        string  `gorm:"size:100" json:"sku"`
	Categoria  string  `gorm:"size:255" json:"categoria"`
	Custo      float64 `gorm:"not null;default:0" json:"custo"`
	CustoExtra float64 `gorm:"not null;default:0" json:"custoExtra"`
	PesoGramas float64 `gorm:"not null;default:0" json:"pesoGramas"`
}

// Migrate cria a tabela no banco de dados
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Produto{})
}
