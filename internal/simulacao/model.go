// internal/simulacao/model.go
package simulacao

import (
	"time"

	"gorm.io/gorm"
)

// Simulacao é um registro do histórico de cálculos salvos pelo vendedor.
// O histórico é só-acréscimo: registros nunca são alterados, apenas
// adicionados ou limpos de uma vez.
type Simulacao struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	UsuarioID  uint    `gorm:"not null;index" json:"usuarioId"`
	Produto    string  `gorm:"size:255" json:"produto"`
	Plataforma string  `gorm:"size:100;not null" json:"plataforma"`
	Custo      float64 `gorm:"not null;default:0" json:"custo"`
	Venda      float64 `gorm:"not null;default:0" json:"venda"`
	Lucro      float64 `gorm:"not null;default:0" json:"lucro"`
	MargemPct  float64 `gorm:"not null;default:0" json:"margemPct"`
	RoiPct     float64 `gorm:"not null;default:0" json:"roiPct"`
	CustoTotal float64 `gorm:"not null;default:0" json:"custoTotal"`
	Taxas      float64 `gorm:"not null;default:0" json:"taxas"`
	Imposto    float64 `gorm:"not null;default:0" json:"imposto"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`
}

// Migrate cria a tabela no banco de dados
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Simulacao{})
}
