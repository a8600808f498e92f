package models

// Ticket lifecycle states
const (
	StatusPendiente  = "pendiente"
	StatusEnProgreso = "en progreso"
	StatusResuelto   = "resuelto"
)

// HoraLayout is the stored format of TicketModel.Hora
const HoraLayout = "2006-01-02 15:04:05"

type TicketModel struct {
	ID            int     `json:"id" gorm:"primaryKey;autoIncrement"`
	Cubiculo      string  `json:"cubiculo" gorm:"type:text;not null;index:idx_ticket_cub_status,priority:1"`
	Problema      string  `json:"problema" gorm:"type:text;not null"`
	Solucion      *string `json:"solucion" gorm:"type:text"`
	Status        string  `json:"status" gorm:"type:text;not null;default:'pendiente';index:idx_ticket_cub_status,priority:2"`
	AtendidoPor   *string `json:"atendido_por" gorm:"column:atendido_por;type:text"`
	Hora          *string `json:"hora" gorm:"type:text"`
	Observaciones *string `json:"observaciones" gorm:"type:text"`
}

func (TicketModel) TableName() string { return "tickets" }

// IsValidStatus reports whether s is one of the three lifecycle states
func IsValidStatus(s string) bool {
	switch s {
	case StatusPendiente, StatusEnProgreso, StatusResuelto:
		return true
	}
	return false
}

// Statuses lists the lifecycle states in display order
func Statuses() []string {
	return []string{StatusPendiente, StatusEnProgreso, StatusResuelto}
}
