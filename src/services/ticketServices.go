package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ARQAP/mesa-de-ayuda/src/catalog"
	"github.com/ARQAP/mesa-de-ayuda/src/dtos"
	"github.com/ARQAP/mesa-de-ayuda/src/models"
	"gorm.io/gorm"
)

const filterTodos = "todos"

// accepted layouts for an edited hora, tried in order after replacing "T" with a space
var horaInputLayouts = []string{"2006-01-02 15:04", models.HoraLayout}

type TicketService struct {
	db  *gorm.DB
	now func() time.Time
}

// TicketFeed is the polling snapshot: the full filtered listing, its highest id
// and the tickets newer than the caller's cutoff.
type TicketFeed struct {
	Tickets []models.TicketModel
	MaxID   int
	News    []dtos.TicketNewsDTO
}

// NewTicketService creates a new instance of TicketService
func NewTicketService(db *gorm.DB) *TicketService {
	return &TicketService{db: db, now: time.Now}
}

// SubmitTicket validates a submission and inserts it as pendiente. The open-ticket
// check and the insert share one transaction.
func (s *TicketService) SubmitTicket(ctx context.Context, dto dtos.SubmitTicketDTO) (*models.TicketModel, error) {
	cubiculo, ok := catalog.CanonicalCubiculo(dto.Cubiculo)
	if !ok {
		return nil, ErrInvalidCubiculo
	}

	problema := strings.TrimSpace(dto.Problema)
	if !catalog.IsProblema(problema) {
		return nil, ErrInvalidProblema
	}

	hora := s.now().Format(models.HoraLayout)
	ticket := models.TicketModel{
		Cubiculo: cubiculo,
		Problema: problema,
		Status:   models.StatusPendiente,
		Hora:     &hora,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var open int64
		if err := tx.Model(&models.TicketModel{}).
			Where("lower(cubiculo) = lower(?) AND status <> ?", cubiculo, models.StatusResuelto).
			Count(&open).Error; err != nil {
			return err
		}
		if open > 0 {
			return ErrDuplicateOpenTicket
		}
		return tx.Create(&ticket).Error
	})
	if err != nil {
		return nil, err
	}

	return &ticket, nil
}

// GetTicketByID retrieves a ticket by its ID
func (s *TicketService) GetTicketByID(ctx context.Context, id int) (*models.TicketModel, error) {
	var ticket models.TicketModel
	if err := s.db.WithContext(ctx).First(&ticket, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTicketNotFound
		}
		return nil, err
	}
	return &ticket, nil
}

// StartProcessing moves a ticket to "en progreso" from any state, resuelto included.
func (s *TicketService) StartProcessing(ctx context.Context, id int) error {
	result := s.db.WithContext(ctx).
		Model(&models.TicketModel{}).
		Where("id = ?", id).
		Update("status", models.StatusEnProgreso)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTicketNotFound
	}
	return nil
}

// ResolveTicket closes a ticket. Only the technician is validated here; an empty
// solucion is accepted, unlike EditTicket.
func (s *TicketService) ResolveTicket(ctx context.Context, id int, dto dtos.ResolveTicketDTO) error {
	tecnico := strings.TrimSpace(dto.AtendidoPor)
	if !catalog.IsTecnico(tecnico) {
		return ErrInvalidTecnico
	}
	solucion := strings.TrimSpace(dto.Solucion)

	result := s.db.WithContext(ctx).
		Model(&models.TicketModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"solucion":     solucion,
			"status":       models.StatusResuelto,
			"atendido_por": tecnico,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTicketNotFound
	}
	return nil
}

// EditTicket rewrites every field of a ticket. Leaving resuelto clears the
// technician and the solution; an unusable hora keeps the stored one.
func (s *TicketService) EditTicket(ctx context.Context, id int, dto dtos.EditTicketDTO) error {
	cubiculo, ok := catalog.CanonicalCubiculo(dto.Cubiculo)
	if !ok {
		return ErrInvalidCubiculo
	}

	problema := strings.TrimSpace(dto.Problema)
	status := strings.TrimSpace(dto.Status)
	if !catalog.IsProblema(problema) || !models.IsValidStatus(status) {
		return ErrInvalidEditData
	}

	var tecnico, solucion *string
	if status == models.StatusResuelto {
		t := strings.TrimSpace(dto.AtendidoPor)
		sol := strings.TrimSpace(dto.Solucion)
		if !catalog.IsTecnico(t) || sol == "" {
			return ErrResolutionIncomplete
		}
		tecnico, solucion = &t, &sol
	}

	var observaciones *string
	if obs := strings.TrimSpace(dto.Observaciones); obs != "" {
		observaciones = &obs
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var hora *string
		if normalized, ok := NormalizeHora(dto.Hora); ok {
			hora = &normalized
		} else {
			var current models.TicketModel
			if err := tx.Select("id", "hora").First(&current, id).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrTicketNotFound
				}
				return err
			}
			hora = current.Hora
		}

		result := tx.Model(&models.TicketModel{}).
			Where("id = ?", id).
			Updates(map[string]interface{}{
				"cubiculo":      cubiculo,
				"problema":      problema,
				"status":        status,
				"atendido_por":  tecnico,
				"solucion":      solucion,
				"hora":          hora,
				"observaciones": observaciones,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrTicketNotFound
		}
		return nil
	})
}

// NormalizeHora converts an edited timestamp to the stored layout.
func NormalizeHora(raw string) (string, bool) {
	raw = strings.ReplaceAll(strings.TrimSpace(raw), "T", " ")
	if raw == "" {
		return "", false
	}
	for _, layout := range horaInputLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(models.HoraLayout), true
		}
	}
	return "", false
}

// ParseTicketIDs keeps the positive integer tokens of a comma separated list,
// without duplicates and in order of appearance.
func ParseTicketIDs(raw string) []int {
	seen := make(map[int]bool)
	var ids []int
	for _, token := range strings.Split(raw, ",") {
		token = strings.TrimSpace(token)
		if token == "" || strings.Trim(token, "0123456789") != "" {
			continue
		}
		id, err := strconv.Atoi(token)
		if err != nil || id <= 0 || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids
}

// DeleteTickets removes the given ids. Missing ids are ignored; the number of
// rows actually deleted is returned.
func (s *TicketService) DeleteTickets(ctx context.Context, ids []int) (int64, error) {
	if len(ids) == 0 {
		return 0, ErrNoValidIDs
	}
	result := s.db.WithContext(ctx).Where("id IN ?", ids).Delete(&models.TicketModel{})
	if result.Error != nil {
		return 0, fmt.Errorf("eliminando tickets: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// ListTickets returns the tickets matching the filter, newest id first
func (s *TicketService) ListTickets(ctx context.Context, filter dtos.TicketFilterDTO) ([]models.TicketModel, error) {
	query := s.db.WithContext(ctx).Model(&models.TicketModel{})
	if models.IsValidStatus(filter.Status) {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Tech != "" && filter.Tech != filterTodos {
		query = query.Where("atendido_por = ?", filter.Tech)
	}

	var tickets []models.TicketModel
	if err := query.Order("id DESC").Find(&tickets).Error; err != nil {
		return nil, err
	}
	return tickets, nil
}

// GetTicketFeed lists the filtered tickets and collects those with id > sinceID.
// The listing is ordered by id descending, so the scan stops at the first older ticket.
// A sinceID of zero means the caller has not seen any ticket yet and gets no news.
func (s *TicketService) GetTicketFeed(ctx context.Context, filter dtos.TicketFilterDTO, sinceID int) (*TicketFeed, error) {
	tickets, err := s.ListTickets(ctx, filter)
	if err != nil {
		return nil, err
	}

	feed := &TicketFeed{Tickets: tickets, News: []dtos.TicketNewsDTO{}}
	if len(tickets) > 0 {
		feed.MaxID = tickets[0].ID
	}

	if sinceID > 0 {
		for _, t := range tickets {
			if t.ID <= sinceID {
				break
			}
			feed.News = append(feed.News, dtos.TicketNewsDTO{
				ID:       t.ID,
				Cubiculo: t.Cubiculo,
				Problema: t.Problema,
				Hora:     t.Hora,
			})
		}
	}

	return feed, nil
}
