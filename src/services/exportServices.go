package services

import (
	"bufio"
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/ARQAP/mesa-de-ayuda/src/models"
)

const utf8BOM = "\ufeff"

var exportHeader = []string{"id", "cubiculo", "problema", "solucion", "status", "atendido_por", "hora", "observaciones"}

// ExportCSV writes every ticket, ignoring filters, as CSV: BOM first, every field
// quoted, quotes doubled, CRLF line endings and nulls as empty fields.
func (s *TicketService) ExportCSV(ctx context.Context, w io.Writer) error {
	rows, err := s.db.WithContext(ctx).Model(&models.TicketModel{}).Order("id ASC").Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(utf8BOM + strings.Join(exportHeader, ",") + "\r\n"); err != nil {
		return err
	}

	for rows.Next() {
		var t models.TicketModel
		if err := s.db.ScanRows(rows, &t); err != nil {
			return err
		}
		if _, err := bw.WriteString(csvLine(ticketRecord(t))); err != nil {
			return err
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	return bw.Flush()
}

func ticketRecord(t models.TicketModel) []string {
	return []string{
		strconv.Itoa(t.ID),
		t.Cubiculo,
		t.Problema,
		deref(t.Solucion),
		t.Status,
		deref(t.AtendidoPor),
		deref(t.Hora),
		deref(t.Observaciones),
	}
}

func csvLine(fields []string) string {
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = `"` + strings.ReplaceAll(f, `"`, `""`) + `"`
	}
	return strings.Join(quoted, ",") + "\r\n"
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
