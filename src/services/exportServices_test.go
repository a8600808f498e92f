package services

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/ARQAP/mesa-de-ayuda/src/dtos"
	"github.com/ARQAP/mesa-de-ayuda/src/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportCSV_Empty(t *testing.T) {
	s := newTestTicketService(t)

	var buf bytes.Buffer
	require.NoError(t, s.ExportCSV(context.Background(), &buf))
	assert.Equal(t, "\ufeffid,cubiculo,problema,solucion,status,atendido_por,hora,observaciones\r\n", buf.String())
}

func TestExportCSV_QuotesAndNulls(t *testing.T) {
	s := newTestTicketService(t)
	ctx := context.Background()

	first := submit(t, s, "A01", "Wifi")
	require.NoError(t, s.ResolveTicket(ctx, first.ID, dtos.ResolveTicketDTO{
		AtendidoPor: "Hans",
		Solucion:    `He said "ok"`,
	}))
	second := submit(t, s, "rh", "Cambio de cubículo")
	require.NoError(t, s.EditTicket(ctx, second.ID, dtos.EditTicketDTO{
		Cubiculo:      "RH",
		Problema:      "Cambio de cubículo",
		Status:        models.StatusPendiente,
		Observaciones: "piso 2, ala norte",
	}))

	var buf bytes.Buffer
	require.NoError(t, s.ExportCSV(ctx, &buf))

	out := buf.String()
	require.True(t, strings.HasPrefix(out, "\ufeff"))
	lines := strings.Split(strings.TrimPrefix(out, "\ufeff"), "\r\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "id,cubiculo,problema,solucion,status,atendido_por,hora,observaciones", lines[0])
	assert.Equal(t, `"1","A01","Wifi","He said ""ok""","resuelto","Hans","2024-05-01 09:30:15",""`, lines[1])
	assert.Equal(t, `"2","RH","Cambio de cubículo","","pendiente","","2024-05-01 09:30:15","piso 2, ala norte"`, lines[2])
	assert.Equal(t, "", lines[3])
}
