// Package catalog holds the fixed reference lists of the helpdesk: workstations
// (cubículos), problem categories and technicians.
package catalog

import (
	"slices"
	"strings"
)

var cubiculos = []string{
	"A01", "A02", "A03", "A04", "A05", "A06", "A07", "A08", "A09", "A10", "A11", "A12", "A13", "A14", "A15", "A16",
	"A17", "A18", "A19", "A20", "A21", "A22", "A23", "A24", "A25", "A26", "A27", "A28", "A29", "A30", "A31", "A32",
	"A33", "A34", "A35", "A36", "A37", "A38", "A39", "A40", "A41", "A42", "A43", "A44", "A45", "A46", "A47", "A48",
	"B01", "B02", "B03", "B04", "B05", "B06", "B07", "B08", "B09", "B10", "B11", "B12", "B13", "B14", "B15", "B16",
	"B17", "B18", "B19", "B20", "B21", "B22",
	"C01", "C02", "C03", "C04", "C05", "C06", "C07", "C08", "C09", "C10", "C11", "C12", "C13", "C14", "C15", "C16",
	"C17", "C18", "C19", "C20", "C21", "C22",
	"D01", "D02", "D03", "D04", "D05", "D06", "D07", "D08", "D09", "D10", "D11", "D12", "D13", "D14", "D15", "D16",
	"D17", "D18", "D19", "D20", "D21",
	"E01", "E02", "E03", "E04", "E05", "E06", "E07", "E08", "E09", "E10", "E11", "E12", "E13", "E14", "E15", "E16",
	"E17", "E18", "E19", "E20", "E21", "E22",
	"F01", "F02", "F03", "F04", "F05", "F06", "F07", "F08", "F09", "F10",
	"G01", "G02", "G03", "G04", "G05", "G06", "G07", "G08", "G09", "G10",
	"H01", "H02", "H03", "H04", "H05", "H06", "H07", "H08", "H09", "H10",
	"I01", "I02", "I03", "I04", "I05", "I06", "I07", "I08", "I09", "I10",
	"J01", "J02", "J03", "J04", "J05", "J06", "J07", "J08", "J09", "J10",
	"K1", "K2", "K3", "TM Ricky", "TM Rubi", "TM Julio", "TM Manuel", "TM Masao", "TM Oscar", "Back Office LCR",
	"Back Office BTR", "Contabilidad", "reclutamiento", "RH", "Psicologia", "Marketing",
	"Mantenimiento", "Ovalle",
}

var problemas = []string{
	"Audio", "Cableado", "Cambio de cubículo", "Computadora no enciende", "HeadSet", "Impresora",
	"Inicio de sesion", "Instalación de equipo", "Live caption", "Llamadas cortadas", "Logixx",
	"Monitor sin imagen", "Mouse", "Movimiento agente", "No internet", "Página congelada",
	"Pagina no carga", "Sheets/Docs", "Sistema congelado", "Slack", "Teclado", "Wifi",
	"Ytel congelado", "Ytel delay", "Ytel Interferencias", "Ytel latencia", "Ytel login",
	"Ytel logout", "Ytel script",
}

var tecnicos = []string{"Brayan", "Hans", "Diana", "Ismael"}

// lowercase -> canonical casing
var cubiculoIndex = buildIndex(cubiculos)

func buildIndex(values []string) map[string]string {
	index := make(map[string]string, len(values))
	for _, v := range values {
		index[strings.ToLower(v)] = v
	}
	return index
}

// Cubiculos returns the workstation catalog in display order
func Cubiculos() []string { return slices.Clone(cubiculos) }

// Problemas returns the problem catalog in display order
func Problemas() []string { return slices.Clone(problemas) }

// Tecnicos returns the technician catalog in display order
func Tecnicos() []string { return slices.Clone(tecnicos) }

// CanonicalCubiculo matches the trimmed input case-insensitively against the
// workstation catalog and returns the catalog spelling.
func CanonicalCubiculo(input string) (string, bool) {
	key := strings.ToLower(strings.TrimSpace(input))
	if key == "" {
		return "", false
	}
	canonical, ok := cubiculoIndex[key]
	return canonical, ok
}

// IsProblema is an exact, case-sensitive membership test.
func IsProblema(value string) bool {
	return slices.Contains(problemas, value)
}

// IsTecnico is an exact, case-sensitive membership test.
func IsTecnico(value string) bool {
	return slices.Contains(tecnicos, value)
}
