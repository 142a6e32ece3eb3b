package printing

import (
	"bytes"
	"fmt"
	"html/template"
)

// NoteDocument carries the data rendered into a dispatch note PDF.
type NoteDocument struct {
	Number         int
	DispatchDate   string
	ClientName     string
	ClientRUT      string
	ClientAddress  string
	ClientPhone    string
	DeliveryMode   string
	ScheduleFrom   string
	ScheduleTo     string
	Observation    string
	RequestStatus  string
	GeneratedAt    string
}

var noteTemplate = template.Must(template.New("nota").Parse(`
<!DOCTYPE html>
<html lang="es">
<head>
<meta charset="UTF-8">
<title>Nota de Venta N° {{.Number}}</title>
<style>
  body { font-family: Helvetica, Arial, sans-serif; font-size: 12px; color: #222; }
  h1 { font-size: 18px; border-bottom: 2px solid #222; padding-bottom: 6px; }
  table { width: 100%; border-collapse: collapse; margin-top: 12px; }
  th, td { text-align: left; padding: 6px 8px; border-bottom: 1px solid #ccc; }
  th { width: 30%; background: #f2f2f2; }
  .obs { margin-top: 16px; white-space: pre-wrap; }
  .footer { margin-top: 24px; font-size: 10px; color: #888; }
</style>
</head>
<body>
<h1>Nota de Venta N° {{.Number}}</h1>
<table>
  <tr><th>Cliente</th><td>{{.ClientName}}</td></tr>
  {{if .ClientRUT}}<tr><th>RUT</th><td>{{.ClientRUT}}</td></tr>{{end}}
  {{if .ClientAddress}}<tr><th>Dirección</th><td>{{.ClientAddress}}</td></tr>{{end}}
  {{if .ClientPhone}}<tr><th>Teléfono</th><td>{{.ClientPhone}}</td></tr>{{end}}
  <tr><th>Fecha de despacho</th><td>{{.DispatchDate}}</td></tr>
  {{if .DeliveryMode}}<tr><th>Modo de entrega</th><td>{{.DeliveryMode}}</td></tr>{{end}}
  {{if .ScheduleFrom}}<tr><th>Horario</th><td>{{.ScheduleFrom}}{{if .ScheduleTo}} - {{.ScheduleTo}}{{end}}</td></tr>{{end}}
  <tr><th>Estado solicitud</th><td>{{.RequestStatus}}</td></tr>
</table>
{{if .Observation}}
<div class="obs"><strong>Observación:</strong><br>{{.Observation}}</div>
{{end}}
<div class="footer">Documento generado el {{.GeneratedAt}}</div>
</body>
</html>
`))

// RenderNoteHTML renders the dispatch note template for the given document.
func RenderNoteHTML(doc *NoteDocument) (string, error) {
	var buf bytes.Buffer
	if err := noteTemplate.Execute(&buf, doc); err != nil {
		return "", fmt.Errorf("failed to render note template: %w", err)
	}
	return buf.String(), nil
}
