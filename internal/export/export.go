// Package export renders personas in interchange formats. Every renderer
// is a pure function of the record.
package export

import (
	"bytes"
	"encoding/base64"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
	"gopkg.in/yaml.v3"

	"github.com/zarlcorp/zpersona/internal/persona"
)

// Formats lists the renderer names accepted by Render.
var Formats = []string{"json", "yaml", "csv", "qr"}

// Render dispatches to the renderer named by format.
func Render(p persona.Persona, format string) (string, error) {
	switch format {
	case "json":
		return JSON(p)
	case "yaml":
		return YAML(p)
	case "csv":
		return CSV(p)
	case "qr":
		return QR(p)
	}
	return "", fmt.Errorf("export: unknown format %q (have %s)", format, strings.Join(Formats, ", "))
}

// JSON renders the persona as indented JSON.
func JSON(p persona.Persona) (string, error) {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return "", fmt.Errorf("export json: %w", err)
	}
	return string(data), nil
}

// YAML renders the persona with the same key names as the JSON form by
// round-tripping through the JSON field tags.
func YAML(p persona.Persona) (string, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("export yaml: %w", err)
	}
	var generic map[string]any
	if err := json.Unmarshal(data, &generic); err != nil {
		return "", fmt.Errorf("export yaml: %w", err)
	}
	out, err := yaml.Marshal(generic)
	if err != nil {
		return "", fmt.Errorf("export yaml: %w", err)
	}
	return string(out), nil
}

// CSV renders a header row and one value row using the flattened field
// order of Flatten.
func CSV(p persona.Persona) (string, error) {
	fields := Flatten(p)

	header := make([]string, len(fields))
	values := make([]string, len(fields))
	for i, f := range fields {
		header[i] = f.Key
		values[i] = f.Value
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return "", fmt.Errorf("export csv: %w", err)
	}
	if err := w.Write(values); err != nil {
		return "", fmt.Errorf("export csv: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("export csv: %w", err)
	}
	return buf.String(), nil
}

// QR encodes the contact summary (name, email, phone) as a PNG QR code
// and returns it as a data URI.
func QR(p persona.Persona) (string, error) {
	payload := fmt.Sprintf("Name: %s\nEmail: %s\nPhone: %s", p.Name, p.Email, p.Phone)
	png, err := qrcode.Encode(payload, qrcode.Medium, 256)
	if err != nil {
		return "", fmt.Errorf("export qr: %w", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}

// Table renders the summary table the CLI prints, in the style of the
// generate view: aligned label/value lines.
func Table(p persona.Persona) string {
	rows := []Field{
		{"id", p.ID},
		{"name", p.Name},
		{"username", p.Username},
		{"email", p.Email},
		{"phone", p.Phone},
		{"address", p.Address.FullAddress},
		{"job", p.Job},
		{"ssn", p.SSN},
		{"card", fmt.Sprintf("%s (%s)", p.CreditCard.Number, p.CreditCard.Provider)},
		{"website", p.Website},
		{"birthdate", p.Birthdate.Format("2006-01-02")},
		{"age", fmt.Sprintf("%d", p.Age)},
		{"blood", p.BloodGroup},
	}
	if p.SeedString != "" {
		rows = append(rows, Field{"seed", p.SeedString})
	}

	var b strings.Builder
	for _, r := range rows {
		fmt.Fprintf(&b, "  %-10s %s\n", r.Key+":", r.Value)
	}
	return b.String()
}
