// Package serializer prints a flat filter to the native RF syntax the
// game client accepts (spec.md §6 "Native filter format (RF) —
// bit-exact"), generalized from the teacher's small serialize-to-bytes
// functions (`pkg/export/json.go`'s `ExportJSON`/`SaveJSONToFile`) from
// JSON to the RF text format.
package serializer

import (
	"fmt"
	"strings"

	"github.com/filter-spirit/filterspirit/pkg/condition"
	"github.com/filter-spirit/filterspirit/pkg/filter"
)

// Preamble holds the optional comment header fields (spec.md §6
// "Preamble"). A zero Preamble produces no header.
type Preamble struct {
	Version          string
	GenerationDate   string
	PriceDataDate    string
	SourceTag        string
	LeagueName       string
	AttributionLines []string
}

func (p Preamble) empty() bool {
	return p.Version == "" && p.GenerationDate == "" && p.PriceDataDate == "" &&
		p.SourceTag == "" && p.LeagueName == "" && len(p.AttributionLines) == 0
}

// Serialize renders flt to bit-exact RF text, with an optional preamble
// prepended (spec.md §6). Every preamble line begins with `#`.
func Serialize(flt filter.Flat, preamble Preamble) string {
	var out strings.Builder
	if !preamble.empty() {
		out.WriteString(renderPreamble(preamble))
		out.WriteString("\n")
	}

	for i, block := range flt.Blocks {
		if i > 0 {
			out.WriteString("\n")
		}
		writeBlock(&out, block)
	}
	return out.String()
}

func renderPreamble(p Preamble) string {
	var out strings.Builder
	if p.Version != "" {
		fmt.Fprintf(&out, "# Generated by Filter Spirit %s\n", p.Version)
	}
	if p.GenerationDate != "" {
		fmt.Fprintf(&out, "# Generated on %s\n", p.GenerationDate)
	}
	if p.PriceDataDate != "" {
		fmt.Fprintf(&out, "# Price data downloaded %s\n", p.PriceDataDate)
	}
	if p.SourceTag != "" {
		fmt.Fprintf(&out, "# Price data source: %s\n", p.SourceTag)
	}
	if p.LeagueName != "" {
		fmt.Fprintf(&out, "# League: %s\n", p.LeagueName)
	}
	for _, line := range p.AttributionLines {
		fmt.Fprintf(&out, "# %s\n", line)
	}
	return out.String()
}

// writeBlock prints one block's Show/Hide/Minimal header, its tab-indented
// condition and action lines, an optional Continue, per spec.md §6.
func writeBlock(out *strings.Builder, block filter.Block) {
	if block.Import != "" {
		fmt.Fprintf(out, "# import %s\n", block.Import)
		return
	}

	fmt.Fprintf(out, "%s\n", block.Visibility)
	for _, cond := range block.Conditions.Conditions {
		if !cond.IsValid() {
			continue
		}
		fmt.Fprintf(out, "\t%s\n", cond.Print())
	}
	for _, line := range actionLines(block.Actions) {
		fmt.Fprintf(out, "\t%s\n", line)
	}
	if block.Continue.Present {
		out.WriteString("\tContinue\n")
	}
}

// actionLines renders every set field of an Action to its native syntax
// line, in a fixed, stable order (spec.md §6 "Disabled fields are
// omitted (no empty operands)").
func actionLines(a condition.Action) []string {
	var lines []string
	if a.BorderColor != nil {
		lines = append(lines, "SetBorderColor "+a.BorderColor.Value.String())
	}
	if a.TextColor != nil {
		lines = append(lines, "SetTextColor "+a.TextColor.Value.String())
	}
	if a.BackgroundColor != nil {
		lines = append(lines, "SetBackgroundColor "+a.BackgroundColor.Value.String())
	}
	if a.FontSize != nil {
		lines = append(lines, fmt.Sprintf("SetFontSize %d", a.FontSize.Value))
	}
	if a.AlertSound != nil {
		snd := a.AlertSound.Value
		if snd.Custom {
			lines = append(lines, "CustomAlertSound "+snd.String())
		} else {
			lines = append(lines, "PlayAlertSound "+snd.String())
		}
	}
	if a.DisableDropSound != nil {
		if a.DisableDropSound.Value {
			lines = append(lines, "DisableDropSound")
		} else {
			lines = append(lines, "EnableDropSound")
		}
	}
	if a.MinimapIcon != nil {
		lines = append(lines, "MinimapIcon "+a.MinimapIcon.Value.String())
	}
	if a.BeamEffect != nil {
		lines = append(lines, "PlayEffect "+a.BeamEffect.Value.String())
	}
	return lines
}
