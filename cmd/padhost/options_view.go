package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"padhost/internal/deviceopts"
)

type optionsView struct {
	Profile            string       `json:"profile"`
	VerboseLogMessages bool         `json:"verbose_log_messages"`
	Families           []familyView `json:"families"`
}

type familyView struct {
	Family  string      `json:"family"`
	Element string      `json:"element"`
	Enabled bool        `json:"enabled"`
	Fields  []fieldView `json:"fields"`
}

type fieldView struct {
	Name      string   `json:"name"`
	Value     string   `json:"value"`
	Persisted bool     `json:"persisted"`
	Choices   []string `json:"choices"`
}

// familyTunables lists the enablement record's tunables followed by the
// settings group's.
func familyTunables(opts *deviceopts.DeviceOptions, family deviceopts.Family) ([]deviceopts.Tunable, error) {
	record, err := opts.Enablement(family)
	if err != nil {
		return nil, err
	}
	store, err := opts.Store(family)
	if err != nil {
		return nil, err
	}
	return append(record.Tunables(), store.Tunables()...), nil
}

func buildOptionsView(profilePath string, opts *deviceopts.DeviceOptions, families []deviceopts.Family) (optionsView, error) {
	view := optionsView{
		Profile:            profilePath,
		VerboseLogMessages: opts.VerboseLogMessages,
	}
	for _, family := range families {
		record, err := opts.Enablement(family)
		if err != nil {
			return optionsView{}, err
		}
		tunables, err := familyTunables(opts, family)
		if err != nil {
			return optionsView{}, err
		}
		fv := familyView{
			Family:  family.String(),
			Element: family.ElementName(),
			Enabled: record.EnabledSetting().Get(),
		}
		for _, t := range tunables {
			fv.Fields = append(fv.Fields, fieldView{
				Name:      t.Name,
				Value:     t.Get(),
				Persisted: t.Persisted,
				Choices:   t.Choices,
			})
		}
		view.Families = append(view.Families, fv)
	}
	return view, nil
}

func renderOptionsView(view optionsView, colorize bool) string {
	rows := make([]table.Row, 0, len(view.Families)*4)
	for _, family := range view.Families {
		for i, field := range family.Fields {
			label := ""
			if i == 0 {
				label = familyDisplayName(family.Element)
			}
			scope := "persisted"
			if !field.Persisted {
				scope = "session"
			}
			rows = append(rows, table.Row{
				label,
				field.Name,
				colorValue(field.Value, colorize),
				scope,
				strings.Join(field.Choices, ", "),
			})
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Profile: %s\n", view.Profile)
	b.WriteString(renderTable(table.Row{"Family", "Field", "Value", "Scope", "Choices"}, rows, colorize))
	b.WriteByte('\n')
	fmt.Fprintf(&b, "Verbose log messages: %s\n", colorValue(yesNo(view.VerboseLogMessages), colorize))
	return b.String()
}

func familyDisplayName(element string) string {
	return strings.TrimSuffix(element, "SupportSettings")
}

// writeJSON encodes v as indented JSON to the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
