package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"

	"padhost/internal/deviceopts"
	"padhost/internal/profile"
	"padhost/internal/textutil"
)

func familyNames() []string {
	families := deviceopts.Families()
	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.String())
	}
	return names
}

// parseFamilyArg resolves a family argument, suggesting the closest family
// name when it matches none.
func parseFamilyArg(arg string) (deviceopts.Family, error) {
	family, err := deviceopts.ParseFamily(arg)
	if err != nil {
		return family, withSuggestion(err, arg, familyNames())
	}
	return family, nil
}

func withSuggestion(err error, input string, candidates []string) error {
	if guess, ok := textutil.Closest(input, candidates, textutil.DefaultSuggestThreshold); ok {
		return fmt.Errorf("%w (did you mean %q?)", err, guess)
	}
	return err
}

func tunableNames(tunables []deviceopts.Tunable) []string {
	names := make([]string, 0, len(tunables))
	for _, t := range tunables {
		names = append(names, t.Name)
	}
	return names
}

func newOptionsCommand(ctx *commandContext) *cobra.Command {
	optionsCmd := &cobra.Command{
		Use:     "options",
		Aliases: []string{"opts"},
		Short:   "Inspect and edit controller family options",
	}

	optionsCmd.AddCommand(newOptionsShowCommand(ctx))
	optionsCmd.AddCommand(newOptionsSetCommand(ctx))
	optionsCmd.AddCommand(newOptionsEnableCommand(ctx, true))
	optionsCmd.AddCommand(newOptionsEnableCommand(ctx, false))
	optionsCmd.AddCommand(newOptionsResetCommand(ctx))

	return optionsCmd
}

func newOptionsShowCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:       "show [family...]",
		Short:     "Show enablement and settings of every family",
		ValidArgs: familyNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			families := deviceopts.Families()
			if len(args) > 0 {
				families = nil
				for _, arg := range args {
					family, err := parseFamilyArg(arg)
					if err != nil {
						return err
					}
					families = append(families, family)
				}
			}

			return ctx.withOptions(func(store *profile.Store, opts *deviceopts.DeviceOptions) error {
				view, err := buildOptionsView(store.Path(), opts, families)
				if err != nil {
					return err
				}
				if jsonOutput {
					return writeJSON(cmd, view)
				}
				fmt.Fprint(cmd.OutOrStdout(), renderOptionsView(view, shouldColorize(cmd.OutOrStdout())))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func newOptionsSetCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "set <family> <field> <value>",
		Short: "Change one persisted field and save the profile",
		Example: "  padhost options set dualsense LEDBarMode BatteryPercentage\n" +
			"  padhost options set ds4 Copycat true",
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			family, err := parseFamilyArg(args[0])
			if err != nil {
				return err
			}
			return ctx.withOptions(func(store *profile.Store, opts *deviceopts.DeviceOptions) error {
				tunables, err := familyTunables(opts, family)
				if err != nil {
					return err
				}
				tunable, err := deviceopts.FindTunable(tunables, args[1])
				if err != nil {
					return fmt.Errorf("%s: %w", family, withSuggestion(err, args[1], tunableNames(tunables)))
				}
				if !tunable.Persisted {
					return fmt.Errorf("%s %s is session-only and is not stored in the profile", family, tunable.Name)
				}
				value := canonicalChoice(tunable.Choices, args[2])
				changes, err := applyWatched(tunables, func() error { return tunable.Set(value) })
				if err != nil {
					return err
				}
				return saveChanges(cmd, store, opts, family, changes)
			})
		},
	}
}

func newOptionsEnableCommand(ctx *commandContext, enable bool) *cobra.Command {
	use, short := "enable <family>", "Enable support for a controller family"
	if !enable {
		use, short = "disable <family>", "Disable support for a controller family"
	}
	return &cobra.Command{
		Use:       use,
		Short:     short,
		Args:      cobra.ExactArgs(1),
		ValidArgs: familyNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			family, err := parseFamilyArg(args[0])
			if err != nil {
				return err
			}
			return ctx.withOptions(func(store *profile.Store, opts *deviceopts.DeviceOptions) error {
				record, err := opts.Enablement(family)
				if err != nil {
					return err
				}
				changes, err := applyWatched(record.Tunables(), func() error {
					record.EnabledSetting().Set(enable)
					return nil
				})
				if err != nil {
					return err
				}
				return saveChanges(cmd, store, opts, family, changes)
			})
		},
	}
}

func newOptionsResetCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:       "reset <family>",
		Short:     "Restore the default settings of a controller family",
		Args:      cobra.ExactArgs(1),
		ValidArgs: familyNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			family, err := parseFamilyArg(args[0])
			if err != nil {
				return err
			}
			return ctx.withOptions(func(store *profile.Store, opts *deviceopts.DeviceOptions) error {
				tunables, err := familyTunables(opts, family)
				if err != nil {
					return err
				}
				changes, err := applyWatched(tunables, func() error { return opts.ResetFamily(family) })
				if err != nil {
					return err
				}
				return saveChanges(cmd, store, opts, family, changes)
			})
		},
	}
}

// applyWatched runs mutate while recording every transition of tunables as
// "Name: old -> new".
func applyWatched(tunables []deviceopts.Tunable, mutate func() error) ([]string, error) {
	var changes []string
	cancels := make([]func(), 0, len(tunables))
	for _, t := range tunables {
		name := t.Name
		cancels = append(cancels, t.Watch(func(before, after string) {
			changes = append(changes, fmt.Sprintf("%s: %s -> %s", name, before, after))
		}))
	}
	defer func() {
		for _, cancel := range cancels {
			cancel()
		}
	}()

	if err := mutate(); err != nil {
		return nil, err
	}
	return changes, nil
}

func saveChanges(cmd *cobra.Command, store *profile.Store, opts *deviceopts.DeviceOptions, family deviceopts.Family, changes []string) error {
	out := cmd.OutOrStdout()
	if len(changes) == 0 {
		fmt.Fprintf(out, "No changes to %s options\n", family)
		return nil
	}
	if err := store.Save(opts); err != nil {
		return err
	}
	for _, change := range changes {
		fmt.Fprintln(out, change)
	}
	fmt.Fprintf(out, "Saved %s\n", store.Path())
	return nil
}

// canonicalChoice returns the choice matching value under Unicode case
// folding, or value unchanged when none matches.
func canonicalChoice(choices []string, value string) string {
	folder := cases.Fold()
	want := folder.String(strings.TrimSpace(value))
	for _, choice := range choices {
		if folder.String(choice) == want {
			return choice
		}
	}
	return value
}
