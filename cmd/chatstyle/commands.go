package main

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/sadopc/chatstyle/internal/app"
	"github.com/sadopc/chatstyle/internal/config"
	"github.com/sadopc/chatstyle/internal/highlight"
	"github.com/sadopc/chatstyle/internal/preview"
	"github.com/sadopc/chatstyle/internal/resolve"
	"github.com/sadopc/chatstyle/internal/style"
	"github.com/sadopc/chatstyle/internal/theme"
	"github.com/sadopc/chatstyle/internal/ui/palette"
	"github.com/sadopc/chatstyle/internal/ui/varlist"
)

type setupFunc func(cmd *cobra.Command) (*env, error)

// export writes d in the configured format, highlighting CSS when asked.
func (e *env) export(cmd *cobra.Command, d *style.Declaration) error {
	format, err := style.ParseFormat(e.cfg.Format)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := style.Write(&buf, d, format, e.cfg.Selector); err != nil {
		return fmt.Errorf("export %s: %w", format, err)
	}
	out := buf.String()
	if e.cfg.Color && format == style.FormatCSS {
		out = highlight.New().Highlight(out, palette.Get(e.cfg.Editor.Palette))
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), out)
	return err
}

func newResolveCmd(setup setupFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve [theme-file]",
		Short: "Print the CSS variables of a theme",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd)
			if err != nil {
				return err
			}
			th, source, err := e.loadTheme(args)
			if err != nil {
				return err
			}
			d := resolve.Resolve(th, e.cfg.Preview)
			e.logger.Info("resolved", "source", source, "variables", d.Len(), "preview", e.cfg.Preview)
			return e.export(cmd, d)
		},
	}
}

func newPreviewCmd(setup setupFunc) *cobra.Command {
	var width int
	cmd := &cobra.Command{
		Use:   "preview [theme-file]",
		Short: "Draw a terminal swatch of a resolved theme",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd)
			if err != nil {
				return err
			}
			th, _, err := e.loadTheme(args)
			if err != nil {
				return err
			}
			d := resolve.Resolve(th, e.cfg.Preview)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), preview.Render(d, width))
			return err
		},
	}
	cmd.Flags().IntVarP(&width, "width", "w", 48, "Swatch width in cells")
	return cmd
}

func newVarsCmd(setup setupFunc) *cobra.Command {
	var keys bool
	cmd := &cobra.Command{
		Use:   "vars [filter]",
		Short: "List the CSS variables, optionally fuzzy-filtered",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd)
			if err != nil {
				return err
			}
			d := resolve.Resolve(theme.Get(e.cfg.Preset), e.cfg.Preview)
			query := ""
			if len(args) > 0 {
				query = args[0]
			}
			matches := varlist.Matches(query, varlist.Entries(d))
			if len(matches) == 0 {
				return fmt.Errorf("no variable matches %q", query)
			}
			mark := lipgloss.NewStyle()
			if e.cfg.Color {
				mark = palette.Get(e.cfg.Editor.Palette).MatchedRune
			}

			headers := []string{"VARIABLE", "VALUE"}
			if keys {
				headers = []string{"VARIABLE", "KEY", "VALUE"}
			}
			t := table.New().
				Border(lipgloss.HiddenBorder()).
				BorderHeader(false).
				Headers(headers...)
			for _, m := range matches {
				if keys {
					t.Row(m.Mark(mark), m.Var.Key, m.Value)
				} else {
					t.Row(m.Mark(mark), m.Value)
				}
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), t.Render())
			return err
		},
	}
	cmd.Flags().BoolVarP(&keys, "keys", "k", false, "Show the dotted theme key of each variable")
	return cmd
}

func newPresetsCmd(setup setupFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the built-in presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, name := range theme.PresetNames() {
				mark := " "
				if name == e.cfg.Preset {
					mark = "*"
				}
				fmt.Fprintf(out, "%s %s\n", mark, name)
			}
			return nil
		},
	}
}

func newEditCmd(setup setupFunc) *cobra.Command {
	var emitTheme bool
	cmd := &cobra.Command{
		Use:   "edit [theme-file]",
		Short: "Edit a theme interactively and print the result",
		Long: `edit opens a terminal editor over a theme file or preset. Every change
re-resolves the theme. On quit the final variables are printed, or the
edited theme itself with --theme. Nothing is written back to disk.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd)
			if err != nil {
				return err
			}
			th, source, err := e.loadTheme(args)
			if err != nil {
				return err
			}

			p := tea.NewProgram(
				app.New(e.cfg, source, th),
				tea.WithAltScreen(),
				tea.WithOutput(cmd.ErrOrStderr()),
			)
			finalModel, err := p.Run()
			if err != nil {
				return fmt.Errorf("error running editor: %w", err)
			}
			m, ok := finalModel.(app.Model)
			if !ok {
				return nil
			}

			var out string
			if emitTheme {
				data, err := theme.Marshal(m.Theme())
				if err != nil {
					return err
				}
				out = string(data)
			} else {
				out, err = m.Result()
				if err != nil {
					return err
				}
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().BoolVar(&emitTheme, "theme", false, "Print the edited theme instead of its variables")
	return cmd
}

func newConfigCmd(setup setupFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd)
			if err != nil {
				return err
			}
			data, err := yaml.Marshal(e.cfg)
			if err != nil {
				return fmt.Errorf("marshal config: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a default config file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) > 0 {
				path = args[0]
			} else {
				p, err := config.DefaultPath()
				if err != nil {
					return err
				}
				path = p
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists; use --force to overwrite", path)
			}
			if err := config.DefaultConfig().Save(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing config file")
	cmd.AddCommand(initCmd)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "chatstyle %s (commit: %s, built: %s)\n", version, commit, date)
			fmt.Fprintf(out, "\nPresets: %s\n", strings.Join(theme.PresetNames(), ", "))
		},
	}
}
