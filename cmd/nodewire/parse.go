package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dvstudio/nodewire/pkg/formatstring"
)

var parseCmd = &cobra.Command{
	Use:   "parse [template-file]",
	Short: "Parse a template and show the derived node config",
	Long: `Parses a FormatString template from a file (or stdin when no file is
given), extracts its keys, and prints the node configuration the server
would derive for it.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			tpl []byte
			err error
		)
		if len(args) == 1 {
			tpl, err = os.ReadFile(args[0])
		} else {
			tpl, err = io.ReadAll(os.Stdin)
		}
		if err != nil {
			return fmt.Errorf("failed to read template: %w", err)
		}

		keys := formatstring.ExtractKeys(string(tpl))
		cfg := formatstring.BuildConfig(keys)

		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return json.NewEncoder(os.Stdout).Encode(cfg)
		}

		var md strings.Builder
		md.WriteString("# Template Analysis\n\n")
		if len(keys) == 0 {
			md.WriteString("No keys found.\n")
		} else {
			md.WriteString("## Keys\n\n")
			for _, k := range keys {
				fmt.Fprintf(&md, "- `%s`\n", k)
			}
		}
		md.WriteString("\n## Outputs\n\n")
		for _, out := range cfg.Outputs {
			fmt.Fprintf(&md, "- `%s` (%s)\n", out.Name, out.Type)
		}

		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(80),
		)
		if err != nil {
			// Plain fallback when the renderer cannot initialize.
			fmt.Println(md.String())
			return nil
		}
		rendered, err := r.Render(md.String())
		if err != nil {
			fmt.Println(md.String())
			return nil
		}
		fmt.Print(rendered)

		p := termenv.ColorProfile()
		summary := termenv.String(fmt.Sprintf("%d key(s), %d input(s), %d output(s)",
			len(keys), len(cfg.Inputs), len(cfg.Outputs))).
			Foreground(p.Color("#5FD7AF")).
			String()
		fmt.Println(summary)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
}
