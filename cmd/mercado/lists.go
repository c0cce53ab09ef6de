package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dukerupert/mercado/internal/clipboard"
	"github.com/dukerupert/mercado/internal/market"
	"github.com/dukerupert/mercado/internal/suggest"
)

func newListsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "lists",
		Short: "Print saved lists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lists := a.session().Lists()
			out := cmd.OutOrStdout()
			if len(lists) == 0 {
				fmt.Fprintln(out, "Nenhuma lista salva.")
				return nil
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNOME\tITENS\tTOTAL\tATUALIZADA")
			for _, l := range lists {
				fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\n",
					l.ID, l.Name, len(l.Items),
					market.FormatCurrency(market.Total(l.Items)),
					market.FormatTimestamp(l.UpdatedAt, a.cfg.Location()))
			}
			return tw.Flush()
		},
	}
}

func newExportCmd(a *app) *cobra.Command {
	var copyText bool

	cmd := &cobra.Command{
		Use:   "export <id>",
		Short: "Print a list as text, or copy it to the clipboard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.session().ExportText(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !copyText {
				fmt.Fprintln(out, text)
				return nil
			}

			copied, err := clipboard.Copy(text, out)
			if err != nil {
				return err
			}
			if copied {
				fmt.Fprintln(cmd.ErrOrStderr(), "Lista copiada para a área de transferência.")
			} else {
				fmt.Fprintln(cmd.ErrOrStderr(), "Área de transferência indisponível; copie o texto acima.")
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&copyText, "copy", false, "copy to the system clipboard")
	return cmd
}

func newSuggestCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "suggest <query>",
		Short: "Print catalogue items matching a query",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, s := range suggest.Filter(args[0], limit) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", s.Name, s.Unit)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", suggest.DefaultLimit, "maximum number of suggestions")
	return cmd
}

func newResetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Remove every saved list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess := a.session()
			n := len(sess.Lists())
			sess.ResetAll()
			fmt.Fprintf(cmd.OutOrStdout(), "%d lista(s) removida(s).\n", n)
			return nil
		},
	}
}
