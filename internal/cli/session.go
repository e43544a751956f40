package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Session commands against a wordscramble server",
	}

	cmd.AddCommand(newSessionNewCmd())
	cmd.AddCommand(newSessionGetCmd())
	cmd.AddCommand(newSessionSubmitCmd())
	cmd.AddCommand(newSessionRestartCmd())
	cmd.AddCommand(newSessionEndCmd())

	return cmd
}

func newSessionNewCmd() *cobra.Command {
	var rootWord string

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Start a new session and make it current",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{}
			if rootWord != "" {
				req["root_word"] = rootWord
			}

			var result Session

			if err := client.Post("/api/v1/sessions", req, &result); err != nil {
				return err
			}

			if err := cfg.SaveSession(result.ID); err != nil {
				return fmt.Errorf("failed to save session: %w", err)
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&rootWord, "root", "", "Root word (default: random)")

	return cmd
}

func newSessionGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get [id]",
		Short: "Show a session (default: current)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := cfg.ResolveSession(optionalArg(args))
			if err != nil {
				return err
			}

			var result Session

			if err := client.Get(sessionPath(id), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newSessionSubmitCmd() *cobra.Command {
	var sessionID string

	cmd := &cobra.Command{
		Use:   "submit <word>",
		Short: "Submit a word to the current session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := cfg.ResolveSession(sessionID)
			if err != nil {
				return err
			}

			var result SubmitResult

			if err := client.Post(sessionPath(id)+"/words", map[string]string{"word": args[0]}, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&sessionID, "session", "", "Session ID (default: current)")

	return cmd
}

func newSessionRestartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "restart [id]",
		Short: "Start over with a new root word",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := cfg.ResolveSession(optionalArg(args))
			if err != nil {
				return err
			}

			var result Session

			if err := client.Post(sessionPath(id)+"/restart", nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newSessionEndCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "end [id]",
		Short: "End a session",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := cfg.ResolveSession(optionalArg(args))
			if err != nil {
				return err
			}

			if err := client.Delete(sessionPath(id)); err != nil {
				return err
			}

			if id == cfg.SessionID {
				if err := cfg.ClearSession(); err != nil {
					return err
				}
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("Ended session %s", id))
			return nil
		},
	}
}

func sessionPath(id string) string {
	return fmt.Sprintf("/api/v1/sessions/%s", id)
}

func optionalArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}
