package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/Makepad-fr/tada/internal/app"
	"github.com/Makepad-fr/tada/internal/ui"
	"github.com/Makepad-fr/tada/internal/view"
)

func newReplayCmd(env *runtimeEnv) *cobra.Command {
	var color string
	cmd := &cobra.Command{
		Use:   "replay [script]",
		Short: "Run a script of editor actions without a terminal UI",
		Long: `Replay reads one action per line (from a file, or stdin when no file or "-"
is given), raises each as an event on the list as currently rendered, the
way the terminal editor does for key presses, and prints the final list.
Actions aimed at something not on screen, such as a missing row or an
edit with no todo selected, do nothing.

Actions:
  new <text>       set the new-todo input
  create           create a todo from the new-todo input
  add <text>       new + create
  toggle <row>     toggle the todo on 1-based row
  remove <row>     remove the todo on row
  clear            remove every todo
  select <row>     start editing row
  edit <text>      replace the title being edited
  commit           save the edit
  deselect         drop the edit`,
		Example: `  printf 'add Buy milk\nadd Walk dog\ntoggle 1\n' | todo replay
  todo replay session.txt --color=never`,
		Args: usageArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := parseColorMode(color)
			if err != nil {
				return err
			}
			in := env.stdin
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open script: %w", err)
				}
				defer f.Close()
				in = f
			}
			p := ui.NewPrinter(env.stdout, env.stderr, env.cfg.Theme, mode)
			return replay(in, p, env.logger, app.NewState(app.WithCommitPolicy(env.cfg.CommitPolicy())))
		},
	}
	cmd.Flags().StringVar(&color, "color", "auto", "colour output: auto, always or never")
	return cmd
}

func parseColorMode(s string) (ui.ColorMode, error) {
	switch s {
	case "", "auto":
		return ui.ColorAuto, nil
	case "always":
		return ui.ColorAlways, nil
	case "never":
		return ui.ColorNever, nil
	}
	return ui.ColorAuto, usageErrorf("--color must be auto, always or never (got %q)", s)
}

// replay is the headless runtime: it fires each step's events at the
// rendered tree, re-renders, and fulfils focus requests against the fresh
// tree.
func replay(r io.Reader, p *ui.Printer, logger *log.Logger, s app.State) error {
	steps, err := parseScript(r)
	if err != nil {
		return err
	}

	logger.Debug("replay", "steps", len(steps), "commit", s.CommitPolicy())
	tree := view.Render(s)
	for _, st := range steps {
		for _, a := range st.actions() {
			node, ok := a.target(tree)
			if !ok {
				logger.Debug("no target", "line", st.line, "verb", st.verb)
				continue
			}
			msg, ok := node.Handle(a.event)
			if !ok {
				continue
			}
			var req *app.FocusRequest
			s, req = app.Transition(s, msg)
			tree = view.Render(s)
			logger.Debug("dispatch", "line", st.line, "msg", app.Describe(msg), "todos", s.Len())
			if req != nil {
				focusHeadless(tree, *req, logger)
			}
		}
	}

	p.Panel(p.TreeLines(tree))
	p.OK(fmt.Sprintf("replayed %d %s", len(steps), plural(len(steps), "action", "actions")))
	return nil
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

func focusHeadless(tree view.Node, req app.FocusRequest, logger *log.Logger) {
	node, ok := view.FindFocus(tree, req.Handle)
	if !ok {
		logger.Debug("focus target gone", "handle", req.Handle)
		return
	}
	logger.Debug("focus", "handle", req.Handle, "caret", req.Caret, "value", node.Value)
}
