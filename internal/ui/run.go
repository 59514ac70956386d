package ui

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"telinput/internal/session"
)

// RunEdit runs the edit model full-screen until the user accepts or quits.
func RunEdit(ctx context.Context, sess *session.Session, opts EditOptions) (session.State, bool, error) {
	model := NewEditModel(sess, opts)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return session.State{}, false, fmt.Errorf("edit ui: %w", err)
	}
	st, ok := model.Result()
	return st, ok, model.Err()
}
