package commands

import (
	"context"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"tableflip.dev/studyboard/pkg/board"
	"tableflip.dev/studyboard/pkg/logging"
	"tableflip.dev/studyboard/pkg/prompt"
	"tableflip.dev/studyboard/pkg/store"
)

// session is one invocation's view of the configured board.
type session struct {
	config  store.Config
	backend store.Backend
	board   *board.Store
}

// loadConfig is swapped in tests.
var loadConfig = store.LoadConfig

func openSession(ctx context.Context) (*session, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	if err := logging.Configure(log.StandardLogger(), cfg.Log()); err != nil {
		return nil, fmt.Errorf("log config: %w", err)
	}
	backend, err := store.Open(cfg)
	if err != nil {
		return nil, err
	}
	b, err := board.Open(ctx, backend)
	if err != nil {
		_ = store.Close(backend)
		return nil, err
	}
	return &session{config: cfg, backend: backend, board: b}, nil
}

func (s *session) Close() {
	if err := store.Close(s.backend); err != nil {
		log.WithError(err).Debug("store: close")
	}
}

// subjectID resolves args[i] as an id, position, name or id prefix. When the
// argument is missing the user picks a subject instead.
func (s *session) subjectID(args []string, i int, title string) (string, error) {
	if len(args) > i {
		return s.board.Resolve(args[i])
	}
	return prompt.PickSubject(title, s.board.Board())
}

// subjectCompletions completes the first positional argument with subject
// ids, described by subject name.
func subjectCompletions(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	s, err := openSession(cmd.Context())
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	defer s.Close()
	return completeIDs(s.board, toComplete), cobra.ShellCompDirectiveNoFileComp
}

func completeIDs(b *board.Store, toComplete string) []string {
	var ids []string
	for _, subj := range b.Board() {
		if strings.HasPrefix(subj.ID, toComplete) {
			ids = append(ids, subj.ID+"\t"+subj.Name)
		}
	}
	return ids
}
