// Package session runs roster commands against the roster owned by one interactive session.
package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"roster/local-app/src/pkg/data"
	"roster/local-app/src/pkg/log"
	"roster/local-app/src/pkg/model"
)

// ErrUnhandledCommand is returned for commands the session does not execute, such as help and quit.
var ErrUnhandledCommand = errors.New("command not handled by session")

// CommandHandler is a function type for command handlers.
// It returns the lines to show the user.
type CommandHandler func(context.Context, *Session, model.Command) ([]string, error)

// Session represents an individual user session
type Session struct {
	ID              string
	Roster          *data.RosterManager
	commandHandlers map[model.CommandKind]CommandHandler
	logger          *log.Logger
}

// NewSession creates a new Session instance with a fresh ID
func NewSession(roster *data.RosterManager, logger *log.Logger) *Session {
	id := uuid.NewString()
	logger.Info(context.Background(), "Creating new Session", log.Fields{"sessionID": id})

	s := &Session{
		ID:     id,
		Roster: roster,
		logger: logger,
	}
	s.initCommandHandlers()

	return s
}

// initCommandHandlers initializes the command handlers map
func (s *Session) initCommandHandlers() {
	s.commandHandlers = map[model.CommandKind]CommandHandler{
		model.CommandAdd:     handleEmployeeAdd,
		model.CommandList:    handleDepartmentList,
		model.CommandListAll: handleDepartmentListAll,
	}
}

// CommandRun executes a command within the session context
func (s *Session) CommandRun(ctx context.Context, cmd model.Command) ([]string, error) {
	s.logger.Info(ctx, "Running command", log.Fields{"sessionID": s.ID, "command": cmd.String()})

	handler, ok := s.commandHandlers[cmd.Kind]
	if !ok {
		s.logger.Error(ctx, "Invalid command", log.Fields{"sessionID": s.ID, "kind": cmd.Kind.String()})
		return nil, fmt.Errorf("%w: %s", ErrUnhandledCommand, cmd.Kind)
	}

	lines, err := handler(ctx, s, cmd)
	if err != nil {
		s.logger.Error(ctx, "Command execution failed", log.Fields{"sessionID": s.ID, "error": err})
		return nil, err
	}

	s.logger.Debug(ctx, "Command executed successfully", log.Fields{"sessionID": s.ID, "lines": len(lines)})
	return lines, nil
}
