package commands

import (
	"fmt"
	"strings"
)

type Type string

const (
	TypeAdd    Type = "add"
	TypeDone   Type = "done"
	TypeDelete Type = "delete"
	TypeShow   Type = "show"
	TypeSync   Type = "sync"
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

type AddArgs struct {
	Name string
	Due  string
	Tags []string
}

type DoneArgs struct {
	Target string
}

type DeleteArgs struct {
	Target string
}

type ShowArgs struct {
	Subject string
}

type Command struct {
	Type   Type
	Raw    string
	Add    *AddArgs
	Done   *DoneArgs
	Delete *DeleteArgs
	Show   *ShowArgs
}

// Parse understands commands of the form:
//
//	/add water the plants due:2025-07-24 tag:home
//	/done <id-prefix>
//	/delete <id-prefix>
//	/show upcoming|completed
//	/sync
//
// The leading slash is optional.
func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}
	if strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	args := parts[1:]

	switch Type(head) {
	case TypeAdd:
		return parseAdd(input, args)
	case TypeDone:
		return parseTarget(input, TypeDone, args)
	case TypeDelete:
		return parseTarget(input, TypeDelete, args)
	case TypeShow:
		return parseShow(input, args)
	case TypeSync:
		return Command{Type: TypeSync, Raw: input}, nil
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseAdd(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires a task name"}
	}

	var nameParts []string
	add := AddArgs{}
	for _, arg := range args {
		lower := strings.ToLower(arg)
		switch {
		case strings.HasPrefix(lower, "due:"):
			add.Due = strings.TrimSpace(arg[len("due:"):])
		case strings.HasPrefix(lower, "tag:"):
			if tag := strings.TrimSpace(arg[len("tag:"):]); tag != "" {
				add.Tags = append(add.Tags, tag)
			}
		default:
			nameParts = append(nameParts, arg)
		}
	}

	add.Name = strings.TrimSpace(strings.Join(nameParts, " "))
	if add.Name == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires a task name"}
	}
	return Command{Type: TypeAdd, Raw: raw, Add: &add}, nil
}

func parseTarget(raw string, typ Type, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s requires a task id", typ)}
	}
	target := strings.TrimSpace(args[0])
	cmd := Command{Type: typ, Raw: raw}
	switch typ {
	case TypeDone:
		cmd.Done = &DoneArgs{Target: target}
	case TypeDelete:
		cmd.Delete = &DeleteArgs{Target: target}
	}
	return cmd, nil
}

func parseShow(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "show requires a subject"}
	}
	subject := strings.ToLower(args[0])
	if subject != "upcoming" && subject != "completed" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("show supports upcoming or completed, not %q", subject)}
	}
	return Command{Type: TypeShow, Raw: raw, Show: &ShowArgs{Subject: subject}}, nil
}
