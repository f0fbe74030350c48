package commands

import (
	"fmt"
	"strings"
)

type Type string

const (
	TypeAdd      Type = "add"
	TypeDone     Type = "done"
	TypeDeadline Type = "deadline"
	TypeHide     Type = "hide"
	TypeShow     Type = "show"
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
}

type DoneArgs struct {
	Ref string
}

type DeadlineArgs struct {
	Ref  string
	When string
}

// PanelArgs names which dashboard panel to hide or show. Only "stats" is
// recognized today.
type PanelArgs struct {
	Panel string
}

type Command struct {
	Type     Type
	Raw      string
	Add      *AddArgs
	Done     *DoneArgs
	Deadline *DeadlineArgs
	Hide     *PanelArgs
	Show     *PanelArgs
}

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
		return parseDone(input, args)
	case TypeDeadline:
		return parseDeadline(input, args)
	case TypeHide:
		panel, err := parsePanel("hide", args)
		if err != nil {
			return Command{}, err
		}
		return Command{Type: TypeHide, Raw: input, Hide: panel}, nil
	case TypeShow:
		panel, err := parsePanel("show", args)
		if err != nil {
			return Command{}, err
		}
		return Command{Type: TypeShow, Raw: input, Show: panel}, nil
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseAdd(raw string, args []string) (Command, error) {
	name := strings.TrimSpace(strings.Join(args, " "))
	if name == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires a task name"}
	}
	return Command{Type: TypeAdd, Raw: raw, Add: &AddArgs{Name: name}}, nil
}

func parseDone(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "done requires a task reference"}
	}
	return Command{Type: TypeDone, Raw: raw, Done: &DoneArgs{Ref: strings.Join(args, " ")}}, nil
}

func parseDeadline(raw string, args []string) (Command, error) {
	if len(args) < 2 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "deadline requires a task reference and a date"}
	}
	return Command{
		Type:     TypeDeadline,
		Raw:      raw,
		Deadline: &DeadlineArgs{Ref: args[0], When: strings.Join(args[1:], " ")},
	}, nil
}

func parsePanel(verb string, args []string) (*PanelArgs, error) {
	if len(args) == 0 {
		return nil, &CommandError{Code: ErrCodeInvalidArgument, Message: verb + " requires a panel name"}
	}
	panel := strings.ToLower(args[0])
	if panel != "stats" {
		return nil, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown panel: %s", panel)}
	}
	return &PanelArgs{Panel: panel}, nil
}
