package executor

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tdnguyen/aureus/src/advisor"
	"github.com/tdnguyen/aureus/src/agent"
	"github.com/tdnguyen/aureus/src/aisdk"
)

// StepRequest describes a single model round-trip within a turn.
type StepRequest struct {
	// The conversation context
	Conversation *aisdk.Conversation

	// The message to send (nil for tool-result-only round-trips, where the
	// results are already appended to the conversation)
	Message *aisdk.Message

	// Model client to use
	ModelClient aisdk.ModelClient

	// Optional toolbox for function calling
	Toolbox *agent.DefaultToolbox

	// Optional callbacks
	Callbacks *Callbacks

	// Current turn number
	TurnNumber int
}

// StepResult represents the result of a single execution step
type StepResult struct {
	// The current state after this execution step
	State ExecutionState

	// The assistant message returned by the model (if any)
	Message *aisdk.Message

	// Tool calls that need to be executed (if State == StateToolCallsNeeded)
	ToolCalls []aisdk.ToolCall

	// Tool results appended to the conversation (if State == StateToolCallsCompleted)
	ToolResults []*aisdk.Message

	// Error information (if State == StateError)
	Error error
}

// Step executes a single model round-trip and appends the exchanged messages
// to the conversation. The caller is responsible for turn tracking and
// deciding whether to continue.
func (s *Service) Step(ctx context.Context, req *StepRequest) (*StepResult, error) {
	if req.ModelClient == nil {
		return &StepResult{State: StateError, Error: ErrModelClientRequired}, nil
	}
	if req.Conversation == nil {
		return &StepResult{State: StateError, Error: ErrConversationRequired}, nil
	}

	ag := &agent.Agent{
		Model:   req.ModelClient,
		Toolbox: req.Toolbox,
		Logger:  s.logger,
	}

	reply, err := ag.SendMessage(ctx, req.Conversation, req.Message)
	if err != nil {
		// Model failures propagate; there is no local recovery for the chat
		// channel itself.
		return &StepResult{State: StateError, Error: err}, nil
	}

	if req.Message != nil {
		req.Conversation.Append(req.Message)
	}
	reply.CreatedAt = time.Now()
	req.Conversation.Append(reply)

	if len(reply.ToolCalls) > 0 {
		s.logger.Debug("model requested tool calls",
			"conversation_id", req.Conversation.ID,
			"turn", req.TurnNumber,
			"count", len(reply.ToolCalls))
		return &StepResult{
			State:     StateToolCallsNeeded,
			Message:   reply,
			ToolCalls: reply.ToolCalls,
		}, nil
	}

	return &StepResult{
		State:   StateTextResponse,
		Message: reply,
	}, nil
}

// ExecuteToolCalls dispatches the given tool calls in request order and
// returns one tool-result message per call, tagged with the originating call
// id so the model can pair results with requests.
func (s *Service) ExecuteToolCalls(ctx context.Context, req *ToolExecutionRequest) (*StepResult, error) {
	if req.Toolbox == nil {
		return &StepResult{State: StateError, Error: ErrToolboxRequired}, nil
	}

	results := make([]*aisdk.Message, 0, len(req.ToolCalls))
	for i := range req.ToolCalls {
		call := req.ToolCalls[i]

		if err := req.Callbacks.ToolCall(call); err != nil {
			return &StepResult{State: StateError, Error: err}, nil
		}

		resp, err := req.Toolbox.ExecuteTool(ctx, &call)
		if err != nil {
			// Protocol violations and tool handler failures both abort the
			// turn; only the price lookup recovers from its own failures,
			// and it does so internally.
			return &StepResult{State: StateError, Error: err}, nil
		}

		result := &aisdk.Message{
			Role:       aisdk.RoleTool,
			Content:    string(resp.Content),
			Name:       call.Function.Name,
			ToolCallID: call.ID,
		}
		results = append(results, result)

		if err := req.Callbacks.ToolResult(call.Function.Name, result, nil); err != nil {
			return &StepResult{State: StateError, Error: err}, nil
		}
	}

	return &StepResult{
		State:       StateToolCallsCompleted,
		ToolResults: results,
	}, nil
}

// TurnRequest describes one user turn against the conversation.
type TurnRequest struct {
	// Conversation to continue. Nil starts a fresh conversation seeded with
	// the service's system prompt.
	Conversation *aisdk.Conversation

	// The user's input text
	Input string

	// Model client driving the conversation
	ModelClient aisdk.ModelClient

	// Model client used for the final translation. Defaults to ModelClient.
	TranslatorClient aisdk.ModelClient

	// Toolbox advertised to the model
	Toolbox *agent.DefaultToolbox

	// Optional callbacks
	Callbacks *Callbacks
}

// TurnResult is the outcome of a completed user turn.
type TurnResult struct {
	// Conversation including all messages exchanged during the turn
	Conversation *aisdk.Conversation

	// The assistant's final text reply
	Reply string

	// Reply rendered in the service's target language. Empty when the reply
	// is empty.
	Translation string
}

// Turn runs one full user turn: send the input, dispatch any tool calls the
// model requests, feed the results back, and repeat until the model answers
// with plain text or the round-trip limit is hit. The final reply is
// translated into the target language as a separate model call.
//
// Blank input is a no-op: the conversation is returned unchanged with an
// empty reply.
func (s *Service) Turn(ctx context.Context, req *TurnRequest) (*TurnResult, error) {
	conversation := req.Conversation
	if conversation == nil {
		conversation = aisdk.NewConversation(uuid.NewString(), s.systemPrompt, nil)
	}

	if strings.TrimSpace(req.Input) == "" {
		return &TurnResult{Conversation: conversation}, nil
	}

	message := &aisdk.Message{
		Role:      aisdk.RoleUser,
		Content:   req.Input,
		CreatedAt: time.Now(),
	}

	var reply string
	for turn := 1; ; turn++ {
		if turn > s.maxTurns {
			return nil, ErrMaxTurnsExceeded
		}

		step, err := s.Step(ctx, &StepRequest{
			Conversation: conversation,
			Message:      message,
			ModelClient:  req.ModelClient,
			Toolbox:      req.Toolbox,
			Callbacks:    req.Callbacks,
			TurnNumber:   turn,
		})
		if err != nil {
			return nil, err
		}
		message = nil

		switch step.State {
		case StateToolCallsNeeded:
			exec, err := s.ExecuteToolCalls(ctx, &ToolExecutionRequest{
				ToolCalls:      step.ToolCalls,
				Toolbox:        req.Toolbox,
				ConversationID: conversation.ID,
				Callbacks:      req.Callbacks,
				TurnNumber:     turn,
			})
			if err != nil {
				return nil, err
			}
			if exec.State == StateError {
				return nil, exec.Error
			}
			conversation.Append(exec.ToolResults...)

		case StateTextResponse:
			reply = step.Message.Content

		default:
			return nil, step.Error
		}

		if step.State == StateTextResponse {
			break
		}
	}

	conversation.TurnCount++

	translator := req.TranslatorClient
	if translator == nil {
		translator = req.ModelClient
	}
	translation := advisor.Translate(ctx, translator, reply, s.targetLanguage)

	return &TurnResult{
		Conversation: conversation,
		Reply:        reply,
		Translation:  translation,
	}, nil
}
