package conversation

import (
	"context"
	"sync"

	"github.com/posty-app/post-api/internal/domain/flow"
	"github.com/posty-app/post-api/internal/domain/post"
	"github.com/posty-app/post-api/internal/infrastructure/logger"
	"github.com/posty-app/post-api/internal/utils/platformerrors"
)

// State is the phase of a guided conversation.
type State string

const (
	StateAsking     State = "asking"
	StateGenerating State = "generating"
	StateDone       State = "done"
	StateFailed     State = "failed"
)

const (
	generatingMessage = "🔮 **Criando sua obra-prima...**\n\nAnalisando suas respostas e criando um post perfeito para você!"
	readyMessage      = "🎉 **Seu post está pronto!**\n\nOlha só como ficou incrível:"
	failedMessage     = "😅 **Ops!** Algo deu errado... Que tal tentarmos novamente?"
)

// PostGenerator turns the collected answers into a post.
type PostGenerator interface {
	Generate(ctx context.Context, data flow.Data) (*post.GeneratedPost, error)
}

// Engine walks one conversation through the questionnaire, collects answers
// keyed by step id, and triggers exactly one generation at the end. All
// methods are safe for concurrent use.
type Engine struct {
	mu sync.Mutex

	flow      *flow.Flow
	generator PostGenerator

	state      State
	stepIndex  int
	data       flow.Data
	selections []string
	messages   []Message
	post       *post.GeneratedPost
}

func NewEngine(f *flow.Flow, generator PostGenerator) *Engine {
	e := &Engine{flow: f, generator: generator}
	e.reset()
	return e
}

func (e *Engine) reset() {
	e.state = StateAsking
	e.stepIndex = 0
	e.data = flow.Data{}
	e.selections = nil
	e.post = nil
	e.messages = []Message{stepMessage(e.flow.Step(0))}
}

// SubmitAnswer records the user's answer to the current step and advances
// the conversation. On a multi-select step an option click toggles the
// selection without advancing; typed answers advance immediately. Answering
// the trigger step runs generation before returning.
func (e *Engine) SubmitAnswer(ctx context.Context, value string, isOption bool) ([]Message, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.acceptingInput(ctx); err != nil {
		return nil, err
	}

	step := e.flow.Step(e.stepIndex)

	if step.MultiSelect && isOption {
		e.toggleSelection(value)
		e.data[step.ID] = joinSelections(e.selections)
		return nil, nil
	}

	e.messages = append(e.messages, newMessage(RoleUser, value))

	if e.flow.IsTrigger(e.stepIndex) {
		return e.generateLocked(ctx)
	}

	answer := value
	// The skip option only exists on the additional-instructions step; the
	// same words typed anywhere else are a real answer.
	if step.ID == flow.StepAdditional && value == flow.SkipSentinel {
		answer = ""
	}
	if step.MultiSelect {
		// Typed answer on the multi-select step overrides any toggles.
		answer = value
		e.selections = nil
	}
	e.data[step.ID] = answer

	return e.advanceLocked(ctx)
}

// ConfirmMultiSelect finalizes the toggled options of the current
// multi-select step and advances. At least one option must be selected.
func (e *Engine) ConfirmMultiSelect(ctx context.Context) ([]Message, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.acceptingInput(ctx); err != nil {
		return nil, err
	}

	step := e.flow.Step(e.stepIndex)
	if !step.MultiSelect {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation, "current step is not a multi-select step", nil, "")
	}
	if len(e.selections) == 0 {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation, "no options selected", nil, "")
	}

	joined := joinSelections(e.selections)
	e.data[step.ID] = joined
	e.messages = append(e.messages, newMessage(RoleUser, "Selecionei: "+joined))
	e.selections = nil

	return e.advanceLocked(ctx)
}

// Restart throws away everything and presents the first question again.
func (e *Engine) Restart() []Message {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.reset()
	return e.messages
}

// Messages returns a copy of the transcript.
func (e *Engine) Messages() []Message {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]Message, len(e.messages))
	copy(out, e.messages)
	return out
}

// Snapshot reports the conversation state for serialization.
func (e *Engine) Snapshot() (State, flow.Data, []Message, *post.GeneratedPost) {
	e.mu.Lock()
	defer e.mu.Unlock()
	messages := make([]Message, len(e.messages))
	copy(messages, e.messages)
	return e.state, e.data.Clone(), messages, e.post
}

// Data returns a copy of the collected answers.
func (e *Engine) Data() flow.Data {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.data.Clone()
}

// Post returns the generated post, or nil before generation completes.
func (e *Engine) Post() *post.GeneratedPost {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.post
}

func (e *Engine) acceptingInput(ctx context.Context) error {
	switch e.state {
	case StateAsking, StateFailed:
		return nil
	case StateGenerating:
		return platformerrors.NewError(ctx, platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation, "generation in progress, input not accepted", nil, "")
	default:
		return platformerrors.NewError(ctx, platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation, "conversation already finished, restart to begin again", nil, "")
	}
}

// advanceLocked moves to the next step and emits its question. Callers hold
// the mutex.
func (e *Engine) advanceLocked(ctx context.Context) ([]Message, error) {
	e.stepIndex++
	if e.stepIndex >= e.flow.Len() {
		return e.generateLocked(ctx)
	}
	msg := stepMessage(e.flow.Step(e.stepIndex))
	e.messages = append(e.messages, msg)
	return []Message{msg}, nil
}

// generateLocked runs the single generation for this conversation. The
// transient working message is replaced by the outcome, mirroring a chat UI
// swapping its spinner bubble.
func (e *Engine) generateLocked(ctx context.Context) ([]Message, error) {
	e.state = StateGenerating
	working := newMessage(RoleAI, generatingMessage)
	working.Generating = true
	e.messages = append(e.messages, working)

	generated, err := e.generator.Generate(ctx, e.data.Clone())
	if err != nil || generated == nil {
		log := logger.GetLogger()
		log.Error().Err(err).Msg("[Engine] post generation failed")
		e.state = StateFailed
		failed := newMessage(RoleAI, failedMessage)
		failed.Error = true
		e.messages[len(e.messages)-1] = failed
		return []Message{failed}, nil
	}

	e.post = generated
	e.state = StateDone
	ready := newMessage(RoleAI, readyMessage)
	ready.Post = generated
	e.messages[len(e.messages)-1] = ready
	return []Message{ready}, nil
}

func (e *Engine) toggleSelection(value string) {
	for i, sel := range e.selections {
		if sel == value {
			e.selections = append(e.selections[:i], e.selections[i+1:]...)
			return
		}
	}
	e.selections = append(e.selections, value)
}

func joinSelections(selections []string) string {
	out := ""
	for i, sel := range selections {
		if i > 0 {
			out += ", "
		}
		out += sel
	}
	return out
}

func stepMessage(step flow.Step) Message {
	msg := newMessage(RoleAI, step.Content)
	msg.Options = append([]string(nil), step.Options...)
	msg.MultiSelect = step.MultiSelect
	return msg
}
