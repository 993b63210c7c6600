package conversation

import (
	"context"
	"errors"
	"testing"

	"github.com/posty-app/post-api/internal/domain/flow"
	"github.com/posty-app/post-api/internal/domain/post"
	"github.com/posty-app/post-api/internal/utils/platformerrors"
)

type fakeGenerator struct {
	calls int
	data  flow.Data
	err   error
}

func (f *fakeGenerator) Generate(ctx context.Context, data flow.Data) (*post.GeneratedPost, error) {
	f.calls++
	f.data = data
	if f.err != nil {
		return nil, f.err
	}
	return &post.GeneratedPost{
		Content:          "Post gerado para " + data.Platform(),
		ImageDescription: "modern workspace",
	}, nil
}

func answer(t *testing.T, e *Engine, value string, isOption bool) []Message {
	t.Helper()
	messages, err := e.SubmitAnswer(context.Background(), value, isOption)
	if err != nil {
		t.Fatalf("SubmitAnswer(%q): %v", value, err)
	}
	return messages
}

func walkToTrigger(t *testing.T, e *Engine) {
	t.Helper()
	answer(t, e, "💰 Vender produto/serviço", true)
	answer(t, e, "📸 Instagram", true)
	answer(t, e, "Empreendedores de 25-40 anos", false)
	answer(t, e, "🔥 Motivacional", true)
	answer(t, e, "👑 Confiante", true)
	if _, err := e.ConfirmMultiSelect(context.Background()); err != nil {
		t.Fatalf("ConfirmMultiSelect: %v", err)
	}
	answer(t, e, "Lançamento do nosso novo curso de vendas", false)
	answer(t, e, flow.SkipSentinel, true)
}

func TestEngineFullWalk(t *testing.T) {
	gen := &fakeGenerator{}
	e := NewEngine(flow.Default(), gen)

	walkToTrigger(t, e)
	messages := answer(t, e, "Vamos lá! 🚀", true)

	state, data, _, generated := e.Snapshot()
	if state != StateDone {
		t.Fatalf("state = %q, want %q", state, StateDone)
	}
	if gen.calls != 1 {
		t.Fatalf("generator called %d times, want 1", gen.calls)
	}
	if generated == nil || generated.Content == "" {
		t.Fatalf("expected a generated post, got %+v", generated)
	}

	// The trigger answer is never recorded as briefing data.
	if len(data) != 6 {
		t.Fatalf("expected 6 recorded answers, got %d: %v", len(data), data)
	}
	if data.Tone() != "🔥 Motivacional, 👑 Confiante" {
		t.Fatalf("tone = %q", data.Tone())
	}
	if data[flow.StepAdditional] != "" {
		t.Fatalf("skip must store an empty answer, got %q", data[flow.StepAdditional])
	}
	if gen.data.Platform() != "📸 Instagram" {
		t.Fatalf("generator saw platform %q", gen.data.Platform())
	}

	if len(messages) != 1 || messages[0].Post == nil || messages[0].Content != readyMessage {
		t.Fatalf("trigger answer must return the ready message, got %+v", messages)
	}
}

func TestMultiSelectToggleAndConfirm(t *testing.T) {
	e := NewEngine(flow.Default(), &fakeGenerator{})
	answer(t, e, "💬 Aumentar engajamento", true)
	answer(t, e, "💼 LinkedIn", true)
	answer(t, e, "Gestores de RH", false)

	// Toggling the same option twice deselects it again.
	answer(t, e, "🔥 Motivacional", true)
	answer(t, e, "🔥 Motivacional", true)
	_, err := e.ConfirmMultiSelect(context.Background())
	if !platformerrors.IsErrorType(err, platformerrors.ErrorTypeValidation) {
		t.Fatalf("confirm with nothing selected: got %v, want validation error", err)
	}

	answer(t, e, "😎 Descontraído", true)
	answer(t, e, "❤️ Empático", true)
	messages, err := e.ConfirmMultiSelect(context.Background())
	if err != nil {
		t.Fatalf("ConfirmMultiSelect: %v", err)
	}
	if e.Data().Tone() != "😎 Descontraído, ❤️ Empático" {
		t.Fatalf("tone = %q", e.Data().Tone())
	}
	if len(messages) != 1 {
		t.Fatalf("confirm must advance to the next question")
	}

	// The transcript records what the user picked.
	transcript := e.Messages()
	var confirmed bool
	for _, msg := range transcript {
		if msg.Role == RoleUser && msg.Content == "Selecionei: 😎 Descontraído, ❤️ Empático" {
			confirmed = true
		}
	}
	if !confirmed {
		t.Fatalf("selection summary missing from transcript")
	}
}

func TestTypedAnswerOverridesToggles(t *testing.T) {
	e := NewEngine(flow.Default(), &fakeGenerator{})
	answer(t, e, "💬 Aumentar engajamento", true)
	answer(t, e, "🐦 Twitter", true)
	answer(t, e, "Devs", false)

	answer(t, e, "🔥 Motivacional", true)
	answer(t, e, "Um tom bem sarcástico", false)
	if got := e.Data().Tone(); got != "Um tom bem sarcástico" {
		t.Fatalf("typed answer must win over toggles, got %q", got)
	}
}

func TestSkipSentinelOnlyOnAdditionalStep(t *testing.T) {
	e := NewEngine(flow.Default(), &fakeGenerator{})
	answer(t, e, "💬 Aumentar engajamento", true)
	answer(t, e, "📸 Instagram", true)

	// On the audience step the sentinel words are just an answer.
	answer(t, e, flow.SkipSentinel, false)
	if got := e.Data().Audience(); got != flow.SkipSentinel {
		t.Fatalf("audience = %q, want the literal text", got)
	}

	answer(t, e, "😎 Descontraído", true)
	if _, err := e.ConfirmMultiSelect(context.Background()); err != nil {
		t.Fatalf("ConfirmMultiSelect: %v", err)
	}
	answer(t, e, "Dica de produtividade", false)

	answer(t, e, flow.SkipSentinel, true)
	if got := e.Data().Additional(); got != "" {
		t.Fatalf("additional = %q, want empty after skip", got)
	}
}

func TestConfirmOutsideMultiSelectStep(t *testing.T) {
	e := NewEngine(flow.Default(), &fakeGenerator{})
	_, err := e.ConfirmMultiSelect(context.Background())
	if !platformerrors.IsErrorType(err, platformerrors.ErrorTypeValidation) {
		t.Fatalf("got %v, want validation error", err)
	}
}

func TestFinishedConversationRejectsInput(t *testing.T) {
	e := NewEngine(flow.Default(), &fakeGenerator{})
	walkToTrigger(t, e)
	answer(t, e, "Vamos lá! 🚀", true)

	_, err := e.SubmitAnswer(context.Background(), "mais uma coisa", false)
	if !platformerrors.IsErrorType(err, platformerrors.ErrorTypeValidation) {
		t.Fatalf("got %v, want validation error", err)
	}
}

func TestFailedGenerationAllowsRetry(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("provider down")}
	e := NewEngine(flow.Default(), gen)
	walkToTrigger(t, e)

	messages := answer(t, e, "Vamos lá! 🚀", true)
	state, _, _, generated := e.Snapshot()
	if state != StateFailed || generated != nil {
		t.Fatalf("state = %q, post = %+v", state, generated)
	}
	if len(messages) != 1 || !messages[0].Error || messages[0].Content != failedMessage {
		t.Fatalf("expected the failure message, got %+v", messages)
	}

	// The failed working bubble is replaced, not stacked.
	transcript := e.Messages()
	if transcript[len(transcript)-1].Content != failedMessage {
		t.Fatalf("last message = %q", transcript[len(transcript)-1].Content)
	}
	for _, msg := range transcript {
		if msg.Generating {
			t.Fatalf("transient working message must not survive a failure")
		}
	}

	gen.err = nil
	messages = answer(t, e, "Vamos lá! 🚀", true)
	state, _, _, generated = e.Snapshot()
	if state != StateDone || generated == nil {
		t.Fatalf("retry after failure: state = %q, post = %+v", state, generated)
	}
	if gen.calls != 2 {
		t.Fatalf("generator called %d times, want 2", gen.calls)
	}
	if messages[0].Content != readyMessage {
		t.Fatalf("expected the ready message after retry, got %q", messages[0].Content)
	}
}

func TestRestart(t *testing.T) {
	e := NewEngine(flow.Default(), &fakeGenerator{})
	walkToTrigger(t, e)
	answer(t, e, "Vamos lá! 🚀", true)

	messages := e.Restart()
	if len(messages) != 1 || messages[0].Role != RoleAI {
		t.Fatalf("restart must present the opening question, got %+v", messages)
	}
	state, data, _, generated := e.Snapshot()
	if state != StateAsking || len(data) != 0 || generated != nil {
		t.Fatalf("restart did not reset: state=%q data=%v post=%+v", state, data, generated)
	}
}
