// Package interview drives the adaptive oral-exam session: classify the
// candidate, loop question → answer → evaluation through the state
// machine in internal/exam, and produce the session summary.
package interview

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ngxhuy/viva/internal/exam"
	"github.com/ngxhuy/viva/internal/llm"
	"github.com/ngxhuy/viva/internal/parse"
	"github.com/ngxhuy/viva/internal/retrieval"
)

// ErrInterrupted signals that the candidate ended the session early. The
// session finalizes with whatever history exists rather than failing.
var ErrInterrupted = errors.New("session interrupted")

// ProfileStore looks up candidate profile text. A missing candidate is
// fatal to session start.
type ProfileStore interface {
	Lookup(ctx context.Context, candidateID string) (string, error)
}

// AnswerSource obtains the candidate's answer to a question.
type AnswerSource interface {
	ReadAnswer(ctx context.Context, question string) (string, error)
}

// Memory roles used in the rolling transcript.
const (
	roleInterviewer = "interviewer"
	roleCandidate   = "candidate"
)

const (
	questionMaxTokens = 512
	evalMaxTokens     = 512
	classifyMaxTokens = 128
	generationTemp    = 0.7
	referenceCount    = 5
)

// priorScorePattern extracts a numeric prior score from profile text,
// e.g. "prior score: 7.5".
var priorScorePattern = regexp.MustCompile(`(?i)prior[ _]?score[:\s]+([0-9]+(?:\.[0-9]+)?)`)

// Options configures an Interviewer.
type Options struct {
	Provider  llm.Provider
	Profiles  ProfileStore
	Retriever retrieval.Retriever
	Answers   AnswerSource
	Config    exam.Config
	Logger    zerolog.Logger

	// OnQuestion is called before each question is put to the candidate.
	OnQuestion func(number int, difficulty exam.Difficulty, question string)

	// OnEvaluation is called after each turn with the score, analysis,
	// and the action the policy decided.
	OnEvaluation func(score float64, analysis string, action exam.Action)
}

// Interviewer runs adaptive oral-exam sessions. One session at a time;
// concurrent sessions need separate Interviewer instances.
type Interviewer struct {
	opts Options
}

// New creates an Interviewer. A nil Retriever degrades to no reference
// material.
func New(opts Options) *Interviewer {
	if opts.Retriever == nil {
		opts.Retriever = retrieval.None{}
	}
	return &Interviewer{opts: opts}
}

// RunSession runs a full session for the candidate on the given topic
// and returns the summary. It fails only when the candidate profile
// cannot be found; every failure inside the turn loop is recoverable.
func (iv *Interviewer) RunSession(ctx context.Context, candidateID, topic string) (*exam.Summary, error) {
	profile, err := iv.opts.Profiles.Lookup(ctx, candidateID)
	if err != nil {
		return nil, fmt.Errorf("lookup profile for %q: %w", candidateID, err)
	}

	level := iv.classify(ctx, profile)
	state := exam.NewState(candidateID, profile, level, topic, iv.opts.Config)
	memory := exam.NewMemory(iv.opts.Config.MemoryCapacity)

	iv.opts.Logger.Info().
		Str("candidate", candidateID).
		Str("topic", topic).
		Stringer("level", level).
		Stringer("difficulty", state.Difficulty).
		Msg("session started")

	for !state.Finished {
		// Interruption is checked at turn granularity: abandon before
		// the next request is issued and finalize what we have.
		if ctx.Err() != nil {
			iv.opts.Logger.Info().Msg("session interrupted, finalizing")
			state.Finalize()
			break
		}

		question, err := iv.generateQuestion(ctx, state, memory)
		if err != nil {
			iv.opts.Logger.Warn().Err(err).Msg("question generation failed, retrying turn")
			continue
		}

		memory.Record(roleInterviewer, question)
		if iv.opts.OnQuestion != nil {
			iv.opts.OnQuestion(state.Asked+1, state.Difficulty, question)
		}

		answer, err := iv.opts.Answers.ReadAnswer(ctx, question)
		if errors.Is(err, ErrInterrupted) || errors.Is(err, context.Canceled) {
			iv.opts.Logger.Info().Msg("session interrupted, finalizing")
			state.Finalize()
			break
		}
		if err != nil {
			iv.opts.Logger.Warn().Err(err).Msg("answer read failed, retrying turn")
			continue
		}

		score, analysis, err := iv.evaluateAnswer(ctx, state, memory, question, answer)
		if err != nil {
			iv.opts.Logger.Warn().Err(err).Msg("evaluation failed, retrying turn")
			continue
		}

		memory.Record(roleCandidate, answer)
		memory.Record(roleInterviewer, fmt.Sprintf("score: %g/10 - %s", score, analysis))

		action := state.ApplyTurn(question, answer, score, analysis)
		if iv.opts.OnEvaluation != nil {
			iv.opts.OnEvaluation(score, analysis, action)
		}

		iv.opts.Logger.Debug().
			Int("asked", state.Asked).
			Float64("score", score).
			Stringer("action", action).
			Stringer("difficulty", state.Difficulty).
			Msg("turn applied")
	}

	summary := exam.BuildSummary(uuid.NewString(), state, time.Now().UTC())
	iv.opts.Logger.Info().
		Str("session", summary.SessionID).
		Float64("final_score", summary.FinalScore).
		Int("questions", len(summary.History)).
		Msg("session finished")
	return summary, nil
}

// classify derives the ability level from the profile's prior score, or
// asks the model when the profile carries none. Every failure along the
// fallback path degrades to LevelLow.
func (iv *Interviewer) classify(ctx context.Context, profile string) exam.Level {
	if m := priorScorePattern.FindStringSubmatch(profile); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			return exam.ClassifyLevel(v)
		}
	}

	ctx = llm.WithPurpose(ctx, "classify-level")
	resp, err := iv.opts.Provider.Generate(ctx, llm.Request{
		System:    classifierSystemPrompt,
		Messages:  []llm.Message{{Role: llm.RoleUser, Content: buildClassifyMessage(profile)}},
		MaxTokens: classifyMaxTokens,
	})
	if err != nil {
		iv.opts.Logger.Warn().Err(err).Msg("level classification call failed, defaulting to low")
		return exam.LevelLow
	}

	fields, perr := parse.ExtractObject(resp.Content, "level")
	if perr != nil {
		iv.opts.Logger.Warn().Err(perr).Msg("level classification parse failed, defaulting to low")
	}
	name, _ := parse.Text(fields["level"])
	return exam.ParseLevel(name)
}

func (iv *Interviewer) generateQuestion(ctx context.Context, state *exam.State, memory *exam.Memory) (string, error) {
	ctx = llm.WithPurpose(ctx, "question-gen")

	refs := iv.retrieve(ctx, state.Topic+" "+state.Difficulty.Describe())
	hint := buildContextHint(state.Asked, state.AttemptsAtTier)

	resp, err := iv.opts.Provider.Generate(ctx, llm.Request{
		System: interviewerSystemPrompt,
		Messages: []llm.Message{{
			Role:    llm.RoleUser,
			Content: buildQuestionMessage(state.Topic, state.Difficulty.Describe(), hint, memory.Transcript(), refs),
		}},
		MaxTokens:   questionMaxTokens,
		Temperature: generationTemp,
	})
	if err != nil {
		return "", err
	}

	question := parse.ExtractQuestion(resp.Content)
	if question == "" {
		iv.opts.Logger.Warn().Msg("no question recovered from model output, using fallback")
		question = fallbackQuestion(state.Topic)
	}
	return question, nil
}

func (iv *Interviewer) evaluateAnswer(ctx context.Context, state *exam.State, memory *exam.Memory, question, answer string) (float64, string, error) {
	ctx = llm.WithPurpose(ctx, "evaluation")

	refs := iv.retrieve(ctx, state.Topic)

	resp, err := iv.opts.Provider.Generate(ctx, llm.Request{
		System: evaluatorSystemPrompt,
		Messages: []llm.Message{{
			Role:    llm.RoleUser,
			Content: buildEvalMessage(question, answer, memory.Transcript(), refs),
		}},
		MaxTokens: evalMaxTokens,
	})
	if err != nil {
		return 0, "", err
	}

	fields, perr := parse.ExtractObject(resp.Content, "score", "analysis")
	if perr != nil {
		iv.opts.Logger.Warn().Err(perr).Msg("evaluation parse failed, using defaults")
	}

	// Models sometimes quote the score; coerce before schema validation.
	if n, ok := parse.Number(fields["score"]); ok {
		fields["score"] = n
	}

	score := iv.opts.Config.DefaultScore
	if verr := validateEval(fields); verr == nil {
		score = fields["score"].(float64)
	} else if perr == nil {
		iv.opts.Logger.Warn().Err(verr).Msg("evaluation object rejected, using default score")
	}

	analysis, _ := parse.Text(fields["analysis"])
	return score, analysis, nil
}

// retrieve fetches reference material. Retrieval failures degrade to no
// references rather than failing the turn.
func (iv *Interviewer) retrieve(ctx context.Context, query string) []string {
	refs, err := iv.opts.Retriever.Retrieve(ctx, query, referenceCount)
	if err != nil {
		iv.opts.Logger.Warn().Err(err).Msg("reference retrieval failed, continuing without")
		return nil
	}
	return refs
}
