package interview

import (
	"fmt"
	"strings"
)

const interviewerSystemPrompt = `You are an AI interviewer conducting an adaptive oral exam. You ask one clear, specific question at a time, grounded in the reference material provided, and you respond only in the exact JSON format requested.`

const evaluatorSystemPrompt = `You are an AI examiner grading oral exam answers. You grade for accuracy, completeness, and clarity against the reference material, and you respond only in the exact JSON format requested.`

const classifierSystemPrompt = `You are an AI interviewer preparing for an oral exam. You classify a candidate's ability from their profile and respond only in the exact JSON format requested.`

func buildQuestionMessage(topic, difficulty, contextHint, transcript string, refs []string) string {
	var b strings.Builder

	if transcript != "" {
		b.WriteString("Recent conversation:\n")
		b.WriteString(transcript)
		b.WriteString("\n\n")
	}

	fmt.Fprintf(&b, "Create one oral exam question on the topic %q at difficulty %q.\n", topic, difficulty)

	if contextHint != "" {
		b.WriteString(contextHint)
		b.WriteString("\n")
	}

	b.WriteString("\nReference material:\n")
	if len(refs) == 0 {
		b.WriteString("(none)\n")
	}
	for _, r := range refs {
		b.WriteString(r)
		b.WriteString("\n\n")
	}

	b.WriteString(`
Requirements:
- The question must be clear and specific, drawn from the reference material when available, not rambling.
- It must match the requested difficulty.
- Do not use phrases like "according to the reference material" in the question.

Return ONLY a single plain JSON object of the form: {"question": "..."}
- No greetings, no explanation, no code fence.`)

	return b.String()
}

func buildEvalMessage(question, answer, transcript string, refs []string) string {
	var b strings.Builder

	if transcript != "" {
		b.WriteString("Recent conversation:\n")
		b.WriteString(transcript)
		b.WriteString("\n\n")
	}

	b.WriteString("Grade this oral exam answer on a 0-10 scale.\n\n")
	fmt.Fprintf(&b, "Question: %s\n", question)
	fmt.Fprintf(&b, "Answer: %s\n", answer)

	b.WriteString("\nReference material:\n")
	if len(refs) == 0 {
		b.WriteString("(none)\n")
	}
	for _, r := range refs {
		b.WriteString(r)
		b.WriteString("\n\n")
	}

	b.WriteString(`
Evaluate accuracy, completeness, and clarity.

Return JSON: {
    "score": <number from 0 to 10>,
    "analysis": "<short comment>"
}`)

	return b.String()
}

func buildClassifyMessage(profile string) string {
	var b strings.Builder

	b.WriteString("Classify the candidate's ability level from their prior score: ")
	b.WriteString("very_low (<5), low (5-6.5), medium (6.5-8), high (8-9), excellent (9-10).\n\n")
	fmt.Fprintf(&b, "Profile:\n%s\n\n", profile)
	b.WriteString(`Return JSON: {"level": "very_low|low|medium|high|excellent"}`)

	return b.String()
}

// buildContextHint summarizes session progress for the question prompt.
func buildContextHint(asked, attemptsAtTier int) string {
	return fmt.Sprintf("Questions asked so far: %d. Attempts at the current difficulty: %d.", asked, attemptsAtTier)
}

// fallbackQuestion is asked when the generator's response yields no
// usable question.
func fallbackQuestion(topic string) string {
	return fmt.Sprintf("Can you explain the fundamentals of %s?", topic)
}
