package prompts

import (
	"fmt"
	"strings"
)

// FormatRoleName превращает идентификатор роли в читаемый вид:
// "software_engineer" -> "Software Engineer"
func FormatRoleName(role string) string {
	words := strings.Split(strings.ReplaceAll(role, "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// BuildQuestionPrompt создает промпт для генерации основного вопроса.
// prevQuestions — последние основные вопросы для защиты от повторов.
func BuildQuestionPrompt(role string, prevQuestions []string) string {
	var prompt strings.Builder

	roleDisplay := FormatRoleName(role)

	prompt.WriteString(fmt.Sprintf("You are a technical interviewer conducting a mock interview for a %s position.\n", roleDisplay))
	prompt.WriteString("Generate ONE interview question that is:\n")
	prompt.WriteString("- EASY to MEDIUM difficulty only - suitable for freshers and entry-level candidates (0-1 years experience)\n")
	prompt.WriteString("- Focused on BASIC concepts, fundamentals, and simple practical knowledge\n")
	prompt.WriteString("- Should NOT require prior job experience, advanced knowledge, or complex problem-solving\n")
	prompt.WriteString("- Easy enough for someone who just graduated, is a student, or switching careers\n")
	prompt.WriteString("- Keep it SIMPLE - avoid complex topics, system design, architecture, or advanced algorithms\n")
	prompt.WriteString("- Ask about basic definitions, simple examples, or fundamental understanding\n")
	prompt.WriteString("- Different from questions already asked\n")
	prompt.WriteString("- Can be answered in 1-2 minutes with basic knowledge (no essay or deep technical analysis required)\n\n")

	prompt.WriteString("Examples of appropriate questions:\n")
	prompt.WriteString("- 'What is [basic concept] and why is it useful?'\n")
	prompt.WriteString("- 'Can you explain [simple topic] in your own words?'\n")
	prompt.WriteString("- 'What are the basic steps to [simple task]?'\n")
	prompt.WriteString("- 'Give me a simple example of [fundamental concept]'\n\n")

	if len(prevQuestions) > 0 {
		prompt.WriteString("Previous questions asked:\n")
		for _, q := range prevQuestions {
			prompt.WriteString(fmt.Sprintf("- %s\n", q))
		}
		prompt.WriteString("\nGenerate a NEW, different question.\n")
	}

	prompt.WriteString("Respond with ONLY the question, no additional text.")

	return prompt.String()
}

// BuildFollowupPrompt создает промпт для уточняющего вопроса по ответу кандидата.
// recentContext — последние реплики диалога в формате "Interviewer: ..." / "Candidate: ...".
func BuildFollowupPrompt(role, question, answer string, recentContext []string) string {
	var prompt strings.Builder

	roleDisplay := FormatRoleName(role)

	prompt.WriteString(fmt.Sprintf("You are a technical interviewer conducting a mock interview for a %s position.\n\n", roleDisplay))
	prompt.WriteString(fmt.Sprintf("Current question: %s\n", question))
	prompt.WriteString(fmt.Sprintf("Candidate's answer: %s\n\n", answer))

	if len(recentContext) > 0 {
		prompt.WriteString("Recent conversation:\n")
		prompt.WriteString(strings.Join(recentContext, "\n"))
		prompt.WriteString("\n\n")
	}

	prompt.WriteString("Generate ONE follow-up question that:\n")
	prompt.WriteString("- Is EASY to MEDIUM difficulty - appropriate for freshers and entry-level candidates\n")
	prompt.WriteString("- Probes deeper but keeps it SIMPLE - asks for clarification or a basic example\n")
	prompt.WriteString("- Asks for simple explanations, basic examples, or fundamental understanding\n")
	prompt.WriteString("- Is specific to what they mentioned (not generic)\n")
	prompt.WriteString("- Helps assess their basic understanding and communication skills\n")
	prompt.WriteString("- Should NOT require advanced knowledge, complex problem-solving, or deep technical analysis\n")
	prompt.WriteString("- Can be answered in 30-60 seconds with basic knowledge\n\n")

	prompt.WriteString("Examples of good follow-ups (keep them simple):\n")
	prompt.WriteString("- 'Can you give me a simple example of that?'\n")
	prompt.WriteString("- 'Can you explain that in simpler terms?'\n")
	prompt.WriteString("- 'What would be a basic use case for that?'\n")
	prompt.WriteString("- 'How would you explain this to someone new to the topic?'\n\n")

	prompt.WriteString("AVOID complex follow-ups about trade-offs, edge cases, or advanced scenarios.\n")
	prompt.WriteString("Keep it FRESH-FRIENDLY and EASY.\n\n")
	prompt.WriteString("Respond with ONLY the follow-up question, no additional text or explanation.")

	return prompt.String()
}

// BuildFeedbackPrompt создает промпт для генерации обратной связи по ответу
func BuildFeedbackPrompt(role, question, answer string) string {
	var prompt strings.Builder

	roleDisplay := FormatRoleName(role)

	prompt.WriteString("You are an expert interview coach providing constructive feedback.\n\n")
	prompt.WriteString(fmt.Sprintf("Role: %s\n", roleDisplay))
	prompt.WriteString(fmt.Sprintf("Question: %s\n", question))
	prompt.WriteString(fmt.Sprintf("Candidate's Answer: %s\n\n", answer))

	prompt.WriteString("Provide constructive feedback on:\n")
	prompt.WriteString("1. Communication: clarity, structure, conciseness\n")
	prompt.WriteString("2. Technical Knowledge: depth, accuracy, relevance\n")
	prompt.WriteString("3. Areas for Improvement: specific, actionable suggestions\n\n")

	prompt.WriteString("Format your response as 3(not more than that) bullet points. Each bullet should:\n")
	prompt.WriteString("- Start with a strength or area to improve\n")
	prompt.WriteString("- Be specific and actionable\n")
	prompt.WriteString("- Be encouraging and constructive\n")
	prompt.WriteString("- Focus on what would make this answer stronger\n\n")

	prompt.WriteString("Example format:\n")
	prompt.WriteString("- Strong communication — you clearly explained the concept with good structure.\n")
	prompt.WriteString("- Consider adding more technical details about implementation specifics.\n")
	prompt.WriteString("- Great use of examples — try to quantify the impact when possible.\n\n")

	prompt.WriteString("Provide feedback now (bullet points only, no additional text):")

	return prompt.String()
}
