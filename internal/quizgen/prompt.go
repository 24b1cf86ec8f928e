package quizgen

import (
	"fmt"
	"strings"

	"github.com/abhisek/quizzy/internal/quiz"
)

const systemPrompt = `You are an expert in creating educational quiz content for children aged 6-10.

Rules:
- Content must be 100% appropriate for young children: no scary, violent, or mature themes, ever.
- Use simple vocabulary (nothing above 4th grade reading level) and positive, encouraging language.
- Ask about basic, foundational knowledge suitable for elementary school. All facts must be accurate.
- Every question comes with a short fun fact a child would find interesting.
- Always respond with valid JSON only, no additional text or formatting.`

// buildUserMessage constructs the generation prompt for one topic under
// the given policy. The response shape is pinned both here and by the
// JSON schema sent with the request.
func buildUserMessage(topic quiz.Topic, p Policy) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Create exactly %d quiz questions about %q for children aged 6-10.\n\n", p.BatchSize, topic.Name)

	if p.Name == PolicyVocabulary {
		b.WriteString("Create ONLY vocabulary questions:\n")
		b.WriteString("- Ask for the Telugu word for a simple English word.\n")
		b.WriteString("- Use type \"voice_input\" for every question; children speak the answer.\n")
		b.WriteString("- The correct answer must be written in Telugu script.\n")
		b.WriteString("- Cover basic vocabulary: family members, colors, numbers, animals, body parts, food.\n")
		b.WriteString("- Example: {\"text\": \"What is the Telugu word for 'Water'?\", \"type\": \"voice_input\", \"options\": null, \"correct_answer\": \"నీరు\", \"fun_fact\": \"Water is called 'నీరు' (Neeru) in Telugu!\"}\n")
	} else {
		b.WriteString("Distribute the questions evenly across these types:\n")
		for i, t := range p.Types {
			fmt.Fprintf(&b, "%d. %s\n", i+1, describeType(t))
		}
		b.WriteString("\nExamples:\n")
		b.WriteString("{\"text\": \"What color do you get when you mix red and yellow?\", \"type\": \"multiple_choice\", \"options\": [\"Purple\", \"Orange\", \"Green\", \"Blue\"], \"correct_answer\": \"Orange\", \"fun_fact\": \"Orange is a secondary color made by mixing two primary colors!\"}\n")
		b.WriteString("{\"text\": \"The sun is a star.\", \"type\": \"true_false\", \"options\": [\"True\", \"False\"], \"correct_answer\": \"True\", \"fun_fact\": \"The sun is the closest star to Earth!\"}\n")
		b.WriteString("{\"text\": \"A group of lions is called a ____.\", \"type\": \"fill_blank\", \"options\": null, \"correct_answer\": \"pride\", \"fun_fact\": \"Lions live together in family groups called prides!\"}\n")
		b.WriteString("{\"text\": \"Do penguins live at the North Pole?\", \"type\": \"yes_no\", \"options\": [\"Yes\", \"No\"], \"correct_answer\": \"No\", \"fun_fact\": \"Penguins actually live in Antarctica at the South Pole!\"}\n")
	}

	b.WriteString("\nFormat: a JSON array of objects with fields text, type, options, correct_answer, fun_fact.\n")
	b.WriteString("Set options to null for fill_blank and voice_input. For selectable types, correct_answer must be one of the options, exactly as written.\n")
	fmt.Fprintf(&b, "Generate exactly %d questions now.", p.BatchSize)

	return b.String()
}

func describeType(t quiz.QuestionType) string {
	switch t {
	case quiz.TypeMultipleChoice:
		return "Multiple choice (4 options)"
	case quiz.TypeTrueFalse:
		return "True/False"
	case quiz.TypeYesNo:
		return "Yes/No"
	case quiz.TypeFillBlank:
		return "Fill in the blank"
	case quiz.TypeVoiceInput:
		return "Spoken answer"
	}
	return string(t)
}
