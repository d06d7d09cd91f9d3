package tutor

import (
	"fmt"
	"strings"
)

const contentSystemPrompt = `You are a friendly tutor delivering a lesson one piece at a time. Your role is to rephrase the lesson text you are given into a natural, conversational format for a student. Stick ONLY to the information in the text. End the turn naturally.`

func buildContentUserMessage(text string) string {
	return fmt.Sprintf("Here is the lesson text:\n---\n%s\n---", text)
}

const mediaSystemPrompt = `You are a friendly tutor delivering a lesson. An image has just been shown to the student. Briefly call the student's attention to it and transition to the next piece of information.`

func buildMediaUserMessage(altText string) string {
	return fmt.Sprintf("The image is described as: %q", altText)
}

const hintSystemPrompt = `You are a Socratic tutor. The student answered a question incorrectly. Based ONLY on the lesson text you are given, provide a short, simple hint or a leading question to help them see the answer. Do not invent new analogies and do not reveal the answer outright.`

func buildHintUserMessage(lessonContext string) string {
	if strings.TrimSpace(lessonContext) == "" {
		lessonContext = "Let's review."
	}
	return fmt.Sprintf("The lesson text covering the answer:\n---\n%s\n---", lessonContext)
}

const graderSystemPrompt = `You are an impartial grading assistant. Determine whether a student's answer contains a set of key concepts. Judge the concepts, not the exact wording. Then write one or two sentences of feedback addressed to the student: confirm what they got right, or gently point at what their answer is missing without giving the full answer away.`

func buildGraderUserMessage(keywords []string, answer string) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Required keywords: %s\n", strings.Join(keywords, ", ")))
	b.WriteString(fmt.Sprintf("Student's answer: %s\n", answer))
	return b.String()
}

const qnaSystemPrompt = `You are a helpful teaching assistant. A student has interrupted the lesson to ask a question. Using ONLY the provided lesson context, answer the student's question. If the answer is not in the context, politely state that you can only answer questions about the material covered so far. Do not use any outside knowledge. Keep your answer concise.`

func buildQnaUserMessage(lessonContext, question string) string {
	if strings.TrimSpace(lessonContext) == "" {
		lessonContext = "No context available yet."
	}
	var b strings.Builder
	b.WriteString("Lesson context:\n---\n")
	b.WriteString(lessonContext)
	b.WriteString("\n---\n\nStudent's question:\n---\n")
	b.WriteString(question)
	b.WriteString("\n---")
	return b.String()
}
