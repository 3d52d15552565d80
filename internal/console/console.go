package console

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"interview-practice-partner/internal/interviewer"
	"interview-practice-partner/internal/storage"
)

// Run проводит одно интервью в консоли: вопрос, ответ, обратная связь,
// затем уточняющий или следующий основной вопрос
func Run(svc *interviewer.Service, role string) error {
	sess, question, err := svc.StartInterview(role)
	if err != nil {
		return fmt.Errorf("не удалось начать интервью: %w", err)
	}

	fmt.Println("💼 Interview Practice Partner")
	fmt.Println("Tip: type 'end interview' or 'quit' to finish the interview.")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Printf("Interviewer: %s\n", question)
		fmt.Print("Your answer: ")

		if !scanner.Scan() {
			break
		}
		answer := strings.TrimSpace(scanner.Text())

		result := svc.ProcessAnswer(sess, answer, question)

		fmt.Println("\nFeedback:")
		for _, bullet := range result.Feedback {
			fmt.Printf("  - %s\n", bullet)
		}
		fmt.Println()

		if result.Finished {
			fmt.Println("Interview ended. Thank you!")
			saveTranscript(sess)
			return nil
		}

		if result.Followup != "" {
			question = result.Followup
			continue
		}

		question, err = nextQuestionWithRetry(svc, sess, scanner)
		if err != nil {
			saveTranscript(sess)
			return err
		}
		if question == "" {
			fmt.Println("🎉 Interview complete! Thank you for practicing.")
			saveTranscript(sess)
			return nil
		}
	}

	saveTranscript(sess)
	return nil
}

// nextQuestionWithRetry запрашивает следующий основной вопрос.
// Ошибка генерации не ломает сессию: пользователю предлагается
// повторить попытку или завершить интервью.
func nextQuestionWithRetry(svc *interviewer.Service, sess *interviewer.Session, scanner *bufio.Scanner) (string, error) {
	for {
		question, err := svc.NextQuestion(sess)
		if err == nil {
			return question, nil
		}

		fmt.Printf("⚠️ Couldn't generate the next question: %v\n", err)
		fmt.Print("Press Enter to retry, or type 'quit' to finish: ")

		if !scanner.Scan() {
			return "", nil
		}
		if interviewer.IsEndCommand(strings.TrimSpace(scanner.Text())) {
			return "", nil
		}
	}
}

// saveTranscript сохраняет расшифровку интервью на диск
func saveTranscript(sess *interviewer.Session) {
	cases := make(map[string]int, len(sess.PersonaCaseCounter))
	for label, count := range sess.PersonaCaseCounter {
		cases[string(label)] = count
	}

	result := &storage.InterviewResult{
		InterviewID:  sess.ID,
		Role:         sess.Role,
		Timestamp:    time.Now().Format(time.RFC3339),
		History:      sess.History,
		PersonaCases: cases,
	}

	if err := storage.SaveResult(result); err != nil {
		log.Printf("Ошибка сохранения расшифровки: %v", err)
		return
	}
	fmt.Printf("💾 Transcript saved: results/interview_%s.json\n", sess.ID)
}
