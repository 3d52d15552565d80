package main

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"interview-practice-partner/internal/config"
	"interview-practice-partner/internal/console"
	"interview-practice-partner/internal/interviewer"
	"interview-practice-partner/internal/llm"
	"interview-practice-partner/internal/metrics"
	"interview-practice-partner/internal/server"
)

func main() {
	fmt.Println("🚀 Запуск Interview Practice Partner...")

	// Загружаем переменные окружения; отсутствие .env не фатально,
	// если переменные уже выставлены
	if err := godotenv.Load(); err != nil {
		log.Println("Файл .env не найден, используем переменные окружения")
	}

	cfg := config.LoadAppConfig()

	// Рубрика обязательна: без нее детерминированный fallback невозможен
	rubric, err := config.LoadRubric(cfg.App.RubricPath)
	if err != nil {
		log.Fatalf("Ошибка загрузки рубрики: %v", err)
	}
	fmt.Printf("✅ Рубрика загружена: %d ключевых слов\n", len(rubric.DepthKeywords))

	generator := llm.New(cfg.Groq)
	if generator.Enabled() {
		fmt.Printf("✅ Генерация Groq включена (модель %s)\n", cfg.Groq.Model)
	} else {
		log.Println("⚠️ GROQ_API_KEY не задан: генерация вопросов недоступна, обратная связь только по рубрике")
	}

	m := metrics.New()
	svc := interviewer.New(generator, rubric, m)

	switch cfg.App.Mode {
	case "server":
		srv := server.New(svc, m)
		if err := srv.Run(cfg.Server); err != nil {
			log.Fatalf("Ошибка HTTP сервера: %v", err)
		}
	case "console":
		if err := console.Run(svc, cfg.App.Role); err != nil {
			log.Fatalf("Ошибка интервью: %v", err)
		}
	default:
		log.Fatalf("Неизвестный режим APP_MODE: %s (ожидается console или server)", cfg.App.Mode)
	}
}
