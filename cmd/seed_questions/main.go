// Command seed_questions fills the question pool for every category by
// asking the question source for candidates, validating them and appending
// the survivors to the persisted pool.
package main

import (
	"context"
	"log"
	"time"

	"careerfit/internal/adapter/quizgen"
	"careerfit/internal/config"
	"careerfit/internal/database"
	"careerfit/internal/domain"
	"careerfit/internal/logger"
	"careerfit/internal/repository"
	"careerfit/internal/util"

	"github.com/tmc/langchaingo/llms/googleai"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(cfg.Gemini.APIKey),
		googleai.WithDefaultModel(cfg.Gemini.Model))
	if err != nil {
		appLogger.Fatal("Failed to create Gemini client", zap.Error(err))
	}
	source := quizgen.NewGeminiQuestionSource(llm)

	db, err := database.NewSQLXOracleDB(cfg.GetDSN())
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	questionRepo := repository.NewQuestionRepository(db)

	g, gctx := errgroup.WithContext(ctx)
	for _, category := range domain.Categories {
		category := category
		g.Go(func() error {
			return seedCategory(gctx, source, questionRepo, category, cfg.Quiz.SeedCountPerCategory)
		})
	}
	if err := g.Wait(); err != nil {
		appLogger.Fatal("Seeding failed", zap.Error(err))
	}
	appLogger.Info("Seeding completed")
}

func seedCategory(ctx context.Context, source domain.QuestionSource, repo domain.QuestionRepository, category string, count int) error {
	l := logger.Get()

	candidates, err := source.GenerateCandidates(ctx, category, count)
	if err != nil {
		return err
	}

	existing, err := repo.GetQuestionsByCategory(ctx, category)
	if err != nil {
		return err
	}
	seen := make(map[string]bool, len(existing))
	for _, q := range existing {
		seen[domain.NormalizePrompt(q.Prompt)] = true
	}

	var questions []*domain.Question
	rejected := 0
	for _, c := range candidates {
		q, err := domain.NewQuestionFromCandidate(c, category)
		if err != nil {
			rejected++
			continue
		}
		key := domain.NormalizePrompt(q.Prompt)
		if seen[key] {
			continue
		}
		seen[key] = true
		q.ID = util.NewULID()
		questions = append(questions, q)
	}

	saved, err := repo.SaveQuestions(ctx, questions)
	if err != nil {
		return err
	}

	l.Info("Seeded category",
		zap.String("category", category),
		zap.Int("received", len(candidates)),
		zap.Int("rejected", rejected),
		zap.Int("saved", saved))
	return nil
}
