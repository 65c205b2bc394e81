package service

import (
	"context"
	"encoding/json"
	"math/rand"
	"time"

	"careerfit/internal/cache"
	"careerfit/internal/domain"
	"careerfit/internal/dto"
	"careerfit/internal/logger"
	"careerfit/internal/util"

	"go.uber.org/zap"
)

// AssessmentService owns the quiz lifecycle: pool replenishment, quiz set
// selection, answer scoring and attempt persistence.
type AssessmentService struct {
	source       domain.QuestionSource
	questionRepo domain.QuestionRepository
	attemptRepo  domain.AttemptRepository
	userRepo     domain.UserRepository
	cache        domain.Cache

	questionsPerQuiz int
	cacheTTL         time.Duration
}

// NewAssessmentService wires the assessment service.
func NewAssessmentService(
	source domain.QuestionSource,
	questionRepo domain.QuestionRepository,
	attemptRepo domain.AttemptRepository,
	userRepo domain.UserRepository,
	cacheClient domain.Cache,
	questionsPerQuiz int,
	cacheTTL time.Duration,
) *AssessmentService {
	return &AssessmentService{
		source:           source,
		questionRepo:     questionRepo,
		attemptRepo:      attemptRepo,
		userRepo:         userRepo,
		cache:            cacheClient,
		questionsPerQuiz: questionsPerQuiz,
		cacheTTL:         cacheTTL,
	}
}

// GetQuizSet assembles a quiz for the category. It tries to replenish the
// pool from the question source first, then samples from everything
// persisted. A failing or short source degrades the quiz, never the request:
// only an empty pool is an error.
func (s *AssessmentService) GetQuizSet(ctx context.Context, category string) (*dto.QuizSetResponse, error) {
	l := logger.Get()

	if !domain.IsValidCategory(category) {
		return nil, domain.NewInvalidCategoryError(category)
	}

	existing, err := s.questionRepo.GetQuestionsByCategory(ctx, category)
	if err != nil {
		return nil, domain.NewInternalError("failed to load question pool", err)
	}

	fresh := s.replenishPool(ctx, category, existing)

	pool := append(existing, fresh...)
	if len(pool) == 0 {
		return nil, domain.NewEmptyPoolError(category)
	}

	selected := sampleQuestions(pool, s.questionsPerQuiz)
	partial := len(selected) < s.questionsPerQuiz
	if partial {
		l.Warn("Serving partial quiz set",
			zap.String("category", category),
			zap.Int("available", len(selected)),
			zap.Int("desired", s.questionsPerQuiz))
	}

	s.cacheQuestions(ctx, selected)

	resp := &dto.QuizSetResponse{
		Category:  category,
		Questions: make([]dto.QuestionResponse, 0, len(selected)),
		Partial:   partial,
	}
	for _, q := range selected {
		resp.Questions = append(resp.Questions, dto.QuestionResponse{
			ID:      q.ID,
			Prompt:  q.Prompt,
			Options: q.Options,
		})
	}
	return resp, nil
}

// replenishPool asks the source for candidates, validates each one, drops
// duplicates of already persisted prompts and saves the survivors. Source
// failures are logged and tolerated: the existing pool still serves.
func (s *AssessmentService) replenishPool(ctx context.Context, category string, existing []*domain.Question) []*domain.Question {
	l := logger.Get()

	candidates, err := s.source.GenerateCandidates(ctx, category, s.questionsPerQuiz)
	if err != nil {
		l.Warn("Question source failed, serving persisted pool only",
			zap.String("category", category),
			zap.Error(err))
		return nil
	}

	seen := make(map[string]bool, len(existing))
	for _, q := range existing {
		seen[domain.NormalizePrompt(q.Prompt)] = true
	}

	var fresh []*domain.Question
	rejected := 0
	for _, c := range candidates {
		q, err := domain.NewQuestionFromCandidate(c, category)
		if err != nil {
			rejected++
			l.Warn("Rejected invalid candidate",
				zap.String("category", category),
				zap.Error(err))
			continue
		}
		key := domain.NormalizePrompt(q.Prompt)
		if seen[key] {
			continue
		}
		seen[key] = true
		q.ID = util.NewULID()
		fresh = append(fresh, q)
	}

	if rejected > 0 {
		l.Info("Candidate validation summary",
			zap.String("category", category),
			zap.Int("received", len(candidates)),
			zap.Int("rejected", rejected))
	}

	if len(fresh) == 0 {
		return nil
	}
	saved, err := s.questionRepo.SaveQuestions(ctx, fresh)
	if err != nil {
		l.Error("Failed to persist fresh questions, serving persisted pool only",
			zap.String("category", category),
			zap.Int("saved", saved),
			zap.Error(err))
		return fresh[:saved]
	}
	return fresh
}

// sampleQuestions picks up to n questions uniformly at random without
// replacement. The whole pool is returned (shuffled) when it is short.
func sampleQuestions(pool []*domain.Question, n int) []*domain.Question {
	shuffled := make([]*domain.Question, len(pool))
	copy(shuffled, pool)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if n > len(shuffled) {
		n = len(shuffled)
	}
	return shuffled[:n]
}

func (s *AssessmentService) cacheQuestions(ctx context.Context, questions []*domain.Question) {
	if s.cache == nil {
		return
	}
	l := logger.Get()
	for _, q := range questions {
		data, err := json.Marshal(q)
		if err != nil {
			continue
		}
		if err := s.cache.Set(ctx, cache.QuestionKey(q.ID), string(data), s.cacheTTL); err != nil {
			l.Warn("Failed to cache question", zap.String("question_id", q.ID), zap.Error(err))
		}
	}
}

// resolveQuestion looks a question up cache-first, falling back to the
// repository. Returns (nil, nil) when the question simply does not exist.
func (s *AssessmentService) resolveQuestion(ctx context.Context, id string) (*domain.Question, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, cache.QuestionKey(id))
		if err == nil {
			var q domain.Question
			if err := json.Unmarshal([]byte(cached), &q); err == nil {
				return &q, nil
			}
		} else if err != domain.ErrCacheMiss {
			logger.Get().Warn("Question cache lookup failed", zap.String("question_id", id), zap.Error(err))
		}
	}

	q, err := s.questionRepo.GetQuestionByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return q, nil
}

// SubmitAnswers scores a submission against the persisted questions,
// evaluates fit and records the attempt. Submissions referencing unknown
// question IDs are skipped: they count toward neither score nor max score.
func (s *AssessmentService) SubmitAnswers(ctx context.Context, req *dto.SubmitRequest) (*dto.SubmitResponse, error) {
	l := logger.Get()

	user, err := s.userRepo.GetUserByID(ctx, req.UserID)
	if err != nil {
		return nil, domain.NewInternalError("failed to look up user", err)
	}
	if user == nil {
		return nil, domain.NewUserNotFoundError(req.UserID)
	}

	score := 0
	maxScore := 0
	detailed := make([]domain.AnswerDetail, 0, len(req.Answers))
	answers := make([]domain.AnswerSubmission, 0, len(req.Answers))

	for _, a := range req.Answers {
		answers = append(answers, domain.AnswerSubmission{
			QuestionID:    a.QuestionID,
			SelectedIndex: a.SelectedIndex,
		})

		q, err := s.resolveQuestion(ctx, a.QuestionID)
		if err != nil {
			return nil, domain.NewInternalError("failed to resolve question", err)
		}
		if q == nil {
			l.Debug("Skipping answer for unknown question", zap.String("question_id", a.QuestionID))
			continue
		}

		maxScore++
		correct := a.SelectedIndex == q.CorrectIndex
		if correct {
			score++
		}
		detailed = append(detailed, domain.AnswerDetail{
			QuestionID: a.QuestionID,
			IsCorrect:  correct,
		})
	}

	fit, _ := domain.EvaluateFit(score, maxScore)
	suggested := domain.BuildFeedback(req.Category, score, maxScore, fit)

	attempt := &domain.Attempt{
		ID:            util.NewULID(),
		UserID:        req.UserID,
		Category:      req.Category,
		Answers:       answers,
		Score:         score,
		MaxScore:      maxScore,
		Fit:           fit,
		SuggestedText: suggested,
		Detailed:      detailed,
		Inducted:      false,
		CreatedAt:     time.Now().UTC(),
	}

	attemptID, err := s.attemptRepo.SaveAttempt(ctx, attempt)
	if err != nil {
		return nil, domain.NewInternalError("failed to save attempt", err)
	}

	resp := &dto.SubmitResponse{
		AttemptID:     attemptID,
		UserID:        req.UserID,
		Category:      req.Category,
		Score:         score,
		MaxScore:      maxScore,
		Fit:           fit,
		SuggestedText: suggested,
		Detailed:      make([]dto.AnswerDetailResponse, 0, len(detailed)),
		Timestamp:     attempt.CreatedAt,
	}
	for _, d := range detailed {
		resp.Detailed = append(resp.Detailed, dto.AnswerDetailResponse{
			QuestionID: d.QuestionID,
			IsCorrect:  d.IsCorrect,
		})
	}
	return resp, nil
}
