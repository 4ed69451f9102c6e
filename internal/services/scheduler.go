package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/christophe77/NovaBlog/internal/mistral"
	"github.com/christophe77/NovaBlog/internal/models"
	"github.com/christophe77/NovaBlog/internal/repository"
)

// ArticleGenerator is the slice of the text-generation client the
// scheduler needs.
type ArticleGenerator interface {
	GenerateArticle(ctx context.Context, params mistral.GenerateArticleParams, apiKey string) (*mistral.GeneratedArticle, error)
	Model() string
}

// Scheduler runs the daily article-generation check and executes
// generation batches. It is an explicit object owned by the
// composition root; Start and Stop are guarded so a second Start is a
// no-op while running. Manual triggers are funneled through the same
// loop goroutine as the daily check, so a manual run never overlaps a
// scheduled one.
type Scheduler struct {
	settingRepo repository.SettingRepository
	articleRepo repository.ArticleRepository
	taskRepo    repository.ScheduledTaskRepository
	generator   ArticleGenerator

	location     *time.Location
	checkHour    int
	articleDelay time.Duration

	trigger  chan struct{}
	stopChan chan struct{}
	wg       sync.WaitGroup
	running  bool
	mu       sync.RWMutex
}

func NewScheduler(
	settingRepo repository.SettingRepository,
	articleRepo repository.ArticleRepository,
	taskRepo repository.ScheduledTaskRepository,
	generator ArticleGenerator,
) *Scheduler {
	tz := os.Getenv("TZ")
	if tz == "" {
		tz = "Europe/Paris"
	}
	location, err := time.LoadLocation(tz)
	if err != nil {
		log.Printf("Invalid timezone %q, falling back to UTC: %v", tz, err)
		location = time.UTC
	}

	return &Scheduler{
		settingRepo:  settingRepo,
		articleRepo:  articleRepo,
		taskRepo:     taskRepo,
		generator:    generator,
		location:     location,
		checkHour:    9,
		articleDelay: 2 * time.Second,
		trigger:      make(chan struct{}, 1),
	}
}

// ========== LIFECYCLE ==========

func (s *Scheduler) Start() {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		log.Println("Scheduler already running")
		return
	}
	s.running = true
	s.stopChan = make(chan struct{})
	s.mu.Unlock()

	s.wg.Add(1)
	go s.run()

	log.Printf("Scheduler started: will check for article generation daily at %d:00 (%s)", s.checkHour, s.location)
}

func (s *Scheduler) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	s.mu.Unlock()

	close(s.stopChan)
	s.wg.Wait()
	log.Println("Scheduler stopped")
}

// TriggerNow requests a generation batch outside the daily cadence.
// It returns immediately; the batch runs on the scheduler's loop
// goroutine and its outcome is observable through the task log.
func (s *Scheduler) TriggerNow() error {
	s.mu.RLock()
	running := s.running
	s.mu.RUnlock()
	if !running {
		return fmt.Errorf("scheduler is not running")
	}

	select {
	case s.trigger <- struct{}{}:
	default:
		// A trigger is already queued.
	}
	return nil
}

func (s *Scheduler) run() {
	defer s.wg.Done()

	for {
		next := nextCheckTime(time.Now().In(s.location), s.checkHour)
		timer := time.NewTimer(time.Until(next))

		select {
		case <-s.stopChan:
			timer.Stop()
			return
		case <-timer.C:
			s.checkAndGenerate()
		case <-s.trigger:
			timer.Stop()
			if err := s.RunBatch(context.Background()); err != nil {
				log.Printf("Manual generation failed: %v", err)
			}
		}
	}
}

// nextCheckTime returns the next occurrence of hour:00 strictly after now.
func nextCheckTime(now time.Time, hour int) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// ========== INTERVAL CHECK ==========

// checkAndGenerate runs a batch when the configured interval has
// elapsed since the last COMPLETED generation task, and logs a skip
// otherwise.
func (s *Scheduler) checkAndGenerate() {
	intervalDays := DefaultIntervalDays
	if raw, ok, err := s.settingRepo.GetValue("ai.intervalDays"); err != nil {
		log.Printf("Error in scheduler check: %v", err)
		return
	} else if ok {
		intervalDays = decodeInt(raw, DefaultIntervalDays)
	}

	lastTask, err := s.taskRepo.FindLatestCompleted(models.TaskTypeArticleGeneration)
	if err != nil {
		log.Printf("Error in scheduler check: %v", err)
		return
	}

	now := time.Now()
	intervalAgo := now.AddDate(0, 0, -intervalDays)

	if lastTask == nil || lastTask.CompletedAt == nil || lastTask.CompletedAt.Before(intervalAgo) {
		log.Printf("Interval of %d days has passed, generating articles...", intervalDays)
		if err := s.RunBatch(context.Background()); err != nil {
			log.Printf("Scheduled generation failed: %v", err)
		}
		return
	}

	daysSince := int(now.Sub(*lastTask.CompletedAt).Hours() / 24)
	log.Printf("Skipping: last articles generated %d day(s) ago (interval: %d days)", daysSince, intervalDays)
}

// ========== GENERATION BATCH ==========

// RunBatch executes one generation batch: it loads the typed
// configuration, rotates through the topic list and persists each
// generated article as a draft. Per-article failures are logged and
// the batch continues; one task-log row summarizes the run. An empty
// topic list means "not configured": nothing is generated and no task
// row is written.
func (s *Scheduler) RunBatch(ctx context.Context) error {
	log.Println("Starting scheduled article generation...")
	startedAt := time.Now()

	cfg, err := LoadGenerationConfig(s.settingRepo)
	if err != nil {
		s.recordFailure(startedAt, err)
		return err
	}

	if len(cfg.Topics) == 0 {
		log.Println("No topics configured, skipping article generation")
		return nil
	}

	last, err := s.articleRepo.FindLatestAIGenerated()
	if err != nil {
		s.recordFailure(startedAt, err)
		return err
	}
	lastPrompt := ""
	if last != nil {
		lastPrompt = last.AIPrompt
	}
	start := NextTopicIndex(cfg.Topics, lastPrompt)

	model := cfg.Model
	if model == "" {
		model = s.generator.Model()
	}

	generated := 0
	for i := 0; i < cfg.ArticlesPerInterval; i++ {
		topic := TopicForArticle(cfg.Topics, start, i)

		keywords := []string{}
		if keyword := KeywordForArticle(cfg.Keywords, start, i); keyword != "" {
			keywords = append(keywords, keyword)
		}

		articleData, err := s.generator.GenerateArticle(ctx, mistral.GenerateArticleParams{
			Topic:          topic,
			Keywords:       keywords,
			Language:       cfg.Language,
			Tone:           cfg.Tone,
			Length:         cfg.Length,
			Model:          cfg.Model,
			Company:        cfg.Company,
			GlobalKeywords: cfg.GlobalKeywords,
		}, cfg.APIKey)
		if err != nil {
			log.Printf("Error generating article %d/%d (topic %q): %v", i+1, cfg.ArticlesPerInterval, topic, err)
		} else {
			keywordsJSON, _ := json.Marshal(keywords)
			draft := &models.Article{
				Title:          articleData.Title,
				Content:        articleData.Content,
				Excerpt:        articleData.Excerpt,
				Language:       cfg.Language,
				SEOTitle:       articleData.SEOTitle,
				SEODescription: articleData.SEODescription,
				Keywords:       string(keywordsJSON),
				Source:         models.ArticleSourceAIGenerated,
				AIPrompt:       "Topic: " + topic,
				AIModel:        model,
			}
			if err := s.articleRepo.CreateDraft(draft, i); err != nil {
				log.Printf("Error saving article %d/%d (topic %q): %v", i+1, cfg.ArticlesPerInterval, topic, err)
			} else {
				generated++
				log.Printf("Article %d/%d generated successfully: %s", i+1, cfg.ArticlesPerInterval, draft.Slug)
			}
		}

		// Small delay between articles to avoid upstream rate limiting.
		if i < cfg.ArticlesPerInterval-1 {
			time.Sleep(s.articleDelay)
		}
	}

	completedAt := time.Now()
	task := &models.ScheduledTask{
		Type:        models.TaskTypeArticleGeneration,
		Status:      models.TaskStatusCompleted,
		StartedAt:   startedAt,
		CompletedAt: &completedAt,
	}
	if err := s.taskRepo.Create(task); err != nil {
		log.Printf("Failed to record generation task: %v", err)
		return err
	}

	log.Printf("Generated %d/%d articles successfully", generated, cfg.ArticlesPerInterval)
	return nil
}

func (s *Scheduler) recordFailure(startedAt time.Time, cause error) {
	errMsg := cause.Error()
	task := &models.ScheduledTask{
		Type:      models.TaskTypeArticleGeneration,
		Status:    models.TaskStatusFailed,
		StartedAt: startedAt,
		Error:     &errMsg,
	}
	if err := s.taskRepo.Create(task); err != nil {
		log.Printf("Failed to record failed task: %v", err)
	}
}
