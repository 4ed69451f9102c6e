package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/christophe77/NovaBlog/internal/models"
	"github.com/christophe77/NovaBlog/internal/utils"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const (
	articleCacheKeyPrefix = "article:slug:"
	cacheExpiration       = 30 * time.Minute
)

type ArticleRepository interface {
	Create(article *models.Article) error
	CreateDraft(article *models.Article, batchIndex int) error
	FindAll(status string, page, limit int) ([]models.Article, int64, error)
	FindByID(id uint) (*models.Article, error)
	FindBySlug(slug string) (*models.Article, error)
	FindPublished(language string, page, limit int) ([]models.Article, int64, error)
	FindPublishedBySlug(slug string) (*models.Article, error)
	FindLatestAIGenerated() (*models.Article, error)
	Update(article *models.Article) error
	Publish(id uint) (*models.Article, error)
	Delete(id uint) error
	Count() (int64, error)
	CountByStatus(status string) (int64, error)
}

type articleRepository struct {
	db    *gorm.DB
	redis *redis.Client
	ctx   context.Context
}

func getCacheKey(slug string) string {
	return articleCacheKeyPrefix + slug
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{
		db:    db,
		redis: nil,
		ctx:   context.Background(),
	}
}

func NewCachedArticleRepository(db *gorm.DB, redisClient *redis.Client) ArticleRepository {
	return &articleRepository{
		db:    db,
		redis: redisClient,
		ctx:   context.Background(),
	}
}

// Create stores a manually authored article. The slug is derived from
// the title; on collision a timestamp suffix disambiguates, with a
// single retry.
func (r *articleRepository) Create(article *models.Article) error {
	return r.createWithSlug(article, -1)
}

// CreateDraft stores one article produced by a generation batch. The
// batch index is appended to the disambiguating suffix so articles
// created within the same millisecond cannot collide with each other.
func (r *articleRepository) CreateDraft(article *models.Article, batchIndex int) error {
	article.Status = models.ArticleStatusDraft
	return r.createWithSlug(article, batchIndex)
}

func (r *articleRepository) createWithSlug(article *models.Article, batchIndex int) error {
	slug, err := resolveNewSlug(article.Title, batchIndex, func(slug string) (bool, error) {
		return r.slugInUse(slug, 0)
	})
	if err != nil {
		return err
	}

	article.Slug = slug
	if result := r.db.Create(article); result.Error != nil {
		log.Printf("Error creating article: %v", result.Error)
		return result.Error
	}
	return nil
}

// slugInUse reports whether another article already owns the slug.
// Pass excludeID 0 when creating.
func (r *articleRepository) slugInUse(slug string, excludeID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Article{}).
		Where("slug = ? AND id <> ?", slug, excludeID).
		Count(&count).Error
	return count > 0, err
}

// slugForTitle derives the URL slug from a title, falling back to a
// timestamp slug when the title folds to nothing.
func slugForTitle(title string) string {
	slug := utils.GenerateSlug(title)
	if slug == "" {
		slug = fmt.Sprintf("article-%d", time.Now().UnixMilli())
	}
	return slug
}

// disambiguateSlug appends a millisecond timestamp to a taken slug.
// Batch members also carry their index so drafts created within the
// same millisecond stay distinct.
func disambiguateSlug(slug string, batchIndex int) string {
	if batchIndex >= 0 {
		return fmt.Sprintf("%s-%d-%d", slug, time.Now().UnixMilli(), batchIndex)
	}
	return fmt.Sprintf("%s-%d", slug, time.Now().UnixMilli())
}

func resolveNewSlug(title string, batchIndex int, taken func(slug string) (bool, error)) (string, error) {
	slug := slugForTitle(title)
	inUse, err := taken(slug)
	if err != nil {
		return "", err
	}
	if inUse {
		slug = disambiguateSlug(slug, batchIndex)
	}
	return slug, nil
}

// resolveUpdatedSlug returns the slug an article carries after an
// edit. The slug is stable while the title is unchanged; a title
// change re-derives it with the same collision handling as creation.
func resolveUpdatedSlug(existing *models.Article, newTitle string, taken func(slug string) (bool, error)) (string, error) {
	if newTitle == existing.Title {
		return existing.Slug, nil
	}
	return resolveNewSlug(newTitle, -1, taken)
}

// applyPublishedAt enforces the set-once rule: the timestamp from the
// first publication survives every later save, and a save that first
// moves the article to PUBLISHED stamps it.
func applyPublishedAt(existing, article *models.Article) {
	if existing.PublishedAt != nil {
		article.PublishedAt = existing.PublishedAt
		return
	}
	if article.Status == models.ArticleStatusPublished && article.PublishedAt == nil {
		now := time.Now()
		article.PublishedAt = &now
	}
}

func (r *articleRepository) FindAll(status string, page, limit int) ([]models.Article, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	query := r.db.Model(&models.Article{})
	if status != "" && status != "all" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var articles []models.Article
	err := query.Order("created_at desc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&articles).Error
	return articles, total, err
}

func (r *articleRepository) FindByID(id uint) (*models.Article, error) {
	var article models.Article
	if err := r.db.First(&article, id).Error; err != nil {
		return nil, err
	}
	return &article, nil
}

func (r *articleRepository) FindBySlug(slug string) (*models.Article, error) {
	var article models.Article
	if err := r.db.Where("slug = ?", slug).First(&article).Error; err != nil {
		return nil, err
	}
	return &article, nil
}

func (r *articleRepository) FindPublished(language string, page, limit int) ([]models.Article, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	query := r.db.Model(&models.Article{}).Where("status = ?", models.ArticleStatusPublished)
	if language != "" {
		query = query.Where("language = ?", language)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var articles []models.Article
	err := query.Order("published_at desc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&articles).Error
	return articles, total, err
}

func (r *articleRepository) FindPublishedBySlug(slug string) (*models.Article, error) {
	if r.redis != nil {
		cachedData, err := r.redis.Get(r.ctx, getCacheKey(slug)).Result()
		if err == nil {
			var article models.Article
			if err := json.Unmarshal([]byte(cachedData), &article); err == nil {
				return &article, nil
			}
		}
	}

	var article models.Article
	err := r.db.Where("slug = ? AND status = ?", slug, models.ArticleStatusPublished).
		First(&article).Error
	if err != nil {
		return nil, err
	}

	if r.redis != nil {
		articleJSON, err := json.Marshal(article)
		if err == nil {
			if err := r.redis.Set(r.ctx, getCacheKey(slug), articleJSON, cacheExpiration).Err(); err != nil {
				log.Printf("Failed to cache article %s: %v", slug, err)
			}
		}
	}

	return &article, nil
}

func (r *articleRepository) FindLatestAIGenerated() (*models.Article, error) {
	var article models.Article
	err := r.db.Where("source = ?", models.ArticleSourceAIGenerated).
		Order("created_at desc").
		First(&article).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &article, nil
}

// Update saves an article. A title change re-derives the slug, and
// the published-at timestamp is set on the first transition to
// PUBLISHED and never cleared by later edits.
func (r *articleRepository) Update(article *models.Article) error {
	existing, err := r.FindByID(article.ID)
	if err != nil {
		return err
	}

	slug, err := resolveUpdatedSlug(existing, article.Title, func(slug string) (bool, error) {
		return r.slugInUse(slug, article.ID)
	})
	if err != nil {
		return err
	}
	article.Slug = slug

	applyPublishedAt(existing, article)

	if err := r.db.Save(article).Error; err != nil {
		return err
	}

	r.invalidateCache(existing.Slug)
	r.invalidateCache(article.Slug)
	return nil
}

func (r *articleRepository) Publish(id uint) (*models.Article, error) {
	article, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}

	article.Status = models.ArticleStatusPublished
	if article.PublishedAt == nil {
		now := time.Now()
		article.PublishedAt = &now
	}

	if err := r.db.Save(article).Error; err != nil {
		return nil, err
	}

	r.invalidateCache(article.Slug)
	return article, nil
}

func (r *articleRepository) Delete(id uint) error {
	article, err := r.FindByID(id)
	if err != nil {
		return err
	}
	if err := r.db.Delete(&models.Article{}, id).Error; err != nil {
		return err
	}
	r.invalidateCache(article.Slug)
	return nil
}

func (r *articleRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Article{}).Count(&count).Error
	return count, err
}

func (r *articleRepository) CountByStatus(status string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Article{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

func (r *articleRepository) invalidateCache(slug string) {
	if r.redis == nil || slug == "" {
		return
	}
	if err := r.redis.Del(r.ctx, getCacheKey(slug)).Err(); err != nil {
		log.Printf("Failed to invalidate article cache %s: %v", slug, err)
	}
}
