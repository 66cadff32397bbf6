package services

import (
	"tdiapi/models"

	"gorm.io/gorm"
)

type ArticleService struct {
	db *gorm.DB
}

func NewArticleService(db *gorm.DB) *ArticleService {
	return &ArticleService{db: db}
}

// GetAllArticles returns every non-deleted article with its author attached.
func (s *ArticleService) GetAllArticles() ([]models.Article, error) {
	var articles []models.Article
	err := s.db.Preload("Author").Find(&articles).Error
	return articles, err
}

func (s *ArticleService) GetArticleByID(id uint) (*models.Article, error) {
	var article models.Article
	err := s.db.Preload("Author").First(&article, id).Error
	return &article, err
}

// GetArticlesByUser filters at the query level, same relative order as the
// full listing.
func (s *ArticleService) GetArticlesByUser(userID uint) ([]models.Article, error) {
	var articles []models.Article
	err := s.db.Preload("Author").Where("user_id = ?", userID).Find(&articles).Error
	return articles, err
}

func (s *ArticleService) CreateArticle(req *models.ArticleRequest, imagePath string) (*models.Article, error) {
	article := &models.Article{
		Title:       req.Title,
		Description: req.Description,
		Image:       imagePath,
		UserID:      req.UserID,
	}

	if err := s.db.Create(article).Error; err != nil {
		return nil, err
	}

	return article, nil
}

// UpdateArticle replaces all four mutable fields; the image path is always
// the freshly stored one.
func (s *ArticleService) UpdateArticle(article *models.Article, req *models.ArticleRequest, imagePath string) error {
	article.Title = req.Title
	article.Description = req.Description
	article.Image = imagePath
	article.UserID = req.UserID
	// a stale preloaded Author would win over user_id when Save writes
	// associations, reverting the owner
	article.Author = nil
	return s.db.Save(article).Error
}

// DeleteArticle soft-deletes: the row keeps its deleted_at stamp and drops
// out of default queries.
func (s *ArticleService) DeleteArticle(id uint) error {
	return s.db.Delete(&models.Article{}, id).Error
}
