package services

import (
	"enertek-backend-go/internal/models"
	"enertek-backend-go/internal/store"
)

type NewsService struct {
	store *store.Store
}

func NewNewsService(s *store.Store) *NewsService {
	return &NewsService{store: s}
}

func (s *NewsService) All(limit int) ([]models.News, error) {
	return s.store.News.All(limit)
}

func (s *NewsService) ByID(id int64) (*models.News, error) {
	return s.store.News.ByID(id)
}

func (s *NewsService) Create(item *models.News, actor string) (*models.News, error) {
	if err := validateNews(item); err != nil {
		return nil, err
	}
	return s.store.News.Create(item, actor)
}

func (s *NewsService) Update(item *models.News, actor string) (bool, error) {
	if err := validateNews(item); err != nil {
		return false, err
	}
	return s.store.News.Update(item, actor)
}

func (s *NewsService) Delete(id int64) DeleteOutcome {
	return outcomeFromDelete(s.store.News.Delete(id),
		"Cannot delete news, records still reference it")
}

func (s *NewsService) AddPhoto(newsID int64, url string) error {
	article, err := s.store.News.ByID(newsID)
	if err != nil {
		return WrapError(err, "lookup news")
	}
	if article == nil {
		return ErrNotFound("News not found")
	}
	return s.store.Photos.Add(store.Owner{Kind: store.OwnerNews, ID: newsID}, url)
}

func validateNews(item *models.News) error {
	title, err := NormalizeRequired(item.Title, "Title is required")
	if err != nil {
		return ErrBadRequest(err.Error())
	}
	content, err := NormalizeRequired(item.Content, "Content is required")
	if err != nil {
		return ErrBadRequest(err.Error())
	}
	item.Title = title
	item.Content = content
	return nil
}
