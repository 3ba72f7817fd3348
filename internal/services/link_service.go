package services

import (
	"fmt"

	"linkbio/internal/models"
	"linkbio/internal/repositories"
)

// LinkService handles business logic related to a user's links.
type LinkService struct {
	repo repositories.LinkRepository
}

// NewLinkService creates a new LinkService.
func NewLinkService(repo repositories.LinkRepository) *LinkService {
	return &LinkService{
		repo: repo,
	}
}

// GetUserLinks retrieves all links owned by the user.
func (s *LinkService) GetUserLinks(userID string) ([]models.Link, error) {
	return s.repo.GetAllByUser(userID)
}

// CreateLink creates a new link for the user.
func (s *LinkService) CreateLink(link *models.Link) error {
	link.Clicks = 0
	return s.repo.Create(link)
}

// UpdateLink changes a link's title and URL. A link owned by a different
// user is reported as not found rather than forbidden, so link IDs cannot
// be probed across accounts.
func (s *LinkService) UpdateLink(id, userID, title, url string) (*models.Link, error) {
	link, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if link.UserID != userID {
		return nil, fmt.Errorf("link with ID %s not found", id)
	}

	link.Title = title
	link.URL = url
	if err := s.repo.Update(link); err != nil {
		return nil, err
	}
	return link, nil
}

// DeleteLink removes a link owned by the user.
func (s *LinkService) DeleteLink(id, userID string) error {
	link, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if link.UserID != userID {
		return fmt.Errorf("link with ID %s not found", id)
	}
	return s.repo.Delete(id)
}
