package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/epeers/company-accounts/internal/factory"
	"github.com/epeers/company-accounts/internal/models"
	"github.com/epeers/company-accounts/internal/repository"
	"github.com/epeers/company-accounts/internal/transformer"
	"github.com/epeers/company-accounts/internal/util"
)

var ErrParentNotFound = errors.New("parent resource not found")

// ParentResource maintains the links a parent resource holds to its notes
// and periods
type ParentResource interface {
	Parent() models.AccountType
	ChildExists(parent models.Resource, linkType string) bool
	AddLink(ctx context.Context, companyAccountsID, linkType, link, requestID string) error
	RemoveLink(ctx context.Context, companyAccountsID, linkType, requestID string) error
	Get(ctx context.Context, companyAccountsID string) (models.Resource, error)
}

// SmallFullParentResource links notes and periods into the small full
// accounts of a company account
type SmallFullParentResource struct {
	repo *repository.SmallFullRepository
	keys *util.KeyGenerator
}

func NewSmallFullParentResource(repo *repository.SmallFullRepository, keys *util.KeyGenerator) *SmallFullParentResource {
	return &SmallFullParentResource{repo: repo, keys: keys}
}

func (p *SmallFullParentResource) Parent() models.AccountType {
	return models.AccountTypeSmallFull
}

// ChildExists reports whether parent links to linkType with a non-blank URI
func (p *SmallFullParentResource) ChildExists(parent models.Resource, linkType string) bool {
	if parent == nil {
		return false
	}
	link, ok := parent.Meta().Links[linkType]
	return ok && strings.TrimSpace(link) != ""
}

func (p *SmallFullParentResource) AddLink(ctx context.Context, companyAccountsID, linkType, link, requestID string) error {
	defer TrackTime("SmallFullParentResource.AddLink", time.Now())

	err := p.repo.SetLink(ctx, smallFullID(p.keys, companyAccountsID), linkType, link)
	if err != nil {
		log.WithFields(log.Fields{"request_id": requestID, "link_type": linkType}).WithError(err).Error("failed to add small full link")
		return p.wrap("add", linkType, err)
	}
	return nil
}

func (p *SmallFullParentResource) RemoveLink(ctx context.Context, companyAccountsID, linkType, requestID string) error {
	defer TrackTime("SmallFullParentResource.RemoveLink", time.Now())

	err := p.repo.RemoveLink(ctx, smallFullID(p.keys, companyAccountsID), linkType)
	if err != nil {
		log.WithFields(log.Fields{"request_id": requestID, "link_type": linkType}).WithError(err).Error("failed to remove small full link")
		return p.wrap("remove", linkType, err)
	}
	return nil
}

// Get re-reads the small full accounts from the store
func (p *SmallFullParentResource) Get(ctx context.Context, companyAccountsID string) (models.Resource, error) {
	doc, err := p.repo.FindByID(ctx, smallFullID(p.keys, companyAccountsID))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrParentNotFound
		}
		return nil, fmt.Errorf("failed to get small full accounts: %w", err)
	}
	return transformer.SmallFullToRest(doc), nil
}

func (p *SmallFullParentResource) wrap(op, linkType string, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("failed to %s %s link: %w", op, linkType, ErrParentNotFound)
	}
	return fmt.Errorf("failed to %s %s link: %w", op, linkType, err)
}

// ParentResourceFactory resolves the parent resource of an account type
type ParentResourceFactory = factory.Table[models.AccountType, ParentResource]

func NewParentResourceFactory(parents ...ParentResource) *ParentResourceFactory {
	return factory.NewTable("parent resource", parents, ParentResource.Parent)
}
