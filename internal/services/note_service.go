package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/epeers/company-accounts/internal/models"
	"github.com/epeers/company-accounts/internal/repository"
	"github.com/epeers/company-accounts/internal/transformer"
	"github.com/epeers/company-accounts/internal/util"
	"github.com/epeers/company-accounts/internal/validation"
)

// NoteService creates, reads, replaces and deletes the notes of every
// accounting note type
type NoteService struct {
	validators   *validation.NoteValidatorFactory
	transformers *transformer.NoteTransformerFactory
	repositories *repository.NoteRepositoryFactory
	parents      *ParentResourceFactory
	keys         *util.KeyGenerator
}

// NewNoteService creates a new NoteService
func NewNoteService(
	validators *validation.NoteValidatorFactory,
	transformers *transformer.NoteTransformerFactory,
	repositories *repository.NoteRepositoryFactory,
	parents *ParentResourceFactory,
	keys *util.KeyGenerator,
) *NoteService {
	return &NoteService{
		validators:   validators,
		transformers: transformers,
		repositories: repositories,
		parents:      parents,
		keys:         keys,
	}
}

type noteDependencies struct {
	validator   validation.NoteValidator
	transformer transformer.NoteTransformer
	repository  repository.NoteRepository
	parent      ParentResource
}

func (s *NoteService) dependencies(key models.AccountingNoteType) (*noteDependencies, error) {
	var (
		d   noteDependencies
		err error
	)
	if d.validator, err = s.validators.Get(key); err != nil {
		return nil, err
	}
	if d.transformer, err = s.transformers.Get(key); err != nil {
		return nil, err
	}
	if d.repository, err = s.repositories.Get(key); err != nil {
		return nil, err
	}
	if d.parent, err = s.parents.Get(key.Account); err != nil {
		return nil, err
	}
	return &d, nil
}

func noteResponse(status models.ResponseStatus) *models.ResponseObject[models.Note] {
	return &models.ResponseObject[models.Note]{Status: status}
}

// Create validates a note, stores it and links it from its parent
func (s *NoteService) Create(ctx context.Context, key models.AccountingNoteType, note models.Note, tx *models.Transaction, companyAccountsID, requestID string) (*models.ResponseObject[models.Note], error) {
	defer TrackTime("CreateNote", time.Now())

	d, err := s.dependencies(key)
	if err != nil {
		return nil, err
	}

	parent, err := d.parent.Get(ctx, companyAccountsID)
	if err != nil {
		if errors.Is(err, ErrParentNotFound) {
			return noteResponse(models.ResponseStatusNotFound), nil
		}
		return nil, err
	}
	if d.parent.ChildExists(parent, key.LinkName()) {
		return noteResponse(models.ResponseStatusDuplicateKeyError), nil
	}

	errs, err := d.validator.Validate(ctx, note, tx, companyAccountsID, requestID)
	if err != nil {
		return nil, err
	}
	if errs.HasErrors() {
		return &models.ResponseObject[models.Note]{Status: models.ResponseStatusValidationError, Errors: errs}, nil
	}

	uri := NoteURI(tx.ID, companyAccountsID, key)
	setMetadata(note, key.Kind(), uri)

	doc, err := d.transformer.ToEntity(note)
	if err != nil {
		return nil, err
	}
	doc.SetDocumentID(noteID(s.keys, companyAccountsID, key))

	if err := d.repository.Insert(ctx, doc); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return noteResponse(models.ResponseStatusDuplicateKeyError), nil
		}
		return nil, fmt.Errorf("failed to insert %s note: %w", key, err)
	}

	if err := d.parent.AddLink(ctx, companyAccountsID, key.LinkName(), uri, requestID); err != nil {
		if delErr := d.repository.Delete(ctx, doc.DocumentID()); delErr != nil {
			log.WithFields(log.Fields{"request_id": requestID, "note": key.String()}).WithError(delErr).Error("failed to remove unlinked note")
		}
		return nil, err
	}

	log.WithFields(log.Fields{"request_id": requestID, "note": key.String()}).Info("note created")
	return &models.ResponseObject[models.Note]{Status: models.ResponseStatusCreated, Data: note}, nil
}

// Get returns a stored note
func (s *NoteService) Get(ctx context.Context, key models.AccountingNoteType, companyAccountsID, requestID string) (*models.ResponseObject[models.Note], error) {
	defer TrackTime("GetNote", time.Now())

	d, err := s.dependencies(key)
	if err != nil {
		return nil, err
	}

	doc, err := d.repository.FindByID(ctx, noteID(s.keys, companyAccountsID, key))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return noteResponse(models.ResponseStatusNotFound), nil
		}
		return nil, fmt.Errorf("failed to get %s note: %w", key, err)
	}

	note, err := d.transformer.ToRest(doc)
	if err != nil {
		return nil, err
	}
	return &models.ResponseObject[models.Note]{Status: models.ResponseStatusFound, Data: note}, nil
}

// Update re-validates a note and replaces the stored copy
func (s *NoteService) Update(ctx context.Context, key models.AccountingNoteType, note models.Note, tx *models.Transaction, companyAccountsID, requestID string) (*models.ResponseObject[models.Note], error) {
	defer TrackTime("UpdateNote", time.Now())

	d, err := s.dependencies(key)
	if err != nil {
		return nil, err
	}

	errs, err := d.validator.Validate(ctx, note, tx, companyAccountsID, requestID)
	if err != nil {
		return nil, err
	}
	if errs.HasErrors() {
		return &models.ResponseObject[models.Note]{Status: models.ResponseStatusValidationError, Errors: errs}, nil
	}

	setMetadata(note, key.Kind(), NoteURI(tx.ID, companyAccountsID, key))
	doc, err := d.transformer.ToEntity(note)
	if err != nil {
		return nil, err
	}
	doc.SetDocumentID(noteID(s.keys, companyAccountsID, key))

	if err := d.repository.Update(ctx, doc); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return noteResponse(models.ResponseStatusNotFound), nil
		}
		return nil, fmt.Errorf("failed to update %s note: %w", key, err)
	}
	return &models.ResponseObject[models.Note]{Status: models.ResponseStatusUpdated, Data: note}, nil
}

// Delete removes a note and its link from the parent
func (s *NoteService) Delete(ctx context.Context, key models.AccountingNoteType, companyAccountsID, requestID string) (*models.ResponseObject[models.Note], error) {
	defer TrackTime("DeleteNote", time.Now())

	d, err := s.dependencies(key)
	if err != nil {
		return nil, err
	}

	if err := d.repository.Delete(ctx, noteID(s.keys, companyAccountsID, key)); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return noteResponse(models.ResponseStatusNotFound), nil
		}
		return nil, fmt.Errorf("failed to delete %s note: %w", key, err)
	}

	if err := d.parent.RemoveLink(ctx, companyAccountsID, key.LinkName(), requestID); err != nil {
		return nil, err
	}
	return noteResponse(models.ResponseStatusUpdated), nil
}
