package impl

import (
	"context"
	"log/slog"

	deliverycontext "madr/internal/delivery/context"
	"madr/internal/domain/entity"
	domainerrors "madr/internal/domain/errors"
	"madr/internal/domain/repository"
	"madr/internal/domain/service"
	"madr/internal/usecase"
	"madr/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// novelistService implements the NovelistUsecase interface.
type novelistService struct {
	txManager    repository.TransactionManager
	novelistRepo repository.NovelistRepository
	index        service.CatalogIndex
	publisher    service.EventPublisher
	logger       *slog.Logger
}

// NovelistServiceParams holds dependencies for NovelistService, injected by Fx.
type NovelistServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	NovelistRepo repository.NovelistRepository
	Index        service.CatalogIndex
	Publisher    service.EventPublisher
	Logger       *slog.Logger
}

// NewNovelistService is the constructor for novelistService.
func NewNovelistService(params NovelistServiceParams) usecase.NovelistUsecase {
	return &novelistService{
		txManager:    params.TxManager,
		novelistRepo: params.NovelistRepo,
		index:        params.Index,
		publisher:    params.Publisher,
		logger:       params.Logger,
	}
}

func (srv *novelistService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.Logger(ctx, srv.logger)
}

func (srv *novelistService) Create(ctx context.Context, input *usecase.NovelistInput) (*entity.Novelist, error) {
	name, err := sanitizeRequired(input.Name, "nome")
	if err != nil {
		return nil, err
	}

	novelist := &entity.Novelist{Name: name}
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		novelistRepo := repoFactory.NewNovelistRepository()

		if err := ensureNovelistNameFree(ctx, novelistRepo, name, uuid.Nil); err != nil {
			return err
		}

		return novelistRepo.Create(ctx, novelist)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create novelist")
	}

	srv.log(ctx).Info("Novelist created", slog.Any("novelistID", novelist.ID))
	publishEvent(ctx, srv.publisher, srv.log(ctx), service.EventNovelistCreated, novelist.ID, newNovelistPayload(novelist))

	return novelist, nil
}

func (srv *novelistService) Get(ctx context.Context, id uuid.UUID) (*entity.Novelist, error) {
	novelist, err := srv.novelistRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNovelistNotFound) {
		return nil, domainerrors.ErrNovelistNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find novelist")
	}

	return novelist, nil
}

// Search lists novelists whose sanitized name contains name; an empty name lists all.
func (srv *novelistService) Search(ctx context.Context, name string, page entity.Page) ([]*entity.Novelist, error) {
	novelists, err := srv.novelistRepo.Search(ctx, repository.NovelistFilter{
		Name: util.SanitizeText(name),
		Page: page.Normalize(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to search novelists")
	}

	return novelists, nil
}

func (srv *novelistService) Update(ctx context.Context, id uuid.UUID, input *usecase.NovelistInput) (*entity.Novelist, error) {
	name, err := sanitizeRequired(input.Name, "nome")
	if err != nil {
		return nil, err
	}

	var updated *entity.Novelist
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		novelistRepo := repoFactory.NewNovelistRepository()

		novelist, err := novelistRepo.FindByID(ctx, id)
		if errors.Is(err, repository.ErrNovelistNotFound) {
			return domainerrors.ErrNovelistNotFound
		}
		if err != nil {
			return errors.Wrap(err, "failed to find novelist")
		}

		if err := ensureNovelistNameFree(ctx, novelistRepo, name, id); err != nil {
			return err
		}

		novelist.Name = name
		if err := novelistRepo.Update(ctx, novelist); err != nil {
			return err
		}
		updated = novelist

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update novelist")
	}

	srv.log(ctx).Info("Novelist updated", slog.Any("novelistID", id))
	publishEvent(ctx, srv.publisher, srv.log(ctx), service.EventNovelistUpdated, id, newNovelistPayload(updated))

	return updated, nil
}

// Delete removes the novelist and their books in one transaction, then drops
// the books from the catalog index.
func (srv *novelistService) Delete(ctx context.Context, id uuid.UUID) error {
	var bookIDs []uuid.UUID
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		novelistRepo := repoFactory.NewNovelistRepository()
		bookRepo := repoFactory.NewBookRepository()

		if _, err := novelistRepo.FindByID(ctx, id); err != nil {
			if errors.Is(err, repository.ErrNovelistNotFound) {
				return domainerrors.ErrNovelistNotFound
			}

			return errors.Wrap(err, "failed to find novelist")
		}

		ids, err := bookRepo.ListIDsByNovelist(ctx, id)
		if err != nil {
			return err
		}
		if _, err := bookRepo.DeleteByNovelist(ctx, id); err != nil {
			return err
		}
		bookIDs = ids

		return novelistRepo.Delete(ctx, id)
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete novelist")
	}

	for _, bookID := range bookIDs {
		if err := srv.index.RemoveBook(ctx, bookID); err != nil {
			srv.log(ctx).Warn("Failed to remove book from catalog index", slog.Any("bookID", bookID), slog.Any("error", err))
		}
	}

	srv.log(ctx).Info("Novelist deleted", slog.Any("novelistID", id), slog.Int("books", len(bookIDs)))
	publishEvent(ctx, srv.publisher, srv.log(ctx), service.EventNovelistDeleted, id, novelistDeletedPayload{ID: id, BookIDs: bookIDs})

	return nil
}

// ensureNovelistNameFree fails when another novelist than self already uses name.
func ensureNovelistNameFree(ctx context.Context, repo repository.NovelistRepository, name string, self uuid.UUID) error {
	existing, err := repo.FindByName(ctx, name)
	if errors.Is(err, repository.ErrNovelistNotFound) {
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to check novelist name")
	}
	if existing.ID != self {
		return domainerrors.ErrNovelistAlreadyExists
	}

	return nil
}

// sanitizeRequired sanitizes value and rejects it when nothing is left.
func sanitizeRequired(value, field string) (string, error) {
	sanitized := util.SanitizeText(value)
	if sanitized == "" {
		return "", domainerrors.ErrValidationFailed.WithDetails(field + " must not be blank")
	}

	return sanitized, nil
}
