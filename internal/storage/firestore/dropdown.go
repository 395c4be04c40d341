package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"

	"github.com/jobease/jobease-admin/internal/domain"
	"github.com/jobease/jobease-admin/internal/repository"
	"github.com/jobease/jobease-admin/internal/storage/fields"
	pkgfirestore "github.com/jobease/jobease-admin/pkg/firestore"
	"github.com/jobease/jobease-admin/pkg/logging"
)

// Ensure DropdownRepository implements repository.DropdownRepository
var _ repository.DropdownRepository = (*DropdownRepository)(nil)

// DropdownRepository implements repository.DropdownRepository with Firestore
type DropdownRepository struct {
	client *pkgfirestore.Client
	logger *logging.Logger
}

// NewDropdownRepository creates a DropdownRepository with a Firestore client
func NewDropdownRepository(client *pkgfirestore.Client, log *logging.Logger) *DropdownRepository {
	return &DropdownRepository{
		client: client,
		logger: log.With("component", "dropdown_repository"),
	}
}

// Get loads one dropdown document; a missing document yields repository.ErrNotFound
func (r *DropdownRepository) Get(ctx context.Context, name string) (domain.DropdownList, error) {
	doc, err := r.client.Collection(domain.CollectionDropdowns).Doc(name).Get(ctx)
	if err != nil {
		return domain.DropdownList{}, wrapError(fmt.Sprintf("get dropdown %q", name), err)
	}

	return dropdownFromSnapshot(doc), nil
}

// List loads every dropdown document
func (r *DropdownRepository) List(ctx context.Context) ([]domain.DropdownList, error) {
	docs, err := r.client.Collection(domain.CollectionDropdowns).Documents(ctx).GetAll()
	if err != nil {
		return nil, wrapError("list dropdowns", err)
	}

	lists := make([]domain.DropdownList, 0, len(docs))
	for _, doc := range docs {
		lists = append(lists, dropdownFromSnapshot(doc))
	}
	return lists, nil
}

// Save writes the options, replacing the document unless opts.Merge is set
func (r *DropdownRepository) Save(ctx context.Context, list domain.DropdownList, opts repository.SaveOptions) error {
	if list.Name == "" {
		return fmt.Errorf("save dropdown: empty name: %w", repository.ErrInvalidInput)
	}

	data := map[string]any{
		"options": optionsValue(list.Options),
	}
	if opts.Timestamps {
		data["created_at"] = firestore.ServerTimestamp
		data["updated_at"] = firestore.ServerTimestamp
	}

	var setOpts []firestore.SetOption
	if opts.Merge {
		setOpts = append(setOpts, firestore.MergeAll)
	}

	if _, err := r.client.Collection(domain.CollectionDropdowns).Doc(list.Name).Set(ctx, data, setOpts...); err != nil {
		return wrapError(fmt.Sprintf("save dropdown %q", list.Name), err)
	}

	r.logger.Debug("dropdown saved", "dropdown", list.Name, "options", len(list.Options), "merge", opts.Merge)
	return nil
}

// UpdateOptions fails with repository.ErrNotFound when the document is absent
func (r *DropdownRepository) UpdateOptions(ctx context.Context, name string, options []string) error {
	_, err := r.client.Collection(domain.CollectionDropdowns).Doc(name).Update(ctx, []firestore.Update{
		{Path: "options", Value: optionsValue(options)},
	})
	if err != nil {
		return wrapError(fmt.Sprintf("update dropdown %q", name), err)
	}
	return nil
}

func dropdownFromSnapshot(doc *firestore.DocumentSnapshot) domain.DropdownList {
	return domain.DropdownList{
		Name:    doc.Ref.ID,
		Options: fields.Strings(doc.Data()["options"]),
	}
}

// optionsValue never stores null for an empty list
func optionsValue(options []string) []string {
	if options == nil {
		return []string{}
	}
	return options
}
