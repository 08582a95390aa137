// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-design-gallery/internal/logger"
	"github.com/MKhiriev/go-design-gallery/internal/query"
	"github.com/MKhiriev/go-design-gallery/models"
)

// designSearchFields are matched by the free-text term.
var designSearchFields = query.Columns{
	"title", "description", "short_description", "long_description", "tags",
}

var designFilterFields = query.Fields[models.DesignFilter]{
	query.Optional("category", func(f models.DesignFilter) *string { return f.Category }),
	query.Optional("style", func(f models.DesignFilter) *string { return f.Style }),
	query.Optional("colour", func(f models.DesignFilter) *string { return f.Colour }),
	query.Optional("fabric", func(f models.DesignFilter) *string { return f.Fabric }),
	query.Optional("occasion", func(f models.DesignFilter) *string { return f.Occasion }),
	query.Optional("featured", func(f models.DesignFilter) *bool { return f.Featured }),
	query.Optional("designer_name", func(f models.DesignFilter) *string { return f.DesignerName }),
	query.Optional("collection_name", func(f models.DesignFilter) *string { return f.CollectionName }),
	query.Optional("season", func(f models.DesignFilter) *string { return f.Season }),
}

var designCreateFields = query.Fields[models.DesignCreate]{
	query.Required("title", func(d models.DesignCreate) string { return d.Title }),
	query.Optional("description", func(d models.DesignCreate) *string { return d.Description }),
	query.Optional("short_description", func(d models.DesignCreate) *string { return d.ShortDescription }),
	query.Optional("long_description", func(d models.DesignCreate) *string { return d.LongDescription }),
	query.Required("r2_object_key", func(d models.DesignCreate) string { return d.ObjectKey }),
	query.Required("category", func(d models.DesignCreate) string { return d.Category }),
	query.Optional("style", func(d models.DesignCreate) *string { return d.Style }),
	query.Optional("colour", func(d models.DesignCreate) *string { return d.Colour }),
	query.Optional("fabric", func(d models.DesignCreate) *string { return d.Fabric }),
	query.Optional("occasion", func(d models.DesignCreate) *string { return d.Occasion }),
	query.Optional("size_available", func(d models.DesignCreate) *string { return d.SizeAvailable }),
	query.Optional("price_range", func(d models.DesignCreate) *string { return d.PriceRange }),
	query.Optional("tags", func(d models.DesignCreate) *string { return d.Tags }),
	query.Required("featured", func(d models.DesignCreate) bool { return d.Featured }),
	query.Optional("designer_name", func(d models.DesignCreate) *string { return d.DesignerName }),
	query.Optional("collection_name", func(d models.DesignCreate) *string { return d.CollectionName }),
	query.Optional("season", func(d models.DesignCreate) *string { return d.Season }),
}

var designUpdateFields = query.Fields[models.DesignUpdate]{
	query.Optional("title", func(d models.DesignUpdate) *string { return d.Title }),
	query.Optional("description", func(d models.DesignUpdate) *string { return d.Description }),
	query.Optional("short_description", func(d models.DesignUpdate) *string { return d.ShortDescription }),
	query.Optional("long_description", func(d models.DesignUpdate) *string { return d.LongDescription }),
	query.Optional("category", func(d models.DesignUpdate) *string { return d.Category }),
	query.Optional("style", func(d models.DesignUpdate) *string { return d.Style }),
	query.Optional("colour", func(d models.DesignUpdate) *string { return d.Colour }),
	query.Optional("fabric", func(d models.DesignUpdate) *string { return d.Fabric }),
	query.Optional("occasion", func(d models.DesignUpdate) *string { return d.Occasion }),
	query.Optional("size_available", func(d models.DesignUpdate) *string { return d.SizeAvailable }),
	query.Optional("price_range", func(d models.DesignUpdate) *string { return d.PriceRange }),
	query.Optional("tags", func(d models.DesignUpdate) *string { return d.Tags }),
	query.Optional("designer_name", func(d models.DesignUpdate) *string { return d.DesignerName }),
	query.Optional("collection_name", func(d models.DesignUpdate) *string { return d.CollectionName }),
	query.Optional("season", func(d models.DesignUpdate) *string { return d.Season }),
	query.Optional("featured", func(d models.DesignUpdate) *bool { return d.Featured }),
	query.Optional("status", func(d models.DesignUpdate) *string { return d.Status }),
}

var newestFirst = []query.Order{{Column: "created_at", Desc: true}, {Column: "id", Desc: true}}

// designRepository implements [DesignRepository] over the "designs" table.
type designRepository struct {
	gateway *Gateway
	now     func() time.Time
	logger  *logger.Logger
}

// NewDesignRepository constructs a [DesignRepository] on top of gateway.
func NewDesignRepository(gateway *Gateway, logger *logger.Logger) DesignRepository {
	logger.Debug().Msg("creating design repository")
	return &designRepository{
		gateway: gateway,
		now:     time.Now,
		logger:  logger,
	}
}

func (r *designRepository) Create(ctx context.Context, design models.DesignCreate) (models.Design, error) {
	changes := append(designCreateFields.Changes(design), query.Change{Column: "status", Value: models.DesignStatusActive})

	row, err := r.gateway.Create(ctx, DesignsTable, changes)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*designRepository.Create").Msg("error creating design")
		return models.Design{}, err
	}

	return designFromRow(row), nil
}

func (r *designRepository) GetByID(ctx context.Context, id int64) (models.Design, error) {
	row, err := r.gateway.GetByID(ctx, DesignsTable, id)
	if err != nil {
		return models.Design{}, err
	}
	if row == nil {
		return models.Design{}, fmt.Errorf("design %d: %w", id, ErrNotFound)
	}

	return designFromRow(row), nil
}

// List returns one page of active designs matching filter, newest first.
// The count and the page share the same predicate.
func (r *designRepository) List(ctx context.Context, filter models.DesignFilter, page query.Pagination) ([]models.Design, int64, error) {
	plan := query.Plan{
		Where:   designListPredicate(filter),
		OrderBy: newestFirst,
		Limit:   page.Limit(),
		Offset:  page.Offset(),
	}

	rows, total, err := r.gateway.List(ctx, DesignsTable, plan)
	if err != nil {
		return nil, 0, err
	}

	return designsFromRows(rows), total, nil
}

// designListPredicate is status = active AND the filters AND (the search).
func designListPredicate(filter models.DesignFilter) query.Clause {
	return query.Combine(query.And,
		query.Eq("status", models.DesignStatusActive),
		query.BuildFilterClause(designFilterFields.Filters(filter), designFilterFields.Columns()),
		query.BuildSearchClause(filter.Search, designSearchFields),
	)
}

func (r *designRepository) Featured(ctx context.Context, limit int) ([]models.Design, error) {
	where := query.Combine(query.And,
		query.Eq("status", models.DesignStatusActive),
		query.Eq("featured", true),
	)

	stmt := sq.Select("*").From(DesignsTable.Name).
		Where(where).
		OrderBy("created_at DESC", "id DESC").
		Suffix("LIMIT ?", limit)

	rows, err := r.gateway.Query(ctx, stmt)
	if err != nil {
		return nil, err
	}

	return designsFromRows(rows), nil
}

// Update applies the set fields of update and stamps updated_at.
func (r *designRepository) Update(ctx context.Context, id int64, update models.DesignUpdate) (models.Design, error) {
	changes := designUpdateFields.Changes(update)
	if len(changes) == 0 {
		return models.Design{}, ErrEmptyChangeSet
	}
	changes = append(changes, query.Change{Column: "updated_at", Value: r.now().UTC().Format(TimestampLayout)})

	row, err := r.gateway.Update(ctx, DesignsTable, id, changes)
	if err != nil {
		return models.Design{}, err
	}
	if row == nil {
		return models.Design{}, fmt.Errorf("design %d: %w", id, ErrNotFound)
	}

	return designFromRow(row), nil
}

func (r *designRepository) Delete(ctx context.Context, id int64) error {
	deleted, err := r.gateway.Delete(ctx, DesignsTable, id)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("design %d: %w", id, ErrNotFound)
	}

	return nil
}

// IncrementViews adds one view in a single statement.
func (r *designRepository) IncrementViews(ctx context.Context, id int64) error {
	found, err := r.gateway.Increment(ctx, DesignsTable, id, "view_count")
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("design %d: %w", id, ErrNotFound)
	}

	return nil
}

func designsFromRows(rows []Row) []models.Design {
	designs := make([]models.Design, 0, len(rows))
	for _, row := range rows {
		designs = append(designs, designFromRow(row))
	}
	return designs
}

func designFromRow(row Row) models.Design {
	return models.Design{
		ID:               row.Int64("id"),
		Title:            row.String("title"),
		Description:      row.NullString("description"),
		ShortDescription: row.NullString("short_description"),
		LongDescription:  row.NullString("long_description"),
		Category:         row.String("category"),
		Style:            row.NullString("style"),
		Colour:           row.NullString("colour"),
		Fabric:           row.NullString("fabric"),
		Occasion:         row.NullString("occasion"),
		SizeAvailable:    row.NullString("size_available"),
		PriceRange:       row.NullString("price_range"),
		Tags:             row.NullString("tags"),
		DesignerName:     row.NullString("designer_name"),
		CollectionName:   row.NullString("collection_name"),
		Season:           row.NullString("season"),
		ObjectKey:        row.String("r2_object_key"),
		Featured:         row.Bool("featured"),
		Status:           row.String("status"),
		ViewCount:        row.Int64("view_count"),
		LikeCount:        row.Int64("like_count"),
		CreatedAt:        row.Time("created_at"),
		UpdatedAt:        row.Time("updated_at"),
	}
}
