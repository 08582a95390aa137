// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-design-gallery/internal/logger"
	"github.com/MKhiriev/go-design-gallery/internal/query"
)

const idColumn = "id"

// Gateway executes generic, parameterized statements over allow-listed
// tables. It holds no per-request state and is safe for concurrent use.
type Gateway struct {
	executor           Executor
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewGateway constructs a [Gateway] running statements through executor.
func NewGateway(executor Executor, classificator ErrorClassificator, logger *logger.Logger) *Gateway {
	return &Gateway{
		executor:           executor,
		errorClassificator: classificator,
		logger:             logger,
	}
}

// GetByID returns the row with the given id or nil when absent.
func (g *Gateway) GetByID(ctx context.Context, t Table, id int64) (Row, error) {
	stmt := sq.Select("*").From(t.Name).Where(sq.Eq{idColumn: id}).Limit(1)

	res, err := g.run(ctx, "GetByID", stmt)
	if err != nil {
		return nil, err
	}

	return first(res), nil
}

// GetByField returns every row whose field equals value.
func (g *Gateway) GetByField(ctx context.Context, t Table, field string, value any) ([]Row, error) {
	if err := t.Validate(field); err != nil {
		return nil, err
	}

	stmt := sq.Select("*").From(t.Name).Where(sq.Eq{field: value})

	res, err := g.run(ctx, "GetByField", stmt)
	if err != nil {
		return nil, err
	}

	return res.Rows, nil
}

// GetOneByField returns the first row whose field equals value or nil.
func (g *Gateway) GetOneByField(ctx context.Context, t Table, field string, value any) (Row, error) {
	if err := t.Validate(field); err != nil {
		return nil, err
	}

	stmt := sq.Select("*").From(t.Name).Where(sq.Eq{field: value}).Limit(1)

	res, err := g.run(ctx, "GetOneByField", stmt)
	if err != nil {
		return nil, err
	}

	return first(res), nil
}

// Create inserts fields and returns the stored row including the generated
// id and column defaults.
func (g *Gateway) Create(ctx context.Context, t Table, fields []query.Change) (Row, error) {
	stmt, err := insertStatement(t, fields)
	if err != nil {
		return nil, err
	}

	res, err := g.run(ctx, "Create", stmt.Suffix("RETURNING *"))
	if err != nil {
		return nil, err
	}

	row := first(res)
	if row == nil {
		return nil, fmt.Errorf("%w: insert into %s returned no row", ErrStorageUnavailable, t.Name)
	}

	return row, nil
}

// InsertIgnore inserts fields unless a row with the same conflictColumns
// exists. It reports whether a row was inserted. The check and the insert
// are one statement, so concurrent callers cannot both insert.
func (g *Gateway) InsertIgnore(ctx context.Context, t Table, fields []query.Change, conflictColumns ...string) (bool, error) {
	if err := t.Validate(conflictColumns...); err != nil {
		return false, err
	}

	stmt, err := insertStatement(t, fields)
	if err != nil {
		return false, err
	}

	suffix := "ON CONFLICT DO NOTHING RETURNING " + idColumn
	if len(conflictColumns) > 0 {
		suffix = fmt.Sprintf("ON CONFLICT (%s) DO NOTHING RETURNING %s", strings.Join(conflictColumns, ", "), idColumn)
	}

	res, err := g.run(ctx, "InsertIgnore", stmt.Suffix(suffix))
	if err != nil {
		return false, err
	}

	return len(res.Rows) == 1, nil
}

// Update applies changes to the row with id and returns the updated row,
// or nil when no such row exists. Only the listed columns are written.
func (g *Gateway) Update(ctx context.Context, t Table, id int64, changes []query.Change) (Row, error) {
	if len(changes) == 0 {
		return nil, ErrEmptyChangeSet
	}
	for _, ch := range changes {
		if err := t.Validate(ch.Column); err != nil {
			return nil, err
		}
	}

	set := query.BuildUpdateSet(changes)
	stmt := sq.Expr(
		fmt.Sprintf("UPDATE %s SET %s WHERE %s = ? RETURNING *", t.Name, set.SQL, idColumn),
		append(set.Args, id)...,
	)

	res, err := g.run(ctx, "Update", stmt)
	if err != nil {
		return nil, err
	}

	return first(res), nil
}

// Delete removes the row with id and reports whether exactly one row went.
func (g *Gateway) Delete(ctx context.Context, t Table, id int64) (bool, error) {
	n, err := g.DeleteWhere(ctx, t, query.Eq(idColumn, id))
	if err != nil {
		return false, err
	}

	return n == 1, nil
}

// DeleteWhere removes every row matching where and returns how many went.
// An empty predicate is refused rather than truncating the table.
func (g *Gateway) DeleteWhere(ctx context.Context, t Table, where query.Clause) (int64, error) {
	if where.IsEmpty() {
		return 0, fmt.Errorf("%w: delete without predicate", ErrEmptyChangeSet)
	}

	stmt := sq.Delete(t.Name).Where(where).Suffix("RETURNING " + idColumn)

	res, err := g.run(ctx, "DeleteWhere", stmt)
	if err != nil {
		return 0, err
	}

	return int64(len(res.Rows)), nil
}

// Count returns the number of rows matching where; an empty clause counts
// the whole table.
func (g *Gateway) Count(ctx context.Context, t Table, where query.Clause) (int64, error) {
	stmt := sq.Select("COUNT(*) AS total").From(t.Name)
	if !where.IsEmpty() {
		stmt = stmt.Where(where)
	}

	res, err := g.run(ctx, "Count", stmt)
	if err != nil {
		return 0, err
	}

	row := first(res)
	if row == nil {
		return 0, nil
	}

	return row.Int64("total"), nil
}

// List returns one window of rows matching plan.Where together with the
// number of rows matching the same predicate.
func (g *Gateway) List(ctx context.Context, t Table, plan query.Plan) ([]Row, int64, error) {
	for _, o := range plan.OrderBy {
		if err := t.Validate(o.Column); err != nil {
			return nil, 0, err
		}
	}

	total, err := g.Count(ctx, t, plan.Where)
	if err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []Row{}, 0, nil
	}

	stmt := sq.Select("*").From(t.Name)
	if !plan.Where.IsEmpty() {
		stmt = stmt.Where(plan.Where)
	}
	for _, o := range plan.OrderBy {
		stmt = stmt.OrderBy(o.String())
	}
	if plan.Limit > 0 {
		stmt = stmt.Suffix("LIMIT ? OFFSET ?", plan.Limit, plan.Offset)
	}

	res, err := g.run(ctx, "List", stmt)
	if err != nil {
		return nil, 0, err
	}

	return res.Rows, total, nil
}

// Increment atomically adds one to column of the row with id and reports
// whether the row exists.
func (g *Gateway) Increment(ctx context.Context, t Table, id int64, column string) (bool, error) {
	if err := t.Validate(column); err != nil {
		return false, err
	}

	stmt := sq.Update(t.Name).
		Set(column, sq.Expr(column+" + 1")).
		Where(sq.Eq{idColumn: id}).
		Suffix("RETURNING " + idColumn)

	res, err := g.run(ctx, "Increment", stmt)
	if err != nil {
		return false, err
	}

	return len(res.Rows) == 1, nil
}

// Query runs an arbitrary read statement, used for joins and aggregates
// the generic primitives do not cover.
func (g *Gateway) Query(ctx context.Context, stmt sq.Sqlizer) ([]Row, error) {
	res, err := g.run(ctx, "Query", stmt)
	if err != nil {
		return nil, err
	}

	return res.Rows, nil
}

func (g *Gateway) run(ctx context.Context, op string, stmt sq.Sqlizer) (Result, error) {
	log := logger.FromContext(ctx)

	sqlText, args, err := stmt.ToSql()
	if err != nil {
		log.Err(err).Str("func", "Gateway."+op).Msg("error building statement")
		return Result{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := g.executor.Query(ctx, sqlText, args...)
	if err != nil {
		log.Err(err).Str("func", "Gateway."+op).Str("sql", sqlText).Msg("statement failed")
		return Result{}, g.classify(err)
	}

	log.Debug().Str("func", "Gateway."+op).Str("sql", sqlText).Int("rows", len(res.Rows)).Send()
	return res, nil
}

func (g *Gateway) classify(err error) error {
	if g.errorClassificator != nil && g.errorClassificator.Classify(err) == UniqueViolation {
		return fmt.Errorf("%w: %w", ErrConflict, err)
	}

	return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
}

func insertStatement(t Table, fields []query.Change) (sq.InsertBuilder, error) {
	if len(fields) == 0 {
		return sq.InsertBuilder{}, ErrEmptyChangeSet
	}

	columns := make([]string, 0, len(fields))
	values := make([]any, 0, len(fields))
	for _, f := range fields {
		if err := t.Validate(f.Column); err != nil {
			return sq.InsertBuilder{}, err
		}
		columns = append(columns, f.Column)
		values = append(values, f.Value)
	}

	return sq.Insert(t.Name).Columns(columns...).Values(values...), nil
}

func first(res Result) Row {
	if len(res.Rows) == 0 {
		return nil
	}
	return res.Rows[0]
}
