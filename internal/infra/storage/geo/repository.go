package geo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/rainbowtours/RTG-BookingService/internal/domain"
	"github.com/rainbowtours/RTG-BookingService/pkg/dbmetrics"
	"github.com/rainbowtours/RTG-BookingService/pkg/psqlbuilder"
)

// uniqueViolation код ошибки PostgreSQL для нарушения уникального ограничения
const uniqueViolation = pq.ErrorCode("23505")

var cityColumns = []string{
	"id",
	"country_id",
	"name",
	"slug",
	"country_code",
	"country_name",
	"active",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы со странами и городами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр гео-репозитория
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetCountryByCode получает страну по ISO коду
func (r *Repository) GetCountryByCode(ctx context.Context, code string) (*domain.Country, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"code",
		"name",
		"supported",
		"created_at",
		"updated_at",
	).
		From("countries").
		Where(squirrel.Eq{"code": code}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetCountryByCode - build select query: %v", ErrBuildQuery, err)
	}

	var country domain.Country
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&country.ID,
		&country.Code,
		&country.Name,
		&country.Supported,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrCountryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetCountryByCode - scan country: %v", ErrScanRow, err)
	}

	country.CreatedAt = createdAt.Time
	country.UpdatedAt = updatedAt.Time

	return &country, nil
}

// CreateCountry создает новую страну
// Нарушение уникальности ISO кода возвращается как ErrDuplicateCountry -
// конкурирующий запрос успел вставить страну первым, вызывающий код
// должен повторить lookup
func (r *Repository) CreateCountry(ctx context.Context, country *domain.Country) (*domain.Country, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("countries").
		Columns("code", "name", "supported").
		Values(country.Code, country.Name, country.Supported).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateCountry - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&country.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, ErrDuplicateCountry
		}
		return nil, fmt.Errorf("%w: CreateCountry - execute insert: %v", ErrExecQuery, err)
	}

	country.CreatedAt = createdAt.Time
	country.UpdatedAt = updatedAt.Time

	return country, nil
}

// GetCityByName получает город страны по имени (точное совпадение без
// учета регистра, ILIKE без wildcards)
func (r *Repository) GetCityByName(ctx context.Context, countryID int64, name string) (*domain.City, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(cityColumns...).
		From("cities").
		Where(squirrel.Eq{"country_id": countryID}).
		Where(squirrel.ILike{"name": name}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetCityByName - build select query: %v", ErrBuildQuery, err)
	}

	city, err := scanCity(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrCityNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetCityByName - scan city: %v", ErrScanRow, err)
	}

	return city, nil
}

// GetCityBySlug получает город по slug
func (r *Repository) GetCityBySlug(ctx context.Context, slug string) (*domain.City, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(cityColumns...).
		From("cities").
		Where(squirrel.Eq{"slug": slug}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetCityBySlug - build select query: %v", ErrBuildQuery, err)
	}

	city, err := scanCity(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrCityNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetCityBySlug - scan city: %v", ErrScanRow, err)
	}

	return city, nil
}

// CreateCity создает новый город
// Уникальность slug обеспечивается ограничением в БД: нарушение
// возвращается как ErrDuplicateSlug, резолвер по нему переходит к
// следующему кандидату slug-а вместо предварительной проверки занятости
func (r *Repository) CreateCity(ctx context.Context, city *domain.City) (*domain.City, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("cities").
		Columns(
			"country_id",
			"name",
			"slug",
			"country_code",
			"country_name",
			"active",
		).
		Values(
			city.CountryID,
			city.Name,
			city.Slug,
			city.CountryCode,
			city.CountryName,
			city.Active,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateCity - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&city.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, ErrDuplicateSlug
		}
		return nil, fmt.Errorf("%w: CreateCity - execute insert: %v", ErrExecQuery, err)
	}

	city.CreatedAt = createdAt.Time
	city.UpdatedAt = updatedAt.Time

	return city, nil
}

// UpdateCityCountryInfo бэкофилит денормализованные код и название страны
// на городах, созданных до денормализации
func (r *Repository) UpdateCityCountryInfo(ctx context.Context, cityID int64, countryCode, countryName string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("cities").
		Set("country_code", countryCode).
		Set("country_name", countryName).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": cityID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateCityCountryInfo - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateCityCountryInfo - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateCityCountryInfo - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrCityNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCity(row rowScanner) (*domain.City, error) {
	var city domain.City
	var countryCode, countryName sql.NullString
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&city.ID,
		&city.CountryID,
		&city.Name,
		&city.Slug,
		&countryCode,
		&countryName,
		&city.Active,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, err
	}

	city.CountryCode = countryCode.String
	city.CountryName = countryName.String
	city.CreatedAt = createdAt.Time
	city.UpdatedAt = updatedAt.Time

	return &city, nil
}
