package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/storefront-api/internal/domain"
	"github.com/jhoicas/storefront-api/internal/domain/catalog"
	"github.com/jhoicas/storefront-api/internal/domain/entity"
	"github.com/jhoicas/storefront-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, name, category, brand, image, price, rating, num_reviews, count_in_stock, description, created_at, updated_at`

// ProductRepo implements the ProductRepository port on PostgreSQL (usable
// with a pool or a tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository builds the product persistence adapter. Pass a pool
// or a tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persists a new product.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Category, product.Brand, product.Image,
		product.Price, product.Rating, product.NumReviews, product.CountInStock,
		product.Description, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID fetches a product by id.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	p, err := scanProduct(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// Update persists the product's editable fields. Rating and NumReviews are
// seed-time derived values and stay out of admin updates.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products
		SET name = $2, category = $3, brand = $4, image = $5, price = $6, count_in_stock = $7, description = $8, updated_at = $9
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Category, product.Brand, product.Image,
		product.Price, product.CountInStock, product.Description, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes a product.
func (r *ProductRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Search resolves one catalog page for the filter.
func (r *ProductRepo) Search(filter catalog.Filter, limit, offset int) ([]*entity.Product, error) {
	where, args := buildFilter(filter)
	args = append(args, limit, offset)
	query := fmt.Sprintf(`SELECT %s FROM products%s ORDER BY %s LIMIT $%d OFFSET $%d`,
		productColumns, where, orderBy(filter.Sort), len(args)-1, len(args))

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	defer rows.Close()

	var out []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Count returns the number of products matching the filter.
func (r *ProductRepo) Count(filter catalog.Filter) (int, error) {
	where, args := buildFilter(filter)
	var n int
	err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM products`+where, args...).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}

// Brands lists the distinct brands in the catalog.
func (r *ProductRepo) Brands() ([]string, error) {
	return r.distinct("brand")
}

// Categories lists the distinct categories in the catalog.
func (r *ProductRepo) Categories() ([]string, error) {
	return r.distinct("category")
}

func (r *ProductRepo) distinct(column string) ([]string, error) {
	query := fmt.Sprintf(`SELECT DISTINCT %s FROM products ORDER BY %s`, column, column)
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("distinct %s: %w", column, err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scan %s: %w", column, err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// DecrementStock reserves quantity units with a conditional update so a
// concurrent checkout can never drive stock below zero. When no row changes,
// the product is either gone or short on stock.
func (r *ProductRepo) DecrementStock(productID string, quantity int) error {
	query := `
		UPDATE products
		SET count_in_stock = count_in_stock - $2, updated_at = NOW()
		WHERE id = $1 AND count_in_stock >= $2`
	cmd, err := r.q.Exec(context.Background(), query, productID, quantity)
	if err != nil {
		return fmt.Errorf("decrement stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		exists, err := r.GetByID(productID)
		if err != nil {
			return err
		}
		if exists == nil {
			return domain.ErrProductUnavailable
		}
		return domain.ErrInsufficientStock
	}
	return nil
}

// buildFilter translates the domain filter to a WHERE clause. Conditions are
// conjunctive; an empty filter yields an empty clause.
func buildFilter(filter catalog.Filter) (string, []any) {
	var conds []string
	var args []any

	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if filter.Name != "" {
		add(`name ILIKE $%d`, "%"+filter.Name+"%")
	}
	if filter.Category != "" {
		add(`category = $%d`, filter.Category)
	}
	if filter.Brand != "" {
		add(`brand = $%d`, filter.Brand)
	}
	if filter.PriceMin != nil {
		add(`price >= $%d`, *filter.PriceMin)
	}
	if filter.PriceMax != nil {
		add(`price <= $%d`, *filter.PriceMax)
	}
	if filter.RatingMin != nil {
		add(`rating >= $%d`, *filter.RatingMin)
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// orderBy maps the sort enum to an ORDER BY expression. The id tiebreaker
// keeps pages stable when the sort key repeats.
func orderBy(sort catalog.Sort) string {
	switch sort {
	case catalog.SortLowest:
		return "price ASC, id"
	case catalog.SortHighest:
		return "price DESC, id"
	case catalog.SortTopRated:
		return "rating DESC, id"
	case catalog.SortNewest:
		return "created_at DESC, id"
	case catalog.SortOldest:
		return "created_at ASC, id"
	default:
		return "id DESC"
	}
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.Name, &p.Category, &p.Brand, &p.Image, &p.Price, &p.Rating,
		&p.NumReviews, &p.CountInStock, &p.Description, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
