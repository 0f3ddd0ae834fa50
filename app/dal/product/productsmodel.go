package product

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"EcoSage/app/core/catalog"

	"github.com/zeromicro/go-zero/core/stores/cache"
	"github.com/zeromicro/go-zero/core/stores/sqlc"
	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

var _ ProductsModel = (*customProductsModel)(nil)

const (
	productsTable = "`products`"

	cacheProductsIdPrefix = "cache:products:id:"
)

var productRows = strings.Join([]string{
	"`id`", "`name`", "`description`", "`price`", "`image`", "`category`",
	"`eco_score`", "`in_stock`", "`brand`", "`tags`", "`materials`", "`certifications`",
}, ",")

type (
	// ProductsModel is the read-mostly catalog source. List calls bypass the
	// row cache; single-row lookups go through sqlc.
	ProductsModel interface {
		Insert(ctx context.Context, data *Product) (sql.Result, error)
		FindOne(ctx context.Context, id string) (*Product, error)
		Update(ctx context.Context, data *Product) error
		Delete(ctx context.Context, id string) error
		ListAll(ctx context.Context) ([]*Product, error)
		ListByCategory(ctx context.Context, category string) ([]*Product, error)
		Count(ctx context.Context) (int64, error)
	}

	customProductsModel struct {
		sqlc.CachedConn
	}

	// Product is the catalog row. Tag-like fields are stored as JSON arrays.
	Product struct {
		Id             string  `db:"id"`
		Name           string  `db:"name"`
		Description    string  `db:"description"`
		Price          float64 `db:"price"`
		Image          string  `db:"image"`
		Category       string  `db:"category"`
		EcoScore       int64   `db:"eco_score"`
		InStock        bool    `db:"in_stock"`
		Brand          string  `db:"brand"`
		Tags           string  `db:"tags"`
		Materials      string  `db:"materials"`
		Certifications string  `db:"certifications"`
	}
)

// NewProductsModel returns a model for the products table.
func NewProductsModel(conn sqlx.SqlConn, c cache.CacheConf, opts ...cache.Option) ProductsModel {
	return &customProductsModel{
		CachedConn: sqlc.NewConn(conn, c, opts...),
	}
}

func (m *customProductsModel) Insert(ctx context.Context, data *Product) (sql.Result, error) {
	key := fmt.Sprintf("%s%v", cacheProductsIdPrefix, data.Id)
	return m.ExecCtx(ctx, func(ctx context.Context, conn sqlx.SqlConn) (sql.Result, error) {
		query := fmt.Sprintf("insert into %s (%s) values (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)", productsTable, productRows)
		return conn.ExecCtx(ctx, query, data.Id, data.Name, data.Description, data.Price, data.Image,
			data.Category, data.EcoScore, data.InStock, data.Brand, data.Tags, data.Materials, data.Certifications)
	}, key)
}

func (m *customProductsModel) FindOne(ctx context.Context, id string) (*Product, error) {
	key := fmt.Sprintf("%s%v", cacheProductsIdPrefix, id)
	var resp Product
	err := m.QueryRowCtx(ctx, &resp, key, func(ctx context.Context, conn sqlx.SqlConn, v any) error {
		query := fmt.Sprintf("select %s from %s where `id` = ? limit 1", productRows, productsTable)
		return conn.QueryRowCtx(ctx, v, query, id)
	})
	switch err {
	case nil:
		return &resp, nil
	case sqlc.ErrNotFound:
		return nil, ErrNotFound
	default:
		return nil, err
	}
}

func (m *customProductsModel) Update(ctx context.Context, data *Product) error {
	key := fmt.Sprintf("%s%v", cacheProductsIdPrefix, data.Id)
	_, err := m.ExecCtx(ctx, func(ctx context.Context, conn sqlx.SqlConn) (sql.Result, error) {
		query := fmt.Sprintf("update %s set `name` = ?, `description` = ?, `price` = ?, `image` = ?, `category` = ?, `eco_score` = ?, `in_stock` = ?, `brand` = ?, `tags` = ?, `materials` = ?, `certifications` = ? where `id` = ?", productsTable)
		return conn.ExecCtx(ctx, query, data.Name, data.Description, data.Price, data.Image, data.Category,
			data.EcoScore, data.InStock, data.Brand, data.Tags, data.Materials, data.Certifications, data.Id)
	}, key)
	return err
}

func (m *customProductsModel) Delete(ctx context.Context, id string) error {
	key := fmt.Sprintf("%s%v", cacheProductsIdPrefix, id)
	_, err := m.ExecCtx(ctx, func(ctx context.Context, conn sqlx.SqlConn) (sql.Result, error) {
		query := fmt.Sprintf("delete from %s where `id` = ?", productsTable)
		return conn.ExecCtx(ctx, query, id)
	}, key)
	return err
}

func (m *customProductsModel) ListAll(ctx context.Context) ([]*Product, error) {
	query := fmt.Sprintf("select %s from %s order by `id`", productRows, productsTable)
	var resp []*Product
	err := m.QueryRowsNoCacheCtx(ctx, &resp, query)
	switch err {
	case nil:
		return resp, nil
	case sqlc.ErrNotFound:
		return nil, ErrNotFound
	default:
		return nil, err
	}
}

func (m *customProductsModel) ListByCategory(ctx context.Context, category string) ([]*Product, error) {
	query := fmt.Sprintf("select %s from %s where `category` = ? order by `id`", productRows, productsTable)
	var resp []*Product
	err := m.QueryRowsNoCacheCtx(ctx, &resp, query, category)
	switch err {
	case nil:
		return resp, nil
	case sqlc.ErrNotFound:
		return nil, ErrNotFound
	default:
		return nil, err
	}
}

func (m *customProductsModel) Count(ctx context.Context) (int64, error) {
	query := fmt.Sprintf("select count(*) from %s", productsTable)
	var total int64
	if err := m.QueryRowNoCacheCtx(ctx, &total, query); err != nil {
		return 0, err
	}
	return total, nil
}

// ToCatalog maps a row to the read-only catalog entry the cores consume.
// Bad JSON in a list column degrades to an empty set, not an error.
func (p *Product) ToCatalog() catalog.Product {
	return catalog.Product{
		Id:             p.Id,
		Name:           p.Name,
		Description:    p.Description,
		Price:          p.Price,
		Image:          p.Image,
		Category:       p.Category,
		EcoScore:       clampEcoScore(p.EcoScore),
		InStock:        p.InStock,
		Brand:          p.Brand,
		Tags:           decodeList(p.Tags),
		Materials:      decodeList(p.Materials),
		Certifications: decodeList(p.Certifications),
	}
}

// FromCatalog maps a catalog entry onto a row, for seeding.
func FromCatalog(p catalog.Product) *Product {
	return &Product{
		Id:             p.Id,
		Name:           p.Name,
		Description:    p.Description,
		Price:          p.Price,
		Image:          p.Image,
		Category:       p.Category,
		EcoScore:       int64(p.EcoScore),
		InStock:        p.InStock,
		Brand:          p.Brand,
		Tags:           encodeList(p.Tags),
		Materials:      encodeList(p.Materials),
		Certifications: encodeList(p.Certifications),
	}
}

func decodeList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var out []string
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func encodeList(list []string) string {
	if len(list) == 0 {
		return "[]"
	}
	raw, err := json.Marshal(list)
	if err != nil {
		return "[]"
	}
	return string(raw)
}

func clampEcoScore(v int64) int {
	if v < 0 {
		return 0
	}
	if v > 10 {
		return 10
	}
	return int(v)
}
