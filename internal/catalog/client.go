package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/imc-metrology/catalog-backend/internal/brand"
	"github.com/imc-metrology/catalog-backend/internal/category"
	"github.com/imc-metrology/catalog-backend/internal/product"
)

// Client is the remote-mode Source: a thin HTTP client over the REST API.
// Non-success statuses surface the server's {"error": ...} message, falling
// back to a generic "failed to <action>" when the body has none.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: httpClient}
}

func (c *Client) Brands() ([]brand.Brand, error) {
	var out []brand.Brand
	if err := c.do(http.MethodGet, "/api/brands", nil, &out, "fetch brands"); err != nil {
		return nil, err
	}
	return out, nil
}

// Brand maps a 404 to (nil, nil): absence is an answer, not a failure.
func (c *Client) Brand(id string) (*brand.Brand, error) {
	res, err := c.http.Get(c.baseURL + "/api/brands/" + id)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, c.errorFrom(res, "fetch brand")
	}

	out := new(brand.Brand)
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CategoriesByBrand(brandID string) ([]category.Category, error) {
	var out []category.Category
	if err := c.do(http.MethodGet, "/api/brands/"+brandID+"/categories", nil, &out, "fetch categories"); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Products() ([]product.Product, error) {
	var out []product.Product
	if err := c.do(http.MethodGet, "/api/products", nil, &out, "fetch products"); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ProductsByCategory(categoryID int) ([]product.Product, error) {
	var out []product.Product
	path := fmt.Sprintf("/api/categories/%d/products", categoryID)
	if err := c.do(http.MethodGet, path, nil, &out, "fetch products"); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateProduct(p product.Product) (product.Product, error) {
	var out product.Product
	if err := c.do(http.MethodPost, "/api/products", p, &out, "create product"); err != nil {
		return product.Product{}, err
	}
	return out, nil
}

func (c *Client) UpdateProduct(id int, p product.Product) (product.Product, error) {
	var out product.Product
	if err := c.do(http.MethodPut, fmt.Sprintf("/api/products/%d", id), p, &out, "update product"); err != nil {
		return product.Product{}, err
	}
	return out, nil
}

func (c *Client) DeleteProduct(id int) error {
	return c.do(http.MethodDelete, fmt.Sprintf("/api/products/%d", id), nil, nil, "delete product")
}

func (c *Client) CreateBrand(b brand.Brand) (brand.Brand, error) {
	var out brand.Brand
	if err := c.do(http.MethodPost, "/api/brands", b, &out, "create brand"); err != nil {
		return brand.Brand{}, err
	}
	return out, nil
}

func (c *Client) UpdateBrand(id string, b brand.Brand) (brand.Brand, error) {
	var out brand.Brand
	if err := c.do(http.MethodPut, "/api/brands/"+id, b, &out, "update brand"); err != nil {
		return brand.Brand{}, err
	}
	return out, nil
}

func (c *Client) DeleteBrand(id string) error {
	return c.do(http.MethodDelete, "/api/brands/"+id, nil, nil, "delete brand")
}

func (c *Client) CreateCategory(cat category.Category) (category.Category, error) {
	var out category.Category
	if err := c.do(http.MethodPost, "/api/categories", cat, &out, "create category"); err != nil {
		return category.Category{}, err
	}
	return out, nil
}

func (c *Client) UpdateCategory(id int, cat category.Category) (category.Category, error) {
	var out category.Category
	if err := c.do(http.MethodPut, fmt.Sprintf("/api/categories/%d", id), cat, &out, "update category"); err != nil {
		return category.Category{}, err
	}
	return out, nil
}

func (c *Client) DeleteCategory(id int) error {
	return c.do(http.MethodDelete, fmt.Sprintf("/api/categories/%d", id), nil, nil, "delete category")
}

func (c *Client) do(method, path string, body, out any, action string) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return c.errorFrom(res, action)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(res.Body).Decode(out)
}

func (c *Client) errorFrom(res *http.Response, action string) error {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(res.Body).Decode(&payload); err == nil && payload.Error != "" {
		return fmt.Errorf("%s", payload.Error)
	}
	return fmt.Errorf("failed to %s", action)
}
