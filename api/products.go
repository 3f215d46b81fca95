package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jrsteele09/go-admin-dashboard/catalog"
	"github.com/jrsteele09/go-admin-dashboard/validation"
	"github.com/rs/zerolog/log"
)

const (
	pathProducts     = "/products/"
	pathMineProducts = "/products/mine"
)

type Product struct {
	ID           ID     `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Category     string `json:"category"`
	InitialPrice Amount `json:"initial_price"`
	MinimumPrice Amount `json:"minimum_price"`
	Quantity     int    `json:"quantity"`
	Image        string `json:"image,omitempty"`
}

// Image is a file attached to a product form.
type Image struct {
	Filename string
	Content  io.Reader
}

// ProductInput is what the product form collects. Prices are kept as typed
// so they can be checked before anything is encoded.
type ProductInput struct {
	Title        string
	Description  string
	Category     string
	InitialPrice string
	MinimumPrice string
	Quantity     int
	AddToAuction bool
	Image        *Image
}

// ProductForm validates the price pair and encodes in as multipart form data.
// The result is fully buffered so the request can be sent again after a
// token refresh.
func ProductForm(in ProductInput) (*Payload, error) {
	if err := validation.ValidatePriceComparison(in.InitialPrice, in.MinimumPrice); err != nil {
		return nil, err
	}
	// parsed cleanly above
	initial, _ := strconv.ParseFloat(strings.TrimSpace(in.InitialPrice), 64)
	if err := validation.ValidatePrice(initial); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fields := []struct{ name, value string }{
		{"title", in.Title},
		{"description", in.Description},
		{"category", in.Category},
		{"initial_price", strings.TrimSpace(in.InitialPrice)},
		{"minimum_price", strings.TrimSpace(in.MinimumPrice)},
		{"quantity", strconv.Itoa(in.Quantity)},
		{"add_to_auction", strconv.FormatBool(in.AddToAuction)},
	}
	for _, f := range fields {
		if err := w.WriteField(f.name, f.value); err != nil {
			return nil, catalog.Wrap(catalog.GenUnknown, err)
		}
	}

	if in.Image != nil && in.Image.Content != nil {
		part, err := w.CreateFormFile("images", filepath.Base(in.Image.Filename))
		if err != nil {
			return nil, catalog.Wrap(catalog.GenUnknown, err)
		}
		if _, err := io.Copy(part, in.Image.Content); err != nil {
			return nil, catalog.Wrap(catalog.GenUnknown, fmt.Errorf("reading image %s: %w", in.Image.Filename, err))
		}
	}
	if err := w.Close(); err != nil {
		return nil, catalog.Wrap(catalog.GenUnknown, err)
	}

	return &Payload{ContentType: w.FormDataContentType(), Body: buf.Bytes()}, nil
}

// ListProducts returns the products owned by the signed in admin.
func (c *Client) ListProducts(ctx context.Context) ([]Product, error) {
	resp, err := c.authenticated(ctx, http.MethodGet, pathMineProducts, nil)
	if err != nil {
		return nil, c.fail(err, http.MethodGet, pathMineProducts)
	}
	var products []Product
	if err := decode(resp, &products); err != nil {
		return nil, c.fail(err, http.MethodGet, pathMineProducts)
	}
	return products, nil
}

func (c *Client) CreateProduct(ctx context.Context, in ProductInput) (json.RawMessage, error) {
	payload, err := ProductForm(in)
	if err != nil {
		return nil, err
	}
	resp, err := c.authenticated(ctx, http.MethodPost, pathProducts, payload)
	if err != nil {
		return nil, c.fail(err, http.MethodPost, pathProducts)
	}
	log.Info().Str("title", in.Title).Msg("Product created")
	return json.RawMessage(resp.Body), nil
}

func (c *Client) UpdateProduct(ctx context.Context, id string, in ProductInput) (json.RawMessage, error) {
	payload, err := ProductForm(in)
	if err != nil {
		return nil, err
	}
	path := productPath(id)
	resp, err := c.authenticated(ctx, http.MethodPut, path, payload)
	if err != nil {
		return nil, c.fail(err, http.MethodPut, path)
	}
	log.Info().Str("product_id", id).Msg("Product updated")
	return json.RawMessage(resp.Body), nil
}

func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	path := productPath(id)
	if _, err := c.authenticated(ctx, http.MethodDelete, path, nil); err != nil {
		return c.fail(err, http.MethodDelete, path)
	}
	log.Info().Str("product_id", id).Msg("Product deleted")
	return nil
}

func productPath(id string) string {
	return pathProducts + url.PathEscape(id)
}
