package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/rs/zerolog/log"
)

func auctionPath(productID string) string {
	return "/auctions/product/" + url.PathEscape(productID)
}

// ProductAuction returns the auction attached to a product. A product with
// no auction is not an error: found is false and nothing is logged or
// reported.
func (c *Client) ProductAuction(ctx context.Context, productID string) (auction json.RawMessage, found bool, err error) {
	path := auctionPath(productID)
	resp, err := c.authenticated(ctx, http.MethodGet, path, nil)
	if resp != nil && resp.StatusCode == http.StatusNotFound {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, c.fail(err, http.MethodGet, path)
	}
	return json.RawMessage(resp.Body), true, nil
}

func (c *Client) RemoveProductAuction(ctx context.Context, productID string) error {
	path := auctionPath(productID)
	if _, err := c.authenticated(ctx, http.MethodDelete, path, nil); err != nil {
		return c.fail(err, http.MethodDelete, path)
	}
	log.Info().Str("product_id", productID).Msg("Auction removed")
	return nil
}
