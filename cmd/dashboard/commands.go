package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/jrsteele09/go-admin-dashboard/api"
	"github.com/jrsteele09/go-admin-dashboard/catalog"
	"github.com/jrsteele09/go-admin-dashboard/pipeline"
	"github.com/jrsteele09/go-admin-dashboard/session"
	"github.com/rs/zerolog/log"
)

var (
	errUsage = errors.New("invalid usage")

	// errReported means the failure was already shown through notify.
	errReported = errors.New("failure already reported")
)

type commands struct {
	client   *api.Client
	creds    *session.Credentials
	prefs    *session.Preferences
	out      io.Writer
	errOut   io.Writer
	notified bool
}

// notify is the client's Notifier.
func (c *commands) notify(message string) {
	c.notified = true
	fmt.Fprintln(c.errOut, message)
}

func (c *commands) dispatch(ctx context.Context, name string, args []string) error {
	handlers := map[string]func(context.Context, []string) error{
		"register":       c.register,
		"login":          c.login,
		"verify":         c.verify,
		"products":       c.products,
		"add-product":    c.addProduct,
		"update-product": c.updateProduct,
		"delete-product": c.deleteProduct,
		"orders":         c.orders,
		"auction":        c.auction,
		"remove-auction": c.removeAuction,
		"lang":           c.lang,
		"status":         c.status,
		"logout":         c.logout,
	}
	h, ok := handlers[name]
	if !ok {
		usage(os.Stderr)
		return fmt.Errorf("%w: unknown command %q", errUsage, name)
	}

	err := h(ctx, args)
	log.Debug().Interface("stats", c.client.Pipeline().Stats()).Msg("Request pipeline")
	if pipeline.IsSessionError(err) {
		fmt.Fprintln(c.errOut, "Run `dashboard login` to sign in again.")
	}
	if err != nil && c.notified {
		return errReported
	}
	var coded catalog.Coded
	if errors.As(err, &coded) {
		return errors.New(c.describe(err))
	}
	return err
}

func (c *commands) describe(err error) string {
	return catalog.Describe(err, c.prefs.Language())
}

func newFlags(name string) *flag.FlagSet {
	return flag.NewFlagSet(name, flag.ContinueOnError)
}

func parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}
	return nil
}

func (c *commands) register(ctx context.Context, args []string) error {
	fs := newFlags("register")
	name := fs.String("name", "", "full name")
	phone := fs.String("phone", "", "mobile number, 5XXXXXXXX")
	if err := parse(fs, args); err != nil {
		return err
	}
	res, err := c.client.Register(ctx, api.RegisterRequest{Name: *name, Phone: *phone})
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "OTP sent to %s. Run `dashboard verify -otp CODE`.\n", res.Phone)
	return nil
}

func (c *commands) login(ctx context.Context, args []string) error {
	fs := newFlags("login")
	phone := fs.String("phone", "", "mobile number, 5XXXXXXXX")
	if err := parse(fs, args); err != nil {
		return err
	}
	normalized, err := c.client.Login(ctx, *phone)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "OTP sent to %s. Run `dashboard verify -otp CODE`.\n", normalized)
	return nil
}

func (c *commands) verify(ctx context.Context, args []string) error {
	fs := newFlags("verify")
	otp := fs.String("otp", "", "one time password")
	phone := fs.String("phone", "", "phone to verify, defaults to the last login")
	if err := parse(fs, args); err != nil {
		return err
	}
	if _, err := c.client.VerifyOTP(ctx, *otp, *phone); err != nil {
		if errors.Is(err, api.ErrAccountUnderReview) {
			return errors.New("your account is under review, please wait for approval")
		}
		return err
	}
	fmt.Fprintln(c.out, "Signed in.")
	return nil
}

func (c *commands) products(ctx context.Context, _ []string) error {
	products, err := c.client.ListProducts(ctx)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tCATEGORY\tINITIAL\tMINIMUM\tQTY\tIMAGE")
	for _, p := range products {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d\t%s\n",
			p.ID, p.Title, p.Category, p.InitialPrice, p.MinimumPrice, p.Quantity, c.client.AssetURL(p.Image))
	}
	return w.Flush()
}

// productFlags registers the product form fields on fs. The returned func
// builds the input once fs has been parsed, opening the image if given.
func productFlags(fs *flag.FlagSet) func() (api.ProductInput, func(), error) {
	title := fs.String("title", "", "product title")
	description := fs.String("description", "", "product description")
	category := fs.String("category", "", "product category")
	initial := fs.String("initial-price", "", "initial price")
	minimum := fs.String("minimum-price", "", "minimum price")
	quantity := fs.Int("quantity", 1, "quantity")
	auction := fs.Bool("auction", false, "add the product to an auction")
	image := fs.String("image", "", "path to an image file")

	return func() (api.ProductInput, func(), error) {
		in := api.ProductInput{
			Title:        *title,
			Description:  *description,
			Category:     *category,
			InitialPrice: *initial,
			MinimumPrice: *minimum,
			Quantity:     *quantity,
			AddToAuction: *auction,
		}
		if *image == "" {
			return in, func() {}, nil
		}
		f, err := os.Open(*image)
		if err != nil {
			return in, nil, fmt.Errorf("opening image: %w", err)
		}
		in.Image = &api.Image{Filename: f.Name(), Content: f}
		return in, func() { _ = f.Close() }, nil
	}
}

func (c *commands) addProduct(ctx context.Context, args []string) error {
	fs := newFlags("add-product")
	build := productFlags(fs)
	if err := parse(fs, args); err != nil {
		return err
	}
	in, done, err := build()
	if err != nil {
		return err
	}
	defer done()
	data, err := c.client.CreateProduct(ctx, in)
	if err != nil {
		return err
	}
	return c.printJSON(data)
}

func (c *commands) updateProduct(ctx context.Context, args []string) error {
	fs := newFlags("update-product")
	id := fs.String("id", "", "product id")
	build := productFlags(fs)
	if err := parse(fs, args); err != nil {
		return err
	}
	if *id == "" {
		return fmt.Errorf("%w: -id is required", errUsage)
	}
	in, done, err := build()
	if err != nil {
		return err
	}
	defer done()
	data, err := c.client.UpdateProduct(ctx, *id, in)
	if err != nil {
		return err
	}
	return c.printJSON(data)
}

func (c *commands) deleteProduct(ctx context.Context, args []string) error {
	fs := newFlags("delete-product")
	id := fs.String("id", "", "product id")
	if err := parse(fs, args); err != nil {
		return err
	}
	if *id == "" {
		return fmt.Errorf("%w: -id is required", errUsage)
	}
	if err := c.client.DeleteProduct(ctx, *id); err != nil {
		return err
	}
	fmt.Fprintln(c.out, "Product deleted.")
	return nil
}

func (c *commands) orders(ctx context.Context, _ []string) error {
	orders, err := c.client.ListOrders(ctx)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ORDER\tSTATUS\tCUSTOMER\tTOTAL\tITEMS\tCREATED")
	for _, o := range orders {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\n", o.Number(), o.Status, o.Customer(), o.TotalAmount, len(o.Items), o.CreatedAt)
	}
	fmt.Fprintf(w, "\t\tREVENUE\t%s\t\t\n", api.Revenue(orders))
	return w.Flush()
}

func (c *commands) auction(ctx context.Context, args []string) error {
	fs := newFlags("auction")
	productID := fs.String("product", "", "product id")
	if err := parse(fs, args); err != nil {
		return err
	}
	data, found, err := c.client.ProductAuction(ctx, *productID)
	if err != nil {
		return err
	}
	if !found {
		fmt.Fprintln(c.out, "No auction for this product.")
		return nil
	}
	return c.printJSON(data)
}

func (c *commands) removeAuction(ctx context.Context, args []string) error {
	fs := newFlags("remove-auction")
	productID := fs.String("product", "", "product id")
	if err := parse(fs, args); err != nil {
		return err
	}
	if err := c.client.RemoveProductAuction(ctx, *productID); err != nil {
		return err
	}
	fmt.Fprintln(c.out, "Auction removed.")
	return nil
}

func (c *commands) lang(_ context.Context, args []string) error {
	if len(args) == 0 {
		next, err := c.prefs.ToggleLanguage()
		if err != nil {
			return err
		}
		fmt.Fprintf(c.out, "Language: %s (%s)\n", next, next.Direction())
		return nil
	}
	lang, ok := catalog.ParseLanguage(args[0])
	if !ok {
		return fmt.Errorf("%w: %w", errUsage, session.ErrUnsupportedLanguage)
	}
	if err := c.prefs.SetLanguage(lang); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Language: %s (%s)\n", lang, lang.Direction())
	return nil
}

func (c *commands) status(_ context.Context, _ []string) error {
	snap := c.creds.Snapshot()
	fmt.Fprintf(c.out, "Language: %s\n", c.prefs.Language())
	if snap.PendingPhone != "" {
		fmt.Fprintf(c.out, "Pending phone: %s\n", snap.PendingPhone)
	}
	if !snap.Authenticated() {
		fmt.Fprintln(c.out, "Not signed in.")
		return nil
	}
	claims, err := c.creds.Claims()
	if err != nil {
		fmt.Fprintln(c.out, "Signed in with an unreadable token.")
		return nil
	}
	state := "valid"
	if !c.creds.IsAccessTokenValid() {
		state = "expired"
	}
	tok := claims.OAuth2Token(snap.AccessToken)
	fmt.Fprintf(c.out, "Signed in as %s, %s token %s until %s, refresh token stored: %t\n",
		claims.Subject, tok.Type(), state, tok.Expiry.Local().Format("2006-01-02 15:04"), snap.RefreshToken != "")
	return nil
}

func (c *commands) logout(_ context.Context, _ []string) error {
	if err := c.client.Logout(); err != nil {
		return err
	}
	fmt.Fprintln(c.out, "Signed out.")
	return nil
}

func (c *commands) printJSON(data json.RawMessage) error {
	if len(data) == 0 {
		return nil
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		_, err = c.out.Write(data)
		return err
	}
	enc := json.NewEncoder(c.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
