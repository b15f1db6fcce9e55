package main

import (
	"context"
	"flag"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Liban-hassan-noor/eastlify-client/internal/api"
	"github.com/Liban-hassan-noor/eastlify-client/internal/domain"
	"github.com/Liban-hassan-noor/eastlify-client/internal/store"
)

func cmdBrowse(ctx context.Context, s *store.Store, args []string) error {
	fs := newFlagSet("browse")
	category := fs.String("category", "", "Filter by category (\"All\" matches everything)")
	street := fs.String("street", "", "Filter by street")
	search := fs.String("search", "", "Search name, description, street and categories")
	favorites := fs.Bool("favorites", false, "Only show favorited shops")
	if err := fs.Parse(args); err != nil {
		return err
	}

	s.FetchShops(ctx, api.ShopQuery{})
	if msg := s.ShopsError(); msg != "" {
		return fmt.Errorf("%s", msg)
	}

	shops := s.FilteredShops(store.Filter{
		Category:      *category,
		Street:        *street,
		Search:        *search,
		FavoritesOnly: *favorites,
	})
	if len(shops) == 0 {
		fmt.Println("no shops found")
		return nil
	}
	for _, shop := range shops {
		star := " "
		if s.IsFavorite(shop.ID) {
			star = "*"
		}
		fmt.Printf("%s %-24s %-20s %-22s %.1f (%d reviews)\n",
			star, shop.ID, shop.Name, shop.Street, shop.Rating, shop.ReviewCount)
	}
	return nil
}

func cmdShop(ctx context.Context, s *store.Store, args []string) error {
	id, _, err := shift(args, "shop id")
	if err != nil {
		return err
	}

	s.FetchShops(ctx, api.ShopQuery{})
	if msg := s.ShopsError(); msg != "" {
		return fmt.Errorf("%s", msg)
	}
	for _, shop := range s.Shops() {
		if shop.ID == id {
			printShop(shop)
			return nil
		}
	}
	return fmt.Errorf("shop %s not found", id)
}

func printShop(shop domain.Shop) {
	fmt.Printf("%s (%s)\n", shop.Name, shop.ID)
	if shop.Description != "" {
		fmt.Printf("  %s\n", shop.Description)
	}
	fmt.Printf("  street:     %s\n", shop.Street)
	fmt.Printf("  phone:      %s\n", shop.Phone)
	if shop.WhatsApp != "" {
		fmt.Printf("  whatsapp:   %s\n", shop.WhatsApp)
	}
	fmt.Printf("  categories: %s\n", strings.Join(shop.Categories, ", "))
	fmt.Printf("  rating:     %.1f (%d reviews)\n", shop.Rating, shop.ReviewCount)
	fmt.Printf("  calls %d, orders %d, sales KES %d\n", shop.TotalCalls, shop.Orders, shop.Sales)
}

func cmdListings(ctx context.Context, s *store.Store, args []string) error {
	id, _, err := shift(args, "shop id")
	if err != nil {
		return err
	}

	s.FetchShopListings(ctx, id)
	printProducts(s.Listings())
	return nil
}

func printProducts(products []domain.Product) {
	if len(products) == 0 {
		fmt.Println("no products")
		return
	}
	for _, p := range products {
		stock := "in stock"
		if !p.InStock {
			stock = "out of stock"
		}
		fmt.Printf("%-24s %-28s KES %-8.0f %s\n", p.ID, p.Name, p.Price, stock)
	}
}

func cmdReviews(ctx context.Context, s *store.Store, args []string) error {
	id, rest, err := shift(args, "shop id")
	if err != nil {
		return err
	}
	fs := newFlagSet("reviews")
	page := fs.Int("page", 1, "Page number")
	limit := fs.Int("limit", 10, "Reviews per page")
	sort := fs.String("sort", "-createdAt", "Sort order (createdAt, -createdAt, rating, -rating)")
	if err := fs.Parse(rest); err != nil {
		return err
	}

	result, err := s.ShopReviews(ctx, id, api.ReviewPageQuery{Page: *page, Limit: *limit, Sort: *sort})
	if err != nil {
		return err
	}
	stats, err := s.ReviewStats(ctx, id)
	if err != nil {
		return err
	}

	fmt.Printf("%.1f average over %d reviews (page %d of %d)\n",
		stats.Average, stats.Total, result.Page, result.Pages)
	for _, r := range result.Reviews {
		fmt.Printf("  %d/5  %-20s %s\n", r.Rating, r.Author, r.Comment)
	}
	return nil
}

func cmdReview(ctx context.Context, s *store.Store, args []string) error {
	id, rest, err := shift(args, "shop id")
	if err != nil {
		return err
	}
	fs := newFlagSet("review")
	author := fs.String("author", "", "Your name")
	rating := fs.Int("rating", 0, "Rating 1-5")
	comment := fs.String("comment", "", "Review text")
	if err := fs.Parse(rest); err != nil {
		return err
	}

	res := s.SubmitReview(ctx, api.ReviewRequest{
		Shop:    id,
		Author:  *author,
		Rating:  *rating,
		Comment: *comment,
	})
	if err := resultErr(res); err != nil {
		return err
	}
	fmt.Println("review submitted")
	return nil
}

func cmdPing(ctx context.Context, s *store.Store, args []string) error {
	id, rest, err := shift(args, "shop id")
	if err != nil {
		return err
	}
	fs := newFlagSet("ping")
	kind := fs.String("type", "call", "Activity type (call or whatsapp)")
	item := fs.String("item", "", "Product the customer asked about")
	if err := fs.Parse(rest); err != nil {
		return err
	}

	res := s.RecordActivity(ctx, id, api.ActivityRequest{
		Type: domain.ActivityType(*kind),
		Item: *item,
	})
	if err := resultErr(res); err != nil {
		return err
	}
	fmt.Printf("%s recorded for %s\n", *kind, id)
	return nil
}

func cmdFavorite(s *store.Store, args []string) error {
	id, _, err := shift(args, "shop id")
	if err != nil {
		return err
	}
	s.ToggleFavorite(id)
	if s.IsFavorite(id) {
		fmt.Printf("%s added to favorites\n", id)
	} else {
		fmt.Printf("%s removed from favorites\n", id)
	}
	return nil
}

func cmdFavorites(s *store.Store) error {
	favorites := s.Favorites()
	if len(favorites) == 0 {
		fmt.Println("no favorites")
		return nil
	}
	for _, id := range favorites {
		fmt.Println(id)
	}
	return nil
}

func cmdLogin(ctx context.Context, s *store.Store, args []string) error {
	email, rest, err := shift(args, "email")
	if err != nil {
		return err
	}
	password, _, err := shift(rest, "password")
	if err != nil {
		return err
	}

	if err := resultErr(s.Login(ctx, email, password)); err != nil {
		return err
	}
	user := s.CurrentUser()
	fmt.Printf("signed in as %s <%s>\n", user.Name, user.Email)
	return nil
}

func cmdRegister(ctx context.Context, s *store.Store, args []string) error {
	fs := newFlagSet("register")
	name := fs.String("name", "", "Your name")
	email := fs.String("email", "", "Email address")
	password := fs.String("password", "", "Password (min 8 characters)")
	phone := fs.String("phone", "", "Phone number")
	shopName := fs.String("shop", "", "Shop name")
	street := fs.String("street", "", "Shop street")
	categories := fs.String("categories", "", "Comma-separated shop categories")
	if err := fs.Parse(args); err != nil {
		return err
	}

	res := s.RegisterShop(ctx, api.RegisterRequest{
		Name:       *name,
		Email:      *email,
		Password:   *password,
		Phone:      *phone,
		ShopName:   *shopName,
		Street:     *street,
		Categories: splitList(*categories),
	})
	if err := resultErr(res); err != nil {
		return err
	}
	user := s.CurrentUser()
	if user.Shop != nil {
		fmt.Printf("welcome to Eastlify, %s! Your shop %q is live.\n", user.Name, user.Shop.Name)
	} else {
		fmt.Printf("welcome to Eastlify, %s!\n", user.Name)
	}
	return nil
}

func cmdMe(s *store.Store) error {
	user := s.CurrentUser()
	if user == nil {
		return fmt.Errorf("not signed in")
	}
	fmt.Printf("%s <%s> %s\n", user.Name, user.Email, user.Phone)
	if user.Shop != nil {
		fmt.Println("shop:")
		printShop(*user.Shop)
	}
	return nil
}

func cmdUpdateProfile(ctx context.Context, s *store.Store, args []string) error {
	fs := newFlagSet("update-profile")
	fs.String("name", "", "New name")
	fs.String("phone", "", "New phone number")
	fs.String("email", "", "New email address")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var update api.ProfileUpdate
	applyStringFlags(fs, map[string]func(string){
		"name":  func(v string) { update.Name = &v },
		"phone": func(v string) { update.Phone = &v },
		"email": func(v string) { update.Email = &v },
	})

	if err := resultErr(s.UpdateProfile(ctx, update)); err != nil {
		return err
	}
	fmt.Println("profile updated")
	return nil
}

func cmdUpdateShop(ctx context.Context, s *store.Store, args []string) error {
	fs := newFlagSet("update-shop")
	fs.String("name", "", "New shop name")
	fs.String("description", "", "New description")
	fs.String("street", "", "New street")
	fs.String("phone", "", "New phone number")
	fs.String("whatsapp", "", "New WhatsApp number")
	fs.String("categories", "", "Comma-separated categories")
	fs.String("profile-image", "", "Path to a new profile image, or \"-\" to clear it")
	fs.String("cover-image", "", "Path to a new cover image, or \"-\" to clear it")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var update api.ShopUpdate
	var imageErr error
	applyStringFlags(fs, map[string]func(string){
		"name":        func(v string) { update.Name = &v },
		"description": func(v string) { update.Description = &v },
		"street":      func(v string) { update.Street = &v },
		"phone":       func(v string) { update.Phone = &v },
		"whatsapp":    func(v string) { update.WhatsApp = &v },
		"categories": func(v string) {
			list := splitList(v)
			update.Categories = &list
		},
		"profile-image": func(v string) {
			field, err := imageFlag(v)
			if err != nil {
				imageErr = err
				return
			}
			update.ProfileImage = field
		},
		"cover-image": func(v string) {
			field, err := imageFlag(v)
			if err != nil {
				imageErr = err
				return
			}
			update.CoverImage = field
		},
	})
	if imageErr != nil {
		return imageErr
	}

	if err := resultErr(s.UpdateShop(ctx, update)); err != nil {
		return err
	}
	fmt.Println("shop updated")
	return nil
}

func cmdDeleteShop(ctx context.Context, s *store.Store, args []string) error {
	id, _, err := shift(args, "shop id")
	if err != nil {
		return err
	}
	if err := resultErr(s.DeleteShop(ctx, id)); err != nil {
		return err
	}
	fmt.Printf("shop %s deleted\n", id)
	return nil
}

func cmdMyListings(ctx context.Context, s *store.Store) error {
	s.FetchMyListings(ctx)
	printProducts(s.MyListings())
	return nil
}

func cmdAddListing(ctx context.Context, s *store.Store, args []string) error {
	fs := newFlagSet("add-listing")
	form, parseForm := productFormFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := parseForm(); err != nil {
		return err
	}

	if err := resultErr(s.AddListing(ctx, *form)); err != nil {
		return err
	}
	fmt.Println("listing added")
	return nil
}

func cmdUpdateListing(ctx context.Context, s *store.Store, args []string) error {
	id, rest, err := shift(args, "product id")
	if err != nil {
		return err
	}
	fs := newFlagSet("update-listing")
	form, parseForm := productFormFlags(fs)
	if err := fs.Parse(rest); err != nil {
		return err
	}
	if err := parseForm(); err != nil {
		return err
	}

	if err := resultErr(s.UpdateListing(ctx, id, *form)); err != nil {
		return err
	}
	fmt.Println("listing updated")
	return nil
}

func cmdDeleteListing(ctx context.Context, s *store.Store, args []string) error {
	id, _, err := shift(args, "product id")
	if err != nil {
		return err
	}
	if err := resultErr(s.DeleteListing(ctx, id)); err != nil {
		return err
	}
	fmt.Printf("listing %s deleted\n", id)
	return nil
}

func cmdSale(ctx context.Context, s *store.Store, args []string) error {
	fs := newFlagSet("sale")
	item := fs.String("item", "", "What was sold")
	amount := fs.Int("amount", 0, "Sale amount in KES")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := resultErr(s.RecordSale(ctx, api.SaleRequest{Item: *item, Amount: *amount})); err != nil {
		return err
	}
	fmt.Printf("sale recorded: %s, KES %d\n", *item, *amount)
	return nil
}

func cmdActivities(ctx context.Context, s *store.Store) error {
	s.FetchActivities(ctx)
	activities := s.Activities()
	if len(activities) == 0 {
		fmt.Println("no recent activity")
		return nil
	}
	for _, a := range activities {
		line := string(a.Type)
		if a.Item != "" {
			line += ": " + a.Item
		}
		if a.Amount > 0 {
			line += fmt.Sprintf(" (KES %d)", a.Amount)
		}
		fmt.Printf("%s  %s\n", a.CreatedAt.Format("2006-01-02 15:04"), line)
	}
	return nil
}

// productFormFlags registers the shared create/update product flags and
// returns the form plus a finish function that resolves image uploads.
func productFormFlags(fs *flag.FlagSet) (*api.ProductForm, func() error) {
	form := &api.ProductForm{}
	fs.String("name", "", "Product name")
	fs.String("description", "", "Product description")
	fs.String("category", "", "Product category")
	fs.Float64("price", 0, "Price in KES")
	fs.Float64("compare-at", 0, "Compare-at price in KES")
	fs.Int("stock", 0, "Units in stock")
	fs.Bool("in-stock", true, "Whether the product is available")
	fs.String("tags", "", "Comma-separated tags")
	fs.String("sizes", "", "Comma-separated sizes")
	fs.String("colors", "", "Comma-separated colors")
	fs.String("images", "", "Comma-separated image file paths")

	finish := func() error {
		var imagePaths []string
		var err error
		fs.Visit(func(f *flag.Flag) {
			v := f.Value.String()
			switch f.Name {
			case "name":
				form.Name = &v
			case "description":
				form.Description = &v
			case "category":
				form.Category = &v
			case "price":
				if p, perr := parseFloat(v); perr == nil {
					form.Price = &p
				}
			case "compare-at":
				if p, perr := parseFloat(v); perr == nil {
					form.CompareAtPrice = &p
				}
			case "stock":
				if n, perr := parseInt(v); perr == nil {
					form.Stock = &n
				}
			case "in-stock":
				inStock := v == "true"
				form.InStock = &inStock
			case "tags":
				list := splitList(v)
				form.Tags = &list
			case "sizes":
				list := splitList(v)
				form.Sizes = &list
			case "colors":
				list := splitList(v)
				form.Colors = &list
			case "images":
				imagePaths = splitList(v)
			}
		})
		for _, path := range imagePaths {
			field, ferr := loadImage(path)
			if ferr != nil {
				err = ferr
				break
			}
			form.Images = append(form.Images, field)
		}
		return err
	}
	return form, finish
}

// applyStringFlags invokes the matching setter for every flag that was
// explicitly set on the command line, so unset flags stay nil.
func applyStringFlags(fs *flag.FlagSet, setters map[string]func(string)) {
	fs.Visit(func(f *flag.Flag) {
		if set, ok := setters[f.Name]; ok {
			set(f.Value.String())
		}
	})
}

// imageFlag maps an image flag value to its wire form: "-" clears the
// stored image, anything else is a file to upload.
func imageFlag(value string) (api.ImageField, error) {
	if value == "-" {
		return api.ClearImage(), nil
	}
	return loadImage(value)
}

func loadImage(path string) (api.ImageField, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return api.ImageField{}, fmt.Errorf("reading image: %w", err)
	}
	mimeType := mime.TypeByExtension(filepath.Ext(path))
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	return api.NewUpload(data, mimeType), nil
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func parseFloat(v string) (float64, error) {
	return strconv.ParseFloat(v, 64)
}

func parseInt(v string) (int, error) {
	return strconv.Atoi(v)
}
